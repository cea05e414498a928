package loader

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/pkg/errors"

	"github.com/pescuma/trendmap/lib/config"
)

// fetch reads a local file or an http(s) URL. There are no retries.
func fetch(ctx context.Context, client *http.Client, location string) ([]byte, error) {
	if !config.IsURL(location) {
		return os.ReadFile(location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status %v", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func newHTTPClient() *http.Client {
	return cleanhttp.DefaultClient()
}
