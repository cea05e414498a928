package loader

import (
	"bytes"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/pescuma/trendmap/lib/geo"
)

type table struct {
	columns []string
	rows    []map[string]string
}

// parseCSV reads a header row and keys every following row by column name.
// Short rows leave the missing columns out.
func parseCSV(data []byte) (*table, error) {
	r := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(data, []byte("\ufeff"))))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, errors.New("empty csv")
	}
	if err != nil {
		return nil, err
	}

	result := &table{}
	for _, h := range header {
		result.columns = append(result.columns, geo.NormalizeName(h))
	}

	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}

		row := make(map[string]string, len(result.columns))
		for i, c := range result.columns {
			if i < len(record) {
				row[c] = record[i]
			}
		}
		result.rows = append(result.rows, row)
	}

	return result, nil
}
