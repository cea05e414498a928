package workspace

import (
	"context"
	"path/filepath"

	"github.com/pescuma/trendmap/lib/caches"
	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/consoles"
	"github.com/pescuma/trendmap/lib/loader"
	"github.com/pescuma/trendmap/lib/model"
	"github.com/pescuma/trendmap/lib/utils"
)

type Workspace struct {
	console consoles.Console
	config  *config.Config

	dataset *caches.Lazy[*model.Dataset]
}

// NewWorkspace reads the config file (or the defaults, when configFile is
// empty). dataDir, when set, replaces the configured data dir.
func NewWorkspace(configFile string, dataDir string) (*Workspace, error) {
	return NewWorkspaceWithConsole(consoles.NewStdOutConsole(), configFile, dataDir)
}

func NewWorkspaceWithConsole(console consoles.Console, configFile string, dataDir string) (*Workspace, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	if dataDir != "" {
		cfg.Inputs.DataDir = dataDir
	}
	if cfg.Inputs.DataDir == "" && configFile != "" {
		cfg.Inputs.DataDir = filepath.Dir(configFile)
	}

	result := &Workspace{
		console: console,
		config:  cfg,
	}
	result.dataset = caches.NewLazy(func() (*model.Dataset, error) {
		console.Printf("Loading data...\n")

		console.PushPrefix("data: ")
		defer console.PopPrefix()

		ds, err := loader.NewLoader(console).Load(context.Background(), cfg)
		if err != nil {
			console.Printf("failed\n")
			return nil, err
		}

		return ds, nil
	})

	return result, nil
}

func (w *Workspace) Console() consoles.Console {
	return w.console
}

func (w *Workspace) Config() *config.Config {
	return w.config
}

// SymbolsDir is where the concert glyph images live.
func (w *Workspace) SymbolsDir() string {
	return filepath.Join(utils.Coalesce(w.config.Inputs.DataDir, "."), "symbols")
}

// Dataset loads all inputs the first time it is called. Later calls return
// the same result, including the same error.
func (w *Workspace) Dataset() (*model.Dataset, error) {
	return w.dataset.Get()
}

func (w *Workspace) Execute(f func(consoles.Console, *config.Config, *model.Dataset) error) error {
	ds, err := w.Dataset()
	if err != nil {
		return err
	}

	return f(w.console, w.config, ds)
}
