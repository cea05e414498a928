package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/trendmap/lib/caches"
	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/consoles"
	"github.com/pescuma/trendmap/lib/model"
	"github.com/pescuma/trendmap/lib/view"
)

type Options struct {
	Port uint

	// SymbolsDir is served under /symbols, for the concert glyphs.
	SymbolsDir string

	// CacheSize is how many rendered SVGs are kept. Zero uses the cache default.
	CacheSize int
}

func Run(console consoles.Console, cfg *config.Config, ds *model.Dataset, opts *Options) error {
	s := newServer(cfg, ds, opts)

	console.Printf("Starting server on http://localhost:%v ...\n", s.opts.Port)

	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()
	s.init(r)

	return r.Run(fmt.Sprintf(":%v", s.opts.Port))
}

type server struct {
	opts *Options

	cfg      *config.Config
	ds       *model.Dataset
	renderer *view.Renderer
	svgs     *caches.Cache[string, []byte]
}

func newServer(cfg *config.Config, ds *model.Dataset, opts *Options) *server {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Port == 0 {
		opts.Port = 2724
	}

	return &server{
		opts:     opts,
		cfg:      cfg,
		ds:       ds,
		renderer: view.NewRenderer(cfg),
		svgs:     caches.NewCache[string, []byte](caches.Options{MaxSize: opts.CacheSize}),
	}
}

func (s *server) init(r *gin.Engine) {
	s.initFrontend(r)
	s.initScene(r)
	s.initTransitions(r)
}
