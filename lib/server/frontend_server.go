package server

import (
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/trendmap/frontend"
)

func (s *server) initFrontend(r *gin.Engine) {
	assets, err := fs.Sub(frontend.Assets, "dist/assets")
	if err != nil {
		panic(err)
	}

	r.GET("/", s.index)
	r.StaticFS("/assets", http.FS(assets))

	if s.opts.SymbolsDir != "" {
		r.Static("/symbols", s.opts.SymbolsDir)
	}
}

func (s *server) index(c *gin.Context) {
	data, err := frontend.Index.ReadFile("dist/index.html")
	if err != nil {
		sendError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", data)
}
