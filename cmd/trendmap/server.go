package main

import (
	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/consoles"
	"github.com/pescuma/trendmap/lib/model"
	"github.com/pescuma/trendmap/lib/server"
)

type ServerCmd struct {
	Port  uint `default:"2724" env:"TRENDMAP_PORT" help:"Port to listen to."`
	Cache int  `default:"1000" help:"How many rendered SVGs to keep in memory."`
}

func (c *ServerCmd) Run(ctx *context) error {
	return ctx.ws.Execute(func(console consoles.Console, cfg *config.Config, ds *model.Dataset) error {
		return server.Run(console, cfg, ds, &server.Options{
			Port:       c.Port,
			SymbolsDir: ctx.ws.SymbolsDir(),
			CacheSize:  c.Cache,
		})
	})
}
