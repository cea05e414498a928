package main

import (
	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/consoles"
	"github.com/pescuma/trendmap/lib/export"
	"github.com/pescuma/trendmap/lib/model"
)

type RenderCmd struct {
	Month  string   `short:"m" help:"Month key, like 12-Jan. Default is the first month."`
	Hidden []string `help:"Chart categories to hide."`
	Out    string   `short:"o" default:"." help:"Output folder." type:"path"`
}

func (c *RenderCmd) Run(ctx *context) error {
	return ctx.ws.Execute(func(console consoles.Console, cfg *config.Config, ds *model.Dataset) error {
		month := c.Month
		if month == "" && len(ds.Months()) > 0 {
			month = ds.Months()[0]
		}

		files, err := export.NewExporter(console, cfg, ds).WriteMonth(month, &export.Options{
			OutDir: c.Out,
			Hidden: c.Hidden,
		})
		if err != nil {
			return err
		}

		for _, f := range files {
			console.Printf("Wrote %v\n", f)
		}

		return nil
	})
}
