package main

import (
	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/consoles"
	"github.com/pescuma/trendmap/lib/export"
	"github.com/pescuma/trendmap/lib/model"
)

type FramesCmd struct {
	Months string   `help:"Glob over month keys, like '1*-Jan'. Default is all months."`
	Hidden []string `help:"Chart categories to hide."`
	Out    string   `short:"o" default:"frames" help:"Output folder." type:"path"`
}

func (c *FramesCmd) Run(ctx *context) error {
	return ctx.ws.Execute(func(console consoles.Console, cfg *config.Config, ds *model.Dataset) error {
		files, err := export.NewExporter(console, cfg, ds).WriteAll(&export.Options{
			OutDir: c.Out,
			Months: c.Months,
			Hidden: c.Hidden,
		})
		if err != nil {
			return err
		}

		console.Printf("Wrote %v files\n", len(files))
		return nil
	})
}
