package main

import (
	"fmt"

	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/consoles"
	"github.com/pescuma/trendmap/lib/model"
)

type MonthsCmd struct {
}

func (c *MonthsCmd) Run(ctx *context) error {
	return ctx.ws.Execute(func(_ consoles.Console, _ *config.Config, ds *model.Dataset) error {
		for i, m := range ds.Months() {
			fmt.Printf("%3v %v\n", i+1, m)
		}
		return nil
	})
}
