package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/gertd/go-pluralize"

	"github.com/pescuma/trendmap/lib/config"
	"github.com/pescuma/trendmap/lib/consoles"
	"github.com/pescuma/trendmap/lib/geo"
	"github.com/pescuma/trendmap/lib/model"
	"github.com/pescuma/trendmap/lib/render"
)

type ShowCmd struct {
	Month string `short:"m" help:"Month key, like 12-Jan. Default is the first month."`
}

func (c *ShowCmd) Run(ctx *context) error {
	return ctx.ws.Execute(func(_ consoles.Console, cfg *config.Config, ds *model.Dataset) error {
		month := c.Month
		if month == "" && len(ds.Months()) > 0 {
			month = ds.Months()[0]
		}

		f := render.NewMapRenderer(cfg, geo.NewMapProjection(cfg)).Render(ds, month)
		return c.print(os.Stdout, f)
	})
}

func (c *ShowCmd) print(out io.Writer, f *render.MapFrame) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintf(w, "Region\tValue\tBucket\tFill\tLabel\n")
	for _, r := range f.Regions {
		value := "-"
		if r.HasValue {
			value = render.LabelText(r.Value, true)
		}

		label := r.Label.Text
		if !r.Label.Visible {
			label = "(hidden)"
		}

		fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\n", r.Name, value, r.Bucket, r.Fill, label)
	}

	fmt.Fprintf(w, "\n%v\n", pluralize.NewClient().Pluralize("concert", len(f.Markers), true))
	for _, m := range f.Markers {
		fmt.Fprintf(w, "  %v\t%v\n", m.Artist, m.Info)
	}

	return w.Flush()
}
