package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/pescuma/trendmap/lib/workspace"
)

var cli struct {
	Config string `short:"c" env:"TRENDMAP_CONFIG" help:"YAML file with configuration overrides." type:"path"`
	Data   string `short:"d" env:"TRENDMAP_DATA" help:"Folder with the input files. Default is the config folder, or the current one." type:"path"`

	Server ServerCmd `cmd:"" help:"Start the interactive map server."`
	Render RenderCmd `cmd:"" help:"Write the map, chart and slider SVGs of one month."`
	Frames FramesCmd `cmd:"" help:"Write the SVGs of every month."`
	Show   ShowCmd   `cmd:"" help:"Print the value, bucket and label of every region in a month."`
	Months MonthsCmd `cmd:"" help:"List the months in slider order."`
}

type context struct {
	ws *workspace.Workspace
}

func main() {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		_, _ = os.Stderr.WriteString("error loading .env: " + err.Error() + "\n")
	}

	ctx := kong.Parse(&cli, kong.ShortUsageOnError())

	ws, err := workspace.NewWorkspace(cli.Config, cli.Data)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(&context{
		ws: ws,
	})
	ctx.FatalIfErrorf(err)
}
