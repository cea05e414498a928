package server

import (
	"github.com/pescuma/trendmap/lib/view"
)

type SlideParams struct {
	view.Params
	Pos *float64 `form:"pos"`
}

type ToggleParams struct {
	view.Params
	Key string `form:"key"`
}

type stateResponse struct {
	Month  string      `json:"month"`
	Params view.Params `json:"params"`
}
