package geo

import (
	"github.com/pescuma/trendmap/lib/config"
)

// NewMapProjection centers the composite projection on the map area.
func NewMapProjection(cfg *config.Config) *AlbersUSA {
	return NewAlbersUSA(cfg.Projection.Scale, cfg.Layout.MapWidth()/2, cfg.Layout.MapHeight()/2)
}
