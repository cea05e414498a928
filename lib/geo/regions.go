package geo

import (
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/pkg/errors"

	"github.com/pescuma/trendmap/lib/model"
)

// BuildRegions projects the features and computes their path and centroid.
// Names come from nameProperty and must be unique.
func BuildRegions(fs []*Feature, nameProperty string, p PolygonProjection) (*model.Regions, error) {
	result := model.NewRegions()

	for i, f := range fs {
		name := f.Name(nameProperty)
		if name == "" {
			return nil, errors.Errorf("feature %v has no %q property", i, nameProperty)
		}

		shape := ProjectMultiPolygon(p, f.Shape)

		r := &model.Region{
			Name:  name,
			Shape: shape,
			Path:  PathData(shape),
		}

		centroid, area := planar.CentroidArea(shape)
		if area > 0 {
			r.Centroid = centroid
			r.HasCentroid = true
		}

		if !result.Add(r) {
			return nil, errors.Errorf("duplicated region name %q", name)
		}
	}

	return result, nil
}

// PathData writes the rings as SVG path commands, one closed subpath per ring.
func PathData(mp orb.MultiPolygon) string {
	var sb strings.Builder

	for _, poly := range mp {
		for _, ring := range poly {
			if len(ring) == 0 {
				continue
			}

			// Closed rings repeat the first point; Z already closes them.
			points := ring
			if len(points) > 1 && points[0] == points[len(points)-1] {
				points = points[:len(points)-1]
			}

			for i, pt := range points {
				if i == 0 {
					sb.WriteString("M")
				} else {
					sb.WriteString("L")
				}
				sb.WriteString(FormatCoord(pt[0]))
				sb.WriteString(",")
				sb.WriteString(FormatCoord(pt[1]))
			}
			sb.WriteString("Z")
		}
	}

	return sb.String()
}

// FormatCoord keeps two decimals and drops trailing zeros.
func FormatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		s = "0"
	}
	return s
}
