package geo

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// Feature is an area read from a TopoJSON or GeoJSON file, in lon/lat degrees.
type Feature struct {
	Properties map[string]any
	Shape      orb.MultiPolygon
}

// Name returns the property as a normalized string, or "" when it is missing.
func (f *Feature) Name(property string) string {
	v, ok := f.Properties[property]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return NormalizeName(s)
}

// NormalizeName makes names from different files comparable.
func NormalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// DecodeFeatures reads TopoJSON when the document type is Topology and
// GeoJSON otherwise. object only applies to TopoJSON.
func DecodeFeatures(data []byte, object string) ([]*Feature, error) {
	var header struct {
		Type string `json:"type"`
	}
	err := json.Unmarshal(data, &header)
	if err != nil {
		return nil, errors.Wrap(err, "invalid json")
	}

	switch header.Type {
	case "Topology":
		return decodeTopology(data, object)
	case "FeatureCollection":
		return decodeGeoJSON(data)
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, errors.Wrap(err, "invalid geojson feature")
		}
		return single(fromGeoJSON(f)), nil
	default:
		return nil, errors.Errorf("unsupported geometry document type %q", header.Type)
	}
}

func decodeGeoJSON(data []byte) ([]*Feature, error) {
	fc, err := geojson.UnmarshalFeatureCollection(bytes.TrimSpace(data))
	if err != nil {
		return nil, errors.Wrap(err, "invalid geojson")
	}

	var result []*Feature
	for _, f := range fc.Features {
		if r := fromGeoJSON(f); r != nil {
			result = append(result, r)
		}
	}
	return result, nil
}

func fromGeoJSON(f *geojson.Feature) *Feature {
	var mp orb.MultiPolygon
	switch g := f.Geometry.(type) {
	case orb.Polygon:
		mp = orb.MultiPolygon{g}
	case orb.MultiPolygon:
		mp = g
	default:
		return nil
	}

	return &Feature{
		Properties: f.Properties,
		Shape:      mp,
	}
}

func single(f *Feature) []*Feature {
	if f == nil {
		return nil
	}
	return []*Feature{f}
}

// Merge joins the shapes of all features, as a single outline.
func Merge(fs []*Feature) orb.MultiPolygon {
	var result orb.MultiPolygon
	for _, f := range fs {
		result = append(result, f.Shape...)
	}
	return result
}
