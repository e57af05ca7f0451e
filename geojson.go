package curb

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// FeatureCollection converts projected segments to GeoJSON LineString
// features. Each feature carries the segment's id, type, label, color and
// length as properties.
func FeatureCollection(ps []Projected) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, proj := range ps {
		f := geojson.NewFeature(proj.Path)
		f.ID = proj.ID.String()
		f.Properties["type"] = proj.Type.String()
		f.Properties["label"] = proj.Type.Label()
		f.Properties["color"] = proj.Color
		f.Properties["length"] = proj.Length
		fc.Append(f)
	}
	return fc
}

// ParsePath extracts a blockface path from GeoJSON. The document may be a
// LineString geometry, a Feature whose geometry is a LineString, or a
// FeatureCollection, in which case the first LineString feature is used.
func ParsePath(data []byte) (orb.LineString, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decoding GeoJSON: %w", err)
	}

	var g orb.Geometry
	switch probe.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("decoding feature collection: %w", err)
		}
		for _, f := range fc.Features {
			if _, ok := f.Geometry.(orb.LineString); ok {
				g = f.Geometry
				break
			}
		}
		if g == nil {
			return nil, errors.New("feature collection contains no LineString")
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("decoding feature: %w", err)
		}
		g = f.Geometry
	default:
		geom, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, fmt.Errorf("decoding geometry: %w", err)
		}
		g = geom.Geometry()
	}

	ls, ok := g.(orb.LineString)
	if !ok {
		return nil, fmt.Errorf("geometry is %T, not a LineString", g)
	}
	if len(ls) < 2 {
		return nil, errShortPath
	}
	return ls, nil
}
