package geojson

import (
	"errors"
	"fmt"
	"math"

	gj "github.com/paulmach/go.geojson"

	"github.com/katalvlaran/lvlgeo/geohash"
)

// ErrNegativePad indicates a negative padding margin was requested.
var ErrNegativePad = errors.New("geojson: pad margin must not be negative")

// Options configures the export.
//
// Fields:
//   - PadMeters     — margin added to every side of the bounding box,
//     in meters; zero means the exact cell.
//   - IncludeCenter — also emit a Point feature for the cell center.
type Options struct {
	PadMeters     float64
	IncludeCenter bool
}

// DefaultOptions returns Options with no padding and no center point.
func DefaultOptions() Options {
	return Options{}
}

// Collection decodes hash and returns a FeatureCollection with the
// cell's bounding box as a closed Polygon and, when opts.IncludeCenter
// is set, the center as a Point. Both features carry "geohash" and
// "precision_m" properties.
// Complexity: O(len(hash)).
func Collection(hash string, opts Options) (*gj.FeatureCollection, error) {
	if opts.PadMeters < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativePad, opts.PadMeters)
	}

	pre, err := geohash.DecodeWithPrecision(hash)
	if err != nil {
		return nil, err
	}

	box := pad(pre.Box, opts.PadMeters)

	ring := [][]float64{
		{box.SW.Lng, box.SW.Lat},
		{box.NE.Lng, box.SW.Lat},
		{box.NE.Lng, box.NE.Lat},
		{box.SW.Lng, box.NE.Lat},
		{box.SW.Lng, box.SW.Lat},
	}

	polygon := gj.NewPolygonFeature([][][]float64{ring})
	polygon.SetProperty("geohash", hash)
	polygon.SetProperty("precision_m", pre.PrecisionM)

	fc := gj.NewFeatureCollection()
	fc.AddFeature(polygon)

	if opts.IncludeCenter {
		center := gj.NewPointFeature([]float64{pre.Center.Lng, pre.Center.Lat})
		center.SetProperty("geohash", hash)
		center.SetProperty("precision_m", pre.PrecisionM)
		fc.AddFeature(center)
	}

	return fc, nil
}

// pad grows the box by margin meters on every side. Latitude converts
// at the flat meters-per-degree constant; longitude additionally scales
// by cos(center latitude), so the margin keeps its ground length away
// from the equator.
func pad(box geohash.BoundingBox, margin float64) geohash.BoundingBox {
	if margin == 0 {
		return box
	}

	latDelta := margin / geohash.MetersPerDegree
	lngDelta := margin / (geohash.MetersPerDegree * math.Cos(box.Center().Lat*math.Pi/180))

	return geohash.BoundingBox{
		SW: geohash.Coordinate{Lat: box.SW.Lat - latDelta, Lng: box.SW.Lng - lngDelta},
		NE: geohash.Coordinate{Lat: box.NE.Lat + latDelta, Lng: box.NE.Lng + lngDelta},
	}
}
