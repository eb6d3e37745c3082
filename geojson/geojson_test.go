package geojson_test

import (
	"encoding/json"
	"testing"

	gj "github.com/paulmach/go.geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgeo/base32"
	"github.com/katalvlaran/lvlgeo/geohash"
	"github.com/katalvlaran/lvlgeo/geojson"
)

// TestCollection_PolygonRing: the polygon is the cell's bounding box as
// a closed [lng, lat] ring carrying the hash and precision properties.
func TestCollection_PolygonRing(t *testing.T) {
	const hash = "u4pruyd"

	fc, err := geojson.Collection(hash, geojson.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	poly := fc.Features[0]
	require.Equal(t, gj.GeometryPolygon, poly.Geometry.Type)
	ring := poly.Geometry.Polygon[0]
	require.Len(t, ring, 5)
	assert.Equal(t, ring[0], ring[4], "ring must be closed")

	dec, err := geohash.Decode(hash)
	require.NoError(t, err)
	assert.InDelta(t, dec.Box.SW.Lng, ring[0][0], 1e-9)
	assert.InDelta(t, dec.Box.SW.Lat, ring[0][1], 1e-9)
	assert.InDelta(t, dec.Box.NE.Lng, ring[2][0], 1e-9)
	assert.InDelta(t, dec.Box.NE.Lat, ring[2][1], 1e-9)

	assert.Equal(t, hash, poly.Properties["geohash"])
	assert.Equal(t, geohash.PrecisionMeters(len(hash)), poly.Properties["precision_m"])
}

// TestCollection_IncludeCenter adds a Point feature at the decoded center.
func TestCollection_IncludeCenter(t *testing.T) {
	opts := geojson.DefaultOptions()
	opts.IncludeCenter = true

	fc, err := geojson.Collection("w21zdqp", opts)
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	point := fc.Features[1]
	require.Equal(t, gj.GeometryPoint, point.Geometry.Type)

	dec, err := geohash.Decode("w21zdqp")
	require.NoError(t, err)
	assert.Equal(t, dec.Center.Lng, point.Geometry.Point[0])
	assert.Equal(t, dec.Center.Lat, point.Geometry.Point[1])
}

// TestCollection_Padding grows the box on every side, with the cosine
// correction making the longitude margin wider than the latitude one
// away from the equator.
func TestCollection_Padding(t *testing.T) {
	exact, err := geojson.Collection("u4pruyd", geojson.DefaultOptions())
	require.NoError(t, err)

	opts := geojson.DefaultOptions()
	opts.PadMeters = 250
	padded, err := geojson.Collection("u4pruyd", opts)
	require.NoError(t, err)

	exactRing := exact.Features[0].Geometry.Polygon[0]
	paddedRing := padded.Features[0].Geometry.Polygon[0]

	lngMargin := exactRing[0][0] - paddedRing[0][0]
	latMargin := exactRing[0][1] - paddedRing[0][1]
	assert.Greater(t, lngMargin, 0.0)
	assert.Greater(t, latMargin, 0.0)
	assert.InDelta(t, 250.0/geohash.MetersPerDegree, latMargin, 1e-9)
	// u4pruyd sits near 57.6°N; cos correction stretches the lng margin.
	assert.Greater(t, lngMargin, latMargin)
}

// TestCollection_NegativePad is rejected with the sentinel.
func TestCollection_NegativePad(t *testing.T) {
	opts := geojson.DefaultOptions()
	opts.PadMeters = -1

	_, err := geojson.Collection("u4pruyd", opts)
	assert.ErrorIs(t, err, geojson.ErrNegativePad)
}

// TestCollection_InvalidHash propagates the codec error.
func TestCollection_InvalidHash(t *testing.T) {
	_, err := geojson.Collection("not@hash", geojson.DefaultOptions())
	assert.ErrorIs(t, err, base32.ErrInvalidCharacter)
}

// TestCollection_MarshalsToValidGeoJSON round-trips through encoding/json.
func TestCollection_MarshalsToValidGeoJSON(t *testing.T) {
	opts := geojson.DefaultOptions()
	opts.IncludeCenter = true

	fc, err := geojson.Collection("u4pruyd", opts)
	require.NoError(t, err)

	raw, err := json.Marshal(fc)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "FeatureCollection", doc["type"])
	assert.Len(t, doc["features"], 2)
}
