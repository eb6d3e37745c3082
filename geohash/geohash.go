package geohash

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvlgeo/base32"
	"github.com/katalvlaran/lvlgeo/bisect"
	"github.com/katalvlaran/lvlgeo/interleave"
)

// centerDecimals is the display rounding applied to decoded centers.
const centerDecimals = 1e6

// Encode converts (lat, lng) into a geohash of the requested length.
//
// Out-of-range coordinates are clamped to [-90, 90] / [-180, 180],
// never rejected. The length is used as-is and is not capped; length ≤ 0
// yields the empty hash. Identical inputs always produce identical
// output.
//
// Bit layout: totalBits = length*5; longitude receives
// ceil(totalBits/2) bits (it is processed first and takes the extra bit
// when totalBits is odd), latitude receives floor(totalBits/2).
// Complexity: O(length).
func Encode(lat, lng float64, length int) string {
	if length <= 0 {
		return ""
	}
	lat = clamp(lat, bisect.MinLatitude, bisect.MaxLatitude)
	lng = clamp(lng, bisect.MinLongitude, bisect.MaxLongitude)

	totalBits := length * base32.SymbolBits
	latBits := totalBits / 2
	lngBits := totalBits - latBits

	lngStream, _ := bisect.EncodeBits(lng, bisect.Longitude(), lngBits)
	latStream, _ := bisect.EncodeBits(lat, bisect.Latitude(), latBits)

	// Stream lengths are constructed to satisfy the merge contract and
	// fill whole characters, so neither call can fail.
	bits, _ := interleave.Merge(lngStream, latStream)
	hash, _ := base32.Encode(bits)

	return hash
}

// Decode converts a geohash back into its cell: the center, rounded to
// six decimal places, and the exact bounding box (unrounded final
// per-axis intervals).
//
// Any length is accepted, including lengths beyond MaxLength; the empty
// hash decodes to center (0, 0) with the whole-planet box. Returns
// base32.ErrInvalidCharacter when hash contains a character outside the
// alphabet; no partial result is produced.
// Complexity: O(len(hash)).
func Decode(hash string) (Decoded, error) {
	bits, err := base32.Decode(hash)
	if err != nil {
		return Decoded{}, fmt.Errorf("geohash: %w", err)
	}

	lngStream, latStream := interleave.Split(bits)
	lngMid, lngIv := bisect.Decode(lngStream, bisect.Longitude())
	latMid, latIv := bisect.Decode(latStream, bisect.Latitude())

	return Decoded{
		Center: Coordinate{Lat: round6(latMid), Lng: round6(lngMid)},
		Box: BoundingBox{
			SW: Coordinate{Lat: latIv.Min, Lng: lngIv.Min},
			NE: Coordinate{Lat: latIv.Max, Lng: lngIv.Max},
		},
	}, nil
}

// DecodeWithPrecision decodes hash and adds the worst-case positional
// error in meters for its length. The bounding box here is derived
// independently from the per-axis angular-error formula (the same math
// as PrecisionMeters) around the exact cell center; it must agree with
// the bisector-derived box returned by Decode, and the test suite
// asserts that it does.
// Complexity: O(len(hash)).
func DecodeWithPrecision(hash string) (Precise, error) {
	dec, err := Decode(hash)
	if err != nil {
		return Precise{}, err
	}

	latBits, lngBits := axisBits(len(hash))
	halfLat := latSpan / math.Exp2(float64(latBits)) / 2
	halfLng := lngSpan / math.Exp2(float64(lngBits)) / 2

	center := dec.Box.Center()
	dec.Box = BoundingBox{
		SW: Coordinate{Lat: center.Lat - halfLat, Lng: center.Lng - halfLng},
		NE: Coordinate{Lat: center.Lat + halfLat, Lng: center.Lng + halfLng},
	}

	return Precise{
		Decoded:    dec,
		PrecisionM: PrecisionMeters(len(hash)),
	}, nil
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// round6 rounds to six decimal places for display.
func round6(v float64) float64 {
	return math.Round(v*centerDecimals) / centerDecimals
}
