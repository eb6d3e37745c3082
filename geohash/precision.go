package geohash

import (
	"math"

	"github.com/katalvlaran/lvlgeo/base32"
)

// Angular spans of the two axes in degrees.
const (
	latSpan = 180.0
	lngSpan = 360.0
)

// MetersPerDegree is the equatorial meters-per-degree constant used to
// convert angular error to meters. It is applied flat to both axes —
// no cosine correction for longitude — so the result is a worst-case
// upper bound, not a true metric at arbitrary latitude.
const MetersPerDegree = 111320.0

// axisBits splits a hash length into per-axis bit budgets: latitude
// gets floor(length*5/2), longitude the rest (the extra bit when the
// total is odd, since longitude is processed first).
func axisBits(length int) (latBits, lngBits int) {
	if length < 0 {
		length = 0
	}
	totalBits := length * base32.SymbolBits
	latBits = totalBits / 2
	lngBits = totalBits - latBits

	return latBits, lngBits
}

// PrecisionMeters returns the worst-case positional error in meters
// implied by a hash of the given length: the per-axis cell size
// axisSpan / 2^axisBits converted at MetersPerDegree, taking the larger
// of the two axes. It is a pure function of length, monotonically
// decreasing, and never stored.
//
// Length ≤ 0 returns the whole-planet figure; lengths beyond MaxLength
// are computed as-is, the precision math is not capped at 12.
// Complexity: O(1).
func PrecisionMeters(length int) float64 {
	latBits, lngBits := axisBits(length)

	latErr := latSpan / math.Exp2(float64(latBits)) * MetersPerDegree
	lngErr := lngSpan / math.Exp2(float64(lngBits)) * MetersPerDegree

	return math.Max(latErr, lngErr)
}

// SuggestLength returns the shortest hash length in
// [MinLength, MaxLength] whose PrecisionMeters estimate is at most
// targetMeters. When no length qualifies it returns MaxLength — the
// loosest guarantee, not an error.
// Complexity: O(MaxLength).
func SuggestLength(targetMeters float64) int {
	for length := MinLength; length <= MaxLength; length++ {
		if PrecisionMeters(length) <= targetMeters {
			return length
		}
	}

	return MaxLength
}
