// Package geohash converts a geographic coordinate into a short,
// hierarchical, URL-safe string and back, at a caller-chosen precision.
//
// 🚀 What is a geohash?
//
//	A geohash encodes a rectangular cell of the earth's surface.
//	Successive characters subdivide the cell, so hashes sharing a prefix
//	denote nearby (though not perfectly contiguous) areas. Each character
//	carries five bits: longitude bits on even positions, latitude bits on
//	odd positions, longitude first — the standard geohash wire contract.
//
// ✨ Key features:
//
//   - Encode / Decode at any length; lengths beyond 12 are processed,
//     the [MinLength, MaxLength] clamp applies only to Engine defaults
//   - Bounding box and precision-in-meters derived from length alone
//   - PrecisionMeters / SuggestLength for choosing a hash length
//   - Deterministic: out-of-range coordinates are clamped, midpoint ties
//     always fall to the upper half
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlgeo/geohash"
//
//	hash := geohash.Encode(1.3521, 103.8198, 7)   // "w21zdqp"
//	dec, err := geohash.Decode(hash)
//	if err != nil {
//	  // ErrInvalidCharacter: hash contains a symbol outside the alphabet
//	}
//	fmt.Println(dec.Center.Lat, dec.Center.Lng, dec.Box)
//
// Concurrency:
//
//	Package functions are pure; Engine is immutable after New. Both are
//	safe for unsynchronized concurrent use.
//
// Errors:
//
//   - base32.ErrInvalidCharacter: Decode received a character outside
//     the 32-symbol alphabet.
//
// Complexity: every operation is O(length) with length a small constant.
package geohash
