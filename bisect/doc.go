// Package bisect encodes the position of a scalar inside a closed range
// as a stream of bits, by repeated halving of the range.
//
// What:
//
//   - Interval carries the current (Min, Max) pair; no interval tree is
//     stored, each step narrows the pair in place.
//   - EncodeBit emits 1 when the value lies in the upper (≥ midpoint)
//     half, then keeps that half; EncodeBits runs n such steps.
//   - DecodeBit walks the same halving sequence using a supplied bit;
//     Decode consumes a whole stream and returns the midpoint plus the
//     final interval (the per-axis error bound).
//   - Latitude and Longitude construct the two whole-axis intervals.
//
// Why:
//
//   - This is the online binary-search encoding at the heart of geohash:
//     one bit per halving, monotonically narrowing the interval.
//
// Determinism:
//
//   - Values exactly on a midpoint fall to the upper (≥) side in both
//     directions, so encode and decode always walk the same halvings.
//   - Zero bits leave the interval untouched; Decode of an empty stream
//     returns the midpoint of the whole range.
//
// Complexity: O(n) time, O(1) memory beyond the output bits.
package bisect
