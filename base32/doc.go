// Package base32 implements the geohash flavor of base-32: a bijective
// mapping between 5-bit values (0–31) and characters of a fixed,
// URL-safe alphabet.
//
// What:
//
//   - Alphabet is the canonical 32-symbol set "0123456789bcdefghjkmnpqrstuvwxyz".
//     The letters a, i, l, o are excluded to avoid visual ambiguity.
//   - Symbol maps a 5-bit value to its character; Index is the inverse.
//   - Encode renders a bit stream as characters, most-significant bit of
//     each 5-bit group first; Decode recovers the bit stream.
//
// Why:
//
//   - Geohash strings must stay hierarchical: truncating characters
//     truncates bits, so the MSB-first group order is part of the wire
//     contract, not an implementation detail.
//
// Complexity:
//
//   - Symbol, Index: O(1).
//   - Encode, Decode: O(n) in the number of bits/characters.
//
// Errors:
//
//   - ErrInvalidCharacter: a character outside the alphabet was decoded.
//   - ErrBitCount: Encode received a bit count not divisible by 5.
package base32
