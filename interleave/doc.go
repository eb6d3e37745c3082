// Package interleave merges and splits the two per-axis bit streams of a
// geohash.
//
// What:
//
//   - Merge combines a longitude stream and a latitude stream into a
//     single stream: even positions hold longitude bits, odd positions
//     hold latitude bits, longitude first.
//   - Split is the exact inverse, demultiplexing a combined stream back
//     into its longitude and latitude halves.
//
// Why:
//
//   - The parity assignment is the wire contract. A flipped parity still
//     produces plausible-looking coordinates, just wrong ones, which is
//     the primary correctness risk in this subsystem — hence the strict
//     length rule and the round-trip contract tests.
//
// Contract:
//
//   - len(lng) == len(lat) or len(lng) == len(lat)+1 (the odd total-bit
//     case, where longitude carries the final unpaired bit).
//   - Split(Merge(lng, lat)) == (lng, lat) and Merge(Split(bits)) == bits.
//
// Errors:
//
//   - ErrLengthMismatch: stream lengths violate the contract above.
//
// Complexity: O(n) time and memory in the total bit count.
package interleave
