// Package lvlgeo converts geographic coordinates into short,
// hierarchical, URL-safe geohash strings and back — plus the exporters
// that make the cells usable: GeoJSON documents, share links, QR codes.
//
// 🚀 What is lvlgeo?
//
//	A small, pure library around one algorithm:
//		• base32/     — the 32-symbol geohash alphabet codec (5 bits per character)
//		• bisect/     — online range bisection: one bit per halving of an axis
//		• interleave/ — merging/splitting the per-axis bit streams (longitude first)
//		• geohash/    — the engine: Encode, Decode, bounding boxes, precision math
//		• geojson/    — Polygon/Point features for a cell, with optional padding
//		• share/      — share links and QR code PNGs for a hash
//		• cmd/lvlgeo  — the command-line front-end
//
// ✨ Why choose lvlgeo?
//
//   - Deterministic – clamped inputs, fixed midpoint tie rule, no hidden state
//   - Standard wire contract – hashes match the canonical geohash encoding
//   - Pure Go core – every operation is O(length), no I/O, no locks
//   - Honest errors – one sentinel per failure mode, errors.Is-friendly
//
// Quick ASCII example:
//
//	"u4pruyd" ──┐
//	            │  each character narrows the cell by 5 bits
//	  u4pruy    │  (longitude, latitude, longitude, ...)
//	  u4pru     ▼
//	  u4pr      coarser and coarser rectangles around 57.65°N 10.41°E
//
// Dive into the geohash package for the engine, or run
// `lvlgeo encode 57.64911 10.40744` to see it on the command line.
//
//	go get github.com/katalvlaran/lvlgeo
package lvlgeo
