// Package geohash defines the value types and options for the geohash
// engine. All types are plain values created per call; none persist
// beyond a single encode/decode invocation.
package geohash

// Hash length bounds for Engine defaults. Explicit per-call lengths are
// used as-is; the clamp applies only when constructing an Engine.
const (
	// MinLength is the shortest default hash length an Engine accepts.
	MinLength = 1

	// MaxLength is the longest default hash length an Engine accepts.
	// Twelve characters carry 60 bits, already sub-decimeter precision.
	MaxLength = 12

	// DefaultLength is the default hash length used by DefaultOptions:
	// nine characters resolve to a cell of roughly five meters.
	DefaultLength = 9
)

// Coordinate is a geographic point in degrees.
// Lat lies in [-90, 90], Lng in [-180, 180]; Encode clamps out-of-range
// inputs rather than rejecting them.
type Coordinate struct {
	Lat float64
	Lng float64
}

// BoundingBox is the rectangular cell a geohash denotes, bounded by its
// southwest and northeast corners. SW.Lat ≤ NE.Lat and SW.Lng ≤ NE.Lng
// always hold; the decoded center lies within it, inclusive.
type BoundingBox struct {
	SW Coordinate
	NE Coordinate
}

// Contains reports whether c lies within the box, inclusive.
// Complexity: O(1).
func (b BoundingBox) Contains(c Coordinate) bool {
	return c.Lat >= b.SW.Lat && c.Lat <= b.NE.Lat &&
		c.Lng >= b.SW.Lng && c.Lng <= b.NE.Lng
}

// Center returns the midpoint of the box.
// Complexity: O(1).
func (b BoundingBox) Center() Coordinate {
	return Coordinate{
		Lat: (b.SW.Lat + b.NE.Lat) / 2,
		Lng: (b.SW.Lng + b.NE.Lng) / 2,
	}
}

// Width returns the longitudinal span of the box in degrees.
func (b BoundingBox) Width() float64 {
	return b.NE.Lng - b.SW.Lng
}

// Height returns the latitudinal span of the box in degrees.
func (b BoundingBox) Height() float64 {
	return b.NE.Lat - b.SW.Lat
}

// Decoded is the result of decoding a geohash: the cell center, rounded
// to six decimal places for display, and the exact bounding box (the
// bisector's final per-axis intervals, not rounded).
type Decoded struct {
	Center Coordinate
	Box    BoundingBox
}

// Precise extends Decoded with the worst-case positional error in
// meters implied by the hash length, per PrecisionMeters.
type Precise struct {
	Decoded
	PrecisionM float64
}

// Options configures an Engine.
//
// Fields:
//   - DefaultLength — hash length used by Engine.Encode when the caller
//     does not supply one. Clamped to [MinLength, MaxLength] by New.
//
// Example:
//
//	opts := geohash.DefaultOptions()
//	opts.DefaultLength = 7
//	eng := geohash.New(opts)
//	hash := eng.Encode(1.3521, 103.8198)
type Options struct {
	DefaultLength int
}

// DefaultOptions returns Options with DefaultLength = DefaultLength (9).
func DefaultOptions() Options {
	return Options{DefaultLength: DefaultLength}
}

// Engine binds a default hash length. It is immutable after New, so a
// single Engine may be shared across goroutines without synchronization;
// callers needing a different length per call should use the package
// functions with an explicit length instead.
type Engine struct {
	length int
}

// New constructs an Engine, clamping opts.DefaultLength into
// [MinLength, MaxLength]: zero or negative becomes MinLength, values
// above MaxLength become MaxLength.
func New(opts Options) *Engine {
	n := opts.DefaultLength
	if n < MinLength {
		n = MinLength
	}
	if n > MaxLength {
		n = MaxLength
	}

	return &Engine{length: n}
}

// Length returns the engine's default hash length.
func (e *Engine) Length() int {
	return e.length
}

// Encode encodes the coordinate at the engine's default length.
func (e *Engine) Encode(lat, lng float64) string {
	return Encode(lat, lng, e.length)
}

// Decode decodes hash; identical to the package-level Decode.
func (e *Engine) Decode(hash string) (Decoded, error) {
	return Decode(hash)
}

// DecodeWithPrecision decodes hash with its precision estimate;
// identical to the package-level DecodeWithPrecision.
func (e *Engine) DecodeWithPrecision(hash string) (Precise, error) {
	return DecodeWithPrecision(hash)
}

// PrecisionMeters returns the precision estimate for the engine's
// default length.
func (e *Engine) PrecisionMeters() float64 {
	return PrecisionMeters(e.length)
}
