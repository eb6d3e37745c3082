package bisect

// Axis bounds for the two geographic coordinate axes.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Interval is a closed scalar range [Min, Max] being narrowed by
// successive halvings. The zero value is the degenerate range [0, 0];
// use Latitude, Longitude, or a literal for meaningful bounds.
type Interval struct {
	Min, Max float64
}

// Latitude returns the whole latitude axis [-90, 90].
func Latitude() Interval {
	return Interval{Min: MinLatitude, Max: MaxLatitude}
}

// Longitude returns the whole longitude axis [-180, 180].
func Longitude() Interval {
	return Interval{Min: MinLongitude, Max: MaxLongitude}
}

// Mid returns the midpoint of the interval.
// Complexity: O(1).
func (iv Interval) Mid() float64 {
	return (iv.Min + iv.Max) / 2
}

// Width returns the span Max - Min.
// Complexity: O(1).
func (iv Interval) Width() float64 {
	return iv.Max - iv.Min
}

// Contains reports whether v lies within the interval, inclusive.
// Complexity: O(1).
func (iv Interval) Contains(v float64) bool {
	return v >= iv.Min && v <= iv.Max
}

// EncodeBit halves the interval around v and returns the emitted bit:
// 1 when v ≥ midpoint (upper half kept), 0 otherwise (lower half kept).
// The ≥ tie rule matches DecodeBit, guaranteeing round-trip determinism.
// Complexity: O(1).
func (iv *Interval) EncodeBit(v float64) byte {
	mid := iv.Mid()
	if v >= mid {
		iv.Min = mid

		return 1
	}
	iv.Max = mid

	return 0
}

// DecodeBit halves the interval using a previously emitted bit:
// non-zero keeps the upper half, zero keeps the lower half.
// Complexity: O(1).
func (iv *Interval) DecodeBit(b byte) {
	mid := iv.Mid()
	if b != 0 {
		iv.Min = mid

		return
	}
	iv.Max = mid
}

// EncodeBits emits n bits locating v inside iv, narrowing iv as it goes.
// n ≤ 0 emits nothing and leaves iv unmodified.
// Complexity: O(n).
func EncodeBits(v float64, iv Interval, n int) ([]byte, Interval) {
	if n <= 0 {
		return nil, iv
	}
	bits := make([]byte, n)
	for i := range bits {
		bits[i] = iv.EncodeBit(v)
	}

	return bits, iv
}

// Decode walks the halving sequence of bits inside iv and returns the
// midpoint of the final interval along with the interval itself.
// An empty stream returns the midpoint of the whole range.
// Complexity: O(len(bits)).
func Decode(bits []byte, iv Interval) (float64, Interval) {
	for _, b := range bits {
		iv.DecodeBit(b)
	}

	return iv.Mid(), iv
}
