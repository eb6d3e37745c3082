package interleave

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch indicates the longitude stream is not equal to or
// exactly one bit longer than the latitude stream.
var ErrLengthMismatch = errors.New("interleave: longitude stream must be equal to or one bit longer than latitude stream")

// Merge combines the longitude and latitude bit streams into one stream
// of length len(lng)+len(lat): longitude on even positions, latitude on
// odd, starting with longitude. When the total bit count is odd the
// longitude stream contributes the final unpaired bit.
// Returns ErrLengthMismatch unless len(lng)-len(lat) is 0 or 1.
// Complexity: O(n).
func Merge(lng, lat []byte) ([]byte, error) {
	if d := len(lng) - len(lat); d != 0 && d != 1 {
		return nil, fmt.Errorf("%w: got %d longitude and %d latitude bits", ErrLengthMismatch, len(lng), len(lat))
	}

	bits := make([]byte, 0, len(lng)+len(lat))
	for i := range lng {
		bits = append(bits, lng[i])
		if i < len(lat) {
			bits = append(bits, lat[i])
		}
	}

	return bits, nil
}

// Split demultiplexes a combined stream back into its longitude (even
// positions) and latitude (odd positions) halves. Any length is valid;
// the longitude half receives the extra bit when len(bits) is odd.
// Complexity: O(n).
func Split(bits []byte) (lng, lat []byte) {
	lng = make([]byte, 0, (len(bits)+1)/2)
	lat = make([]byte, 0, len(bits)/2)
	for i, b := range bits {
		if i%2 == 0 {
			lng = append(lng, b)
		} else {
			lat = append(lat, b)
		}
	}

	return lng, lat
}
