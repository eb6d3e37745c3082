package geohash_test

import (
	"testing"

	"github.com/katalvlaran/lvlgeo/geohash"
)

// benchmarkEncode is a helper that encodes a fixed coordinate at the
// given length. It resets the timer before entering the loop.
func benchmarkEncode(b *testing.B, length int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = geohash.Encode(57.64911, 10.40744, length)
	}
}

// BenchmarkEncode_Len6 benchmarks street-block precision.
func BenchmarkEncode_Len6(b *testing.B) {
	benchmarkEncode(b, 6)
}

// BenchmarkEncode_Len9 benchmarks the default precision.
func BenchmarkEncode_Len9(b *testing.B) {
	benchmarkEncode(b, 9)
}

// BenchmarkEncode_Len12 benchmarks maximum default precision.
func BenchmarkEncode_Len12(b *testing.B) {
	benchmarkEncode(b, 12)
}

// BenchmarkDecode benchmarks decoding an 11-character hash.
func BenchmarkDecode(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := geohash.Decode("u4pruydqqvj"); err != nil {
			b.Fatalf("Decode failed: %v", err)
		}
	}
}

// BenchmarkDecodeWithPrecision benchmarks decode plus precision math.
func BenchmarkDecodeWithPrecision(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := geohash.DecodeWithPrecision("u4pruydqqvj"); err != nil {
			b.Fatalf("DecodeWithPrecision failed: %v", err)
		}
	}
}
