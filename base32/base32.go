package base32

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet is the canonical geohash base-32 symbol set.
// Index i holds the character for the 5-bit value i.
const Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

// SymbolBits is the number of bits each alphabet character carries.
const SymbolBits = 5

// Sentinel errors for base32 operations.
var (
	// ErrInvalidCharacter indicates a character outside the alphabet.
	ErrInvalidCharacter = errors.New("base32: invalid geohash character")

	// ErrBitCount indicates Encode received a bit count not divisible by SymbolBits.
	ErrBitCount = errors.New("base32: bit count must be a multiple of 5")
)

// indexOf maps a byte to its alphabet index, or -1 when absent.
// Built once at package init; O(1) lookups afterwards.
var indexOf [256]int8

func init() {
	for i := range indexOf {
		indexOf[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		indexOf[Alphabet[i]] = int8(i)
	}
}

// Symbol returns the alphabet character for the 5-bit value v.
// Only the low 5 bits of v are significant.
// Complexity: O(1).
func Symbol(v byte) byte {
	return Alphabet[v&0x1F]
}

// Index returns the 5-bit value of the alphabet character c.
// Returns ErrInvalidCharacter when c is not a member of the alphabet;
// membership is strict, so uppercase letters and a/i/l/o are rejected.
// Complexity: O(1).
func Index(c byte) (byte, error) {
	idx := indexOf[c]
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCharacter, c)
	}

	return byte(idx), nil
}

// Encode renders bits as alphabet characters, consuming SymbolBits bits
// per character with the most significant bit of each group first.
// Each element of bits must be 0 or 1; any non-zero value counts as 1.
// Returns ErrBitCount when len(bits) is not a multiple of SymbolBits.
// Complexity: O(len(bits)).
func Encode(bits []byte) (string, error) {
	if len(bits)%SymbolBits != 0 {
		return "", fmt.Errorf("%w: got %d", ErrBitCount, len(bits))
	}

	var sb strings.Builder
	sb.Grow(len(bits) / SymbolBits)

	var group byte
	for i, b := range bits {
		group <<= 1
		if b != 0 {
			group |= 1
		}
		if i%SymbolBits == SymbolBits-1 {
			sb.WriteByte(Symbol(group))
			group = 0
		}
	}

	return sb.String(), nil
}

// Decode recovers the bit stream of hash, SymbolBits bits per character,
// most significant bit of each group first. The result has length
// len(hash)*SymbolBits and every element is 0 or 1.
// Returns ErrInvalidCharacter (with offending character and position)
// on the first character outside the alphabet.
// Complexity: O(len(hash)).
func Decode(hash string) ([]byte, error) {
	bits := make([]byte, 0, len(hash)*SymbolBits)
	for i := 0; i < len(hash); i++ {
		v, err := Index(hash[i])
		if err != nil {
			return nil, fmt.Errorf("%w at index %d", err, i)
		}
		for shift := SymbolBits - 1; shift >= 0; shift-- {
			bits = append(bits, (v>>shift)&1)
		}
	}

	return bits, nil
}
