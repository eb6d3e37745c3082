package share

import (
	"errors"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/katalvlaran/lvlgeo/base32"
)

// PathSegment is the fixed path component between the base URL and the
// hash in every share link.
const PathSegment = "geo"

// DefaultQRSize is the edge length in pixels used when QRPNG receives a
// non-positive size.
const DefaultQRSize = 256

// ErrEmptyBase indicates URL was called without a base URL.
var ErrEmptyBase = errors.New("share: base URL must not be empty")

// URL builds the share link <base>/geo/<hash>, normalizing duplicate
// slashes. The hash is checked for alphabet membership first; the base
// is otherwise taken as given.
// Complexity: O(len(hash)).
func URL(base, hash string) (string, error) {
	if base == "" {
		return "", ErrEmptyBase
	}
	if err := validate(hash); err != nil {
		return "", err
	}

	return url.JoinPath(base, PathSegment, hash)
}

// QRPNG renders the share link for hash as a QR code PNG of size×size
// pixels. A non-positive size falls back to DefaultQRSize.
// Complexity: dominated by the QR encoder, O(size²) pixels.
func QRPNG(base, hash string, size int) ([]byte, error) {
	link, err := URL(base, hash)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = DefaultQRSize
	}

	return qrcode.Encode(link, qrcode.Medium, size)
}

// validate checks every character of hash for alphabet membership.
func validate(hash string) error {
	for i := 0; i < len(hash); i++ {
		if _, err := base32.Index(hash[i]); err != nil {
			return err
		}
	}

	return nil
}
