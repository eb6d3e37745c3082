// Package share turns a geohash into shareable artifacts: a link and a
// QR code.
//
// What:
//
//   - URL joins a base URL, the fixed "geo" path segment, and the hash.
//   - QRPNG renders a share link as a real QR symbol in PNG form, via
//     github.com/skip2/go-qrcode.
//
// The hash is validated for alphabet membership before either artifact
// is produced, so a link never carries a string that cannot be decoded.
//
// Errors:
//
//   - ErrEmptyBase: no base URL supplied.
//   - base32.ErrInvalidCharacter: the hash contains a character outside
//     the geohash alphabet.
package share
