// Package geojson renders geohash cells as GeoJSON features.
//
// What:
//
//   - Collection decodes a hash and emits a FeatureCollection holding a
//     Polygon feature for the cell's bounding box and, optionally, a
//     Point feature for its center.
//   - Options.PadMeters grows the box by a caller-supplied margin before
//     export. The margin is converted to degrees at 111320 m/degree,
//     with a cosine(latitude) correction applied to the longitude axis —
//     unlike geohash.PrecisionMeters, which stays deliberately flat.
//
// Why:
//
//   - The feature properties carry the hash and its precision estimate,
//     so downstream map layers can label cells without re-decoding.
//
// Errors:
//
//   - ErrNegativePad: Options.PadMeters is negative.
//   - base32.ErrInvalidCharacter: propagated from decoding the hash.
//
// Coordinates follow the GeoJSON order, [longitude, latitude], and the
// polygon ring is closed (first position repeated last). Padding very
// close to the poles is not meaningful: the cosine correction tends to
// zero there and the longitude margin blows up accordingly.
package geojson
