// Package codec converts between raw file bytes and decoded text.
//
// The line store treats encoding as an external concern: it consumes a
// Decoder on load and an Encoder on save. This package supplies both for
// UTF-8 (with or without BOM) and for BOM-marked UTF-16 and UTF-32 in
// either byte order, and can pick the right codec for a byte stream by
// inspecting its BOM. Encoding re-emits the BOM that decoding consumed,
// so a load/save pair is byte-exact.
package codec
