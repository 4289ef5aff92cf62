// Package codec provides the serialization backends the sensor adapters
// encode through.
//
// Every backend implements the carlaserde.Codec contract. Three formats are
// shipped:
//
//	JSON     human-readable, strict (unknown fields rejected)
//	CBOR     compact binary, strict (unknown fields rejected)
//	Msgpack  compact binary, strict (unknown fields rejected)
//
// Backends classify their own decode failures into the structured kinds from
// the errors package: unknown wire fields surface as schema_mismatch,
// type-shape violations as malformed_element, undecodable input as
// invalid_data. Adapters add sensor and field context on top; they never
// retry.
//
// Compressed wraps any codec with a carlaserde.Compressor so large frames
// (image grids) shrink before they reach a sink:
//
//	c := codec.Compressed{Codec: codec.CBOR{}, Compressor: compress.Snappy{}}
//
// Codecs are stateless and safe for concurrent use.
package codec
