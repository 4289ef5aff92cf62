// Package compress provides the carlaserde.Compressor implementations used
// to shrink encoded sensor frames.
//
// Four algorithms are shipped: Gzip and Zlib from the standard library, and
// Snappy and LZ4 for the frequent-compress / fast-decompress pattern typical
// of recorded sensor streams. Each carries a stable one-byte wire code so a
// recording tool can tag frames with the algorithm that produced them.
//
// All compressors are stateless and safe for concurrent use.
package compress
