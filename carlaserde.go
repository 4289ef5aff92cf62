package carlaserde

// Codec is a pluggable serialization backend. Implementations marshal the
// adapters' wire representations to and from bytes; the adapters themselves
// never depend on a concrete format.
type Codec interface {
	// Name returns the format name, e.g. "json".
	Name() string
	// Code returns the stable one-byte wire discriminator for this format.
	Code() byte
	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)
	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Compressor compresses encoded frames before they reach a sink. It is
// orthogonal to Codec; see codec.Compressed for the combination.
type Compressor interface {
	// Name returns the algorithm name, e.g. "snappy".
	Name() string
	// Code returns the stable one-byte wire discriminator for this algorithm.
	Code() byte
	Compress(data []byte) ([]byte, error)
	Uncompress(data []byte) ([]byte, error)
}
