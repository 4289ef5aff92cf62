package codec

import (
	carlaserde "github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/errors"
)

// Compressed combines a codec with a compressor: Marshal output is
// compressed, Unmarshal input is uncompressed first.
type Compressed struct {
	Codec      carlaserde.Codec
	Compressor carlaserde.Compressor
}

// Name returns "<codec>+<compressor>", e.g. "cbor+snappy".
func (c Compressed) Name() string {
	return c.Codec.Name() + "+" + c.Compressor.Name()
}

// Code packs the compressor code into the high nibble and the codec code
// into the low nibble. Both underlying codes must stay below 16.
func (c Compressed) Code() byte {
	return c.Compressor.Code()<<4 | c.Codec.Code()&0x0f
}

// Marshal encodes v with the codec, then compresses the result.
func (c Compressed) Marshal(v any) ([]byte, error) {
	data, err := c.Codec.Marshal(v)
	if err != nil {
		return nil, err
	}
	out, err := c.Compressor.Compress(data)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseEncode, errors.KindInvalidData, err, "compress failed")
	}
	return out, nil
}

// Unmarshal uncompresses data, then decodes it with the codec.
func (c Compressed) Unmarshal(data []byte, v any) error {
	raw, err := c.Compressor.Uncompress(data)
	if err != nil {
		return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "uncompress failed")
	}
	return c.Codec.Unmarshal(raw, v)
}
