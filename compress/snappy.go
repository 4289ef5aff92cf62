package compress

import (
	"bytes"
	"io"

	"github.com/golang/snappy"
)

// Snappy compresses with the snappy framing format.
type Snappy struct{}

// Name returns "snappy".
func (Snappy) Name() string { return "snappy" }

// Code returns the wire discriminator for snappy.
func (Snappy) Code() byte { return 3 }

// Compress snappy-encodes data.
func (Snappy) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := snappy.NewBufferedWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	// Close must be called explicitly: buffered frames are only flushed to
	// the underlying writer on Close.
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Uncompress snappy-decodes data.
func (Snappy) Uncompress(data []byte) ([]byte, error) {
	r := snappy.NewReader(bytes.NewReader(data))
	res, err := io.ReadAll(r)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return res, nil
}
