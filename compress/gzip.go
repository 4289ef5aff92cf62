package compress

import (
	"bytes"
	stdgzip "compress/gzip"
	stdzlib "compress/zlib"
	"io"
)

// Gzip compresses with the standard library's gzip at default level.
type Gzip struct{}

// Name returns "gzip".
func (Gzip) Name() string { return "gzip" }

// Code returns the wire discriminator for gzip.
func (Gzip) Code() byte { return 1 }

// Compress gzips data.
func (Gzip) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := stdgzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	// Close, not just Flush: the gzip footer is written on Close.
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Uncompress gunzips data.
func (Gzip) Uncompress(data []byte) ([]byte, error) {
	r, err := stdgzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

// Zlib compresses with the standard library's zlib at default level.
type Zlib struct{}

// Name returns "zlib".
func (Zlib) Name() string { return "zlib" }

// Code returns the wire discriminator for zlib.
func (Zlib) Code() byte { return 4 }

// Compress deflates data.
func (Zlib) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := stdzlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Uncompress inflates data.
func (Zlib) Uncompress(data []byte) ([]byte, error) {
	r, err := stdzlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}
