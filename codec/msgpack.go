package codec

import (
	"bytes"
	"strings"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/errors"
)

// Msgpack is the strict msgpack backend.
type Msgpack struct{}

// Name returns "msgpack".
func (Msgpack) Name() string { return "msgpack" }

// Code returns the wire discriminator for msgpack.
func (Msgpack) Code() byte { return 3 }

// Marshal encodes v as msgpack.
func (Msgpack) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

// Unmarshal decodes data into v, rejecting unknown fields.
func (Msgpack) Unmarshal(data []byte, v any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields(true)
	if err := dec.Decode(v); err != nil {
		return classifyMsgpack(err)
	}
	return nil
}

func classifyMsgpack(err error) error {
	// The msgpack library reports both unknown-field and type-shape failures
	// as plain error values; the prefix is the only discriminator it offers.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "unknown field"):
		return errors.Wrap(errors.PhaseDecode, errors.KindSchemaMismatch, err, "unknown field")
	case strings.Contains(msg, "invalid code"):
		return errors.Wrap(errors.PhaseDecode, errors.KindMalformedElement, err, "unexpected wire type")
	}
	return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "decode failed")
}
