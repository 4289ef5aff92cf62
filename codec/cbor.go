package codec

import (
	"github.com/fxamacker/cbor/v2"

	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/errors"
)

// cborDec rejects unknown struct fields, matching the JSON backend's
// strictness. Built once; DecOptions are valid by construction.
var cborDec, _ = cbor.DecOptions{
	ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
}.DecMode()

// CBOR is the strict CBOR backend.
type CBOR struct{}

// Name returns "cbor".
func (CBOR) Name() string { return "cbor" }

// Code returns the wire discriminator for CBOR.
func (CBOR) Code() byte { return 2 }

// Marshal encodes v as CBOR.
func (CBOR) Marshal(v any) ([]byte, error) {
	return cbor.Marshal(v)
}

// Unmarshal decodes data into v, rejecting unknown fields.
func (CBOR) Unmarshal(data []byte, v any) error {
	if err := cborDec.Unmarshal(data, v); err != nil {
		return classifyCBOR(err)
	}
	return nil
}

func classifyCBOR(err error) error {
	switch e := err.(type) {
	case *cbor.UnknownFieldError:
		return errors.Wrap(errors.PhaseDecode, errors.KindSchemaMismatch, err, "unknown field")
	case *cbor.UnmarshalTypeError:
		b := errors.New(errors.PhaseDecode, errors.KindMalformedElement).
			Detail("cannot decode CBOR %s into Go %s", e.CBORType, e.GoType).
			Cause(err)
		if e.StructFieldName != "" {
			b = b.Path(e.StructFieldName)
		}
		return b.Build()
	}
	return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "decode failed")
}
