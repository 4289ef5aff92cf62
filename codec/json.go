package codec

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/errors"
)

// JSON is the strict JSON backend. Struct fields are emitted in declaration
// order, which is what keeps the remote schemas' wire field order stable.
type JSON struct{}

// Name returns "json".
func (JSON) Name() string { return "json" }

// Code returns the wire discriminator for JSON.
func (JSON) Code() byte { return 1 }

// Marshal encodes v as JSON.
func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes data into v, rejecting unknown fields.
func (JSON) Unmarshal(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return classifyJSON(err)
	}
	return nil
}

func classifyJSON(err error) error {
	switch e := err.(type) {
	case *json.UnmarshalTypeError:
		path := []string{}
		if e.Field != "" {
			path = strings.Split(e.Field, ".")
		}
		return errors.New(errors.PhaseDecode, errors.KindMalformedElement).
			Path(path...).
			Detail("cannot decode JSON %s into Go %s", e.Value, e.Type).
			Cause(err).
			Build()
	case *json.SyntaxError:
		return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "invalid JSON")
	}
	// encoding/json reports unknown fields through a plain error value.
	if strings.HasPrefix(err.Error(), "json: unknown field") {
		return errors.Wrap(errors.PhaseDecode, errors.KindSchemaMismatch, err, "unknown field")
	}
	return errors.Wrap(errors.PhaseDecode, errors.KindInvalidData, err, "decode failed")
}
