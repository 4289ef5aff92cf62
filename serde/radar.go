package serde

import (
	"fmt"
	"io"
	"strings"

	carlaserde "github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/errors"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/sim"
)

type radarWire struct {
	DetectionAmount int             `json:"detection_amount" cbor:"detection_amount" msgpack:"detection_amount"`
	Detections      []detectionWire `json:"detections" cbor:"detections" msgpack:"detections"`
	Len             int             `json:"len" cbor:"len" msgpack:"len"`
	IsEmpty         bool            `json:"is_empty" cbor:"is_empty" msgpack:"is_empty"`
}

// RadarBorrowed is the zero-copy view adapter over a radar sweep. It keeps a
// reference into the event's detection storage: encode-only, must not
// outlive the event.
type RadarBorrowed struct {
	DetectionAmount int
	Len             int
	IsEmpty         bool

	detections []sim.RadarDetection // view into the event's buffer
}

// NewRadarBorrowed builds a borrowed adapter from a radar sweep without
// copying any detection.
func NewRadarBorrowed(m *sim.RadarMeasurement) RadarBorrowed {
	return RadarBorrowed{
		DetectionAmount: m.DetectionAmount(),
		Len:             m.Len(),
		IsEmpty:         m.IsEmpty(),
		detections:      m.AsSlice(),
	}
}

// Detections returns the borrowed detection view.
func (r RadarBorrowed) Detections() []sim.RadarDetection { return r.detections }

// Encode serializes the borrowed view through c. The detection payload is
// reinterpreted in place; no element is copied.
func (r RadarBorrowed) Encode(c carlaserde.Codec) ([]byte, error) {
	return c.Marshal(radarWire{
		DetectionAmount: r.DetectionAmount,
		Detections:      viewSlice[sim.RadarDetection, detectionWire](r.detections),
		Len:             r.Len,
		IsEmpty:         r.IsEmpty,
	})
}

// RadarOwned is the round-trip adapter for a radar sweep. It owns a copy of
// the detection list and supports both encode and decode.
type RadarOwned struct {
	DetectionAmount int
	Detections      []sim.RadarDetection
	Len             int
	IsEmpty         bool
}

// NewRadarOwned builds an owned adapter by copying the sweep's detections.
func NewRadarOwned(m *sim.RadarMeasurement) RadarOwned {
	return RadarOwned{
		DetectionAmount: m.DetectionAmount(),
		Detections:      copySeq(m.AsSlice()),
		Len:             m.Len(),
		IsEmpty:         m.IsEmpty(),
	}
}

// Encode serializes the owned adapter through c.
func (r RadarOwned) Encode(c carlaserde.Codec) ([]byte, error) {
	return c.Marshal(radarWire{
		DetectionAmount: r.DetectionAmount,
		Detections:      viewSlice[sim.RadarDetection, detectionWire](r.Detections),
		Len:             r.Len,
		IsEmpty:         r.IsEmpty,
	})
}

// DecodeRadar reconstructs an owned radar adapter from encoded bytes. A
// header that disagrees with the decoded detection count fails with
// schema_mismatch.
func DecodeRadar(c carlaserde.Codec, data []byte) (RadarOwned, error) {
	var w radarWire
	if err := c.Unmarshal(data, &w); err != nil {
		debugf("radar decode: %v", err)
		return RadarOwned{}, err
	}

	n := len(w.Detections)
	if w.DetectionAmount != n || w.Len != n || w.IsEmpty != (n == 0) {
		err := errors.New(errors.PhaseDecode, errors.KindSchemaMismatch).
			Sensor("radar").
			Detail("header detection_amount %d, len %d, is_empty %t disagree with %d decoded detections",
				w.DetectionAmount, w.Len, w.IsEmpty, n).
			Build()
		debugf("radar decode: %v", err)
		return RadarOwned{}, err
	}

	return RadarOwned{
		DetectionAmount: w.DetectionAmount,
		Detections: decodeSeq(w.Detections, func(d detectionWire) sim.RadarDetection {
			return sim.RadarDetection(d)
		}),
		Len:     w.Len,
		IsEmpty: w.IsEmpty,
	}, nil
}

func writeDetection(out io.Writer, d sim.RadarDetection) {
	fmt.Fprintf(out, "{ velocity: %v, azimuth: %v, altitude: %v, depth: %v }",
		d.Velocity, d.Azimuth, d.Altitude, d.Depth)
}

func renderRadar(out fmt.State, name string, amount, length int, isEmpty bool, detections []sim.RadarDetection, full bool) {
	fmt.Fprintf(out, "%s{detection_amount: %d, len: %d, is_empty: %t, ..}\ndetections ",
		name, amount, length, isEmpty)
	if full {
		fmt.Fprintf(out, "(full, %d total) = ", length)
		writeSeqFull(out, detections, writeDetection)
		return
	}
	fmt.Fprintf(out, "(preview showing %d of %d) = ", min(PreviewDetections, length), length)
	writeSeqPreview(out, detections, PreviewDetections, writeDetection)
}

// Format implements fmt.Formatter: %v shows at most PreviewDetections
// detections with a remaining-count elision line, %+v shows all of them.
func (r RadarBorrowed) Format(f fmt.State, verb rune) {
	renderRadar(f, "RadarBorrowed", r.DetectionAmount, r.Len, r.IsEmpty, r.detections, f.Flag('+'))
}

// String renders the bounded preview.
func (r RadarBorrowed) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", r)
	return b.String()
}

// Format implements fmt.Formatter: %v shows at most PreviewDetections
// detections with a remaining-count elision line, %+v shows all of them.
func (r RadarOwned) Format(f fmt.State, verb rune) {
	renderRadar(f, "RadarOwned", r.DetectionAmount, r.Len, r.IsEmpty, r.Detections, f.Flag('+'))
}

// String renders the bounded preview.
func (r RadarOwned) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", r)
	return b.String()
}
