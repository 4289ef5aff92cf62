package serde

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	carlaserde "github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/sim"
)

type laneInvasionWire struct {
	CrossedLaneMarkings []markingWire `json:"crossed_lane_markings" cbor:"crossed_lane_markings" msgpack:"crossed_lane_markings"`
}

// LaneInvasion is the owned adapter for a lane invasion event. The payload
// is a handful of derived marking descriptors with no contiguous foreign
// buffer to borrow, so the adapter is owned-only.
type LaneInvasion struct {
	CrossedLaneMarkings []sim.LaneMarking
}

// NewLaneInvasion builds the adapter by copying the event's crossed
// markings in order.
func NewLaneInvasion(ev *sim.LaneInvasionEvent) LaneInvasion {
	return LaneInvasion{CrossedLaneMarkings: copySeq(ev.CrossedLaneMarkings())}
}

// Encode serializes the event through c. The marking enums travel as their
// integer tags.
func (e LaneInvasion) Encode(c carlaserde.Codec) ([]byte, error) {
	wire := laneInvasionWire{
		CrossedLaneMarkings: make([]markingWire, len(e.CrossedLaneMarkings)),
	}
	for i, m := range e.CrossedLaneMarkings {
		wire.CrossedLaneMarkings[i] = markingToWire(m)
	}
	return c.Marshal(wire)
}

// DecodeLaneInvasion reconstructs a lane invasion adapter from encoded
// bytes. Any enum tag outside its declared set fails with unknown_variant;
// markings decoded before the failure are discarded.
func DecodeLaneInvasion(c carlaserde.Codec, data []byte) (LaneInvasion, error) {
	var wire laneInvasionWire
	if err := c.Unmarshal(data, &wire); err != nil {
		debugf("lane invasion decode: %v", err)
		return LaneInvasion{}, err
	}

	markings := make([]sim.LaneMarking, len(wire.CrossedLaneMarkings))
	for i, w := range wire.CrossedLaneMarkings {
		path := []string{"crossed_lane_markings", "[" + strconv.Itoa(i) + "]"}
		m, err := markingFromWire(w, path)
		if err != nil {
			debugf("lane invasion decode: %v", err)
			return LaneInvasion{}, err
		}
		markings[i] = m
	}
	return LaneInvasion{CrossedLaneMarkings: markings}, nil
}

func writeMarking(out io.Writer, m sim.LaneMarking) {
	fmt.Fprintf(out, "{ marking_type: %s, marking_color: %s, lane_change: %s, width: %v }",
		m.Type(), m.Color(), m.LaneChange(), m.Width())
}

// Format implements fmt.Formatter. The marking list is small by nature, so
// both modes render it in full with enum names instead of tags.
func (e LaneInvasion) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, "LaneInvasion{..}\ncrossed_lane_markings (%d total) = ", len(e.CrossedLaneMarkings))
	writeSeqFull(f, e.CrossedLaneMarkings, writeMarking)
}

// String renders the event.
func (e LaneInvasion) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", e)
	return b.String()
}
