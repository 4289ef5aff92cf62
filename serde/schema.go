package serde

import (
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/errors"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/sim"
)

// pixelWire is the remote schema for sim.Color. Wire field order is the
// foreign storage order (b, g, r, a) and must never be reordered: the
// conversion below audits the field set at compile time, but Go cannot
// verify declaration order, so order stays a hand-audited contract.
type pixelWire struct {
	B uint8 `json:"b" cbor:"b" msgpack:"b"`
	G uint8 `json:"g" cbor:"g" msgpack:"g"`
	R uint8 `json:"r" cbor:"r" msgpack:"r"`
	A uint8 `json:"a" cbor:"a" msgpack:"a"`
}

var _ = pixelWire(sim.Color{})
var _ = sim.Color(pixelWire{})

// detectionWire is the remote schema for sim.RadarDetection.
type detectionWire struct {
	Velocity float32 `json:"velocity" cbor:"velocity" msgpack:"velocity"`
	Azimuth  float32 `json:"azimuth" cbor:"azimuth" msgpack:"azimuth"`
	Altitude float32 `json:"altitude" cbor:"altitude" msgpack:"altitude"`
	Depth    float32 `json:"depth" cbor:"depth" msgpack:"depth"`
}

var _ = detectionWire(sim.RadarDetection{})
var _ = sim.RadarDetection(detectionWire{})

// Vector3 is the remote schema for sim.Vector3D, exported because the IMU
// adapter embeds it in its own wire shape.
type Vector3 struct {
	X float32 `json:"x" cbor:"x" msgpack:"x"`
	Y float32 `json:"y" cbor:"y" msgpack:"y"`
	Z float32 `json:"z" cbor:"z" msgpack:"z"`
}

var _ = Vector3(sim.Vector3D{})
var _ = sim.Vector3D(Vector3{})

// Closed enum tag sets for the lane-marking shims. The numeric tags mirror
// the simulator's road definition exactly; see sim.LaneMarkingType and
// friends.
const (
	maxMarkingTypeTag  = uint64(sim.MarkingTypeNone)   // 10
	maxMarkingColorTag = uint64(sim.MarkingColorOther) // 5
	maxLaneChangeTag   = uint64(sim.LaneChangeBoth)    // 3
)

// markingWire is the remote schema for sim.LaneMarking. The three enum
// fields travel as their integer tags.
type markingWire struct {
	MarkingType  uint8   `json:"marking_type" cbor:"marking_type" msgpack:"marking_type"`
	MarkingColor uint8   `json:"marking_color" cbor:"marking_color" msgpack:"marking_color"`
	LaneChange   uint8   `json:"lane_change" cbor:"lane_change" msgpack:"lane_change"`
	Width        float64 `json:"width" cbor:"width" msgpack:"width"`
}

func markingToWire(m sim.LaneMarking) markingWire {
	return markingWire{
		MarkingType:  uint8(m.Type()),
		MarkingColor: uint8(m.Color()),
		LaneChange:   uint8(m.LaneChange()),
		Width:        m.Width(),
	}
}

// markingFromWire reconstructs the foreign marking, validating every enum
// tag against its declared set.
func markingFromWire(w markingWire, path []string) (sim.LaneMarking, error) {
	if uint64(w.MarkingType) > maxMarkingTypeTag {
		return sim.LaneMarking{}, errors.UnknownVariant(errors.PhaseDecode,
			append(path, "marking_type"), uint64(w.MarkingType), maxMarkingTypeTag)
	}
	if uint64(w.MarkingColor) > maxMarkingColorTag {
		return sim.LaneMarking{}, errors.UnknownVariant(errors.PhaseDecode,
			append(path, "marking_color"), uint64(w.MarkingColor), maxMarkingColorTag)
	}
	if uint64(w.LaneChange) > maxLaneChangeTag {
		return sim.LaneMarking{}, errors.UnknownVariant(errors.PhaseDecode,
			append(path, "lane_change"), uint64(w.LaneChange), maxLaneChangeTag)
	}
	return sim.NewLaneMarking(
		sim.LaneMarkingType(w.MarkingType),
		sim.LaneMarkingColor(w.MarkingColor),
		sim.LaneChange(w.LaneChange),
		w.Width,
	), nil
}
