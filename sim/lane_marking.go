package sim

// LaneMarkingType identifies the kind of road marking that was crossed.
// The numeric values are fixed by the simulator's road definition.
type LaneMarkingType uint8

const (
	MarkingTypeOther LaneMarkingType = iota
	MarkingTypeBroken
	MarkingTypeSolid
	MarkingTypeSolidSolid
	MarkingTypeSolidBroken
	MarkingTypeBrokenSolid
	MarkingTypeBrokenBroken
	MarkingTypeBottsDots
	MarkingTypeGrass
	MarkingTypeCurb
	MarkingTypeNone
)

var markingTypeNames = [...]string{
	MarkingTypeOther:        "Other",
	MarkingTypeBroken:       "Broken",
	MarkingTypeSolid:        "Solid",
	MarkingTypeSolidSolid:   "SolidSolid",
	MarkingTypeSolidBroken:  "SolidBroken",
	MarkingTypeBrokenSolid:  "BrokenSolid",
	MarkingTypeBrokenBroken: "BrokenBroken",
	MarkingTypeBottsDots:    "BottsDots",
	MarkingTypeGrass:        "Grass",
	MarkingTypeCurb:         "Curb",
	MarkingTypeNone:         "None",
}

func (t LaneMarkingType) String() string {
	if int(t) < len(markingTypeNames) {
		return markingTypeNames[t]
	}
	return "unknown"
}

// LaneMarkingColor is the painted color of a road marking.
type LaneMarkingColor uint8

const (
	MarkingColorStandard LaneMarkingColor = iota // white
	MarkingColorBlue
	MarkingColorGreen
	MarkingColorRed
	MarkingColorYellow
	MarkingColorOther
)

var markingColorNames = [...]string{
	MarkingColorStandard: "Standard",
	MarkingColorBlue:     "Blue",
	MarkingColorGreen:    "Green",
	MarkingColorRed:      "Red",
	MarkingColorYellow:   "Yellow",
	MarkingColorOther:    "Other",
}

func (c LaneMarkingColor) String() string {
	if int(c) < len(markingColorNames) {
		return markingColorNames[c]
	}
	return "unknown"
}

// LaneChange encodes the crossing permission a marking grants.
type LaneChange uint8

const (
	LaneChangeNone LaneChange = iota
	LaneChangeRight
	LaneChangeLeft
	LaneChangeBoth
)

var laneChangeNames = [...]string{
	LaneChangeNone:  "None",
	LaneChangeRight: "Right",
	LaneChangeLeft:  "Left",
	LaneChangeBoth:  "Both",
}

func (l LaneChange) String() string {
	if int(l) < len(laneChangeNames) {
		return laneChangeNames[l]
	}
	return "unknown"
}

// LaneMarking describes one road marking crossed by the vehicle.
type LaneMarking struct {
	markingType LaneMarkingType
	color       LaneMarkingColor
	laneChange  LaneChange
	width       float64
}

// NewLaneMarking constructs a lane marking descriptor.
func NewLaneMarking(t LaneMarkingType, c LaneMarkingColor, lc LaneChange, width float64) LaneMarking {
	return LaneMarking{markingType: t, color: c, laneChange: lc, width: width}
}

// Type returns the marking kind.
func (m LaneMarking) Type() LaneMarkingType { return m.markingType }

// Color returns the marking color.
func (m LaneMarking) Color() LaneMarkingColor { return m.color }

// LaneChange returns the crossing permission.
func (m LaneMarking) LaneChange() LaneChange { return m.laneChange }

// Width returns the marking width in meters.
func (m LaneMarking) Width() float64 { return m.width }
