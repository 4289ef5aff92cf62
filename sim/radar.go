package sim

// RadarMeasurement is one radar sweep: an ordered list of detections.
type RadarMeasurement struct {
	detections []RadarDetection
}

// NewRadarMeasurement constructs a radar sweep event.
func NewRadarMeasurement(detections []RadarDetection) *RadarMeasurement {
	return &RadarMeasurement{detections: detections}
}

// DetectionAmount returns the number of detections in the sweep.
func (m *RadarMeasurement) DetectionAmount() int { return len(m.detections) }

// AsSlice returns the detection storage. The slice is a view into the
// event's buffer: read-only, valid only while the event is alive.
func (m *RadarMeasurement) AsSlice() []RadarDetection { return m.detections }

// Len returns the number of detections.
func (m *RadarMeasurement) Len() int { return len(m.detections) }

// IsEmpty reports whether the sweep holds no detections.
func (m *RadarMeasurement) IsEmpty() bool { return len(m.detections) == 0 }
