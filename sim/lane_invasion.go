package sim

// LaneInvasionEvent reports the lane markings crossed by the vehicle in one
// simulation step.
type LaneInvasionEvent struct {
	crossed []LaneMarking
}

// NewLaneInvasionEvent constructs a lane invasion event.
func NewLaneInvasionEvent(crossed []LaneMarking) *LaneInvasionEvent {
	return &LaneInvasionEvent{crossed: crossed}
}

// CrossedLaneMarkings returns the crossed markings in crossing order. The
// slice is a view into the event's storage.
func (e *LaneInvasionEvent) CrossedLaneMarkings() []LaneMarking { return e.crossed }
