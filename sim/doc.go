// Package sim holds the simulator-owned sensor data types.
//
// These types model the upstream collaborator: an external simulator client
// that delivers sensor events. The adapter layer in package serde treats them
// as foreign — it reads them exclusively through the accessors declared here
// and never attaches serialization behaviour to them. For the same reason the
// types in this package carry no encoding tags and no Marshal methods; the
// remote schemas in package serde exist precisely because this package cannot
// be annotated.
//
// Element types (Color, RadarDetection, Vector3D, LaneMarking) are plain
// value types. Event types (Image, ImuMeasurement, LaneInvasionEvent,
// RadarMeasurement) own their element storage; accessors returning slices
// return views into that storage, which callers must treat as read-only and
// must not retain past the event's lifetime.
package sim
