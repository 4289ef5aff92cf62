// Package serde provides the serialization view adapters for the simulator's
// sensor events.
//
// The simulator's types (package sim) are foreign: they expose read-only
// accessors and cannot be annotated with encoding behaviour. This package
// bridges them to any carlaserde.Codec backend.
//
// # Remote Schemas
//
// Each foreign element type has a shadow wire struct declaring the same
// field set with encoding tags (pixelWire for sim.Color, detectionWire for
// sim.RadarDetection, ...). The shadow is kept structurally identical to the
// foreign type; a direct Go struct conversion at package scope turns most of
// that contract into a compile-time check. Wire field order is the one part
// Go cannot verify: it is a hand-audited invariant noted on each schema type,
// and a mismatch corrupts data silently rather than failing.
//
// Enum shims map the closed lane-marking tag sets onto stable integers;
// decoding a tag outside the declared range fails with unknown_variant.
//
// # Borrowed and Owned Adapters
//
//	Sensor kind     Borrowed            Owned
//	────────────────────────────────────────────────────
//	camera image    ImageBorrowed       ImageOwned
//	radar sweep     RadarBorrowed       RadarOwned
//	IMU reading     —                   IMU
//	lane invasion   —                   LaneInvasion
//
// Borrowed adapters copy only scalar metadata and keep a view over the
// event's element storage; encoding reinterprets that storage as wire rows
// without copying an element. They are encode-only and must not outlive the
// event. Owned adapters copy the payload element-by-element and additionally
// decode; once constructed they are fully independent and freely movable
// across goroutines.
//
// A borrowed and an owned adapter built from the same event encode to
// byte-identical output.
//
// # Collection Protocol
//
// 2D payloads are encoded row-major as a sequence of row sequences. Decoding
// rejects ragged rows (ragged_grid) instead of repairing them; an empty outer
// sequence yields the explicit 0×0 grid. 1D payloads are plain ordered
// sequences. After decode the scalar header is checked against the payload
// shape and any disagreement is a schema_mismatch.
//
// # Bounded Rendering
//
// Every adapter implements fmt.Stringer and fmt.Formatter. %v prints a
// bounded preview (at most PreviewH×PreviewW pixels, PreviewDetections radar
// points, with … elision markers); %+v prints the full payload. Rendering
// walks the adapter's fields directly and never touches the encoding path.
// Pixels render in (r, g, b, a) order for readability even though the wire
// keeps the foreign (b, g, r, a) order.
package serde
