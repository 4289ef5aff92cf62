// Package carlaserde provides serialization adapters for CARLA sensor data.
//
// The simulator's sensor types (camera images, IMU readings, lane-invasion
// events, radar point clouds) are foreign: this layer does not own them and
// cannot attach encoding behaviour to them. carlaserde bridges that gap with
// shadow wire schemas and per-sensor view adapters.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	carlaserde/          Root package with the Codec and Compressor contracts
//	├── serde/           View adapters, remote schemas, bounded renderer
//	├── sim/             Foreign simulator sensor types (read-only accessors)
//	├── grid/            Row-major 2D grid with ragged-input validation
//	├── codec/           JSON, CBOR and msgpack backends + compressed wrapper
//	├── compress/        gzip, zlib, snappy and lz4 compressors
//	└── errors/          Structured error types for decode failures
//
// # Borrowed vs Owned
//
// Each payload-carrying sensor kind has two adapters:
//
//   - Borrowed: references the event's element storage in place. Zero-copy,
//     encode-only, must not outlive the event.
//   - Owned: copies the payload element-by-element into adapter-owned
//     storage. Independent lifetime, encodes and decodes.
//
// Encoding a borrowed and an owned adapter built from the same event produces
// byte-identical output.
//
// # Quick Start
//
// Encode a radar measurement and print a bounded preview:
//
//	m := radarEvent()                    // *sim.RadarMeasurement
//	owned := serde.NewRadarOwned(m)
//	data, err := owned.Encode(codec.JSON{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%v\n", owned)            // preview, at most 5 detections
//	fmt.Printf("%+v\n", owned)           // full dump
//
// Round-trip:
//
//	back, err := serde.DecodeRadar(codec.JSON{}, data)
//
// # Error Handling
//
// Decode failures use the structured types from the errors package:
//
//	[decode] unknown_variant at crossed_lane_markings.[2].marking_type: tag 11 out of range (max 10)
//	[decode] ragged_grid at array.[4]: row length 2, want 3
package carlaserde
