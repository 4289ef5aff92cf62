package sim

// Color is one 32-bit camera pixel. Field order matches the simulator's
// native storage: blue first, alpha last.
type Color struct {
	B uint8
	G uint8
	R uint8
	A uint8
}

// RadarDetection is one point in a radar point cloud. Velocity is towards the
// sensor in m/s, azimuth and altitude are angles in radians, depth is the
// distance in meters.
type RadarDetection struct {
	Velocity float32
	Azimuth  float32
	Altitude float32
	Depth    float32
}

// Vector3D is a three-component float vector used by inertial measurements.
type Vector3D struct {
	X float32
	Y float32
	Z float32
}
