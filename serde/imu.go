package serde

import (
	"fmt"
	"strings"

	carlaserde "github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/sim"
)

// IMU is the owned adapter for an inertial measurement. The reading is three
// scalars wide, so there is no zero-copy benefit and no borrowed variant.
// The adapter struct doubles as its own wire shape.
type IMU struct {
	Accelerometer Vector3 `json:"accelerometer" cbor:"accelerometer" msgpack:"accelerometer"`
	Gyroscope     Vector3 `json:"gyroscope" cbor:"gyroscope" msgpack:"gyroscope"`
	Compass       float32 `json:"compass" cbor:"compass" msgpack:"compass"`
}

// NewIMU builds the adapter from an IMU reading.
func NewIMU(m *sim.ImuMeasurement) IMU {
	return IMU{
		Accelerometer: Vector3(m.Accelerometer()),
		Gyroscope:     Vector3(m.Gyroscope()),
		Compass:       m.Compass(),
	}
}

// Encode serializes the reading through c.
func (m IMU) Encode(c carlaserde.Codec) ([]byte, error) {
	return c.Marshal(m)
}

// DecodeIMU reconstructs an IMU adapter from encoded bytes.
func DecodeIMU(c carlaserde.Codec, data []byte) (IMU, error) {
	var m IMU
	if err := c.Unmarshal(data, &m); err != nil {
		debugf("imu decode: %v", err)
		return IMU{}, err
	}
	return m, nil
}

// Format implements fmt.Formatter. The reading is scalar-only, so preview
// and full mode render identically.
func (m IMU) Format(f fmt.State, verb rune) {
	fmt.Fprintf(f, "IMU{accelerometer: (%v, %v, %v), gyroscope: (%v, %v, %v), compass: %v}",
		m.Accelerometer.X, m.Accelerometer.Y, m.Accelerometer.Z,
		m.Gyroscope.X, m.Gyroscope.Y, m.Gyroscope.Z,
		m.Compass)
}

// String renders the reading.
func (m IMU) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", m)
	return b.String()
}
