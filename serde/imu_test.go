package serde

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/codec"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/errors"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/sim"
)

func testIMU() *sim.ImuMeasurement {
	return sim.NewImuMeasurement(
		sim.Vector3D{X: 0.1, Y: -0.2, Z: 9.8},
		sim.Vector3D{X: 0.01, Y: 0.02, Z: -0.03},
		182.5,
	)
}

func TestIMURoundTrip(t *testing.T) {
	for _, c := range allCodecs() {
		t.Run(c.Name(), func(t *testing.T) {
			in := NewIMU(testIMU())
			data, err := in.Encode(c)
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			out, err := DecodeIMU(c, data)
			if err != nil {
				t.Fatalf("DecodeIMU() error = %v", err)
			}
			if diff := cmp.Diff(in, out); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIMUWireShape(t *testing.T) {
	m := IMU{
		Accelerometer: Vector3{X: 1, Y: 2, Z: 3},
		Gyroscope:     Vector3{X: 4, Y: 5, Z: 6},
		Compass:       7,
	}
	data, err := m.Encode(codec.JSON{})
	if err != nil {
		t.Fatal(err)
	}
	want := `{"accelerometer":{"x":1,"y":2,"z":3},"gyroscope":{"x":4,"y":5,"z":6},"compass":7}`
	if string(data) != want {
		t.Errorf("wire shape = %s, want %s", data, want)
	}
}

func TestDecodeIMUUnknownField(t *testing.T) {
	raw := `{"accelerometer":{"x":0,"y":0,"z":0},"gyroscope":{"x":0,"y":0,"z":0},"compass":0,"bogus":1}`

	_, err := DecodeIMU(codec.JSON{}, []byte(raw))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindSchemaMismatch}) {
		t.Errorf("DecodeIMU() error = %v, want schema_mismatch", err)
	}
}

func TestDecodeIMUMalformed(t *testing.T) {
	raw := `{"accelerometer":"nope","gyroscope":{"x":0,"y":0,"z":0},"compass":0}`

	_, err := DecodeIMU(codec.JSON{}, []byte(raw))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindMalformedElement}) {
		t.Errorf("DecodeIMU() error = %v, want malformed_element", err)
	}
}

func TestIMURender(t *testing.T) {
	m := IMU{
		Accelerometer: Vector3{X: 0.5, Y: -1, Z: 9.8},
		Gyroscope:     Vector3{X: 0, Y: 0.25, Z: 0},
		Compass:       90,
	}

	want := "IMU{accelerometer: (0.5, -1, 9.8), gyroscope: (0, 0.25, 0), compass: 90}"
	if got := fmt.Sprintf("%v", m); got != want {
		t.Errorf("%%v = %q, want %q", got, want)
	}
	// Scalar-only payload: verbose mode adds nothing.
	if fmt.Sprintf("%+v", m) != want {
		t.Error("verbose format must match the default for scalar readings")
	}
	if m.String() != want {
		t.Error("String() mismatch")
	}
	if strings.Contains(want, elision) {
		t.Fatal("imu render never elides")
	}
}
