package sim

// ImuMeasurement is one inertial measurement unit reading: linear
// acceleration, angular velocity, and compass heading.
type ImuMeasurement struct {
	accelerometer Vector3D
	gyroscope     Vector3D
	compass       float32
}

// NewImuMeasurement constructs an IMU reading.
func NewImuMeasurement(accelerometer, gyroscope Vector3D, compass float32) *ImuMeasurement {
	return &ImuMeasurement{accelerometer: accelerometer, gyroscope: gyroscope, compass: compass}
}

// Accelerometer returns the linear acceleration in m/s².
func (m *ImuMeasurement) Accelerometer() Vector3D { return m.accelerometer }

// Gyroscope returns the angular velocity in rad/s.
func (m *ImuMeasurement) Gyroscope() Vector3D { return m.gyroscope }

// Compass returns the heading in radians relative to north.
func (m *ImuMeasurement) Compass() float32 { return m.compass }
