package sim

import "fmt"

// Image is one camera frame: a height×width grid of BGRA pixels stored
// row-major in a single contiguous buffer, plus the camera's horizontal
// field of view.
type Image struct {
	height   int
	width    int
	fovAngle float32
	pixels   []Color
}

// NewImage constructs an image event. The pixel buffer must hold exactly
// height*width elements in row-major order.
func NewImage(height, width int, fovAngle float32, pixels []Color) (*Image, error) {
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("sim: negative image dimensions %dx%d", height, width)
	}
	if len(pixels) != height*width {
		return nil, fmt.Errorf("sim: pixel buffer length %d does not match %dx%d", len(pixels), height, width)
	}
	return &Image{height: height, width: width, fovAngle: fovAngle, pixels: pixels}, nil
}

// Height returns the number of pixel rows.
func (im *Image) Height() int { return im.height }

// Width returns the number of pixel columns.
func (im *Image) Width() int { return im.width }

// Len returns the total pixel count.
func (im *Image) Len() int { return len(im.pixels) }

// IsEmpty reports whether the image holds no pixels.
func (im *Image) IsEmpty() bool { return len(im.pixels) == 0 }

// FOVAngle returns the camera's horizontal field of view in degrees.
func (im *Image) FOVAngle() float32 { return im.fovAngle }

// Pixels returns the row-major pixel storage. The slice is a view into the
// event's buffer: read-only, valid only while the event is alive.
func (im *Image) Pixels() []Color { return im.pixels }

// Row returns the i-th pixel row as a view into the event's buffer.
func (im *Image) Row(i int) []Color {
	return im.pixels[i*im.width : (i+1)*im.width]
}
