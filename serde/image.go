package serde

import (
	"fmt"
	"io"
	"strings"

	carlaserde "github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/errors"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/grid"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/sim"
)

// imageWire is the encoded shape of a camera frame. The array is row-major:
// outer length = height, inner length = width.
type imageWire struct {
	Height   int           `json:"height" cbor:"height" msgpack:"height"`
	Width    int           `json:"width" cbor:"width" msgpack:"width"`
	Len      int           `json:"len" cbor:"len" msgpack:"len"`
	IsEmpty  bool          `json:"is_empty" cbor:"is_empty" msgpack:"is_empty"`
	FOVAngle float32       `json:"fov_angle" cbor:"fov_angle" msgpack:"fov_angle"`
	Array    [][]pixelWire `json:"array" cbor:"array" msgpack:"array"`
}

// ImageBorrowed is the zero-copy view adapter over a camera frame. It keeps
// a reference into the event's pixel storage: encode-only, and it must not
// outlive the event. Construction copies scalar metadata only.
type ImageBorrowed struct {
	Height   int
	Width    int
	Len      int
	IsEmpty  bool
	FOVAngle float32

	pixels []sim.Color // row-major view into the event's buffer
}

// NewImageBorrowed builds a borrowed adapter from an image event without
// copying any pixel.
func NewImageBorrowed(ev *sim.Image) ImageBorrowed {
	return ImageBorrowed{
		Height:   ev.Height(),
		Width:    ev.Width(),
		Len:      ev.Len(),
		IsEmpty:  ev.IsEmpty(),
		FOVAngle: ev.FOVAngle(),
		pixels:   ev.Pixels(),
	}
}

// Row returns the i-th pixel row of the borrowed view.
func (im ImageBorrowed) Row(i int) []sim.Color {
	return im.pixels[i*im.Width : (i+1)*im.Width]
}

// Encode serializes the borrowed view through c. The pixel payload is
// reinterpreted in place; no element is copied.
func (im ImageBorrowed) Encode(c carlaserde.Codec) ([]byte, error) {
	return c.Marshal(imageWire{
		Height:   im.Height,
		Width:    im.Width,
		Len:      im.Len,
		IsEmpty:  im.IsEmpty,
		FOVAngle: im.FOVAngle,
		Array:    viewRows[sim.Color, pixelWire](im.pixels, im.Height, im.Width),
	})
}

// ImageOwned is the round-trip adapter for a camera frame. It owns a copy of
// the pixel grid and supports both encode and decode.
type ImageOwned struct {
	Height   int
	Width    int
	Len      int
	IsEmpty  bool
	FOVAngle float32
	Array    grid.Grid[sim.Color]
}

// NewImageOwned builds an owned adapter by copying the event's pixels into
// adapter-owned storage.
func NewImageOwned(ev *sim.Image) ImageOwned {
	g, err := grid.FromFlat(ev.Height(), ev.Width(), copySeq(ev.Pixels()))
	if err != nil {
		// unreachable: the event's accessors are consistent by construction
		panic(err)
	}
	return ImageOwned{
		Height:   ev.Height(),
		Width:    ev.Width(),
		Len:      ev.Len(),
		IsEmpty:  ev.IsEmpty(),
		FOVAngle: ev.FOVAngle(),
		Array:    g,
	}
}

// Encode serializes the owned adapter through c.
func (im ImageOwned) Encode(c carlaserde.Codec) ([]byte, error) {
	h, w := im.Array.Dims()
	return c.Marshal(imageWire{
		Height:   im.Height,
		Width:    im.Width,
		Len:      im.Len,
		IsEmpty:  im.IsEmpty,
		FOVAngle: im.FOVAngle,
		Array:    viewRows[sim.Color, pixelWire](im.Array.Flat(), h, w),
	})
}

// DecodeImage reconstructs an owned image adapter from encoded bytes.
// Ragged pixel rows fail with ragged_grid; a header that disagrees with the
// decoded payload shape fails with schema_mismatch.
func DecodeImage(c carlaserde.Codec, data []byte) (ImageOwned, error) {
	var w imageWire
	if err := c.Unmarshal(data, &w); err != nil {
		debugf("image decode: %v", err)
		return ImageOwned{}, err
	}

	g, err := decodeGrid(w.Array, "array", func(p pixelWire) sim.Color { return sim.Color(p) })
	if err != nil {
		debugf("image decode: %v", err)
		return ImageOwned{}, err
	}

	if err := validateImageHeader(w, g); err != nil {
		debugf("image decode: %v", err)
		return ImageOwned{}, err
	}

	return ImageOwned{
		Height:   w.Height,
		Width:    w.Width,
		Len:      w.Len,
		IsEmpty:  w.IsEmpty,
		FOVAngle: w.FOVAngle,
		Array:    g,
	}, nil
}

func validateImageHeader(w imageWire, g grid.Grid[sim.Color]) error {
	h, gw := g.Dims()
	if w.Height != h {
		return errors.New(errors.PhaseDecode, errors.KindSchemaMismatch).
			Sensor("image").
			Detail("header height %d, payload has %d rows", w.Height, h).
			Build()
	}
	// A zero-row payload cannot carry a width; the header keeps it.
	if h > 0 && w.Width != gw {
		return errors.New(errors.PhaseDecode, errors.KindSchemaMismatch).
			Sensor("image").
			Detail("header width %d, payload rows have length %d", w.Width, gw).
			Build()
	}
	if w.Len != g.Len() {
		return errors.New(errors.PhaseDecode, errors.KindSchemaMismatch).
			Sensor("image").
			Detail("header len %d, payload has %d elements", w.Len, g.Len()).
			Build()
	}
	if w.IsEmpty != g.IsEmpty() {
		return errors.New(errors.PhaseDecode, errors.KindSchemaMismatch).
			Sensor("image").
			Detail("header is_empty %t, payload emptiness %t", w.IsEmpty, g.IsEmpty()).
			Build()
	}
	return nil
}

func renderImage(out fmt.State, name string, height, width, length int, isEmpty bool, fov float32, row func(int) []sim.Color, full bool) {
	fmt.Fprintf(out, "%s{height: %d, width: %d, len: %d, is_empty: %t, fov_angle: %v, ..}\narray ",
		name, height, width, length, isEmpty, fov)
	if full {
		fmt.Fprintf(out, "(full %dx%d) = ", height, width)
		writeMatrixFull(out, height, row, writePixel)
		return
	}
	fmt.Fprintf(out, "(preview %dx%d, showing %dx%d) = ",
		height, width, min(PreviewH, height), min(PreviewW, width))
	writeMatrixPreview(out, height, row, PreviewH, PreviewW, writePixel)
}

// writePixel renders one pixel as (r, g, b, a) for readability. This
// reordering is cosmetic: the wire format keeps the foreign (b, g, r, a)
// order.
func writePixel(out io.Writer, c sim.Color) {
	fmt.Fprintf(out, "(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// Format implements fmt.Formatter: %v renders a bounded preview, %+v the
// full pixel matrix.
func (im ImageBorrowed) Format(f fmt.State, verb rune) {
	renderImage(f, "ImageBorrowed", im.Height, im.Width, im.Len, im.IsEmpty, im.FOVAngle, im.Row, f.Flag('+'))
}

// String renders the bounded preview.
func (im ImageBorrowed) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", im)
	return b.String()
}

// Format implements fmt.Formatter: %v renders a bounded preview, %+v the
// full pixel matrix.
func (im ImageOwned) Format(f fmt.State, verb rune) {
	renderImage(f, "ImageOwned", im.Height, im.Width, im.Len, im.IsEmpty, im.FOVAngle, im.Array.Row, f.Flag('+'))
}

// String renders the bounded preview.
func (im ImageOwned) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%v", im)
	return b.String()
}
