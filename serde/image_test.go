package serde

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	carlaserde "github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/codec"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/errors"
	"github.com/Eclipse-SDV-Hackathon-Chapter-Three/carla-data-serde/sim"
)

func allCodecs() []carlaserde.Codec {
	return []carlaserde.Codec{codec.JSON{}, codec.CBOR{}, codec.Msgpack{}}
}

// testImage builds an h×w image with distinct pixel values.
func testImage(t *testing.T, h, w int) *sim.Image {
	t.Helper()
	pixels := make([]sim.Color, h*w)
	for i := range pixels {
		pixels[i] = sim.Color{B: uint8(i), G: uint8(i + 1), R: uint8(i + 2), A: 255}
	}
	ev, err := sim.NewImage(h, w, 90, pixels)
	if err != nil {
		t.Fatal(err)
	}
	return ev
}

func TestImageRoundTrip(t *testing.T) {
	cases := []struct{ h, w int }{
		{4, 5},
		{1, 1},
		{0, 0},
		{3, 0},
	}

	for _, c := range allCodecs() {
		for _, size := range cases {
			t.Run(fmt.Sprintf("%s/%dx%d", c.Name(), size.h, size.w), func(t *testing.T) {
				in := NewImageOwned(testImage(t, size.h, size.w))
				data, err := in.Encode(c)
				if err != nil {
					t.Fatalf("Encode() error = %v", err)
				}
				out, err := DecodeImage(c, data)
				if err != nil {
					t.Fatalf("DecodeImage() error = %v", err)
				}
				if diff := cmp.Diff(in, out); diff != "" {
					t.Errorf("round trip mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestImageBorrowedOwnedEncodeIdentical(t *testing.T) {
	ev := testImage(t, 6, 4)

	for _, c := range allCodecs() {
		t.Run(c.Name(), func(t *testing.T) {
			borrowed, err := NewImageBorrowed(ev).Encode(c)
			if err != nil {
				t.Fatal(err)
			}
			owned, err := NewImageOwned(ev).Encode(c)
			if err != nil {
				t.Fatal(err)
			}
			if string(borrowed) != string(owned) {
				t.Errorf("borrowed and owned encodings differ:\n%q\n%q", borrowed, owned)
			}
		})
	}
}

func TestImageBorrowedIsZeroCopy(t *testing.T) {
	ev := testImage(t, 3, 3)
	b := NewImageBorrowed(ev)

	row := b.Row(0)
	if &row[0] != &ev.Pixels()[0] {
		t.Error("borrowed row does not alias event storage")
	}

	// Scalar metadata is copied, the payload is not.
	if b.Height != 3 || b.Width != 3 || b.Len != 9 || b.IsEmpty {
		t.Errorf("scalar header mismatch: %+v", b)
	}
}

func TestImageOwnedIsIndependent(t *testing.T) {
	pixels := []sim.Color{{B: 1}, {B: 2}, {B: 3}, {B: 4}}
	ev, err := sim.NewImage(2, 2, 90, pixels)
	if err != nil {
		t.Fatal(err)
	}

	owned := NewImageOwned(ev)
	pixels[0].B = 99
	if owned.Array.At(0, 0).B != 1 {
		t.Error("owned adapter aliases event storage")
	}
}

func TestPixelWireFieldOrder(t *testing.T) {
	// The wire keeps the foreign b,g,r,a declaration order; the renderer's
	// r,g,b,a order must not leak into encoding.
	ev, err := sim.NewImage(1, 1, 90, []sim.Color{{B: 1, G: 2, R: 3, A: 4}})
	if err != nil {
		t.Fatal(err)
	}
	data, err := NewImageBorrowed(ev).Encode(codec.JSON{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `{"b":1,"g":2,"r":3,"a":4}`) {
		t.Errorf("pixel wire order mismatch: %s", data)
	}
}

func TestImageEmptyGridWire(t *testing.T) {
	in := NewImageOwned(testImage(t, 0, 0))
	data, err := in.Encode(codec.JSON{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"array":[]`) {
		t.Errorf("0x0 grid should encode as an empty outer sequence: %s", data)
	}

	out, err := DecodeImage(codec.JSON{}, data)
	if err != nil {
		t.Fatalf("DecodeImage() error = %v", err)
	}
	if h, w := out.Array.Dims(); h != 0 || w != 0 {
		t.Errorf("Dims() = %dx%d, want 0x0", h, w)
	}
}

func TestDecodeImageRagged(t *testing.T) {
	px := `{"b":0,"g":0,"r":0,"a":0}`
	raw := fmt.Sprintf(
		`{"height":3,"width":3,"len":8,"is_empty":false,"fov_angle":90,"array":[[%s,%s,%s],[%s,%s,%s],[%s,%s]]}`,
		px, px, px, px, px, px, px, px)

	_, err := DecodeImage(codec.JSON{}, []byte(raw))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindRaggedGrid}) {
		t.Fatalf("DecodeImage() error = %v, want ragged_grid", err)
	}

	// The grid constructor's row index gains the collection's field path.
	var serr *errors.Error
	if !stderrors.As(err, &serr) {
		t.Fatalf("error is not *errors.Error: %v", err)
	}
	if got := strings.Join(serr.Path, "."); got != "array.[2]" {
		t.Errorf("path = %s, want array.[2]", got)
	}
}

func TestDecodeImageZeroWidthRows(t *testing.T) {
	raw := `{"height":3,"width":0,"len":0,"is_empty":true,"fov_angle":90,"array":[[],[],[]]}`

	out, err := DecodeImage(codec.JSON{}, []byte(raw))
	if err != nil {
		t.Fatalf("DecodeImage() error = %v", err)
	}
	if h, w := out.Array.Dims(); h != 3 || w != 0 {
		t.Errorf("Dims() = %dx%d, want 3x0", h, w)
	}
}

func TestDecodeImageHeaderMismatch(t *testing.T) {
	px := `{"b":0,"g":0,"r":0,"a":0}`
	tests := []struct {
		name string
		raw  string
	}{
		{
			"height disagrees",
			fmt.Sprintf(`{"height":2,"width":1,"len":1,"is_empty":false,"fov_angle":90,"array":[[%s]]}`, px),
		},
		{
			"width disagrees",
			fmt.Sprintf(`{"height":1,"width":2,"len":1,"is_empty":false,"fov_angle":90,"array":[[%s]]}`, px),
		},
		{
			"len disagrees",
			fmt.Sprintf(`{"height":1,"width":1,"len":5,"is_empty":false,"fov_angle":90,"array":[[%s]]}`, px),
		},
		{
			"is_empty disagrees",
			fmt.Sprintf(`{"height":1,"width":1,"len":1,"is_empty":true,"fov_angle":90,"array":[[%s]]}`, px),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeImage(codec.JSON{}, []byte(tt.raw))
			if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindSchemaMismatch}) {
				t.Errorf("DecodeImage() error = %v, want schema_mismatch", err)
			}
		})
	}
}

func TestDecodeImageMalformedElement(t *testing.T) {
	raw := `{"height":1,"width":1,"len":1,"is_empty":false,"fov_angle":90,"array":[[{"b":"oops","g":0,"r":0,"a":0}]]}`

	_, err := DecodeImage(codec.JSON{}, []byte(raw))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindMalformedElement}) {
		t.Errorf("DecodeImage() error = %v, want malformed_element", err)
	}
}

func TestDecodeImageUnknownField(t *testing.T) {
	raw := `{"height":0,"width":0,"len":0,"is_empty":true,"fov_angle":90,"array":[],"surprise":1}`

	_, err := DecodeImage(codec.JSON{}, []byte(raw))
	if !stderrors.Is(err, &errors.Error{Phase: errors.PhaseDecode, Kind: errors.KindSchemaMismatch}) {
		t.Errorf("DecodeImage() error = %v, want schema_mismatch", err)
	}
}

func TestImagePreviewBounding(t *testing.T) {
	owned := NewImageOwned(testImage(t, 10, 10))

	preview := fmt.Sprintf("%v", owned)
	if !strings.Contains(preview, "(preview 10x10, showing 3x3)") {
		t.Errorf("preview header missing: %s", preview)
	}
	if got := strings.Count(preview, elision); got != 4 {
		// 3 in-row markers plus 1 trailing row marker
		t.Errorf("elision marker count = %d, want 4\n%s", got, preview)
	}
	if got := strings.Count(preview, "["); got != 4 {
		// outer bracket plus 3 row brackets
		t.Errorf("bracket count = %d, want 4\n%s", got, preview)
	}

	full := fmt.Sprintf("%+v", owned)
	if !strings.Contains(full, "(full 10x10)") {
		t.Errorf("full header missing: %s", full)
	}
	if strings.Contains(full, elision) {
		t.Error("full mode must not elide")
	}
	if got := strings.Count(full, "["); got != 11 {
		t.Errorf("bracket count = %d, want 11", got)
	}
	// 10 elements per row: exactly 100 pixels rendered
	if got := strings.Count(full, "("); got != 101 {
		// 100 pixels plus the "(full 10x10)" annotation
		t.Errorf("pixel count = %d, want 101", got)
	}
}

func TestImageRenderExact(t *testing.T) {
	pixels := []sim.Color{
		{B: 1, G: 2, R: 3, A: 4}, {B: 5, G: 6, R: 7, A: 8},
	}
	ev, err := sim.NewImage(1, 2, 90, pixels)
	if err != nil {
		t.Fatal(err)
	}
	owned := NewImageOwned(ev)

	want := "ImageOwned{height: 1, width: 2, len: 2, is_empty: false, fov_angle: 90, ..}\n" +
		"array (preview 1x2, showing 1x2) = [\n" +
		"  [(3, 2, 1, 4), (7, 6, 5, 8)],\n" +
		"]"
	if got := fmt.Sprintf("%v", owned); got != want {
		t.Errorf("render mismatch:\ngot:  %q\nwant: %q", got, want)
	}

	// Renderer reorders channels to r,g,b,a; encode keeps b,g,r,a. Both on
	// the same value, independently.
	data, err := owned.Encode(codec.JSON{})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `{"b":1,"g":2,"r":3,"a":4}`) {
		t.Errorf("wire order changed: %s", data)
	}
}

func TestImageStringMatchesFormat(t *testing.T) {
	owned := NewImageOwned(testImage(t, 2, 2))
	if owned.String() != fmt.Sprintf("%v", owned) {
		t.Error("String() disagrees with the default format")
	}
}
