package sim

import "testing"

func TestNewImage(t *testing.T) {
	tests := []struct {
		name    string
		height  int
		width   int
		pixels  int
		wantErr bool
	}{
		{"2x3", 2, 3, 6, false},
		{"empty", 0, 0, 0, false},
		{"zero width rows", 3, 0, 0, false},
		{"short buffer", 2, 3, 5, true},
		{"long buffer", 2, 3, 7, true},
		{"negative", -1, 3, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			im, err := NewImage(tt.height, tt.width, 90, make([]Color, tt.pixels))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewImage() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if im.Height() != tt.height || im.Width() != tt.width {
				t.Errorf("dims = %dx%d, want %dx%d", im.Height(), im.Width(), tt.height, tt.width)
			}
			if im.Len() != tt.pixels {
				t.Errorf("Len() = %d, want %d", im.Len(), tt.pixels)
			}
			if im.IsEmpty() != (tt.pixels == 0) {
				t.Errorf("IsEmpty() = %v", im.IsEmpty())
			}
		})
	}
}

func TestImage_Row(t *testing.T) {
	pixels := []Color{
		{B: 0}, {B: 1}, {B: 2},
		{B: 3}, {B: 4}, {B: 5},
	}
	im, err := NewImage(2, 3, 90, pixels)
	if err != nil {
		t.Fatal(err)
	}

	row := im.Row(1)
	if len(row) != 3 {
		t.Fatalf("row length = %d, want 3", len(row))
	}
	if row[0].B != 3 || row[2].B != 5 {
		t.Errorf("Row(1) = %v, want pixels 3..5", row)
	}
}

func TestEnumNames(t *testing.T) {
	if got := MarkingTypeBottsDots.String(); got != "BottsDots" {
		t.Errorf("MarkingTypeBottsDots.String() = %q", got)
	}
	if got := LaneMarkingType(42).String(); got != "unknown" {
		t.Errorf("out-of-range String() = %q", got)
	}
	if got := MarkingColorYellow.String(); got != "Yellow" {
		t.Errorf("MarkingColorYellow.String() = %q", got)
	}
	if got := LaneChangeBoth.String(); got != "Both" {
		t.Errorf("LaneChangeBoth.String() = %q", got)
	}
}

func TestRadarMeasurementAccessors(t *testing.T) {
	m := NewRadarMeasurement([]RadarDetection{{Velocity: 1}, {Velocity: 2}})
	if m.DetectionAmount() != 2 || m.Len() != 2 {
		t.Errorf("counts = %d/%d, want 2/2", m.DetectionAmount(), m.Len())
	}
	if m.IsEmpty() {
		t.Error("IsEmpty() = true for 2 detections")
	}
	if m.AsSlice()[1].Velocity != 2 {
		t.Error("AsSlice() order not preserved")
	}
}
