package fractal

import (
	"math"
	"testing"
)

func TestPlanePointCenterMapsToOrigin(t *testing.T) {
	sizes := []SurfaceSize{
		{Width: 1, Height: 1},
		{Width: 300, Height: 250},
		{Width: 1920, Height: 1080},
		{Width: 7, Height: 1300},
	}
	for _, size := range sizes {
		got := PlanePoint(float64(size.Width)/2, float64(size.Height)/2, size)
		if got != 0 {
			t.Errorf("PlanePoint(center, %dx%d) = %v, want 0", size.Width, size.Height, got)
		}
	}
}

func TestPlanePointScaleUsesLargerRatio(t *testing.T) {
	tests := []struct {
		name string
		size SurfaceSize
		want float64 // expected scale
	}{
		// 3.5/700 = 0.005 vs 3/300 = 0.01: height ratio wins
		{"wide surface", SurfaceSize{Width: 700, Height: 300}, 3.0 / 300},
		// 3.5/350 = 0.01 vs 3/600 = 0.005: width ratio wins
		{"tall surface", SurfaceSize{Width: 350, Height: 600}, 3.5 / 350},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// One pixel right of center moves exactly one scale step in re.
			z := PlanePoint(float64(tt.size.Width)/2+1, float64(tt.size.Height)/2, tt.size)
			if got := real(z); math.Abs(got-tt.want) > 1e-15 {
				t.Errorf("scale = %v, want %v", got, tt.want)
			}
			if imag(z) != 0 {
				t.Errorf("im = %v, want 0", imag(z))
			}
		})
	}
}

func TestShiftedPlanePoint(t *testing.T) {
	size := SurfaceSize{Width: 300, Height: 250}

	// The shifted map is the plain map of the pixel moved left by
	// shiftX*width.
	got := ShiftedPlanePoint(200, 40, size, DefaultShiftX)
	want := PlanePoint(200-DefaultShiftX*300, 40, size)
	if got != want {
		t.Errorf("ShiftedPlanePoint = %v, want %v", got, want)
	}

	// Zero shift degenerates to the plain map.
	if got := ShiftedPlanePoint(17, 23, size, 0); got != PlanePoint(17, 23, size) {
		t.Errorf("shift 0: got %v, want plain mapping", got)
	}
}
