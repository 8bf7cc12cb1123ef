package fractal

import (
	"math"
	"testing"
)

func TestEscapeColorInSet(t *testing.T) {
	params := MandelbrotParams()
	want := Color{0, 0, 0, 1}

	// Points inside the set never escape within the budget.
	for _, c := range []complex128{0, complex(-1, 0), complex(-0.1, 0.1)} {
		if got := EscapeColor(0, c, params); got != want {
			t.Errorf("EscapeColor(0, %v) = %v, want in-set color %v", c, got, want)
		}
	}
}

func TestEscapeColorFarOutsideSet(t *testing.T) {
	params := MandelbrotParams()

	// c = 2+2i: z1 = 2+2i (|z|^2 = 8), z2 = 2+10i (|z|^2 = 104 > 100),
	// so the point escapes on i=1 with n=2, m=104.
	got := EscapeColor(0, complex(2, 2), params)

	hue := (2-math.Log2(math.Log10(104)/2))/100*4*math.Pi + 3
	want := Color{
		R: (math.Cos(hue) + 1) / 2,
		G: (-math.Cos(hue+math.Pi/3) + 1) / 2,
		B: (-math.Cos(hue-math.Pi/3) + 1) / 2,
		A: 1,
	}
	if got != want {
		t.Errorf("EscapeColor(0, 2+2i) = %v, want %v", got, want)
	}
	if got == inSetColor {
		t.Error("escaping point colored as in-set")
	}
}

func TestEscapeColorIdempotent(t *testing.T) {
	cases := []struct {
		z0, c  complex128
		params RenderParameters
	}{
		{0, complex(0.3, 0.5), MandelbrotParams()},
		{complex(0.1, -0.2), complex(-0.8, 0.156), JuliaParams(complex(-0.8, 0.156))},
		{0, complex(2, 2), MandelbrotParams()},
	}
	for _, tt := range cases {
		first := EscapeColor(tt.z0, tt.c, tt.params)
		second := EscapeColor(tt.z0, tt.c, tt.params)
		if first != second {
			t.Errorf("EscapeColor(%v, %v) not idempotent: %v then %v", tt.z0, tt.c, first, second)
		}
	}
}

func TestPixelColorModeSelection(t *testing.T) {
	size := SurfaceSize{Width: 64, Height: 48}

	t.Run("mandelbrot varies c", func(t *testing.T) {
		params := MandelbrotParams()
		c := ShiftedPlanePoint(10, 20, size, params.ShiftX)
		want := EscapeColor(0, c, params)
		if got := PixelColor(10, 20, size, params); got != want {
			t.Errorf("PixelColor = %v, want %v", got, want)
		}
	})

	t.Run("julia varies z0 unshifted", func(t *testing.T) {
		params := JuliaParams(complex(-0.4, 0.6))
		z0 := PlanePoint(10, 20, size)
		want := EscapeColor(z0, params.JuliaConstant, params)
		if got := PixelColor(10, 20, size, params); got != want {
			t.Errorf("PixelColor = %v, want %v", got, want)
		}
	})
}
