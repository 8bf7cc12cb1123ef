package fractal

import "math"

// Mode selects which point of the recurrence varies per pixel.
type Mode int

const (
	// Mandelbrot: c varies per pixel, z0 is fixed at the origin.
	Mandelbrot Mode = iota
	// Julia: z0 varies per pixel, c is fixed for the whole pass.
	Julia
)

// RenderParameters configure one render pass. Immutable once submitted.
type RenderParameters struct {
	MaxIterations  int
	EscapeRadiusSq float64
	Mode           Mode
	JuliaConstant  complex128 // meaningful only in Julia mode
	ShiftX         float64    // horizontal recentering, fraction of width
}

// MandelbrotParams returns the reference parameters for a mandelbrot pass.
func MandelbrotParams() RenderParameters {
	return RenderParameters{
		MaxIterations:  100,
		EscapeRadiusSq: 100,
		Mode:           Mandelbrot,
		ShiftX:         DefaultShiftX,
	}
}

// JuliaParams returns the reference parameters for a julia pass with the
// given constant.
func JuliaParams(c complex128) RenderParameters {
	return RenderParameters{
		MaxIterations:  100,
		EscapeRadiusSq: 50,
		Mode:           Julia,
		JuliaConstant:  c,
		ShiftX:         DefaultShiftX,
	}
}

// inSetColor is emitted for points that never escape.
var inSetColor = Color{0, 0, 0, 1}

// EscapeColor iterates z <- z*z + c from z0 until |z|^2 exceeds the
// escape radius or the iteration budget runs out, and colors the point
// from the (smoothed) escape iteration. Pure and total for
// EscapeRadiusSq > 0: the log terms are only evaluated on a magnitude
// that just exceeded it.
func EscapeColor(z0, c complex128, p RenderParameters) Color {
	z := z0
	for i := 0; i < p.MaxIterations; i++ {
		z = z*z + c
		if m := magSq(z); m > p.EscapeRadiusSq {
			return escapeColor(i+1, m, p.MaxIterations)
		}
	}
	return inSetColor
}

// PixelColor evaluates one surface pixel under p, selecting z0 and c per
// the pass mode.
func PixelColor(x, y int, size SurfaceSize, p RenderParameters) Color {
	if p.Mode == Julia {
		z0 := PlanePoint(float64(x), float64(y), size)
		return EscapeColor(z0, p.JuliaConstant, p)
	}
	c := ShiftedPlanePoint(float64(x), float64(y), size, p.ShiftX)
	return EscapeColor(0, c, p)
}

// escapeColor is the smooth coloring of an escape at iteration n (1-based)
// with final squared magnitude m. The logarithmic correction term turns
// the discrete iteration count into a continuous value, removing banding
// at the set boundary. m is unclamped and can be arbitrarily large.
func escapeColor(n int, m float64, maxIterations int) Color {
	hue := (float64(n)-math.Log2(math.Log10(m)/2))/float64(maxIterations)*4*math.Pi + 3
	return Color{
		R: (math.Cos(hue) + 1) / 2,
		G: (-math.Cos(hue+math.Pi/3) + 1) / 2,
		B: (-math.Cos(hue-math.Pi/3) + 1) / 2,
		A: 1,
	}
}

func magSq(z complex128) float64 {
	return real(z)*real(z) + imag(z)*imag(z)
}
