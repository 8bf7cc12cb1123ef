package fractal

// Visible span of the complex plane along each axis. The larger of the
// two extent/dimension ratios is used as the pixel scale, so the shorter
// surface axis is never under-covered.
const (
	PlaneExtentX = 3.5
	PlaneExtentY = 3.0
)

// DefaultShiftX recenters the mandelbrot body horizontally, as a
// fraction of the surface width.
const DefaultShiftX = 0.2

// PlanePoint maps a surface pixel coordinate to its point in the complex
// plane. The plane stays centered and aspect-correct regardless of the
// surface resolution; the surface center maps exactly to the origin.
// Both surface dimensions must be positive (planner guarantees this
// upstream by refusing zero-area surfaces).
func PlanePoint(x, y float64, size SurfaceSize) complex128 {
	w := float64(size.Width)
	h := float64(size.Height)
	scale := max(PlaneExtentX/w, PlaneExtentY/h)
	return complex((x-w/2)*scale, (y-h/2)*scale)
}

// ShiftedPlanePoint applies the horizontal recentering shift to the pixel
// x coordinate before mapping. Mandelbrot passes use it for every pixel;
// julia passes use it once, for the pointer position that picks the julia
// constant, so clicking a feature of the mandelbrot view picks the point
// under the cursor.
func ShiftedPlanePoint(x, y float64, size SurfaceSize, shiftX float64) complex128 {
	return PlanePoint(x-shiftX*float64(size.Width), y, size)
}
