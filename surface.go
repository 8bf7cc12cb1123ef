package fractal

import "image"

// Color is one output pixel, each channel in [0, 1].
type Color struct {
	R, G, B, A float64
}

// Surface is a completed render target: one Color per pixel, row-major,
// origin top-left.
type Surface struct {
	Size SurfaceSize
	Pix  []Color
}

// NewSurface allocates a cleared surface of the given size.
func NewSurface(size SurfaceSize) *Surface {
	return &Surface{
		Size: size,
		Pix:  make([]Color, size.Width*size.Height),
	}
}

// At returns the pixel at (x, y). Coordinates must be in bounds.
func (s *Surface) At(x, y int) Color {
	return s.Pix[y*s.Size.Width+x]
}

// RGBA converts the surface to an 8-bit image for PNG encoding or canvas
// presentation.
func (s *Surface) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.Size.Width, s.Size.Height))
	for i, c := range s.Pix {
		img.Pix[i*4+0] = channelByte(c.R)
		img.Pix[i*4+1] = channelByte(c.G)
		img.Pix[i*4+2] = channelByte(c.B)
		img.Pix[i*4+3] = channelByte(c.A)
	}
	return img
}

func channelByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
