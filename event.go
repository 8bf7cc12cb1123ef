package fractal

import (
	"encoding/binary"
	"fmt"
)

// Event kinds sent by the web client.
const (
	EventResize = "resize"
	EventDown   = "down"
	EventDrag   = "drag"
	EventUp     = "up"
)

// Event is the wire format for viewer input, sent as JSON over the
// websocket. Pointer kinds carry x/y in surface pixel coordinates;
// resize carries the new surface dimensions.
type Event struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
}

const frameHeaderLen = 8

// EncodeFrame serializes a completed surface as a binary websocket
// message: little-endian uint32 width and height, then raw 8-bit RGBA
// rows, top-left origin.
func EncodeFrame(s *Surface) []byte {
	img := s.RGBA()
	buf := make([]byte, frameHeaderLen+len(img.Pix))
	binary.LittleEndian.PutUint32(buf[0:], uint32(s.Size.Width))
	binary.LittleEndian.PutUint32(buf[4:], uint32(s.Size.Height))
	copy(buf[frameHeaderLen:], img.Pix)
	return buf
}

// DecodeFrame splits a frame message into its surface size and raw RGBA
// bytes.
func DecodeFrame(msg []byte) (SurfaceSize, []byte, error) {
	if len(msg) < frameHeaderLen {
		return SurfaceSize{}, nil, fmt.Errorf("frame too short: %d bytes", len(msg))
	}
	size := SurfaceSize{
		Width:  int(binary.LittleEndian.Uint32(msg[0:])),
		Height: int(binary.LittleEndian.Uint32(msg[4:])),
	}
	pix := msg[frameHeaderLen:]
	if want := size.Width * size.Height * 4; len(pix) != want {
		return SurfaceSize{}, nil, fmt.Errorf("frame payload: got %d bytes, want %d", len(pix), want)
	}
	return size, pix, nil
}
