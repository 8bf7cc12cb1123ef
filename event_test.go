package fractal

import "testing"

func TestFrameRoundTrip(t *testing.T) {
	surf := NewSurface(SurfaceSize{Width: 2, Height: 1})
	surf.Pix[0] = Color{1, 0, 0, 1}
	surf.Pix[1] = Color{0, 0, 0, 1}

	size, pix, err := DecodeFrame(EncodeFrame(surf))
	if err != nil {
		t.Fatalf("DecodeFrame: %v", err)
	}
	if size != surf.Size {
		t.Errorf("size = %+v, want %+v", size, surf.Size)
	}
	want := []byte{255, 0, 0, 255, 0, 0, 0, 255}
	if len(pix) != len(want) {
		t.Fatalf("pix length %d, want %d", len(pix), len(want))
	}
	for i := range want {
		if pix[i] != want[i] {
			t.Errorf("pix[%d] = %d, want %d", i, pix[i], want[i])
		}
	}
}

func TestDecodeFrameRejectsTruncated(t *testing.T) {
	if _, _, err := DecodeFrame([]byte{1, 2, 3}); err == nil {
		t.Error("short header accepted")
	}
	msg := EncodeFrame(NewSurface(SurfaceSize{Width: 3, Height: 2}))
	if _, _, err := DecodeFrame(msg[:len(msg)-1]); err == nil {
		t.Error("truncated payload accepted")
	}
}
