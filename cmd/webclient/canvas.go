//go:build js && wasm

package main

import (
	"syscall/js"

	fractal "github.com/marben/fractal_render"
)

// initCanvas sizes the canvas to its display size, fills it with a
// placeholder color and returns the pixel dimensions.
func initCanvas(color string) (width, height int) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "view")

	width = canvas.Get("clientWidth").Int()
	height = canvas.Get("clientHeight").Int()
	canvas.Set("width", width)
	canvas.Set("height", height)

	ctx := canvas.Call("getContext", "2d")
	ctx.Set("fillStyle", color)
	ctx.Call("fillRect", 0, 0, width, height)

	return width, height
}

// drawFrame decodes one binary frame message and puts it on the canvas.
func drawFrame(msg []byte) {
	size, pix, err := fractal.DecodeFrame(msg)
	if err != nil {
		logScreenf("bad frame: %v", err)
		return
	}

	document := js.Global().Get("document")
	canvas := document.Call("getElementById", "view")
	ctx := canvas.Call("getContext", "2d")

	// Copy the Go byte slice into a JS TypedArray for ImageData
	jsData := js.Global().Get("Uint8ClampedArray").New(len(pix))
	js.CopyBytesToJS(jsData, pix)

	imageData := js.Global().Get("ImageData").New(jsData, size.Width, size.Height)
	ctx.Call("putImageData", imageData, 0, 0)
}
