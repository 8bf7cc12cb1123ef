//go:build js && wasm

// webclient.go is the WASM browser client for the fractal web server.
// It forwards canvas pointer and resize events to the server and draws
// the frames streamed back. All rendering happens server side.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"syscall/js"

	fractal "github.com/marben/fractal_render"
)

// main is the entry point for the WASM web client.
func main() {
	logScreenf("Starting WASM web client...")

	// Step 1: Determine server address for WebSocket connection
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + host + "/ws"

	// Step 2: Connect to render server via WebSocket
	logScreenf("Connecting to render server at %s...", websocketUrl)
	ws := js.Global().Get("WebSocket").New(websocketUrl)
	ws.Set("binaryType", "arraybuffer")

	ws.Set("onopen", js.FuncOf(func(js.Value, []js.Value) any {
		logScreenf("WebSocket connected.")

		// Step 3: Size the canvas and announce the surface to the server,
		// which responds with the first mandelbrot frame
		width, height := initCanvas("#3a3a6e")
		sendEvent(ws, fractal.Event{Kind: fractal.EventResize, Width: width, Height: height})
		logScreenf("Canvas initialized to %dx%d", width, height)

		// Step 4: Forward pointer activity as render requests
		hookPointerEvents(ws)
		logScreenf("Drag on the canvas to explore julia sets.")
		return nil
	}))

	ws.Set("onmessage", js.FuncOf(func(this js.Value, args []js.Value) any {
		jsDataToBytes(args[0].Get("data"), drawFrame)
		return nil
	}))

	ws.Set("onclose", js.FuncOf(func(js.Value, []js.Value) any {
		logScreenf("WebSocket closed.")
		return nil
	}))

	// Step 5: Block main goroutine to keep WASM running
	select {}
}

// sendEvent marshals ev and sends it as a text message.
func sendEvent(ws js.Value, ev fractal.Event) {
	b, err := json.Marshal(ev)
	if err != nil {
		logFatalf("marshal event: %v", err)
	}
	ws.Call("send", string(b))
}

// hookPointerEvents wires canvas mouse activity to viewer events:
// press and drag request julia passes, release returns to mandelbrot.
func hookPointerEvents(ws js.Value) {
	canvas := js.Global().Get("document").Call("getElementById", "view")

	down := false
	pointer := func(kind string) js.Func {
		return js.FuncOf(func(this js.Value, args []js.Value) any {
			e := args[0]
			switch kind {
			case fractal.EventDown:
				down = true
			case fractal.EventUp:
				if !down {
					return nil
				}
				down = false
			case fractal.EventDrag:
				if !down {
					return nil
				}
			}
			sendEvent(ws, fractal.Event{
				Kind: kind,
				X:    e.Get("offsetX").Float(),
				Y:    e.Get("offsetY").Float(),
			})
			return nil
		})
	}

	canvas.Call("addEventListener", "mousedown", pointer(fractal.EventDown))
	canvas.Call("addEventListener", "mousemove", pointer(fractal.EventDrag))
	canvas.Call("addEventListener", "mouseup", pointer(fractal.EventUp))
	canvas.Call("addEventListener", "mouseleave", pointer(fractal.EventUp))
}

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}
