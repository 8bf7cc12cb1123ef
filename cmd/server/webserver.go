package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/coder/websocket"

	fractal "github.com/marben/fractal_render"
)

// webServer creates the server serving files in the ./static folder
// (index page, wasm client) along with the /ws endpoint that renders for
// connected viewers.
func webServer(cfg config) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(cfg))
	mux.Handle("/", http.FileServer(http.Dir("./static")))

	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// websocketHandler handles the http ws endpoint.
// Each accepted websocket becomes one render session with its own
// coordinator, so backpressure applies per viewer.
func websocketHandler(cfg config) http.HandlerFunc {
	capability := fractal.Capability{
		MaxThreadsPerGroup: cfg.threads,
		ExecutionWidth:     cfg.lanes,
	}
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: tighten in prod
		})
		if err != nil {
			log.Println(err)
			return
		}

		log.Printf("viewer connected from %s", r.RemoteAddr)
		runSession(r.Context(), c, capability, cfg.workers)
		log.Printf("viewer %s gone", r.RemoteAddr)
	}
}
