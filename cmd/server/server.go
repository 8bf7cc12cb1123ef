package main

import (
	"flag"
	"fmt"
	"log"
	"os"
)

// main is the entry point for the fractal web server. Rendering happens
// server side; browsers send pointer and resize events over the websocket
// and display the frames streamed back.
func main() {
	var cfg config
	flag.IntVar(&cfg.port, "port", 8080, "HTTP listen port.")
	flag.IntVar(&cfg.threads, "group-threads", 1024, "Device limit on threads per workgroup.")
	flag.IntVar(&cfg.lanes, "lanes", 32, "Device execution width.")
	flag.IntVar(&cfg.workers, "workers", 0, "Render workers per session (0 = one per CPU).")
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

type config struct {
	port    int
	threads int
	lanes   int
	workers int
}

func run(cfg config) error {
	if cfg.threads < 1 || cfg.lanes < 1 || cfg.lanes > cfg.threads {
		return fmt.Errorf("invalid capability: %d threads per group, execution width %d", cfg.threads, cfg.lanes)
	}
	if _, err := os.Stat("./static"); err != nil {
		return fmt.Errorf("static content: %w", err)
	}

	srv := webServer(cfg)
	log.Printf("listening on http://localhost:%d", cfg.port)
	return srv.ListenAndServe()
}
