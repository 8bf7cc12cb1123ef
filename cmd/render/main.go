// render is a one-shot CLI renderer. It plans the surface partition for
// the device capability given on the command line, renders a single pass
// and saves the result as a PNG file.

package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"strconv"
	"strings"

	fractal "github.com/marben/fractal_render"
)

func main() {
	var (
		width   = flag.Int("width", 1920, "Surface width in pixels.")
		height  = flag.Int("height", 1080, "Surface height in pixels.")
		julia   = flag.String("julia", "", "Render a julia pass for this constant, e.g. \"-0.8,0.156\". Empty renders mandelbrot.")
		threads = flag.Int("group-threads", 1024, "Device limit on threads per workgroup.")
		lanes   = flag.Int("lanes", 32, "Device execution width.")
		workers = flag.Int("workers", 0, "Render workers (0 = one per CPU).")
		out     = flag.String("o", "fractal.png", "Output PNG path.")
	)
	flag.Parse()

	if err := run(*width, *height, *julia, *threads, *lanes, *workers, *out); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(width, height int, julia string, threads, lanes, workers int, out string) error {
	capability := fractal.Capability{MaxThreadsPerGroup: threads, ExecutionWidth: lanes}
	if threads < 1 || lanes < 1 || lanes > threads {
		return fmt.Errorf("invalid capability: %d threads per group, execution width %d", threads, lanes)
	}

	params := fractal.MandelbrotParams()
	if julia != "" {
		c, err := parseComplex(julia)
		if err != nil {
			return fmt.Errorf("parsing julia constant: %w", err)
		}
		params = fractal.JuliaParams(c)
	}

	size := fractal.SurfaceSize{Width: width, Height: height}
	plan := fractal.PlanWorkgroups(size, capability)
	if plan.IsZero() {
		return fmt.Errorf("nothing to render for %dx%d surface", width, height)
	}
	log.Printf("plan: %dx%d threads per group, %dx%d groups",
		plan.GroupWidth, plan.GroupHeight, plan.GridWidth, plan.GridHeight)

	log.Printf("rendering %dx%d...", width, height)
	coord := fractal.NewCoordinator(workers)
	surf := coord.Render(fractal.Pass{Plan: plan, Size: size, Params: params})

	log.Printf("saving to %q...", out)
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, surf.RGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}

	log.Printf("rendered image saved to %q", out)
	return nil
}

// parseComplex parses "re,im" into a complex number.
func parseComplex(s string) (complex128, error) {
	re, im, ok := strings.Cut(s, ",")
	if !ok {
		return 0, fmt.Errorf("want \"re,im\", got %q", s)
	}
	r, err := strconv.ParseFloat(strings.TrimSpace(re), 64)
	if err != nil {
		return 0, err
	}
	i, err := strconv.ParseFloat(strings.TrimSpace(im), 64)
	if err != nil {
		return 0, err
	}
	return complex(r, i), nil
}
