// view is the interactive desktop viewer. The window shows the
// mandelbrot set; pressing or dragging the mouse renders the julia set
// for the point under the cursor, and releasing returns to the
// mandelbrot view. Resizing the window replans the surface partition.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	fractal "github.com/marben/fractal_render"
)

type viewer struct {
	coord      *fractal.Coordinator
	capability fractal.Capability

	size fractal.SurfaceSize
	plan fractal.WorkgroupPlan

	lastX, lastY int

	mu    sync.Mutex // frame is swapped in from pass goroutines
	frame *frame
}

// frame is a presented surface, pre-converted to the byte layout the
// screen wants.
type frame struct {
	size fractal.SurfaceSize
	pix  []byte
}

func (v *viewer) present(s *fractal.Surface) {
	f := &frame{size: s.Size, pix: s.RGBA().Pix}
	v.mu.Lock()
	v.frame = f
	v.mu.Unlock()
}

func (v *viewer) submit(params fractal.RenderParameters) {
	v.coord.Submit(fractal.Pass{Plan: v.plan, Size: v.size, Params: params}, v.present)
}

func (v *viewer) Update() error {
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	moved := x != v.lastX || y != v.lastY
	v.lastX, v.lastY = x, y

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft), pressed && moved:
		// The click picks the plane point under the cursor of the
		// (shifted) mandelbrot view as the julia constant.
		c := fractal.ShiftedPlanePoint(float64(x), float64(y), v.size, fractal.DefaultShiftX)
		v.submit(fractal.JuliaParams(c))
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		v.submit(fractal.MandelbrotParams())
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	v.mu.Lock()
	f := v.frame
	v.mu.Unlock()

	// Nothing to show until a pass for the current size completes.
	if f == nil || f.size.Width != screen.Bounds().Dx() || f.size.Height != screen.Bounds().Dy() {
		return
	}
	screen.WritePixels(f.pix)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := fractal.SurfaceSize{Width: outsideWidth, Height: outsideHeight}
	if size != v.size {
		v.size = size
		v.plan = fractal.PlanWorkgroups(size, v.capability)
		v.submit(fractal.MandelbrotParams())
	}
	return outsideWidth, outsideHeight
}

func main() {
	var (
		threads = flag.Int("group-threads", 1024, "Device limit on threads per workgroup.")
		lanes   = flag.Int("lanes", 32, "Device execution width.")
		workers = flag.Int("workers", 0, "Render workers (0 = one per CPU).")
	)
	flag.Parse()

	if *threads < 1 || *lanes < 1 || *lanes > *threads {
		fmt.Fprintf(os.Stderr, "invalid capability: %d threads per group, execution width %d\n", *threads, *lanes)
		os.Exit(1)
	}

	v := &viewer{
		coord:      fractal.NewCoordinator(*workers),
		capability: fractal.Capability{MaxThreadsPerGroup: *threads, ExecutionWidth: *lanes},
	}

	ebiten.SetWindowSize(840, 720)
	ebiten.SetWindowTitle("fractal_render")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(v); err != nil {
		log.Fatalf("run: %+v", err)
	}
}
