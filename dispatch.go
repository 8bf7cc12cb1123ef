package fractal

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// maxOutstanding is the pass-overlap threshold: the currently presenting
// pass plus one queued behind it. Pointer-driven (julia) passes arriving
// beyond it are dropped so a drag burst cannot queue unbounded work.
const maxOutstanding = 2

// Pass describes one full evaluation of a surface: the partition to
// dispatch over, the surface it covers and the per-pixel parameters.
type Pass struct {
	Plan   WorkgroupPlan
	Size   SurfaceSize
	Params RenderParameters
}

// Coordinator runs render passes over a planned surface partition.
// Pixel evaluations within a pass are independent and fan out over a
// fixed pool of workers; passes themselves are throttled against a
// single presentation target via the outstanding counter.
type Coordinator struct {
	workers     int
	outstanding atomic.Int32
}

// NewCoordinator returns a coordinator fanning each pass out over the
// given number of workers. workers <= 0 selects one worker per available
// CPU.
func NewCoordinator(workers int) *Coordinator {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Coordinator{workers: workers}
}

// Outstanding reports the number of submitted passes not yet presented.
func (d *Coordinator) Outstanding() int {
	return int(d.outstanding.Load())
}

// Submit runs pass asynchronously and hands the completed surface to
// present, which is invoked exactly once per accepted pass. The
// outstanding counter is decremented after present returns.
//
// Submit reports whether the pass was accepted. It is refused without
// error when the plan is the zero sentinel (nothing to draw), or when
// the pass is julia-mode and the outstanding threshold is reached:
// dropped pointer frames are superseded by the next pointer event, and
// mandelbrot passes are always accepted so the view converges to the
// stable state on mouse-up.
func (d *Coordinator) Submit(pass Pass, present func(*Surface)) bool {
	if pass.Plan.IsZero() {
		return false
	}
	if pass.Params.Mode == Julia && d.outstanding.Load() >= maxOutstanding {
		return false
	}
	d.outstanding.Add(1)
	go func() {
		present(d.Render(pass))
		d.outstanding.Add(-1)
	}()
	return true
}

// Render evaluates the pass synchronously and returns the completed
// surface. The plan's groups are fed to the worker pool over a channel;
// grid coverage rounds up past the surface, and the overhanging
// coordinates are skipped without evaluation. No two workers touch the
// same pixel, so the only synchronization is the final join.
func (d *Coordinator) Render(pass Pass) *Surface {
	surf := NewSurface(pass.Size)
	if pass.Plan.IsZero() {
		return surf
	}

	type group struct{ gx, gy int }
	work := make(chan group)

	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for g := range work {
				renderGroup(surf, pass, g.gx, g.gy)
			}
		}()
	}

	for gy := 0; gy < pass.Plan.GridHeight; gy++ {
		for gx := 0; gx < pass.Plan.GridWidth; gx++ {
			work <- group{gx, gy}
		}
	}
	close(work)
	wg.Wait()

	return surf
}

// renderGroup evaluates every in-surface pixel of one workgroup.
func renderGroup(surf *Surface, pass Pass, gx, gy int) {
	x0 := gx * pass.Plan.GroupWidth
	y0 := gy * pass.Plan.GroupHeight
	for y := y0; y < y0+pass.Plan.GroupHeight && y < pass.Size.Height; y++ {
		row := y * pass.Size.Width
		for x := x0; x < x0+pass.Plan.GroupWidth && x < pass.Size.Width; x++ {
			surf.Pix[row+x] = PixelColor(x, y, pass.Size, pass.Params)
		}
	}
}
