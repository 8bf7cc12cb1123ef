package fractal

// Capability describes the execution limits of the parallel device the
// dispatch is planned for. Supplied once at startup by the device layer
// and constant thereafter. ExecutionWidth must not exceed
// MaxThreadsPerGroup.
type Capability struct {
	MaxThreadsPerGroup int // upper bound on GroupWidth*GroupHeight
	ExecutionWidth     int // native lane width; off-multiple groups waste lanes
}

// SurfaceSize is the output surface dimensions in pixels. A zero
// dimension is a valid "nothing to draw" state, not an error.
type SurfaceSize struct {
	Width, Height int
}

// WorkgroupPlan partitions a surface into equal rectangular groups of
// GroupWidth x GroupHeight pixels, dispatched on a GridWidth x GridHeight
// grid. The grid rounds up, so it may overhang the surface; dispatch
// skips the overhanging coordinates. The zero value is the sentinel for
// "no valid plan" (zero-area surface).
type WorkgroupPlan struct {
	GroupWidth, GroupHeight int
	GridWidth, GridHeight   int
}

// IsZero reports whether p is the no-plan sentinel.
func (p WorkgroupPlan) IsZero() bool {
	return p == WorkgroupPlan{}
}

// PlanWorkgroups picks the group shape for size under the device capability by
// enumerating every (groupWidth, groupHeight) pair whose product fits the
// group thread limit, and minimizing an underutilization cost: area
// dispatched beyond the surface, plus lanes idled in every group whose
// thread count is not a multiple of the execution width. The search is
// O(MaxThreadsPerGroup * ln MaxThreadsPerGroup) candidates and is meant
// to run on resize events only, never per pass.
//
// The enumeration order is fixed (groupWidth ascending, then
// groupHeight) and the first minimum wins, so equal inputs always
// produce the same plan.
func PlanWorkgroups(size SurfaceSize, capability Capability) WorkgroupPlan {
	if size.Width == 0 || size.Height == 0 {
		return WorkgroupPlan{}
	}

	var best WorkgroupPlan
	bestCost := -1
	for gw := 1; gw <= capability.MaxThreadsPerGroup; gw++ {
		for gh := 1; gw*gh <= capability.MaxThreadsPerGroup; gh++ {
			gridW := (size.Width + gw - 1) / gw
			gridH := (size.Height + gh - 1) / gh

			excessW := gw*gridW - size.Width
			excessH := gh*gridH - size.Height
			excessArea := excessW*size.Height + excessH*size.Width + excessW*excessH

			perGroup := gw * gh
			groups := gridW * gridH
			wastedLanes := (capability.ExecutionWidth - perGroup%capability.ExecutionWidth) % capability.ExecutionWidth

			cost := excessArea + wastedLanes*groups
			if bestCost < 0 || cost < bestCost {
				bestCost = cost
				best = WorkgroupPlan{
					GroupWidth:  gw,
					GroupHeight: gh,
					GridWidth:   gridW,
					GridHeight:  gridH,
				}
			}
		}
	}
	return best
}
