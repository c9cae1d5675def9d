package collision

import (
	"math"
	"sync"

	"github.com/akmonengine/swarm/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// gridDivisions is the number of cells spanning the longest side of a surface
const gridDivisions = 4

// Surface is a read-only, ordered set of triangles.
// Queries may run concurrently.
type Surface struct {
	triangles []*Triangle
	bounds    actor.AABB
	grid      *SpatialGrid

	scratch sync.Pool
}

type queryScratch struct {
	seen       []bool
	candidates []int
}

// NewSurface indexes the triangles in a spatial grid. The slice order is the
// tie-break order of Hit.
func NewSurface(triangles []*Triangle) *Surface {
	bounds := actor.NewAABB()
	for _, tri := range triangles {
		bounds = bounds.Extend(tri.aabb.Min).Extend(tri.aabb.Max)
	}

	cellSize := 1.0
	if !bounds.IsEmpty() {
		extent := bounds.Max.Sub(bounds.Min)
		if longest := math.Max(extent.X(), math.Max(extent.Y(), extent.Z())); longest > 0 {
			cellSize = longest / gridDivisions
		}
	}

	grid := NewSpatialGrid(cellSize, len(triangles)*8)
	for i, tri := range triangles {
		grid.Insert(i, tri.aabb)
	}
	grid.SortCells()

	s := &Surface{
		triangles: triangles,
		bounds:    bounds,
		grid:      grid,
	}
	s.scratch.New = func() interface{} {
		return &queryScratch{
			seen:       make([]bool, len(triangles)),
			candidates: make([]int, 0, len(triangles)),
		}
	}

	return s
}

func (s *Surface) Triangles() []*Triangle {
	return s.triangles
}

func (s *Surface) Bounds() actor.AABB {
	return s.bounds
}

// Hit sweeps the point backward from p along v for impact.Time and keeps the
// triangle with the largest hit time, the first one in surface order on ties.
// On a hit the impact is filled in and true is returned; on a miss the impact
// is left untouched.
func (s *Surface) Hit(p, v mgl64.Vec3, impact *Impact) bool {
	tmax := impact.Time

	sweep := actor.NewAABB(p, p.Sub(v.Mul(tmax)))
	if !sweep.Overlaps(s.bounds) {
		return false
	}
	sweep = clip(sweep, s.bounds)

	scratch := s.scratch.Get().(*queryScratch)
	defer s.scratch.Put(scratch)
	scratch.candidates = s.grid.Query(sweep, scratch.seen, scratch.candidates[:0])

	return s.closest(p, v, tmax, scratch.candidates, impact)
}

// closest tests the candidate triangles, given in increasing index order
func (s *Surface) closest(p, v mgl64.Vec3, tmax float64, candidates []int, impact *Impact) bool {
	found := false
	best := Impact{}

	for _, idx := range candidates {
		t, ok := s.triangles[idx].Hit(p, v, tmax)
		if !ok {
			continue
		}
		if !found || t > best.Time {
			best = Impact{Triangle: s.triangles[idx], Index: idx, Time: t, Hit: true}
			found = true
		}
	}

	if found {
		*impact = best
	}
	return found
}

func clip(a, b actor.AABB) actor.AABB {
	for i := 0; i < 3; i++ {
		a.Min[i] = math.Max(a.Min[i], b.Min[i])
		a.Max[i] = math.Min(a.Max[i], b.Max[i])
	}
	return a
}
