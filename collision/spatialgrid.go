package collision

import (
	"math"
	"sort"

	"github.com/akmonengine/swarm/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// CellKey - coordinates of a grid cell in 3D space
type CellKey struct {
	X, Y, Z int
}

// Cell - indices of the triangles overlapping a cell
type Cell struct {
	indices []int
}

// SpatialGrid - uniform hashed grid, broad phase of a Surface query
type SpatialGrid struct {
	cellSize float64
	cells    []Cell
	cellMask int
}

// NewSpatialGrid - creates a grid of numCells buckets, rounded up to a power of two
func NewSpatialGrid(cellSize float64, numCells int) *SpatialGrid {
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].indices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

// nextPowerOfTwo - rounds up to the next power of two
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert - registers an index in every cell its box covers
func (sg *SpatialGrid) Insert(index int, aabb actor.AABB) {
	sg.forEachCell(aabb, func(cellIdx int) {
		sg.cells[cellIdx].indices = append(sg.cells[cellIdx].indices, index)
	})
}

// SortCells - sorts every bucket and drops duplicates, keeping lookups in insertion order
func (sg *SpatialGrid) SortCells() {
	for i := range sg.cells {
		indices := sg.cells[i].indices
		if len(indices) < 2 {
			continue
		}
		sort.Ints(indices)
		n := 1
		for _, idx := range indices[1:] {
			if idx != indices[n-1] {
				indices[n] = idx
				n++
			}
		}
		sg.cells[i].indices = indices[:n]
	}
}

// Query - appends to dst, in increasing order and without duplicates, every
// index whose cells meet the box. seen must have one slot per inserted index
// and be all false; it is cleared again before returning.
func (sg *SpatialGrid) Query(aabb actor.AABB, seen []bool, dst []int) []int {
	start := len(dst)
	sg.forEachCell(aabb, func(cellIdx int) {
		for _, idx := range sg.cells[cellIdx].indices {
			if seen[idx] {
				continue
			}
			seen[idx] = true
			dst = append(dst, idx)
		}
	})

	found := dst[start:]
	for _, idx := range found {
		seen[idx] = false
	}
	sort.Ints(found)

	return dst
}

func (sg *SpatialGrid) forEachCell(aabb actor.AABB, fn func(cellIdx int)) {
	if aabb.IsEmpty() {
		return
	}
	minCell := sg.worldToCell(aabb.Min)
	maxCell := sg.worldToCell(aabb.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				fn(sg.hashCell(CellKey{x, y, z}))
			}
		}
	}
}

// worldToCell - converts a world position to cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl64.Vec3) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X() / sg.cellSize)),
		Y: int(math.Floor(pos.Y() / sg.cellSize)),
		Z: int(math.Floor(pos.Z() / sg.cellSize)),
	}
}

// hashCell - hashes a cell to a bucket index
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663) ^ (key.Z * 83492791)
	return h & sg.cellMask
}
