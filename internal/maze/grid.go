// Package maze provides the grid model and procedural generator for the
// maze world. The grid is immutable after generation and safe to share
// with the renderer.
package maze

import (
	"math"

	"github.com/vovakirdan/lavamaze/internal/core"
)

// CellKind classifies one grid cell.
type CellKind uint8

const (
	Wall CellKind = iota
	Floor
	Lava
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Lava:
		return "lava"
	default:
		return "unknown"
	}
}

// Grid is a square maze of cells addressed by (x, z).
// Cells are stored in row-major order: index = z*Size + x.
type Grid struct {
	Size     int     // Edge length in cells
	CellSize float64 // World-unit edge length of one cell
	kinds    []CellKind
}

// NewGrid creates a grid with every cell set to Wall.
func NewGrid(size int, cellSize float64) *Grid {
	return &Grid{
		Size:     size,
		CellSize: cellSize,
		kinds:    make([]CellKind, size*size),
	}
}

// InBounds returns true if (x, z) is inside the grid.
func (g *Grid) InBounds(x, z int) bool {
	return x >= 0 && x < g.Size && z >= 0 && z < g.Size
}

// KindAt returns the kind of cell (x, z).
// Out-of-bounds coordinates read as Wall, so quantized positions that
// momentarily fall outside the grid reject movement instead of panicking.
func (g *Grid) KindAt(x, z int) CellKind {
	if !g.InBounds(x, z) {
		return Wall
	}
	return g.kinds[z*g.Size+x]
}

// setKind writes a cell kind. Only the generator mutates the grid.
func (g *Grid) setKind(x, z int, k CellKind) {
	if g.InBounds(x, z) {
		g.kinds[z*g.Size+x] = k
	}
}

// WorldPos returns the world-space center of cell (x, z).
func (g *Grid) WorldPos(x, z int) core.Vec2 {
	return core.V(float64(x)*g.CellSize, float64(z)*g.CellSize)
}

// CellAt quantizes a world position to grid coordinates.
// The result may be out of bounds; callers rely on KindAt's Wall fallback.
func (g *Grid) CellAt(pos core.Vec2) (x, z int) {
	return int(math.Floor(pos.X / g.CellSize)), int(math.Floor(pos.Z / g.CellSize))
}

// KindAtWorld returns the cell kind under a world position.
func (g *Grid) KindAtWorld(pos core.Vec2) CellKind {
	x, z := g.CellAt(pos)
	return g.KindAt(x, z)
}

// StartCell returns the guaranteed-floor player start cell.
func (g *Grid) StartCell() (x, z int) {
	return 1, 1
}

// GoalCell returns the guaranteed-floor goal cell.
func (g *Grid) GoalCell() (x, z int) {
	return g.Size - 2, g.Size - 2
}

// CountKind returns how many cells have the given kind.
func (g *Grid) CountKind(k CellKind) int {
	n := 0
	for _, kind := range g.kinds {
		if kind == k {
			n++
		}
	}
	return n
}
