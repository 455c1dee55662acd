package maze

import "math/rand"

// GenParams configures maze generation.
type GenParams struct {
	Size       int     // Edge length in cells (minimum 7)
	CellSize   float64 // World-unit edge length of one cell
	LavaChance float64 // Probability of lava on an otherwise-floor cell
	RoomStart  int     // First room center coordinate (and margin from far edge)
	RoomStep   int     // Spacing between room centers
}

// DefaultGenParams returns the standard maze parameters.
func DefaultGenParams() GenParams {
	return GenParams{
		Size:       15,
		CellSize:   2.0,
		LavaChance: 0.15,
		RoomStart:  3,
		RoomStep:   4,
	}
}

// Generate builds a maze grid. Deterministic for a given rng state.
//
// Per-cell rules, in precedence order: the outer border is Wall; cells with
// both coordinates even are Wall (a lattice of internal pillars); otherwise
// the cell is Lava with probability LavaChance, else Floor. The start and
// goal cells are then forced to Floor, and finally 3x3 rooms are carved
// around a lattice of room centers, overwriting pillars and lava but never
// the border. Reachability between start and goal is probabilistic, not
// guaranteed.
func Generate(p GenParams, rng *rand.Rand) *Grid {
	g := NewGrid(p.Size, p.CellSize)

	for z := 0; z < p.Size; z++ {
		for x := 0; x < p.Size; x++ {
			switch {
			case x == 0 || x == p.Size-1 || z == 0 || z == p.Size-1:
				g.setKind(x, z, Wall)
			case x%2 == 0 && z%2 == 0:
				g.setKind(x, z, Wall)
			case rng.Float64() < p.LavaChance:
				g.setKind(x, z, Lava)
			default:
				g.setKind(x, z, Floor)
			}
		}
	}

	// Start and goal are always walkable, whatever the rules above produced.
	sx, sz := g.StartCell()
	g.setKind(sx, sz, Floor)
	gx, gz := g.GoalCell()
	g.setKind(gx, gz, Floor)

	carveRooms(g, p)

	return g
}

// carveRooms forces 3x3 clearings around a lattice of room centers so the
// pillar grid cannot fully block the maze.
func carveRooms(g *Grid, p GenParams) {
	for i := p.RoomStart; i < p.Size-p.RoomStart; i += p.RoomStep {
		for j := p.RoomStart; j < p.Size-p.RoomStart; j += p.RoomStep {
			for di := -1; di <= 1; di++ {
				for dj := -1; dj <= 1; dj++ {
					z, x := i+di, j+dj
					if !g.InBounds(x, z) {
						continue
					}
					if x == 0 || x == g.Size-1 || z == 0 || z == g.Size-1 {
						continue // carving never breaches the border
					}
					g.setKind(x, z, Floor)
				}
			}
		}
	}
}
