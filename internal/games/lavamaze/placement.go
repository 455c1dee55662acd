package lavamaze

import (
	"math/rand"

	"github.com/vovakirdan/lavamaze/internal/config"
	"github.com/vovakirdan/lavamaze/internal/core"
	"github.com/vovakirdan/lavamaze/internal/maze"
)

// placeEntities scatters entities onto floor cells by rejection sampling:
// draw a uniform cell within the margin bounds, keep it if it is Floor,
// stop when the target count is reached or the attempt budget runs out.
// May return fewer positions than requested; callers log, never fail.
// Two entities may land on the same cell.
func placeEntities(rng *rand.Rand, grid *maze.Grid, p config.PlacementConfig) []core.Vec2 {
	lo := p.Margin
	hi := grid.Size - 1 - p.Margin
	if hi < lo {
		return nil
	}
	span := hi - lo + 1

	positions := make([]core.Vec2, 0, p.Count)
	for attempts := 0; attempts < p.MaxAttempts && len(positions) < p.Count; attempts++ {
		x := lo + rng.Intn(span)
		z := lo + rng.Intn(span)
		if grid.KindAt(x, z) == maze.Floor {
			positions = append(positions, grid.WorldPos(x, z))
		}
	}
	return positions
}
