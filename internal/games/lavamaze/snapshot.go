package lavamaze

import "github.com/vovakirdan/lavamaze/internal/maze"

// Status represents the session state machine.
// Dead is transient: a lethal lava hit respawns the player within the same
// tick, so observers normally only ever see Playing or Won.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusDead    Status = "dead"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	PlayerX       float64
	PlayerZ       float64
	Health        int
	Invuln        float64
	KeysCollected int
	KeysAlive     int
	Boxes         int
	Deaths        int
	Status        Status
	Paused        bool

	// Grid fingerprint
	WallCells int
	LavaCells int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tick,
		PlayerX:       g.player.Pos.X,
		PlayerZ:       g.player.Pos.Z,
		Health:        g.player.Health,
		Invuln:        g.player.Invuln,
		KeysCollected: g.player.Keys,
		KeysAlive:     len(g.keys),
		Boxes:         len(g.boxes),
		Deaths:        g.deaths,
		Status:        g.status,
		Paused:        g.paused,
	}
	if g.grid != nil {
		snap.WallCells = g.grid.CountKind(maze.Wall)
		snap.LavaCells = g.grid.CountKind(maze.Lava)
	}
	return snap
}
