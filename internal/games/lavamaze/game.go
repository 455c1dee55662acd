// Package lavamaze implements the maze exploration game: collect every key,
// survive the lava, reach the goal.
package lavamaze

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lavamaze/internal/config"
	"github.com/vovakirdan/lavamaze/internal/core"
	"github.com/vovakirdan/lavamaze/internal/maze"
	"github.com/vovakirdan/lavamaze/internal/registry"
)

// Player holds the mutable player state for one session.
type Player struct {
	Pos    core.Vec2 // Continuous world position, not grid-quantized
	Health int
	Invuln float64 // Seconds of hazard immunity remaining
	Keys   int     // Keys collected this session
}

// Game implements the maze game. All per-tick work runs synchronously in
// Step; the renderer only ever observes a fully settled session.
type Game struct {
	rng     *rand.Rand
	runtime core.RuntimeConfig
	cfg     config.MazeConfig
	logger  *log.Logger

	// World, fixed for the lifetime of a Reset
	grid *maze.Grid
	goal core.Vec2

	// Session state, rebuilt on restart
	player Player
	keys   []core.Vec2
	boxes  []core.Vec2
	status Status
	deaths int

	tick     uint64
	paused   bool
	showHelp bool
	tooSmall bool
}

// hudHeight is the number of screen rows reserved above the map.
const hudHeight = 2

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the config file path used by the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new maze game.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

func init() {
	registry.Register("lavamaze", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "lavamaze"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Lava Maze"
}

// SetLogger routes placement warnings to the given logger.
// The default logger discards everything.
func (g *Game) SetLogger(l *log.Logger) {
	if l != nil {
		g.logger = l
	}
}

// Reset builds a fresh world and session from the runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.paused = false
	g.showHelp = false

	mc, err := config.Load(configPath)
	if err != nil {
		g.logger.Warn("falling back to default config", "error", err)
		mc = config.DefaultMazeConfig()
	}
	g.cfg = mc

	g.grid = maze.Generate(maze.GenParams{
		Size:       mc.World.Size,
		CellSize:   mc.World.CellSize,
		LavaChance: mc.World.LavaChance,
		RoomStart:  mc.World.RoomStart,
		RoomStep:   mc.World.RoomStep,
	}, g.rng)

	gx, gz := g.grid.GoalCell()
	g.goal = g.grid.WorldPos(gx, gz)

	g.checkScreenSize()
	g.startSession()
}

// startSession places entities and resets the player. Called by Reset and
// by restart; the grid is left untouched so a restart replays the same maze
// with a fresh entity layout.
func (g *Game) startSession() {
	g.keys = placeEntities(g.rng, g.grid, g.cfg.Keys)
	if len(g.keys) < g.cfg.Keys.Count {
		g.logger.Warn("key placement shortfall", "placed", len(g.keys), "want", g.cfg.Keys.Count)
	}

	g.boxes = placeEntities(g.rng, g.grid, g.cfg.Boxes)
	if len(g.boxes) < g.cfg.Boxes.Count {
		g.logger.Warn("box placement shortfall", "placed", len(g.boxes), "want", g.cfg.Boxes.Count)
	}

	sx, sz := g.grid.StartCell()
	g.player = Player{
		Pos:    g.grid.WorldPos(sx, sz),
		Health: g.cfg.Player.MaxHealth,
	}
	g.status = StatusPlaying
	g.deaths = 0
}

// checkScreenSize verifies the map fits the terminal.
func (g *Game) checkScreenSize() {
	requiredW := g.grid.Size*2 + 2
	requiredH := g.grid.Size + hudHeight + 1
	g.tooSmall = g.runtime.ScreenW < requiredW || g.runtime.ScreenH < requiredH
}

// Step advances the game by one tick. Interaction order within a tick is
// fixed: movement, lava damage, key pickup, win check, box push.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	// Restart is accepted in every status: the maze carries no reachability
	// guarantee, so the player must always be able to reroll the entities.
	if in.Has(core.ActionRestart) {
		g.startSession()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionHelp) {
		g.showHelp = !g.showHelp
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.status != StatusPlaying || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.applyMovement(in)
	g.applyHazards(g.runtime.Dt())
	g.collectKeys()
	g.checkWin()
	if in.Has(core.ActionPush) {
		g.pushNearbyBox()
	}

	return core.StepResult{State: g.State()}
}

// applyMovement converts move intents into a validated position change.
func (g *Game) applyMovement(in core.InputFrame) {
	var dx, dz float64
	if in.Has(core.ActionMoveNorth) {
		dz--
	}
	if in.Has(core.ActionMoveSouth) {
		dz++
	}
	if in.Has(core.ActionMoveWest) {
		dx--
	}
	if in.Has(core.ActionMoveEast) {
		dx++
	}
	if dx == 0 && dz == 0 {
		return
	}

	delta := core.V(dx, dz).Normalized().Scale(g.cfg.Player.MoveStep)

	target := g.player.Pos.Add(delta)
	if g.walkable(target) {
		g.player.Pos = target
		return
	}

	// Blocked diagonals slide along the free axis.
	if delta.X != 0 {
		if t := g.player.Pos.Add(core.V(delta.X, 0)); g.walkable(t) {
			g.player.Pos = t
			return
		}
	}
	if delta.Z != 0 {
		if t := g.player.Pos.Add(core.V(0, delta.Z)); g.walkable(t) {
			g.player.Pos = t
		}
	}
}

// walkable reports whether the player may occupy a world position.
// Walls block; lava does not, it damages instead.
func (g *Game) walkable(pos core.Vec2) bool {
	return g.grid.KindAtWorld(pos) != maze.Wall
}

// applyHazards applies lava damage and runs the invulnerability timer.
// The tick that applies damage does not also decay the fresh timer.
func (g *Game) applyHazards(dt float64) {
	onLava := g.grid.KindAtWorld(g.player.Pos) == maze.Lava
	if onLava && g.player.Invuln <= 0 {
		g.player.Health -= g.cfg.Player.LavaDamage
		g.player.Invuln = g.cfg.Player.InvulnSeconds
		if g.player.Health <= 0 {
			g.status = StatusDead
			g.respawn()
		}
		return
	}

	if g.player.Invuln > 0 {
		g.player.Invuln -= dt
		if g.player.Invuln < 0 {
			g.player.Invuln = 0
		}
	}
}

// respawn returns the player to the start cell with full health.
// Collected keys and box positions are kept; death is transient and the
// session continues within the same tick.
func (g *Game) respawn() {
	g.deaths++
	sx, sz := g.grid.StartCell()
	g.player.Pos = g.grid.WorldPos(sx, sz)
	g.player.Health = g.cfg.Player.MaxHealth
	g.status = StatusPlaying
}

// collectKeys removes every live key within pickup range (strict <).
func (g *Game) collectKeys() {
	remaining := g.keys[:0]
	for _, k := range g.keys {
		if g.player.Pos.Dist(k) < g.cfg.Rules.PickupRadius {
			g.player.Keys++
		} else {
			remaining = append(remaining, k)
		}
	}
	g.keys = remaining
}

// checkWin marks the session won when all keys are held at the goal.
func (g *Game) checkWin() {
	if g.player.Keys >= g.cfg.Keys.Count && g.player.Pos.Dist(g.goal) < g.cfg.Rules.PickupRadius {
		g.status = StatusWon
	}
}

// pushNearbyBox pushes the first box in list order within reach directly
// away from the player by one cell. The intent is consumed even when the
// target cell rejects the move; boxes may not enter walls or lava.
func (g *Game) pushNearbyBox() {
	for i, b := range g.boxes {
		if g.player.Pos.Dist(b) >= g.cfg.Rules.PushRadius {
			continue
		}
		dir := g.player.Pos.Sub(b).Normalized()
		target := b.Sub(dir.Scale(g.grid.CellSize))
		if g.grid.KindAtWorld(target) == maze.Floor {
			g.boxes[i] = target
		}
		return
	}
}

// State returns the platform-visible game state.
func (g *Game) State() core.GameState {
	score := g.player.Keys * 100
	if g.status == StatusWon {
		score += g.player.Health
	}
	return core.GameState{
		Score:    score,
		GameOver: g.status == StatusWon,
		Paused:   g.paused,
	}
}

// Grid exposes the immutable maze for external readers.
func (g *Game) Grid() *maze.Grid {
	return g.grid
}

// Goal returns the world position of the goal marker.
func (g *Game) Goal() core.Vec2 {
	return g.goal
}

// KeyPositions returns the world positions of the live keys.
func (g *Game) KeyPositions() []core.Vec2 {
	out := make([]core.Vec2, len(g.keys))
	copy(out, g.keys)
	return out
}

// BoxPositions returns the world positions of the boxes.
func (g *Game) BoxPositions() []core.Vec2 {
	out := make([]core.Vec2, len(g.boxes))
	copy(out, g.boxes)
	return out
}

// PlayerState returns a copy of the current player state.
func (g *Game) PlayerState() Player {
	return g.player
}

// Status returns the current session status.
func (g *Game) Status() Status {
	return g.status
}

// Deaths returns how many times the player has respawned this session.
func (g *Game) Deaths() int {
	return g.deaths
}

// Ticks returns the number of simulation steps run so far.
func (g *Game) Ticks() int {
	return int(g.tick)
}

// Resize updates the expected screen size without disturbing the
// session. The maze itself never changes shape, only the fit check.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.checkScreenSize()
}
