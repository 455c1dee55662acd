package lavamaze

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lavamaze/internal/core"
	"github.com/vovakirdan/lavamaze/internal/maze"
)

func newTestGame(seed int64) *Game {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	})
	return g
}

// findLavaGame returns a game whose maze contains lava, plus the world
// position of one lava cell, searching across seeds so tests never depend
// on one particular maze.
func findLavaGame(t *testing.T) (*Game, core.Vec2) {
	t.Helper()
	for seed := int64(1); seed <= 50; seed++ {
		g := newTestGame(seed)
		for z := 0; z < g.grid.Size; z++ {
			for x := 0; x < g.grid.Size; x++ {
				if g.grid.KindAt(x, z) == maze.Lava {
					return g, g.grid.WorldPos(x, z)
				}
			}
		}
	}
	t.Fatal("No maze with lava found across 50 seeds")
	return nil, core.Vec2{}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		input.Clear()
		if i >= 10 && i < 30 {
			input.Set(core.ActionMoveEast)
		}
		if i >= 30 && i < 50 {
			input.Set(core.ActionMoveSouth)
		}
		if i == 60 {
			input.Set(core.ActionPush)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1 != snap2 {
		t.Errorf("Snapshots diverged for same seed:\n%+v\n%+v", snap1, snap2)
	}
}

func TestDifferentSeedsDifferentMazes(t *testing.T) {
	g1 := newTestGame(1)
	g2 := newTestGame(2)

	s1, s2 := g1.Snapshot(), g2.Snapshot()
	if s1.LavaCells == s2.LavaCells && s1.KeysAlive == s2.KeysAlive && s1.Boxes == s2.Boxes {
		// Counts matching is possible; the actual layouts must still differ
		same := true
		for z := 0; z < g1.grid.Size && same; z++ {
			for x := 0; x < g1.grid.Size; x++ {
				if g1.grid.KindAt(x, z) != g2.grid.KindAt(x, z) {
					same = false
					break
				}
			}
		}
		if same {
			t.Error("Seeds 1 and 2 produced identical mazes")
		}
	}
}

func TestKeyPickupStrictRadius(t *testing.T) {
	g := newTestGame(1)

	// Room centers are always carved floor
	pos := g.grid.WorldPos(7, 7)
	g.player.Pos = pos
	g.keys = []core.Vec2{
		pos.Add(core.V(g.cfg.Rules.PickupRadius, 0)),        // exactly at radius: out
		pos.Add(core.V(g.cfg.Rules.PickupRadius-0.01, 0)),   // just inside: collected
	}

	g.collectKeys()

	if g.player.Keys != 1 {
		t.Errorf("Collected %d keys, expected 1", g.player.Keys)
	}
	if len(g.keys) != 1 {
		t.Fatalf("%d keys remain, expected 1", len(g.keys))
	}
	if g.keys[0] != pos.Add(core.V(g.cfg.Rules.PickupRadius, 0)) {
		t.Error("The key exactly at the pickup radius should have survived")
	}
}

func TestWinRequiresAllKeysAtGoal(t *testing.T) {
	g := newTestGame(1)

	// At the goal without enough keys
	g.player.Pos = g.goal
	g.player.Keys = g.cfg.Keys.Count - 1
	g.checkWin()
	if g.status == StatusWon {
		t.Fatal("Won without all keys")
	}

	// All keys but away from the goal
	g.player.Keys = g.cfg.Keys.Count
	g.player.Pos = g.goal.Add(core.V(g.cfg.Rules.PickupRadius+1, 0))
	g.checkWin()
	if g.status == StatusWon {
		t.Fatal("Won away from the goal")
	}

	// Both conditions met
	g.player.Pos = g.goal
	g.checkWin()
	if g.status != StatusWon {
		t.Error("Expected win with all keys at the goal")
	}
}

func TestLavaDamageAndInvulnWindow(t *testing.T) {
	g, lavaPos := findLavaGame(t)
	g.player.Pos = lavaPos

	maxHealth := g.cfg.Player.MaxHealth
	damage := g.cfg.Player.LavaDamage

	// First hit lands and opens the invulnerability window
	g.applyHazards(1.5)
	if g.player.Health != maxHealth-damage {
		t.Fatalf("Health after first hit: %d, expected %d", g.player.Health, maxHealth-damage)
	}
	if g.player.Invuln != g.cfg.Player.InvulnSeconds {
		t.Fatalf("Invuln after first hit: %v, expected %v", g.player.Invuln, g.cfg.Player.InvulnSeconds)
	}

	// Second tick falls inside the window: no damage, timer expires
	g.applyHazards(1.5)
	if g.player.Health != maxHealth-damage {
		t.Fatalf("Health changed during invulnerability: %d", g.player.Health)
	}
	if g.player.Invuln != 0 {
		t.Fatalf("Invuln after expiry tick: %v, expected 0", g.player.Invuln)
	}

	// Third tick lands again
	g.applyHazards(1.5)
	if g.player.Health != maxHealth-2*damage {
		t.Errorf("Health after third tick: %d, expected %d", g.player.Health, maxHealth-2*damage)
	}
}

func TestLavaInvulnHoldsUnderFastTicks(t *testing.T) {
	g, lavaPos := findLavaGame(t)
	g.player.Pos = lavaPos

	maxHealth := g.cfg.Player.MaxHealth
	damage := g.cfg.Player.LavaDamage

	// Hit, then three sub-window ticks decay 0.4s each without damage
	for i := 0; i < 4; i++ {
		g.applyHazards(0.4)
	}
	if g.player.Health != maxHealth-damage {
		t.Fatalf("Health after 4 fast ticks: %d, expected %d", g.player.Health, maxHealth-damage)
	}

	// Window has fully decayed: the next tick lands
	g.applyHazards(0.4)
	if g.player.Health != maxHealth-2*damage {
		t.Errorf("Health after window expiry: %d, expected %d", g.player.Health, maxHealth-2*damage)
	}
}

func TestLethalLavaRespawn(t *testing.T) {
	g, lavaPos := findLavaGame(t)
	g.player.Pos = lavaPos
	g.player.Health = g.cfg.Player.LavaDamage // next hit is lethal
	g.player.Keys = 2
	boxesBefore := g.BoxPositions()

	g.applyHazards(1.5)

	sx, sz := g.grid.StartCell()
	if g.player.Pos != g.grid.WorldPos(sx, sz) {
		t.Errorf("Player at %v after death, expected start %v", g.player.Pos, g.grid.WorldPos(sx, sz))
	}
	if g.player.Health != g.cfg.Player.MaxHealth {
		t.Errorf("Health after respawn: %d, expected %d", g.player.Health, g.cfg.Player.MaxHealth)
	}
	if g.deaths != 1 {
		t.Errorf("Deaths after respawn: %d, expected 1", g.deaths)
	}
	if g.status != StatusPlaying {
		t.Errorf("Status after respawn: %v, expected playing", g.status)
	}
	if g.player.Keys != 2 {
		t.Errorf("Keys after respawn: %d, expected 2 (deaths keep progress)", g.player.Keys)
	}

	boxesAfter := g.BoxPositions()
	if len(boxesAfter) != len(boxesBefore) {
		t.Fatalf("Box count changed across respawn: %d vs %d", len(boxesAfter), len(boxesBefore))
	}
	for i := range boxesBefore {
		if boxesAfter[i] != boxesBefore[i] {
			t.Errorf("Box %d moved across respawn: %v vs %v", i, boxesBefore[i], boxesAfter[i])
		}
	}
}

func TestBoxPushAwayFromPlayer(t *testing.T) {
	g := newTestGame(1)

	// Room around center (7, 7) is guaranteed floor
	g.player.Pos = g.grid.WorldPos(6, 7)
	g.boxes = []core.Vec2{g.grid.WorldPos(7, 7)}

	g.pushNearbyBox()

	want := g.grid.WorldPos(8, 7)
	if g.boxes[0] != want {
		t.Errorf("Box at %v after push, expected %v", g.boxes[0], want)
	}
}

func TestBoxPushBlockedByWall(t *testing.T) {
	g := newTestGame(1)

	// Pushing west from (1, 1) would put the box inside the border
	g.player.Pos = g.grid.WorldPos(2, 1)
	g.boxes = []core.Vec2{g.grid.WorldPos(1, 1)}

	g.pushNearbyBox()

	if g.boxes[0] != g.grid.WorldPos(1, 1) {
		t.Errorf("Box moved into the border wall: %v", g.boxes[0])
	}
}

func TestBoxPushOutOfRange(t *testing.T) {
	g := newTestGame(1)

	g.player.Pos = g.grid.WorldPos(7, 7)
	far := g.grid.WorldPos(7, 7).Add(core.V(g.cfg.Rules.PushRadius, 0))
	g.boxes = []core.Vec2{far}

	g.pushNearbyBox()

	if g.boxes[0] != far {
		t.Errorf("Box outside the push radius moved: %v", g.boxes[0])
	}
}

func TestBoxPushFirstInListOrder(t *testing.T) {
	g := newTestGame(1)

	g.player.Pos = g.grid.WorldPos(6, 7)
	g.boxes = []core.Vec2{
		g.grid.WorldPos(7, 7),
		g.grid.WorldPos(7, 8),
	}

	g.pushNearbyBox()

	if g.boxes[0] != g.grid.WorldPos(8, 7) {
		t.Errorf("First box should have moved, got %v", g.boxes[0])
	}
	if g.boxes[1] != g.grid.WorldPos(7, 8) {
		t.Errorf("Second box should not have moved, got %v", g.boxes[1])
	}
}

func TestBoxPushIntentConsumedWhenBlocked(t *testing.T) {
	g := newTestGame(1)

	// First box in range but blocked; the push must not fall through to the
	// second box
	g.player.Pos = g.grid.WorldPos(2, 1)
	g.boxes = []core.Vec2{
		g.grid.WorldPos(1, 1), // blocked by the border
		g.grid.WorldPos(3, 1), // also in range
	}

	g.pushNearbyBox()

	if g.boxes[0] != g.grid.WorldPos(1, 1) || g.boxes[1] != g.grid.WorldPos(3, 1) {
		t.Errorf("Boxes moved: %v, %v", g.boxes[0], g.boxes[1])
	}
}

func TestMovementBlockedByWall(t *testing.T) {
	g := newTestGame(1)
	start := g.player.Pos

	in := core.NewInputFrame()
	in.Set(core.ActionMoveWest)
	g.Step(in)

	if g.player.Pos != start {
		t.Errorf("Player moved into the west border: %v", g.player.Pos)
	}

	in.Clear()
	in.Set(core.ActionMoveNorth)
	g.Step(in)

	if g.player.Pos != start {
		t.Errorf("Player moved into the north border: %v", g.player.Pos)
	}
}

func TestMovementOntoFloor(t *testing.T) {
	g := newTestGame(1)
	start := g.player.Pos

	in := core.NewInputFrame()
	in.Set(core.ActionMoveEast)
	g.Step(in)

	want := start.Add(core.V(g.cfg.Player.MoveStep, 0))
	if g.player.Pos != want {
		t.Errorf("Player at %v after east step, expected %v", g.player.Pos, want)
	}
}

func TestDiagonalSlidesAlongWall(t *testing.T) {
	g := newTestGame(1)
	start := g.player.Pos

	// North is blocked at the start cell; a north-east intent should slide
	// east along the wall
	in := core.NewInputFrame()
	in.Set(core.ActionMoveNorth)
	in.Set(core.ActionMoveEast)
	g.Step(in)

	if g.player.Pos.Z != start.Z {
		t.Errorf("Player moved vertically into the wall: %v", g.player.Pos)
	}
	if g.player.Pos.X <= start.X {
		t.Errorf("Player did not slide east: %v", g.player.Pos)
	}
}

func TestRestartKeepsMaze(t *testing.T) {
	g := newTestGame(5)
	gridBefore := g.grid
	snapBefore := g.Snapshot()

	// Mess up the session
	g.player.Pos = g.grid.WorldPos(7, 7)
	g.player.Keys = 2
	g.player.Health = 40
	g.deaths = 3

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.grid != gridBefore {
		t.Fatal("Restart replaced the grid; only Reset regenerates the maze")
	}

	snapAfter := g.Snapshot()
	if snapAfter.WallCells != snapBefore.WallCells || snapAfter.LavaCells != snapBefore.LavaCells {
		t.Error("Maze layout changed across restart")
	}

	sx, sz := g.grid.StartCell()
	if g.player.Pos != g.grid.WorldPos(sx, sz) {
		t.Errorf("Player at %v after restart, expected start", g.player.Pos)
	}
	if g.player.Keys != 0 {
		t.Errorf("Keys after restart: %d, expected 0", g.player.Keys)
	}
	if g.player.Health != g.cfg.Player.MaxHealth {
		t.Errorf("Health after restart: %d, expected full", g.player.Health)
	}
	if g.deaths != 0 {
		t.Errorf("Deaths after restart: %d, expected 0", g.deaths)
	}
	if g.status != StatusPlaying {
		t.Errorf("Status after restart: %v, expected playing", g.status)
	}
}

func TestRestartAfterWin(t *testing.T) {
	g := newTestGame(1)
	g.status = StatusWon

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	if g.status != StatusPlaying {
		t.Errorf("Status after restart from win: %v, expected playing", g.status)
	}
	if g.State().GameOver {
		t.Error("GameOver should clear on restart")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(1)
	start := g.player.Pos

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	if !g.State().Paused {
		t.Fatal("Pause action did not pause")
	}

	in.Clear()
	in.Set(core.ActionMoveEast)
	g.Step(in)

	if g.player.Pos != start {
		t.Errorf("Player moved while paused: %v", g.player.Pos)
	}

	in.Clear()
	in.Set(core.ActionPause)
	g.Step(in)
	in.Clear()
	in.Set(core.ActionMoveEast)
	g.Step(in)

	if g.player.Pos == start {
		t.Error("Player did not move after unpausing")
	}
}

func TestWinFreezesSimulation(t *testing.T) {
	g := newTestGame(1)
	g.status = StatusWon
	pos := g.player.Pos

	in := core.NewInputFrame()
	in.Set(core.ActionMoveEast)
	g.Step(in)

	if g.player.Pos != pos {
		t.Errorf("Player moved after winning: %v", g.player.Pos)
	}
}

func TestScore(t *testing.T) {
	g := newTestGame(1)

	g.player.Keys = 2
	if got := g.State().Score; got != 200 {
		t.Errorf("Score with 2 keys: %d, expected 200", got)
	}
	if g.State().GameOver {
		t.Error("GameOver should be false while playing")
	}

	g.player.Health = 75
	g.status = StatusWon
	if got := g.State().Score; got != 275 {
		t.Errorf("Score after win: %d, expected 275 (keys plus remaining health)", got)
	}
	if !g.State().GameOver {
		t.Error("GameOver should be true after win")
	}
}

func TestHelpToggle(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	in.Set(core.ActionHelp)
	g.Step(in)
	if !g.showHelp {
		t.Fatal("Help did not open")
	}

	g.Step(in)
	if g.showHelp {
		t.Error("Help did not close")
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{
		Seed:     1,
		ScreenW:  10,
		ScreenH:  5,
		TickRate: 60,
	})

	if !g.tooSmall {
		t.Fatal("Game should detect window is too small")
	}

	start := g.player.Pos
	in := core.NewInputFrame()
	in.Set(core.ActionMoveEast)
	g.Step(in)

	if g.player.Pos != start {
		t.Error("Player moved while window too small")
	}
}

func TestResizeKeepsSession(t *testing.T) {
	g := newTestGame(1)
	g.player.Keys = 2
	pos := g.player.Pos

	g.Resize(10, 5)
	if !g.tooSmall {
		t.Error("Resize to tiny window should set tooSmall")
	}

	g.Resize(80, 24)
	if g.tooSmall {
		t.Error("Resize back should clear tooSmall")
	}
	if g.player.Keys != 2 || g.player.Pos != pos {
		t.Error("Resize disturbed the session")
	}
}

func TestGameIDAndTitle(t *testing.T) {
	g := New()
	if g.ID() != "lavamaze" {
		t.Errorf("ID() = %q, expected lavamaze", g.ID())
	}
	if g.Title() != "Lava Maze" {
		t.Errorf("Title() = %q, expected Lava Maze", g.Title())
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if len(content) == 0 {
		t.Fatal("Rendered screen should not be empty")
	}
	if !strings.Contains(content, "Lava Maze") {
		t.Error("HUD should contain the game title")
	}
	if !strings.Contains(content, string(playerGlyph)) {
		t.Error("Player glyph missing from render")
	}
	if !strings.Contains(content, string(goalGlyph)) {
		t.Error("Goal glyph missing from render")
	}
}

func TestTicksAdvance(t *testing.T) {
	g := newTestGame(1)

	in := core.NewInputFrame()
	for i := 0; i < 7; i++ {
		g.Step(in)
	}

	if g.Ticks() != 7 {
		t.Errorf("Ticks() = %d, expected 7", g.Ticks())
	}
}
