// Package config provides YAML-based gameplay configuration loading for
// the maze platform.
package config

// MazeConfig contains all tunable parameters for the maze game.
type MazeConfig struct {
	World  WorldConfig     `yaml:"world"`
	Player PlayerConfig    `yaml:"player"`
	Keys   PlacementConfig `yaml:"keys"`
	Boxes  PlacementConfig `yaml:"boxes"`
	Rules  RulesConfig     `yaml:"rules"`
}

// WorldConfig defines maze generation parameters.
type WorldConfig struct {
	Size       int     `yaml:"size"`        // Maze edge length in cells
	CellSize   float64 `yaml:"cell_size"`   // World units per cell
	LavaChance float64 `yaml:"lava_chance"` // Probability of lava per eligible cell
	RoomStart  int     `yaml:"room_start"`  // First room center coordinate
	RoomStep   int     `yaml:"room_step"`   // Spacing between room centers
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	MaxHealth     int     `yaml:"max_health"`
	MoveStep      float64 `yaml:"move_step"`      // World units moved per move intent
	LavaDamage    int     `yaml:"lava_damage"`    // Health lost per lava hit
	InvulnSeconds float64 `yaml:"invuln_seconds"` // Invulnerability window after a hit
}

// PlacementConfig defines rejection-sampling placement for one entity kind.
type PlacementConfig struct {
	Count       int `yaml:"count"`        // Target number of entities
	Margin      int `yaml:"margin"`       // Cells kept clear of each edge
	MaxAttempts int `yaml:"max_attempts"` // Sampling budget; shortfall is silent
}

// RulesConfig defines interaction radii.
type RulesConfig struct {
	PickupRadius float64 `yaml:"pickup_radius"` // Key and goal proximity (strict <)
	PushRadius   float64 `yaml:"push_radius"`   // Box push reach (strict <)
}

// Normalize clamps out-of-range values to playable minimums.
func (c *MazeConfig) Normalize() {
	if c.World.Size < 7 {
		c.World.Size = 7
	}
	if c.World.CellSize <= 0 {
		c.World.CellSize = 2.0
	}
	if c.World.LavaChance < 0 {
		c.World.LavaChance = 0
	}
	if c.World.LavaChance > 1 {
		c.World.LavaChance = 1
	}
	if c.World.RoomStart < 1 {
		c.World.RoomStart = 3
	}
	if c.World.RoomStep < 1 {
		c.World.RoomStep = 4
	}
	if c.Player.MaxHealth <= 0 {
		c.Player.MaxHealth = 100
	}
	if c.Player.MoveStep <= 0 {
		c.Player.MoveStep = 0.5
	}
	if c.Player.InvulnSeconds < 0 {
		c.Player.InvulnSeconds = 0
	}
	if c.Keys.MaxAttempts <= 0 {
		c.Keys.MaxAttempts = 100
	}
	if c.Boxes.MaxAttempts <= 0 {
		c.Boxes.MaxAttempts = 50
	}
	if c.Rules.PickupRadius <= 0 {
		c.Rules.PickupRadius = 2.0
	}
	if c.Rules.PushRadius <= 0 {
		c.Rules.PushRadius = 3.0
	}
}
