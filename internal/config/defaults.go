package config

import (
	_ "embed"
)

//go:embed defaults/lavamaze.yaml
var defaultLavamazeYAML []byte

// DefaultMazeConfig returns the default maze game configuration.
func DefaultMazeConfig() MazeConfig {
	return MazeConfig{
		World: WorldConfig{
			Size:       15,
			CellSize:   2.0,
			LavaChance: 0.15,
			RoomStart:  3,
			RoomStep:   4,
		},
		Player: PlayerConfig{
			MaxHealth:     100,
			MoveStep:      0.5,
			LavaDamage:    20,
			InvulnSeconds: 1.0,
		},
		Keys: PlacementConfig{
			Count:       3,
			Margin:      2,
			MaxAttempts: 100,
		},
		Boxes: PlacementConfig{
			Count:       3,
			Margin:      3,
			MaxAttempts: 50,
		},
		Rules: RulesConfig{
			PickupRadius: 2.0,
			PushRadius:   3.0,
		},
	}
}
