package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionPush) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionPush)
	f.Set(ActionMoveEast)
	if !f.Has(ActionPush) || !f.Has(ActionMoveEast) {
		t.Error("Set actions not reported by Has")
	}
	if f.Has(ActionRestart) {
		t.Error("Unset action reported as set")
	}

	f.Clear()
	if f.Has(ActionPush) || f.Has(ActionMoveEast) {
		t.Error("Clear did not remove actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame

	if f.Has(ActionPush) {
		t.Error("Zero-value frame should report no actions")
	}

	// Set on a zero-value frame allocates the map instead of panicking
	f.Set(ActionPush)
	if !f.Has(ActionPush) {
		t.Error("Set on zero-value frame lost the action")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	c := f.Clone()
	if !c.Has(ActionPause) {
		t.Error("Clone lost an action")
	}

	c.Set(ActionQuit)
	if f.Has(ActionQuit) {
		t.Error("Clone shares storage with the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionNone, "None"},
		{ActionMoveNorth, "MoveNorth"},
		{ActionPush, "Push"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.want)
		}
	}
}

func TestRuntimeConfigDt(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 50}
	if cfg.Dt() != 0.02 {
		t.Errorf("Dt() = %v, expected 0.02", cfg.Dt())
	}

	// Zero tick rate falls back to 60 instead of dividing by zero
	cfg.TickRate = 0
	if cfg.Dt() != 1.0/60.0 {
		t.Errorf("Dt() with zero rate = %v, expected 1/60", cfg.Dt())
	}
}
