package registry

import (
	"testing"

	"github.com/vovakirdan/lavamaze/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string                             { return g.id }
func (g *stubGame) Title() string                          { return g.title }
func (g *stubGame) Reset(cfg core.RuntimeConfig)           {}
func (g *stubGame) Step(in core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(dst *core.Screen)                {}
func (g *stubGame) State() core.GameState                  { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a", title: "Stub A"} })

	if !Exists("stub_a") {
		t.Fatal("Registered game not found by Exists")
	}

	g, err := Create("stub_a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub_a" {
		t.Errorf("Created game ID = %q, expected stub_a", g.ID())
	}

	// Factories yield independent instances
	g2, _ := Create("stub_a")
	if g == g2 {
		t.Error("Create() returned the same instance twice")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() of unknown game should fail")
	}
	if Exists("no_such_game") {
		t.Error("Exists() reported an unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Duplicate Register() should panic")
		}
	}()

	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup", title: "Dup"} })
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup", title: "Dup"} })
}

func TestListSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z", title: "Stub Z"} })
	Register("stub_b", func() Game { return &stubGame{id: "stub_b", title: "Stub B"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID > games[i].ID {
			t.Fatalf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}

	// Titles are cached at registration time
	found := false
	for _, g := range games {
		if g.ID == "stub_b" && g.Title == "Stub B" {
			found = true
		}
	}
	if !found {
		t.Error("List() missing registered game with its title")
	}
}
