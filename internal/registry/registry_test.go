package registry

import (
	"testing"

	"github.com/vovakirdan/codebreaker/internal/game/codebreaker"
)

func TestRegisterAndGet(t *testing.T) {
	reset()
	t.Cleanup(reset)

	classic := Preset{ID: "classic", Title: "Classic", Config: codebreaker.DefaultConfig()}
	Register(classic)

	got, err := Get("classic")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if got != classic {
		t.Errorf("Get() = %+v, expected %+v", got, classic)
	}

	if !Exists("classic") {
		t.Error("Exists(classic) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}
	if _, err := Get("missing"); err == nil {
		t.Error("Get(missing) should fail")
	}
}

func TestListKeepsRegistrationOrder(t *testing.T) {
	reset()
	t.Cleanup(reset)

	for _, id := range []string{"super", "classic", "easy"} {
		Register(Preset{ID: id, Config: codebreaker.DefaultConfig()})
	}

	list := List()
	expected := []string{"super", "classic", "easy"}
	if len(list) != len(expected) {
		t.Fatalf("List() returned %d presets, expected %d", len(list), len(expected))
	}
	for i, id := range expected {
		if list[i].ID != id {
			t.Errorf("List()[%d] = %q, expected %q", i, list[i].ID, id)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	reset()
	t.Cleanup(reset)

	Register(Preset{ID: "classic"})

	defer func() {
		if recover() == nil {
			t.Error("Register() with a duplicate ID should panic")
		}
	}()
	Register(Preset{ID: "classic"})
}

func TestPresetLabel(t *testing.T) {
	tests := []struct {
		p        Preset
		expected string
	}{
		{
			Preset{ID: "classic", Title: "Classic", Config: codebreaker.DefaultConfig()},
			"Classic (6 colors, 4 holes, 8 guesses)",
		},
		{
			Preset{ID: "easy", Config: codebreaker.Config{Colors: 5, MaxGuesses: 10, Holes: 4}},
			"easy (5 colors, 4 holes, 10 guesses, no duplicates)",
		},
	}

	for _, tc := range tests {
		if got := tc.p.Label(); got != tc.expected {
			t.Errorf("Label() = %q, expected %q", got, tc.expected)
		}
	}
}
