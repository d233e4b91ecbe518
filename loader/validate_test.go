package loader

import (
	"errors"
	"strings"
	"testing"

	"github.com/telkar/gruecore/engine/state"
	"github.com/telkar/gruecore/types"
)

// smallWorld builds a compiled world directly, bypassing Lua, so each
// test can corrupt exactly one reference.
func smallWorld() *state.World {
	return &state.World{
		Title: "t",
		Start: "cell",
		Here:  "cell",
		Rooms: map[string]*types.Room{
			"cell": {ID: "cell", Name: "Cell", Exits: map[types.Direction]string{
				types.North: "hall",
			}},
			"hall": {ID: "hall", Name: "Hall", Exits: map[types.Direction]string{
				types.South: "cell",
			}},
		},
		Objects: map[string]*types.Object{
			"rock":  {ID: "rock", Name: "rock", Location: "cell"},
			"chest": {ID: "chest", Name: "chest", Location: "hall", Flags: types.FlagContainer},
			"coin":  {ID: "coin", Name: "coin", Location: "chest"},
		},
		ObjectOrder: []string{"rock", "chest", "coin"},
		Actors: map[string]*types.Actor{
			"warden": {ID: "warden", Name: "warden", Location: "hall", Active: true},
		},
		ActorOrder: []string{"warden"},
		Visited:    map[string]bool{},
		Progress:   state.NewProgress(),
	}
}

func TestValidateCleanWorld(t *testing.T) {
	if err := validate(smallWorld()); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateCollectsEveryError(t *testing.T) {
	w := smallWorld()
	w.Start = "nowhere"
	w.Rooms["cell"].Exits[types.North] = "void"
	w.Rooms["hall"].Exits["sideways"] = "cell"
	w.Objects["rock"].Location = "void"
	w.Actors["warden"].Location = "void"

	err := validate(w)
	if err == nil {
		t.Fatal("validate accepted a broken world")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err type = %T, want *ValidationError", err)
	}
	if len(ve.Errors) != 5 {
		t.Errorf("collected %d errors, want 5:\n%v", len(ve.Errors), err)
	}
	for _, want := range []string{
		`start room "nowhere"`,
		`points to undefined room "void"`,
		`unknown exit direction "sideways"`,
		`object "rock" location "void"`,
		`actor "warden" location "void"`,
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("missing %q in:\n%v", want, err)
		}
	}
}

func TestValidateMissingTitle(t *testing.T) {
	w := smallWorld()
	w.Title = ""
	err := validate(w)
	if err == nil || !strings.Contains(err.Error(), "Game.title is required") {
		t.Errorf("err = %v, want missing title", err)
	}
}

func TestValidateObjectLocations(t *testing.T) {
	tests := []struct {
		name     string
		location string
		ok       bool
	}{
		{"room", "cell", true},
		{"container object", "chest", true},
		{"actor", "warden", true},
		{"player", types.LocPlayer, true},
		{"off-stage", "", true},
		{"undefined", "void", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := smallWorld()
			w.Objects["rock"].Location = tt.location
			err := validate(w)
			if tt.ok && err != nil {
				t.Errorf("validate: %v", err)
			}
			if !tt.ok && err == nil {
				t.Errorf("location %q accepted", tt.location)
			}
		})
	}
}

func TestValidateSelfContainment(t *testing.T) {
	w := smallWorld()
	w.Objects["chest"].Location = "chest"
	err := validate(w)
	if err == nil || !strings.Contains(err.Error(), `object "chest" contains itself`) {
		t.Errorf("err = %v, want self-containment error", err)
	}
}
