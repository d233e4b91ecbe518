package loader

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/telkar/gruecore/types"
)

// loadWith replaces world.lua in the tiny fixture and loads it.
func loadWith(t *testing.T, world string) error {
	t.Helper()
	fsys := tinyWorld()
	fsys["world.lua"] = &fstest.MapFile{Data: []byte(world)}
	_, err := Load(fsys)
	return err
}

func TestObjectFlagsCompile(t *testing.T) {
	fsys := tinyWorld()
	fsys["world.lua"] = &fstest.MapFile{Data: []byte(`
Room "cell" { name = "Cell", description = "x", flags = { "lit" } }
Object "chest" {
  name = "chest",
  description = "oak chest",
  flags = { "container", "open", "transparent", "sacred" },
  location = "cell",
  capacity = 20,
}
`)}
	w, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	chest := w.Objects["chest"]
	for _, f := range []types.ObjectFlag{
		types.FlagContainer, types.FlagOpen, types.FlagTransparent, types.FlagSacred,
	} {
		if !chest.Has(f) {
			t.Errorf("chest missing flag %v", f)
		}
	}
	if chest.Has(types.FlagTakeable) {
		t.Error("chest has a flag it was never given")
	}
	if chest.Capacity != 20 {
		t.Errorf("Capacity = %d, want 20", chest.Capacity)
	}
}

func TestUnknownObjectFlagIsLoadError(t *testing.T) {
	err := loadWith(t, `
Room "cell" { name = "Cell", description = "x", flags = { "lit" } }
Object "rock" { name = "rock", description = "rock", flags = { "takable" }, location = "cell" }
`)
	if err == nil || !strings.Contains(err.Error(), `unknown object flag "takable"`) {
		t.Errorf("err = %v, want unknown object flag", err)
	}
}

func TestUnknownRoomFlagIsLoadError(t *testing.T) {
	err := loadWith(t, `
Room "cell" { name = "Cell", description = "x", flags = { "litt" } }
`)
	if err == nil || !strings.Contains(err.Error(), `unknown room flag "litt"`) {
		t.Errorf("err = %v, want unknown room flag", err)
	}
}

func TestUnknownMessageKeyIsLoadError(t *testing.T) {
	err := loadWith(t, `
Room "cell" { name = "Cell", description = "x", flags = { "lit" } }
Actor "ghost" {
  name = "ghost",
  description = "a ghost",
  location = "cell",
  messages = { frist_encounter = "Boo." },
}
`)
	if err == nil || !strings.Contains(err.Error(), `unknown message key "frist_encounter"`) {
		t.Errorf("err = %v, want unknown message key", err)
	}
}

func TestDuplicateIDsRejected(t *testing.T) {
	tests := []struct {
		name  string
		world string
		want  string
	}{
		{"room", `
Room "cell" { name = "Cell", description = "x", flags = { "lit" } }
Room "cell" { name = "Cell Again", description = "x" }
`, `duplicate room "cell"`},
		{"object", `
Room "cell" { name = "Cell", description = "x", flags = { "lit" } }
Object "rock" { name = "rock", description = "rock", location = "cell" }
Object "rock" { name = "rock", description = "rock", location = "cell" }
`, `duplicate object "rock"`},
		{"actor", `
Room "cell" { name = "Cell", description = "x", flags = { "lit" } }
Actor "ghost" { name = "ghost", description = "g", location = "cell" }
Actor "ghost" { name = "ghost", description = "g", location = "cell" }
`, `duplicate actor "ghost"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := loadWith(t, tt.world)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestMissingNameIsLoadError(t *testing.T) {
	err := loadWith(t, `
Room "cell" { description = "no name" }
`)
	if err == nil || !strings.Contains(err.Error(), "missing name") {
		t.Errorf("err = %v, want missing name", err)
	}
}

func TestActorDefaults(t *testing.T) {
	fsys := tinyWorld()
	w, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	warden := w.Actors["warden"]
	if !warden.Active {
		t.Error("actors must start active")
	}
	if warden.Hostile {
		t.Error("hostile must default to false")
	}
	if warden.Health != 50 {
		t.Errorf("Health = %d, want 50", warden.Health)
	}
}

func TestDefinitionOrderPreserved(t *testing.T) {
	fsys := tinyWorld()
	fsys["world.lua"] = &fstest.MapFile{Data: []byte(`
Room "cell" { name = "Cell", description = "x", flags = { "lit" } }
Object "zebra" { name = "zebra", description = "z", location = "cell" }
Object "apple" { name = "apple", description = "a", location = "cell" }
Object "mango" { name = "mango", description = "m", location = "cell" }
`)}
	w, err := Load(fsys)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := []string{"zebra", "apple", "mango"}
	for i, id := range want {
		if w.ObjectOrder[i] != id {
			t.Fatalf("ObjectOrder = %v, want %v", w.ObjectOrder, want)
		}
	}
}
