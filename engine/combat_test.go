package engine

import (
	"strings"
	"testing"

	"github.com/telkar/gruecore/types"
)

func TestAttackTrollWithSword(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "troll_room"
	w.Visited["troll_room"] = true
	lightAndCalm(g)
	w.MoveObject("sword", types.LocPlayer)

	r := stepContains(t, g, "attack troll", "the troll crumples into a heap")
	if !strings.Contains(output(r), w.Actors["troll"].Messages.Death) {
		t.Errorf("missing troll death message in %q", output(r))
	}
	if w.Actors["troll"].Active {
		t.Error("troll still active after being killed")
	}
	if w.Object("axe").Location != "troll_room" {
		t.Errorf("axe location = %q, want troll_room", w.Object("axe").Location)
	}

	// With the troll gone, the passage east opens.
	g.Step("east")
	if w.Here != "east_west_passage" {
		t.Errorf("after the kill, east leads to %q, want east_west_passage", w.Here)
	}
}

func TestAttackTrollBareHanded(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "troll_room"
	w.Visited["troll_room"] = true
	lightAndCalm(g)

	r := stepContains(t, g, "attack troll", "suicidal")
	if !strings.Contains(output(r), "****  You have died  ****") {
		t.Errorf("bare-handed attack did not end in death: %q", output(r))
	}
	if w.Deaths != 1 {
		t.Errorf("Deaths = %d, want 1", w.Deaths)
	}
	if w.Here != w.Start {
		t.Errorf("respawn room = %q, want %q", w.Here, w.Start)
	}
	if !w.Actors["troll"].Active {
		t.Error("troll died along with the player")
	}
}

func TestAttackCyclopsIsFatal(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "cyclops_room"
	w.Visited["cyclops_room"] = true
	lightAndCalm(g)

	stepContains(t, g, "attack cyclops", "The cyclops laughs at your puny attack!")
	if w.Deaths != 1 {
		t.Errorf("Deaths = %d, want 1", w.Deaths)
	}
}

func TestAttackSpirits(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "entrance_to_hades"
	w.Visited["entrance_to_hades"] = true
	lightAndCalm(g)

	stepContains(t, g, "attack spirits", "How can you attack spirits?")
	if w.Deaths != 0 {
		t.Errorf("Deaths = %d, want 0", w.Deaths)
	}
	if !w.Actors["spirits"].Active {
		t.Error("spirits deactivated by a futile attack")
	}
}

func TestAttackBatScaresItOff(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "bat_room"
	w.Visited["bat_room"] = true
	lightAndCalm(g)

	stepContains(t, g, "attack bat", "The bat flies away from your attack.")
	if w.Actors["bat"].Location != "" {
		t.Errorf("bat location = %q, want gone", w.Actors["bat"].Location)
	}
}

func TestAttackThiefAlwaysDodges(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "cellar"
	w.Visited["cellar"] = true
	thief := w.Actors["thief"]
	thief.Location = w.Here
	w.Progress.ThiefHere = true

	// Call the handler directly; the outcome of the counterattack is up
	// to the dice, but the dodge line always comes first.
	g.out = nil
	g.doAttack(&types.ParsedCommand{Verb: types.VerbAttack, Noun: "thief", Object: "thief"})
	if len(g.out) == 0 || !strings.Contains(g.out[0], "He dodges your attack.") {
		t.Errorf("doAttack(thief) output = %v, want leading dodge line", g.out)
	}
}

func TestAttackTargets(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"attack", "What do you want to attack?"},
		{"attack dragon", "You can't see any dragon here."},
		{"attack mailbox", "I don't know what you're trying to attack."},
	}
	for _, tt := range tests {
		g := newTestGame(t)
		stepContains(t, g, tt.input, tt.want)
	}
}
