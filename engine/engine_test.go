package engine

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/telkar/gruecore/content"
	"github.com/telkar/gruecore/engine/state"
	"github.com/telkar/gruecore/loader"
	"github.com/telkar/gruecore/types"
)

// newTestGame loads the real embedded world with a fixed seed.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	world, err := loader.Load(content.FS())
	if err != nil {
		t.Fatalf("loading content: %v", err)
	}
	fresh := func() *state.World {
		w, err := loader.Load(content.FS())
		if err != nil {
			t.Fatalf("reloading content: %v", err)
		}
		return w
	}
	return New(world, fresh, 1)
}

// lightAndCalm hands the player a lit lamp and retires the thief so a
// test in the dungeon sees only the behavior it is probing.
func lightAndCalm(g *Game) {
	w := g.World
	w.MoveObject("lamp", types.LocPlayer)
	lamp := w.Object("lamp")
	lamp.Set(types.FlagLight, true)
	lamp.Set(types.FlagTurnedOn, true)
	w.Progress.LampOn = true
	if thief := w.Actor("thief"); thief != nil {
		thief.Active = false
	}
}

func output(r Result) string {
	return strings.Join(r.Output, "\n")
}

func stepContains(t *testing.T, g *Game, input, want string) Result {
	t.Helper()
	r := g.Step(input)
	if !strings.Contains(output(r), want) {
		t.Fatalf("Step(%q) output = %q, want substring %q", input, output(r), want)
	}
	return r
}

func TestOpeningMoves(t *testing.T) {
	g := newTestGame(t)

	if g.World.Here != "west_of_house" {
		t.Fatalf("start room = %q, want west_of_house", g.World.Here)
	}

	stepContains(t, g, "open mailbox", "leaflet")
	stepContains(t, g, "take leaflet", "Taken.")
	stepContains(t, g, "read leaflet", "WELCOME TO ZORK")

	if g.World.Moves != 3 {
		t.Errorf("Moves = %d, want 3", g.World.Moves)
	}
}

func TestBareLookDescribesRoom(t *testing.T) {
	g := newTestGame(t)
	stepContains(t, g, "look", "West of House")
	stepContains(t, g, "l", "West of House")
}

func TestUnknownCommand(t *testing.T) {
	g := newTestGame(t)
	stepContains(t, g, "frobnicate the lamp", "I don't understand that.")
}

func TestBlankInputConsumesNoTurn(t *testing.T) {
	g := newTestGame(t)
	r := g.Step("   ")
	if len(r.Output) != 0 {
		t.Errorf("blank input produced output: %v", r.Output)
	}
	if g.World.Moves != 0 {
		t.Errorf("blank input consumed a turn: Moves = %d", g.World.Moves)
	}
}

func TestSelfReferenceExitBlocks(t *testing.T) {
	g := newTestGame(t)
	// West of House lists east as an exit back to itself (the boarded
	// front door); it must refuse, not loop.
	stepContains(t, g, "east", "You can't go that way.")
	if g.World.Here != "west_of_house" {
		t.Errorf("player moved through a self-reference exit to %q", g.World.Here)
	}
}

func TestWindowGatesKitchen(t *testing.T) {
	g := newTestGame(t)
	g.Step("north")
	g.Step("east") // behind_house

	stepContains(t, g, "in", "The window is closed.")
	stepContains(t, g, "open window", "open")
	g.Step("in")
	if g.World.Here != "kitchen" {
		t.Errorf("after opening the window, in leads to %q, want kitchen", g.World.Here)
	}
}

func TestTreasureScoresOnceOnTake(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.MoveObject("painting", w.Here)
	val := w.Object("painting").Value
	if val <= 0 {
		t.Fatal("painting has no value; fixture is wrong")
	}

	stepContains(t, g, "take painting", "Taken.")
	if w.Score != val {
		t.Fatalf("score after first take = %d, want %d", w.Score, val)
	}
	g.Step("drop painting")
	g.Step("take painting")
	if w.Score != val {
		t.Errorf("score after take/drop/take = %d, want %d (no double award)", w.Score, val)
	}
}

func TestTreasureDepositScoresOnce(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "living_room"
	w.Visited["living_room"] = true
	w.MoveObject("painting", types.LocPlayer)
	w.Progress.TakenTreasures["painting"] = true
	val := w.Object("painting").Value

	stepContains(t, g, "drop painting", "The painting is now in the trophy case.")
	if w.Object("painting").Location != "case" {
		t.Errorf("painting location = %q, want case", w.Object("painting").Location)
	}
	if w.Score != val {
		t.Fatalf("score after deposit = %d, want %d", w.Score, val)
	}
	if w.Progress.TreasuresDeposited != 1 {
		t.Errorf("TreasuresDeposited = %d, want 1", w.Progress.TreasuresDeposited)
	}

	// Retrieve and redeposit: no second award.
	g.Step("take painting")
	g.Step("drop painting")
	if w.Score != val {
		t.Errorf("score after redeposit = %d, want %d", w.Score, val)
	}
}

func TestInventoryCap(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	for i := 0; i < maxCarry; i++ {
		id := string(rune('a' + i))
		w.AddObject(&types.Object{ID: id, Name: id, Description: id,
			Flags: types.FlagTakeable, Location: types.LocPlayer})
	}
	w.MoveObject("mailbox", w.Here)
	w.Object("mailbox").Set(types.FlagTakeable, true)

	stepContains(t, g, "take mailbox", "Your load is too heavy.")
}

func TestLockedGrating(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "clearing"
	w.Visited["clearing"] = true
	lightAndCalm(g)

	stepContains(t, g, "move leaves", "a grating is revealed")
	stepContains(t, g, "down", "The grating is locked.")

	w.MoveObject("skeleton_key", types.LocPlayer)
	stepContains(t, g, "unlock grating", "The grating is unlocked.")
	g.Step("down")
	if w.Here != "grating_room" {
		t.Errorf("after unlocking, down leads to %q, want grating_room", w.Here)
	}
	// And back up.
	g.Step("up")
	if w.Here != "clearing" {
		t.Errorf("up from grating room leads to %q, want clearing", w.Here)
	}
}

func TestLampLifecycle(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.MoveObject("lamp", types.LocPlayer)

	stepContains(t, g, "turn on lamp", "The lamp is now on.")
	if !w.Progress.LampOn {
		t.Fatal("lamp not on after turn on")
	}
	if w.Progress.LampLife != 329 {
		t.Errorf("lamp life after one lit turn = %d, want 329", w.Progress.LampLife)
	}

	w.Progress.LampLife = 31
	stepContains(t, g, "wait", "Your lamp is getting dim.")

	w.Progress.LampLife = 1
	stepContains(t, g, "wait", "Your lamp has run out of power.")
	if w.Progress.LampOn {
		t.Error("lamp still on after exhausting fuel")
	}
	stepContains(t, g, "turn on lamp", "The lamp has run out of power.")
}

func TestDarknessWarnsEveryTurn(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "cellar"
	w.Visited["cellar"] = true

	for i := 0; i < 2; i++ {
		r := g.Step("wait")
		if w.Here != "cellar" {
			// Eaten by the grue already; warning was shown first.
			return
		}
		if !strings.Contains(output(r), "pitch black") {
			t.Fatalf("dark turn %d missing grue warning: %q", i, output(r))
		}
	}
}

func TestGrueEventuallyKills(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "cellar"
	w.Visited["cellar"] = true

	for i := 0; i < 300; i++ {
		g.Step("wait")
		if w.Deaths > 0 {
			if w.Here != w.Start {
				t.Errorf("after death, player at %q, want %q", w.Here, w.Start)
			}
			return
		}
	}
	t.Error("300 dark turns without a grue attack")
}

func TestDeathDropsInventory(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.MoveObject("lamp", types.LocPlayer)
	w.Here = "cellar"
	w.Visited["cellar"] = true

	g.death("You have died.")

	if len(w.Inventory) != 0 {
		t.Errorf("inventory after death = %v, want empty", w.Inventory)
	}
	if w.Object("lamp").Location != "cellar" {
		t.Errorf("lamp location = %q, want cellar (dropped where you fell)", w.Object("lamp").Location)
	}
	if w.Here != w.Start {
		t.Errorf("respawn room = %q, want %q", w.Here, w.Start)
	}
	if w.Deaths != 1 {
		t.Errorf("Deaths = %d, want 1", w.Deaths)
	}
}

func TestQuitDeclinedKeepsPlaying(t *testing.T) {
	g := newTestGame(t)
	stepContains(t, g, "quit", "Do you wish to leave the game?")
	if !g.Pending() {
		t.Fatal("quit did not set a pending question")
	}
	r := g.Step("n")
	if r.Quit {
		t.Error("declining quit still quit")
	}
	if g.Pending() {
		t.Error("pending question not cleared after answer")
	}
	// The quit command itself is a turn; the answer is not.
	if g.World.Moves != 1 {
		t.Errorf("Moves after quit dialogue = %d, want 1", g.World.Moves)
	}
}

func TestQuitConfirmed(t *testing.T) {
	g := newTestGame(t)
	g.Step("quit")
	r := g.Step("y")
	if !r.Quit {
		t.Error("confirmed quit did not quit")
	}
	if !strings.Contains(output(r), "you have scored") {
		t.Errorf("final score missing from quit output: %q", output(r))
	}
}

func TestRestartPreservesName(t *testing.T) {
	g := newTestGame(t)
	g.World.PlayerName = "Frobozz"
	g.Step("open mailbox")
	g.Step("restart")
	g.Step("y")

	if g.World.PlayerName != "Frobozz" {
		t.Errorf("PlayerName after restart = %q, want Frobozz", g.World.PlayerName)
	}
	if g.World.Moves != 0 {
		t.Errorf("Moves after restart = %d, want 0", g.World.Moves)
	}
	if g.World.Object("mailbox").Has(types.FlagOpen) {
		t.Error("world state survived restart")
	}
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	path := filepath.Join(t.TempDir(), "game")

	g.Step("open mailbox")
	g.Step("take leaflet")
	g.Step("save")
	if !g.Pending() {
		t.Fatal("save did not prompt for a file name")
	}
	stepContains(t, g, path, "Game saved.")
	scoreAt, movesAt := w.Score, w.Moves

	// Play on, then restore.
	g.Step("drop leaflet")
	g.Step("north")
	stepContains(t, g, "restore", "Enter a file name")
	stepContains(t, g, path, "Game restored.")

	if w.Here != "west_of_house" {
		t.Errorf("restored room = %q, want west_of_house", w.Here)
	}
	if !w.Carrying("leaflet") {
		t.Error("restored inventory missing leaflet")
	}
	if w.Score != scoreAt || w.Moves != movesAt {
		t.Errorf("restored score/moves = %d/%d, want %d/%d", w.Score, w.Moves, scoreAt, movesAt)
	}
}

func TestRestoreMissingFile(t *testing.T) {
	g := newTestGame(t)
	g.Step("restore")
	stepContains(t, g, filepath.Join(t.TempDir(), "nope"), "Restore failed. File not found.")
}

func TestSaveAbortedByBlankName(t *testing.T) {
	g := newTestGame(t)
	g.Step("save")
	g.Step("")
	if g.Pending() {
		t.Error("blank answer did not abort the save prompt")
	}
	if g.World.Moves != 1 {
		t.Errorf("Moves after aborted save = %d, want 1", g.World.Moves)
	}
}

func TestDamButtonsControlStream(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "dam"

	if _, ok := w.Room("stream").Exits[types.West]; ok {
		t.Fatal("streambed passable before the sluice gates open")
	}

	stepContains(t, g, "push green button", "The sluice gates open")
	if !w.Progress.DamOpen {
		t.Error("DamOpen not set")
	}
	if got := w.Room("stream").Exits[types.West]; got != "sluice_gate" {
		t.Errorf("stream west exit = %q, want sluice_gate", got)
	}
	if w.Room("reservoir").Has(types.RoomOnWater) {
		t.Error("drained reservoir still flagged as water")
	}

	stepContains(t, g, "push red button", "The sluice gates close")
	if _, ok := w.Room("stream").Exits[types.West]; ok {
		t.Error("closed gates left the streambed passable")
	}
}

func TestExorcismAtTheGate(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	lightAndCalm(g)
	for _, id := range []string{"bell", "book", "candles", "matchbook"} {
		w.MoveObject(id, types.LocPlayer)
	}
	w.Here = "entrance_to_hades"

	stepContains(t, g, "south", "Some invisible force prevents you from passing")

	// The bell alone does nothing; the full ceremony is bell, book, and
	// burning candles.
	stepContains(t, g, "ring bell", "Ding, dong.")
	if w.Progress.SpiritsReleased {
		t.Fatal("spirits released by the bell alone")
	}

	stepContains(t, g, "burn candles", "The candles are lit.")
	stepContains(t, g, "read book", "Black Crystal")
	r := g.Step("ring bell")
	if !strings.Contains(output(r), "banishing the evil spirits!") {
		t.Fatalf("exorcism did not fire: %q", output(r))
	}
	if !w.Progress.SpiritsReleased {
		t.Error("SpiritsReleased not set")
	}
	if spirits := w.Actor("spirits"); spirits.Active || spirits.Location != "" {
		t.Error("spirits still present after the exorcism")
	}

	g.Step("south")
	if w.Here != "land_of_the_dead" {
		t.Errorf("room after exorcised gate = %q, want land_of_the_dead", w.Here)
	}
}

func TestMetaVerbsIgnoreTrailingWords(t *testing.T) {
	g := newTestGame(t)
	stepContains(t, g, "save game", "Enter a file name")
	g.Step("")
	stepContains(t, g, "quit game", "Do you wish to leave the game?")
	g.Step("n")
	stepContains(t, g, "score game", "Your score is")
}

func TestMetaCommandsAdvanceTheClock(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	lightAndCalm(g)

	g.Step("score")
	g.Step("version")
	g.Step("diagnose")

	if w.Moves != 3 {
		t.Errorf("Moves after 3 meta commands = %d, want 3", w.Moves)
	}
	if w.Progress.LampLife != 327 {
		t.Errorf("LampLife = %d, want 327 (fuel burns every turn)", w.Progress.LampLife)
	}
}

func TestOdysseusMagicWord(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "cyclops_room"
	w.Visited["cyclops_room"] = true

	stepContains(t, g, "odysseus", "flees the room")
	if !w.Progress.CyclopsFled {
		t.Error("CyclopsFled not set")
	}
	if w.Actors["cyclops"].Active {
		t.Error("cyclops still active")
	}
	if w.Rooms["cyclops_room"].Exits[types.East] != "strange_passage" {
		t.Error("east passage not opened")
	}
}

func TestScoreAndRank(t *testing.T) {
	g := newTestGame(t)
	stepContains(t, g, "score", "Your score is 0 (total of 350 points)")
	stepContains(t, g, "score", "rank of Beginner")

	g.World.Score = 350
	stepContains(t, g, "score", "rank of Master Adventurer")
}

func TestVerboseBrief(t *testing.T) {
	g := newTestGame(t)
	stepContains(t, g, "brief", "Brief descriptions.")
	if g.World.Verbose {
		t.Error("still verbose after brief")
	}
	stepContains(t, g, "verbose", "Maximum verbosity.")
	if !g.World.Verbose {
		t.Error("not verbose after verbose")
	}
}

func TestTrollBlocksPassage(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "troll_room"
	w.Visited["troll_room"] = true
	lightAndCalm(g)

	stepContains(t, g, "east", "The troll blocks your way!")
	if w.Here != "troll_room" {
		t.Errorf("moved past an active troll to %q", w.Here)
	}
}

func TestGiveTreasureToTroll(t *testing.T) {
	g := newTestGame(t)
	w := g.World
	w.Here = "troll_room"
	w.Visited["troll_room"] = true
	lightAndCalm(g)
	w.MoveObject("painting", types.LocPlayer)

	stepContains(t, g, "give painting", "scurries away")
	if !w.Progress.TrollPaid {
		t.Error("TrollPaid not set")
	}
	if w.Actors["troll"].Active {
		t.Error("troll still active after payment")
	}
	if w.Object("painting") != nil {
		t.Error("payment treasure still exists")
	}
}
