// Package engine provides the Step() orchestrator that wires together
// parsing, resolution, dispatch, and the turn scheduler into a single
// turn, plus the verb handlers themselves.
package engine

import (
	"fmt"
	"strings"

	"github.com/telkar/gruecore/engine/parser"
	"github.com/telkar/gruecore/engine/resolve"
	"github.com/telkar/gruecore/engine/state"
	"github.com/telkar/gruecore/types"
)

// pending tracks an outstanding question from a previous command (quit
// and restart confirmations, save/restore filename prompts). While set,
// the next input line is the answer and consumes no turn.
type pending int

const (
	pendingNone pending = iota
	pendingQuit
	pendingRestart
	pendingSaveName
	pendingRestoreName
)

// Result is the output of a single game step.
type Result struct {
	Output []string
	Quit   bool // true once the player has confirmed quitting (or EOF)
}

// Game holds the world and everything needed to advance it one turn.
type Game struct {
	World *state.World
	RNG   *RNG

	fresh   func() *state.World // rebuilds the starting world for restart
	pending pending
	out     []string
}

// New creates a game over a freshly built world. fresh is called again
// on restart; seed feeds the injected RNG.
func New(world *state.World, fresh func() *state.World, seed int64) *Game {
	world.Verbose = true
	if world.PlayerName == "" {
		world.PlayerName = "Adventurer"
	}
	return &Game{
		World: world,
		RNG:   NewRNG(seed),
		fresh: fresh,
	}
}

// Pending reports whether the engine is waiting for an answer to a
// question rather than a game command.
func (g *Game) Pending() bool { return g.pending != pendingNone }

// Look describes the current room; used by front ends for the opening text.
func (g *Game) Look() []string {
	g.out = nil
	g.describeRoom()
	return g.out
}

// Step processes one input line and returns the result. Order per turn:
// answer any pending question; otherwise run random world events, execute
// the command, count the move, burn lamp fuel, and check the darkness
// hazard.
func (g *Game) Step(input string) Result {
	g.out = nil
	// Answers keep their case: save file names are case-sensitive.
	if g.pending != pendingNone {
		quit := g.answer(strings.TrimSpace(input))
		return Result{Output: g.takeOutput(), Quit: quit}
	}

	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return Result{}
	}

	// Magic words are matched against the whole line before the lexicon.
	if input == "odysseus" || input == "ulysses" {
		g.sayOdysseus()
		g.World.Moves++
		return Result{Output: g.takeOutput()}
	}

	cmd := parser.Parse(input)

	g.randomEvents()
	g.execute(&cmd)
	g.World.Moves++
	g.lampTick()
	g.darknessCheck()

	return Result{Output: g.takeOutput()}
}

func (g *Game) takeOutput() []string {
	out := g.out
	g.out = nil
	return out
}

func (g *Game) say(format string, args ...any) {
	if len(args) == 0 {
		g.out = append(g.out, format)
		return
	}
	g.out = append(g.out, fmt.Sprintf(format, args...))
}

// execute dispatches one parsed command. The switch is exhaustive over
// the closed verb enumeration.
func (g *Game) execute(cmd *types.ParsedCommand) {
	if cmd.Direction != "" {
		g.doGo(cmd.Direction)
		return
	}
	if cmd.Verb == types.VerbNone {
		g.say("I don't understand that.")
		return
	}
	// Meta verbs take no object; "save game" and "quit game" run as typed.
	if cmd.Noun != "" && !isMetaVerb(cmd.Verb) {
		cmd.Object = resolve.FindObject(g.World, cmd.Noun)
		if cmd.Object == "" {
			g.say("You can't see any %s here.", cmd.Noun)
			return
		}
	}

	switch cmd.Verb {
	case types.VerbLook:
		g.doLook(cmd)
	case types.VerbExamine:
		g.doExamine(cmd)
	case types.VerbTake:
		g.doTake(cmd)
	case types.VerbDrop:
		g.doDrop(cmd)
	case types.VerbInventory:
		g.doInventory()
	case types.VerbOpen:
		g.doOpen(cmd)
	case types.VerbClose:
		g.doClose(cmd)
	case types.VerbRead:
		g.doRead(cmd)
	case types.VerbTurnOn:
		g.doTurnOn(cmd)
	case types.VerbTurnOff:
		g.doTurnOff(cmd)
	case types.VerbMove:
		g.doMove(cmd)
	case types.VerbPush:
		g.doPush(cmd)
	case types.VerbAttack:
		g.doAttack(cmd)
	case types.VerbEat:
		g.doEat(cmd)
	case types.VerbDrink:
		g.doDrink(cmd)
	case types.VerbGive:
		g.doGive(cmd)
	case types.VerbUnlock:
		g.doUnlock(cmd)
	case types.VerbLock:
		g.doLock(cmd)
	case types.VerbTie:
		g.doTie(cmd)
	case types.VerbUntie:
		g.doUntie(cmd)
	case types.VerbBurn:
		g.doBurn(cmd)
	case types.VerbExtinguish:
		g.doExtinguish(cmd)
	case types.VerbRing:
		g.doRing(cmd)
	case types.VerbWind:
		g.doWind(cmd)
	case types.VerbDig:
		g.doDig(cmd)
	case types.VerbFill:
		g.doFill(cmd)
	case types.VerbPour:
		g.doPour(cmd)
	case types.VerbPray:
		g.doPray()
	case types.VerbWave:
		g.doWave(cmd)
	case types.VerbRaise:
		g.doRaise(cmd)
	case types.VerbLower:
		g.doLower(cmd)
	case types.VerbClimb:
		g.doClimb()
	case types.VerbJump:
		g.doJump()
	case types.VerbBreak:
		g.doBreak(cmd)
	case types.VerbQuit:
		g.doQuit()
	case types.VerbSave:
		g.doSave()
	case types.VerbRestore:
		g.doRestore()
	case types.VerbRestart:
		g.doRestart()
	case types.VerbScore:
		g.doScore()
	case types.VerbVersion:
		g.doVersion()
	case types.VerbVerbose:
		g.doVerbose()
	case types.VerbBrief:
		g.doBrief()
	case types.VerbWait:
		g.say("Time passes...")
	case types.VerbDiagnose:
		g.doDiagnose()
	}
}

// isMetaVerb reports whether the verb addresses the game itself rather
// than the world. Meta verbs ignore trailing words but still consume a
// turn like any other command.
func isMetaVerb(v types.Verb) bool {
	switch v {
	case types.VerbQuit, types.VerbRestart, types.VerbSave, types.VerbRestore,
		types.VerbScore, types.VerbVersion, types.VerbVerbose, types.VerbBrief,
		types.VerbDiagnose:
		return true
	}
	return false
}

// canSee reports whether the player has light: a naturally lit room, or
// an active light source carried or present.
func (g *Game) canSee() bool {
	room := g.World.HereRoom()
	if room == nil || room.Has(types.RoomLit) {
		return true
	}
	lit := func(obj *types.Object) bool {
		return obj.Has(types.FlagLight) && obj.Has(types.FlagTurnedOn)
	}
	for _, id := range g.World.Inventory {
		if obj := g.World.Object(id); obj != nil && lit(obj) {
			return true
		}
	}
	for _, id := range g.World.Contents(g.World.Here) {
		if lit(g.World.Object(id)) {
			return true
		}
	}
	return false
}

// Objects the room description text already mentions; never listed as
// "There is a ... here."
var scenery = map[string]bool{
	"case": true, "rug": true, "window": true, "control_panel": true,
	"prayer": true, "mirror_south": true, "mirror_north": true,
	"chimney": true, "chain": true, "switch": true,
	"green_button": true, "red_button": true,
}

// describeRoom prints the room name, its description (always on first
// visit, otherwise only in verbose mode), actors, and visible objects.
// First-sighting texts appear once; afterwards objects fall back to the
// standard listing. In darkness nothing is described; the scheduler
// emits the hazard warning.
func (g *Game) describeRoom() {
	w := g.World
	room := w.HereRoom()
	if room == nil {
		return
	}
	if !g.canSee() {
		return
	}

	firstVisit := !w.Visited[room.ID]
	g.say("%s", room.Name)
	if firstVisit || w.Verbose {
		g.say("%s", room.Description)
	}
	w.Visited[room.ID] = true

	if w.Here == "loud_room" {
		g.say("The sound level is: %d", w.Progress.LoudRoomLevel)
	}

	for _, a := range w.ActorsInRoom(w.Here) {
		if a.Messages.FirstEncounter != "" {
			g.say("%s", a.Messages.FirstEncounter)
		} else {
			g.say("%s", a.Description)
		}
	}

	var listed []*types.Object
	for _, id := range w.Contents(w.Here) {
		obj := w.Object(id)
		switch {
		case id == "trap_door":
			if obj.Has(types.FlagOpen) {
				g.say("There is an open trap door here.")
			} else {
				g.say("There is a closed trap door here.")
			}
		case id == "grating" && w.Object("leaves") != nil && w.Object("leaves").Location != "clearing":
			// Still hidden under the leaves.
		case obj.InitialText != "" && firstVisit:
			g.say("%s", obj.InitialText)
		default:
			listed = append(listed, obj)
		}
	}

	for _, id := range w.Contents(w.Here) {
		obj := w.Object(id)
		if !obj.Has(types.FlagContainer) {
			continue
		}
		if !obj.Has(types.FlagOpen) && !obj.Has(types.FlagTransparent) {
			continue
		}
		contents := w.Contents(id)
		if len(contents) == 0 {
			continue
		}
		if obj.Has(types.FlagTransparent) {
			g.say("The %s contains:", obj.Name)
		} else {
			g.say("The %s is open. It contains:", obj.Name)
		}
		for _, cid := range contents {
			g.say("  A %s", w.Object(cid).Description)
		}
	}

	for _, obj := range listed {
		if !scenery[obj.ID] {
			g.say("There is a %s here.", obj.Description)
		}
	}
}

// sayOdysseus handles the cyclops's magic word.
func (g *Game) sayOdysseus() {
	cyclops := g.World.Actor("cyclops")
	if g.World.Here != "cyclops_room" || cyclops == nil || !cyclops.Active {
		g.say("Nothing happens.")
		return
	}
	g.say("%s", cyclops.Messages.Flees)
	cyclops.Active = false
	cyclops.Location = ""
	g.World.Progress.CyclopsFled = true
	g.World.SetExit("cyclops_room", types.East, "strange_passage")
}
