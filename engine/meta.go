package engine

import (
	"os"
	"strings"

	"github.com/telkar/gruecore/engine/save"
)

// answer consumes the input line as the reply to the pending question.
// Returns true only when the player confirms quitting. Answering never
// consumes a turn, and a declined or blank answer is a no-op.
func (g *Game) answer(input string) bool {
	p := g.pending
	g.pending = pendingNone

	lower := strings.ToLower(input)

	switch p {
	case pendingQuit:
		if lower == "y" || lower == "yes" {
			g.finalScore()
			return true
		}
		g.say("Ok.")
	case pendingRestart:
		if lower == "y" || lower == "yes" {
			name := g.World.PlayerName
			g.World = g.fresh()
			g.World.Verbose = true
			g.World.PlayerName = name
			g.describeRoom()
		} else {
			g.say("Ok.")
		}
	case pendingSaveName:
		if input == "" {
			g.say("Ok.")
			return false
		}
		g.saveTo(input)
	case pendingRestoreName:
		if input == "" {
			g.say("Ok.")
			return false
		}
		g.restoreFrom(input)
	}
	return false
}

func (g *Game) saveTo(name string) {
	snap := save.Capture(g.World, g.RNG.Seed(), g.RNG.Position())
	data, err := save.Encode(snap)
	if err != nil {
		g.say("Save failed: %v", err)
		return
	}
	if err := os.WriteFile(saveFileName(name), data, 0o644); err != nil {
		g.say("Save failed: %v", err)
		return
	}
	g.say("Game saved.")
}

func (g *Game) restoreFrom(name string) {
	data, err := os.ReadFile(saveFileName(name))
	if os.IsNotExist(err) {
		g.say("Restore failed. File not found.")
		return
	}
	if err != nil {
		g.say("Restore failed: %v", err)
		return
	}
	snap, err := save.Decode(data)
	if err != nil {
		g.say("Restore failed: %v", err)
		return
	}
	save.Apply(g.World, snap)
	g.RNG = RestoreRNG(snap.RNGSeed, snap.RNGPosition)
	g.say("Game restored.")
	g.describeRoom()
}

func saveFileName(name string) string {
	if strings.HasSuffix(name, ".sav") {
		return name
	}
	return name + ".sav"
}

func (g *Game) doQuit() {
	g.pending = pendingQuit
	g.say("Your score is %d (total of %d points), in %d moves.", g.World.Score, g.World.MaxScore, g.World.Moves)
	g.say("Do you wish to leave the game? (Y is affirmative):")
}

func (g *Game) doRestart() {
	g.pending = pendingRestart
	g.say("Do you wish to restart? (Y is affirmative):")
}

func (g *Game) doSave() {
	g.pending = pendingSaveName
	g.say("Enter a file name (or press Enter to cancel):")
}

func (g *Game) doRestore() {
	g.pending = pendingRestoreName
	g.say("Enter a file name (or press Enter to cancel):")
}

func (g *Game) doScore() {
	g.say("Your score is %d (total of %d points), in %d moves.", g.World.Score, g.World.MaxScore, g.World.Moves)
	g.say("This gives you the rank of %s.", g.rank())
}

func (g *Game) rank() string {
	switch s := g.World.Score; {
	case s >= 350:
		return "Master Adventurer"
	case s >= 330:
		return "Wizard"
	case s >= 300:
		return "Master"
	case s >= 200:
		return "Adventurer"
	case s >= 100:
		return "Junior Adventurer"
	case s >= 50:
		return "Novice Adventurer"
	case s >= 25:
		return "Amateur Adventurer"
	default:
		return "Beginner"
	}
}

func (g *Game) finalScore() {
	g.say("In %d moves, you have scored %d points (total of %d points).", g.World.Moves, g.World.Score, g.World.MaxScore)
	g.say("This gives you the rank of %s.", g.rank())
	if g.World.Deaths > 0 {
		g.say("You died %d times.", g.World.Deaths)
	}
}

func (g *Game) doVersion() {
	g.say("%s", g.World.Title)
	g.say("Release %s / Serial number 260831", g.World.Version)
}

func (g *Game) doVerbose() {
	g.World.Verbose = true
	g.say("Maximum verbosity.")
}

func (g *Game) doBrief() {
	g.World.Verbose = false
	g.say("Brief descriptions.")
}

func (g *Game) doDiagnose() {
	if g.World.Deaths == 0 {
		g.say("You are in perfect health.")
		return
	}
	g.say("You have died %d times. You are in decent health.", g.World.Deaths)
}
