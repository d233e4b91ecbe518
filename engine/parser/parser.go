// Package parser converts input lines into ParsedCommand values.
// Intentionally dumb: no NLP, just a fixed lexicon and a few idiomatic
// rewrites. Name resolution is the resolver's job, not the parser's.
package parser

import (
	"strings"

	"github.com/telkar/gruecore/types"
)

var directions = map[string]types.Direction{
	"n": types.North, "north": types.North,
	"s": types.South, "south": types.South,
	"e": types.East, "east": types.East,
	"w": types.West, "west": types.West,
	"ne": types.Northeast, "northeast": types.Northeast,
	"nw": types.Northwest, "northwest": types.Northwest,
	"se": types.Southeast, "southeast": types.Southeast,
	"sw": types.Southwest, "southwest": types.Southwest,
	"u": types.Up, "up": types.Up,
	"d": types.Down, "down": types.Down,
	"in": types.In, "enter": types.In,
	"out": types.Out, "exit": types.Out,
}

// verbs maps each recognized first token to its canonical verb tag.
// Note the lexicon quirks carried over deliberately: "look" is a synonym
// of examine while bare "l" is the look verb, and "light" belongs to
// burn (the turn-on binding it once shadowed is unreachable; "light
// candles" works, "turn on lamp" is the way to activate the lamp).
var verbs = map[string]types.Verb{
	"take": types.VerbTake, "get": types.VerbTake, "pick": types.VerbTake,
	"drop": types.VerbDrop, "throw": types.VerbDrop, "put": types.VerbDrop,
	"open":  types.VerbOpen,
	"close": types.VerbClose, "shut": types.VerbClose,
	"examine": types.VerbExamine, "x": types.VerbExamine, "look": types.VerbExamine,
	"l":         types.VerbLook,
	"inventory": types.VerbInventory, "i": types.VerbInventory,
	"quit": types.VerbQuit, "q": types.VerbQuit,
	"save":    types.VerbSave,
	"restore": types.VerbRestore, "load": types.VerbRestore,
	"restart": types.VerbRestart,
	"score":   types.VerbScore,
	"version": types.VerbVersion,
	"verbose": types.VerbVerbose,
	"brief":   types.VerbBrief,
	"wait":    types.VerbWait, "z": types.VerbWait,
	"move": types.VerbMove, "push": types.VerbPush,
	"read":   types.VerbRead,
	"attack": types.VerbAttack, "kill": types.VerbAttack, "fight": types.VerbAttack,
	"eat":   types.VerbEat,
	"drink": types.VerbDrink,
	"break": types.VerbBreak, "smash": types.VerbBreak,
	"diagnose": types.VerbDiagnose,
	"give":     types.VerbGive,
	"unlock":   types.VerbUnlock,
	"lock":     types.VerbLock,
	"tie":      types.VerbTie,
	"untie":    types.VerbUntie,
	"burn":     types.VerbBurn, "light": types.VerbBurn,
	"extinguish": types.VerbExtinguish,
	"ring":       types.VerbRing,
	"wind":       types.VerbWind,
	"dig":        types.VerbDig,
	"fill":       types.VerbFill,
	"pour":       types.VerbPour,
	"pray":       types.VerbPray,
	"wave":       types.VerbWave,
	"raise":      types.VerbRaise,
	"lower":      types.VerbLower,
	"climb":      types.VerbClimb,
	"jump":       types.VerbJump,
}

// Parse interprets a trimmed, lower-cased input line. The first token is
// checked against the direction lexicon, then the verb lexicon; remaining
// tokens are joined into the Noun for the resolver. Unrecognized first
// tokens yield a command with VerbNone.
func Parse(input string) types.ParsedCommand {
	cmd := types.ParsedCommand{Raw: input}
	words := strings.Fields(input)
	if len(words) == 0 {
		return cmd
	}

	if dir, ok := directions[words[0]]; ok {
		cmd.Direction = dir
		return cmd
	}

	// "go north" / "walk north" are direction moves, not verbs.
	if (words[0] == "go" || words[0] == "walk") && len(words) > 1 {
		if dir, ok := directions[words[1]]; ok {
			cmd.Direction = dir
		}
		return cmd
	}

	rest := strings.Join(words[1:], " ")

	// "turn on X" / "turn off X" split into distinct toggle verbs. A bare
	// "turn" with neither preposition is not a recognized command.
	if words[0] == "turn" {
		switch {
		case strings.HasPrefix(rest, "on "):
			cmd.Verb = types.VerbTurnOn
			cmd.Noun = rest[3:]
		case strings.HasPrefix(rest, "off "):
			cmd.Verb = types.VerbTurnOff
			cmd.Noun = rest[4:]
		}
		return cmd
	}

	verb, ok := verbs[words[0]]
	if !ok {
		return cmd
	}
	cmd.Verb = verb

	// Idiomatic rewrites.
	switch verb {
	case types.VerbExamine:
		rest = strings.TrimPrefix(rest, "at ")
	case types.VerbTake:
		rest = strings.TrimPrefix(rest, "up ")
	case types.VerbGive, types.VerbTie:
		if i := strings.Index(rest, " to "); i >= 0 {
			rest = rest[:i]
		}
	}
	// "unlock grating with key", "dig with shovel": the instrument is
	// implied by possession, only the target noun matters.
	if strings.HasPrefix(rest, "with ") {
		rest = ""
	} else if i := strings.Index(rest, " with "); i >= 0 {
		rest = rest[:i]
	}

	cmd.Noun = rest
	return cmd
}
