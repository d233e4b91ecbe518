package parser

import (
	"testing"

	"github.com/telkar/gruecore/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  types.ParsedCommand
	}{
		// Empty / whitespace
		{
			name:  "empty string",
			input: "",
			want:  types.ParsedCommand{},
		},

		// Bare verbs
		{
			name:  "look",
			input: "look",
			want:  types.ParsedCommand{Verb: types.VerbExamine},
		},
		{
			name:  "l is the look verb",
			input: "l",
			want:  types.ParsedCommand{Verb: types.VerbLook},
		},
		{
			name:  "inventory",
			input: "inventory",
			want:  types.ParsedCommand{Verb: types.VerbInventory},
		},
		{
			name:  "i → inventory",
			input: "i",
			want:  types.ParsedCommand{Verb: types.VerbInventory},
		},

		// Verb aliases
		{
			name:  "x lamp → examine lamp",
			input: "x lamp",
			want:  types.ParsedCommand{Verb: types.VerbExamine, Noun: "lamp"},
		},
		{
			name:  "get sword → take sword",
			input: "get sword",
			want:  types.ParsedCommand{Verb: types.VerbTake, Noun: "sword"},
		},
		{
			name:  "take up sword strips up",
			input: "take up sword",
			want:  types.ParsedCommand{Verb: types.VerbTake, Noun: "sword"},
		},
		{
			name:  "look at mailbox strips at",
			input: "look at mailbox",
			want:  types.ParsedCommand{Verb: types.VerbExamine, Noun: "mailbox"},
		},
		{
			name:  "kill troll → attack",
			input: "kill troll",
			want:  types.ParsedCommand{Verb: types.VerbAttack, Noun: "troll"},
		},
		{
			name:  "throw axe → drop",
			input: "throw axe",
			want:  types.ParsedCommand{Verb: types.VerbDrop, Noun: "axe"},
		},
		{
			name:  "light candles → burn",
			input: "light candles",
			want:  types.ParsedCommand{Verb: types.VerbBurn, Noun: "candles"},
		},

		// Prepositions
		{
			name:  "give painting to troll strips recipient",
			input: "give painting to troll",
			want:  types.ParsedCommand{Verb: types.VerbGive, Noun: "painting"},
		},
		{
			name:  "tie rope to railing strips anchor",
			input: "tie rope to railing",
			want:  types.ParsedCommand{Verb: types.VerbTie, Noun: "rope"},
		},
		{
			name:  "unlock grating with key strips instrument",
			input: "unlock grating with key",
			want:  types.ParsedCommand{Verb: types.VerbUnlock, Noun: "grating"},
		},
		{
			name:  "dig with shovel has no target noun",
			input: "dig with shovel",
			want:  types.ParsedCommand{Verb: types.VerbDig},
		},

		// "turn" splits on the preposition
		{
			name:  "turn on lamp",
			input: "turn on lamp",
			want:  types.ParsedCommand{Verb: types.VerbTurnOn, Noun: "lamp"},
		},
		{
			name:  "turn off lamp",
			input: "turn off lamp",
			want:  types.ParsedCommand{Verb: types.VerbTurnOff, Noun: "lamp"},
		},
		{
			name:  "bare turn is not a command",
			input: "turn",
			want:  types.ParsedCommand{},
		},
		{
			name:  "turn lamp is not a command",
			input: "turn lamp",
			want:  types.ParsedCommand{},
		},

		// Directions
		{
			name:  "n → north",
			input: "n",
			want:  types.ParsedCommand{Direction: types.North},
		},
		{
			name:  "southwest",
			input: "sw",
			want:  types.ParsedCommand{Direction: types.Southwest},
		},
		{
			name:  "enter → in",
			input: "enter",
			want:  types.ParsedCommand{Direction: types.In},
		},
		{
			name:  "go north",
			input: "go north",
			want:  types.ParsedCommand{Direction: types.North},
		},
		{
			name:  "walk d",
			input: "walk d",
			want:  types.ParsedCommand{Direction: types.Down},
		},
		{
			name:  "go nowhere",
			input: "go fishing",
			want:  types.ParsedCommand{},
		},

		// Unknown
		{
			name:  "unknown verb",
			input: "frobnicate lamp",
			want:  types.ParsedCommand{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			tt.want.Raw = tt.input
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}
