// Package types defines the shared data structures for the gruecore engine.
// This package contains only type definitions, no game logic.
package types

// Direction is a compass or spatial direction used as an exit-map key.
type Direction string

const (
	North     Direction = "north"
	South     Direction = "south"
	East      Direction = "east"
	West      Direction = "west"
	Northeast Direction = "northeast"
	Northwest Direction = "northwest"
	Southeast Direction = "southeast"
	Southwest Direction = "southwest"
	Up        Direction = "up"
	Down      Direction = "down"
	In        Direction = "in"
	Out       Direction = "out"
)

// Verb is the closed enumeration of player actions. The dispatcher switches
// exhaustively over these, so every verb has a handler at compile time.
type Verb int

const (
	VerbNone Verb = iota
	VerbTake
	VerbDrop
	VerbOpen
	VerbClose
	VerbExamine
	VerbLook
	VerbInventory
	VerbQuit
	VerbSave
	VerbRestore
	VerbRestart
	VerbScore
	VerbVersion
	VerbVerbose
	VerbBrief
	VerbWait
	VerbTurnOn
	VerbTurnOff
	VerbMove
	VerbPush
	VerbRead
	VerbAttack
	VerbEat
	VerbDrink
	VerbBreak
	VerbDiagnose
	VerbGive
	VerbUnlock
	VerbLock
	VerbTie
	VerbUntie
	VerbBurn
	VerbExtinguish
	VerbRing
	VerbWind
	VerbDig
	VerbFill
	VerbPour
	VerbPray
	VerbWave
	VerbRaise
	VerbLower
	VerbClimb
	VerbJump
)

var verbNames = map[Verb]string{
	VerbTake: "take", VerbDrop: "drop", VerbOpen: "open", VerbClose: "close",
	VerbExamine: "examine", VerbLook: "look", VerbInventory: "inventory",
	VerbQuit: "quit", VerbSave: "save", VerbRestore: "restore",
	VerbRestart: "restart", VerbScore: "score", VerbVersion: "version",
	VerbVerbose: "verbose", VerbBrief: "brief", VerbWait: "wait",
	VerbTurnOn: "turn on", VerbTurnOff: "turn off", VerbMove: "move",
	VerbPush: "push", VerbRead: "read", VerbAttack: "attack", VerbEat: "eat",
	VerbDrink: "drink", VerbBreak: "break", VerbDiagnose: "diagnose",
	VerbGive: "give", VerbUnlock: "unlock", VerbLock: "lock", VerbTie: "tie",
	VerbUntie: "untie", VerbBurn: "burn", VerbExtinguish: "extinguish",
	VerbRing: "ring", VerbWind: "wind", VerbDig: "dig", VerbFill: "fill",
	VerbPour: "pour", VerbPray: "pray", VerbWave: "wave", VerbRaise: "raise",
	VerbLower: "lower", VerbClimb: "climb", VerbJump: "jump",
}

// String returns the canonical player-facing word for a verb, used in
// prompts like "What do you want to take?".
func (v Verb) String() string {
	if name, ok := verbNames[v]; ok {
		return name
	}
	return "do"
}

// ObjectFlag is a bitset of static and mutable object properties.
type ObjectFlag uint32

const (
	FlagVisible ObjectFlag = 1 << iota
	FlagTakeable
	FlagContainer
	FlagOpen
	FlagClosed
	FlagLocked
	FlagLight
	FlagReadable
	FlagDoor
	FlagTransparent
	FlagWeapon
	FlagTurnable
	FlagTurnedOn
	FlagEdible
	FlagDrinkable
	FlagTreasure
	FlagVehicle
	FlagSacred
	FlagTool
	FlagFlammable
)

// RoomFlag is a bitset of static room properties.
type RoomFlag uint16

const (
	RoomLit RoomFlag = 1 << iota
	RoomDeath
	RoomSacred
	RoomNoThief
	RoomOnWater
)

// LocPlayer is the location sentinel for objects carried by the player.
// An empty location means the object is off-stage (not yet in the world).
const LocPlayer = "player"

// Object is a thing in the world: treasure, tool, scenery, or container.
type Object struct {
	ID          string
	Name        string // matched against player input
	Description string // short text used in room listings
	ExamineText string // long text, mutable (e.g. lamp lit vs unlit)
	InitialText string // shown once, on first sighting; then Description
	Flags       ObjectFlag
	Location    string // room id, container object id, LocPlayer, or ""
	Capacity    int    // advisory container room, not enforced
	Size        int    // descriptive bulk, not enforced arithmetic
	Value       int    // points on first take and again on deposit
}

// Has reports whether the object has the given flag set.
func (o *Object) Has(f ObjectFlag) bool { return o.Flags&f != 0 }

// Set sets or clears a flag.
func (o *Object) Set(f ObjectFlag, on bool) {
	if on {
		o.Flags |= f
	} else {
		o.Flags &^= f
	}
}

// SetOpen flips the paired Open/Closed bits in one atomic write.
func (o *Object) SetOpen(open bool) {
	flags := o.Flags
	if open {
		flags |= FlagOpen
		flags &^= FlagClosed
	} else {
		flags &^= FlagOpen
		flags |= FlagClosed
	}
	o.Flags = flags
}

// Room is a location in the fixed world graph.
type Room struct {
	ID          string
	Name        string
	Description string // mutable: world events rewrite it
	Flags       RoomFlag
	Exits       map[Direction]string // mutable at runtime; self-reference = fake exit
}

// Has reports whether the room has the given flag set.
func (r *Room) Has(f RoomFlag) bool { return r.Flags&f != 0 }

// Set sets or clears a room flag.
func (r *Room) Set(f RoomFlag, on bool) {
	if on {
		r.Flags |= f
	} else {
		r.Flags &^= f
	}
}

// ActorMessages is the fixed set of scripted lines an actor can speak or
// trigger. A struct of optionals instead of a stringly-keyed map, so every
// message key used by the dispatcher exists at compile time.
type ActorMessages struct {
	FirstEncounter string
	Fight          string
	Death          string
	Payment        string
	AxeThrown      string
	Steal          string
	Stiletto       string
	Engrossed      string
	Block          string
	Ceremony       string
	Exorcise       string
	Garlic         string
	Flies          string
	Hungry         string
	Flees          string
	Odysseus       string
}

// Actor is a scripted non-player character.
type Actor struct {
	ID          string
	Name        string
	Description string
	Location    string // room id, or "" when off-stage
	Health      int
	Hostile     bool
	Active      bool // false = permanently removed from play
	Messages    ActorMessages
}

// ParsedCommand is the transient result of interpreting one input line.
type ParsedCommand struct {
	Verb      Verb
	Noun      string    // raw object text, as typed
	Object    string    // resolved object or actor id, "" if none matched
	Indirect  string    // resolved indirect object id (unused by the lexicon)
	Direction Direction // set for direction-only commands
	Raw       string    // original input, for diagnostics and "again"
}
