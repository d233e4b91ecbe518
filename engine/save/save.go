// Package save implements JSON serialization of the full game snapshot.
package save

import (
	"encoding/json"
	"sort"

	"github.com/telkar/gruecore/engine/state"
	"github.com/telkar/gruecore/types"
)

// ObjectState is the per-object mutable slice of a snapshot.
type ObjectState struct {
	Location string `json:"location"`
	Flags    uint32 `json:"flags"`
	Value    int    `json:"value"`
}

// ActorState is the per-actor mutable slice of a snapshot.
type ActorState struct {
	Location string `json:"location"`
	Health   int    `json:"health"`
	Active   bool   `json:"active"`
}

// Snapshot is the serializable save format: player state, every
// world-flag, and the mutable slice of each object and actor.
type Snapshot struct {
	Version    string   `json:"version"`
	PlayerName string   `json:"player_name"`
	Room       string   `json:"current_room"`
	Inventory  []string `json:"inventory"`
	Score      int      `json:"score"`
	Moves      int      `json:"moves"`
	Deaths     int      `json:"deaths"`
	Visited    []string `json:"visited_rooms"`
	Verbose    bool     `json:"verbose"`

	LampOn             bool     `json:"lamp_on"`
	LampLife           int      `json:"lamp_life"`
	GratingUnlocked    bool     `json:"grating_unlocked"`
	TrapDoorOpen       bool     `json:"trap_door_open"`
	RainbowSolid       bool     `json:"rainbow_solid"`
	DamOpen            bool     `json:"dam_open"`
	LoudRoomLevel      int      `json:"loud_room_level"`
	CoffinOpen         bool     `json:"coffin_open"`
	BellRung           bool     `json:"bell_rung"`
	CandlesLit         bool     `json:"candles_lit"`
	BookRead           bool     `json:"book_read"`
	SpiritsReleased    bool     `json:"spirits_released"`
	CyclopsFled        bool     `json:"cyclops_fled"`
	MirrorBroken       bool     `json:"mirror_broken"`
	TrollPaid          bool     `json:"troll_payment"`
	ThiefHere          bool     `json:"thief_here"`
	TreasuresDeposited int      `json:"treasures_deposited"`
	TakenTreasures     []string `json:"taken_treasures"`
	DepositedTreasures []string `json:"deposited_treasures"`

	Objects map[string]ObjectState `json:"objects"`
	Actors  map[string]ActorState  `json:"actors"`

	RNGSeed     int64 `json:"rng_seed"`
	RNGPosition int64 `json:"rng_position"`
}

// Capture builds a snapshot of the world plus the RNG stream state.
func Capture(w *state.World, rngSeed, rngPos int64) Snapshot {
	snap := Snapshot{
		Version:    w.Version,
		PlayerName: w.PlayerName,
		Room:       w.Here,
		Inventory:  append([]string{}, w.Inventory...),
		Score:      w.Score,
		Moves:      w.Moves,
		Deaths:     w.Deaths,
		Visited:    sortedKeys(w.Visited),
		Verbose:    w.Verbose,

		LampOn:             w.Progress.LampOn,
		LampLife:           w.Progress.LampLife,
		GratingUnlocked:    w.Progress.GratingUnlocked,
		TrapDoorOpen:       w.Progress.TrapDoorOpen,
		RainbowSolid:       w.Progress.RainbowSolid,
		DamOpen:            w.Progress.DamOpen,
		LoudRoomLevel:      w.Progress.LoudRoomLevel,
		CoffinOpen:         w.Progress.CoffinOpen,
		BellRung:           w.Progress.BellRung,
		CandlesLit:         w.Progress.CandlesLit,
		BookRead:           w.Progress.BookRead,
		SpiritsReleased:    w.Progress.SpiritsReleased,
		CyclopsFled:        w.Progress.CyclopsFled,
		MirrorBroken:       w.Progress.MirrorBroken,
		TrollPaid:          w.Progress.TrollPaid,
		ThiefHere:          w.Progress.ThiefHere,
		TreasuresDeposited: w.Progress.TreasuresDeposited,
		TakenTreasures:     sortedKeys(w.Progress.TakenTreasures),
		DepositedTreasures: sortedKeys(w.Progress.DepositedTreasures),

		Objects: map[string]ObjectState{},
		Actors:  map[string]ActorState{},

		RNGSeed:     rngSeed,
		RNGPosition: rngPos,
	}
	for id, obj := range w.Objects {
		snap.Objects[id] = ObjectState{
			Location: obj.Location,
			Flags:    uint32(obj.Flags),
			Value:    obj.Value,
		}
	}
	for id, a := range w.Actors {
		snap.Actors[id] = ActorState{
			Location: a.Location,
			Health:   a.Health,
			Active:   a.Active,
		}
	}
	return snap
}

// Encode serializes a snapshot to JSON bytes.
func Encode(snap Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// Decode parses JSON bytes into a snapshot. Fields absent from older
// saves keep their defaults, so loads are forward-compatible. Decode
// performs no world mutation; a failed decode leaves nothing to undo.
func Decode(data []byte) (Snapshot, error) {
	snap := Snapshot{
		PlayerName:    "Adventurer",
		LampLife:      330,
		LoudRoomLevel: 4,
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, err
	}
	if snap.Inventory == nil {
		snap.Inventory = []string{}
	}
	return snap, nil
}

// Apply writes a decoded snapshot onto the world. Objects and actors the
// current world does not know (e.g. consumed items) are skipped.
func Apply(w *state.World, snap Snapshot) {
	w.PlayerName = snap.PlayerName
	w.Here = snap.Room
	w.Inventory = append([]string{}, snap.Inventory...)
	w.Score = snap.Score
	w.Moves = snap.Moves
	w.Deaths = snap.Deaths
	w.Verbose = snap.Verbose
	w.Visited = map[string]bool{}
	for _, id := range snap.Visited {
		w.Visited[id] = true
	}

	w.Progress.LampOn = snap.LampOn
	w.Progress.LampLife = snap.LampLife
	w.Progress.GratingUnlocked = snap.GratingUnlocked
	w.Progress.TrapDoorOpen = snap.TrapDoorOpen
	w.Progress.RainbowSolid = snap.RainbowSolid
	w.Progress.DamOpen = snap.DamOpen
	w.Progress.LoudRoomLevel = snap.LoudRoomLevel
	w.Progress.CoffinOpen = snap.CoffinOpen
	w.Progress.BellRung = snap.BellRung
	w.Progress.CandlesLit = snap.CandlesLit
	w.Progress.BookRead = snap.BookRead
	w.Progress.SpiritsReleased = snap.SpiritsReleased
	w.Progress.CyclopsFled = snap.CyclopsFled
	w.Progress.MirrorBroken = snap.MirrorBroken
	w.Progress.TrollPaid = snap.TrollPaid
	w.Progress.ThiefHere = snap.ThiefHere
	w.Progress.TreasuresDeposited = snap.TreasuresDeposited
	w.Progress.TakenTreasures = toSet(snap.TakenTreasures)
	w.Progress.DepositedTreasures = toSet(snap.DepositedTreasures)

	for id, os := range snap.Objects {
		if obj, ok := w.Objects[id]; ok {
			obj.Location = os.Location
			obj.Flags = types.ObjectFlag(os.Flags)
			obj.Value = os.Value
		}
	}
	for id, as := range snap.Actors {
		if a, ok := w.Actors[id]; ok {
			a.Location = as.Location
			a.Health = as.Health
			a.Active = as.Active
		}
	}
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
