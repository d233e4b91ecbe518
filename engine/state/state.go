// Package state holds the authoritative mutable world: rooms, objects,
// actors, player state, and the cross-cutting puzzle progress flags.
package state

import "github.com/telkar/gruecore/types"

// Progress groups every world-flag into one aggregate, so puzzle state
// transitions are auditable instead of scattered globals.
type Progress struct {
	LampOn             bool
	LampLife           int
	GratingUnlocked    bool
	TrapDoorOpen       bool
	RainbowSolid       bool
	DamOpen            bool
	LoudRoomLevel      int
	CoffinOpen         bool
	BellRung           bool
	CandlesLit         bool
	BookRead           bool
	SpiritsReleased    bool
	CyclopsFled        bool
	MirrorBroken       bool
	TrollPaid          bool
	ThiefHere          bool
	TreasuresDeposited int

	// Exactly-once scoring: treasures award points on first take and
	// first deposit only, never again on a take/drop cycle.
	TakenTreasures     map[string]bool
	DepositedTreasures map[string]bool
}

// NewProgress returns the starting puzzle state.
func NewProgress() Progress {
	return Progress{
		LampLife:           330,
		LoudRoomLevel:      4,
		TakenTreasures:     map[string]bool{},
		DepositedTreasures: map[string]bool{},
	}
}

// World is the complete game state: the entity store plus player state.
// Entities are built once by the loader and thereafter only mutated.
type World struct {
	Title    string
	Version  string
	Intro    string
	Start    string // respawn and restart room
	MaxScore int

	Rooms   map[string]*types.Room
	Objects map[string]*types.Object
	Actors  map[string]*types.Actor

	// Content order of objects and actors, for deterministic matching
	// and listing (map iteration order is randomized in Go).
	ObjectOrder []string
	ActorOrder  []string

	PlayerName string
	Here       string // current room id
	Inventory  []string
	Score      int
	Moves      int
	Deaths     int
	Verbose    bool
	Visited    map[string]bool
	Progress   Progress
}

// Room returns a room by id, or nil.
func (w *World) Room(id string) *types.Room { return w.Rooms[id] }

// Object returns an object by id, or nil.
func (w *World) Object(id string) *types.Object { return w.Objects[id] }

// Actor returns an actor by id, or nil.
func (w *World) Actor(id string) *types.Actor { return w.Actors[id] }

// HereRoom returns the player's current room.
func (w *World) HereRoom() *types.Room { return w.Rooms[w.Here] }

// Carrying reports whether the object is in the player's inventory.
func (w *World) Carrying(id string) bool {
	for _, held := range w.Inventory {
		if held == id {
			return true
		}
	}
	return false
}

// Contents returns the ids of objects whose parent is the given location
// (room id or container id), in content order.
func (w *World) Contents(loc string) []string {
	var ids []string
	for _, id := range w.ObjectOrder {
		if obj, ok := w.Objects[id]; ok && obj.Location == loc {
			ids = append(ids, id)
		}
	}
	return ids
}

// MoveObject reparents an object. The old parent is implicitly cleared by
// overwriting the single Location reference; if the object was carried it
// is removed from the inventory list in the same step, so the containment
// graph never shows two parents.
func (w *World) MoveObject(id, loc string) {
	obj, ok := w.Objects[id]
	if !ok {
		return
	}
	if obj.Location == types.LocPlayer {
		w.removeFromInventory(id)
	}
	obj.Location = loc
	if loc == types.LocPlayer && !w.Carrying(id) {
		w.Inventory = append(w.Inventory, id)
	}
}

// RemoveObject deletes an object from the store, scrubbing every dangling
// reference: inventory membership, and the parentage of anything the
// object contained (children fall to the object's former location).
func (w *World) RemoveObject(id string) {
	obj, ok := w.Objects[id]
	if !ok {
		return
	}
	fallback := obj.Location
	if fallback == types.LocPlayer || fallback == id {
		fallback = w.Here
	}
	for _, child := range w.Contents(id) {
		w.Objects[child].Location = fallback
	}
	w.removeFromInventory(id)
	delete(w.Objects, id)
	for i, oid := range w.ObjectOrder {
		if oid == id {
			w.ObjectOrder = append(w.ObjectOrder[:i], w.ObjectOrder[i+1:]...)
			break
		}
	}
}

// AddObject inserts a synthesized object (e.g. water in the bottle, the
// canary's bauble). No-op if the id already exists.
func (w *World) AddObject(obj *types.Object) {
	if _, exists := w.Objects[obj.ID]; exists {
		return
	}
	w.Objects[obj.ID] = obj
	w.ObjectOrder = append(w.ObjectOrder, obj.ID)
	if obj.Location == types.LocPlayer {
		w.Inventory = append(w.Inventory, obj.ID)
	}
}

func (w *World) removeFromInventory(id string) {
	for i, held := range w.Inventory {
		if held == id {
			w.Inventory = append(w.Inventory[:i], w.Inventory[i+1:]...)
			return
		}
	}
}

// SetExit adds or redirects a room exit. Idempotent: applying the same
// edit twice leaves the map unchanged.
func (w *World) SetExit(roomID string, dir types.Direction, target string) {
	room, ok := w.Rooms[roomID]
	if !ok {
		return
	}
	if room.Exits == nil {
		room.Exits = map[types.Direction]string{}
	}
	room.Exits[dir] = target
}

// ClearExit removes a room exit. Idempotent.
func (w *World) ClearExit(roomID string, dir types.Direction) {
	if room, ok := w.Rooms[roomID]; ok {
		delete(room.Exits, dir)
	}
}

// ActorsInRoom returns active actors present in the given room, in
// content order.
func (w *World) ActorsInRoom(roomID string) []*types.Actor {
	var present []*types.Actor
	for _, id := range w.ActorOrder {
		if a := w.Actors[id]; a != nil && a.Active && a.Location == roomID {
			present = append(present, a)
		}
	}
	return present
}
