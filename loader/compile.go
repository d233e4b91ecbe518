// Package loader loads Lua game content into Go structs at startup.
// The Lua VM is discarded after loading; no Lua runs at runtime.
package loader

import (
	"fmt"

	"github.com/telkar/gruecore/engine/state"
	"github.com/telkar/gruecore/types"
	lua "github.com/yuin/gopher-lua"
)

// rawRoom holds a room table before compilation.
type rawRoom struct {
	id    string
	table *lua.LTable
}

// rawObject holds an object table before compilation.
type rawObject struct {
	id    string
	table *lua.LTable
}

// rawActor holds an actor table before compilation.
type rawActor struct {
	id    string
	table *lua.LTable
}

// objectFlagNames maps content flag strings to flag bits.
var objectFlagNames = map[string]types.ObjectFlag{
	"visible":     types.FlagVisible,
	"takeable":    types.FlagTakeable,
	"container":   types.FlagContainer,
	"open":        types.FlagOpen,
	"closed":      types.FlagClosed,
	"locked":      types.FlagLocked,
	"light":       types.FlagLight,
	"readable":    types.FlagReadable,
	"door":        types.FlagDoor,
	"transparent": types.FlagTransparent,
	"weapon":      types.FlagWeapon,
	"turnable":    types.FlagTurnable,
	"turnedon":    types.FlagTurnedOn,
	"edible":      types.FlagEdible,
	"drinkable":   types.FlagDrinkable,
	"treasure":    types.FlagTreasure,
	"vehicle":     types.FlagVehicle,
	"sacred":      types.FlagSacred,
	"tool":        types.FlagTool,
	"flammable":   types.FlagFlammable,
}

var roomFlagNames = map[string]types.RoomFlag{
	"lit":     types.RoomLit,
	"death":   types.RoomDeath,
	"sacred":  types.RoomSacred,
	"nothief": types.RoomNoThief,
	"onwater": types.RoomOnWater,
}

// getString returns a string field from a Lua table, or "" if missing.
func getString(tbl *lua.LTable, key string) string {
	v := tbl.RawGetString(key)
	if s, ok := v.(lua.LString); ok {
		return string(s)
	}
	return ""
}

// getBool returns a bool field from a Lua table, or the default if missing.
func getBool(tbl *lua.LTable, key string, def bool) bool {
	v := tbl.RawGetString(key)
	if b, ok := v.(lua.LBool); ok {
		return bool(b)
	}
	return def
}

// getInt returns an int field from a Lua table, or 0 if missing.
func getInt(tbl *lua.LTable, key string) int {
	v := tbl.RawGetString(key)
	if n, ok := v.(lua.LNumber); ok {
		return int(n)
	}
	return 0
}

// getTable returns a table field from a Lua table, or nil if missing.
func getTable(tbl *lua.LTable, key string) *lua.LTable {
	v := tbl.RawGetString(key)
	if t, ok := v.(*lua.LTable); ok {
		return t
	}
	return nil
}

// compile converts all collected Lua data into a starting world.
func compile(coll *collector) (*state.World, error) {
	if coll.game == nil {
		return nil, fmt.Errorf("no Game{} definition found")
	}

	w := &state.World{
		Title:    getString(coll.game, "title"),
		Version:  getString(coll.game, "version"),
		Intro:    getString(coll.game, "intro"),
		Start:    getString(coll.game, "start"),
		MaxScore: getInt(coll.game, "max_score"),
		Rooms:    map[string]*types.Room{},
		Objects:  map[string]*types.Object{},
		Actors:   map[string]*types.Actor{},
		Visited:  map[string]bool{},
		Progress: state.NewProgress(),
	}
	w.Here = w.Start

	for _, raw := range coll.rooms {
		if _, dup := w.Rooms[raw.id]; dup {
			return nil, fmt.Errorf("duplicate room %q", raw.id)
		}
		room, err := compileRoom(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling room %s: %w", raw.id, err)
		}
		w.Rooms[room.ID] = room
	}

	for _, raw := range coll.objects {
		if _, dup := w.Objects[raw.id]; dup {
			return nil, fmt.Errorf("duplicate object %q", raw.id)
		}
		obj, err := compileObject(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling object %s: %w", raw.id, err)
		}
		w.Objects[obj.ID] = obj
		w.ObjectOrder = append(w.ObjectOrder, obj.ID)
		if obj.Location == types.LocPlayer {
			w.Inventory = append(w.Inventory, obj.ID)
		}
	}

	for _, raw := range coll.actors {
		if _, dup := w.Actors[raw.id]; dup {
			return nil, fmt.Errorf("duplicate actor %q", raw.id)
		}
		actor, err := compileActor(raw)
		if err != nil {
			return nil, fmt.Errorf("compiling actor %s: %w", raw.id, err)
		}
		w.Actors[actor.ID] = actor
		w.ActorOrder = append(w.ActorOrder, actor.ID)
	}

	return w, nil
}

func compileRoom(raw rawRoom) (*types.Room, error) {
	tbl := raw.table
	room := &types.Room{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		Exits:       map[types.Direction]string{},
	}
	if room.Name == "" {
		return nil, fmt.Errorf("missing name")
	}

	var err error
	if flagsTbl := getTable(tbl, "flags"); flagsTbl != nil {
		flagsTbl.ForEach(func(_, v lua.LValue) {
			name, ok := v.(lua.LString)
			if !ok {
				return
			}
			bit, known := roomFlagNames[string(name)]
			if !known {
				err = fmt.Errorf("unknown room flag %q", string(name))
				return
			}
			room.Flags |= bit
		})
	}
	if err != nil {
		return nil, err
	}

	if exitsTbl := getTable(tbl, "exits"); exitsTbl != nil {
		exitsTbl.ForEach(func(k, v lua.LValue) {
			dir, ok1 := k.(lua.LString)
			target, ok2 := v.(lua.LString)
			if ok1 && ok2 {
				room.Exits[types.Direction(dir)] = string(target)
			}
		})
	}
	return room, nil
}

func compileObject(raw rawObject) (*types.Object, error) {
	tbl := raw.table
	obj := &types.Object{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		ExamineText: getString(tbl, "examine"),
		InitialText: getString(tbl, "initial"),
		Location:    getString(tbl, "location"),
		Capacity:    getInt(tbl, "capacity"),
		Size:        getInt(tbl, "size"),
		Value:       getInt(tbl, "value"),
	}
	if obj.Name == "" {
		return nil, fmt.Errorf("missing name")
	}

	var err error
	if flagsTbl := getTable(tbl, "flags"); flagsTbl != nil {
		flagsTbl.ForEach(func(_, v lua.LValue) {
			name, ok := v.(lua.LString)
			if !ok {
				return
			}
			bit, known := objectFlagNames[string(name)]
			if !known {
				err = fmt.Errorf("unknown object flag %q", string(name))
				return
			}
			obj.Flags |= bit
		})
	}
	if err != nil {
		return nil, err
	}
	return obj, nil
}

func compileActor(raw rawActor) (*types.Actor, error) {
	tbl := raw.table
	actor := &types.Actor{
		ID:          raw.id,
		Name:        getString(tbl, "name"),
		Description: getString(tbl, "description"),
		Location:    getString(tbl, "location"),
		Health:      getInt(tbl, "health"),
		Hostile:     getBool(tbl, "hostile", false),
		Active:      true,
	}
	if actor.Name == "" {
		return nil, fmt.Errorf("missing name")
	}

	if msgTbl := getTable(tbl, "messages"); msgTbl != nil {
		var err error
		msgTbl.ForEach(func(k, v lua.LValue) {
			key, ok1 := k.(lua.LString)
			text, ok2 := v.(lua.LString)
			if !ok1 || !ok2 {
				return
			}
			if !setMessage(&actor.Messages, string(key), string(text)) {
				err = fmt.Errorf("unknown message key %q", string(key))
			}
		})
		if err != nil {
			return nil, err
		}
	}
	return actor, nil
}

// setMessage assigns a content message key to its struct field, so a
// typo in content is a load error instead of a silently dropped line.
func setMessage(m *types.ActorMessages, key, text string) bool {
	switch key {
	case "first_encounter":
		m.FirstEncounter = text
	case "fight":
		m.Fight = text
	case "death":
		m.Death = text
	case "payment":
		m.Payment = text
	case "axe_thrown":
		m.AxeThrown = text
	case "steal":
		m.Steal = text
	case "stiletto":
		m.Stiletto = text
	case "engrossed":
		m.Engrossed = text
	case "block":
		m.Block = text
	case "ceremony":
		m.Ceremony = text
	case "exorcise":
		m.Exorcise = text
	case "garlic":
		m.Garlic = text
	case "flies":
		m.Flies = text
	case "hungry":
		m.Hungry = text
	case "flees":
		m.Flees = text
	case "odysseus":
		m.Odysseus = text
	default:
		return false
	}
	return true
}
