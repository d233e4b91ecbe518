package loader

import (
	lua "github.com/yuin/gopher-lua"
)

// registerAPI registers the Lua constructors as globals. Room, Object,
// and Actor are curried: Room("id") returns a function that takes the
// definition table, giving content files the Room "id" { ... } shape.
func registerAPI(L *lua.LState, coll *collector) {
	// Game { title = "...", ... }
	L.SetGlobal("Game", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		coll.game = tbl
		return 0
	}))

	L.SetGlobal("Room", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.rooms = append(coll.rooms, rawRoom{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	L.SetGlobal("Object", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.objects = append(coll.objects, rawObject{id: id, table: tbl})
			return 0
		}))
		return 1
	}))

	L.SetGlobal("Actor", L.NewFunction(func(L *lua.LState) int {
		id := L.CheckString(1)
		L.Push(L.NewFunction(func(L *lua.LState) int {
			tbl := L.CheckTable(1)
			coll.actors = append(coll.actors, rawActor{id: id, table: tbl})
			return 0
		}))
		return 1
	}))
}
