package engine

import "github.com/telkar/gruecore/types"

// enterRoom moves the player and describes the destination. Rooms with
// the lethal-on-entry property kill immediately.
func (g *Game) enterRoom(roomID string) {
	g.World.Here = roomID
	if room := g.World.HereRoom(); room != nil && room.Has(types.RoomDeath) {
		g.death("You have died.")
		return
	}
	g.describeRoom()
}

// doGo applies the movement special cases (state-dependent passages) in
// a fixed order, then falls back to the room's exit map. A missing
// direction and a self-referencing "fake" exit print the same message.
func (g *Game) doGo(dir types.Direction) {
	w := g.World

	// Trap door under the rug.
	if w.Here == "living_room" && dir == types.Down {
		trapDoor := w.Object("trap_door")
		if trapDoor == nil || trapDoor.Location != "living_room" {
			g.say("You can't go that way.")
			return
		}
		if trapDoor.Has(types.FlagOpen) {
			g.enterRoom("cellar")
		} else {
			g.say("The trap door is closed.")
		}
		return
	}

	// The grating opens only once unlocked, from either side.
	if w.Here == "grating_room" && dir == types.Up {
		if w.Progress.GratingUnlocked {
			g.enterRoom("clearing")
		} else {
			g.say("The grating is locked.")
		}
		return
	}
	if w.Here == "clearing" && dir == types.Down {
		grating := w.Object("grating")
		if grating == nil || grating.Location != "clearing" {
			g.say("You can't go that way.")
			return
		}
		if w.Progress.GratingUnlocked {
			g.enterRoom("grating_room")
		} else {
			g.say("The grating is locked.")
		}
		return
	}

	// The kitchen window must be opened first.
	if w.Here == "behind_house" && (dir == types.West || dir == types.In) {
		if w.Object("window").Has(types.FlagOpen) {
			g.enterRoom("kitchen")
		} else {
			g.say("The window is closed.")
		}
		return
	}

	// The gothic door hides the strange passage until the cyclops flees.
	if w.Here == "living_room" && dir == types.West {
		if w.Progress.CyclopsFled {
			g.enterRoom("strange_passage")
		} else {
			g.say("The door is nailed shut.")
		}
		return
	}

	// The cyclops blocks the staircase while present.
	if w.Here == "cyclops_room" && dir == types.Up {
		if cyclops := w.Actor("cyclops"); cyclops != nil &&
			cyclops.Location == "cyclops_room" && cyclops.Active {
			g.say("The cyclops blocks the staircase.")
			return
		}
	}

	// The troll blocks every passage until defeated or paid.
	if w.Here == "troll_room" {
		if troll := w.Actor("troll"); troll != nil &&
			troll.Location == "troll_room" && troll.Active && !w.Progress.TrollPaid {
			g.say("The troll blocks your way!")
			return
		}
	}

	// Evil spirits bar the gate to the land of the dead.
	if w.Here == "entrance_to_hades" && dir == types.South {
		if !w.Progress.SpiritsReleased {
			g.say("%s", w.Actor("spirits").Messages.Block)
			return
		}
	}

	// The reservoir is only passable once drained.
	if w.Here == "reservoir" && !w.Progress.DamOpen {
		g.say("You can't swim in the deep water.")
		return
	}

	// The rainbow must be solid to walk on.
	if w.Here == "end_of_rainbow" && dir == types.East {
		if !w.Progress.RainbowSolid {
			g.say("Can you walk on water vapor?")
			return
		}
	}

	// The coal chute is a one-way slide.
	if w.Here == "slide_room" && dir == types.Down {
		g.say("Wheeeee!")
		g.enterRoom("cellar")
		return
	}

	room := w.HereRoom()
	target, ok := room.Exits[dir]
	if !ok || target == w.Here {
		g.say("You can't go that way.")
		return
	}
	g.enterRoom(target)
}

func (g *Game) doClimb() {
	w := g.World
	if w.Here == "dome_room" && w.Object("rope") != nil && w.Object("rope").Location == "dome_room" {
		g.say("You climb down the rope.")
		g.enterRoom("torch_room")
		return
	}
	room := w.HereRoom()
	if _, ok := room.Exits[types.Up]; ok {
		g.doGo(types.Up)
		return
	}
	if _, ok := room.Exits[types.Down]; ok {
		g.doGo(types.Down)
		return
	}
	g.say("There's nothing to climb here.")
}

func (g *Game) doJump() {
	if g.World.Here == "aragain_falls" {
		g.say("You jump off the falls...")
		g.death("You didn't make it.")
		return
	}
	g.say("Wheee!")
}
