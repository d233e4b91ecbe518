package engine

import "github.com/telkar/gruecore/types"

// maxCarry is the fixed inventory item limit. Object size is flavor;
// the cap is a count, matching the reference behavior.
const maxCarry = 7

func (g *Game) doLook(cmd *types.ParsedCommand) {
	if cmd.Object != "" {
		g.doExamine(cmd)
		return
	}
	g.describeRoom()
}

func (g *Game) doExamine(cmd *types.ParsedCommand) {
	w := g.World
	// Bare "look" and "examine" describe the room.
	if cmd.Object == "" {
		g.describeRoom()
		return
	}

	if actor := w.Actor(cmd.Object); actor != nil {
		if actor.Location == w.Here {
			g.say("%s", actor.Description)
		} else {
			g.say("You don't see that here.")
		}
		return
	}

	obj := w.Object(cmd.Object)
	g.say("%s", obj.ExamineText)

	if obj.Has(types.FlagContainer) && (obj.Has(types.FlagOpen) || obj.Has(types.FlagTransparent)) {
		contents := w.Contents(obj.ID)
		if len(contents) > 0 {
			g.say("The %s contains:", obj.Name)
			for _, id := range contents {
				g.say("  A %s", w.Object(id).Description)
			}
		} else if obj.Has(types.FlagOpen) {
			g.say("The %s is empty.", obj.Name)
		}
	}
}

func (g *Game) doTake(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to take?")
		return
	}
	if actor := w.Actor(cmd.Object); actor != nil {
		g.say("The %s is too heavy.", actor.Name)
		return
	}

	obj := w.Object(cmd.Object)
	if !obj.Has(types.FlagTakeable) {
		g.say("You can't take that.")
		return
	}
	if w.Carrying(obj.ID) {
		g.say("You already have that.")
		return
	}
	if container := w.Object(obj.Location); container != nil && container.Has(types.FlagContainer) {
		if !container.Has(types.FlagOpen) && !container.Has(types.FlagTransparent) {
			g.say("You can't see any %s here.", obj.Name)
			return
		}
	}
	if len(w.Inventory) >= maxCarry {
		g.say("Your load is too heavy.")
		return
	}

	w.MoveObject(obj.ID, types.LocPlayer)
	g.say("Taken.")

	// First acquisition of a treasure scores; later take/drop cycles don't.
	if obj.Has(types.FlagTreasure) && !w.Progress.TakenTreasures[obj.ID] {
		w.Progress.TakenTreasures[obj.ID] = true
		w.Score += obj.Value
	}
}

func (g *Game) doDrop(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to drop?")
		return
	}
	if !w.Carrying(cmd.Object) {
		g.say("You don't have that.")
		return
	}

	obj := w.Object(cmd.Object)
	w.MoveObject(obj.ID, w.Here)
	g.say("Dropped.")

	// Treasures dropped in the living room land in the open trophy case.
	if w.Here == "living_room" {
		trophyCase := w.Object("case")
		if trophyCase != nil && trophyCase.Has(types.FlagOpen) && obj.Has(types.FlagTreasure) {
			w.MoveObject(obj.ID, "case")
			g.say("The %s is now in the trophy case.", obj.Name)
			if !w.Progress.DepositedTreasures[obj.ID] {
				w.Progress.DepositedTreasures[obj.ID] = true
				w.Progress.TreasuresDeposited++
				w.Score += obj.Value
			}
		}
	}
}

func (g *Game) doInventory() {
	w := g.World
	if len(w.Inventory) == 0 {
		g.say("You are empty-handed.")
		return
	}
	g.say("You are carrying:")
	for _, id := range w.Inventory {
		obj := w.Object(id)
		g.say("  A %s", obj.Description)
		if obj.Has(types.FlagTurnedOn) {
			g.say("    (providing light)")
		}
	}
}

func (g *Game) doOpen(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to open?")
		return
	}
	obj := w.Object(cmd.Object)
	if obj == nil {
		g.say("You can't open that.")
		return
	}

	// Opening the window also opens the way into the kitchen.
	if obj.ID == "window" {
		g.say("With great effort, you open the window far enough to allow entry.")
		obj.Set(types.FlagOpen, true)
		w.SetExit("behind_house", types.West, "kitchen")
		w.SetExit("behind_house", types.In, "kitchen")
		return
	}

	// The egg takes a jeweler's skill, not fingers.
	if obj.ID == "jeweled_egg" {
		if obj.Has(types.FlagOpen) {
			g.say("It's already open.")
		} else {
			g.say("You have neither the tools nor the expertise.")
		}
		return
	}

	if !obj.Has(types.FlagContainer) && !obj.Has(types.FlagDoor) {
		g.say("You can't open that.")
		return
	}
	if obj.Has(types.FlagOpen) {
		g.say("It's already open.")
		return
	}
	if obj.Has(types.FlagLocked) {
		g.say("It's locked.")
		return
	}

	obj.SetOpen(true)
	g.say("Opened.")

	if obj.Has(types.FlagContainer) {
		contents := w.Contents(obj.ID)
		if len(contents) > 0 {
			g.say("Opening the %s reveals:", obj.Name)
			for _, id := range contents {
				g.say("  A %s", w.Object(id).Description)
			}
		}
	}

	switch obj.ID {
	case "trap_door":
		w.Progress.TrapDoorOpen = true
	case "coffin":
		w.Progress.CoffinOpen = true
	case "machine":
		// The machine transmutes coal left inside.
		if coal := w.Object("pile_of_coal"); coal != nil && coal.Location == "machine" {
			g.say("The machine comes to life and creates a beautiful diamond!")
			w.MoveObject("diamond", "machine")
			w.RemoveObject("pile_of_coal")
		}
	}
}

func (g *Game) doClose(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to close?")
		return
	}
	obj := w.Object(cmd.Object)
	if obj == nil || (!obj.Has(types.FlagContainer) && !obj.Has(types.FlagDoor)) {
		g.say("You can't close that.")
		return
	}
	if obj.Has(types.FlagClosed) {
		g.say("It's already closed.")
		return
	}
	obj.SetOpen(false)
	g.say("Closed.")
	if obj.ID == "trap_door" {
		w.Progress.TrapDoorOpen = false
	}
}

func (g *Game) doRead(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to read?")
		return
	}
	obj := w.Object(cmd.Object)
	if obj == nil || !obj.Has(types.FlagReadable) {
		g.say("There's nothing to read.")
		return
	}

	g.say("%s", obj.ExamineText)

	switch obj.ID {
	case "book":
		w.Progress.BookRead = true
	case "prayer":
		g.say("The prayer mentions the following words: \"bell\", \"book\", and \"candles\".")
	}
}

func (g *Game) doTurnOn(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to turn on?")
		return
	}
	obj := w.Object(cmd.Object)
	if obj == nil || !obj.Has(types.FlagTurnable) {
		g.say("You can't turn that on.")
		return
	}

	if obj.ID == "lamp" {
		if w.Progress.LampOn {
			g.say("It's already on.")
			return
		}
		if w.Progress.LampLife <= 0 {
			g.say("The lamp has run out of power.")
			return
		}
		w.Progress.LampOn = true
		obj.Set(types.FlagTurnedOn, true)
		obj.Set(types.FlagLight, true)
		obj.ExamineText = "It is a shiny brass lamp. It is lit."
		g.say("The lamp is now on.")
		if !w.HereRoom().Has(types.RoomLit) {
			g.describeRoom()
		}
	}
}

func (g *Game) doTurnOff(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to turn off?")
		return
	}
	obj := w.Object(cmd.Object)
	if obj == nil || !obj.Has(types.FlagTurnable) {
		g.say("You can't turn that off.")
		return
	}

	if obj.ID == "lamp" {
		if !w.Progress.LampOn {
			g.say("It's already off.")
			return
		}
		w.Progress.LampOn = false
		obj.Set(types.FlagTurnedOn, false)
		obj.Set(types.FlagLight, false)
		obj.ExamineText = "It is a shiny brass lamp. It is not currently lit."
		g.say("The lamp is now off.")
	}
}

func (g *Game) doEat(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to eat?")
		return
	}
	obj := w.Object(cmd.Object)
	if obj == nil || !obj.Has(types.FlagEdible) {
		name := cmd.Noun
		if obj != nil {
			name = obj.Name
		}
		g.say("I don't think the %s would agree with you.", name)
		return
	}
	if !w.Carrying(obj.ID) {
		g.say("You don't have that.")
		return
	}
	g.say("Thank you very much. It really hit the spot.")
	w.RemoveObject(obj.ID)
}

func (g *Game) doDrink(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to drink?")
		return
	}
	obj := w.Object(cmd.Object)
	if obj == nil || !obj.Has(types.FlagDrinkable) {
		g.say("You can't drink that!")
		return
	}
	g.say("Thank you very much. I was very thirsty.")
	if obj.ID == "water" {
		if bottle := w.Object("bottle"); bottle != nil {
			bottle.ExamineText = "The glass bottle is empty."
		}
		w.RemoveObject("water")
	}
}
