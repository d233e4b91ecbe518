package engine

import "github.com/telkar/gruecore/types"

// randomEvents runs the per-turn world hazards before the player's
// command executes: the thief's comings and goings, and the bat.
func (g *Game) randomEvents() {
	w := g.World
	room := w.HereRoom()
	if room == nil {
		return
	}

	thief := w.Actor("thief")
	if thief != nil && thief.Active {
		if !w.Progress.ThiefHere && !room.Has(types.RoomLit) && !room.Has(types.RoomNoThief) && g.RNG.Chance(5) {
			w.Progress.ThiefHere = true
			thief.Location = w.Here
			g.say("Someone carrying a large bag just wandered through the room.")
			if g.RNG.Chance(20) {
				g.stealTreasure()
			}
		} else if w.Progress.ThiefHere && g.RNG.Chance(30) {
			w.Progress.ThiefHere = false
			thief.Location = ""
			g.say("The thief vanishes into the gloom.")
		}
	}

	bat := w.Actor("bat")
	if bat != nil && bat.Active && bat.Location == w.Here && w.Carrying("garlic") {
		g.say("%s", bat.Messages.Garlic)
		bat.Active = false
		bat.Location = ""
	}
}

// stealTreasure moves a random carried treasure into the thief's bag.
func (g *Game) stealTreasure() {
	w := g.World
	var treasures []string
	for _, id := range w.Inventory {
		if obj := w.Object(id); obj != nil && obj.Has(types.FlagTreasure) {
			treasures = append(treasures, id)
		}
	}
	if len(treasures) == 0 {
		return
	}
	stolen := treasures[g.RNG.Pick(len(treasures))]
	w.MoveObject(stolen, "thief")
	g.say("The thief deftly relieves you of the %s.", w.Object(stolen).Name)
}

// lampTick burns one unit of fuel per turn while the lamp is on, with a
// single warning at the dim threshold.
func (g *Game) lampTick() {
	w := g.World
	if !w.Progress.LampOn {
		return
	}
	w.Progress.LampLife--
	switch {
	case w.Progress.LampLife == 30:
		g.say("Your lamp is getting dim.")
	case w.Progress.LampLife <= 0:
		g.say("Your lamp has run out of power.")
		w.Progress.LampOn = false
		if lamp := w.Object("lamp"); lamp != nil {
			lamp.Set(types.FlagTurnedOn, false)
			lamp.ExamineText = "The lamp is turned off."
		}
	}
}

// darknessCheck runs every turn spent in the dark, not just on entry.
func (g *Game) darknessCheck() {
	if g.canSee() {
		return
	}
	g.say("It is pitch black. You are likely to be eaten by a grue.")
	if g.RNG.Chance(25) {
		g.say("Oh, no! You have walked into the slavering fangs of a lurking grue!")
		g.death("You have died.")
	}
}

// death drops everything where the player fell and sends them back to
// the start. The game continues; only the quit prompt ends it.
func (g *Game) death(msg string) {
	w := g.World
	g.say("%s", msg)
	w.Deaths++
	g.say("")
	g.say("    ****  You have died  ****")
	g.say("")

	for len(w.Inventory) > 0 {
		w.MoveObject(w.Inventory[0], w.Here)
	}

	w.Here = w.Start
	g.say("As you take your last breath, you feel relieved of your burdens.")
	g.say("You awake, feeling like you've been through this before...")
	g.say("")
	g.describeRoom()
}
