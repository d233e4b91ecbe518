package engine

import "github.com/telkar/gruecore/types"

func (g *Game) doMove(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to move?")
		return
	}

	switch cmd.Object {
	case "rug":
		trapDoor := w.Object("trap_door")
		if trapDoor != nil && trapDoor.Location == "" {
			g.say("With a great effort, the rug is moved to one side of the room, revealing the dusty cover of a closed trap door.")
			w.MoveObject("trap_door", "living_room")
		} else {
			g.say("Having moved the rug previously, you find it impossible to move it again.")
		}
	case "leaves":
		grating := w.Object("grating")
		if grating != nil && grating.Location == "" {
			g.say("In disturbing the pile of leaves, a grating is revealed.")
			w.MoveObject("grating", "clearing")
			w.SetExit("clearing", types.Down, "grating_room")
		} else {
			g.say("You've already done that.")
		}
	default:
		g.say("You can't move that.")
	}
}

func (g *Game) doPush(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to push?")
		return
	}

	if w.Here == "dam" && (cmd.Object == "green_button" || cmd.Object == "red_button") {
		switch cmd.Object {
		case "green_button":
			if w.Progress.DamOpen {
				g.say("The gates are already open.")
			} else {
				g.say("The sluice gates open and water pours through the dam.")
				w.Progress.DamOpen = true
				g.drainReservoir()
			}
		case "red_button":
			if !w.Progress.DamOpen {
				g.say("The gates are already closed.")
			} else {
				g.say("The sluice gates close and water starts to accumulate.")
				w.Progress.DamOpen = false
				g.fillReservoir()
			}
		}
		return
	}

	g.doMove(cmd)
}

// drainReservoir rewires the lake into a crossable dry bed. Each edit is
// idempotent; pressing the button twice is rejected before getting here.
func (g *Game) drainReservoir() {
	w := g.World

	if reservoir := w.Room("reservoir"); reservoir != nil {
		reservoir.Description = "You are in a long room, once a large reservoir. There is a north-south path across the room."
		reservoir.Set(types.RoomOnWater, false)
		w.SetExit("reservoir", types.North, "reservoir_north")
		w.SetExit("reservoir", types.South, "reservoir_south")
	}
	if south := w.Room("reservoir_south"); south != nil {
		south.Description = "You are in a long room on the south shore of a dried-up reservoir."
	}
	if north := w.Room("reservoir_north"); north != nil {
		north.Description = "You are in a large cavernous room, north of a dried-up reservoir."
	}

	// The receding water uncovers the trunk.
	if trunk := w.Object("trunk"); trunk != nil && trunk.Location == "" {
		w.MoveObject("trunk", "reservoir_north")
	}

	// The dry streambed below the gates is only passable while they stand open.
	w.SetExit("stream", types.West, "sluice_gate")

	w.Progress.LoudRoomLevel = 8
}

func (g *Game) fillReservoir() {
	w := g.World

	if reservoir := w.Room("reservoir"); reservoir != nil {
		reservoir.Description = "You are on the lake. Beaches can be seen north and south. Upstream a small stream enters the lake through a narrow cleft in the rocks. The dam can be seen downstream."
		reservoir.Set(types.RoomOnWater, true)
	}
	if south := w.Room("reservoir_south"); south != nil {
		south.Description = "You are in a long room on the south shore of a large lake, far too deep and wide for crossing."
	}
	if north := w.Room("reservoir_north"); north != nil {
		north.Description = "You are in a large cavernous room, north of a large lake."
	}

	w.ClearExit("stream", types.West)

	w.Progress.LoudRoomLevel = 4
}

func (g *Game) doGive(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to give?")
		return
	}

	troll := w.Actor("troll")
	if w.Here != "troll_room" || troll == nil || !troll.Active {
		g.say("There's no one here to give it to.")
		return
	}
	if !w.Carrying(cmd.Object) {
		g.say("You don't have that.")
		return
	}
	obj := w.Object(cmd.Object)
	if !obj.Has(types.FlagTreasure) {
		g.say("The troll is not interested in your offering.")
		return
	}

	g.say("The troll catches your treasure and scurries away out of sight.")
	w.RemoveObject(obj.ID)
	troll.Active = false
	troll.Location = ""
	w.Progress.TrollPaid = true
}

func (g *Game) doUnlock(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to unlock?")
		return
	}

	grating := w.Object("grating")
	if cmd.Object == "grating" && grating != nil && grating.Location != "" {
		if !w.Carrying("skeleton_key") {
			g.say("You don't have the right key.")
			return
		}
		g.say("The grating is unlocked.")
		w.Progress.GratingUnlocked = true
		grating.Set(types.FlagLocked, false)
		w.SetExit("grating_room", types.Up, "clearing")
		return
	}
	g.say("You can't unlock that.")
}

func (g *Game) doLock(cmd *types.ParsedCommand) {
	if cmd.Object == "" {
		g.say("What do you want to lock?")
		return
	}
	g.say("You can't lock that.")
}

// doTie anchors the rope at exactly two fixed locations, turning an
// absent exit into a usable one. doUntie is the exact inverse.
func (g *Game) doTie(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to tie?")
		return
	}
	if cmd.Object != "rope" || !w.Carrying("rope") {
		g.say("You can't tie that.")
		return
	}

	switch w.Here {
	case "dome_room":
		g.say("The rope is tied to the wooden railing.")
		w.MoveObject("rope", "dome_room")
		w.SetExit("dome_room", types.Down, "torch_room")
	case "shaft_room":
		g.say("The rope is tied to the iron framework.")
		w.MoveObject("rope", "shaft_room")
		w.SetExit("shaft_room", types.Down, "drafty_room")
	default:
		g.say("You can't tie the rope to anything here.")
	}
}

func (g *Game) doUntie(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to untie?")
		return
	}
	if cmd.Object != "rope" {
		g.say("You can't untie that.")
		return
	}

	rope := w.Object("rope")
	if rope.Location != "dome_room" && rope.Location != "shaft_room" {
		g.say("The rope is not tied to anything.")
		return
	}
	g.say("The rope is untied.")
	w.MoveObject("rope", types.LocPlayer)
	switch w.Here {
	case "dome_room":
		w.ClearExit("dome_room", types.Down)
	case "shaft_room":
		w.ClearExit("shaft_room", types.Down)
	}
}

// hasFlame reports whether the player has something to light things with.
func (g *Game) hasFlame() bool {
	w := g.World
	if torch := w.Object("torch"); torch != nil &&
		torch.Location == types.LocPlayer && torch.Has(types.FlagTurnedOn) {
		return true
	}
	if candles := w.Object("candles"); candles != nil &&
		candles.Location == types.LocPlayer && w.Progress.CandlesLit {
		return true
	}
	return w.Carrying("matchbook")
}

func (g *Game) doBurn(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to burn?")
		return
	}
	obj := w.Object(cmd.Object)
	if obj == nil || !obj.Has(types.FlagFlammable) {
		g.say("You can't burn that.")
		return
	}
	if !g.hasFlame() {
		g.say("You have no flame source.")
		return
	}

	if obj.ID == "candles" {
		g.say("The candles are lit.")
		w.Progress.CandlesLit = true
		obj.Set(types.FlagLight, true)
		obj.Set(types.FlagTurnedOn, true)
		return
	}
	g.say("The %s burns to ashes.", obj.Name)
	w.RemoveObject(obj.ID)
}

func (g *Game) doExtinguish(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to extinguish?")
		return
	}
	switch {
	case cmd.Object == "candles" && w.Progress.CandlesLit:
		g.say("The candles are extinguished.")
		w.Progress.CandlesLit = false
		candles := w.Object("candles")
		candles.Set(types.FlagLight, false)
		candles.Set(types.FlagTurnedOn, false)
	case cmd.Object == "torch":
		g.say("You can't extinguish that.")
	default:
		g.doTurnOff(cmd)
	}
}

func (g *Game) doRing(cmd *types.ParsedCommand) {
	if cmd.Object == "" {
		g.say("What do you want to ring?")
		return
	}
	if cmd.Object != "bell" || !g.World.Carrying("bell") {
		g.say("You can't ring that.")
		return
	}
	g.say("Ding, dong.")
	g.World.Progress.BellRung = true
	g.checkExorcism()
}

// checkExorcism fires once the bell has rung, the book has been read,
// and the candles burn, and only at the gate itself.
func (g *Game) checkExorcism() {
	w := g.World
	if w.Here != "entrance_to_hades" {
		return
	}
	if !w.Progress.BellRung || !w.Progress.BookRead || !w.Progress.CandlesLit {
		return
	}
	g.say("Suddenly, the bell, book, and candles begin to glow!")
	g.say("%s", w.Actor("spirits").Messages.Exorcise)
	w.Progress.SpiritsReleased = true
	spirits := w.Actor("spirits")
	spirits.Active = false
	spirits.Location = ""
	w.SetExit("entrance_to_hades", types.South, "land_of_the_dead")
}

func (g *Game) doWind(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to wind?")
		return
	}
	if cmd.Object != "golden_canary" || !w.Carrying("golden_canary") {
		g.say("You can't wind that.")
		return
	}

	g.say("The canary chirps, slightly off-key, an aria from a forgotten opera. From out of the greenery flies a lovely songbird. It perches on a limb just over your head and opens its beak to sing. As it does so a beautiful brass bauble drops from its mouth, bounces off the top of your head, and lands glimmering in the grass. As the canary winds down, the songbird flies away.")
	w.AddObject(&types.Object{
		ID:          "bauble",
		Name:        "bauble",
		Description: "beautiful brass bauble",
		ExamineText: "It's a beautiful brass bauble.",
		Flags:       types.FlagTakeable | types.FlagTreasure,
		Location:    w.Here,
		Size:        1,
		Value:       1,
	})
}

// doDig is gated on the shovel and the one diggable beach, and is
// idempotent once the scarab has surfaced.
func (g *Game) doDig(cmd *types.ParsedCommand) {
	w := g.World
	if !w.Carrying("shovel") {
		g.say("You don't have anything to dig with.")
		return
	}
	if w.Here != "white_cliffs_beach_south" {
		g.say("The ground is too hard to dig here.")
		return
	}
	if scarab := w.Object("jeweled_scarab"); scarab != nil && scarab.Location == "" {
		g.say("You dig in the sand and uncover a beautiful scarab!")
		w.MoveObject("jeweled_scarab", "white_cliffs_beach_south")
		return
	}
	g.say("You find nothing else.")
}

func (g *Game) doFill(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to fill?")
		return
	}
	if cmd.Object != "bottle" || !w.Carrying("bottle") {
		g.say("You can't fill that.")
		return
	}

	room := w.HereRoom()
	atWater := w.Here == "stream" || w.Here == "reservoir" || room.Has(types.RoomOnWater)
	if !atWater {
		g.say("There's no water here.")
		return
	}
	if water := w.Object("water"); water != nil && water.Location == "bottle" {
		g.say("The bottle is already full.")
		return
	}

	g.say("The bottle is now full of water.")
	w.AddObject(&types.Object{
		ID:          "water",
		Name:        "water",
		Description: "quantity of water",
		Flags:       types.FlagDrinkable,
		Location:    "bottle",
		Size:        1,
	})
	w.Object("bottle").ExamineText = "The glass bottle contains:\n  A quantity of water"
}

func (g *Game) doPour(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to pour?")
		return
	}
	if cmd.Object != "water" {
		g.say("You can't pour that.")
		return
	}
	water := w.Object("water")
	if water == nil || water.Location != "bottle" || !w.Carrying("bottle") {
		g.say("You don't have any water.")
		return
	}
	g.say("The water splashes on the ground and evaporates.")
	w.RemoveObject("water")
	w.Object("bottle").ExamineText = "The glass bottle is empty."
}

func (g *Game) doPray() {
	if g.World.Here == "altar" {
		g.say("The ground shakes and a passage opens beneath you!")
		g.World.SetExit("altar", types.Down, "cave_1")
		return
	}
	g.say("Nothing happens.")
}

func (g *Game) doWave(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to wave?")
		return
	}
	obj := w.Object(cmd.Object)
	if obj == nil {
		g.say("You don't see that here.")
		return
	}
	if obj.ID != "sceptre" || !w.Carrying("sceptre") {
		g.say("You wave the %s.", obj.Name)
		return
	}

	if w.Here != "end_of_rainbow" && w.Here != "aragain_falls" {
		g.say("A dazzling display of color briefly emanates from the sceptre.")
		return
	}

	// Waving the sceptre at either end toggles the bridge.
	if !w.Progress.RainbowSolid {
		g.say("Suddenly, the rainbow appears to become solid and you can walk on it!")
		w.Progress.RainbowSolid = true
		w.SetExit("end_of_rainbow", types.East, "on_the_rainbow")
		w.SetExit("on_the_rainbow", types.West, "end_of_rainbow")
		w.SetExit("on_the_rainbow", types.East, "aragain_falls")
		w.SetExit("aragain_falls", types.West, "on_the_rainbow")
	} else {
		g.say("The rainbow seems to waver and become less solid.")
		w.Progress.RainbowSolid = false
		w.ClearExit("end_of_rainbow", types.East)
		w.ClearExit("aragain_falls", types.West)
	}
}

func (g *Game) doRaise(cmd *types.ParsedCommand) {
	if cmd.Object == "" {
		g.say("What do you want to raise?")
		return
	}
	g.say("You can't raise that.")
}

func (g *Game) doLower(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to lower?")
		return
	}
	if cmd.Object == "basket" && w.Here == "shaft_room" {
		if !w.Carrying("basket") {
			g.say("You're not carrying the basket.")
			return
		}
		g.say("The basket is lowered on the chain.")
		w.MoveObject("basket", "drafty_room")
		return
	}
	g.say("You can't lower that.")
}

func (g *Game) doBreak(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to break?")
		return
	}

	switch cmd.Object {
	case "mirror_south", "mirror_north":
		if w.Progress.MirrorBroken {
			g.say("The mirror is already broken.")
			return
		}
		g.say("You have broken the mirror. The looking glass is now gone.")
		w.Progress.MirrorBroken = true
		w.SetExit("mirror_room_south", types.North, "mirror_room_north")
		w.SetExit("mirror_room_north", types.South, "mirror_room_south")
		w.RemoveObject("mirror_south")
		w.RemoveObject("mirror_north")
	case "jeweled_egg":
		g.say("The egg is now open, but the clumsiness of your attempt has seriously compromised its esthetic appeal.")
		egg := w.Object("jeweled_egg")
		egg.SetOpen(true)
		egg.Value = 2
	default:
		g.say("You can't break that.")
	}
}
