package engine

import "github.com/telkar/gruecore/types"

// doAttack handles melee against the handful of hand-scripted foes.
// Each fight is a fixed exchange rather than a hit-point grind.
func (g *Game) doAttack(cmd *types.ParsedCommand) {
	w := g.World
	if cmd.Object == "" {
		g.say("What do you want to attack?")
		return
	}

	actor := w.Actor(cmd.Object)
	if actor == nil {
		g.say("I don't know what you're trying to attack.")
		return
	}
	if !actor.Active || actor.Location != w.Here {
		g.say("You don't see that here.")
		return
	}

	switch actor.ID {
	case "troll":
		if w.Carrying("sword") {
			g.say("The troll swings his axe, but you parry with your sword.")
			g.say("Your sword crashes down, and the troll crumples into a heap.")
			g.say("%s", actor.Messages.Death)
			actor.Active = false
			actor.Location = ""
			// The troll drops his axe where he fell.
			w.MoveObject("axe", "troll_room")
		} else {
			g.say("Trying to attack the troll with your bare hands is suicidal.")
			g.death("The troll hits you with a crushing blow.")
		}
	case "thief":
		g.say("The thief is a formidable opponent. He dodges your attack.")
		if g.RNG.OneIn(3) {
			g.say("%s", actor.Messages.Stiletto)
			g.death("The thief stabs you with his stiletto.")
		}
	case "cyclops":
		g.say("The cyclops laughs at your puny attack!")
		g.say("The cyclops hits you with a crushing blow.")
		g.death("The cyclops has knocked you senseless.")
	case "spirits":
		g.say("How can you attack spirits?")
	case "bat":
		g.say("The bat flies away from your attack.")
		actor.Location = ""
	default:
		g.say("I don't know what you're trying to attack.")
	}
}
