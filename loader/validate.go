package loader

import (
	"fmt"
	"strings"

	"github.com/telkar/gruecore/engine/state"
	"github.com/telkar/gruecore/types"
)

// ValidationError collects all referential errors found in one pass, so
// content authors see every problem at once.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

var validDirections = map[types.Direction]bool{
	types.North: true, types.South: true, types.East: true, types.West: true,
	types.Northeast: true, types.Northwest: true,
	types.Southeast: true, types.Southwest: true,
	types.Up: true, types.Down: true, types.In: true, types.Out: true,
}

// validate checks the compiled world for referential integrity: the
// start room exists, every exit lands on a defined room, and every
// object and actor location resolves.
func validate(w *state.World) error {
	ve := &ValidationError{}

	if w.Title == "" {
		ve.Errors = append(ve.Errors, "Game.title is required")
	}
	if w.Start == "" {
		ve.Errors = append(ve.Errors, "Game.start is required")
	} else if _, ok := w.Rooms[w.Start]; !ok {
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"start room %q not found in defined rooms", w.Start))
	}

	for roomID, room := range w.Rooms {
		for dir, target := range room.Exits {
			if !validDirections[dir] {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q has unknown exit direction %q", roomID, dir))
			}
			if _, ok := w.Rooms[target]; !ok {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"room %q exit %q points to undefined room %q", roomID, dir, target))
			}
		}
	}

	// An object location is a room, a container object, an actor (the
	// troll carries his axe), the player, or "" for off-stage.
	for _, id := range w.ObjectOrder {
		obj := w.Objects[id]
		if obj.Location == "" || obj.Location == types.LocPlayer {
			continue
		}
		if _, ok := w.Rooms[obj.Location]; ok {
			continue
		}
		if _, ok := w.Actors[obj.Location]; ok {
			continue
		}
		if parent, ok := w.Objects[obj.Location]; ok {
			if parent.ID == obj.ID {
				ve.Errors = append(ve.Errors, fmt.Sprintf(
					"object %q contains itself", id))
			}
			continue
		}
		ve.Errors = append(ve.Errors, fmt.Sprintf(
			"object %q location %q is not a room, container, or actor", id, obj.Location))
	}

	for _, id := range w.ActorOrder {
		actor := w.Actors[id]
		if actor.Location == "" {
			continue
		}
		if _, ok := w.Rooms[actor.Location]; !ok {
			ve.Errors = append(ve.Errors, fmt.Sprintf(
				"actor %q location %q is not a defined room", id, actor.Location))
		}
	}

	if len(ve.Errors) > 0 {
		return ve
	}
	return nil
}
