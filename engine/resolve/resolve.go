// Package resolve computes visibility and maps typed names to entity ids.
package resolve

import (
	"strings"

	"github.com/telkar/gruecore/engine/state"
	"github.com/telkar/gruecore/types"
)

// Visible reports whether the player can currently perceive the object:
// it is carried, it lies in the current room, or its immediate parent is
// a container that is open or transparent and itself sits in the current
// room or the inventory. The chain is a single hop: an object nested
// two containers deep is not visible.
func Visible(w *state.World, objID string) bool {
	obj := w.Object(objID)
	if obj == nil {
		return false
	}
	if obj.Location == types.LocPlayer {
		return true
	}
	if obj.Location == w.Here {
		return true
	}
	if container := w.Object(obj.Location); container != nil && container.Has(types.FlagContainer) {
		if container.Has(types.FlagOpen) || container.Has(types.FlagTransparent) {
			if container.Location == w.Here || container.Location == types.LocPlayer {
				return true
			}
		}
	}
	return false
}

// FindObject resolves typed text to an entity id. Priority is a fixed
// tie-break: actors present in the current room by id, then exact name
// match among visible objects, then substring-of-name, then
// substring-of-description. Returns "" when nothing matches.
func FindObject(w *state.World, name string) string {
	if name == "" {
		return ""
	}
	name = strings.TrimSpace(name)

	for _, id := range w.ActorOrder {
		if a := w.Actors[id]; a != nil && a.Location == w.Here && id == name {
			return id
		}
	}

	for _, id := range w.ObjectOrder {
		if w.Objects[id].Name == name && Visible(w, id) {
			return id
		}
	}

	for _, id := range w.ObjectOrder {
		if strings.Contains(w.Objects[id].Name, name) && Visible(w, id) {
			return id
		}
	}

	for _, id := range w.ObjectOrder {
		if strings.Contains(w.Objects[id].Description, name) && Visible(w, id) {
			return id
		}
	}

	return ""
}
