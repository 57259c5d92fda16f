package ecs

import "github.com/milk9111/rockgarden/ecs/component"

// Query returns live entities carrying every listed kind.
func Query(w *World, kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}

	sets := make([]*SparseSet, len(kinds))
	for i, k := range kinds {
		sets[i] = w.store(k.ID(), false)
		if sets[i].Len() == 0 {
			return nil
		}
	}

	// iterate the smallest set
	base := 0
	for i, s := range sets {
		if s.Len() < sets[base].Len() {
			base = i
		}
	}

	var out []Entity
	for _, e := range sets[base].Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		if hasAll(sets, base, e) {
			out = append(out, e)
		}
	}
	return out
}

func hasAll(sets []*SparseSet, skip int, e Entity) bool {
	for i, s := range sets {
		if i != skip && !s.Has(e) {
			return false
		}
	}
	return true
}
