package system

import (
	"log"

	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
	"github.com/milk9111/rockgarden/store"
)

// SpinSystem advances each spinning node's rotation through the store once
// per frame and applies the result to the node's transform.
type SpinSystem struct {
	store   *store.Store
	scripts *spinScripts
}

func NewSpinSystem(st *store.Store) *SpinSystem {
	return &SpinSystem{store: st, scripts: newSpinScripts()}
}

func (s *SpinSystem) Update(w *ecs.World) {
	if s == nil || s.store == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.SpinComponent.Kind(), func(e ecs.Entity, spin *component.Spin) {
		if !spin.Initialized {
			InitRotation(s.store, spin.Field)
			spin.Initialized = true
			if rot, err := store.Get(s.store.State(), spin.Field); err == nil {
				if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
					t.Rotation = rot
				}
			}
		}
		if !spin.Enabled {
			return
		}

		rot, err := store.Advance(s.store, spin.Field, s.updateFunc(spin))
		if err != nil {
			log.Printf("spin: entity=%s advance %s: %v", e, spin.Field, err)
			return
		}

		if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
			t.Rotation = rot
		}
	})
}

// ReloadScript drops a cached script so the next frame recompiles it.
func (s *SpinSystem) ReloadScript(name string) {
	if s == nil {
		return
	}
	s.scripts.invalidate(name)
}

func (s *SpinSystem) updateFunc(spin *component.Spin) func(store.Snapshot) (common.Vec3, error) {
	field, step := spin.Field, spin.Step
	if spin.Script == "" {
		return store.Step(field, func(v common.Vec3) common.Vec3 {
			return v.AddScalar(step)
		})
	}

	script, err := s.scripts.get(spin.Script)
	if err != nil {
		return func(store.Snapshot) (common.Vec3, error) { return common.Vec3{}, err }
	}
	return func(snap store.Snapshot) (common.Vec3, error) {
		cur, err := store.Get(snap, field)
		if err != nil {
			return cur, err
		}
		return script.next(cur, step)
	}
}

// InitRotation zeroes field's namespace unless the field already holds a
// rotation, so rebuilding the scene keeps the current orientation. A field of
// the wrong type is reset.
func InitRotation(st *store.Store, field store.Field[common.Vec3]) {
	if st == nil {
		return
	}
	if _, err := store.Get(st.State(), field); err == nil {
		return
	}
	store.Init(st, field, common.Vec3{})
}

// ResetRotation puts field's namespace back to its initial state.
func ResetRotation(st *store.Store, field store.Field[common.Vec3]) {
	if st == nil {
		return
	}
	store.Init(st, field, common.Vec3{})
}
