package entity

import (
	"fmt"

	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
	"github.com/milk9111/rockgarden/prefabs"
)

// Scene holds the entities BuildScene created.
type Scene struct {
	Rock    ecs.Entity
	Ground  ecs.Entity
	Camera  ecs.Entity
	Pointer ecs.Entity
	Lights  []ecs.Entity
}

// BuildScene populates w from spec.
func BuildScene(w *ecs.World, spec *prefabs.SceneSpec) (*Scene, error) {
	if w == nil || spec == nil {
		return nil, fmt.Errorf("scene: nil world or spec")
	}

	var (
		scene Scene
		err   error
	)

	scene.Pointer = ecs.CreateEntity(w)
	if err := ecs.Add(w, scene.Pointer, component.PointerComponent.Kind(), &component.Pointer{}); err != nil {
		return nil, fmt.Errorf("scene: add pointer: %w", err)
	}
	if err := ecs.Add(w, scene.Pointer, component.CursorComponent.Kind(), &component.Cursor{}); err != nil {
		return nil, fmt.Errorf("scene: add cursor: %w", err)
	}

	for i, l := range spec.Lights {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.LightComponent.Kind(), &component.Light{
			Kind:       component.LightKind(l.Kind),
			Intensity:  l.Intensity,
			Position:   l.Position,
			Penumbra:   l.Penumbra,
			CastShadow: l.CastShadow,
		}); err != nil {
			return nil, fmt.Errorf("scene: add light %d: %w", i, err)
		}
		scene.Lights = append(scene.Lights, e)
	}

	if scene.Rock, err = NewRock(w, spec.Rock); err != nil {
		return nil, err
	}
	if scene.Ground, err = NewGround(w, spec.Ground); err != nil {
		return nil, err
	}
	if scene.Camera, err = NewCamera(w, spec.Camera, spec.Controls); err != nil {
		return nil, err
	}

	return &scene, nil
}
