package entity

import (
	"fmt"

	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
	"github.com/milk9111/rockgarden/prefabs"
	"github.com/milk9111/rockgarden/store"
	"golang.org/x/image/colornames"
)

// NewRock creates the spinning dodecahedron. Pointer-down toggles spinning and
// hovering scales it up.
func NewRock(w *ecs.World, spec prefabs.RockSpec) (ecs.Entity, error) {
	rock := ecs.CreateEntity(w)

	if err := ecs.Add(w, rock, component.NameComponent.Kind(), &component.Name{Value: "rock"}); err != nil {
		return 0, fmt.Errorf("rock: add name: %w", err)
	}
	if err := ecs.Add(w, rock, component.TransformComponent.Kind(), component.NewTransform(spec.Position)); err != nil {
		return 0, fmt.Errorf("rock: add transform: %w", err)
	}
	if err := ecs.Add(w, rock, component.MeshComponent.Kind(), &component.Mesh{
		Geometry:   common.Dodecahedron(spec.Radius),
		CastShadow: spec.CastShadow,
		Layer:      1,
	}); err != nil {
		return 0, fmt.Errorf("rock: add mesh: %w", err)
	}
	if err := ecs.Add(w, rock, component.MaterialComponent.Kind(), &component.Material{
		Color: spec.Color.Or(colornames.Pink),
	}); err != nil {
		return 0, fmt.Errorf("rock: add material: %w", err)
	}

	spin := &component.Spin{
		Field:   store.NewField[common.Vec3](spec.Spin.Namespace, spec.Spin.Field),
		Step:    spec.Spin.Step,
		Enabled: spec.Spin.Enabled,
		Script:  spec.Spin.Script,
	}
	if err := ecs.Add(w, rock, component.SpinComponent.Kind(), spin); err != nil {
		return 0, fmt.Errorf("rock: add spin: %w", err)
	}

	hover := &component.Hover{Scale: spec.HoverScale}
	if err := ecs.Add(w, rock, component.HoverComponent.Kind(), hover); err != nil {
		return 0, fmt.Errorf("rock: add hover: %w", err)
	}

	if err := ecs.Add(w, rock, component.PointerTargetComponent.Kind(), &component.PointerTarget{
		OnOver: func() { hover.Active = true },
		OnOut:  func() { hover.Active = false },
		OnDown: func() { spin.Enabled = !spin.Enabled },
	}); err != nil {
		return 0, fmt.Errorf("rock: add pointer target: %w", err)
	}

	return rock, nil
}
