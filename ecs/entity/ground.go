package entity

import (
	"fmt"

	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
	"github.com/milk9111/rockgarden/prefabs"
	"golang.org/x/image/colornames"
)

func NewGround(w *ecs.World, spec prefabs.GroundSpec) (ecs.Entity, error) {
	ground := ecs.CreateEntity(w)

	if err := ecs.Add(w, ground, component.NameComponent.Kind(), &component.Name{Value: "ground"}); err != nil {
		return 0, fmt.Errorf("ground: add name: %w", err)
	}

	t := component.NewTransform(spec.Position)
	t.Rotation = spec.Rotation
	if err := ecs.Add(w, ground, component.TransformComponent.Kind(), t); err != nil {
		return 0, fmt.Errorf("ground: add transform: %w", err)
	}
	if err := ecs.Add(w, ground, component.MeshComponent.Kind(), &component.Mesh{
		Geometry:      common.Plane(spec.Size, spec.Size, spec.Segments, spec.Segments),
		ReceiveShadow: spec.ReceiveShadow,
	}); err != nil {
		return 0, fmt.Errorf("ground: add mesh: %w", err)
	}
	if err := ecs.Add(w, ground, component.MaterialComponent.Kind(), &component.Material{
		Color: spec.Color.Or(colornames.Brown),
	}); err != nil {
		return 0, fmt.Errorf("ground: add material: %w", err)
	}

	return ground, nil
}
