package system

import (
	"testing"

	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
)

func addCamera(t *testing.T, w *ecs.World, pos common.Vec3, ctl *component.OrbitControls) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(pos)); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{
		FOV:    75,
		Near:   0.1,
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
	}); err != nil {
		t.Fatalf("add camera: %v", err)
	}
	if ctl != nil {
		if err := ecs.Add(w, e, component.OrbitControlsComponent.Kind(), ctl); err != nil {
			t.Fatalf("add controls: %v", err)
		}
	}
	return e
}

func addPointer(t *testing.T, w *ecs.World) *component.Pointer {
	t.Helper()
	e := ecs.CreateEntity(w)
	p := &component.Pointer{InWindow: true}
	if err := ecs.Add(w, e, component.PointerComponent.Kind(), p); err != nil {
		t.Fatalf("add pointer: %v", err)
	}
	if err := ecs.Add(w, e, component.CursorComponent.Kind(), &component.Cursor{}); err != nil {
		t.Fatalf("add cursor: %v", err)
	}
	return p
}

func addRock(t *testing.T, w *ecs.World, pos common.Vec3, target *component.PointerTarget) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), component.NewTransform(pos)); err != nil {
		t.Fatalf("add transform: %v", err)
	}
	if err := ecs.Add(w, e, component.MeshComponent.Kind(), &component.Mesh{Geometry: common.Dodecahedron(1), CastShadow: true, Layer: 1}); err != nil {
		t.Fatalf("add mesh: %v", err)
	}
	if target != nil {
		if err := ecs.Add(w, e, component.PointerTargetComponent.Kind(), target); err != nil {
			t.Fatalf("add target: %v", err)
		}
	}
	return e
}
