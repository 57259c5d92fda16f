package entity

import (
	"fmt"

	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
	"github.com/milk9111/rockgarden/prefabs"
)

// NewCamera creates the perspective camera with orbit controls attached.
func NewCamera(w *ecs.World, spec prefabs.CameraSpec, controls prefabs.ControlsSpec) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), component.NewTransform(spec.Position)); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Target: spec.Target,
		FOV:    spec.FOV,
		Near:   spec.Near,
		Width:  common.BaseWidth,
		Height: common.BaseHeight,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	autoSpeed := 2.0
	if err := ecs.Add(w, camera, component.OrbitControlsComponent.Kind(), &component.OrbitControls{
		AutoRotate:      controls.AutoRotate,
		AutoRotateSpeed: autoSpeed,
		EnablePan:       controls.EnablePan,
		EnableZoom:      controls.EnableZoom,
		EnableDamping:   controls.EnableDamping,
		DampingFactor:   controls.DampingFactor,
		RotateSpeed:     controls.RotateSpeed,
		ZoomSpeed:       controls.ZoomSpeed,
		MinDistance:     controls.MinDistance,
		MaxDistance:     controls.MaxDistance,
	}); err != nil {
		return 0, fmt.Errorf("camera: add orbit controls: %w", err)
	}

	return camera, nil
}
