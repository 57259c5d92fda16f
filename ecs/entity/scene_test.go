package entity

import (
	"testing"

	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
	"github.com/milk9111/rockgarden/prefabs"
)

func buildDefault(t *testing.T) (*ecs.World, *Scene) {
	t.Helper()
	spec, err := prefabs.LoadSceneSpec("")
	if err != nil {
		t.Fatalf("load scene: %v", err)
	}
	w := ecs.NewWorld()
	scene, err := BuildScene(w, spec)
	if err != nil {
		t.Fatalf("build scene: %v", err)
	}
	return w, scene
}

func TestBuildScene(t *testing.T) {
	w, scene := buildDefault(t)

	if len(scene.Lights) != 3 {
		t.Fatalf("expected 3 lights, got %d", len(scene.Lights))
	}

	cases := []struct {
		name   string
		entity ecs.Entity
		check  func(t *testing.T, e ecs.Entity)
	}{
		{"rock", scene.Rock, func(t *testing.T, e ecs.Entity) {
			tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
			if !ok || tr.Position != common.V3(0, 0.5, 0) {
				t.Fatalf("unexpected rock transform %+v", tr)
			}
			mesh, _ := ecs.Get(w, e, component.MeshComponent.Kind())
			if mesh == nil || len(mesh.Geometry.Faces) != 12 || !mesh.CastShadow {
				t.Fatalf("expected a shadow-casting dodecahedron")
			}
			spin, _ := ecs.Get(w, e, component.SpinComponent.Kind())
			if spin == nil || !spin.Enabled || spin.Field.String() != "rock.rotation" || spin.Step != 0.01 {
				t.Fatalf("unexpected spin %+v", spin)
			}
			if !ecs.Has(w, e, component.PointerTargetComponent.Kind()) {
				t.Fatalf("rock should receive pointer events")
			}
		}},
		{"ground", scene.Ground, func(t *testing.T, e ecs.Entity) {
			mesh, _ := ecs.Get(w, e, component.MeshComponent.Kind())
			if mesh == nil || !mesh.ReceiveShadow || len(mesh.Geometry.Faces) != 400 {
				t.Fatalf("unexpected ground mesh")
			}
		}},
		{"camera", scene.Camera, func(t *testing.T, e ecs.Entity) {
			cam, _ := ecs.Get(w, e, component.CameraComponent.Kind())
			if cam == nil || cam.FOV != 75 {
				t.Fatalf("unexpected camera %+v", cam)
			}
			ctl, _ := ecs.Get(w, e, component.OrbitControlsComponent.Kind())
			if ctl == nil || ctl.DampingFactor != 0.5 || ctl.MinDistance != 0.5 || ctl.MaxDistance != 9 || ctl.EnablePan {
				t.Fatalf("unexpected controls %+v", ctl)
			}
		}},
		{"pointer", scene.Pointer, func(t *testing.T, e ecs.Entity) {
			if !ecs.Has(w, e, component.PointerComponent.Kind()) || !ecs.Has(w, e, component.CursorComponent.Kind()) {
				t.Fatalf("pointer entity missing components")
			}
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if !ecs.IsAlive(w, c.entity) {
				t.Fatalf("%s was not created", c.name)
			}
			c.check(t, c.entity)
		})
	}
}

func TestRockHandlers(t *testing.T) {
	w, scene := buildDefault(t)

	target, _ := ecs.Get(w, scene.Rock, component.PointerTargetComponent.Kind())
	hover, _ := ecs.Get(w, scene.Rock, component.HoverComponent.Kind())
	spin, _ := ecs.Get(w, scene.Rock, component.SpinComponent.Kind())

	target.OnOver()
	if !hover.Active {
		t.Fatalf("over should activate hover")
	}
	target.OnOver()
	if !hover.Active {
		t.Fatalf("a repeated over should keep hover active")
	}
	target.OnOut()
	if hover.Active {
		t.Fatalf("out should clear hover")
	}

	target.OnDown()
	if spin.Enabled {
		t.Fatalf("down should stop the spin")
	}
	target.OnDown()
	if !spin.Enabled {
		t.Fatalf("second down should restart the spin")
	}
}

func TestBuildSceneNil(t *testing.T) {
	if _, err := BuildScene(nil, &prefabs.SceneSpec{}); err == nil {
		t.Fatalf("expected an error for a nil world")
	}
	if _, err := BuildScene(ecs.NewWorld(), nil); err == nil {
		t.Fatalf("expected an error for a nil spec")
	}
}
