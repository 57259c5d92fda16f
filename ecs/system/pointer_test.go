package system

import (
	"testing"

	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
)

func TestPick(t *testing.T) {
	w := ecs.NewWorld()
	addCamera(t, w, common.V3(0, 0, 5), nil)
	near := addRock(t, w, common.V3(0, 0, 2), &component.PointerTarget{})
	far := addRock(t, w, common.V3(0, 0, -2), &component.PointerTarget{})
	side := addRock(t, w, common.V3(3, 0, 0), &component.PointerTarget{})

	view, ok := ActiveCamera(w)
	if !ok {
		t.Fatalf("expected an active camera")
	}
	sideX, sideY, _, _ := view.Project(common.V3(3, 0, 0))

	cases := []struct {
		name string
		x, y float64
		want ecs.Entity
	}{
		{"center_hits_nearest", 640, 360, near},
		{"corner_misses", 2, 2, 0},
		{"side_rock", sideX, sideY, side},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Pick(w, view, c.x, c.y); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}

	if Pick(w, view, 640, 360) == far {
		t.Fatalf("occluded rock was picked")
	}
}

func TestPickWithoutCamera(t *testing.T) {
	w := ecs.NewWorld()
	if _, ok := ActiveCamera(w); ok {
		t.Fatalf("empty world should have no camera")
	}
}

func TestPointerEvents(t *testing.T) {
	w := ecs.NewWorld()
	addCamera(t, w, common.V3(0, 0, 5), nil)
	ptr := addPointer(t, w)

	var calls []string
	rock := addRock(t, w, common.Vec3{}, &component.PointerTarget{
		OnOver: func() { calls = append(calls, "over") },
		OnOut:  func() { calls = append(calls, "out") },
		OnDown: func() { calls = append(calls, "down") },
	})

	s := ecs.NewScheduler(NewPointerSystem(), NewPointerEventSystem())

	frames := []struct {
		name    string
		x, y    float64
		pressed bool
		inside  bool
		want    []string
	}{
		{"enter", 640, 360, false, true, []string{"over"}},
		{"stay", 645, 362, false, true, nil},
		{"click", 645, 362, true, true, []string{"down"}},
		{"leave", 10, 10, false, true, []string{"out"}},
		{"click_miss", 10, 10, true, true, nil},
		{"enter_again", 640, 360, false, true, []string{"over"}},
		{"left_window", 640, 360, false, false, []string{"out"}},
	}

	for _, f := range frames {
		t.Run(f.name, func(t *testing.T) {
			calls = nil
			ptr.X, ptr.Y, ptr.Pressed, ptr.InWindow = f.x, f.y, f.pressed, f.inside
			s.Update(w)

			if len(calls) != len(f.want) {
				t.Fatalf("expected %v, got %v", f.want, calls)
			}
			for i := range calls {
				if calls[i] != f.want[i] {
					t.Fatalf("expected %v, got %v", f.want, calls)
				}
			}
		})
	}

	target, _ := ecs.Get(w, rock, component.PointerTargetComponent.Kind())
	if target.Hovered {
		t.Fatalf("target should not be hovered once the pointer left the window")
	}
}

func TestPointerEventForDestroyedEntity(t *testing.T) {
	w := ecs.NewWorld()
	called := false
	rock := addRock(t, w, common.Vec3{}, &component.PointerTarget{OnDown: func() { called = true }})
	w.Events().Push(ecs.Event{Type: ecs.EventPointerDown, Entity: rock})
	ecs.DestroyEntity(w, rock)

	NewPointerEventSystem().Update(w)
	if called {
		t.Fatalf("handler of a destroyed entity ran")
	}
}
