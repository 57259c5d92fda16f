package system

import (
	"testing"

	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
)

func TestHoverScalesAndSetsCursor(t *testing.T) {
	cases := []struct {
		name      string
		active    bool
		wantScale float64
		wantHand  bool
	}{
		{"idle", false, 1, false},
		{"hovered", true, 1.25, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			addPointer(t, w)
			rock := addRock(t, w, common.Vec3{}, nil)
			if err := ecs.Add(w, rock, component.HoverComponent.Kind(), &component.Hover{Active: c.active, Scale: 1.25}); err != nil {
				t.Fatalf("add hover: %v", err)
			}

			NewHoverSystem().Update(w)

			tr, _ := ecs.Get(w, rock, component.TransformComponent.Kind())
			if tr.Scale != common.V3(c.wantScale, c.wantScale, c.wantScale) {
				t.Fatalf("expected scale %v, got %v", c.wantScale, tr.Scale)
			}
			ce, _ := ecs.First(w, component.CursorComponent.Kind())
			cursor, _ := ecs.Get(w, ce, component.CursorComponent.Kind())
			if cursor.Hand != c.wantHand {
				t.Fatalf("expected hand=%v, got %v", c.wantHand, cursor.Hand)
			}
		})
	}
}

func TestHoverFollowsPointer(t *testing.T) {
	w := ecs.NewWorld()
	addCamera(t, w, common.V3(0, 0, 5), nil)
	ptr := addPointer(t, w)

	hover := &component.Hover{Scale: 1.25}
	rock := addRock(t, w, common.Vec3{}, &component.PointerTarget{
		OnOver: func() { hover.Active = true },
		OnOut:  func() { hover.Active = false },
	})
	if err := ecs.Add(w, rock, component.HoverComponent.Kind(), hover); err != nil {
		t.Fatalf("add hover: %v", err)
	}

	s := ecs.NewScheduler(NewPointerSystem(), NewPointerEventSystem(), NewHoverSystem())
	tr, _ := ecs.Get(w, rock, component.TransformComponent.Kind())

	ptr.X, ptr.Y = 640, 360
	s.Update(w)
	if tr.Scale[0] != 1.25 {
		t.Fatalf("expected hovered scale, got %v", tr.Scale)
	}

	ptr.X, ptr.Y = 5, 5
	s.Update(w)
	if tr.Scale[0] != 1 {
		t.Fatalf("expected rest scale, got %v", tr.Scale)
	}
}
