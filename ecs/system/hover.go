package system

import (
	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
)

// HoverSystem scales hovered nodes and asks for a hand cursor while any node
// is hovered.
type HoverSystem struct{}

func NewHoverSystem() *HoverSystem {
	return &HoverSystem{}
}

func (h *HoverSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	hovered := false
	ecs.ForEach(w, component.HoverComponent.Kind(), func(e ecs.Entity, hover *component.Hover) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		s := 1.0
		if hover.Active {
			s = hover.Scale
			hovered = true
		}
		t.Scale = common.V3(s, s, s)
	})

	if ce, ok := ecs.First(w, component.CursorComponent.Kind()); ok {
		cursor, _ := ecs.Get(w, ce, component.CursorComponent.Kind())
		cursor.Hand = hovered
	}
}
