package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
)

// InputSystem copies ebiten's mouse state into the Pointer component.
type InputSystem struct{}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	cx, cy := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	inWindow := ebiten.IsFocused() &&
		cx >= 0 && cy >= 0 && cx < common.BaseWidth && cy < common.BaseHeight

	ecs.ForEach(w, component.PointerComponent.Kind(), func(e ecs.Entity, p *component.Pointer) {
		p.X = float64(cx)
		p.Y = float64(cy)
		p.Pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
		p.Held = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		p.WheelY = wheelY
		p.InWindow = inWindow
	})
}

// CursorSystem applies the cursor shape the scene asked for.
type CursorSystem struct {
	hand bool
}

func NewCursorSystem() *CursorSystem {
	return &CursorSystem{}
}

func (c *CursorSystem) Update(w *ecs.World) {
	ce, ok := ecs.First(w, component.CursorComponent.Kind())
	if !ok {
		return
	}
	cursor, _ := ecs.Get(w, ce, component.CursorComponent.Kind())
	if cursor.Hand == c.hand {
		return
	}
	c.hand = cursor.Hand
	if c.hand {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}
