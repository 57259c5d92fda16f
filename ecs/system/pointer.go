package system

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
)

// PointerSystem works out which pointer target is under the cursor and queues
// over, out and down events for it.
type PointerSystem struct{}

func NewPointerSystem() *PointerSystem {
	return &PointerSystem{}
}

func (p *PointerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	pe, ok := ecs.First(w, component.PointerComponent.Kind())
	if !ok {
		return
	}
	ptr, _ := ecs.Get(w, pe, component.PointerComponent.Kind())

	var hit ecs.Entity
	if view, ok := ActiveCamera(w); ok && ptr.InWindow {
		hit = Pick(w, view, ptr.X, ptr.Y)
	}

	ecs.ForEach(w, component.PointerTargetComponent.Kind(), func(e ecs.Entity, target *component.PointerTarget) {
		over := e == hit
		switch {
		case over && !target.Hovered:
			w.Events().Push(ecs.Event{Type: ecs.EventPointerOver, Entity: e, X: ptr.X, Y: ptr.Y})
		case !over && target.Hovered:
			w.Events().Push(ecs.Event{Type: ecs.EventPointerOut, Entity: e, X: ptr.X, Y: ptr.Y})
		}
		target.Hovered = over
	})

	if ptr.Pressed && hit.Valid() {
		w.Events().Push(ecs.Event{Type: ecs.EventPointerDown, Entity: hit, X: ptr.X, Y: ptr.Y})
	}
}

// ActiveCamera returns the first camera in the world as seen from its
// transform.
func ActiveCamera(w *ecs.World) (common.Camera, bool) {
	ce, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return common.Camera{}, false
	}
	cam, _ := ecs.Get(w, ce, component.CameraComponent.Kind())
	t, ok := ecs.Get(w, ce, component.TransformComponent.Kind())
	if !ok {
		return common.Camera{}, false
	}
	return cam.View(t.Position), true
}

// Pick returns the nearest pointer target whose projected silhouette
// contains (x, y). Each silhouette is the convex hull of the projected
// vertices, which is exact for convex meshes.
func Pick(w *ecs.World, view common.Camera, x, y float64) ecs.Entity {
	var best ecs.Entity
	bestDepth := math.Inf(1)

	for _, e := range ecs.Query(w,
		component.PointerTargetComponent.Kind(),
		component.MeshComponent.Kind(),
		component.TransformComponent.Kind(),
	) {
		mesh, _ := ecs.Get(w, e, component.MeshComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if mesh.Geometry == nil {
			continue
		}

		pts, ok := silhouette(view, mesh.Geometry.Transformed(t.Position, t.Rotation, t.Scale))
		if !ok {
			continue
		}

		_, _, depth, _ := view.Project(t.Position)
		if depth >= bestDepth || !containsPoint(pts, x, y) {
			continue
		}
		best, bestDepth = e, depth
	}
	return best
}

func silhouette(view common.Camera, verts []common.Vec3) ([]cp.Vector, bool) {
	if len(verts) < 3 {
		return nil, false
	}
	pts := make([]cp.Vector, 0, len(verts))
	for _, v := range verts {
		sx, sy, _, ok := view.Project(v)
		if !ok {
			return nil, false
		}
		pts = append(pts, cp.Vector{X: sx, Y: sy})
	}
	return pts, true
}

func containsPoint(pts []cp.Vector, x, y float64) bool {
	space := cp.NewSpace()
	shape := cp.NewPolyShape(space.StaticBody, len(pts), pts, cp.NewTransformIdentity(), 0)
	space.AddShape(shape)

	info := space.PointQueryNearest(cp.Vector{X: x, Y: y}, 0, cp.SHAPE_FILTER_ALL)
	return info != nil && info.Shape != nil
}

// PointerEventSystem hands queued pointer events to their targets.
type PointerEventSystem struct{}

func NewPointerEventSystem() *PointerEventSystem {
	return &PointerEventSystem{}
}

func (p *PointerEventSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, evt := range w.Events().Drain() {
		target, ok := ecs.Get(w, evt.Entity, component.PointerTargetComponent.Kind())
		if !ok {
			continue
		}
		var fn func()
		switch evt.Type {
		case ecs.EventPointerOver:
			fn = target.OnOver
		case ecs.EventPointerOut:
			fn = target.OnOut
		case ecs.EventPointerDown:
			fn = target.OnDown
		}
		if fn != nil {
			fn()
		}
	}
}
