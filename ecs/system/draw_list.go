package system

import (
	"image/color"
	"math"
	"sort"

	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
)

// shadowLift keeps shadows just above their receiver.
const shadowLift = 1e-3

// Polygon is a flat-coloured convex polygon in screen space.
type Polygon struct {
	Points [][2]float64
	Color  color.RGBA
	Depth  float64
}

type meshNode struct {
	entity ecs.Entity
	mesh   *component.Mesh
	color  color.Color
	verts  []common.Vec3
	t      *component.Transform
}

// BuildDrawList tessellates every visible mesh into screen-space polygons in
// painter's order: layer by layer, far to near, with shadows drawn right after
// the layer that receives them.
func BuildDrawList(w *ecs.World, view common.Camera) []Polygon {
	if w == nil {
		return nil
	}

	lights := collectLights(w)

	var nodes []meshNode
	for _, e := range ecs.Query(w, component.MeshComponent.Kind(), component.TransformComponent.Kind()) {
		mesh, _ := ecs.Get(w, e, component.MeshComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		if mesh.Geometry == nil {
			continue
		}
		var col color.Color = color.White
		if m, ok := ecs.Get(w, e, component.MaterialComponent.Kind()); ok && m.Color != nil {
			col = m.Color
		}
		nodes = append(nodes, meshNode{
			entity: e,
			mesh:   mesh,
			color:  col,
			verts:  mesh.Geometry.Transformed(t.Position, t.Rotation, t.Scale),
			t:      t,
		})
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].mesh.Layer != nodes[j].mesh.Layer {
			return nodes[i].mesh.Layer < nodes[j].mesh.Layer
		}
		return nodes[i].entity < nodes[j].entity
	})

	var out []Polygon
	for start := 0; start < len(nodes); {
		end := start
		for end < len(nodes) && nodes[end].mesh.Layer == nodes[start].mesh.Layer {
			end++
		}
		layer := nodes[start:end]

		var polys []Polygon
		for _, n := range layer {
			polys = append(polys, faces(view, n, lights)...)
		}
		sort.SliceStable(polys, func(i, j int) bool { return polys[i].Depth > polys[j].Depth })
		out = append(out, polys...)

		for _, recv := range layer {
			if !recv.mesh.ReceiveShadow {
				continue
			}
			for _, caster := range nodes {
				if !caster.mesh.CastShadow || caster.entity == recv.entity {
					continue
				}
				out = append(out, shadows(view, caster, recv, lights)...)
			}
		}
		start = end
	}
	return out
}

type lighting struct {
	ambient float64
	direct  []component.Light
}

func collectLights(w *ecs.World) lighting {
	var l lighting
	ecs.ForEach(w, component.LightComponent.Kind(), func(_ ecs.Entity, light *component.Light) {
		if light.Kind == component.LightAmbient {
			l.ambient += light.Intensity
			return
		}
		l.direct = append(l.direct, *light)
	})
	return l
}

// shade applies Lambert lighting to base for a face at p with normal n.
func (l lighting) shade(base color.Color, p, n common.Vec3) color.RGBA {
	k := l.ambient
	for _, light := range l.direct {
		dir := light.Position.Sub(p).Normalize()
		k += light.Intensity * math.Max(0, n.Dot(dir))
	}
	return scaleColor(base, k)
}

func scaleColor(base color.Color, k float64) color.RGBA {
	r, g, b, a := base.RGBA()
	scale := func(c uint32) uint8 {
		return uint8(common.Clamp(float64(c>>8)*k, 0, 255))
	}
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: uint8(a >> 8)}
}

func faces(view common.Camera, n meshNode, lights lighting) []Polygon {
	var out []Polygon
	for _, face := range n.mesh.Geometry.Faces {
		normal := common.FaceNormal(n.verts, face)
		centroid := common.Centroid(n.verts, face)
		if normal.Dot(view.Position.Sub(centroid)) <= 0 {
			continue
		}

		world := make([]common.Vec3, len(face))
		for i, idx := range face {
			world[i] = n.verts[idx]
		}
		if poly, ok := project(view, world); ok {
			poly.Color = lights.shade(n.color, centroid, normal)
			out = append(out, poly)
		}
	}
	return out
}

// shadows flattens caster onto the receiver's plane along rays from the first
// shadow-casting light.
func shadows(view common.Camera, caster, recv meshNode, lights lighting) []Polygon {
	var light *component.Light
	for i := range lights.direct {
		if lights.direct[i].CastShadow {
			light = &lights.direct[i]
			break
		}
	}
	if light == nil {
		return nil
	}

	planeN := common.V3(0, 0, 1).RotateEuler(recv.t.Rotation).Normalize()
	planeP := recv.t.Position.Add(planeN.Scale(shadowLift))
	if planeN.Dot(view.Position.Sub(planeP)) <= 0 {
		return nil
	}

	col := scaleColor(recv.color, lights.ambient*0.6)

	var out []Polygon
	for _, face := range caster.mesh.Geometry.Faces {
		flat := make([]common.Vec3, 0, len(face))
		for _, idx := range face {
			p, ok := projectOntoPlane(light.Position, caster.verts[idx], planeP, planeN)
			if !ok {
				flat = nil
				break
			}
			flat = append(flat, p)
		}
		if len(flat) < 3 {
			continue
		}
		if poly, ok := project(view, flat); ok {
			poly.Color = col
			out = append(out, poly)
		}
	}
	return out
}

// projectOntoPlane casts a ray from light through v and intersects it with
// the plane. ok is false when v is not between the light and the plane.
func projectOntoPlane(light, v, planeP, planeN common.Vec3) (common.Vec3, bool) {
	dir := v.Sub(light)
	denom := planeN.Dot(dir)
	if math.Abs(denom) < 1e-9 {
		return common.Vec3{}, false
	}
	t := planeN.Dot(planeP.Sub(light)) / denom
	if t < 1 {
		return common.Vec3{}, false
	}
	return light.Add(dir.Scale(t)), true
}

func project(view common.Camera, world []common.Vec3) (Polygon, bool) {
	viewPts := make([]common.Vec3, len(world))
	depth := 0.0
	for i, p := range world {
		viewPts[i] = view.ToView(p)
		depth += viewPts[i][2]
	}

	clipped := view.ClipNear(viewPts)
	if len(clipped) < 3 {
		return Polygon{}, false
	}

	pts := make([][2]float64, 0, len(clipped))
	for _, v := range clipped {
		x, y, ok := view.ViewToScreen(v)
		if !ok {
			return Polygon{}, false
		}
		pts = append(pts, [2]float64{x, y})
	}
	return Polygon{Points: pts, Depth: depth / float64(len(world))}, true
}
