package common

import (
	"math"
	"sort"
)

// Mesh is a convex-faced polygon mesh. Face indices wind counter-clockwise
// when seen from outside.
type Mesh struct {
	Vertices []Vec3
	Faces    [][]int
}

// Dodecahedron builds a regular dodecahedron whose vertices lie on a sphere of
// the given radius.
func Dodecahedron(radius float64) *Mesh {
	phi := (1 + math.Sqrt(5)) / 2
	inv := 1 / phi

	raw := []Vec3{
		{-1, -1, -1}, {-1, -1, 1}, {-1, 1, -1}, {-1, 1, 1},
		{1, -1, -1}, {1, -1, 1}, {1, 1, -1}, {1, 1, 1},
		{0, -inv, -phi}, {0, -inv, phi}, {0, inv, -phi}, {0, inv, phi},
		{-inv, -phi, 0}, {-inv, phi, 0}, {inv, -phi, 0}, {inv, phi, 0},
		{-phi, 0, -inv}, {phi, 0, -inv}, {-phi, 0, inv}, {phi, 0, inv},
	}

	verts := make([]Vec3, len(raw))
	for i, v := range raw {
		verts[i] = v.Normalize().Scale(radius)
	}

	// Face normals of a dodecahedron point at the vertices of an icosahedron.
	normals := []Vec3{
		{1, 0, phi}, {-1, 0, phi}, {1, 0, -phi}, {-1, 0, -phi},
		{0, phi, 1}, {0, -phi, 1}, {0, phi, -1}, {0, -phi, -1},
		{phi, 1, 0}, {-phi, 1, 0}, {phi, -1, 0}, {-phi, -1, 0},
	}

	faces := make([][]int, 0, len(normals))
	for _, n := range normals {
		faces = append(faces, faceAround(verts, n.Normalize()))
	}

	return &Mesh{Vertices: verts, Faces: faces}
}

// faceAround collects the vertices furthest along n and orders them
// counter-clockwise around n.
func faceAround(verts []Vec3, n Vec3) []int {
	best := math.Inf(-1)
	for _, v := range verts {
		best = math.Max(best, v.Dot(n))
	}

	const eps = 1e-6
	var idx []int
	for i, v := range verts {
		if best-v.Dot(n) < eps {
			idx = append(idx, i)
		}
	}

	ref := Vec3{1, 0, 0}
	if math.Abs(n.Dot(ref)) > 0.9 {
		ref = Vec3{0, 1, 0}
	}
	a := ref.Sub(n.Scale(n.Dot(ref))).Normalize()
	b := n.Cross(a)

	sort.Slice(idx, func(i, j int) bool {
		pi, pj := verts[idx[i]], verts[idx[j]]
		return math.Atan2(pi.Dot(b), pi.Dot(a)) < math.Atan2(pj.Dot(b), pj.Dot(a))
	})
	return idx
}

// Plane builds a width x height plane in the XY plane facing +Z, split into
// segW x segH quads.
func Plane(width, height float64, segW, segH int) *Mesh {
	if segW < 1 {
		segW = 1
	}
	if segH < 1 {
		segH = 1
	}

	row := segW + 1
	verts := make([]Vec3, 0, row*(segH+1))
	for iy := 0; iy <= segH; iy++ {
		y := -height/2 + height*float64(iy)/float64(segH)
		for ix := 0; ix <= segW; ix++ {
			x := -width/2 + width*float64(ix)/float64(segW)
			verts = append(verts, Vec3{x, y, 0})
		}
	}

	faces := make([][]int, 0, segW*segH)
	for iy := 0; iy < segH; iy++ {
		for ix := 0; ix < segW; ix++ {
			i := iy*row + ix
			faces = append(faces, []int{i, i + 1, i + 1 + row, i + row})
		}
	}

	return &Mesh{Vertices: verts, Faces: faces}
}

// Triangles fans every face into triangles.
func (m *Mesh) Triangles() [][3]int {
	if m == nil {
		return nil
	}
	var out [][3]int
	for _, f := range m.Faces {
		for i := 1; i+1 < len(f); i++ {
			out = append(out, [3]int{f[0], f[i], f[i+1]})
		}
	}
	return out
}

// Transformed returns the vertices after scale, Euler rotation and
// translation, in that order.
func (m *Mesh) Transformed(position, rotation, scale Vec3) []Vec3 {
	if m == nil {
		return nil
	}
	out := make([]Vec3, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = v.Mul(scale).RotateEuler(rotation).Add(position)
	}
	return out
}

// FaceNormal returns the outward unit normal of a counter-clockwise face.
func FaceNormal(verts []Vec3, face []int) Vec3 {
	if len(face) < 3 {
		return Vec3{}
	}
	a, b, c := verts[face[0]], verts[face[1]], verts[face[2]]
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Centroid averages the face's vertices.
func Centroid(verts []Vec3, face []int) Vec3 {
	var sum Vec3
	if len(face) == 0 {
		return sum
	}
	for _, i := range face {
		sum = sum.Add(verts[i])
	}
	return sum.Scale(1 / float64(len(face)))
}
