package common

import "math"

// Vec3 is a 3-component vector used for positions, scales and Euler rotations.
type Vec3 [3]float64

func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) X() float64 { return v[0] }
func (v Vec3) Y() float64 { return v[1] }
func (v Vec3) Z() float64 { return v[2] }

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Mul multiplies component-wise.
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v[0] * o[0], v[1] * o[1], v[2] * o[2]}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// AddScalar adds s to every component.
func (v Vec3) AddScalar(s float64) Vec3 {
	return Vec3{v[0] + s, v[1] + s, v[2] + s}
}

// RotateEuler rotates v by the Euler angles r applied in XYZ order, so the
// combined matrix is Rx * Ry * Rz.
func (v Vec3) RotateEuler(r Vec3) Vec3 {
	sx, cx := math.Sincos(r[0])
	sy, cy := math.Sincos(r[1])
	sz, cz := math.Sincos(r[2])

	// Rz
	x := v[0]*cz - v[1]*sz
	y := v[0]*sz + v[1]*cz
	z := v[2]

	// Ry
	x, z = x*cy+z*sy, -x*sy+z*cy

	// Rx
	y, z = y*cx-z*sx, y*sx+z*cx

	return Vec3{x, y, z}
}

// ApproxEqual reports whether every component differs by at most eps.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	for i := range v {
		if math.Abs(v[i]-o[i]) > eps {
			return false
		}
	}
	return true
}
