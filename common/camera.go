package common

import "math"

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3
	FOV      float64 // vertical, degrees
	Near     float64
	Width    float64
	Height   float64
}

// Basis returns the camera's right, up and forward unit vectors.
func (c Camera) Basis() (right, up, forward Vec3) {
	worldUp := c.Up
	if worldUp == (Vec3{}) {
		worldUp = Vec3{0, 1, 0}
	}
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(worldUp).Normalize()
	if right == (Vec3{}) {
		right = Vec3{1, 0, 0}
	}
	up = right.Cross(forward)
	return right, up, forward
}

// ToView converts a world point to camera space, with +Z pointing forward.
func (c Camera) ToView(p Vec3) Vec3 {
	right, up, forward := c.Basis()
	d := p.Sub(c.Position)
	return Vec3{d.Dot(right), d.Dot(up), d.Dot(forward)}
}

func (c Camera) focal() float64 {
	fov := c.FOV
	if fov <= 0 {
		fov = 75
	}
	return (c.Height / 2) / math.Tan(fov*math.Pi/360)
}

func (c Camera) near() float64 {
	if c.Near <= 0 {
		return 0.1
	}
	return c.Near
}

// nearSlack tolerates rounding on points ClipNear placed on the near plane.
const nearSlack = 1e-9

// ViewToScreen projects a camera-space point. ok is false behind the near
// plane.
func (c Camera) ViewToScreen(v Vec3) (x, y float64, ok bool) {
	if v[2] < c.near()-nearSlack {
		return 0, 0, false
	}
	f := c.focal()
	return c.Width/2 + v[0]/v[2]*f, c.Height/2 - v[1]/v[2]*f, true
}

// Project maps a world point to screen coordinates and its view depth.
func (c Camera) Project(p Vec3) (x, y, depth float64, ok bool) {
	v := c.ToView(p)
	x, y, ok = c.ViewToScreen(v)
	return x, y, v[2], ok
}

// ClipNear clips a camera-space polygon against the near plane.
func (c Camera) ClipNear(poly []Vec3) []Vec3 {
	near := c.near()
	if len(poly) == 0 {
		return nil
	}
	out := make([]Vec3, 0, len(poly)+2)
	prev := poly[len(poly)-1]
	prevIn := prev[2] >= near
	for _, cur := range poly {
		curIn := cur[2] >= near
		if curIn != prevIn {
			t := (near - prev[2]) / (cur[2] - prev[2])
			out = append(out, prev.Add(cur.Sub(prev).Scale(t)))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// OrbitPosition returns the point at the given spherical coordinates around
// target. theta is the azimuth around +Y measured from +Z, phi the polar angle
// from +Y.
func OrbitPosition(target Vec3, radius, theta, phi float64) Vec3 {
	sp, cp := math.Sincos(phi)
	st, ct := math.Sincos(theta)
	return target.Add(Vec3{radius * sp * st, radius * cp, radius * sp * ct})
}

// Spherical is the inverse of OrbitPosition.
func Spherical(target, position Vec3) (radius, theta, phi float64) {
	d := position.Sub(target)
	radius = d.Len()
	if radius == 0 {
		return 0, 0, 0
	}
	theta = math.Atan2(d[0], d[2])
	phi = math.Acos(Clamp(d[1]/radius, -1, 1))
	return radius, theta, phi
}
