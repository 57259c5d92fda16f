package component

import "github.com/milk9111/rockgarden/common"

// Camera is a perspective camera. Its position comes from the entity's
// Transform.
type Camera struct {
	Target common.Vec3
	FOV    float64
	Near   float64
	Width  float64
	Height float64
}

var CameraComponent = NewComponent[Camera]()

// View returns the camera as seen from position.
func (c *Camera) View(position common.Vec3) common.Camera {
	return common.Camera{
		Position: position,
		Target:   c.Target,
		Up:       common.V3(0, 1, 0),
		FOV:      c.FOV,
		Near:     c.Near,
		Width:    c.Width,
		Height:   c.Height,
	}
}

// OrbitControls rotates and zooms a camera around its target.
type OrbitControls struct {
	AutoRotate      bool
	AutoRotateSpeed float64
	EnablePan       bool
	EnableZoom      bool
	EnableDamping   bool
	DampingFactor   float64
	RotateSpeed     float64
	ZoomSpeed       float64
	MinDistance     float64
	MaxDistance     float64

	// pending spherical deltas, decayed by damping
	DeltaTheta float64
	DeltaPhi   float64
	Dragging   bool
	LastX      float64
	LastY      float64
}

var OrbitControlsComponent = NewComponent[OrbitControls]()
