package component

import "github.com/milk9111/rockgarden/common"

// Transform places a node in world space. Rotation is Euler XYZ in radians.
type Transform struct {
	Position common.Vec3
	Rotation common.Vec3
	Scale    common.Vec3
}

func NewTransform(position common.Vec3) *Transform {
	return &Transform{Position: position, Scale: common.V3(1, 1, 1)}
}

var TransformComponent = NewComponent[Transform]()
