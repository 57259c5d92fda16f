package component

import (
	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/store"
)

// Spin advances a rotation field in the store every frame and copies the
// result into the node's Transform.
type Spin struct {
	Field   store.Field[common.Vec3]
	Step    float64
	Enabled bool
	// Script optionally names a tengo script computing the next rotation.
	Script string

	Initialized bool
}

var SpinComponent = NewComponent[Spin]()
