package component

import (
	"image/color"

	"github.com/milk9111/rockgarden/common"
)

type Mesh struct {
	Geometry      *common.Mesh
	CastShadow    bool
	ReceiveShadow bool
	// Layer orders drawing; lower layers draw first.
	Layer int
}

var MeshComponent = NewComponent[Mesh]()

type Material struct {
	Color color.Color
}

var MaterialComponent = NewComponent[Material]()
