package component

import "github.com/milk9111/rockgarden/common"

type LightKind string

const (
	LightAmbient LightKind = "ambient"
	LightPoint   LightKind = "point"
	LightSpot    LightKind = "spot"
)

type Light struct {
	Kind       LightKind
	Intensity  float64
	Position   common.Vec3
	Penumbra   float64
	CastShadow bool
}

var LightComponent = NewComponent[Light]()
