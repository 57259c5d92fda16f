package system

import (
	"math"

	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
)

const (
	polarEpsilon = 1e-6
	zoomBase     = 0.95
)

// OrbitSystem drags the camera around its target and zooms with the wheel.
type OrbitSystem struct{}

func NewOrbitSystem() *OrbitSystem {
	return &OrbitSystem{}
}

func (o *OrbitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	var ptr *component.Pointer
	if pe, ok := ecs.First(w, component.PointerComponent.Kind()); ok {
		ptr, _ = ecs.Get(w, pe, component.PointerComponent.Kind())
	}

	ecs.ForEach(w, component.OrbitControlsComponent.Kind(), func(e ecs.Entity, ctl *component.OrbitControls) {
		cam, ok := ecs.Get(w, e, component.CameraComponent.Kind())
		if !ok {
			return
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}

		height := cam.Height
		if height <= 0 {
			height = common.BaseHeight
		}

		radius, theta, phi := common.Spherical(cam.Target, t.Position)

		if ptr != nil {
			if ptr.Held {
				if ctl.Dragging {
					dx, dy := ptr.X-ctl.LastX, ptr.Y-ctl.LastY
					ctl.DeltaTheta -= 2 * math.Pi * dx / height * ctl.RotateSpeed
					ctl.DeltaPhi -= 2 * math.Pi * dy / height * ctl.RotateSpeed
				}
				ctl.Dragging = true
				ctl.LastX, ctl.LastY = ptr.X, ptr.Y
			} else {
				ctl.Dragging = false
			}

			if ctl.EnableZoom && ptr.WheelY != 0 {
				scale := math.Pow(zoomBase, ctl.ZoomSpeed*math.Abs(ptr.WheelY))
				if ptr.WheelY > 0 {
					radius *= scale
				} else {
					radius /= scale
				}
			}
		}

		if ctl.AutoRotate {
			// 30 seconds per orbit at speed 2 and 60 updates per second
			ctl.DeltaTheta -= 2 * math.Pi / 60 / 60 * ctl.AutoRotateSpeed
		}

		if ctl.EnableDamping {
			theta += ctl.DeltaTheta * ctl.DampingFactor
			phi += ctl.DeltaPhi * ctl.DampingFactor
		} else {
			theta += ctl.DeltaTheta
			phi += ctl.DeltaPhi
		}

		phi = common.Clamp(phi, polarEpsilon, math.Pi-polarEpsilon)
		radius = common.Clamp(radius, ctl.MinDistance, ctl.MaxDistance)

		t.Position = common.OrbitPosition(cam.Target, radius, theta, phi)

		if ctl.EnableDamping {
			ctl.DeltaTheta *= 1 - ctl.DampingFactor
			ctl.DeltaPhi *= 1 - ctl.DampingFactor
		} else {
			ctl.DeltaTheta, ctl.DeltaPhi = 0, 0
		}
	})
}
