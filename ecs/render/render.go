package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/system"
)

var background = color.RGBA{R: 0x1b, G: 0x1d, B: 0x24, A: 0xff}

// RenderSystem draws the world's draw list as flat-shaded triangles.
type RenderSystem struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderSystem() *RenderSystem {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &RenderSystem{white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil {
		return
	}

	screen.Fill(background)

	view, ok := system.ActiveCamera(w)
	if !ok {
		return
	}

	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]

	for _, poly := range system.BuildDrawList(w, view) {
		if len(r.vertices)+len(poly.Points) > 0xffff {
			r.flush(screen)
		}

		cr := float32(poly.Color.R) / 0xff
		cg := float32(poly.Color.G) / 0xff
		cb := float32(poly.Color.B) / 0xff
		ca := float32(poly.Color.A) / 0xff

		base := uint16(len(r.vertices))
		for _, p := range poly.Points {
			r.vertices = append(r.vertices, ebiten.Vertex{
				DstX:   float32(p[0]),
				DstY:   float32(p[1]),
				SrcX:   1,
				SrcY:   1,
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: ca,
			})
		}
		for i := 1; i+1 < len(poly.Points); i++ {
			r.indices = append(r.indices, base, base+uint16(i), base+uint16(i+1))
		}
	}
	r.flush(screen)
}

func (r *RenderSystem) flush(screen *ebiten.Image) {
	if len(r.indices) == 0 {
		return
	}
	screen.DrawTriangles(r.vertices, r.indices, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	r.vertices = r.vertices[:0]
	r.indices = r.indices[:0]
}
