package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/ecs"
	"github.com/milk9111/rockgarden/ecs/component"
	"github.com/milk9111/rockgarden/ecs/entity"
	"github.com/milk9111/rockgarden/ecs/render"
	"github.com/milk9111/rockgarden/ecs/system"
	"github.com/milk9111/rockgarden/prefabs"
	"github.com/milk9111/rockgarden/store"
	"golang.design/x/clipboard"
	"gopkg.in/yaml.v3"
)

type Game struct {
	store     *store.Store
	world     *ecs.World
	scheduler *ecs.Scheduler
	spin      *system.SpinSystem
	render    *render.RenderSystem

	sceneName string
	spec      *prefabs.SceneSpec
	scene     *entity.Scene

	ui     *ebitenui.UI
	paused bool
	quit   bool
	debug  bool

	watcher     *prefabs.Watcher
	clipboardOK bool

	status string
}

// NewGame builds the scene named sceneName on top of st. st outlives scene
// reloads, so the rock keeps its rotation when the spec is edited.
func NewGame(st *store.Store, sceneName string, debug, watch bool) (*Game, error) {
	g := &Game{
		store:     st,
		sceneName: sceneName,
		debug:     debug,
		spin:      system.NewSpinSystem(st),
		render:    render.NewRenderSystem(),
	}

	g.scheduler = ecs.NewScheduler(
		render.NewInputSystem(),
		system.NewOrbitSystem(),
		system.NewPointerSystem(),
		system.NewPointerEventSystem(),
		system.NewHoverSystem(),
		g.spin,
		render.NewCursorSystem(),
	)

	if err := g.loadScene(); err != nil {
		return nil, err
	}

	st.Subscribe(g.onState)
	g.ui = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

func (g *Game) loadScene() error {
	spec, err := prefabs.LoadSceneSpec(g.sceneName)
	if err != nil {
		return err
	}

	world := ecs.NewWorld()
	scene, err := entity.BuildScene(world, spec)
	if err != nil {
		return fmt.Errorf("scene %s: %w", spec.Name, err)
	}

	g.spec, g.world, g.scene = spec, world, scene
	return nil
}

func (g *Game) rotationField() store.Field[common.Vec3] {
	return store.NewField[common.Vec3](g.spec.Rock.Spin.Namespace, g.spec.Rock.Spin.Field)
}

// onState runs after every store write.
func (g *Game) onState(snap store.Snapshot) {
	rot, err := store.Get(snap, g.rotationField())
	if err != nil {
		g.status = err.Error()
		return
	}
	g.status = fmt.Sprintf("%s: [%.2f %.2f %.2f]", g.rotationField(), rot[0], rot[1], rot[2])
}

// ResetRotation re-initializes the rock's namespace and pose.
func (g *Game) ResetRotation() {
	system.ResetRotation(g.store, g.rotationField())
	if t, ok := ecs.Get(g.world, g.scene.Rock, component.TransformComponent.Kind()); ok {
		t.Rotation = common.Vec3{}
	}
}

func (g *Game) Update() error {
	if g.quit {
		if g.watcher != nil {
			_ = g.watcher.Close()
		}
		return ebiten.Termination
	}

	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySnapshot()
	}

	if g.paused {
		g.ui.Update()
		return nil
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if change.Script {
				log.Printf("reloading spin script %s", change.Name)
				g.spin.ReloadScript(change.Name)
				continue
			}
			log.Printf("reloading scene after change to %s", change.Name)
			if err := g.loadScene(); err != nil {
				log.Printf("reload failed, keeping previous scene: %v", err)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("watch: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) copySnapshot() {
	out, err := yaml.Marshal(g.store.State())
	if err != nil {
		log.Printf("snapshot: %v", err)
		return
	}
	if !g.clipboardOK {
		log.Printf("snapshot:\n%s", out)
		return
	}
	clipboard.Write(clipboard.FmtText, out)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f    Frame: %d\n%s", ebiten.ActualFPS(), g.world.Frame(), g.status))
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
