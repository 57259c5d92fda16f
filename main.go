package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/prefabs"
	"github.com/milk9111/rockgarden/store"
)

func main() {
	debug := flag.Bool("debug", false, "show FPS and store state")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	sceneName := flag.String("scene", prefabs.DefaultScene, "scene spec in prefabs/ (basename, .yaml optional)")
	watch := flag.Bool("watch", false, "reload prefabs/ when files change")
	autoCreate := flag.Bool("autocreate", false, "let the store create namespaces on first advance")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("rockgarden")

	var opts []store.Option
	if *autoCreate {
		opts = append(opts, store.WithAutoCreate())
	}

	game, err := NewGame(store.New(opts...), *sceneName, *debug, *watch)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
