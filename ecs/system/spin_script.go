package system

import (
	"fmt"
	"path"
	"path/filepath"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/rockgarden/common"
	"github.com/milk9111/rockgarden/prefabs"
)

// Spin scripts may only import modules without side effects.
var spinScriptModules = []string{"math", "text", "enum"}

type spinScript struct {
	name     string
	compiled *tengo.Compiled
}

type spinScripts struct {
	mu    sync.Mutex
	cache map[string]*spinScript
	load  func(string) ([]byte, error)
}

func newSpinScripts() *spinScripts {
	return &spinScripts{cache: map[string]*spinScript{}, load: prefabs.LoadScript}
}

func (s *spinScripts) get(name string) (*spinScript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sc, ok := s.cache[name]; ok {
		return sc, nil
	}

	src, err := s.load(name)
	if err != nil {
		return nil, fmt.Errorf("spin script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	_ = script.Add("rotation", []any{0.0, 0.0, 0.0})
	_ = script.Add("step", 0.0)
	script.SetImports(stdlib.GetModuleMap(spinScriptModules...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spin script %s: compile: %w", name, err)
	}

	sc := &spinScript{name: name, compiled: compiled}
	s.cache[name] = sc
	return sc, nil
}

// invalidate drops every cached script with the same base name, so a watcher
// event for "wobble.tengo" also clears "scripts/wobble.tengo".
func (s *spinScripts) invalidate(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	base := path.Base(filepath.ToSlash(name))
	for key := range s.cache {
		if path.Base(filepath.ToSlash(key)) == base {
			delete(s.cache, key)
		}
	}
}

// next runs the script on a fresh clone so no state carries over between
// calls.
func (sc *spinScript) next(cur common.Vec3, step float64) (common.Vec3, error) {
	c := sc.compiled.Clone()
	if err := c.Set("rotation", []any{cur[0], cur[1], cur[2]}); err != nil {
		return cur, err
	}
	if err := c.Set("step", step); err != nil {
		return cur, err
	}
	if err := c.Run(); err != nil {
		return cur, fmt.Errorf("spin script %s: %w", sc.name, err)
	}

	out := c.Get("rotation").Array()
	if len(out) != 3 {
		return cur, fmt.Errorf("spin script %s: rotation must have 3 elements, got %d", sc.name, len(out))
	}

	var next common.Vec3
	for i, v := range out {
		switch n := v.(type) {
		case float64:
			next[i] = n
		case int64:
			next[i] = float64(n)
		case int:
			next[i] = float64(n)
		default:
			return cur, fmt.Errorf("spin script %s: rotation[%d] is %T, want number", sc.name, i, v)
		}
	}
	return next, nil
}
