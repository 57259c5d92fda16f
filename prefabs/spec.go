package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/rockgarden/common"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const DefaultScene = "scene.yaml"

// SceneSpec describes the whole scene: one rock, its ground, lights, camera
// and orbit controls.
type SceneSpec struct {
	Name     string       `yaml:"name"`
	Rock     RockSpec     `yaml:"rock"`
	Ground   GroundSpec   `yaml:"ground"`
	Lights   []LightSpec  `yaml:"lights"`
	Camera   CameraSpec   `yaml:"camera"`
	Controls ControlsSpec `yaml:"controls"`
}

type RockSpec struct {
	Position   common.Vec3 `yaml:"position"`
	Radius     float64     `yaml:"radius"`
	Color      YAMLColor   `yaml:"color"`
	HoverScale float64     `yaml:"hover_scale"`
	CastShadow bool        `yaml:"cast_shadow"`
	Spin       SpinSpec    `yaml:"spin"`
}

type SpinSpec struct {
	Namespace string  `yaml:"namespace"`
	Field     string  `yaml:"field"`
	Step      float64 `yaml:"step"`
	Enabled   bool    `yaml:"enabled"`
	Script    string  `yaml:"script"`
}

type GroundSpec struct {
	Position      common.Vec3 `yaml:"position"`
	Rotation      common.Vec3 `yaml:"rotation"`
	Size          float64     `yaml:"size"`
	Segments      int         `yaml:"segments"`
	Color         YAMLColor   `yaml:"color"`
	ReceiveShadow bool        `yaml:"receive_shadow"`
}

type LightSpec struct {
	Kind       string      `yaml:"kind"`
	Intensity  float64     `yaml:"intensity"`
	Position   common.Vec3 `yaml:"position"`
	Penumbra   float64     `yaml:"penumbra"`
	CastShadow bool        `yaml:"cast_shadow"`
}

type CameraSpec struct {
	Position common.Vec3 `yaml:"position"`
	Target   common.Vec3 `yaml:"target"`
	FOV      float64     `yaml:"fov"`
	Near     float64     `yaml:"near"`
}

type ControlsSpec struct {
	AutoRotate    bool    `yaml:"auto_rotate"`
	EnablePan     bool    `yaml:"enable_pan"`
	EnableZoom    bool    `yaml:"enable_zoom"`
	EnableDamping bool    `yaml:"enable_damping"`
	DampingFactor float64 `yaml:"damping_factor"`
	RotateSpeed   float64 `yaml:"rotate_speed"`
	ZoomSpeed     float64 `yaml:"zoom_speed"`
	MinDistance   float64 `yaml:"min_distance"`
	MaxDistance   float64 `yaml:"max_distance"`
}

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadSceneSpec loads a scene and fills in anything the file leaves out.
func LoadSceneSpec(name string) (*SceneSpec, error) {
	if name == "" {
		name = DefaultScene
	}
	if !isSpecFile(name) {
		name += ".yaml"
	}
	spec, err := LoadSpec[SceneSpec](name)
	if err != nil {
		return nil, err
	}
	spec.applyDefaults()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return &spec, nil
}

func (s *SceneSpec) applyDefaults() {
	if s.Rock.Radius == 0 {
		s.Rock.Radius = 1
	}
	if s.Rock.HoverScale == 0 {
		s.Rock.HoverScale = 1
	}
	if s.Rock.Spin.Namespace == "" {
		s.Rock.Spin.Namespace = "rock"
	}
	if s.Rock.Spin.Field == "" {
		s.Rock.Spin.Field = "rotation"
	}
	if s.Ground.Size == 0 {
		s.Ground.Size = 100
	}
	if s.Ground.Segments == 0 {
		s.Ground.Segments = 1
	}
	if s.Camera.FOV == 0 {
		s.Camera.FOV = 75
	}
	if s.Camera.Near == 0 {
		s.Camera.Near = 0.1
	}
	if s.Camera.Position == (common.Vec3{}) {
		s.Camera.Position = common.V3(0, 0, 5)
	}
	if s.Controls.RotateSpeed == 0 {
		s.Controls.RotateSpeed = 1
	}
	if s.Controls.ZoomSpeed == 0 {
		s.Controls.ZoomSpeed = 1
	}
	if s.Controls.MaxDistance == 0 {
		s.Controls.MaxDistance = 1e9
	}
}

// Validate rejects specs the scene cannot be built from.
func (s *SceneSpec) Validate() error {
	if s.Rock.Radius < 0 {
		return fmt.Errorf("rock radius must be positive, got %v", s.Rock.Radius)
	}
	if s.Controls.MinDistance > s.Controls.MaxDistance {
		return fmt.Errorf("controls min_distance %v exceeds max_distance %v", s.Controls.MinDistance, s.Controls.MaxDistance)
	}
	if s.Controls.DampingFactor < 0 || s.Controls.DampingFactor > 1 {
		return fmt.Errorf("controls damping_factor must be in [0,1], got %v", s.Controls.DampingFactor)
	}
	for i, l := range s.Lights {
		switch l.Kind {
		case "ambient", "point", "spot":
		default:
			return fmt.Errorf("light %d: unknown kind %q", i, l.Kind)
		}
	}
	return nil
}

// YAMLColor accepts a CSS color name ("pink") or #rrggbb[aa].
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns c's color, or fallback when none was set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
