package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (*T, error) {
	data, err := Load(filename)
	if err != nil {
		return nil, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return &spec, nil
}

type SceneSpec struct {
	Name       string    `yaml:"name"`
	Width      float64   `yaml:"width"`
	Height     float64   `yaml:"height"`
	Background YAMLColor `yaml:"background"`
	// SwipeThreshold is the vertical drag, in pixels, past which a gesture
	// switches dimension instead of firing.
	SwipeThreshold float64 `yaml:"swipe_threshold"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	return LoadSpec[SceneSpec]("scene.yaml")
}

type PlayerSpec struct {
	Name string `yaml:"name"`
	// StartX and StartY are fractions of the playfield size.
	StartX float64   `yaml:"start_x"`
	StartY float64   `yaml:"start_y"`
	Radius float64   `yaml:"radius"`
	Color  YAMLColor `yaml:"color"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	return LoadSpec[PlayerSpec]("player.yaml")
}

type EnemySpec struct {
	Name        string    `yaml:"name"`
	Radius      float64   `yaml:"radius"`
	MinDuration float64   `yaml:"min_duration"`
	MaxDuration float64   `yaml:"max_duration"`
	Color       YAMLColor `yaml:"color"`
	Spawn       SpawnSpec `yaml:"spawn"`
}

type SpawnSpec struct {
	// Interval is the number of seconds between spawn decisions.
	Interval float64 `yaml:"interval"`
	// RollMax bounds the uniform roll handed to the spawn policy, [0, RollMax).
	RollMax float64 `yaml:"roll_max"`
	// Script is the tengo spawn policy under prefabs/scripts. Empty uses the
	// built-in tiers.
	Script string `yaml:"script"`
}

func LoadEnemySpec() (*EnemySpec, error) {
	return LoadSpec[EnemySpec]("enemy.yaml")
}

type ProjectileSpec struct {
	Name     string  `yaml:"name"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Duration float64 `yaml:"duration"`
	// RangeFactor scales the spawn x coordinate into the travel distance.
	RangeFactor float64   `yaml:"range_factor"`
	Color       YAMLColor `yaml:"color"`
}

func LoadProjectileSpec() (*ProjectileSpec, error) {
	return LoadSpec[ProjectileSpec]("projectile.yaml")
}

// Specs bundles every prefab the game reads. Systems hold a pointer to one
// Specs value; a reload swaps its contents in place.
type Specs struct {
	Scene      SceneSpec
	Player     PlayerSpec
	Enemy      EnemySpec
	Projectile ProjectileSpec
}

func LoadSpecs() (*Specs, error) {
	scene, err := LoadSceneSpec()
	if err != nil {
		return nil, err
	}
	player, err := LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	enemy, err := LoadEnemySpec()
	if err != nil {
		return nil, err
	}
	projectile, err := LoadProjectileSpec()
	if err != nil {
		return nil, err
	}
	specs := &Specs{Scene: *scene, Player: *player, Enemy: *enemy, Projectile: *projectile}
	if err := specs.Validate(); err != nil {
		return nil, err
	}
	return specs, nil
}

// Validate rejects values no entity could be built from.
func (s *Specs) Validate() error {
	switch {
	case s.Scene.Width <= 0 || s.Scene.Height <= 0:
		return fmt.Errorf("prefabs: scene size must be positive, got %vx%v", s.Scene.Width, s.Scene.Height)
	case s.Scene.SwipeThreshold <= 0:
		return fmt.Errorf("prefabs: swipe_threshold must be positive")
	case s.Player.Radius <= 0:
		return fmt.Errorf("prefabs: player radius must be positive")
	case s.Enemy.Radius <= 0:
		return fmt.Errorf("prefabs: enemy radius must be positive")
	case s.Enemy.MinDuration <= 0 || s.Enemy.MaxDuration < s.Enemy.MinDuration:
		return fmt.Errorf("prefabs: enemy durations must satisfy 0 < min <= max, got [%v, %v)", s.Enemy.MinDuration, s.Enemy.MaxDuration)
	case s.Enemy.Spawn.Interval <= 0 || s.Enemy.Spawn.RollMax <= 0:
		return fmt.Errorf("prefabs: spawn interval and roll_max must be positive")
	case s.Projectile.Width <= 0 || s.Projectile.Height <= 0 || s.Projectile.Duration <= 0:
		return fmt.Errorf("prefabs: projectile size and duration must be positive")
	}
	return nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.NRGBA
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.NRGBA = color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}
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

	c.NRGBA = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
