package system

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/antivirus/ecs/component"
	"github.com/milk9111/antivirus/prefabs"
)

// SpawnPolicy maps a spawn roll to the dimension of the enemy to spawn.
// ok is false when the roll spawns nothing.
type SpawnPolicy interface {
	Decide(roll float64) (dim component.Dimension, ok bool, err error)
}

// TieredSpawnPolicy spawns Front for roll <= FrontMax and Back for
// roll >= BackMin. Rolls in between spawn nothing.
type TieredSpawnPolicy struct {
	FrontMax float64
	BackMin  float64
}

// DefaultSpawnPolicy splits a [0, 5) roll roughly 40% front, 40% back and
// 20% nothing.
func DefaultSpawnPolicy() TieredSpawnPolicy {
	return TieredSpawnPolicy{FrontMax: 2, BackMin: 3}
}

func (p TieredSpawnPolicy) Decide(roll float64) (component.Dimension, bool, error) {
	switch {
	case roll <= p.FrontMax:
		return component.DimensionFront, true, nil
	case roll >= p.BackMin:
		return component.DimensionBack, true, nil
	default:
		return component.DimensionFront, false, nil
	}
}

// ScriptSpawnPolicy runs a tengo script with the global `roll` set and reads
// back the global `lane`: "front", "back" or "" for nothing.
type ScriptSpawnPolicy struct {
	Path     string
	compiled *tengo.Compiled
}

func NewScriptSpawnPolicy(path string) (*ScriptSpawnPolicy, error) {
	src, err := prefabs.LoadScript(path)
	if err != nil {
		return nil, fmt.Errorf("spawn policy: load %s: %w", path, err)
	}
	return CompileSpawnPolicy(path, src)
}

// CompileSpawnPolicy compiles src as a spawn policy. path is only used in
// errors.
func CompileSpawnPolicy(path string, src []byte) (*ScriptSpawnPolicy, error) {
	script := tengo.NewScript(src)
	if err := script.Add("roll", 0.0); err != nil {
		return nil, fmt.Errorf("spawn policy: %s: %w", path, err)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("spawn policy: compile %s: %w", path, err)
	}
	// Globals declared by the script only exist after a run.
	if err := compiled.Run(); err != nil {
		return nil, fmt.Errorf("spawn policy: run %s: %w", path, err)
	}
	if !compiled.IsDefined("lane") {
		return nil, fmt.Errorf("spawn policy: %s does not define lane", path)
	}
	return &ScriptSpawnPolicy{Path: path, compiled: compiled}, nil
}

func (p *ScriptSpawnPolicy) Decide(roll float64) (component.Dimension, bool, error) {
	if err := p.compiled.Set("roll", roll); err != nil {
		return component.DimensionFront, false, fmt.Errorf("spawn policy: %s: set roll: %w", p.Path, err)
	}
	if err := p.compiled.Run(); err != nil {
		return component.DimensionFront, false, fmt.Errorf("spawn policy: %s: run: %w", p.Path, err)
	}
	lane := p.compiled.Get("lane").String()
	if lane == "" {
		return component.DimensionFront, false, nil
	}
	dim, ok := component.ParseDimension(lane)
	if !ok {
		return component.DimensionFront, false, fmt.Errorf("spawn policy: %s: unknown lane %q", p.Path, lane)
	}
	return dim, true, nil
}
