// Package cfengine wires pkg/mcts.EngineConfig to a small set of named
// difficulty presets, with optional YAML overrides for deployments that want
// to tune a preset without a rebuild — grounded on the dependency set
// jinterlante1206-AleutianLocal's go.mod carries for config loading
// (gopkg.in/yaml.v3), since the teacher library itself has no config-file
// layer of its own.
package cfengine

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/connectfour-ai/go-connectfour/pkg/mcts"
)

// Preset names the three named difficulty tiers spec.md's §4.C engine
// sizing describes.
type Preset string

const (
	Easy   Preset = "easy"
	Medium Preset = "medium"
	Hard   Preset = "hard"
)

// defaults maps each preset to its baseline EngineConfig.
var defaults = map[Preset]mcts.EngineConfig{
	Easy: {
		Iterations:        500,
		Exploration:       mcts.DefaultExploration,
		Threads:           1,
		ParallelThreshold: mcts.ParallelThreshold,
	},
	Medium: {
		Iterations:        4000,
		Exploration:       mcts.DefaultExploration,
		Threads:           2,
		ParallelThreshold: mcts.ParallelThreshold,
	},
	Hard: {
		Iterations:        20000,
		Exploration:       mcts.DefaultExploration,
		Threads:           4,
		ParallelThreshold: mcts.ParallelThreshold,
	},
}

// ErrUnknownPreset is returned by Config for a name outside {easy,medium,hard}.
var ErrUnknownPreset = errors.New("cfengine: unknown preset")

// Config returns the EngineConfig for a named preset.
func Config(p Preset) (mcts.EngineConfig, error) {
	cfg, ok := defaults[p]
	if !ok {
		return mcts.EngineConfig{}, errors.Wrapf(ErrUnknownPreset, "%q", p)
	}
	return cfg, nil
}

// overrideFile is the YAML shape a deployment can supply to adjust a preset
// without recompiling; fields left zero keep the preset's baseline value.
type overrideFile struct {
	Iterations  int     `yaml:"iterations"`
	Exploration float64 `yaml:"exploration"`
	Threads     int     `yaml:"threads"`
	Debug       bool    `yaml:"debug"`
}

// LoadOverride reads a YAML override document and applies it on top of
// preset's baseline config, returning the merged result.
func LoadOverride(p Preset, r io.Reader) (mcts.EngineConfig, error) {
	cfg, err := Config(p)
	if err != nil {
		return mcts.EngineConfig{}, err
	}

	var override overrideFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&override); err != nil && err != io.EOF {
		return mcts.EngineConfig{}, errors.Wrap(err, "cfengine: decode override")
	}

	if override.Iterations > 0 {
		cfg.Iterations = override.Iterations
	}
	if override.Exploration > 0 {
		cfg.Exploration = override.Exploration
	}
	if override.Threads > 0 {
		cfg.Threads = override.Threads
	}
	cfg.Debug = override.Debug

	return cfg, nil
}
