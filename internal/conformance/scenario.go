package conformance

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario builds a list from Left and Right, then applies Ops in order.
// Want, when set, is the expected final state.
type Scenario struct {
	Name  string   `yaml:"name" msgpack:"name"`
	Left  []string `yaml:"left,omitempty" msgpack:"left"`
	Right []string `yaml:"right,omitempty" msgpack:"right"`
	Ops   []Op     `yaml:"ops" msgpack:"ops"`
	Want  *State   `yaml:"want,omitempty" msgpack:"want,omitempty"`
}

// State is the observable content of a list.
type State struct {
	Left  []string `yaml:"left" msgpack:"left"`
	Right []string `yaml:"right" msgpack:"right"`
}

type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// ParseScenarios decodes a YAML document with a top-level scenarios list.
func ParseScenarios(data []byte) ([]Scenario, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}

	var errs []error
	seen := make(map[string]bool, len(file.Scenarios))
	for i, sc := range file.Scenarios {
		if sc.Name == "" {
			errs = append(errs, fmt.Errorf("scenario %d has no name", i))
			continue
		}
		if seen[sc.Name] {
			errs = append(errs, fmt.Errorf("duplicate scenario %q", sc.Name))
		}
		seen[sc.Name] = true
		for j, op := range sc.Ops {
			if !knownOps[op.Name] {
				errs = append(errs, fmt.Errorf("scenario %q step %d: unknown op %q", sc.Name, j, op.Name))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return file.Scenarios, nil
}

// LoadScenarios reads and parses a scenario file.
func LoadScenarios(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScenarios(data)
}

var palette = []string{"red", "green", "blue", "yellow", "orange", "purple"}

// Weighted so that lists grow more often than they shrink.
var randomOps = []string{
	OpAddRightFront, OpAddRightFront, OpAddRightFront,
	OpRemoveRightFront,
	OpRightFront,
	OpReplaceRightFront,
	OpAdvance, OpAdvance,
	OpRetreat, OpRetreat,
	OpMoveToStart,
	OpMoveToFinish,
	OpLeftLength,
	OpRightLength,
	OpIterate,
}

// RandomScript returns a reproducible scenario of the given number of steps.
// Steps are not filtered by precondition, so violations are exercised too.
func RandomScript(seed uint64, steps int) Scenario {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	sc := Scenario{Name: fmt.Sprintf("random-%d", seed)}

	for range r.IntN(len(palette) + 1) {
		item := palette[r.IntN(len(palette))]
		if r.IntN(2) == 0 {
			sc.Left = append(sc.Left, item)
		} else {
			sc.Right = append(sc.Right, item)
		}
	}

	sc.Ops = make([]Op, 0, steps)
	for range steps {
		op := Op{Name: randomOps[r.IntN(len(randomOps))]}
		if op.Name == OpAddRightFront || op.Name == OpReplaceRightFront {
			op.Arg = palette[r.IntN(len(palette))]
		}
		sc.Ops = append(sc.Ops, op)
	}
	return sc
}
