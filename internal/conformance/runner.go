package conformance

import (
	"errors"
	"fmt"
	"slices"

	"github.com/vskvj3/cursorlist/internal/datastructures"
	"github.com/vskvj3/cursorlist/internal/persistence"
	"github.com/vskvj3/cursorlist/internal/utils"
)

// Mismatch is the first point where the implementation under test diverged
// from the reference, or from what the scenario expects.
type Mismatch struct {
	Scenario string
	Step     int // -1 when not tied to a step
	Op       Op
	Reason   string
}

func (m *Mismatch) Error() string {
	if m.Step < 0 {
		return fmt.Sprintf("scenario %q: %s", m.Scenario, m.Reason)
	}
	return fmt.Sprintf("scenario %q step %d %s: %s", m.Scenario, m.Step, m.Op, m.Reason)
}

// Trace is a failing random scenario as recorded in the trace log.
type Trace struct {
	Seed     uint64   `msgpack:"seed"`
	Scenario Scenario `msgpack:"scenario"`
	Failure  string   `msgpack:"failure"`
}

// Runner drives a reference and an implementation under test in lockstep.
type Runner struct {
	ref    Constructor
	sut    Constructor
	config *utils.Config
	logger *utils.Logger
	traces *persistence.Log[Trace]
}

// NewRunner creates a runner. When config names a trace file, failing random
// scenarios are appended to it.
func NewRunner(ref, sut Constructor, config *utils.Config, logger *utils.Logger) (*Runner, error) {
	if ref == nil || sut == nil {
		return nil, errors.New("reference and implementation constructors are required")
	}
	if config == nil {
		return nil, errors.New("config is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	r := &Runner{ref: ref, sut: sut, config: config, logger: logger}
	if config.TraceFile != "" {
		traces, err := persistence.OpenLog[Trace](config.TraceFile)
		if err != nil {
			return nil, fmt.Errorf("open trace log: %w", err)
		}
		r.traces = traces
	}
	return r, nil
}

// Close releases the trace log, if any.
func (r *Runner) Close() error {
	if r.traces == nil {
		return nil
	}
	return r.traces.Close()
}

func (r *Runner) mismatch(sc Scenario, step int, op Op, format string, args ...any) error {
	m := &Mismatch{Scenario: sc.Name, Step: step, Op: op, Reason: fmt.Sprintf(format, args...)}
	r.logger.Warn(m.Error())
	return m
}

// Run plays one scenario on fresh lists from both constructors.
func (r *Runner) Run(sc Scenario) error {
	r.logger.Debug(fmt.Sprintf("Running scenario %q (%d ops)", sc.Name, len(sc.Ops)))

	ref, sut := r.ref(), r.sut()
	if ref.Len() != 0 {
		return fmt.Errorf("scenario %q: reference constructor returned %s", sc.Name, datastructures.Format(ref))
	}
	if sut.Len() != 0 {
		return r.mismatch(sc, -1, Op{}, "constructor returned %s, want an empty list", datastructures.Format(sut))
	}

	items := slices.Concat(sc.Left, sc.Right)
	if err := Build(ref, len(sc.Left), items...); err != nil {
		return fmt.Errorf("scenario %q: reference: %w", sc.Name, err)
	}
	if err := Build(sut, len(sc.Left), items...); err != nil {
		return r.mismatch(sc, -1, Op{}, "build failed: %v", err)
	}
	if !datastructures.Equal(ref, sut) {
		return r.mismatch(sc, -1, Op{}, "built %s, reference built %s", datastructures.Format(sut), datastructures.Format(ref))
	}

	for i, op := range sc.Ops {
		want, err := Apply(ref, op)
		if err != nil {
			return fmt.Errorf("scenario %q step %d: reference: %w", sc.Name, i, err)
		}
		got, err := Apply(sut, op)
		if err != nil {
			return r.mismatch(sc, i, op, "%v", err)
		}
		if !got.equal(want) {
			return r.mismatch(sc, i, op, "observed %s, reference observed %s", got, want)
		}
		if op.Want != nil && observed(op, got) != *op.Want {
			return r.mismatch(sc, i, op, "observed %q, want %q", observed(op, got), *op.Want)
		}
		if !datastructures.Equal(ref, sut) {
			return r.mismatch(sc, i, op, "state %s, reference state %s", datastructures.Format(sut), datastructures.Format(ref))
		}
	}

	if sc.Want != nil {
		left, right := datastructures.Split(sut)
		if !slices.Equal(left, sc.Want.Left) || !slices.Equal(right, sc.Want.Right) {
			return r.mismatch(sc, -1, Op{}, "final state %s, want (<%q>,<%q>)", datastructures.Format(sut), sc.Want.Left, sc.Want.Right)
		}
	}
	return nil
}

// RunAll plays every scenario and joins the failures.
func (r *Runner) RunAll(scenarios []Scenario) error {
	var errs []error
	for _, sc := range scenarios {
		if err := r.Run(sc); err != nil {
			errs = append(errs, err)
		}
	}
	r.logger.Info(fmt.Sprintf("Ran %d scenarios, %d failed", len(scenarios), len(errs)))
	return errors.Join(errs...)
}

// RunRandom plays RandomRuns random scripts seeded from Seed upwards.
func (r *Runner) RunRandom() error {
	var errs []error
	for i := range r.config.RandomRuns {
		seed := r.config.Seed + uint64(i)
		sc := RandomScript(seed, r.config.RandomSteps)
		err := r.Run(sc)
		if err == nil {
			continue
		}
		errs = append(errs, err)
		if r.traces != nil {
			if terr := r.traces.Append(Trace{Seed: seed, Scenario: sc, Failure: err.Error()}); terr != nil {
				r.logger.Error("Failed to record trace: " + terr.Error())
			}
		}
	}
	r.logger.Info(fmt.Sprintf("Ran %d random scripts of %d steps, %d failed", r.config.RandomRuns, r.config.RandomSteps, len(errs)))
	return errors.Join(errs...)
}

// Check runs the configured scenario file and random scripts against sut.
func Check(ref, sut Constructor, config *utils.Config, logger *utils.Logger) error {
	runner, err := NewRunner(ref, sut, config, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	var scenarios []Scenario
	if config.ScenarioFile != "" {
		scenarios, err = LoadScenarios(config.ScenarioFile)
		if err != nil {
			return fmt.Errorf("load scenarios: %w", err)
		}
	}
	return errors.Join(runner.RunAll(scenarios), runner.RunRandom())
}
