package conformance

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vskvj3/cursorlist/internal/datastructures"
	"github.com/vskvj3/cursorlist/internal/persistence"
	"github.com/vskvj3/cursorlist/internal/utils"
)

func reference() datastructures.Sequence[string] {
	return datastructures.NewDequeList[string]()
}

func linked() datastructures.Sequence[string] {
	return datastructures.NewList[string]()
}

// stuckRetreat never moves the cursor back.
type stuckRetreat struct {
	datastructures.Sequence[string]
}

func (stuckRetreat) Retreat() error { return nil }

// frontInsert inserts at the start of the list after a move to finish,
// the way a stale cursor pointer would.
type frontInsert struct {
	datastructures.Sequence[string]
	finished bool
}

func (f *frontInsert) MoveToFinish() {
	f.Sequence.MoveToFinish()
	f.finished = true
}

func (f *frontInsert) AddRightFront(x string) {
	if !f.finished {
		f.Sequence.AddRightFront(x)
		return
	}
	left := f.LeftLength()
	f.Sequence.MoveToStart()
	f.Sequence.AddRightFront(x)
	for range left {
		_ = f.Advance()
	}
}

// nonEmpty starts with an element in it.
func nonEmpty() datastructures.Sequence[string] {
	s := datastructures.NewList[string]()
	s.AddRightFront("leftover")
	return s
}

func newTestRunner(t *testing.T, sut Constructor, config *utils.Config, logs io.Writer) *Runner {
	t.Helper()
	if config == nil {
		config, _ = utils.ParseConfig(nil)
	}
	r, err := NewRunner(reference, sut, config, utils.NewWriterLogger(logs, true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func TestRunFixtureScenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios.yaml")
	require.NoError(t, err)

	r := newTestRunner(t, linked, nil, io.Discard)
	assert.NoError(t, r.RunAll(scenarios))
}

func TestRunDetectsStateDivergence(t *testing.T) {
	var logs bytes.Buffer
	r := newTestRunner(t, func() datastructures.Sequence[string] {
		return stuckRetreat{linked()}
	}, nil, &logs)

	err := r.Run(Scenario{
		Name: "retreat",
		Left: []string{"yellow", "orange", "purple"},
		Ops:  []Op{{Name: OpLeftLength}, {Name: OpRetreat}},
	})

	var m *Mismatch
	require.True(t, errors.As(err, &m), "got %v", err)
	assert.Equal(t, "retreat", m.Scenario)
	assert.Equal(t, 1, m.Step)
	assert.Equal(t, OpRetreat, m.Op.Name)
	assert.Contains(t, logs.String(), "[WARN]")
	assert.Contains(t, logs.String(), "[DEBUG]")
}

func TestRunDetectsStaleCursorInsert(t *testing.T) {
	r := newTestRunner(t, func() datastructures.Sequence[string] {
		return &frontInsert{Sequence: linked()}
	}, nil, io.Discard)

	err := r.Run(Scenario{
		Name: "finish then add",
		Left: []string{"yellow"},
		Ops:  []Op{{Name: OpMoveToFinish}, {Name: OpAddRightFront, Arg: "red"}},
	})

	var m *Mismatch
	require.ErrorAs(t, err, &m)
	assert.Equal(t, 1, m.Step)
	assert.Contains(t, m.Reason, "reference state")
}

func TestRunChecksWantedValues(t *testing.T) {
	r := newTestRunner(t, linked, nil, io.Discard)
	wrong := "blue"

	err := r.Run(Scenario{
		Name:  "wrong want",
		Right: []string{"red"},
		Ops:   []Op{{Name: OpRemoveRightFront, Want: &wrong}},
	})
	var m *Mismatch
	require.ErrorAs(t, err, &m)
	assert.Equal(t, 0, m.Step)

	err = r.Run(Scenario{
		Name:  "wrong final state",
		Right: []string{"red"},
		Want:  &State{Left: []string{"red"}},
	})
	require.ErrorAs(t, err, &m)
	assert.Equal(t, -1, m.Step)
	assert.Contains(t, m.Error(), `scenario "wrong final state"`)
}

func TestRunRejectsNonEmptyConstructor(t *testing.T) {
	r := newTestRunner(t, nonEmpty, nil, io.Discard)

	var m *Mismatch
	require.ErrorAs(t, r.Run(Scenario{Name: "constructor"}), &m)
	assert.Contains(t, m.Reason, "want an empty list")
}

func TestRunUnknownOp(t *testing.T) {
	r := newTestRunner(t, linked, nil, io.Discard)

	err := r.Run(Scenario{Name: "unknown", Ops: []Op{{Name: "flip"}}})
	require.Error(t, err)
	var m *Mismatch
	assert.False(t, errors.As(err, &m))
}

func TestRunRandomRecordsFailingTraces(t *testing.T) {
	config := &utils.Config{
		TraceFile:   filepath.Join(t.TempDir(), "traces", "failures.log"),
		RandomRuns:  20,
		RandomSteps: 80,
		Seed:        3,
	}
	r := newTestRunner(t, func() datastructures.Sequence[string] {
		return stuckRetreat{linked()}
	}, config, io.Discard)

	err := r.RunRandom()
	require.Error(t, err)

	log, err := persistence.OpenLog[Trace](config.TraceFile)
	require.NoError(t, err)
	defer log.Close()
	traces, err := log.Load()
	require.NoError(t, err)
	require.NotEmpty(t, traces)

	for _, trace := range traces {
		assert.Equal(t, RandomScript(trace.Seed, config.RandomSteps), trace.Scenario)
		assert.NotEmpty(t, trace.Failure)
	}
}

func TestRunRandomPassesForLinkedList(t *testing.T) {
	config := &utils.Config{
		TraceFile:   filepath.Join(t.TempDir(), "failures.log"),
		RandomRuns:  50,
		RandomSteps: 100,
		Seed:        11,
	}
	r := newTestRunner(t, linked, config, io.Discard)
	require.NoError(t, r.RunRandom())

	traces, err := r.traces.Load()
	require.NoError(t, err)
	assert.Empty(t, traces)
}

func TestNewRunnerValidation(t *testing.T) {
	config, err := utils.ParseConfig(nil)
	require.NoError(t, err)
	logger := utils.NewWriterLogger(io.Discard, false)

	_, err = NewRunner(nil, linked, config, logger)
	assert.Error(t, err)
	_, err = NewRunner(reference, linked, nil, logger)
	assert.Error(t, err)
	_, err = NewRunner(reference, linked, config, nil)
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	config := &utils.Config{
		ScenarioFile: "testdata/scenarios.yaml",
		RandomRuns:   10,
		RandomSteps:  30,
		Seed:         5,
	}
	logger := utils.NewWriterLogger(io.Discard, false)

	assert.NoError(t, Check(reference, linked, config, logger))
	assert.Error(t, Check(reference, func() datastructures.Sequence[string] {
		return stuckRetreat{linked()}
	}, config, logger))

	config.ScenarioFile = "testdata/missing.yaml"
	assert.ErrorContains(t, Check(reference, linked, config, logger), "load scenarios")
}
