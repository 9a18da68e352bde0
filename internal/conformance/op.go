package conformance

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/vskvj3/cursorlist/internal/datastructures"
)

// Operation names accepted in scenarios.
const (
	OpAddRightFront     = "addRightFront"
	OpRemoveRightFront  = "removeRightFront"
	OpRightFront        = "rightFront"
	OpReplaceRightFront = "replaceRightFront"
	OpAdvance           = "advance"
	OpRetreat           = "retreat"
	OpMoveToStart       = "moveToStart"
	OpMoveToFinish      = "moveToFinish"
	OpLeftLength        = "leftLength"
	OpRightLength       = "rightLength"
	OpClear             = "clear"
	OpIterate           = "iterate"
)

var knownOps = map[string]bool{
	OpAddRightFront:     true,
	OpRemoveRightFront:  true,
	OpRightFront:        true,
	OpReplaceRightFront: true,
	OpAdvance:           true,
	OpRetreat:           true,
	OpMoveToStart:       true,
	OpMoveToFinish:      true,
	OpLeftLength:        true,
	OpRightLength:       true,
	OpClear:             true,
	OpIterate:           true,
}

// Op is one step of a scenario. Arg is the element for addRightFront and
// replaceRightFront. Want, when set, is the expected observed result.
type Op struct {
	Name string  `yaml:"op" msgpack:"op"`
	Arg  string  `yaml:"arg,omitempty" msgpack:"arg,omitempty"`
	Want *string `yaml:"want,omitempty" msgpack:"want,omitempty"`
}

func (o Op) String() string {
	if o.Arg != "" {
		return fmt.Sprintf("%s(%q)", o.Name, o.Arg)
	}
	return o.Name + "()"
}

// Outcome is everything a caller can observe from one step.
type Outcome struct {
	Value     string
	Length    int
	Items     []string
	Violation bool
}

func (o Outcome) equal(p Outcome) bool {
	return o.Value == p.Value &&
		o.Length == p.Length &&
		o.Violation == p.Violation &&
		slices.Equal(o.Items, p.Items)
}

func (o Outcome) String() string {
	return fmt.Sprintf("{value:%q length:%d items:%q violation:%t}", o.Value, o.Length, o.Items, o.Violation)
}

// observed renders the part of out that op.Want is compared against.
func observed(op Op, out Outcome) string {
	switch {
	case out.Violation:
		return "violation"
	case op.Name == OpLeftLength || op.Name == OpRightLength:
		return strconv.Itoa(out.Length)
	case op.Name == OpIterate:
		return strings.Join(out.Items, ",")
	default:
		return out.Value
	}
}

// Apply runs op on s. A precondition violation is reported in the outcome;
// the error is only for unknown ops or unexpected failures.
func Apply(s datastructures.Sequence[string], op Op) (Outcome, error) {
	var (
		out Outcome
		err error
	)
	switch op.Name {
	case OpAddRightFront:
		s.AddRightFront(op.Arg)
	case OpRemoveRightFront:
		out.Value, err = s.RemoveRightFront()
	case OpRightFront:
		out.Value, err = s.RightFront()
	case OpReplaceRightFront:
		out.Value, err = s.ReplaceRightFront(op.Arg)
	case OpAdvance:
		err = s.Advance()
	case OpRetreat:
		err = s.Retreat()
	case OpMoveToStart:
		s.MoveToStart()
	case OpMoveToFinish:
		s.MoveToFinish()
	case OpLeftLength:
		out.Length = s.LeftLength()
	case OpRightLength:
		out.Length = s.RightLength()
	case OpClear:
		s.Clear()
	case OpIterate:
		out.Items = slices.Collect(s.All())
	default:
		return out, fmt.Errorf("unknown op %q", op.Name)
	}

	if err != nil {
		if !errors.Is(err, datastructures.ErrPreconditionViolation) {
			return out, err
		}
		out.Violation = true
	}
	return out, nil
}
