// Package conformance checks a two-sided list implementation against a
// reference implementation by driving both through the same operations.
package conformance

import (
	"errors"
	"fmt"

	"github.com/vskvj3/cursorlist/internal/datastructures"
)

// Constructor returns a new empty list.
type Constructor func() datastructures.Sequence[string]

// Build fills the empty sequence s so that its left part is the first
// leftLength args and its right part is the rest. It only uses
// AddRightFront, Advance and MoveToStart.
func Build[T any](s datastructures.Sequence[T], leftLength int, args ...T) error {
	if leftLength < 0 || leftLength > len(args) {
		return fmt.Errorf("build: left length %d outside [0, %d]", leftLength, len(args))
	}
	if s.Len() != 0 {
		return errors.New("build: sequence is not empty")
	}

	for _, arg := range args {
		s.AddRightFront(arg)
		if err := s.Advance(); err != nil {
			return fmt.Errorf("build: %w", err)
		}
	}
	s.MoveToStart()
	for range leftLength {
		if err := s.Advance(); err != nil {
			return fmt.Errorf("build: %w", err)
		}
	}
	return nil
}
