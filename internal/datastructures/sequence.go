package datastructures

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ErrPreconditionViolation is returned when an operation is called outside
// the state its contract requires. Nothing is mutated when it is returned.
var ErrPreconditionViolation = errors.New("precondition violation")

// Sequence is a two-sided list: an ordered sequence split at a cursor into a
// left part and a right part.
//
// Implementations are not safe for concurrent use. Mutating a sequence while
// ranging over All is not allowed.
type Sequence[T any] interface {
	// AddRightFront inserts x immediately after the cursor.
	AddRightFront(x T)
	// RemoveRightFront removes and returns the first element of the right part.
	RemoveRightFront() (T, error)
	// RightFront returns the first element of the right part.
	RightFront() (T, error)
	// ReplaceRightFront swaps x in as the first element of the right part and
	// returns the element it replaced.
	ReplaceRightFront(x T) (T, error)
	// Advance moves the cursor one element to the right.
	Advance() error
	// Retreat moves the cursor one element to the left.
	Retreat() error
	// MoveToStart moves the cursor before the first element.
	MoveToStart()
	// MoveToFinish moves the cursor after the last element.
	MoveToFinish()
	LeftLength() int
	RightLength() int
	Len() int
	// Clear resets the sequence to empty.
	Clear()
	// All yields the left part then the right part, front to back.
	All() iter.Seq[T]
}

func violation(op, requirement string) error {
	return fmt.Errorf("%w: %s requires %s", ErrPreconditionViolation, op, requirement)
}

// Split returns copies of the left and right parts of s.
func Split[T any](s Sequence[T]) (left, right []T) {
	all := slices.Collect(s.All())
	if all == nil {
		all = []T{}
	}
	n := s.LeftLength()
	return all[:n:n], all[n:]
}

// Equal reports whether a and b hold the same left part and the same right part.
func Equal[T comparable](a, b Sequence[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[T any](a, b Sequence[T], eq func(T, T) bool) bool {
	if a.LeftLength() != b.LeftLength() || a.RightLength() != b.RightLength() {
		return false
	}
	next, stop := iter.Pull(b.All())
	defer stop()
	for x := range a.All() {
		y, ok := next()
		if !ok || !eq(x, y) {
			return false
		}
	}
	return true
}

// Format renders s as (<l1,l2>,<r1,r2>).
func Format[T any](s Sequence[T]) string {
	left, right := Split(s)
	var b strings.Builder
	b.WriteString("(<")
	writeJoined(&b, left)
	b.WriteString(">,<")
	writeJoined(&b, right)
	b.WriteString(">)")
	return b.String()
}

func writeJoined[T any](b *strings.Builder, items []T) {
	for i, item := range items {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(b, item)
	}
}
