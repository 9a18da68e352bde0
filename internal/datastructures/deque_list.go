package datastructures

import "iter"

// DequeList is the reference two-sided list. The left part is a deque whose
// back sits at the cursor and the right part is a deque whose front does.
// The zero value is an empty list ready to use.
type DequeList[T any] struct {
	left  Deque[T]
	right Deque[T]
}

// NewDequeList creates a new empty reference list.
func NewDequeList[T any]() *DequeList[T] {
	return &DequeList[T]{}
}

func (l *DequeList[T]) AddRightFront(value T) {
	l.right.PushFront(value)
}

func (l *DequeList[T]) RemoveRightFront() (T, error) {
	if l.right.Empty() {
		var zeroValue T
		return zeroValue, violation("RemoveRightFront", "a non-empty right side")
	}
	return l.right.PopFront()
}

func (l *DequeList[T]) RightFront() (T, error) {
	if l.right.Empty() {
		var zeroValue T
		return zeroValue, violation("RightFront", "a non-empty right side")
	}
	return l.right.Front()
}

func (l *DequeList[T]) ReplaceRightFront(value T) (T, error) {
	if l.right.Empty() {
		var zeroValue T
		return zeroValue, violation("ReplaceRightFront", "a non-empty right side")
	}
	old, _ := l.right.Front()
	return old, l.right.SetFront(value)
}

func (l *DequeList[T]) Advance() error {
	if l.right.Empty() {
		return violation("Advance", "a non-empty right side")
	}
	value, err := l.right.PopFront()
	if err != nil {
		return err
	}
	l.left.PushBack(value)
	return nil
}

func (l *DequeList[T]) Retreat() error {
	if l.left.Empty() {
		return violation("Retreat", "a non-empty left side")
	}
	value, err := l.left.PopBack()
	if err != nil {
		return err
	}
	l.right.PushFront(value)
	return nil
}

func (l *DequeList[T]) MoveToStart() {
	for !l.left.Empty() {
		value, _ := l.left.PopBack()
		l.right.PushFront(value)
	}
}

func (l *DequeList[T]) MoveToFinish() {
	for !l.right.Empty() {
		value, _ := l.right.PopFront()
		l.left.PushBack(value)
	}
}

func (l *DequeList[T]) LeftLength() int {
	return l.left.Size()
}

func (l *DequeList[T]) RightLength() int {
	return l.right.Size()
}

func (l *DequeList[T]) Len() int {
	return l.left.Size() + l.right.Size()
}

func (l *DequeList[T]) Clear() {
	l.left.Clear()
	l.right.Clear()
}

func (l *DequeList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for value := range l.left.All() {
			if !yield(value) {
				return
			}
		}
		for value := range l.right.All() {
			if !yield(value) {
				return
			}
		}
	}
}

func (l *DequeList[T]) String() string {
	return Format[T](l)
}
