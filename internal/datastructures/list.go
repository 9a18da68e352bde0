package datastructures

import "iter"

type (
	// List is a two-sided list backed by a doubly linked list.
	// The zero value is an empty list ready to use.
	List[T any] struct {
		head     *node[T] // sentinel before the first element
		tail     *node[T] // sentinel after the last element
		lastLeft *node[T] // last node of the left part, or head
		left     int
		right    int
	}

	// node represents an element in the doubly linked list.
	node[T any] struct {
		value T
		prev  *node[T]
		next  *node[T]
	}
)

// NewList creates a new empty list.
func NewList[T any]() *List[T] {
	return new(List[T]).init()
}

func (l *List[T]) init() *List[T] {
	l.head = &node[T]{}
	l.tail = &node[T]{prev: l.head}
	l.head.next = l.tail
	l.lastLeft = l.head
	l.left = 0
	l.right = 0
	return l
}

func (l *List[T]) lazyInit() {
	if l.head == nil {
		l.init()
	}
}

// AddRightFront inserts value right after the cursor.
func (l *List[T]) AddRightFront(value T) {
	l.lazyInit()
	n := &node[T]{value: value, prev: l.lastLeft, next: l.lastLeft.next}
	n.prev.next = n
	n.next.prev = n
	l.right++
}

// RemoveRightFront unlinks and returns the node right after the cursor.
func (l *List[T]) RemoveRightFront() (T, error) {
	if l.right == 0 {
		var zeroValue T
		return zeroValue, violation("RemoveRightFront", "a non-empty right side")
	}
	n := l.lastLeft.next
	l.lastLeft.next = n.next
	n.next.prev = l.lastLeft
	n.prev, n.next = nil, nil
	l.right--
	return n.value, nil
}

// RightFront returns the value right after the cursor.
func (l *List[T]) RightFront() (T, error) {
	if l.right == 0 {
		var zeroValue T
		return zeroValue, violation("RightFront", "a non-empty right side")
	}
	return l.lastLeft.next.value, nil
}

// ReplaceRightFront overwrites the value right after the cursor and returns the old one.
func (l *List[T]) ReplaceRightFront(value T) (T, error) {
	if l.right == 0 {
		var zeroValue T
		return zeroValue, violation("ReplaceRightFront", "a non-empty right side")
	}
	n := l.lastLeft.next
	old := n.value
	n.value = value
	return old, nil
}

// Advance moves the cursor past the next element.
func (l *List[T]) Advance() error {
	if l.right == 0 {
		return violation("Advance", "a non-empty right side")
	}
	l.lastLeft = l.lastLeft.next
	l.left++
	l.right--
	return nil
}

// Retreat moves the cursor back over the previous element.
func (l *List[T]) Retreat() error {
	if l.left == 0 {
		return violation("Retreat", "a non-empty left side")
	}
	l.lastLeft = l.lastLeft.prev
	l.left--
	l.right++
	return nil
}

// MoveToStart puts the cursor before the first element.
func (l *List[T]) MoveToStart() {
	l.lazyInit()
	l.lastLeft = l.head
	l.right += l.left
	l.left = 0
}

// MoveToFinish puts the cursor after the last element.
func (l *List[T]) MoveToFinish() {
	l.lazyInit()
	// Always re-derived from the tail sentinel, so a later AddRightFront
	// lands at the end even when the list was empty.
	l.lastLeft = l.tail.prev
	l.left += l.right
	l.right = 0
}

// LeftLength returns the number of elements before the cursor.
func (l *List[T]) LeftLength() int {
	return l.left
}

// RightLength returns the number of elements after the cursor.
func (l *List[T]) RightLength() int {
	return l.right
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.left + l.right
}

// Clear removes all elements from the list.
func (l *List[T]) Clear() {
	l.init()
}

// All yields every value front to back. The sequence can be ranged over
// any number of times.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if l.head == nil {
			return
		}
		for n := l.head.next; n != l.tail; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

func (l *List[T]) String() string {
	return Format[T](l)
}
