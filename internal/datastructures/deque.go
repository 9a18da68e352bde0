package datastructures

import (
	"errors"
	"iter"
)

// ErrDequeEmpty is returned when popping or peeking an empty deque.
var ErrDequeEmpty = errors.New("deque is empty")

const minDequeCapacity = 8

// Deque represents a double-ended queue on a growable ring buffer.
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	data []T
	size int
	head int
}

// NewDeque creates a new Deque with room for capacity elements before it grows.
func NewDeque[T any](capacity int) *Deque[T] {
	if capacity < 0 {
		panic("capacity must not be negative")
	}
	return &Deque[T]{data: make([]T, capacity)}
}

// grow doubles the buffer and lays the elements out from index 0.
func (d *Deque[T]) grow() {
	capacity := max(2*len(d.data), minDequeCapacity)
	data := make([]T, capacity)
	for i := range d.size {
		data[i] = d.data[(d.head+i)%len(d.data)]
	}
	d.data = data
	d.head = 0
}

// PushFront adds an element to the front of the deque.
func (d *Deque[T]) PushFront(value T) {
	if d.size == len(d.data) {
		d.grow()
	}
	d.head = (d.head - 1 + len(d.data)) % len(d.data)
	d.data[d.head] = value
	d.size++
}

// PushBack adds an element to the back of the deque.
func (d *Deque[T]) PushBack(value T) {
	if d.size == len(d.data) {
		d.grow()
	}
	d.data[(d.head+d.size)%len(d.data)] = value
	d.size++
}

// PopFront removes an element from the front of the deque.
func (d *Deque[T]) PopFront() (T, error) {
	var zeroValue T
	if d.size == 0 {
		return zeroValue, ErrDequeEmpty
	}
	value := d.data[d.head]
	d.data[d.head] = zeroValue
	d.head = (d.head + 1) % len(d.data)
	d.size--
	return value, nil
}

// PopBack removes an element from the back of the deque.
func (d *Deque[T]) PopBack() (T, error) {
	var zeroValue T
	if d.size == 0 {
		return zeroValue, ErrDequeEmpty
	}
	tail := (d.head + d.size - 1) % len(d.data)
	value := d.data[tail]
	d.data[tail] = zeroValue
	d.size--
	return value, nil
}

// Front returns the element at the front of the deque.
func (d *Deque[T]) Front() (T, error) {
	if d.size == 0 {
		var zeroValue T
		return zeroValue, ErrDequeEmpty
	}
	return d.data[d.head], nil
}

// Back returns the element at the back of the deque.
func (d *Deque[T]) Back() (T, error) {
	if d.size == 0 {
		var zeroValue T
		return zeroValue, ErrDequeEmpty
	}
	return d.data[(d.head+d.size-1)%len(d.data)], nil
}

// At returns the i-th element counting from the front. It panics if i is out of range.
func (d *Deque[T]) At(i int) T {
	if i < 0 || i >= d.size {
		panic("deque index out of range")
	}
	return d.data[(d.head+i)%len(d.data)]
}

// SetFront overwrites the element at the front of the deque.
func (d *Deque[T]) SetFront(value T) error {
	if d.size == 0 {
		return ErrDequeEmpty
	}
	d.data[d.head] = value
	return nil
}

// Size returns the number of elements in the deque.
func (d *Deque[T]) Size() int {
	return d.size
}

// Empty checks if the deque is empty.
func (d *Deque[T]) Empty() bool {
	return d.size == 0
}

// Clear removes all elements, keeping the buffer.
func (d *Deque[T]) Clear() {
	clear(d.data)
	d.head = 0
	d.size = 0
}

// All yields the elements front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range d.size {
			if !yield(d.data[(d.head+i)%len(d.data)]) {
				return
			}
		}
	}
}
