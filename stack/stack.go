// Package stack implements a fixed-capacity Last-In-First-Out (LIFO) container with explicit overflow and underflow reporting.
package stack

import (
	"errors"
	"fmt"
)

// DefaultCapacity is the capacity used for character stacks and input buffers unless configured otherwise.
const DefaultCapacity = 100

// MaxCapacity is the largest capacity accepted from configuration and the command line.
const MaxCapacity = 1 << 20

var (
	// ErrOverflow is returned by Push when the stack already holds Cap elements.
	ErrOverflow = errors.New("stack overflow")

	// ErrUnderflow is returned by Pop and Peek when the stack is empty.
	ErrUnderflow = errors.New("stack underflow")

	// ErrCapacity is returned by CheckCapacity for capacities outside [0, MaxCapacity].
	ErrCapacity = errors.New("capacity out of range")
)

// Bounded is a LIFO stack over a buffer allocated once at construction.
// The zero value is an empty stack with capacity 0.
type Bounded[T any] struct {
	items []T
	// count is both the number of live elements and the index of the next free slot.
	count int
}

// Chars is the character instantiation used by the palindrome checker.
type Chars = Bounded[rune]

// Ints is the integer instantiation.
type Ints = Bounded[int]

// CheckCapacity reports whether capacity can back a stack.
func CheckCapacity(capacity int) error {
	if capacity < 0 || capacity > MaxCapacity {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrCapacity, capacity, MaxCapacity)
	}
	return nil
}

// New allocates an empty stack able to hold capacity elements.
// A capacity rejected by CheckCapacity is a programming error and panics.
func New[T any](capacity int) *Bounded[T] {
	if err := CheckCapacity(capacity); err != nil {
		panic("stack: " + err.Error())
	}
	return &Bounded[T]{items: make([]T, capacity)}
}

// Init logically discards all elements. The underlying buffer is not zeroed.
func (s *Bounded[T]) Init() {
	s.count = 0
}

// IsEmpty reports whether the stack holds no elements.
func (s *Bounded[T]) IsEmpty() bool {
	return s.count == 0
}

// IsFull reports whether a subsequent Push would overflow.
func (s *Bounded[T]) IsFull() bool {
	return s.count == len(s.items)
}

// Len returns the number of live elements.
func (s *Bounded[T]) Len() int {
	return s.count
}

// Cap returns the fixed capacity.
func (s *Bounded[T]) Cap() int {
	return len(s.items)
}

// Push places value on top of the stack. On overflow the stack is left unchanged.
func (s *Bounded[T]) Push(value T) error {
	if s.IsFull() {
		return fmt.Errorf("%w: capacity %d reached", ErrOverflow, len(s.items))
	}
	s.items[s.count] = value
	s.count++
	return nil
}

// Pop removes and returns the topmost element.
func (s *Bounded[T]) Pop() (item T, err error) {
	if s.IsEmpty() {
		return item, ErrUnderflow
	}
	s.count--
	return s.items[s.count], nil
}

// Peek returns the topmost element without removing it.
func (s *Bounded[T]) Peek() (item T, err error) {
	if s.IsEmpty() {
		return item, ErrUnderflow
	}
	return s.items[s.count-1], nil
}

// Values returns a copy of the live elements ordered from bottom to top.
func (s *Bounded[T]) Values() []T {
	values := make([]T, s.count)
	copy(values, s.items[:s.count])
	return values
}
