// Package stack provides the LIFO container used as scratch space by the
// converter and the evaluator.
package stack

import "errors"

// ErrEmpty is returned by Pop and Peek on an empty stack.
var ErrEmpty = errors.New("stack is empty")

// Stack is a LIFO container. The zero value is an empty stack ready to use.
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	items []T
}

// New creates an empty stack with room for sizeHint items before it grows.
func New[T any](sizeHint int) *Stack[T] {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Stack[T]{items: make([]T, 0, sizeHint)}
}

// Push places v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if len(s.items) == 0 {
		return zero, ErrEmpty
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return s.items[len(s.items)-1], nil
}

// IsEmpty reports whether the stack holds no items.
func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// Len returns the number of items on the stack.
func (s *Stack[T]) Len() int {
	return len(s.items)
}

// Reset drops every item and releases the backing storage.
func (s *Stack[T]) Reset() {
	s.items = nil
}
