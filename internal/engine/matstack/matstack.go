// Package matstack provides the model-matrix stack used while composing
// a frame: every leaf draw pushes the current transform, draws, and pops.
package matstack

import (
	"github.com/Faultbox/durham-house/pkg/math"
)

// ErrUnderflow is the panic message raised when Pop is called on an
// empty stack. Popping more than was pushed is a caller bug.
const ErrUnderflow = "matstack: pop on empty stack"

// Stack stores copies of transforms in a contiguous arena.
// The zero value is ready to use.
type Stack struct {
	items []math.Mat4
	top   int
}

// New creates a stack with room for capacity transforms before growing.
func New(capacity int) *Stack {
	return &Stack{items: make([]math.Mat4, capacity)}
}

// Push stores a copy of m.
func (s *Stack) Push(m math.Mat4) {
	if s.top == len(s.items) {
		s.items = append(s.items, m)
	} else {
		s.items[s.top] = m
	}
	s.top++
}

// Pop removes and returns the most recently pushed transform.
// It panics if the stack is empty.
func (s *Stack) Pop() math.Mat4 {
	if s.top == 0 {
		panic(ErrUnderflow)
	}
	s.top--
	return s.items[s.top]
}

// Peek returns the most recently pushed transform without removing it.
func (s *Stack) Peek() (math.Mat4, bool) {
	if s.top == 0 {
		return math.Mat4{}, false
	}
	return s.items[s.top-1], true
}

// Depth returns the number of transforms currently stored.
func (s *Stack) Depth() int {
	return s.top
}

// Reset empties the stack, keeping its storage.
func (s *Stack) Reset() {
	s.top = 0
}
