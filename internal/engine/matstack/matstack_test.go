package matstack

import (
	"testing"

	"github.com/Faultbox/durham-house/pkg/math"
)

func TestLIFO(t *testing.T) {
	s := New(2)
	pushed := []math.Mat4{
		math.Translate(1, 0, 0),
		math.Scale(2, 3, 4),
		math.Rotate(45, math.AxisY),
		math.Translate(0, -1, 5),
	}
	for _, m := range pushed {
		s.Push(m)
	}
	if s.Depth() != len(pushed) {
		t.Fatalf("Depth() = %d, want %d", s.Depth(), len(pushed))
	}
	for i := len(pushed) - 1; i >= 0; i-- {
		if got := s.Pop(); got != pushed[i] {
			t.Errorf("pop %d = %v, want %v", len(pushed)-1-i, got, pushed[i])
		}
	}
	if s.Depth() != 0 {
		t.Errorf("Depth() after draining = %d, want 0", s.Depth())
	}
}

func TestPushStoresCopy(t *testing.T) {
	var s Stack
	m := math.Translate(1, 2, 3)
	s.Push(m)
	m[12] = 99
	if got := s.Pop(); got[12] != 1 {
		t.Errorf("stored transform changed with caller's copy: got %f, want 1", got[12])
	}
}

func TestInterleaved(t *testing.T) {
	var s Stack
	a, b, c := math.Translate(1, 0, 0), math.Translate(2, 0, 0), math.Translate(3, 0, 0)
	s.Push(a)
	s.Push(b)
	if got := s.Pop(); got != b {
		t.Errorf("first pop = %v, want %v", got, b)
	}
	s.Push(c)
	if got := s.Pop(); got != c {
		t.Errorf("second pop = %v, want %v", got, c)
	}
	if got := s.Pop(); got != a {
		t.Errorf("third pop = %v, want %v", got, a)
	}
}

func TestPopEmptyPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r != ErrUnderflow {
			t.Errorf("recover() = %v, want %q", r, ErrUnderflow)
		}
	}()
	var s Stack
	s.Pop()
}

func TestPeekAndReset(t *testing.T) {
	s := New(1)
	if _, ok := s.Peek(); ok {
		t.Error("Peek on empty stack should report false")
	}
	s.Push(math.Identity())
	s.Push(math.Scale(2, 2, 2))
	if m, ok := s.Peek(); !ok || m != math.Scale(2, 2, 2) {
		t.Errorf("Peek() = %v, %v", m, ok)
	}
	s.Reset()
	if s.Depth() != 0 {
		t.Errorf("Depth() after Reset = %d, want 0", s.Depth())
	}
}
