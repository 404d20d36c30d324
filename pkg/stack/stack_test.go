package stack

import (
	"errors"
	"testing"
)

func TestPushPopOrder(t *testing.T) {
	s := New[int](4)
	for i := 1; i <= 5; i++ {
		s.Push(i)
	}
	if s.Len() != 5 {
		t.Fatalf("expected 5 items, got %d", s.Len())
	}
	for want := 5; want >= 1; want-- {
		got, err := s.Pop()
		if err != nil {
			t.Fatalf("pop: %v", err)
		}
		if got != want {
			t.Errorf("got %d, want %d", got, want)
		}
	}
	if !s.IsEmpty() {
		t.Error("expected stack to be empty")
	}
}

func TestPeekDoesNotRemove(t *testing.T) {
	var s Stack[string]
	s.Push("a")
	s.Push("b")

	top, err := s.Peek()
	if err != nil {
		t.Fatalf("peek: %v", err)
	}
	if top != "b" {
		t.Errorf("got %q, want %q", top, "b")
	}
	if s.Len() != 2 {
		t.Errorf("peek changed length to %d", s.Len())
	}
}

func TestEmptyStackErrors(t *testing.T) {
	s := New[int](0)
	if _, err := s.Pop(); !errors.Is(err, ErrEmpty) {
		t.Errorf("pop on empty: got %v, want ErrEmpty", err)
	}
	if _, err := s.Peek(); !errors.Is(err, ErrEmpty) {
		t.Errorf("peek on empty: got %v, want ErrEmpty", err)
	}
}

func TestReset(t *testing.T) {
	s := New[int](-1)
	s.Push(1)
	s.Push(2)
	s.Reset()
	if !s.IsEmpty() {
		t.Fatal("expected empty stack after Reset")
	}
	s.Push(3)
	if v, _ := s.Pop(); v != 3 {
		t.Errorf("stack unusable after Reset, popped %d", v)
	}
}
