package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/lemonberrylabs/stackcalc/pkg/calc"
)

func TestRecordSuccessAndFailure(t *testing.T) {
	s := New(10)
	c := calc.New(calc.Quirks{})

	res, err := c.EvalString("2 + 3 * 4")
	ok := s.Record("2 + 3 * 4", res, err)
	if ok.State != EvaluationSucceeded || ok.Result == nil || *ok.Result != 14 {
		t.Fatalf("unexpected success record %+v", ok)
	}
	if ok.Postfix != "2 3 4 * +" {
		t.Errorf("postfix: got %q", ok.Postfix)
	}

	res, err = c.EvalString("1 / 0")
	failed := s.Record("1 / 0", res, err)
	if failed.State != EvaluationFailed || failed.Result != nil {
		t.Fatalf("unexpected failure record %+v", failed)
	}
	if failed.Error.Kind != calc.KindDivisionByZero {
		t.Errorf("kind: got %q", failed.Error.Kind)
	}

	got, err := s.Get(failed.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != failed {
		t.Error("Get returned a different record")
	}
}

func TestRecordPlainError(t *testing.T) {
	s := New(1)
	ev := s.Record("x", calc.Result{}, errors.New("boom"))
	if ev.Error == nil || ev.Error.Kind != "" || ev.Error.Message != "boom" {
		t.Errorf("unexpected error %+v", ev.Error)
	}
}

func TestListOrderAndEviction(t *testing.T) {
	s := New(3)
	for i := 0; i < 5; i++ {
		s.Record(fmt.Sprintf("%d", i), calc.Result{Value: int64(i)}, nil)
	}

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 evaluations, got %d", len(list))
	}
	for i, ev := range list {
		if want := fmt.Sprintf("%d", i+2); ev.Expression != want {
			t.Errorf("position %d: got %q, want %q", i, ev.Expression, want)
		}
	}
	if _, err := s.Get("eval-1"); err == nil {
		t.Error("expected oldest evaluation to be evicted")
	}
}

func TestZeroLimitKeepsNothing(t *testing.T) {
	s := New(0)
	ev := s.Record("1", calc.Result{Value: 1}, nil)
	if ev.ID == "" {
		t.Error("record should still get an ID")
	}
	if len(s.List()) != 0 {
		t.Error("expected empty history")
	}
}

func TestConcurrentRecord(t *testing.T) {
	s := New(1000)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Record("1 + 1", calc.Result{Value: 2}, nil)
		}()
	}
	wg.Wait()

	seen := make(map[string]bool)
	for _, ev := range s.List() {
		if seen[ev.ID] {
			t.Fatalf("duplicate ID %s", ev.ID)
		}
		seen[ev.ID] = true
	}
	if len(seen) != 50 {
		t.Errorf("expected 50 evaluations, got %d", len(seen))
	}
}
