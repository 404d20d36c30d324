// Package store provides in-memory history of evaluations served over the
// network APIs.
package store

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lemonberrylabs/stackcalc/pkg/calc"
)

// EvaluationState represents the outcome of a stored evaluation.
type EvaluationState string

const (
	EvaluationSucceeded EvaluationState = "SUCCEEDED"
	EvaluationFailed    EvaluationState = "FAILED"
)

// Evaluation is one recorded expression and its outcome.
type Evaluation struct {
	ID         string           `json:"id"`
	Expression string           `json:"expression"`
	Postfix    string           `json:"postfix,omitempty"`
	State      EvaluationState  `json:"state"`
	Result     *int64           `json:"result,omitempty"`
	Error      *EvaluationError `json:"error,omitempty"`
	CreateTime time.Time        `json:"createTime"`
}

// EvaluationError describes why an evaluation failed.
type EvaluationError struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Pos     int    `json:"position,omitempty"`
}

// Store is a thread-safe, bounded in-memory history. When full, the oldest
// evaluation is dropped.
type Store struct {
	mu          sync.RWMutex
	evaluations map[string]*Evaluation
	order       []string
	limit       int

	// Counter for generating unique IDs
	counter int64
}

// New creates an empty store that keeps at most limit evaluations.
func New(limit int) *Store {
	if limit < 0 {
		limit = 0
	}
	return &Store{
		evaluations: make(map[string]*Evaluation),
		limit:       limit,
	}
}

// Record stores the outcome of evaluating expr. res and err are what
// calc.Calculator returned for it.
func (s *Store) Record(expr string, res calc.Result, err error) *Evaluation {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	ev := &Evaluation{
		ID:         fmt.Sprintf("eval-%d", s.counter),
		Expression: expr,
		CreateTime: time.Now(),
	}
	if res.Postfix != nil {
		ev.Postfix = res.Postfix.String()
	}
	if err != nil {
		ev.State = EvaluationFailed
		ev.Error = newEvaluationError(err)
	} else {
		v := res.Value
		ev.State = EvaluationSucceeded
		ev.Result = &v
	}

	if s.limit == 0 {
		return ev
	}
	s.evaluations[ev.ID] = ev
	s.order = append(s.order, ev.ID)
	for len(s.order) > s.limit {
		delete(s.evaluations, s.order[0])
		s.order = s.order[1:]
	}
	return ev
}

// Get retrieves an evaluation by ID.
func (s *Store) Get(id string) (*Evaluation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ev, ok := s.evaluations[id]
	if !ok {
		return nil, fmt.Errorf("evaluation '%s' not found", id)
	}
	return ev, nil
}

// List returns the stored evaluations, oldest first.
func (s *Store) List() []*Evaluation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Evaluation, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.evaluations[id])
	}
	return result
}

func newEvaluationError(err error) *EvaluationError {
	var ce *calc.Error
	if errors.As(err, &ce) {
		return &EvaluationError{Kind: ce.Kind, Message: ce.Message, Pos: ce.Pos}
	}
	return &EvaluationError{Message: err.Error()}
}
