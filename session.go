package airdropscout

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
)

// MinAddressLength is the shortest trimmed input Session accepts, exclusive.
const MinAddressLength = 10

// State is the position of a Session in the analysis lifecycle.
type State string

const (
	StateIdle        State = "idle"
	StateRequesting  State = "requesting"
	StateSuccess     State = "success"
	StateSoftFailure State = "soft_failure"
	StateHardFailure State = "hard_failure"
)

// Session is the input layer in front of an Analyzer. It allows a single
// analysis in flight: a submit while busy is rejected, not queued.
type Session struct {
	analyzer *Analyzer
	busy     atomic.Bool

	mu    sync.RWMutex
	state State
}

// NewSession constructs an idle session.
func NewSession(analyzer *Analyzer) *Session {
	return &Session{analyzer: analyzer, state: StateIdle}
}

// Analyzer returns the analyzer behind the session.
func (s *Session) Analyzer() *Analyzer {
	return s.analyzer
}

// State returns the state reached by the last submit.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Busy reports whether an analysis is in flight.
func (s *Session) Busy() bool {
	return s.busy.Load()
}

// Submit trims address and runs one analysis. It returns ErrAddressTooShort
// for short input and ErrBusy while another submit is running; neither
// changes the state.
func (s *Session) Submit(ctx context.Context, address string) (*SearchResult, Outcome, error) {
	address = strings.TrimSpace(address)
	if len(address) <= MinAddressLength {
		return nil, "", ErrAddressTooShort
	}
	if !s.busy.CompareAndSwap(false, true) {
		return nil, "", ErrBusy
	}
	defer s.busy.Store(false)

	s.setState(StateRequesting)
	result, outcome, err := s.analyzer.AnalyzeWithOutcome(ctx, address)
	switch outcome {
	case OutcomeSuccess:
		s.setState(StateSuccess)
	case OutcomeSoftFailure:
		s.setState(StateSoftFailure)
	default:
		s.setState(StateHardFailure)
	}
	return result, outcome, err
}

func (s *Session) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
