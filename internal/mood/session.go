package mood

import (
	"context"
	"moodmeter/internal/model"
	"sync"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSettled
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSettled:
		return "settled"
	default:
		return "idle"
	}
}

type Checker interface {
	Check(ctx context.Context, country string) model.MoodReport
}

type Snapshot struct {
	State   State
	Country string
	Report  *model.MoodReport
	Color   string
}

// Stale reports whether the displayed report belongs to an earlier selection.
func (s Snapshot) Stale() bool {
	return s.Report != nil && s.Report.Country != s.Country
}

// Session holds the selection state of one viewer.
//
// A new selection never cancels the chain already in flight. Every chain
// writes its report when it finishes, so whichever settles last is shown,
// even if it was started first. Snapshot.Stale exposes that case.
type Session struct {
	checker  Checker
	onSettle func(Snapshot)

	mu      sync.Mutex
	state   State
	country string
	report  *model.MoodReport

	wg sync.WaitGroup
}

func NewSession(checker Checker, onSettle func(Snapshot)) *Session {
	return &Session{checker: checker, onSettle: onSettle}
}

// Select switches to Loading for country and starts its lookup chain.
func (s *Session) Select(ctx context.Context, country string) {
	s.mu.Lock()
	s.state = StateLoading
	s.country = country
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		report := s.checker.Check(ctx, country)

		s.mu.Lock()
		s.state = StateSettled
		s.report = &report
		snap := s.snapshotLocked()
		s.mu.Unlock()

		if s.onSettle != nil {
			s.onSettle(snap)
		}
	}()
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Wait blocks until every chain started so far has settled.
func (s *Session) Wait() {
	s.wg.Wait()
}

func (s *Session) snapshotLocked() Snapshot {
	snap := Snapshot{
		State:   s.state,
		Country: s.country,
		Color:   model.ColorFor(""),
	}

	if s.report != nil {
		r := *s.report
		snap.Report = &r
		snap.Color = model.ColorFor(r.Mood.Mood)
	}

	return snap
}
