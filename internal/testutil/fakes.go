package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/viewmodel"
)

// ManualScheduler is a ports.Scheduler whose clock only moves on Advance.
type ManualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

var _ ports.Scheduler = (*ManualScheduler)(nil)

type manualTimer struct {
	s       *ManualScheduler
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

// NewManualScheduler returns a scheduler starting at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{now: start}
}

// Now returns the scheduler's current time.
func (s *ManualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// AfterFunc registers f to run once the clock has advanced by d.
func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) ports.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{s: s, at: s.now.Add(d), fn: f}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward and runs due callbacks in deadline order.
// Callbacks run without the scheduler lock held.
func (s *ManualScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	s.now = s.now.Add(d)
	var due []*manualTimer
	remaining := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case t.stopped:
		case !t.at.After(s.now):
			t.fired = true
			due = append(due, t)
		default:
			remaining = append(remaining, t)
		}
	}
	s.timers = remaining
	s.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool { return due[i].at.Before(due[j].at) })
	for _, t := range due {
		t.fn()
	}
}

// Pending returns the number of timers that have neither fired nor been stopped.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (t *manualTimer) Stop() bool {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// RecordingView keeps every rendered page.
type RecordingView struct {
	mu    sync.Mutex
	pages []viewmodel.Page
}

var _ ports.View = (*RecordingView)(nil)

// Render implements ports.View.
func (v *RecordingView) Render(page viewmodel.Page) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.pages = append(v.pages, page)
}

// Last returns the most recent page, or a zero page if nothing was rendered.
func (v *RecordingView) Last() viewmodel.Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.pages) == 0 {
		return viewmodel.Page{}
	}
	return v.pages[len(v.pages)-1]
}

// Count returns the number of renders.
func (v *RecordingView) Count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pages)
}

// Pages returns a copy of every rendered page in order.
func (v *RecordingView) Pages() []viewmodel.Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]viewmodel.Page(nil), v.pages...)
}
