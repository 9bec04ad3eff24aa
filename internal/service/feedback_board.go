package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/feedback"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
)

// FeedbackBoard holds the single visible feedback message and its expiry timer.
// Showing a new message replaces the old one and cancels its timer; an expiry
// only clears the message it was scheduled for.
type FeedbackBoard struct {
	mu        sync.Mutex
	scheduler ports.Scheduler
	current   *feedback.Feedback
	timer     ports.Timer
	onExpire  func()
}

// NewFeedbackBoard builds a board. onExpire, if set, runs after a message
// expires, outside the board's lock.
func NewFeedbackBoard(scheduler ports.Scheduler, onExpire func()) *FeedbackBoard {
	if scheduler == nil {
		panic("Scheduler is required")
	}
	return &FeedbackBoard{scheduler: scheduler, onExpire: onExpire}
}

// Show replaces the current message and schedules its expiry after ttl.
func (b *FeedbackBoard) Show(text string, kind feedback.Kind, surface feedback.Surface, ttl time.Duration) feedback.Feedback {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.stopTimerLocked()
	f := feedback.Feedback{
		ID:        uuid.NewString(),
		Text:      text,
		Kind:      kind,
		Surface:   surface,
		ExpiresAt: b.scheduler.Now().Add(ttl),
	}
	b.current = &f

	id := f.ID
	b.timer = b.scheduler.AfterFunc(ttl, func() {
		if b.expire(id) && b.onExpire != nil {
			b.onExpire()
		}
	})
	return f
}

// Current returns a copy of the visible message, or nil.
func (b *FeedbackBoard) Current() *feedback.Feedback {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return nil
	}
	f := *b.current
	return &f
}

// ClearSurface removes the visible message if it belongs to surface.
func (b *FeedbackBoard) ClearSurface(surface feedback.Surface) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil || b.current.Surface != surface {
		return false
	}
	b.stopTimerLocked()
	b.current = nil
	return true
}

// Reset removes any visible message and cancels its timer.
func (b *FeedbackBoard) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopTimerLocked()
	b.current = nil
}

func (b *FeedbackBoard) expire(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil || b.current.ID != id {
		return false
	}
	b.current = nil
	b.timer = nil
	return true
}

func (b *FeedbackBoard) stopTimerLocked() {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
