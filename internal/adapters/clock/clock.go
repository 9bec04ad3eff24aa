// Package clock adapts the wall clock to ports.Scheduler.
package clock

import (
	"time"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
)

// System schedules callbacks with time.AfterFunc.
type System struct{}

var _ ports.Scheduler = System{}

// Now returns the current time.
func (System) Now() time.Time { return time.Now() }

// AfterFunc runs f in its own goroutine after d.
func (System) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}
