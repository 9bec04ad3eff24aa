package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/feedback"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/testutil"
)

func TestFeedbackBoard_ExpiresAfterTTL(t *testing.T) {
	sched := testutil.NewManualScheduler(testutil.TestTime())
	expired := 0
	b := NewFeedbackBoard(sched, func() { expired++ })

	f := b.Show("Signed up", feedback.KindSuccess, feedback.SurfaceMain, 5*time.Second)
	assert.Equal(t, testutil.TestTime().Add(5*time.Second), f.ExpiresAt)
	require.NotNil(t, b.Current())
	assert.Equal(t, f.ID, b.Current().ID)

	sched.Advance(4 * time.Second)
	require.NotNil(t, b.Current())
	assert.Equal(t, 0, expired)

	sched.Advance(time.Second)
	assert.Nil(t, b.Current())
	assert.Equal(t, 1, expired)
}

func TestFeedbackBoard_NewerMessageSurvivesOlderTimer(t *testing.T) {
	sched := testutil.NewManualScheduler(testutil.TestTime())
	expired := 0
	b := NewFeedbackBoard(sched, func() { expired++ })

	first := b.Show("first", feedback.KindError, feedback.SurfaceMain, 5*time.Second)
	sched.Advance(3 * time.Second)
	second := b.Show("second", feedback.KindSuccess, feedback.SurfaceMain, 5*time.Second)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, sched.Pending(), "replaced message's timer is cancelled")

	// The first message's deadline passes; the second stays.
	sched.Advance(2 * time.Second)
	require.NotNil(t, b.Current())
	assert.Equal(t, "second", b.Current().Text)
	assert.Equal(t, 0, expired)

	sched.Advance(3 * time.Second)
	assert.Nil(t, b.Current())
	assert.Equal(t, 1, expired)
}

func TestFeedbackBoard_StaleExpiryIgnored(t *testing.T) {
	sched := testutil.NewManualScheduler(testutil.TestTime())
	b := NewFeedbackBoard(sched, nil)

	first := b.Show("first", feedback.KindError, feedback.SurfaceMain, time.Second)
	b.Show("second", feedback.KindError, feedback.SurfaceMain, time.Second)

	assert.False(t, b.expire(first.ID))
	require.NotNil(t, b.Current())
	assert.Equal(t, "second", b.Current().Text)
}

func TestFeedbackBoard_RepeatedIdenticalOutcomesShowOne(t *testing.T) {
	sched := testutil.NewManualScheduler(testutil.TestTime())
	b := NewFeedbackBoard(sched, nil)

	for i := 0; i < 3; i++ {
		b.Show("Activity full", feedback.KindError, feedback.SurfaceMain, 5*time.Second)
		sched.Advance(time.Second)
	}
	assert.Equal(t, 1, sched.Pending())
	require.NotNil(t, b.Current())

	sched.Advance(5 * time.Second)
	assert.Nil(t, b.Current())
	assert.Equal(t, 0, sched.Pending())
}

func TestFeedbackBoard_ClearSurface(t *testing.T) {
	sched := testutil.NewManualScheduler(testutil.TestTime())
	b := NewFeedbackBoard(sched, nil)

	b.Show("Invalid username or password", feedback.KindError, feedback.SurfaceLogin, 3*time.Second)
	assert.False(t, b.ClearSurface(feedback.SurfaceMain))
	require.NotNil(t, b.Current())

	assert.True(t, b.ClearSurface(feedback.SurfaceLogin))
	assert.Nil(t, b.Current())
	assert.Equal(t, 0, sched.Pending())
}

func TestFeedbackBoard_Reset(t *testing.T) {
	sched := testutil.NewManualScheduler(testutil.TestTime())
	b := NewFeedbackBoard(sched, nil)
	b.Show("x", feedback.KindSuccess, feedback.SurfaceMain, time.Second)

	b.Reset()
	assert.Nil(t, b.Current())
	assert.Equal(t, 0, sched.Pending())
}

func TestNewFeedbackBoard_RequiresScheduler(t *testing.T) {
	assert.Panics(t, func() { NewFeedbackBoard(nil, nil) })
}
