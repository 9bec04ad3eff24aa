package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/auth"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/roster"
	apperrors "github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/errors"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/mocks"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/viewmodel"
)

func chessRoster(participants ...string) roster.Roster {
	return roster.Roster{Activities: []roster.Activity{
		{Name: "Chess Club", MaxParticipants: 2, Participants: participants},
		{Name: "Art Club", MaxParticipants: 4, Participants: []string{}},
	}}
}

func TestRosterSynchronizer_FetchAndRender(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockRosterAPI(ctrl)
	tel, rec, _ := newTestTelemetry()
	s := NewRosterSynchronizer(RosterSynchronizerOptions{API: api, Telemetry: tel})

	api.EXPECT().ListActivities(gomock.Any()).Return(chessRoster("a@x", "b@x", "c@x"), nil)

	f := s.Fetch(context.Background())
	require.NoError(t, f.Err)
	assert.True(t, s.IsCurrent(f.Seq))

	view := s.Render(f, auth.Session{Authenticated: true, Username: "jdoe"})
	require.Len(t, view.Activities, 2)
	assert.Equal(t, -1, view.Activities[0].SpotsLeft)
	assert.True(t, view.Activities[0].Participants[0].CanRemove)
	assert.Equal(t, []string{"success"}, resultTags(rec, "refresh"))
}

func TestRosterSynchronizer_FailureRendersErrorView(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockRosterAPI(ctrl)
	tel, _, diags := newTestTelemetry()
	s := NewRosterSynchronizer(RosterSynchronizerOptions{API: api, Telemetry: tel})

	api.EXPECT().ListActivities(gomock.Any()).
		Return(roster.Roster{}, apperrors.Transport(errors.New("unexpected EOF"), "decode activities response"))

	f := s.Fetch(context.Background())
	require.Error(t, f.Err)

	view := s.Render(f, auth.Anonymous())
	assert.Equal(t, viewmodel.LoadErrorText, view.Error)
	assert.Empty(t, view.Activities)
	require.Len(t, diags.all(), 1)
	assert.Equal(t, "refresh", diags.all()[0].Operation)
}

func TestRosterSynchronizer_OnlyLatestIsCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := mocks.NewMockRosterAPI(ctrl)
	tel, rec, _ := newTestTelemetry()
	s := NewRosterSynchronizer(RosterSynchronizerOptions{API: api, Telemetry: tel})

	api.EXPECT().ListActivities(gomock.Any()).Return(chessRoster(), nil).Times(2)

	first := s.Fetch(context.Background())
	second := s.Fetch(context.Background())

	assert.Greater(t, second.Seq, first.Seq)
	assert.False(t, s.IsCurrent(first.Seq))
	assert.True(t, s.IsCurrent(second.Seq))

	s.Discard(first)
	assert.Equal(t, []string{"success", "success", "stale"}, resultTags(rec, "refresh"))
}
