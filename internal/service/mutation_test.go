package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/feedback"
	apperrors "github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/errors"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/mocks"
)

func newDispatcher(t *testing.T, loggedIn bool) (*MutationDispatcher, *mocks.MockRosterAPI, *diagRecorder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockRosterAPI(ctrl)
	creds := NewCredentialCache()
	if loggedIn {
		creds.Set("jdoe", "secret")
	}
	tel, _, diags := newTestTelemetry()
	return NewMutationDispatcher(MutationDispatcherOptions{API: api, Credentials: creds, Telemetry: tel}), api, diags
}

func TestMutationDispatcher_BlockedWithoutCredentials(t *testing.T) {
	// The mock has no expectations: any network call fails the test.
	d, _, _ := newDispatcher(t, false)
	ctx := context.Background()

	out := d.Unregister(ctx, "Chess Club", "alice@example.com")
	assert.Equal(t, MsgUnregisterRequiresLogin, out.Notice)
	assert.Empty(t, out.FeedbackText)
	assert.False(t, out.Refresh)
	assert.True(t, apperrors.IsPrecondition(out.Err))

	out = d.Signup(ctx, "Chess Club", "bob@example.com")
	assert.Equal(t, MsgSignupRequiresLogin, out.Notice)
	assert.True(t, apperrors.IsPrecondition(out.Err))
}

func TestMutationDispatcher_Success(t *testing.T) {
	d, api, _ := newDispatcher(t, true)
	ctx := context.Background()

	api.EXPECT().Signup(gomock.Any(), jdoeHeader, "Chess Club", "bob@example.com").
		Return("Signed up bob@example.com for Chess Club", nil)
	out := d.Signup(ctx, "Chess Club", "bob@example.com")
	require.NoError(t, out.Err)
	assert.Equal(t, "Signed up bob@example.com for Chess Club", out.FeedbackText)
	assert.Equal(t, feedback.KindSuccess, out.FeedbackKind)
	assert.True(t, out.Refresh)
	assert.True(t, out.ClearForm)

	api.EXPECT().Unregister(gomock.Any(), jdoeHeader, "Chess Club", "bob@example.com").
		Return("Unregistered bob@example.com from Chess Club", nil)
	out = d.Unregister(ctx, "Chess Club", "bob@example.com")
	require.NoError(t, out.Err)
	assert.True(t, out.Refresh)
	assert.False(t, out.ClearForm)
}

func TestMutationDispatcher_Rejection(t *testing.T) {
	tests := []struct {
		name   string
		detail string
		want   string
	}{
		{name: "server detail", detail: "Activity full", want: "Activity full"},
		{name: "fallback", detail: "", want: MsgRejectedFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, api, diags := newDispatcher(t, true)
			api.EXPECT().Signup(gomock.Any(), jdoeHeader, "Chess Club", "bob@example.com").
				Return("", apperrors.Rejection(400, tt.detail))

			out := d.Signup(context.Background(), "Chess Club", "bob@example.com")

			assert.Equal(t, tt.want, out.FeedbackText)
			assert.Equal(t, feedback.KindError, out.FeedbackKind)
			assert.False(t, out.Refresh)
			assert.False(t, out.ClearForm)
			assert.True(t, apperrors.IsServerRejection(out.Err))
			assert.Empty(t, diags.all())
		})
	}
}

func TestMutationDispatcher_TransportFailure(t *testing.T) {
	d, api, diags := newDispatcher(t, true)
	api.EXPECT().Unregister(gomock.Any(), jdoeHeader, "Chess Club", "a@b").
		Return("", apperrors.Transport(errors.New("connection reset"), "unregister request"))

	out := d.Unregister(context.Background(), "Chess Club", "a@b")

	assert.Equal(t, MsgUnregisterFailed, out.FeedbackText)
	assert.Equal(t, feedback.KindError, out.FeedbackKind)
	assert.False(t, out.Refresh)
	assert.True(t, apperrors.IsTransport(out.Err))
	require.Len(t, diags.all(), 1)
	assert.Equal(t, "Chess Club", diags.all()[0].Metadata["activity"])
}

func TestMutationDispatcher_ValidatesInput(t *testing.T) {
	d, _, _ := newDispatcher(t, true)

	out := d.Signup(context.Background(), "", "bob@example.com")
	assert.True(t, apperrors.IsValidation(out.Err))
	assert.False(t, out.Refresh)

	out = d.Signup(context.Background(), "Chess Club", "  ")
	assert.True(t, apperrors.IsValidation(out.Err))
}
