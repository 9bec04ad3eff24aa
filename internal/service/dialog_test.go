package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/auth"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/dialog"
	apperrors "github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/errors"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/mocks"
)

func newDialogs(t *testing.T) (*DialogController, *mocks.MockRosterAPI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockRosterAPI(ctrl)
	tel, _, _ := newTestTelemetry()
	return NewDialogController(DialogControllerOptions{API: api, Telemetry: tel}), api
}

func TestDialogController_IconTargetsFollowSession(t *testing.T) {
	d, _ := newDialogs(t)

	require.NoError(t, d.IconClicked(auth.Anonymous()))
	assert.Equal(t, dialog.LoginOpen, d.State())
	require.NoError(t, d.CancelLogin())

	require.NoError(t, d.IconClicked(auth.Session{Authenticated: true, Username: "jdoe"}))
	assert.Equal(t, dialog.LogoutOpen, d.State())

	err := d.IconClicked(auth.Anonymous())
	require.ErrorIs(t, err, dialog.ErrInvalidTransition)
	assert.Equal(t, dialog.LogoutOpen, d.State(), "never both dialogs open")
}

func TestDialogController_CancelRequiresMatchingDialog(t *testing.T) {
	d, _ := newDialogs(t)

	require.ErrorIs(t, d.CancelLogin(), dialog.ErrInvalidTransition)
	require.ErrorIs(t, d.CancelLogout(), dialog.ErrInvalidTransition)

	require.NoError(t, d.IconClicked(auth.Session{Authenticated: true}))
	require.ErrorIs(t, d.CancelLogin(), dialog.ErrInvalidTransition)
	require.NoError(t, d.CancelLogout())
	assert.Equal(t, dialog.Closed, d.State())
}

func TestDialogController_LoginGuard(t *testing.T) {
	d, _ := newDialogs(t)

	require.ErrorIs(t, d.BeginLogin("jdoe"), dialog.ErrInvalidTransition)

	require.NoError(t, d.IconClicked(auth.Anonymous()))
	require.NoError(t, d.BeginLogin("jdoe"))
	assert.True(t, d.Submitting())
	assert.Equal(t, "jdoe", d.LoginUsername())

	require.ErrorIs(t, d.BeginLogin("jdoe"), ErrLoginInFlight)

	assert.Equal(t, dialog.LoginOpen, d.FinishLogin(false))
	assert.False(t, d.Submitting())
	assert.Equal(t, "jdoe", d.LoginUsername(), "failed login keeps the typed username")

	require.NoError(t, d.BeginLogin("jdoe"))
	assert.Equal(t, dialog.Closed, d.FinishLogin(true))
	assert.Empty(t, d.LoginUsername())
}

func TestDialogController_CancelWhilePending(t *testing.T) {
	d, _ := newDialogs(t)
	require.NoError(t, d.IconClicked(auth.Anonymous()))
	require.NoError(t, d.BeginLogin("jdoe"))

	require.NoError(t, d.CancelLogin())
	assert.Equal(t, dialog.Closed, d.FinishLogin(false))
}

func TestDialogController_Authenticate(t *testing.T) {
	d, api := newDialogs(t)
	ctx := context.Background()
	creds := auth.Credentials{Username: "jdoe", Password: "secret"}

	api.EXPECT().Login(gomock.Any(), jdoeHeader).Return(nil)
	require.NoError(t, d.Authenticate(ctx, creds))

	api.EXPECT().Login(gomock.Any(), jdoeHeader).Return(apperrors.Rejection(401, "Invalid credentials"))
	err := d.Authenticate(ctx, creds)
	assert.True(t, apperrors.IsAuthFailure(err))

	transport := apperrors.Transport(errors.New("no route to host"), "login request")
	api.EXPECT().Login(gomock.Any(), jdoeHeader).Return(transport)
	err = d.Authenticate(ctx, creds)
	assert.True(t, apperrors.IsTransport(err))
	assert.False(t, apperrors.IsAuthFailure(err))
}
