// Package mocks provides generated mock implementations for controller ports.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for the port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	api := mocks.NewMockRosterAPI(ctrl)
//	api.EXPECT().ListActivities(gomock.Any()).Return(roster.Roster{}, nil)
package mocks

// Generate mock for RosterAPI interface from internal/ports package.
// This creates MockRosterAPI with methods for all RosterAPI interface methods:
// CheckAuth, Login, ListActivities, Signup, Unregister, ForgetSession
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=roster_api_mock.go github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports RosterAPI
