package ports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/adapters/clock"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/adapters/rosterapi"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/mocks"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ports"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/ui/viewmodel"
)

// This test only verifies that implementations conform to the ports at compile time.
func TestImplementationsSatisfyPorts(t *testing.T) {
	t.Helper()

	var _ ports.RosterAPI = (*mocks.MockRosterAPI)(nil)
	var _ ports.RosterAPI = (*rosterapi.Client)(nil)
	var _ ports.Scheduler = clock.System{}
}

func TestViewFunc(t *testing.T) {
	var got viewmodel.Page
	var v ports.View = ports.ViewFunc(func(p viewmodel.Page) { got = p })
	v.Render(viewmodel.Page{Notice: &viewmodel.NoticeView{Text: "hi"}})
	assert.Equal(t, "hi", got.Notice.Text)
}
