package viewmodel

import (
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/auth"
	"github.com/mvmaiafreitas/skills-integrate-mcp-with-copilot/internal/domain/roster"
)

const (
	// LoadingText is shown before the first refresh completes.
	LoadingText = "Loading activities..."
	// LoadErrorText replaces the list when the roster cannot be fetched.
	LoadErrorText = "Failed to load activities. Please try again later."
	// EmptyParticipantsText is shown for an activity with no participants.
	EmptyParticipantsText = "No participants yet"
)

// RosterView is the rendered activity list. Exactly one of Loading, Error or
// Activities is meaningful.
type RosterView struct {
	Loading    bool
	Error      string
	Activities []ActivityCard
}

// ActivityCard is one activity as displayed.
type ActivityCard struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	// SpotsLeft is not clamped and may be negative when the server overfills.
	SpotsLeft    int
	Participants []ParticipantRow
}

// HasParticipants reports whether the participant list is non-empty.
func (c ActivityCard) HasParticipants() bool { return len(c.Participants) > 0 }

// ParticipantRow is a participant with its removal affordance.
type ParticipantRow struct {
	Activity  string
	Email     string
	CanRemove bool
}

// LoadingRoster is the view before any fetch has resolved.
func LoadingRoster() RosterView { return RosterView{Loading: true} }

// RosterError is the terminal error view that replaces the list.
func RosterError() RosterView { return RosterView{Error: LoadErrorText} }

// RenderRoster builds cards in server order. Removal affordances follow the
// session passed in, never a cached one.
func RenderRoster(r roster.Roster, session auth.Session) RosterView {
	cards := make([]ActivityCard, 0, r.Len())
	canRemove := session.IsOperator()
	for _, a := range r.Activities {
		rows := make([]ParticipantRow, 0, len(a.Participants))
		for _, email := range a.Participants {
			rows = append(rows, ParticipantRow{Activity: a.Name, Email: email, CanRemove: canRemove})
		}
		cards = append(cards, ActivityCard{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			SpotsLeft:       a.SpotsLeft(),
			Participants:    rows,
		})
	}
	return RosterView{Activities: cards}
}

// ActivityOptions lists the activity names for the signup form select, in card order.
func (v RosterView) ActivityOptions() []string {
	opts := make([]string, 0, len(v.Activities))
	for _, c := range v.Activities {
		opts = append(opts, c.Name)
	}
	return opts
}
