// Package roster holds the activity roster as reported by the server.
// A Roster is an immutable snapshot for one render cycle.
package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotObject is returned when the roster payload is not a JSON object.
var ErrNotObject = errors.New("roster payload is not a JSON object")

// Activity is a single enrollable activity. Name is the unique key from the server mapping.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns the remaining capacity. The server owns the capacity invariant,
// so the value is returned unclamped and may be negative.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// Roster is the ordered set of activities. Order follows the server payload.
type Roster struct {
	Activities []Activity
}

// Names returns activity names in server order.
func (r Roster) Names() []string {
	names := make([]string, 0, len(r.Activities))
	for _, a := range r.Activities {
		names = append(names, a.Name)
	}
	return names
}

// Find returns the activity with the given name.
func (r Roster) Find(name string) (Activity, bool) {
	for _, a := range r.Activities {
		if a.Name == name {
			return a, true
		}
	}
	return Activity{}, false
}

// Len returns the number of activities.
func (r Roster) Len() int { return len(r.Activities) }

// UnmarshalJSON decodes the server's name->Activity mapping while keeping key order.
// A repeated key keeps its first position and takes the last value.
func (r *Roster) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read roster: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return ErrNotObject
	}

	activities := make([]Activity, 0)
	index := make(map[string]int)
	for dec.More() {
		keyTok, keyErr := dec.Token()
		if keyErr != nil {
			return fmt.Errorf("read activity name: %w", keyErr)
		}
		name, _ := keyTok.(string)

		var a Activity
		if decErr := dec.Decode(&a); decErr != nil {
			return fmt.Errorf("decode activity %q: %w", name, decErr)
		}
		a.Name = name
		if a.Participants == nil {
			a.Participants = []string{}
		}

		if i, seen := index[name]; seen {
			activities[i] = a
			continue
		}
		index[name] = len(activities)
		activities = append(activities, a)
	}

	if _, err = dec.Token(); err != nil {
		return fmt.Errorf("read roster end: %w", err)
	}

	r.Activities = activities
	return nil
}

// MarshalJSON encodes the roster back into the server mapping shape, preserving order.
func (r Roster) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, a := range r.Activities {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(a.Name)
		if err != nil {
			return nil, err
		}
		participants := a.Participants
		if participants == nil {
			participants = []string{}
		}
		body, err := json.Marshal(struct {
			Description     string   `json:"description"`
			Schedule        string   `json:"schedule"`
			MaxParticipants int      `json:"max_participants"`
			Participants    []string `json:"participants"`
		}{a.Description, a.Schedule, a.MaxParticipants, participants})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
