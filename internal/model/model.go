package model

import "time"

// User is a registered calendar user. Name is the unique identifier:
// two users with the same name are the same user for all comparisons.
type User struct {
	Name string `json:"name"`
}

// Appointment is a scheduled meeting between a creator and a set of
// participants. ID is an opaque UUID assigned at creation and is the only
// stable handle for lookup and self-exclusion during edits.
type Appointment struct {
	ID           string
	Title        string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	Creator      User
	Participants []User
}

// HasParticipant reports whether a user with the given name is among the
// appointment's participants.
func (a *Appointment) HasParticipant(name string) bool {
	for _, p := range a.Participants {
		if p.Name == name {
			return true
		}
	}
	return false
}

// ParticipantNames returns the participant names in collection order.
func (a *Appointment) ParticipantNames() []string {
	names := make([]string, 0, len(a.Participants))
	for _, p := range a.Participants {
		names = append(names, p.Name)
	}
	return names
}
