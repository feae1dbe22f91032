// Package conflict decides whether a candidate appointment interval would
// double-book any of its participants. All functions are pure: they scan a
// borrowed appointment slice and never touch storage.
package conflict

import (
	"time"

	"shared-calendar/internal/model"
)

// Interval is a closed time interval [Start, End].
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two closed intervals overlap. Intervals that only
// touch at an endpoint (a.End == b.Start) do overlap; callers that want
// back-to-back appointments to be bookable must not use this engine.
func Overlaps(a, b Interval) bool {
	return !a.Start.After(b.End) && !b.Start.After(a.End)
}

// FindConflicts returns the appointments that share at least one participant
// (matched by name) with the candidate participant set. The appointment with
// ID excludeID is skipped so an appointment being edited never conflicts with
// itself. The result is the pre-filtered candidate set for overlap testing;
// intervals are not inspected here.
func FindConflicts(appointments []model.Appointment, participants []string, excludeID string) []model.Appointment {
	var out []model.Appointment
	for _, a := range appointments {
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		for _, name := range participants {
			if a.HasParticipant(name) {
				out = append(out, a)
				break
			}
		}
	}
	return out
}

// HasConflict reports whether committing the candidate interval for the given
// participants would double-book anyone, excluding the appointment with
// ID excludeID from consideration.
func HasConflict(appointments []model.Appointment, participants []string, candidate Interval, excludeID string) bool {
	for _, a := range FindConflicts(appointments, participants, excludeID) {
		if Overlaps(Interval{Start: a.StartTime, End: a.EndTime}, candidate) {
			return true
		}
	}
	return false
}
