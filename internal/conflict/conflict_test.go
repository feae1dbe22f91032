package conflict

import (
	"testing"
	"time"

	"shared-calendar/internal/model"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 5, 1, hour, min, 0, 0, time.Local)
}

func iv(startHour, startMin, endHour, endMin int) Interval {
	return Interval{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Interval
		want bool
	}{
		{"identical", iv(10, 0, 11, 0), iv(10, 0, 11, 0), true},
		{"partial overlap", iv(10, 0, 11, 0), iv(10, 30, 11, 30), true},
		{"touching endpoints", iv(10, 0, 11, 0), iv(11, 0, 12, 0), true},
		{"contained", iv(9, 0, 12, 0), iv(10, 0, 11, 0), true},
		{"containing", iv(10, 0, 11, 0), iv(9, 0, 12, 0), true},
		{"disjoint before", iv(9, 0, 10, 0), iv(10, 1, 11, 0), false},
		{"disjoint after", iv(12, 0, 13, 0), iv(10, 0, 11, 0), false},
		{"start inside", iv(10, 0, 11, 0), iv(10, 59, 13, 0), true},
		{"end inside", iv(10, 0, 11, 0), iv(8, 0, 10, 1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// overlap is symmetric
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v (symmetry)", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func appt(id, creator string, start, end time.Time, participants ...string) model.Appointment {
	a := model.Appointment{
		ID:        id,
		Title:     "appt-" + id,
		StartTime: start,
		EndTime:   end,
		Creator:   model.User{Name: creator},
	}
	a.Participants = append(a.Participants, model.User{Name: creator})
	for _, p := range participants {
		a.Participants = append(a.Participants, model.User{Name: p})
	}
	return a
}

func TestFindConflicts(t *testing.T) {
	db := []model.Appointment{
		appt("a1", "alice", at(10, 0), at(11, 0), "bob"),
		appt("a2", "carol", at(14, 0), at(15, 0)),
		appt("a3", "bob", at(16, 0), at(17, 0)),
	}

	tests := []struct {
		name         string
		participants []string
		excludeID    string
		wantIDs      []string
	}{
		{"bob appears in two", []string{"bob"}, "", []string{"a1", "a3"}},
		{"exclusion removes edited appointment", []string{"bob"}, "a1", []string{"a3"}},
		{"carol only", []string{"carol"}, "", []string{"a2"}},
		{"unknown user", []string{"dave"}, "", nil},
		{"multiple participants", []string{"carol", "bob"}, "a3", []string{"a1", "a2"}},
		{"no participants", nil, "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindConflicts(db, tt.participants, tt.excludeID)
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("got %d appointments, want %d", len(got), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if got[i].ID != id {
					t.Errorf("conflict %d: got %s, want %s", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestFindConflictsMatchesOncePerAppointment(t *testing.T) {
	db := []model.Appointment{
		appt("a1", "alice", at(10, 0), at(11, 0), "bob", "carol"),
	}

	// two matching participants must not duplicate the appointment
	got := FindConflicts(db, []string{"bob", "carol"}, "")
	if len(got) != 1 {
		t.Fatalf("got %d appointments, want 1", len(got))
	}
}

func TestHasConflict(t *testing.T) {
	db := []model.Appointment{
		appt("a1", "alice", at(10, 0), at(11, 0), "bob"),
	}

	tests := []struct {
		name         string
		participants []string
		candidate    Interval
		excludeID    string
		want         bool
	}{
		{"overlapping via shared participant", []string{"bob"}, iv(10, 30, 11, 30), "", true},
		{"touching counts as conflict", []string{"bob"}, iv(11, 0, 12, 0), "", true},
		{"clear slot", []string{"bob"}, iv(12, 0, 13, 0), "", false},
		{"overlap but no shared participant", []string{"dave"}, iv(10, 30, 11, 30), "", false},
		{"self-excluded", []string{"bob"}, iv(10, 30, 11, 30), "a1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasConflict(db, tt.participants, tt.candidate, tt.excludeID)
			if got != tt.want {
				t.Errorf("HasConflict(%v, %v) = %v, want %v", tt.participants, tt.candidate, got, tt.want)
			}
		})
	}
}
