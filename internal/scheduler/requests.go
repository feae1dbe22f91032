package scheduler

import "time"

// CreateRequest carries the candidate fields for a new appointment. Start and
// end times are supplied as a date plus separate hour/minute components,
// mirroring the date picker and time selectors of the management surface;
// seconds are always zero.
type CreateRequest struct {
	CurrentUser string
	Title       string
	Description string
	Date        time.Time
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int

	// Participants are the selected participant names. The creator is always
	// added implicitly and does not need to be listed.
	Participants []string
}

// UpdateRequest carries the candidate fields for editing an existing
// appointment, addressed by its stable ID.
type UpdateRequest struct {
	ID          string
	CurrentUser string
	Title       string
	Description string
	Date        time.Time
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int

	// Participants replace the appointment's participant set; the creator is
	// re-added implicitly even when omitted from the selection.
	Participants []string
}

// AppointmentForm is the field snapshot handed to the presentation layer when
// an appointment is selected for editing.
type AppointmentForm struct {
	ID          string
	Title       string
	Description string
	Date        time.Time
	StartHour   int
	StartMinute int
	EndHour     int
	EndMinute   int

	// Participants are the pre-checked selections: every participant except
	// the creator, who is never listed among the selectable users.
	Participants []string
}
