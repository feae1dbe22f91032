// Package scheduler is the mutation service for the shared calendar: the sole
// write path into the store. Every operation re-validates the candidate data
// against the in-memory collections before any mutation, and a successful
// mutation always rewrites the backing file before returning.
package scheduler

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"shared-calendar/internal/conflict"
	"shared-calendar/internal/model"
	"shared-calendar/internal/store"
)

// Scheduler owns the in-memory appointment and user collections for the
// lifetime of a session. It is single-writer by design: the durable files
// assume exactly one active process.
type Scheduler struct {
	store        *store.Store
	logger       *slog.Logger
	appointments []model.Appointment
	users        []model.User
}

// New loads both collections from the store. A missing or corrupt
// appointments file is fatal; a missing or corrupt users file has already
// been recovered to an empty collection by the store.
func New(st *store.Store, logger *slog.Logger) (*Scheduler, error) {
	appointments, err := st.LoadAppointments()
	if err != nil {
		return nil, err
	}
	return &Scheduler{
		store:        st,
		logger:       logger,
		appointments: appointments,
		users:        st.LoadUsers(),
	}, nil
}

// MyAppointments returns the appointments created by user. Appointments the
// user merely participates in are not part of their management view.
func (s *Scheduler) MyAppointments(user string) []model.Appointment {
	var out []model.Appointment
	for _, a := range s.appointments {
		if a.Creator.Name == user {
			out = append(out, a)
		}
	}
	return out
}

// AvailableUsers returns every registered user except user themself.
func (s *Scheduler) AvailableUsers(user string) []model.User {
	var out []model.User
	for _, u := range s.users {
		if u.Name != user {
			out = append(out, u)
		}
	}
	return out
}

// SelectAppointment returns the editable field snapshot for one of
// currentUser's appointments. Appointments owned by someone else are reported
// as not found rather than forbidden.
func (s *Scheduler) SelectAppointment(currentUser, id string) (*AppointmentForm, error) {
	i := s.findOwned(currentUser, id)
	if i < 0 {
		return nil, ErrNotFound
	}
	a := s.appointments[i]

	form := &AppointmentForm{
		ID:          a.ID,
		Title:       a.Title,
		Description: a.Description,
		Date:        time.Date(a.StartTime.Year(), a.StartTime.Month(), a.StartTime.Day(), 0, 0, 0, 0, time.Local),
		StartHour:   a.StartTime.Hour(),
		StartMinute: a.StartTime.Minute(),
		EndHour:     a.EndTime.Hour(),
		EndMinute:   a.EndTime.Minute(),
	}
	for _, p := range a.Participants {
		if p.Name != a.Creator.Name {
			form.Participants = append(form.Participants, p.Name)
		}
	}
	return form, nil
}

// SubmitCreate validates and commits a new appointment.
func (s *Scheduler) SubmitCreate(req *CreateRequest) (*model.Appointment, error) {
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if err := s.requireUsers(req.CurrentUser, req.Participants); err != nil {
		return nil, err
	}

	start, end := candidateInterval(req.Date, req.StartHour, req.StartMinute, req.EndHour, req.EndMinute)
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}
	if conflict.HasConflict(s.appointments, req.Participants, conflict.Interval{Start: start, End: end}, "") {
		return nil, ErrConflict
	}

	a := model.Appointment{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		StartTime:    start,
		EndTime:      end,
		Creator:      model.User{Name: req.CurrentUser},
		Participants: participantSet(req.CurrentUser, req.Participants),
	}

	s.appointments = append(s.appointments, a)
	if err := s.store.SaveAppointments(s.appointments); err != nil {
		return nil, err
	}
	s.logger.Info("appointment created", "id", a.ID, "creator", a.Creator.Name)
	return &a, nil
}

// SubmitUpdate validates and commits an edit to an existing appointment. The
// appointment being edited is excluded from the conflict scan so it never
// conflicts with itself.
func (s *Scheduler) SubmitUpdate(req *UpdateRequest) (*model.Appointment, error) {
	i := s.findOwned(req.CurrentUser, req.ID)
	if i < 0 {
		return nil, ErrNotFound
	}
	if err := s.requireUsers(req.CurrentUser, req.Participants); err != nil {
		return nil, err
	}

	start, end := candidateInterval(req.Date, req.StartHour, req.StartMinute, req.EndHour, req.EndMinute)
	if !end.After(start) {
		return nil, ErrInvalidInterval
	}
	if conflict.HasConflict(s.appointments, req.Participants, conflict.Interval{Start: start, End: end}, req.ID) {
		return nil, ErrConflict
	}

	a := &s.appointments[i]
	a.Title = req.Title
	a.Description = req.Description
	a.StartTime = start
	a.EndTime = end
	a.Participants = participantSet(a.Creator.Name, req.Participants)

	if err := s.store.SaveAppointments(s.appointments); err != nil {
		return nil, err
	}
	s.logger.Info("appointment updated", "id", a.ID, "creator", a.Creator.Name)
	updated := *a
	return &updated, nil
}

// SubmitDelete removes one of currentUser's appointments and persists the
// collection. An unknown or non-owned ID leaves the collection and the
// backing file untouched.
func (s *Scheduler) SubmitDelete(currentUser, id string) error {
	i := s.findOwned(currentUser, id)
	if i < 0 {
		return ErrNotFound
	}

	s.appointments = append(s.appointments[:i], s.appointments[i+1:]...)
	if err := s.store.SaveAppointments(s.appointments); err != nil {
		return err
	}
	s.logger.Info("appointment deleted", "id", id, "creator", currentUser)
	return nil
}

// RegisterUser adds a new user to the registry. Names are the only identity,
// so duplicates are rejected.
func (s *Scheduler) RegisterUser(name string) (*model.User, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	for _, u := range s.users {
		if u.Name == name {
			return nil, ErrUserExists
		}
	}

	u := model.User{Name: name}
	s.users = append(s.users, u)
	if err := s.store.SaveUsers(s.users); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", "name", name)
	return &u, nil
}

// findOwned returns the index of the appointment with the given ID when it is
// owned by user, or -1. Ownership failures are indistinguishable from missing
// appointments to the caller.
func (s *Scheduler) findOwned(user, id string) int {
	for i, a := range s.appointments {
		if a.ID == id && a.Creator.Name == user {
			return i
		}
	}
	return -1
}

// requireUsers verifies that the current user and every selected participant
// are registered.
func (s *Scheduler) requireUsers(currentUser string, participants []string) error {
	if !s.isRegistered(currentUser) {
		return ErrUserNotFound
	}
	for _, name := range participants {
		if !s.isRegistered(name) {
			return ErrUserNotFound
		}
	}
	return nil
}

func (s *Scheduler) isRegistered(name string) bool {
	for _, u := range s.users {
		if u.Name == name {
			return true
		}
	}
	return false
}

// candidateInterval builds the start and end timestamps from the supplied
// date and hour/minute components. Seconds are fixed at zero.
func candidateInterval(date time.Time, startHour, startMinute, endHour, endMinute int) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), startHour, startMinute, 0, 0, time.Local)
	end := time.Date(date.Year(), date.Month(), date.Day(), endHour, endMinute, 0, 0, time.Local)
	return start, end
}

// participantSet builds the committed participant list: the creator first,
// then the selected participants with duplicates removed.
func participantSet(creator string, selected []string) []model.User {
	out := []model.User{{Name: creator}}
	seen := map[string]bool{creator: true}
	for _, name := range selected {
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, model.User{Name: name})
	}
	return out
}
