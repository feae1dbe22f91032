package store

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"shared-calendar/internal/model"
)

const productID = "-//shared-calendar//EN"

// emptyCalendar is the minimal VCALENDAR written when the collection has no
// appointments. The go-ical encoder refuses a calendar without components,
// but its decoder accepts one, so the empty case bypasses the encoder.
var emptyCalendar = []byte("BEGIN:VCALENDAR\r\n" +
	"VERSION:2.0\r\n" +
	"PRODID:" + productID + "\r\n" +
	"END:VCALENDAR\r\n")

// encodeAppointments renders the collection as a single VCALENDAR with one
// VEVENT per appointment. Times are written in UTC; all timestamps are naive
// local time, so they are normalized back on decode.
func encodeAppointments(appointments []model.Appointment) ([]byte, error) {
	if len(appointments) == 0 {
		return emptyCalendar, nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, productID)

	for i := range appointments {
		cal.Children = append(cal.Children, toVEvent(&appointments[i]))
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toVEvent(a *model.Appointment) *ical.Component {
	ve := ical.NewComponent(ical.CompEvent)
	ve.Props.SetText(ical.PropUID, a.ID)
	ve.Props.SetText(ical.PropSummary, a.Title)
	ve.Props.SetDateTime(ical.PropDateTimeStamp, time.Now().UTC())
	ve.Props.SetDateTime(ical.PropDateTimeStart, a.StartTime.UTC())
	ve.Props.SetDateTime(ical.PropDateTimeEnd, a.EndTime.UTC())

	if a.Description != "" {
		ve.Props.SetText(ical.PropDescription, a.Description)
	}

	organizer := ical.NewProp(ical.PropOrganizer)
	organizer.SetText(fmt.Sprintf("mailto:%s", a.Creator.Name))
	ve.Props.Add(organizer)

	for _, p := range a.Participants {
		attendee := ical.NewProp(ical.PropAttendee)
		attendee.SetText(fmt.Sprintf("mailto:%s", p.Name))
		ve.Props.Add(attendee)
	}
	return ve
}

// decodeAppointments parses a VCALENDAR back into the appointment collection.
func decodeAppointments(data []byte) ([]model.Appointment, error) {
	cal, err := ical.NewDecoder(bytes.NewReader(data)).Decode()
	if err != nil {
		return nil, err
	}

	var appointments []model.Appointment
	for _, ev := range cal.Events() {
		a, err := fromVEvent(ev)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, *a)
	}
	return appointments, nil
}

func fromVEvent(ev ical.Event) (*model.Appointment, error) {
	id, err := ev.Props.Text(ical.PropUID)
	if err != nil {
		return nil, fmt.Errorf("event UID: %w", err)
	}
	if id == "" {
		return nil, fmt.Errorf("event without UID")
	}

	title, err := ev.Props.Text(ical.PropSummary)
	if err != nil {
		return nil, fmt.Errorf("event %s summary: %w", id, err)
	}
	description, err := ev.Props.Text(ical.PropDescription)
	if err != nil {
		return nil, fmt.Errorf("event %s description: %w", id, err)
	}

	start, err := ev.DateTimeStart(time.Local)
	if err != nil {
		return nil, fmt.Errorf("event %s start: %w", id, err)
	}
	end, err := ev.DateTimeEnd(time.Local)
	if err != nil {
		return nil, fmt.Errorf("event %s end: %w", id, err)
	}
	if start.IsZero() || end.IsZero() {
		return nil, fmt.Errorf("event %s has no start or end", id)
	}

	creatorAddr, err := ev.Props.Text(ical.PropOrganizer)
	if err != nil {
		return nil, fmt.Errorf("event %s organizer: %w", id, err)
	}
	if creatorAddr == "" {
		return nil, fmt.Errorf("event %s has no organizer", id)
	}

	a := &model.Appointment{
		ID:          id,
		Title:       title,
		Description: description,
		StartTime:   start.Local(),
		EndTime:     end.Local(),
		Creator:     model.User{Name: calAddressName(creatorAddr)},
	}

	for _, p := range ev.Props.Values(ical.PropAttendee) {
		addr, err := p.Text()
		if err != nil {
			return nil, fmt.Errorf("event %s attendee: %w", id, err)
		}
		a.Participants = append(a.Participants, model.User{Name: calAddressName(addr)})
	}
	return a, nil
}

// calAddressName strips the mailto: scheme used for ORGANIZER and ATTENDEE
// values. User names are the only identity in this system; the mailto form
// just keeps the file a valid iCalendar object.
func calAddressName(addr string) string {
	return strings.TrimPrefix(addr, "mailto:")
}
