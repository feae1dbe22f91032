package cli

import (
	"errors"
	"testing"
	"time"

	"shared-calendar/internal/scheduler"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in        string
		hour, min int
		wantErr   bool
	}{
		{"10:30", 10, 30, false},
		{"00:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{"9:05", 9, 5, false},
		{"24:00", 0, 0, true},
		{"10:60", 0, 0, true},
		{"-1:00", 0, 0, true},
		{"10", 0, 0, true},
		{"10:3x", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			hour, min, err := parseClock(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseClock(%q): expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseClock(%q): %v", tt.in, err)
			}
			if hour != tt.hour || min != tt.min {
				t.Errorf("parseClock(%q) = %d:%d, want %d:%d", tt.in, hour, min, tt.hour, tt.min)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := parseDate("2024-05-01")
	if err != nil {
		t.Fatalf("parseDate: %v", err)
	}
	want := time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)
	if !d.Equal(want) {
		t.Errorf("got %v, want %v", d, want)
	}

	if _, err := parseDate("05/01/2024"); err == nil {
		t.Error("expected error for wrong format")
	}
}

func TestPresentError(t *testing.T) {
	for _, err := range []error{
		scheduler.ErrInvalidInterval,
		scheduler.ErrConflict,
		scheduler.ErrTitleRequired,
		scheduler.ErrNameRequired,
	} {
		if got := presentError(err); got.Error() != invalidInputMessage {
			t.Errorf("presentError(%v) = %q, want %q", err, got, invalidInputMessage)
		}
	}

	// not-found and storage errors keep their identity
	if got := presentError(scheduler.ErrNotFound); !errors.Is(got, scheduler.ErrNotFound) {
		t.Errorf("presentError(ErrNotFound) = %v", got)
	}
}
