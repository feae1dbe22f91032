package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"shared-calendar/internal/scheduler"
	"shared-calendar/internal/store"
)

// invalidInputMessage is the single generic message for validation
// rejections. Which rule failed is deliberately not reported.
const invalidInputMessage = "Invalid Input"

var successColor = color.New(color.FgGreen)

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openStore builds the store for the configured data directory.
func openStore() *store.Store {
	return store.New(dataDir(), newLogger())
}

// openScheduler loads both collections and returns the mutation service.
func openScheduler() (*scheduler.Scheduler, error) {
	return scheduler.New(openStore(), newLogger())
}

func dataDir() string {
	if flagDataDir != "" {
		return flagDataDir
	}
	return env("CALENDAR_DATA_DIR", ".")
}

// currentUser resolves the acting user from the --user flag or environment.
func currentUser() (string, error) {
	if flagUser != "" {
		return flagUser, nil
	}
	if u := os.Getenv("CALENDAR_USER"); u != "" {
		return u, nil
	}
	return "", errors.New("no user set: pass --user or set CALENDAR_USER")
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// presentError collapses validation rejections into the generic
// invalid-input message; everything else passes through unchanged.
func presentError(err error) error {
	switch {
	case errors.Is(err, scheduler.ErrInvalidInterval),
		errors.Is(err, scheduler.ErrConflict),
		errors.Is(err, scheduler.ErrTitleRequired),
		errors.Is(err, scheduler.ErrNameRequired):
		return errors.New(invalidInputMessage)
	}
	return err
}

// parseDate parses a YYYY-MM-DD date in local time.
func parseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return d, nil
}

// parseClock parses an HH:MM time-of-day into its hour and minute
// components. Seconds are not accepted; they are always zero.
func parseClock(s string) (hour, minute int, err error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid time %q: hour out of range", s)
	}
	minute, err = strconv.Atoi(m)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q: minute out of range", s)
	}
	return hour, minute, nil
}

func printSuccess(format string, a ...any) {
	_, _ = successColor.Fprintf(os.Stdout, format+"\n", a...)
}
