// Package store owns the two durable collections: the appointments file and
// the users file. Every save rewrites the whole file through an atomic
// temp-file + rename, so readers never observe a partial write.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"shared-calendar/internal/model"
)

const (
	appointmentsFile = "appointments.ics"
	usersFile        = "users.json"

	userSchemaVersion = 1
)

var (
	// ErrMissing indicates the appointments file does not exist. The file
	// must exist before any operation runs; `calendar init` creates it.
	ErrMissing = errors.New("appointments file missing")

	// ErrCorrupt indicates the appointments file exists but cannot be decoded.
	ErrCorrupt = errors.New("appointments file corrupt")

	// ErrAlreadyInitialized indicates Init found an existing appointments file.
	ErrAlreadyInitialized = errors.New("calendar already initialized")
)

// Store loads and saves the appointment and user collections.
type Store struct {
	appointmentsPath string
	usersPath        string
	logger           *slog.Logger
}

// New creates a Store backed by files under dir.
func New(dir string, logger *slog.Logger) *Store {
	return &Store{
		appointmentsPath: filepath.Join(dir, appointmentsFile),
		usersPath:        filepath.Join(dir, usersFile),
		logger:           logger,
	}
}

// Init creates an empty appointments file and, if absent, an empty users
// file. It fails if the appointments file already exists.
func (s *Store) Init() error {
	if _, err := os.Stat(s.appointmentsPath); err == nil {
		return ErrAlreadyInitialized
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat appointments file: %w", err)
	}

	if err := s.SaveAppointments(nil); err != nil {
		return err
	}
	if _, err := os.Stat(s.usersPath); os.IsNotExist(err) {
		if err := s.SaveUsers(nil); err != nil {
			return err
		}
	}
	return nil
}

// LoadAppointments reads the appointment collection. A missing or
// undecodable file is a fatal condition for the caller: there is no
// create-if-missing fallback for appointments.
func (s *Store) LoadAppointments() ([]model.Appointment, error) {
	data, err := os.ReadFile(s.appointmentsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrMissing, s.appointmentsPath)
		}
		return nil, fmt.Errorf("read appointments file: %w", err)
	}

	appointments, err := decodeAppointments(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return appointments, nil
}

// SaveAppointments serializes the full collection and replaces the
// appointments file atomically.
func (s *Store) SaveAppointments(appointments []model.Appointment) error {
	data, err := encodeAppointments(appointments)
	if err != nil {
		return fmt.Errorf("encode appointments: %w", err)
	}
	if err := writeFileAtomic(s.appointmentsPath, data, 0644); err != nil {
		return fmt.Errorf("write appointments file: %w", err)
	}
	s.logger.Debug("appointments saved", "path", s.appointmentsPath, "count", len(appointments))
	return nil
}

type userFile struct {
	Version int          `json:"version"`
	Users   []model.User `json:"users"`
}

// LoadUsers reads the user collection. A missing or undecodable file is a
// recovered condition, not an error: the store logs it and substitutes an
// empty collection, which becomes authoritative on the next save.
func (s *Store) LoadUsers() []model.User {
	data, err := os.ReadFile(s.usersPath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("users file unreadable, starting empty", "path", s.usersPath, "error", err)
		}
		return nil
	}

	var f userFile
	if err := json.Unmarshal(data, &f); err != nil {
		s.logger.Warn("users file corrupt, starting empty", "path", s.usersPath, "error", err)
		return nil
	}
	return f.Users
}

// SaveUsers serializes the full user collection and replaces the users file
// atomically.
func (s *Store) SaveUsers(users []model.User) error {
	data, err := json.MarshalIndent(userFile{Version: userSchemaVersion, Users: users}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}
	if err := writeFileAtomic(s.usersPath, data, 0644); err != nil {
		return fmt.Errorf("write users file: %w", err)
	}
	s.logger.Debug("users saved", "path", s.usersPath, "count", len(users))
	return nil
}

// writeFileAtomic writes data to path via a temp file in the same directory
// followed by a rename, so a crash mid-write never truncates the target.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".calendar-tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	tmp = nil
	return nil
}
