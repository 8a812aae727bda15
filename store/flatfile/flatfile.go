/*
Package flatfile implements the persistence port over three flat record
lists: users, professionals and vacation periods.

MODES:
  Durable:   New(dir). Each list round-trips through a JSON file under dir
             (users.json, professionals.json, vacations.json). Every
             operation is a read-modify-write of the whole list; there are
             no partial-file updates.
  Ephemeral: NewMemory(). The lists live in process memory and are lost on
             restart. Seed() can initialize them directly (demo mode).

KNOWN LIMITATIONS (by contract, not accident):
  - Every "list for owner" call is a linear scan over the full list. Fine
    at single-tenant demo scale; not horizontally scalable. All data lives
    in one process's address space or filesystem.
  - A single process-level mutex serializes mutations. There is NO
    cross-operation transactional isolation: two concurrent read-modify-
    write sequences on the same owner's data can race. Accepted, per the
    target usage pattern.

The adapter assigns ids (uuid) and UTC creation timestamps itself; the
relational adapter lets the database assign both.
*/
package flatfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/unchain0/sistema-ferias/vacation"
)

const (
	usersFile         = "users.json"
	professionalsFile = "professionals.json"
	vacationsFile     = "vacations.json"
)

// Store holds the three lists. dir == "" means ephemeral mode.
type Store struct {
	mu  sync.Mutex
	dir string

	users         []vacation.User
	professionals []vacation.Professional
	vacations     []vacation.VacationPeriod
}

// New opens a durable store rooted at dir, creating it if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// NewMemory opens an ephemeral store. All data is lost on process exit.
func NewMemory() *Store {
	return &Store{}
}

func (s *Store) Close() error { return nil }

// Seed replaces all three lists in one step. Demo-mode initialization
// entry point; also usable in durable mode, where it rewrites the files.
func (s *Store) Seed(users []vacation.User, pros []vacation.Professional, vacs []vacation.VacationPeriod) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeList(usersFile, users); err != nil {
		return err
	}
	if err := s.writeList(professionalsFile, pros); err != nil {
		return err
	}
	if err := s.writeList(vacationsFile, vacs); err != nil {
		return err
	}
	s.users, s.professionals, s.vacations = users, pros, vacs
	return nil
}

// =============================================================================
// LIST ROUND-TRIPPING
// =============================================================================

func readFileList[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return list, nil
}

func writeFileList[T any](path string, list []T) error {
	if list == nil {
		list = []T{}
	}
	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// readUsers and friends re-read from disk on every call in durable mode,
// so out-of-band file edits are picked up. In ephemeral mode they return
// the in-process list.
func (s *Store) readUsers() ([]vacation.User, error) {
	if s.dir == "" {
		return s.users, nil
	}
	return readFileList[vacation.User](filepath.Join(s.dir, usersFile))
}

func (s *Store) readProfessionals() ([]vacation.Professional, error) {
	if s.dir == "" {
		return s.professionals, nil
	}
	return readFileList[vacation.Professional](filepath.Join(s.dir, professionalsFile))
}

func (s *Store) readVacations() ([]vacation.VacationPeriod, error) {
	if s.dir == "" {
		return s.vacations, nil
	}
	return readFileList[vacation.VacationPeriod](filepath.Join(s.dir, vacationsFile))
}

func (s *Store) writeList(name string, list any) error {
	if s.dir == "" {
		return nil
	}
	switch name {
	case usersFile:
		return writeFileList(filepath.Join(s.dir, name), list.([]vacation.User))
	case professionalsFile:
		return writeFileList(filepath.Join(s.dir, name), list.([]vacation.Professional))
	case vacationsFile:
		return writeFileList(filepath.Join(s.dir, name), list.([]vacation.VacationPeriod))
	}
	return fmt.Errorf("unknown list %s", name)
}

func (s *Store) saveUsers(list []vacation.User) error {
	if err := s.writeList(usersFile, list); err != nil {
		return err
	}
	s.users = list
	return nil
}

func (s *Store) saveProfessionals(list []vacation.Professional) error {
	if err := s.writeList(professionalsFile, list); err != nil {
		return err
	}
	s.professionals = list
	return nil
}

func (s *Store) saveVacations(list []vacation.VacationPeriod) error {
	if err := s.writeList(vacationsFile, list); err != nil {
		return err
	}
	s.vacations = list
	return nil
}
