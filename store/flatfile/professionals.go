package flatfile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unchain0/sistema-ferias/vacation"
)

func (s *Store) CreateProfessional(_ context.Context, n vacation.NewProfessional) (*vacation.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !n.MonthlyRevenue.IsPositive() {
		return nil, vacation.ErrNonPositiveRevenue
	}

	pros, err := s.readProfessionals()
	if err != nil {
		return nil, err
	}

	pro := vacation.Professional{
		ID:             uuid.NewString(),
		UserID:         n.UserID,
		Name:           n.Name,
		ClientManager:  n.ClientManager,
		MonthlyRevenue: n.MonthlyRevenue,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.saveProfessionals(append(pros, pro)); err != nil {
		return nil, err
	}
	return &pro, nil
}

// ListProfessionals is a linear scan filter over the full list.
func (s *Store) ListProfessionals(_ context.Context, userID string) ([]vacation.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pros, err := s.readProfessionals()
	if err != nil {
		return nil, err
	}

	result := make([]vacation.Professional, 0)
	for _, p := range pros {
		if p.UserID == userID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (s *Store) GetProfessional(_ context.Context, id, userID string) (*vacation.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pros, err := s.readProfessionals()
	if err != nil {
		return nil, err
	}

	for i := range pros {
		if pros[i].ID == id && pros[i].UserID == userID {
			p := pros[i]
			return &p, nil
		}
	}
	return nil, nil
}

// UpdateProfessional merges the present patch fields into the record.
// Absent fields are left untouched.
func (s *Store) UpdateProfessional(_ context.Context, id, userID string, patch vacation.ProfessionalPatch) (*vacation.Professional, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.MonthlyRevenue != nil && !patch.MonthlyRevenue.IsPositive() {
		return nil, vacation.ErrNonPositiveRevenue
	}

	pros, err := s.readProfessionals()
	if err != nil {
		return nil, err
	}

	for i := range pros {
		if pros[i].ID != id || pros[i].UserID != userID {
			continue
		}
		if patch.Name != nil {
			pros[i].Name = *patch.Name
		}
		if patch.ClientManager != nil {
			pros[i].ClientManager = *patch.ClientManager
		}
		if patch.MonthlyRevenue != nil {
			pros[i].MonthlyRevenue = *patch.MonthlyRevenue
		}
		if err := s.saveProfessionals(pros); err != nil {
			return nil, err
		}
		p := pros[i]
		return &p, nil
	}
	return nil, nil
}

// DeleteProfessional removes the record and cascades to its vacation
// periods. False means nothing matched (absent or not owned by userID).
func (s *Store) DeleteProfessional(_ context.Context, id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pros, err := s.readProfessionals()
	if err != nil {
		return false, err
	}

	kept := make([]vacation.Professional, 0, len(pros))
	removed := false
	for _, p := range pros {
		if p.ID == id && p.UserID == userID {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return false, nil
	}
	if err := s.saveProfessionals(kept); err != nil {
		return false, err
	}
	return true, s.cascadeVacations(map[string]bool{id: true}, userID)
}

func (s *Store) DeleteAllProfessionals(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pros, err := s.readProfessionals()
	if err != nil {
		return err
	}

	removedIDs := make(map[string]bool)
	kept := make([]vacation.Professional, 0, len(pros))
	for _, p := range pros {
		if p.UserID == userID {
			removedIDs[p.ID] = true
			continue
		}
		kept = append(kept, p)
	}
	if len(removedIDs) == 0 {
		return nil
	}
	if err := s.saveProfessionals(kept); err != nil {
		return err
	}
	return s.cascadeVacations(removedIDs, userID)
}

// cascadeVacations drops the vacation periods of deleted professionals.
// Caller holds the mutex.
func (s *Store) cascadeVacations(professionalIDs map[string]bool, userID string) error {
	vacs, err := s.readVacations()
	if err != nil {
		return err
	}

	kept := make([]vacation.VacationPeriod, 0, len(vacs))
	changed := false
	for _, v := range vacs {
		if v.UserID == userID && professionalIDs[v.ProfessionalID] {
			changed = true
			continue
		}
		kept = append(kept, v)
	}
	if !changed {
		return nil
	}
	return s.saveVacations(kept)
}
