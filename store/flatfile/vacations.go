package flatfile

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/unchain0/sistema-ferias/vacation"
)

func (s *Store) CreateVacationPeriod(_ context.Context, n vacation.NewVacationPeriod) (*vacation.VacationPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vacs, err := s.readVacations()
	if err != nil {
		return nil, err
	}

	v := vacation.VacationPeriod{
		ID:               uuid.NewString(),
		ProfessionalID:   n.ProfessionalID,
		UserID:           n.UserID,
		AcquisitionStart: n.Acquisition.Start,
		AcquisitionEnd:   n.Acquisition.End,
		UsageStart:       n.Usage.Start,
		UsageEnd:         n.Usage.End,
		TotalDays:        n.Plan.TotalDays(),
		RevenueDeduction: n.Plan.RevenueDeduction(),
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.saveVacations(append(vacs, v)); err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *Store) ListVacationPeriods(_ context.Context, userID string) ([]vacation.VacationPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vacs, err := s.readVacations()
	if err != nil {
		return nil, err
	}

	result := make([]vacation.VacationPeriod, 0)
	for _, v := range vacs {
		if v.UserID == userID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (s *Store) ListVacationsByProfessional(_ context.Context, professionalID, userID string) ([]vacation.VacationPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vacs, err := s.readVacations()
	if err != nil {
		return nil, err
	}

	result := make([]vacation.VacationPeriod, 0)
	for _, v := range vacs {
		if v.UserID == userID && v.ProfessionalID == professionalID {
			result = append(result, v)
		}
	}
	return result, nil
}

func (s *Store) UpdateVacationPeriod(_ context.Context, id, userID string, patch vacation.VacationPeriodPatch) (*vacation.VacationPeriod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vacs, err := s.readVacations()
	if err != nil {
		return nil, err
	}

	for i := range vacs {
		if vacs[i].ID != id || vacs[i].UserID != userID {
			continue
		}
		if patch.AcquisitionStart != nil {
			vacs[i].AcquisitionStart = *patch.AcquisitionStart
		}
		if patch.AcquisitionEnd != nil {
			vacs[i].AcquisitionEnd = *patch.AcquisitionEnd
		}
		if patch.UsageStart != nil {
			vacs[i].UsageStart = *patch.UsageStart
		}
		if patch.UsageEnd != nil {
			vacs[i].UsageEnd = *patch.UsageEnd
		}
		if patch.Plan != nil {
			vacs[i].TotalDays = patch.Plan.TotalDays()
			vacs[i].RevenueDeduction = patch.Plan.RevenueDeduction()
		}
		if err := s.saveVacations(vacs); err != nil {
			return nil, err
		}
		v := vacs[i]
		return &v, nil
	}
	return nil, nil
}

func (s *Store) DeleteVacationPeriod(_ context.Context, id, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vacs, err := s.readVacations()
	if err != nil {
		return false, err
	}

	kept := make([]vacation.VacationPeriod, 0, len(vacs))
	removed := false
	for _, v := range vacs {
		if v.ID == id && v.UserID == userID {
			removed = true
			continue
		}
		kept = append(kept, v)
	}
	if !removed {
		return false, nil
	}
	return true, s.saveVacations(kept)
}

func (s *Store) DeleteAllVacationPeriods(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vacs, err := s.readVacations()
	if err != nil {
		return err
	}

	kept := make([]vacation.VacationPeriod, 0, len(vacs))
	for _, v := range vacs {
		if v.UserID != userID {
			kept = append(kept, v)
		}
	}
	if len(kept) == len(vacs) {
		return nil
	}
	return s.saveVacations(kept)
}
