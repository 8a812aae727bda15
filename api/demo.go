/*
demo.go - Demo account seeding

PURPOSE:
  Populates a shared demo account with a small realistic dataset so
  visitors can explore the app without registering. Reseeding is
  idempotent: records are matched by natural key (professional name;
  professional + usage window for vacations) and refreshed in place,
  so calling init-demo repeatedly never duplicates rows.

SEE ALSO:
  - middleware.go: blockDemoWrites keeps the demo account read-only
  - config/config.go: Demo account email/password settings
*/
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/unchain0/sistema-ferias/vacation"
)

type demoProfessional struct {
	name           string
	clientManager  string
	monthlyRevenue decimal.Decimal
	vacations      []demoVacation
}

type demoVacation struct {
	acquisitionStart string
	acquisitionEnd   string
	usageStart       string
	usageEnd         string
}

func demoDataset() []demoProfessional {
	return []demoProfessional{
		{
			name:           "Ana Souza",
			clientManager:  "Carlos Lima",
			monthlyRevenue: decimal.NewFromInt(12000),
			vacations: []demoVacation{
				{"2025-01-01", "2025-12-31", "2026-02-02", "2026-02-21"},
			},
		},
		{
			name:           "Bruno Ferreira",
			clientManager:  "Carlos Lima",
			monthlyRevenue: decimal.NewFromInt(9500),
			vacations: []demoVacation{
				{"2025-03-01", "2026-02-28", "2026-07-06", "2026-07-20"},
				{"2024-03-01", "2025-02-28", "2025-12-15", "2025-12-29"},
			},
		},
		{
			name:           "Carla Mendes",
			clientManager:  "Fernanda Rocha",
			monthlyRevenue: decimal.NewFromInt(15000),
			vacations: []demoVacation{
				{"2025-06-01", "2026-05-31", "2026-09-01", "2026-09-30"},
			},
		},
		{
			name:           "Diego Alves",
			clientManager:  "Fernanda Rocha",
			monthlyRevenue: decimal.NewFromInt(8000),
			// Registered but no vacation recorded yet; keeps the
			// dashboard's professional count honest.
		},
	}
}

// InitDemo seeds or refreshes the demo account.
func (h *Handler) InitDemo(w http.ResponseWriter, r *http.Request) {
	if !h.demo.Enabled {
		writeError(w, http.StatusNotFound, "Demo mode is disabled", nil)
		return
	}

	resp, err := h.seedDemo(r.Context())
	if err != nil {
		h.logger.Error("demo seed failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to initialize demo data", err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) seedDemo(ctx context.Context) (*InitDemoResponse, error) {
	user, err := h.store.GetUserByEmail(ctx, h.demo.Email)
	if err != nil {
		return nil, fmt.Errorf("look up demo user: %w", err)
	}
	if user == nil {
		user, err = h.auth.Register(ctx, h.demo.Email, h.demo.Password, "Demo User")
		if err != nil {
			return nil, fmt.Errorf("create demo user: %w", err)
		}
	}

	existingPros, err := h.store.ListProfessionals(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	prosByName := make(map[string]*vacation.Professional, len(existingPros))
	for i := range existingPros {
		prosByName[existingPros[i].Name] = &existingPros[i]
	}

	var createdPros, createdVacs int
	for _, dp := range demoDataset() {
		pro, err := h.upsertDemoProfessional(ctx, user.ID, prosByName[dp.name], dp)
		if err != nil {
			return nil, err
		}
		if prosByName[dp.name] == nil {
			createdPros++
		}

		existing, err := h.store.ListVacationsByProfessional(ctx, pro.ID, user.ID)
		if err != nil {
			return nil, fmt.Errorf("list vacations for %q: %w", dp.name, err)
		}
		for _, dv := range dp.vacations {
			created, err := h.upsertDemoVacation(ctx, user.ID, pro, existing, dv)
			if err != nil {
				return nil, err
			}
			if created {
				createdVacs++
			}
		}
	}

	totalPros, err := h.store.ListProfessionals(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count professionals: %w", err)
	}
	totalVacs, err := h.store.ListVacationPeriods(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count vacations: %w", err)
	}

	return &InitDemoResponse{
		Message:              "Demo data initialized",
		Email:                h.demo.Email,
		CreatedProfessionals: createdPros,
		CreatedVacations:     createdVacs,
		TotalProfessionals:   len(totalPros),
		TotalVacations:       len(totalVacs),
	}, nil
}

// upsertDemoProfessional matches by name: refresh in place when found,
// create otherwise.
func (h *Handler) upsertDemoProfessional(ctx context.Context, uid string, existing *vacation.Professional, dp demoProfessional) (*vacation.Professional, error) {
	if existing == nil {
		pro, err := h.store.CreateProfessional(ctx, vacation.NewProfessional{
			UserID:         uid,
			Name:           dp.name,
			ClientManager:  dp.clientManager,
			MonthlyRevenue: dp.monthlyRevenue,
		})
		if err != nil {
			return nil, fmt.Errorf("create professional %q: %w", dp.name, err)
		}
		return pro, nil
	}

	manager := dp.clientManager
	revenue := dp.monthlyRevenue
	pro, err := h.store.UpdateProfessional(ctx, existing.ID, uid, vacation.ProfessionalPatch{
		ClientManager:  &manager,
		MonthlyRevenue: &revenue,
	})
	if err != nil {
		return nil, fmt.Errorf("refresh professional %q: %w", dp.name, err)
	}
	return pro, nil
}

// upsertDemoVacation matches by professional + usage window; existing
// matches are left alone. Reports whether a row was created.
func (h *Handler) upsertDemoVacation(ctx context.Context, uid string, pro *vacation.Professional, existing []vacation.VacationPeriod, dv demoVacation) (bool, error) {
	usage := vacation.Period{Start: vacation.MustDate(dv.usageStart), End: vacation.MustDate(dv.usageEnd)}
	for _, v := range existing {
		if v.UsageStart.Equal(usage.Start) && v.UsageEnd.Equal(usage.End) {
			return false, nil
		}
	}

	acquisition := vacation.Period{Start: vacation.MustDate(dv.acquisitionStart), End: vacation.MustDate(dv.acquisitionEnd)}
	plan, err := vacation.PlanVacation(pro, usage, acquisition)
	if err != nil {
		return false, fmt.Errorf("plan demo vacation for %q: %w", pro.Name, err)
	}
	if _, err := h.store.CreateVacationPeriod(ctx, vacation.NewVacationPeriod{
		UserID:         uid,
		ProfessionalID: pro.ID,
		Acquisition:    acquisition,
		Usage:          usage,
		Plan:           plan,
	}); err != nil {
		return false, fmt.Errorf("create demo vacation for %q: %w", pro.Name, err)
	}
	return true, nil
}
