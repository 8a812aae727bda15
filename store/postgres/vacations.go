package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/unchain0/sistema-ferias/vacation"
)

var vacationReturning = fmt.Sprintf(
	"%s::text, %s::text, %s::text, %s, %s, %s, %s, %s, %s::text, %s",
	column(vacationPeriodColumns, "id"),
	column(vacationPeriodColumns, "professionalId"),
	column(vacationPeriodColumns, "userId"),
	column(vacationPeriodColumns, "acquisitionStartDate"),
	column(vacationPeriodColumns, "acquisitionEndDate"),
	column(vacationPeriodColumns, "usageStartDate"),
	column(vacationPeriodColumns, "usageEndDate"),
	column(vacationPeriodColumns, "totalDays"),
	column(vacationPeriodColumns, "revenueDeduction"),
	column(vacationPeriodColumns, "createdAt"),
)

var vacationSelect = "SELECT " + vacationReturning + " FROM vacation_periods"

func scanVacation(row pgx.Row) (*vacation.VacationPeriod, error) {
	var (
		v                                  vacation.VacationPeriod
		acqStart, acqEnd, useStart, useEnd time.Time
		deduction                          string
	)
	err := row.Scan(&v.ID, &v.ProfessionalID, &v.UserID,
		&acqStart, &acqEnd, &useStart, &useEnd,
		&v.TotalDays, &deduction, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan vacation period: %w", err)
	}

	v.AcquisitionStart = vacation.DateOf(acqStart)
	v.AcquisitionEnd = vacation.DateOf(acqEnd)
	v.UsageStart = vacation.DateOf(useStart)
	v.UsageEnd = vacation.DateOf(useEnd)
	v.RevenueDeduction, err = decimal.NewFromString(deduction)
	if err != nil {
		return nil, fmt.Errorf("coerce revenue deduction %q: %w", deduction, err)
	}
	return &v, nil
}

func (s *Store) CreateVacationPeriod(ctx context.Context, n vacation.NewVacationPeriod) (*vacation.VacationPeriod, error) {
	query := fmt.Sprintf(`
		INSERT INTO vacation_periods (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s`,
		column(vacationPeriodColumns, "professionalId"),
		column(vacationPeriodColumns, "userId"),
		column(vacationPeriodColumns, "acquisitionStartDate"),
		column(vacationPeriodColumns, "acquisitionEndDate"),
		column(vacationPeriodColumns, "usageStartDate"),
		column(vacationPeriodColumns, "usageEndDate"),
		column(vacationPeriodColumns, "totalDays"),
		column(vacationPeriodColumns, "revenueDeduction"),
		vacationReturning,
	)

	v, err := scanVacation(s.pool.QueryRow(ctx, query,
		n.ProfessionalID, n.UserID,
		n.Acquisition.Start.Time(), n.Acquisition.End.Time(),
		n.Usage.Start.Time(), n.Usage.End.Time(),
		n.Plan.TotalDays(), n.Plan.RevenueDeduction().String()))
	if err != nil {
		return nil, fmt.Errorf("create vacation period: %w", err)
	}
	return v, nil
}

func (s *Store) listVacations(ctx context.Context, where string, args ...any) ([]vacation.VacationPeriod, error) {
	result := make([]vacation.VacationPeriod, 0)

	rows, err := s.pool.Query(ctx, vacationSelect+where+" ORDER BY created_at, id", args...)
	if err != nil {
		return nil, fmt.Errorf("list vacation periods: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		v, err := scanVacation(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list vacation periods: %w", err)
	}
	return result, nil
}

func (s *Store) ListVacationPeriods(ctx context.Context, userID string) ([]vacation.VacationPeriod, error) {
	if !isUUID(userID) {
		return []vacation.VacationPeriod{}, nil
	}
	return s.listVacations(ctx, " WHERE user_id = $1", userID)
}

func (s *Store) ListVacationsByProfessional(ctx context.Context, professionalID, userID string) ([]vacation.VacationPeriod, error) {
	if !isUUID(professionalID) || !isUUID(userID) {
		return []vacation.VacationPeriod{}, nil
	}
	return s.listVacations(ctx, " WHERE professional_id = $1 AND user_id = $2", professionalID, userID)
}

func (s *Store) UpdateVacationPeriod(ctx context.Context, id, userID string, patch vacation.VacationPeriodPatch) (*vacation.VacationPeriod, error) {
	if !isUUID(id) || !isUUID(userID) {
		return nil, nil
	}
	if patch.IsZero() {
		row := s.pool.QueryRow(ctx, vacationSelect+" WHERE id = $1 AND user_id = $2", id, userID)
		v, err := scanVacation(row)
		if err != nil {
			return nil, fmt.Errorf("get vacation period: %w", err)
		}
		return v, nil
	}

	var (
		sets []string
		args []any
	)
	set := func(field string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column(vacationPeriodColumns, field), len(args)))
	}
	if patch.AcquisitionStart != nil {
		set("acquisitionStartDate", patch.AcquisitionStart.Time())
	}
	if patch.AcquisitionEnd != nil {
		set("acquisitionEndDate", patch.AcquisitionEnd.Time())
	}
	if patch.UsageStart != nil {
		set("usageStartDate", patch.UsageStart.Time())
	}
	if patch.UsageEnd != nil {
		set("usageEndDate", patch.UsageEnd.Time())
	}
	if patch.Plan != nil {
		set("totalDays", patch.Plan.TotalDays())
		set("revenueDeduction", patch.Plan.RevenueDeduction().String())
	}

	args = append(args, id, userID)
	query := fmt.Sprintf(
		"UPDATE vacation_periods SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args)-1, len(args), vacationReturning,
	)

	v, err := scanVacation(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("update vacation period: %w", err)
	}
	return v, nil
}

func (s *Store) DeleteVacationPeriod(ctx context.Context, id, userID string) (bool, error) {
	if !isUUID(id) || !isUUID(userID) {
		return false, nil
	}
	tag, err := s.pool.Exec(ctx,
		"DELETE FROM vacation_periods WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, fmt.Errorf("delete vacation period: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteAllVacationPeriods(ctx context.Context, userID string) error {
	if !isUUID(userID) {
		return nil
	}
	if _, err := s.pool.Exec(ctx, "DELETE FROM vacation_periods WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("delete all vacation periods: %w", err)
	}
	return nil
}
