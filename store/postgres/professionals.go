package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/unchain0/sistema-ferias/vacation"
)

// monthly_revenue is selected as text: the remote store hands numeric
// columns back as strings and the adapter owns the coercion.
var professionalReturning = fmt.Sprintf(
	"%s::text, %s::text, %s, %s, %s::text, %s",
	column(professionalColumns, "id"),
	column(professionalColumns, "userId"),
	column(professionalColumns, "name"),
	column(professionalColumns, "clientManager"),
	column(professionalColumns, "monthlyRevenue"),
	column(professionalColumns, "createdAt"),
)

var professionalSelect = "SELECT " + professionalReturning + " FROM professionals"

func scanProfessional(row pgx.Row) (*vacation.Professional, error) {
	var (
		p       vacation.Professional
		revenue string
	)
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.ClientManager, &revenue, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan professional: %w", err)
	}
	p.MonthlyRevenue, err = decimal.NewFromString(revenue)
	if err != nil {
		return nil, fmt.Errorf("coerce monthly revenue %q: %w", revenue, err)
	}
	return &p, nil
}

func (s *Store) CreateProfessional(ctx context.Context, n vacation.NewProfessional) (*vacation.Professional, error) {
	if !n.MonthlyRevenue.IsPositive() {
		return nil, vacation.ErrNonPositiveRevenue
	}

	query := fmt.Sprintf(`
		INSERT INTO professionals (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`,
		column(professionalColumns, "userId"),
		column(professionalColumns, "name"),
		column(professionalColumns, "clientManager"),
		column(professionalColumns, "monthlyRevenue"),
		professionalReturning,
	)

	p, err := scanProfessional(s.pool.QueryRow(ctx, query,
		n.UserID, n.Name, n.ClientManager, n.MonthlyRevenue.String()))
	if err != nil {
		return nil, fmt.Errorf("create professional: %w", err)
	}
	return p, nil
}

func (s *Store) ListProfessionals(ctx context.Context, userID string) ([]vacation.Professional, error) {
	result := make([]vacation.Professional, 0)
	if !isUUID(userID) {
		return result, nil
	}

	rows, err := s.pool.Query(ctx, professionalSelect+" WHERE user_id = $1 ORDER BY created_at, id", userID)
	if err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProfessional(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list professionals: %w", err)
	}
	return result, nil
}

func (s *Store) GetProfessional(ctx context.Context, id, userID string) (*vacation.Professional, error) {
	if !isUUID(id) || !isUUID(userID) {
		return nil, nil
	}
	row := s.pool.QueryRow(ctx, professionalSelect+" WHERE id = $1 AND user_id = $2", id, userID)
	p, err := scanProfessional(row)
	if err != nil {
		return nil, fmt.Errorf("get professional: %w", err)
	}
	return p, nil
}

// UpdateProfessional builds the SET clause from the patch's present
// fields only, through the column map.
func (s *Store) UpdateProfessional(ctx context.Context, id, userID string, patch vacation.ProfessionalPatch) (*vacation.Professional, error) {
	if !isUUID(id) || !isUUID(userID) {
		return nil, nil
	}
	if patch.MonthlyRevenue != nil && !patch.MonthlyRevenue.IsPositive() {
		return nil, vacation.ErrNonPositiveRevenue
	}
	if patch.IsZero() {
		return s.GetProfessional(ctx, id, userID)
	}

	var (
		sets []string
		args []any
	)
	set := func(field string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", column(professionalColumns, field), len(args)))
	}
	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.ClientManager != nil {
		set("clientManager", *patch.ClientManager)
	}
	if patch.MonthlyRevenue != nil {
		set("monthlyRevenue", patch.MonthlyRevenue.String())
	}

	args = append(args, id, userID)
	query := fmt.Sprintf(
		"UPDATE professionals SET %s WHERE id = $%d AND user_id = $%d RETURNING %s",
		strings.Join(sets, ", "), len(args)-1, len(args), professionalReturning,
	)

	p, err := scanProfessional(s.pool.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("update professional: %w", err)
	}
	return p, nil
}

// DeleteProfessional relies on the FK cascade to drop the professional's
// vacation periods in the same statement.
func (s *Store) DeleteProfessional(ctx context.Context, id, userID string) (bool, error) {
	if !isUUID(id) || !isUUID(userID) {
		return false, nil
	}
	tag, err := s.pool.Exec(ctx,
		"DELETE FROM professionals WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return false, fmt.Errorf("delete professional: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteAllProfessionals(ctx context.Context, userID string) error {
	if !isUUID(userID) {
		return nil
	}
	if _, err := s.pool.Exec(ctx, "DELETE FROM professionals WHERE user_id = $1", userID); err != nil {
		return fmt.Errorf("delete all professionals: %w", err)
	}
	return nil
}
