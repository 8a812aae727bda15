package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/unchain0/sistema-ferias/vacation"
)

const uniqueViolation = "23505"

var userSelect = fmt.Sprintf(
	"SELECT %s::text, %s, %s, %s, %s FROM users",
	column(userColumns, "id"),
	column(userColumns, "email"),
	column(userColumns, "name"),
	column(userColumns, "passwordHash"),
	column(userColumns, "createdAt"),
)

func scanUser(row pgx.Row) (*vacation.User, error) {
	var u vacation.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}

// CreateUser lets the store assign both the id and the timestamp.
func (s *Store) CreateUser(ctx context.Context, n vacation.NewUser) (*vacation.User, error) {
	email := strings.ToLower(strings.TrimSpace(n.Email))

	query := fmt.Sprintf(`
		INSERT INTO users (%s, %s, %s)
		VALUES ($1, $2, $3)
		RETURNING %s::text, %s, %s, %s, %s`,
		column(userColumns, "email"),
		column(userColumns, "name"),
		column(userColumns, "passwordHash"),
		column(userColumns, "id"),
		column(userColumns, "email"),
		column(userColumns, "name"),
		column(userColumns, "passwordHash"),
		column(userColumns, "createdAt"),
	)

	u, err := scanUser(s.pool.QueryRow(ctx, query, email, n.Name, n.PasswordHash))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, vacation.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*vacation.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	row := s.pool.QueryRow(ctx, userSelect+" WHERE email = $1", email)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (s *Store) GetUserByID(ctx context.Context, id string) (*vacation.User, error) {
	if !isUUID(id) {
		return nil, nil
	}
	row := s.pool.QueryRow(ctx, userSelect+" WHERE id = $1", id)
	u, err := scanUser(row)
	if err != nil {
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return u, nil
}
