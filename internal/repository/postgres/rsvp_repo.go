package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"eventrsvp/internal/domain"
)

// Postgres error codes and constraint names the repository translates.
const (
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
	pqNumericOutOfRange   = "22003"
	pqInvalidText         = "22P02"
	emailUniqueConstraint = "rsvps_email_key"
)

const rsvpColumns = `id, name, email, attending, num_of_guests, num_of_children, update_token, created_at, updated_at`

type rsvpRepository struct {
	DB *sql.DB
}

func NewRSVPRepository(db *sql.DB) domain.RSVPRepository {
	return &rsvpRepository{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRSVP(row rowScanner) (*domain.RSVP, error) {
	r := &domain.RSVP{}
	var guests, children sql.NullInt64
	err := row.Scan(&r.ID, &r.Name, &r.Email, &r.Attending, &guests, &children, &r.UpdateToken, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if guests.Valid {
		v := int(guests.Int64)
		r.NumOfGuests = &v
	}
	if children.Valid {
		v := int(children.Int64)
		r.NumOfChildren = &v
	}
	return r, nil
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

// translateError maps driver errors to domain errors.
func translateError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var perr *pq.Error
	if errors.As(err, &perr) {
		switch perr.Code {
		case pqUniqueViolation:
			if perr.Constraint == emailUniqueConstraint || perr.Constraint == "" {
				return domain.ErrDuplicateEmail
			}
		case pqCheckViolation:
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, perr.Constraint)
		case pqNumericOutOfRange:
			return fmt.Errorf("%w: %s", domain.ErrInvalidInput, perr.Message)
		case pqInvalidText:
			// Malformed UUID: no such row can exist.
			return domain.ErrNotFound
		}
	}
	return err
}

// whereClause renders filter as a WHERE clause with numbered placeholders.
func whereClause(filter domain.RSVPFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Attending != nil {
		args = append(args, *filter.Attending)
		conds = append(conds, fmt.Sprintf("attending = $%d", len(args)))
	}
	if filter.Email != nil {
		args = append(args, *filter.Email)
		conds = append(conds, fmt.Sprintf("email = $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r *rsvpRepository) Create(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		INSERT INTO rsvps (name, email, attending, num_of_guests, num_of_children, update_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		rsvp.Name, rsvp.Email, rsvp.Attending, nullInt(rsvp.NumOfGuests), nullInt(rsvp.NumOfChildren),
		rsvp.UpdateToken, rsvp.CreatedAt, rsvp.UpdatedAt,
	).Scan(&rsvp.ID)
	if err != nil {
		return translateError(err)
	}
	return nil
}

func (r *rsvpRepository) GetByID(ctx context.Context, id string) (*domain.RSVP, error) {
	query := `SELECT ` + rsvpColumns + ` FROM rsvps WHERE id = $1`
	rsvp, err := scanRSVP(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, translateError(err)
	}
	return rsvp, nil
}

func (r *rsvpRepository) GetByToken(ctx context.Context, token string) (*domain.RSVP, error) {
	query := `SELECT ` + rsvpColumns + ` FROM rsvps WHERE update_token = $1`
	rsvp, err := scanRSVP(r.DB.QueryRowContext(ctx, query, token))
	if err != nil {
		return nil, translateError(err)
	}
	return rsvp, nil
}

func (r *rsvpRepository) FindOne(ctx context.Context, filter domain.RSVPFilter) (*domain.RSVP, error) {
	where, args := whereClause(filter)
	query := `SELECT ` + rsvpColumns + ` FROM rsvps` + where + ` ORDER BY created_at ASC LIMIT 1`
	rsvp, err := scanRSVP(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, translateError(err)
	}
	return rsvp, nil
}

func (r *rsvpRepository) List(ctx context.Context, filter domain.RSVPFilter) ([]*domain.RSVP, error) {
	where, args := whereClause(filter)
	query := `SELECT ` + rsvpColumns + ` FROM rsvps` + where + ` ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rsvps := make([]*domain.RSVP, 0)
	for rows.Next() {
		rsvp, err := scanRSVP(rows)
		if err != nil {
			return nil, err
		}
		rsvps = append(rsvps, rsvp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rsvps, nil
}

func (r *rsvpRepository) Count(ctx context.Context, filter domain.RSVPFilter) (int, error) {
	where, args := whereClause(filter)
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM rsvps`+where, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *rsvpRepository) Update(ctx context.Context, rsvp *domain.RSVP) error {
	query := `
		UPDATE rsvps
		SET name = $1, email = $2, attending = $3, num_of_guests = $4, num_of_children = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.DB.ExecContext(ctx, query,
		rsvp.Name, rsvp.Email, rsvp.Attending, nullInt(rsvp.NumOfGuests), nullInt(rsvp.NumOfChildren),
		rsvp.UpdatedAt, rsvp.ID,
	)
	if err != nil {
		return translateError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *rsvpRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM rsvps WHERE id = $1`, id)
	if err != nil {
		return translateError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *rsvpRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}
