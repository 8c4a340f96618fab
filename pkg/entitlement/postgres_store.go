package entitlement

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gatekit/gatekit/pkg/pg"
)

// PostgresStore reads and deletes profile rows in PostgreSQL.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a profile store backed by the given pool.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Profile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	const query = `SELECT plan, COALESCE(display_name, '') FROM profiles WHERE id = $1`

	profile := Profile{ID: userID}
	if err := s.db.QueryRow(ctx, query, userID).Scan(&profile.Plan, &profile.DisplayName); err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrProfileNotFound
		}
		return nil, errors.Join(ErrStoreFailure, err)
	}

	return &profile, nil
}

func (s *PostgresStore) Delete(ctx context.Context, userID uuid.UUID) error {
	const query = `DELETE FROM profiles WHERE id = $1`

	if _, err := s.db.Exec(ctx, query, userID); err != nil {
		return errors.Join(ErrStoreFailure, err)
	}
	return nil
}
