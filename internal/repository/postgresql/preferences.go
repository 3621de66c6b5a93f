package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/sriram315/project-dashboard-go/internal/domain/filter"
	"github.com/sriram315/project-dashboard-go/internal/pkg/database"
)

type preferenceRepositoryImpl struct {
	db *database.DB
}

// NewPreferenceRepository returns a filter.KeyValueStore backed by the
// user_preferences table. Callers pass fully namespaced keys.
func NewPreferenceRepository(db *database.DB) filter.KeyValueStore {
	return &preferenceRepositoryImpl{db: db}
}

func (r *preferenceRepositoryImpl) Get(ctx context.Context, key string) (string, bool, error) {
	q := GetQuerier(ctx, r.db)

	var value string
	err := q.QueryRow(ctx, `SELECT value FROM user_preferences WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", filter.ErrStoreUnavailable, err)
	}
	return value, true, nil
}

func (r *preferenceRepositoryImpl) Set(ctx context.Context, key string, value string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO user_preferences (id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := q.Exec(ctx, query, uuid.New().String(), key, value); err != nil {
		return fmt.Errorf("%w: %v", filter.ErrStoreUnavailable, err)
	}
	return nil
}
