package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/sriram315/project-dashboard-go/internal/pkg/database"
)

// GetQuerier returns either an ambient transaction or the pool.
// Used in repositories to support both transactional and non-transactional operations.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value("tx").(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
