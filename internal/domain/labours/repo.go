package labours

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+Table).Scan(&n)
	return n, err
}

// CountByCategoryPath сколько работ ссылается на путь категории (в любом написании).
func (r *Repo) CountByCategoryPath(ctx context.Context, path string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM `+Table+` WHERE category_path = $1
	`, Labour{CategoryPath: path}.NormalizedCategoryPath()).Scan(&n)
	return n, err
}
