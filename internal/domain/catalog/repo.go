package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

func (r *Repo) CountCategories(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+CategoriesTable).Scan(&n)
	return n, err
}

func (r *Repo) CountRoots(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+CategoriesTable+` WHERE parent_id IS NULL`).Scan(&n)
	return n, err
}

func (r *Repo) GetByPath(ctx context.Context, path string) (*Category, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT c.id, c.name, COALESCE(c.number,''), c.path, COALESCE(p.path,''), c.parent_id, c.depth
		FROM `+CategoriesTable+` c
		LEFT JOIN `+CategoriesTable+` p ON p.id = c.parent_id
		WHERE c.path = $1
	`, NormalizePath(path))
	var (
		c        Category
		parentID *uuid.UUID
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Number, &c.Path, &c.ParentPath, &parentID, &c.Depth); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	c.ParentID = parentID
	return &c, nil
}
