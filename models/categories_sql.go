package models

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type sqlCategoryRepo struct {
	db *sqlx.DB
}

// NewSQLCategoryRepository returns a CategoryRepository backed by the
// given pool.
func NewSQLCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &sqlCategoryRepo{db: db}
}

func (r *sqlCategoryRepo) List(ctx context.Context) ([]Category, error) {
	query := `SELECT category_id, category_name FROM event_categories ORDER BY category_name`

	var categories []Category
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
