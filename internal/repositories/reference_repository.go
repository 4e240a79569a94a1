package repositories

import (
	"context"

	"community-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ReferenceRepository struct {
	DB *pgxpool.Pool
}

func NewReferenceRepository(db *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{DB: db}
}

// ListByKind returns all reference items of one kind, sorted by name
func (r *ReferenceRepository) ListByKind(ctx context.Context, kind string) ([]models.ReferenceItem, error) {
	query := `
		SELECT id, kind, name, parent_id
		FROM reference_items
		WHERE kind = $1
		ORDER BY name
	`
	return r.queryItems(ctx, query, kind)
}

// ListChildren returns the items of childKind linked to the named parent.
// An empty result means the parent has no recorded children
func (r *ReferenceRepository) ListChildren(ctx context.Context, childKind, parentKind, parentName string) ([]models.ReferenceItem, error) {
	query := `
		SELECT c.id, c.kind, c.name, c.parent_id
		FROM reference_items c
		JOIN reference_items p ON p.id = c.parent_id
		WHERE c.kind = $1 AND p.kind = $2 AND p.name = $3
		ORDER BY c.name
	`
	return r.queryItems(ctx, query, childKind, parentKind, parentName)
}

func (r *ReferenceRepository) queryItems(ctx context.Context, query string, args ...any) ([]models.ReferenceItem, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.ReferenceItem
	for rows.Next() {
		var item models.ReferenceItem
		if err := rows.Scan(&item.ID, &item.Kind, &item.Name, &item.ParentID); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
