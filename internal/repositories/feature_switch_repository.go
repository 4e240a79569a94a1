package repositories

import (
	"context"

	"community-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type FeatureSwitchRepository struct {
	DB *pgxpool.Pool
}

func NewFeatureSwitchRepository(db *pgxpool.Pool) *FeatureSwitchRepository {
	return &FeatureSwitchRepository{DB: db}
}

// GetAll returns every feature switch
func (r *FeatureSwitchRepository) GetAll(ctx context.Context) ([]models.FeatureSwitch, error) {
	query := `SELECT key, enabled, updated_by, updated_at FROM feature_switches ORDER BY key`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var switches []models.FeatureSwitch
	for rows.Next() {
		var s models.FeatureSwitch
		if err := rows.Scan(&s.Key, &s.Enabled, &s.UpdatedBy, &s.UpdatedAt); err != nil {
			return nil, err
		}
		switches = append(switches, s)
	}

	return switches, rows.Err()
}

// Get returns one switch by key
func (r *FeatureSwitchRepository) Get(ctx context.Context, key string) (*models.FeatureSwitch, error) {
	query := `SELECT key, enabled, updated_by, updated_at FROM feature_switches WHERE key = $1`

	var s models.FeatureSwitch
	if err := r.DB.QueryRow(ctx, query, key).Scan(&s.Key, &s.Enabled, &s.UpdatedBy, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert creates or updates a switch, recording who changed it
func (r *FeatureSwitchRepository) Upsert(ctx context.Context, key string, enabled bool, updatedBy int) error {
	query := `
		INSERT INTO feature_switches(key, enabled, updated_by, updated_at)
		VALUES($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE SET enabled = EXCLUDED.enabled, updated_by = EXCLUDED.updated_by, updated_at = NOW()
	`
	_, err := r.DB.Exec(ctx, query, key, enabled, updatedBy)
	return err
}
