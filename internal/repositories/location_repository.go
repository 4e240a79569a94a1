package repositories

import (
	"context"

	"community-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LocationRepository struct {
	DB *pgxpool.Pool
}

func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{DB: db}
}

// ListDistricts returns all districts sorted by name
func (r *LocationRepository) ListDistricts(ctx context.Context) ([]models.District, error) {
	query := `SELECT id, name, state FROM districts ORDER BY name`

	rows, err := r.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var districts []models.District
	for rows.Next() {
		var d models.District
		if err := rows.Scan(&d.ID, &d.Name, &d.State); err != nil {
			return nil, err
		}
		districts = append(districts, d)
	}

	return districts, rows.Err()
}

// ListPostOfficesByPin returns the post offices serving a PIN code
func (r *LocationRepository) ListPostOfficesByPin(ctx context.Context, pinCode string) ([]models.PostOffice, error) {
	query := `
		SELECT id, name, pin_code, district, state
		FROM post_offices
		WHERE pin_code = $1
		ORDER BY name
	`

	rows, err := r.DB.Query(ctx, query, pinCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offices []models.PostOffice
	for rows.Next() {
		var p models.PostOffice
		if err := rows.Scan(&p.ID, &p.Name, &p.PinCode, &p.District, &p.State); err != nil {
			return nil, err
		}
		offices = append(offices, p)
	}

	return offices, rows.Err()
}
