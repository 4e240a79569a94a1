package repositories

import (
	"context"
	"encoding/json"

	"community-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ChildRepository struct {
	DB *pgxpool.Pool
}

func NewChildRepository(db *pgxpool.Pool) *ChildRepository {
	return &ChildRepository{DB: db}
}

// ReplaceForUser replaces the full child list for a user in one transaction.
// The children_details section is saved as a unit, so partial writes from a
// failed save must never be visible
func (r *ChildRepository) ReplaceForUser(ctx context.Context, userID int, children []models.Child) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM children WHERE user_id = $1`, userID); err != nil {
		return err
	}

	query := `
		INSERT INTO children(id, user_id, first_name, second_name, gender, date_of_birth, position,
			kulam, kula_deivam, kaani, education, professions)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	for _, c := range children {
		education, err := json.Marshal(c.Education)
		if err != nil {
			return err
		}
		professions, err := json.Marshal(c.Professions)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, query,
			c.ID, userID, c.FirstName, c.SecondName, c.Gender, c.DateOfBirth, c.Position,
			c.Kulam, c.KulaDeivam, c.Kaani, education, professions,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListByUser returns the children ordered by position
func (r *ChildRepository) ListByUser(ctx context.Context, userID int) ([]models.Child, error) {
	query := `
		SELECT id, first_name, second_name, gender, date_of_birth, position,
		       kulam, kula_deivam, kaani, education, professions
		FROM children
		WHERE user_id = $1
		ORDER BY position
	`

	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var children []models.Child
	for rows.Next() {
		var c models.Child
		var education, professions []byte
		if err := rows.Scan(&c.ID, &c.FirstName, &c.SecondName, &c.Gender, &c.DateOfBirth, &c.Position,
			&c.Kulam, &c.KulaDeivam, &c.Kaani, &education, &professions); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(education, &c.Education); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(professions, &c.Professions); err != nil {
			return nil, err
		}
		children = append(children, c)
	}

	return children, rows.Err()
}

// UpdateKulamFields overwrites the clan triple on every child of the user
// (copy-map propagation from the parent's collected value)
func (r *ChildRepository) UpdateKulamFields(ctx context.Context, userID int, k models.KulamFields) error {
	query := `
		UPDATE children SET kulam = $2, kula_deivam = $3, kaani = $4
		WHERE user_id = $1
	`
	_, err := r.DB.Exec(ctx, query, userID, k.Kulam, k.KulaDeivam, k.Kaani)
	return err
}
