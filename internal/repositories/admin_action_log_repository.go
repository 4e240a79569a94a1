package repositories

import (
	"context"

	"community-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminActionLogRepository struct {
	DB *pgxpool.Pool
}

func NewAdminActionLogRepository(db *pgxpool.Pool) *AdminActionLogRepository {
	return &AdminActionLogRepository{DB: db}
}

// Create records one admin action
func (r *AdminActionLogRepository) Create(ctx context.Context, l *models.AdminActionLog) error {
	query := `
		INSERT INTO admin_action_logs(admin_user_id, action, target_type, target_id, details)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(ctx, query,
		l.AdminUserID,
		l.Action,
		l.TargetType,
		l.TargetID,
		l.Details,
	).Scan(&l.ID, &l.CreatedAt)
}

// List returns recent admin actions with the acting admin's name
func (r *AdminActionLogRepository) List(ctx context.Context, limit, offset int) ([]models.AdminActionLog, error) {
	query := `
		SELECT a.id, a.admin_user_id, u.full_name, a.action, a.target_type, a.target_id, a.details, a.created_at
		FROM admin_action_logs a
		JOIN users u ON u.id = a.admin_user_id
		ORDER BY a.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.AdminActionLog
	for rows.Next() {
		var l models.AdminActionLog
		if err := rows.Scan(&l.ID, &l.AdminUserID, &l.AdminName, &l.Action, &l.TargetType, &l.TargetID, &l.Details, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}
