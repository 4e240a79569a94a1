package repositories

import (
	"context"

	"community-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type LoginLogRepository struct {
	DB *pgxpool.Pool
}

func NewLoginLogRepository(db *pgxpool.Pool) *LoginLogRepository {
	return &LoginLogRepository{DB: db}
}

// Create records one login attempt
func (r *LoginLogRepository) Create(ctx context.Context, l *models.LoginLog) error {
	query := `
		INSERT INTO login_logs(user_id, identifier, success, ip_address, user_agent)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(ctx, query,
		l.UserID,
		l.Identifier,
		l.Success,
		l.IPAddress,
		l.UserAgent,
	).Scan(&l.ID, &l.CreatedAt)
}

// List returns the most recent login attempts
func (r *LoginLogRepository) List(ctx context.Context, limit, offset int) ([]models.LoginLog, error) {
	query := `
		SELECT id, user_id, identifier, success, ip_address, user_agent, created_at
		FROM login_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.LoginLog
	for rows.Next() {
		var l models.LoginLog
		if err := rows.Scan(&l.ID, &l.UserID, &l.Identifier, &l.Success, &l.IPAddress, &l.UserAgent, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}
