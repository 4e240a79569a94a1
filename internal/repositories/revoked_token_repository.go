package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RevokedTokenRepository struct {
	DB *pgxpool.Pool
}

func NewRevokedTokenRepository(db *pgxpool.Pool) *RevokedTokenRepository {
	return &RevokedTokenRepository{DB: db}
}

// Revoke blacklists a token ID until its natural expiry
func (r *RevokedTokenRepository) Revoke(ctx context.Context, tokenID string, userID int, expiresAt time.Time) error {
	query := `
		INSERT INTO revoked_tokens(token_id, user_id, expires_at)
		VALUES($1, $2, $3)
		ON CONFLICT (token_id) DO NOTHING
	`
	_, err := r.DB.Exec(ctx, query, tokenID, userID, expiresAt)
	return err
}

// IsRevoked reports whether a token ID has been blacklisted
func (r *RevokedTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	query := `SELECT COUNT(*) FROM revoked_tokens WHERE token_id = $1`
	var count int
	err := r.DB.QueryRow(ctx, query, tokenID).Scan(&count)
	return count > 0, err
}

// CleanupExpired removes blacklist rows past their token expiry
// (should be run as a background job)
func (r *RevokedTokenRepository) CleanupExpired(ctx context.Context) error {
	query := `DELETE FROM revoked_tokens WHERE expires_at < NOW()`
	_, err := r.DB.Exec(ctx, query)
	return err
}
