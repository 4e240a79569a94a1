package repositories

import (
	"context"

	"community-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type InvitationRepository struct {
	DB *pgxpool.Pool
}

func NewInvitationRepository(db *pgxpool.Pool) *InvitationRepository {
	return &InvitationRepository{DB: db}
}

// Create inserts a new invitation
func (r *InvitationRepository) Create(ctx context.Context, inv *models.Invitation) error {
	query := `
		INSERT INTO invitations(invitation_code, invited_name, invited_email, invited_phone, invited_by, status, expires_at)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(ctx, query,
		inv.InvitationCode,
		inv.InvitedName,
		inv.InvitedEmail,
		inv.InvitedPhone,
		inv.InvitedBy,
		inv.Status,
		inv.ExpiresAt,
	).Scan(&inv.ID, &inv.CreatedAt)
}

// GetByCode retrieves an invitation by its code
func (r *InvitationRepository) GetByCode(ctx context.Context, code string) (*models.Invitation, error) {
	query := `
		SELECT i.id, i.invitation_code, i.invited_name, i.invited_email, i.invited_phone,
		       i.invited_by, u.full_name, i.status, i.expires_at, i.used_by, i.used_at, i.created_at
		FROM invitations i
		JOIN users u ON u.id = i.invited_by
		WHERE i.invitation_code = $1
	`
	return r.scanInvitation(r.DB.QueryRow(ctx, query, code))
}

// Get retrieves an invitation by ID
func (r *InvitationRepository) Get(ctx context.Context, id int) (*models.Invitation, error) {
	query := `
		SELECT i.id, i.invitation_code, i.invited_name, i.invited_email, i.invited_phone,
		       i.invited_by, u.full_name, i.status, i.expires_at, i.used_by, i.used_at, i.created_at
		FROM invitations i
		JOIN users u ON u.id = i.invited_by
		WHERE i.id = $1
	`
	return r.scanInvitation(r.DB.QueryRow(ctx, query, id))
}

// ListByInviter returns all invitations created by a user, newest first
func (r *InvitationRepository) ListByInviter(ctx context.Context, userID int) ([]models.Invitation, error) {
	query := `
		SELECT i.id, i.invitation_code, i.invited_name, i.invited_email, i.invited_phone,
		       i.invited_by, u.full_name, i.status, i.expires_at, i.used_by, i.used_at, i.created_at
		FROM invitations i
		JOIN users u ON u.id = i.invited_by
		WHERE i.invited_by = $1
		ORDER BY i.created_at DESC
	`

	rows, err := r.DB.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []models.Invitation
	for rows.Next() {
		inv, err := r.scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, *inv)
	}

	return invitations, rows.Err()
}

// MarkUsed transitions a pending invitation to used, guarding against reuse
func (r *InvitationRepository) MarkUsed(ctx context.Context, code string, usedBy int) error {
	query := `
		UPDATE invitations
		SET status = 'used', used_by = $2, used_at = NOW()
		WHERE invitation_code = $1 AND status = 'pending'
	`
	_, err := r.DB.Exec(ctx, query, code, usedBy)
	return err
}

// MarkExpired persists a lazy expiry evaluation
func (r *InvitationRepository) MarkExpired(ctx context.Context, id int) error {
	query := `UPDATE invitations SET status = 'expired' WHERE id = $1 AND status = 'pending'`
	_, err := r.DB.Exec(ctx, query, id)
	return err
}

// Delete removes a pending invitation. Returns the number of rows removed
// so the service can distinguish "not pending" from "gone"
func (r *InvitationRepository) Delete(ctx context.Context, id, inviterID int) (int64, error) {
	query := `DELETE FROM invitations WHERE id = $1 AND invited_by = $2 AND status = 'pending'`
	tag, err := r.DB.Exec(ctx, query, id, inviterID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *InvitationRepository) scanInvitation(row interface{ Scan(...any) error }) (*models.Invitation, error) {
	var inv models.Invitation
	err := row.Scan(
		&inv.ID, &inv.InvitationCode, &inv.InvitedName, &inv.InvitedEmail, &inv.InvitedPhone,
		&inv.InvitedBy, &inv.InviterName, &inv.Status, &inv.ExpiresAt, &inv.UsedBy, &inv.UsedAt, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
