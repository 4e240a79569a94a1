package repositories

import (
	"context"
	"strconv"
	"strings"

	"community-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	DB *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{DB: db}
}

const userColumns = `id, full_name, email, phone, password_hash, user_type, approval_status,
	created_via_invitation, intro_completed, questions_completed, profile_completed,
	profile_completion_step, gender, is_married, has_children, marriage_type, role,
	created_at, updated_at, last_login_at`

func (r *UserRepository) scanUser(row interface{ Scan(...any) error }) (*models.UserAccount, error) {
	var u models.UserAccount
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.Phone, &u.PasswordHash, &u.UserType, &u.ApprovalStatus,
		&u.CreatedViaInvitation, &u.IntroCompleted, &u.QuestionsCompleted, &u.ProfileCompleted,
		&u.ProfileCompletionStep, &u.Gender, &u.IsMarried, &u.HasChildren, &u.MarriageType, &u.Role,
		&u.CreatedAt, &u.UpdatedAt, &u.LastLoginAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user account
func (r *UserRepository) Create(ctx context.Context, u *models.UserAccount) error {
	query := `
		INSERT INTO users(full_name, email, phone, password_hash, user_type, approval_status, created_via_invitation)
		VALUES($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	return r.DB.QueryRow(ctx, query,
		u.FullName,
		u.Email,
		u.Phone,
		u.PasswordHash,
		u.UserType,
		u.ApprovalStatus,
		u.CreatedViaInvitation,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

// GetByID retrieves a user by primary key
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.UserAccount, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanUser(r.DB.QueryRow(ctx, query, id))
}

// GetByIdentifier retrieves a user by email or phone
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.UserAccount, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR phone = $1`
	return r.scanUser(r.DB.QueryRow(ctx, query, strings.TrimSpace(identifier)))
}

// EmailOrPhoneExists reports whether an account already uses the email or phone
func (r *UserRepository) EmailOrPhoneExists(ctx context.Context, email, phone string) (bool, error) {
	query := `SELECT COUNT(*) FROM users WHERE email = $1 OR phone = $2`
	var count int
	err := r.DB.QueryRow(ctx, query, email, phone).Scan(&count)
	return count > 0, err
}

// SetIntroAnswers persists the questionnaire plus derived fields and marks
// the intro stage complete
func (r *UserRepository) SetIntroAnswers(ctx context.Context, userID int, a *models.IntroAnswers) error {
	query := `
		UPDATE users
		SET gender = $2, marriage_type = $3, is_married = $4, has_children = $5, role = $6,
		    intro_completed = TRUE, questions_completed = TRUE, updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.DB.Exec(ctx, query, userID, a.Gender, a.MarriageType, a.IsMarried, a.HasChildren, a.Role)
	return err
}

// UpdateProfileStep advances profile_completion_step
func (r *UserRepository) UpdateProfileStep(ctx context.Context, userID int, step string) error {
	query := `UPDATE users SET profile_completion_step = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.DB.Exec(ctx, query, userID, step)
	return err
}

// MarkProfileCompleted sets the terminal profile state
func (r *UserRepository) MarkProfileCompleted(ctx context.Context, userID int) error {
	query := `
		UPDATE users
		SET profile_completed = TRUE, profile_completion_step = 'completed', updated_at = NOW()
		WHERE id = $1
	`
	_, err := r.DB.Exec(ctx, query, userID)
	return err
}

// UpdateApprovalStatus sets approval_status (admin operation)
func (r *UserRepository) UpdateApprovalStatus(ctx context.Context, userID int, status string) error {
	query := `UPDATE users SET approval_status = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.DB.Exec(ctx, query, userID, status)
	return err
}

// TouchLastLogin records a successful login time
func (r *UserRepository) TouchLastLogin(ctx context.Context, userID int) error {
	query := `UPDATE users SET last_login_at = NOW() WHERE id = $1`
	_, err := r.DB.Exec(ctx, query, userID)
	return err
}

// UpdateBasics updates the editable profile basics
func (r *UserRepository) UpdateBasics(ctx context.Context, userID int, fullName, phone string) error {
	query := `UPDATE users SET full_name = $2, phone = $3, updated_at = NOW() WHERE id = $1`
	_, err := r.DB.Exec(ctx, query, userID, fullName, phone)
	return err
}

// List returns a filtered page of users plus the unpaged total
func (r *UserRepository) List(ctx context.Context, filter models.UserListFilter) ([]models.UserAccount, int, error) {
	where := `WHERE 1=1`
	args := []any{}
	idx := 1

	if filter.ApprovalStatus != "" {
		where += ` AND approval_status = $` + itoa(idx)
		args = append(args, filter.ApprovalStatus)
		idx++
	}
	if filter.Search != "" {
		where += ` AND (full_name ILIKE $` + itoa(idx) + ` OR email ILIKE $` + itoa(idx) + ` OR phone ILIKE $` + itoa(idx) + `)`
		args = append(args, "%"+filter.Search+"%")
		idx++
	}

	var total int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM users `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + userColumns + ` FROM users ` + where +
		` ORDER BY created_at DESC LIMIT $` + itoa(idx) + ` OFFSET $` + itoa(idx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []models.UserAccount
	for rows.Next() {
		u, err := r.scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, *u)
	}

	return users, total, rows.Err()
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
