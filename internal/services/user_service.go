package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"community-backend/internal/auth"
	"community-backend/internal/models"
	"community-backend/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	UserRepo       *repositories.UserRepository
	InvitationRepo *repositories.InvitationRepository
	LoginLogRepo   *repositories.LoginLogRepository
	RevokedRepo    *repositories.RevokedTokenRepository
	JWTManager     *auth.JWTManager
}

func NewUserService(userRepo *repositories.UserRepository, invitationRepo *repositories.InvitationRepository, loginLogRepo *repositories.LoginLogRepository, revokedRepo *repositories.RevokedTokenRepository, jwtManager *auth.JWTManager) *UserService {
	return &UserService{
		UserRepo:       userRepo,
		InvitationRepo: invitationRepo,
		LoginLogRepo:   loginLogRepo,
		RevokedRepo:    revokedRepo,
		JWTManager:     jwtManager,
	}
}

// Register creates an account. A valid invitation code marks the account
// invitation-created (routing it through the intro questionnaire) and
// auto-approves it; direct registrations wait for admin approval
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)

	if strings.TrimSpace(req.FullName) == "" {
		return nil, errors.New("full name is required")
	}
	if err := ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := ValidatePhone(req.Phone, req.CountryCode); err != nil {
		return nil, err
	}
	if len(req.Password) < 8 {
		return nil, errors.New("password must be at least 8 characters")
	}

	exists, err := s.UserRepo.EmailOrPhoneExists(ctx, req.Email, req.Phone)
	if err != nil {
		return nil, errors.New("failed to check existing accounts: " + err.Error())
	}
	if exists {
		return nil, errors.New("an account with this email or phone already exists")
	}

	var invitation *models.Invitation
	if req.InvitationCode != "" {
		invitation, err = s.InvitationRepo.GetByCode(ctx, req.InvitationCode)
		if err != nil {
			return nil, errors.New("invitation code not found")
		}
		if invitation.EffectiveStatus(time.Now()) != models.InvitationPending {
			return nil, errors.New("invitation code is no longer valid")
		}
		if invitation.InvitedEmail != "" && !strings.EqualFold(invitation.InvitedEmail, req.Email) {
			return nil, errors.New("invitation was issued for a different email address")
		}
		if invitation.InvitedPhone != "" && invitation.InvitedPhone != req.Phone {
			return nil, errors.New("invitation was issued for a different phone number")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	user := &models.UserAccount{
		FullName:             req.FullName,
		Email:                req.Email,
		Phone:                req.Phone,
		PasswordHash:         string(hash),
		UserType:             models.UserTypeMember,
		ApprovalStatus:       models.ApprovalPending,
		CreatedViaInvitation: invitation != nil,
	}
	if invitation != nil {
		user.ApprovalStatus = models.ApprovalApproved
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, errors.New("failed to create account: " + err.Error())
	}

	if invitation != nil {
		if err := s.InvitationRepo.MarkUsed(ctx, invitation.InvitationCode, user.ID); err != nil {
			return nil, errors.New("failed to consume invitation: " + err.Error())
		}
	}

	token, err := s.JWTManager.Generate(user)
	if err != nil {
		return nil, errors.New("failed to create session")
	}

	return &models.AuthResponse{SessionToken: token, User: user}, nil
}

// Login verifies credentials and issues a session token. Every attempt is
// logged, successful or not
func (s *UserService) Login(ctx context.Context, req *models.LoginRequest, ip, userAgent string) (*models.AuthResponse, error) {
	logEntry := &models.LoginLog{
		Identifier: req.Identifier,
		IPAddress:  ip,
		UserAgent:  userAgent,
	}

	user, err := s.UserRepo.GetByIdentifier(ctx, strings.ToLower(req.Identifier))
	if err != nil {
		_ = s.LoginLogRepo.Create(ctx, logEntry)
		return nil, errors.New("invalid email/phone or password")
	}

	logEntry.UserID = &user.ID
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		_ = s.LoginLogRepo.Create(ctx, logEntry)
		return nil, errors.New("invalid email/phone or password")
	}

	if user.ApprovalStatus == models.ApprovalRejected {
		_ = s.LoginLogRepo.Create(ctx, logEntry)
		return nil, errors.New("this account has been rejected; contact the administrators")
	}

	logEntry.Success = true
	_ = s.LoginLogRepo.Create(ctx, logEntry)
	_ = s.UserRepo.TouchLastLogin(ctx, user.ID)

	token, err := s.JWTManager.Generate(user)
	if err != nil {
		return nil, errors.New("failed to create session")
	}

	return &models.AuthResponse{SessionToken: token, User: user}, nil
}

// Logout revokes the presented token until its natural expiry
func (s *UserService) Logout(ctx context.Context, claims *auth.Claims) error {
	return s.RevokedRepo.Revoke(ctx, claims.ID, claims.UserID, claims.ExpiresAt.Time)
}
