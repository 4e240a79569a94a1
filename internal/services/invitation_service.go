package services

import (
	"context"
	"crypto/rand"
	"errors"
	"log"
	"time"

	"community-backend/internal/email"
	"community-backend/internal/models"
	"community-backend/internal/repositories"
	"community-backend/internal/sms"
)

const invitationValidity = 7 * 24 * time.Hour

// Code alphabet avoids ambiguous characters (0/O, 1/I/L)
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"
const codeLength = 8

type InvitationService struct {
	InvitationRepo *repositories.InvitationRepository
	Email          *email.EmailService
	SMS            sms.SMSProvider
}

func NewInvitationService(invitationRepo *repositories.InvitationRepository, emailService *email.EmailService, smsProvider sms.SMSProvider) *InvitationService {
	return &InvitationService{
		InvitationRepo: invitationRepo,
		Email:          emailService,
		SMS:            smsProvider,
	}
}

// GenerateCode returns a random invitation code
func GenerateCode() (string, error) {
	buf := make([]byte, codeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i := range buf {
		buf[i] = codeAlphabet[int(buf[i])%len(codeAlphabet)]
	}
	return string(buf), nil
}

// Create issues an invitation and delivers it by email or SMS. Only
// approved members may invite; the handler enforces that
func (s *InvitationService) Create(ctx context.Context, inviter *models.UserAccount, req *models.CreateInvitationRequest) (*models.Invitation, error) {
	if req.InvitedName == "" {
		return nil, errors.New("invited name is required")
	}
	if req.InvitedEmail == "" && req.InvitedPhone == "" {
		return nil, errors.New("an invited email or phone is required")
	}
	if req.InvitedEmail != "" {
		if err := ValidateEmail(req.InvitedEmail); err != nil {
			return nil, err
		}
	}
	if req.InvitedPhone != "" {
		if err := ValidatePhone(req.InvitedPhone, "+91"); err != nil {
			return nil, err
		}
	}

	code, err := GenerateCode()
	if err != nil {
		return nil, errors.New("failed to generate invitation code")
	}

	inv := &models.Invitation{
		InvitationCode: code,
		InvitedName:    req.InvitedName,
		InvitedEmail:   req.InvitedEmail,
		InvitedPhone:   req.InvitedPhone,
		InvitedBy:      inviter.ID,
		InviterName:    inviter.FullName,
		Status:         models.InvitationPending,
		ExpiresAt:      time.Now().Add(invitationValidity),
	}

	if err := s.InvitationRepo.Create(ctx, inv); err != nil {
		return nil, errors.New("failed to create invitation: " + err.Error())
	}

	// Delivery failures don't roll back the invitation; the code is still
	// visible in the inviter's list
	if inv.InvitedEmail != "" {
		if err := s.Email.SendInvitation(ctx, inv.InvitedEmail, inv.InvitedName, inviter.FullName, code); err != nil {
			log.Printf("Invitation email to %s failed: %v", inv.InvitedEmail, err)
		}
	} else if inv.InvitedPhone != "" {
		if err := s.SMS.SendInvitation(inv.InvitedPhone, inviter.FullName, code); err != nil {
			log.Printf("Invitation SMS to %s failed: %v", inv.InvitedPhone, err)
		}
	}

	return inv, nil
}

// ListByInviter returns the caller's invitations with lazily evaluated
// expiry; stale pending rows are also persisted as expired
func (s *InvitationService) ListByInviter(ctx context.Context, userID int) ([]models.Invitation, error) {
	invitations, err := s.InvitationRepo.ListByInviter(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range invitations {
		effective := invitations[i].EffectiveStatus(now)
		if effective != invitations[i].Status {
			_ = s.InvitationRepo.MarkExpired(ctx, invitations[i].ID)
			invitations[i].Status = effective
		}
	}

	return invitations, nil
}

// Delete removes a pending invitation owned by the caller
func (s *InvitationService) Delete(ctx context.Context, id, inviterID int) error {
	removed, err := s.InvitationRepo.Delete(ctx, id, inviterID)
	if err != nil {
		return errors.New("failed to delete invitation: " + err.Error())
	}
	if removed == 0 {
		return errors.New("only pending invitations can be deleted")
	}
	return nil
}

// Validate checks a code before registration
func (s *InvitationService) Validate(ctx context.Context, code string) (*models.Invitation, error) {
	inv, err := s.InvitationRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, errors.New("invitation code not found")
	}
	if inv.EffectiveStatus(time.Now()) != models.InvitationPending {
		return nil, errors.New("invitation code is no longer valid")
	}
	return inv, nil
}
