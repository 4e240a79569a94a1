package email

import (
	"context"
	"fmt"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"community-backend/internal/config"
)

// EmailService sends transactional mail via Amazon SES. When no sender
// address is configured the service is disabled and sends become no-ops,
// so local development needs no AWS credentials
type EmailService struct {
	client     *sesv2.Client
	fromEmail  string
	fromName   string
	appBaseURL string
	enabled    bool
}

// NewEmailService creates the SES-backed email service
func NewEmailService(cfg *config.Config) (*EmailService, error) {
	if cfg.Email.FromEmail == "" {
		log.Println("Email service disabled: email.from_email not configured")
		return &EmailService{enabled: false}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(cfg.Email.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &EmailService{
		client:     sesv2.NewFromConfig(awsCfg),
		fromEmail:  cfg.Email.FromEmail,
		fromName:   cfg.Email.FromName,
		appBaseURL: cfg.Email.AppBaseURL,
		enabled:    true,
	}, nil
}

// SendInvitation emails an invitation code with a registration link
func (s *EmailService) SendInvitation(ctx context.Context, toEmail, invitedName, inviterName, code string) error {
	if !s.enabled {
		log.Printf("Email disabled, skipping invitation to %s (code %s)", toEmail, code)
		return nil
	}

	subject := fmt.Sprintf("%s invited you to join the community portal", inviterName)
	link := fmt.Sprintf("%s/register?invitation_code=%s", s.appBaseURL, code)
	body := fmt.Sprintf(
		"Hello %s,\n\n%s has invited you to join the community portal.\n\n"+
			"Your invitation code: %s\n\nRegister here: %s\n\n"+
			"The code is valid for 7 days.\n",
		invitedName, inviterName, code, link,
	)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}

	return nil
}
