package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"umbrella-share-backend/internal/logger"
)

type emailService struct {
	apiKey   string
	from     string
	fromName string
	enabled  bool
}

// NewEmailService builds the SendGrid-backed reminder mailer. When disabled,
// sends are logged and dropped, which keeps local development keyless.
func NewEmailService(apiKey, from, fromName string, enabled bool) EmailService {
	return &emailService{
		apiKey:   apiKey,
		from:     from,
		fromName: fromName,
		enabled:  enabled,
	}
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, name, umbrellaTag string, dueTime string) error {
	subject := "Your borrowed umbrella is overdue"
	plainText := fmt.Sprintf(
		"Hello %s,\n\nUmbrella %s was due back on %s. Please return it to any station.\n\nCampus Umbrella Share",
		name, umbrellaTag, dueTime)

	if !s.enabled {
		logger.Info("email disabled, skipping overdue reminder", "to", email, "umbrella", umbrellaTag)
		return nil
	}

	from := mail.NewEmail(s.fromName, s.from)
	recipient := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
