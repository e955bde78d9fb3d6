package external_services

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/mikiasgoitom/SuppliersEgypt/internal/domain/contract"
)

// SendGridEmailService sends mail through the SendGrid v3 API.
type SendGridEmailService struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) *SendGridEmailService {
	return &SendGridEmailService{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

var _ contract.IEmailService = (*SendGridEmailService)(nil)

func (s *SendGridEmailService) SendEmail(ctx context.Context, to, subject, body string) error {
	message := newPlainMessage(s.fromName, s.fromEmail, to, subject, body)
	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

func newPlainMessage(fromName, fromEmail, to, subject, body string) *mail.SGMailV3 {
	from := mail.NewEmail(fromName, fromEmail)
	recipient := mail.NewEmail("", to)
	return mail.NewSingleEmail(from, subject, recipient, body, "")
}
