package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"fatherhood-backend/internal/domain"
	"fatherhood-backend/internal/logger"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewSendGridEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendSignupConfirmation(ctx context.Context, email, name string) error {
	subject := "Thank you for signing up for the Fatherhood Initiative!"
	plainText := fmt.Sprintf(`Hello %s,

Thank you for signing up for the Fatherhood Initiative. A program coordinator
will reach out to you soon.

If you need to update your information, please contact fatherhood@manupinc.org.

Man Up! Inc. - Empowering Fathers`, name)

	return s.send(email, name, subject, plainText)
}

func (s *sendGridEmailService) SendWeeklyDigest(ctx context.Context, email string, stats *domain.SignupStats) error {
	subject := "Fatherhood Initiative - Weekly Signup Digest"

	var byStatus strings.Builder
	for _, status := range domain.ValidStatuses() {
		if count, ok := stats.ByStatus[status]; ok {
			fmt.Fprintf(&byStatus, "  %s: %d\n", status, count)
		}
	}

	plainText := fmt.Sprintf(`Weekly signup summary:

Total signups: %d
New this week: %d
By status:
%s`, stats.Total, stats.ThisWeek, byStatus.String())

	return s.send(email, "", subject, plainText)
}

func (s *sendGridEmailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	logger.ExternalServiceCall("sendgrid", "Send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "Send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "Send", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "Send", nil, "to", to)
	return nil
}
