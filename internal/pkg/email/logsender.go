package email

import (
	"changaya_backend/internal/logger"
)

// LogSender writes messages to the application log instead of delivering
// them. Development fallback when SMTP is not configured.
type LogSender struct{}

func NewLogSender() Sender {
	return &LogSender{}
}

func (s *LogSender) Send(email *Email) error {
	logger.Info("email (not sent, SMTP unconfigured)",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}

func (s *LogSender) SendTemplate(to []string, subject, templateName string, data interface{}) error {
	logger.Info("email (not sent, SMTP unconfigured)",
		"to", to,
		"subject", subject,
		"template", templateName,
	)
	return nil
}

func (s *LogSender) SendVerification(to, verifyURL string) error {
	logger.Info("verification email (not sent, SMTP unconfigured)",
		"to", to,
		"verify_url", verifyURL,
	)
	return nil
}
