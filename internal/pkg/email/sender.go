package email

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// SMTPSender implements Sender over gomail.
type SMTPSender struct {
	config    Config
	templates *TemplateManager
}

func NewSMTPSender(config Config) (Sender, error) {
	if config.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if config.SMTPPort <= 0 || config.SMTPPort > 65535 {
		return nil, fmt.Errorf("invalid SMTP port: %d", config.SMTPPort)
	}
	if config.FromEmail == "" {
		return nil, fmt.Errorf("from email is required")
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	return &SMTPSender{
		config:    config,
		templates: tm,
	}, nil
}

func (s *SMTPSender) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromEmail, s.config.FromName))
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.Body != "" {
		m.SetBody("text/plain", email.Body)
		if email.HTMLBody != "" {
			m.AddAlternative("text/html", email.HTMLBody)
		}
	} else {
		m.SetBody("text/html", email.HTMLBody)
	}

	d := gomail.NewDialer(
		s.config.SMTPHost,
		s.config.SMTPPort,
		s.config.Username,
		s.config.Password,
	)

	return d.DialAndSend(m)
}

func (s *SMTPSender) SendTemplate(to []string, subject, templateName string, data interface{}) error {
	htmlBody, err := s.templates.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	return s.Send(&Email{
		To:       to,
		Subject:  subject,
		Body:     htmlToText(htmlBody),
		HTMLBody: htmlBody,
	})
}

func (s *SMTPSender) SendVerification(to, verifyURL string) error {
	data := TemplateData{
		Subject:    "Confirmá tu cuenta de ChangaYa!",
		ActionURL:  verifyURL,
		ActionText: "Confirmar Email",
	}

	return s.SendTemplate([]string{to}, "Confirmá tu cuenta de ChangaYa!", "verification", data)
}

// htmlToText produces a crude plain-text alternative part.
func htmlToText(html string) string {
	text := strings.ReplaceAll(html, "<br/>", "\n")
	text = strings.ReplaceAll(text, "<br>", "\n")
	text = strings.ReplaceAll(text, "<p>", "\n")
	text = strings.ReplaceAll(text, "</p>", "\n")

	for {
		start := strings.Index(text, "<")
		if start == -1 {
			break
		}
		end := strings.Index(text[start:], ">")
		if end == -1 {
			break
		}
		text = text[:start] + text[start+end+1:]
	}

	return strings.TrimSpace(text)
}
