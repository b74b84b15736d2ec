package email

// Email is one outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData is the payload rendered into the built-in templates.
type TemplateData struct {
	UserName   string
	Subject    string
	Message    string
	ActionURL  string
	ActionText string
}

// Config holds SMTP settings.
type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Sender sends email. The account service depends on this interface only,
// which keeps mail delivery swappable (and fakeable in tests).
type Sender interface {
	Send(email *Email) error
	SendTemplate(to []string, subject, templateName string, data interface{}) error
	// SendVerification delivers the registration link that carries the
	// signed verification token.
	SendVerification(to, verifyURL string) error
}
