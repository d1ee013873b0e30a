package email

// Email is a single outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// SMTPConfig holds the SMTP transport settings.
type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}
