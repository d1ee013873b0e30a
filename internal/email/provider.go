package email

// Provider sends notification emails.
type Provider interface {
	// Send delivers a single email.
	Send(email *Email) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases any provider resources.
	Close() error
}
