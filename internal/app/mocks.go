package app

import "brandmatch_backend/internal/email"

// MockEmailProvider is used when SMTP is disabled in config.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(email *email.Email) error { return nil }
func (m *MockEmailProvider) Validate() error               { return nil }
func (m *MockEmailProvider) Close() error                  { return nil }
