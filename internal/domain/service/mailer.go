package service

import "context"

// Mail is a plain-text email.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers transactional email.
type Mailer interface {
	Send(ctx context.Context, mail *Mail) error
}
