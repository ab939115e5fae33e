package mailer

import (
	"context"
	"fmt"
	"regexp"
)

// Sender delivers one rendered email.
type Sender interface {
	Send(ctx context.Context, params SendParams) error
}

// SendParams carries everything a transport needs for one delivery.
type SendParams struct {
	To       string // recipient address
	Subject  string
	BodyHTML string // complete rendered document from pkg/render
	Tag      string // optional transport-side category
}

var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks the parameters before any transport work happens.
func (p SendParams) Validate() error {
	if p.To == "" || !emailRE.MatchString(p.To) {
		return fmt.Errorf("%w: recipient address %q", ErrInvalidParams, p.To)
	}
	if p.Subject == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidParams)
	}
	if p.BodyHTML == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidParams)
	}
	return nil
}
