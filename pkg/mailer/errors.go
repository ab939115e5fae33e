package mailer

import "errors"

var (
	ErrInvalidParams = errors.New("mailer: invalid send params")
	ErrInvalidConfig = errors.New("mailer: invalid config")
	ErrSendFailed    = errors.New("mailer: failed to send email")
)
