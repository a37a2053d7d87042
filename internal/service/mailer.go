package service

import "context"

// Mailer delivers outbound notification mail. Failures are logged and never
// abort the request that triggered them.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
