package notifier

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
)

// logNotifier writes the confirmation code to the log instead of sending
// mail. It is the default driver for local development and tests.
type logNotifier struct {
	logger *logger.Logger
}

// NewLogNotifier constructs a [Notifier] that only logs.
func NewLogNotifier(logger *logger.Logger) Notifier {
	return &logNotifier{logger: logger}
}

// SendConfirmation implements [Notifier].
func (n *logNotifier) SendConfirmation(ctx context.Context, email, code string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmptyRecipient
	}

	n.logger.Info().
		Str("func", "*logNotifier.SendConfirmation").
		Str("to", email).
		Str("code", code).
		Msg("confirmation code issued")

	return ctx.Err()
}
