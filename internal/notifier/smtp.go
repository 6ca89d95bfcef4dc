package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"gopkg.in/gomail.v2"
)

// mailDialer is the part of *gomail.Dialer used by smtpNotifier.
type mailDialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// smtpNotifier delivers confirmation emails over SMTP.
type smtpNotifier struct {
	dialer          mailDialer
	from            string
	confirmationURL string
	logger          *logger.Logger
}

// NewSMTPNotifier constructs a [Notifier] that sends mail through the SMTP
// server described by cfg.SMTP.
func NewSMTPNotifier(cfg config.Notifier, logger *logger.Logger) Notifier {
	return &smtpNotifier{
		dialer:          gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:            cfg.From,
		confirmationURL: cfg.ConfirmationURL,
		logger:          logger,
	}
}

// SendConfirmation implements [Notifier]. gomail does not accept a context,
// so ctx is only checked before dialing.
func (n *smtpNotifier) SendConfirmation(ctx context.Context, email, code string) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(email) == "" {
		return ErrEmptyRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := newConfirmationMessage(n.from, email, code, n.confirmationURL)

	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Text)
	m.AddAlternative("text/html", msg.HTML)

	if err := n.dialer.DialAndSend(m); err != nil {
		log.Err(err).Str("func", "*smtpNotifier.SendConfirmation").Str("to", email).Msg("error sending confirmation email")
		return fmt.Errorf("send email: %w", err)
	}

	log.Debug().Str("func", "*smtpNotifier.SendConfirmation").Str("to", email).Msg("confirmation email sent")
	return nil
}
