package notifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/utils"
)

// httpNotifier posts confirmation emails to a transactional mail API as JSON.
type httpNotifier struct {
	client          *utils.HTTPClient
	url             string
	apiKey          string
	from            string
	confirmationURL string
	logger          *logger.Logger
}

// NewHTTPNotifier constructs a [Notifier] that POSTs a [Message] to
// cfg.HTTP.URL. A non-empty cfg.HTTP.APIKey is sent as a bearer token.
func NewHTTPNotifier(cfg config.Notifier, logger *logger.Logger) Notifier {
	return &httpNotifier{
		client:          utils.NewHTTPClient("", cfg.HTTP.Timeout),
		url:             cfg.HTTP.URL,
		apiKey:          cfg.HTTP.APIKey,
		from:            cfg.From,
		confirmationURL: cfg.ConfirmationURL,
		logger:          logger,
	}
}

// SendConfirmation implements [Notifier].
func (n *httpNotifier) SendConfirmation(ctx context.Context, email, code string) error {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(email) == "" {
		return ErrEmptyRecipient
	}

	req := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(newConfirmationMessage(n.from, email, code, n.confirmationURL))
	if n.apiKey != "" {
		req.SetAuthToken(n.apiKey)
	}

	resp, err := req.Post(n.url)
	if err != nil {
		log.Err(err).Str("func", "*httpNotifier.SendConfirmation").Str("to", email).Msg("error calling mail api")
		return fmt.Errorf("send email: %w", err)
	}
	if resp.IsError() {
		log.Error().
			Str("func", "*httpNotifier.SendConfirmation").
			Str("to", email).
			Int("status", resp.StatusCode()).
			Msg("mail api returned an error status")
		return fmt.Errorf("%w: status %d", ErrDeliveryRejected, resp.StatusCode())
	}

	log.Debug().Str("func", "*httpNotifier.SendConfirmation").Str("to", email).Msg("confirmation email accepted by mail api")
	return nil
}
