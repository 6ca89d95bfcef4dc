// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notifier delivers email-confirmation codes.
//
// Three drivers are available and selected by [config.Notifier.Driver]:
//   - "log":  writes the code to the application log (development, tests);
//   - "smtp": sends a multipart email through an SMTP relay;
//   - "http": POSTs the rendered message to a transactional mail API.
package notifier

import (
	"fmt"

	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
)

// New constructs the [Notifier] selected by cfg.Driver.
func New(cfg config.Notifier, logger *logger.Logger) (Notifier, error) {
	switch cfg.Driver {
	case config.NotifierLog, "":
		return NewLogNotifier(logger), nil
	case config.NotifierSMTP:
		return NewSMTPNotifier(cfg, logger), nil
	case config.NotifierHTTP:
		return NewHTTPNotifier(cfg, logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
