package notifier

import "errors"

var (
	// ErrUnknownDriver is returned by New when the configured driver is not
	// one of "log", "smtp" or "http".
	ErrUnknownDriver = errors.New("unknown notifier driver")

	// ErrEmptyRecipient is returned when the destination address is blank.
	ErrEmptyRecipient = errors.New("empty recipient")

	// ErrDeliveryRejected is returned by the http driver when the mail API
	// answers with a non-2xx status.
	ErrDeliveryRejected = errors.New("mail api rejected the message")
)
