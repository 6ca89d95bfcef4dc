package notifier

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/notifier_mock.go -package=mock

// Notifier delivers confirmation codes to users by email.
//
// Implementations report delivery failures as errors. Callers decide whether
// a failure is fatal: registration only logs it, resending surfaces it.
type Notifier interface {
	// SendConfirmation sends the confirmation code to the given address.
	SendConfirmation(ctx context.Context, email, code string) error
}
