package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUserNotFound is returned when no account matches the given email
	// or id.
	ErrUserNotFound = errors.New("user not found")

	// ErrConfirmationCodeNotFound is returned when no account holds the
	// given confirmation code.
	ErrConfirmationCodeNotFound = errors.New("confirmation code not found")

	// ErrAlreadyConfirmed is returned when confirming or resending for an
	// account whose email is already confirmed.
	ErrAlreadyConfirmed = errors.New("email is already confirmed")

	// ErrConfirmationExpired is returned when the code's validity window has
	// passed.
	ErrConfirmationExpired = errors.New("confirmation code is expired")

	// ErrConfirmationStateChanged is returned by a resend that lost a race
	// against another resend for the same account.
	ErrConfirmationStateChanged = errors.New("confirmation state was changed concurrently")

	// ErrDeliveryFailed is returned by a resend whose new code was stored but
	// could not be delivered.
	ErrDeliveryFailed = errors.New("confirmation email delivery failed")

	// ErrWrongCredentials covers both an unknown login/email and a wrong
	// password so that callers cannot probe which accounts exist.
	ErrWrongCredentials = errors.New("wrong login or password")

	// ErrUserNotConfirmed is returned by Login for accounts that have not
	// confirmed their email yet.
	ErrUserNotConfirmed = errors.New("user email is not confirmed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
