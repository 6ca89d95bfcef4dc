// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConfirmationStatus is the derived state of an account's email confirmation.
type ConfirmationStatus string

const (
	// StatusUnconfirmed means the code is still usable.
	StatusUnconfirmed ConfirmationStatus = "unconfirmed"
	// StatusExpired means the code's window has passed and the account is
	// still unconfirmed. A resend moves the account back to StatusUnconfirmed.
	StatusExpired ConfirmationStatus = "expired"
	// StatusConfirmed is terminal.
	StatusConfirmed ConfirmationStatus = "confirmed"
)

// ConfirmationState is the email-confirmation sub-entity of a [User].
//
// Code and ExpiresAt are replaced wholesale on resend; IsConfirmed only
// ever moves from false to true.
type ConfirmationState struct {
	// Code is the opaque single-use confirmation code.
	Code string `json:"code"`

	// ExpiresAt is the last instant at which Code may be redeemed.
	ExpiresAt time.Time `json:"expiresAt"`

	// IsConfirmed reports whether the account's email has been confirmed.
	IsConfirmed bool `json:"isConfirmed"`
}

// Status derives the confirmation state at the given instant.
// A code is expired only when now is strictly after ExpiresAt.
func (c ConfirmationState) Status(now time.Time) ConfirmationStatus {
	switch {
	case c.IsConfirmed:
		return StatusConfirmed
	case now.After(c.ExpiresAt):
		return StatusExpired
	default:
		return StatusUnconfirmed
	}
}

// Confirm returns a copy of c marked as confirmed. Code and ExpiresAt are
// kept so the stored row still records which code was redeemed.
func (c ConfirmationState) Confirm() ConfirmationState {
	c.IsConfirmed = true
	return c
}
