package models

import "time"

// User represents a registered account of the blogging platform.
// It contains identity attributes, the credential hash and the
// email-confirmation sub-entity.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the immutable unique identifier of the user (UUIDv7 string).
	ID string `json:"id"`

	// Login is the unique user login. Used as one of the two login keys.
	Login string `json:"login"`

	// Email is the unique email address. Confirmation codes are sent here.
	Email string `json:"email"`

	// PasswordHash stores the adaptive hash of the user's password.
	// Plaintext passwords are never stored. Excluded from JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is set once when the account is created.
	CreatedAt time.Time `json:"createdAt"`

	// Confirmation is the email-confirmation state of the account.
	Confirmation ConfirmationState `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the claim set carried by session tokens for u.
func (u User) Identity() Identity {
	return Identity{
		UserID: u.ID,
		Login:  u.Login,
		Email:  u.Email,
	}
}

// UserView is the external projection of a User. It never carries the
// password hash or the confirmation code.
type UserView struct {
	ID        string    `json:"id"`
	Login     string    `json:"login"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserView maps a stored user to its public view.
func NewUserView(u User) UserView {
	return UserView{
		ID:        u.ID,
		Login:     u.Login,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
