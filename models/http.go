package models

// RegistrationRequest is the body of POST /auth/registration and of the
// admin POST /users endpoint.
type RegistrationRequest struct {
	// Login must be 3-10 characters of [a-zA-Z0-9_-].
	Login string `json:"login" validate:"required,min=3,max=10,login"`

	// Password must be 6-20 characters and fit bcrypt's 72-byte limit. It is
	// hashed before storage.
	Password string `json:"password" validate:"required,min=6,max=20,maxbytes=72"`

	// Email must be a syntactically valid address.
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	// LoginOrEmail is matched against the login first, then the email.
	LoginOrEmail string `json:"loginOrEmail" validate:"required"`
	Password     string `json:"password" validate:"required"`
}

// ConfirmationRequest is the body of POST /auth/registration-confirmation.
type ConfirmationRequest struct {
	Code string `json:"code" validate:"required"`
}

// EmailResendingRequest is the body of POST /auth/registration-email-resending.
type EmailResendingRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

// ConfirmationCodeResponse is returned by the testing helper that exposes the
// newest confirmation code.
type ConfirmationCodeResponse struct {
	Code string `json:"code"`
}
