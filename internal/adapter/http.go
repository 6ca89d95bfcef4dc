package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/utils"
	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/go-resty/resty/v2"
)

type httpBlogAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBlogAdapter constructs an HTTP/REST implementation of [BlogAPI].
// address may omit the scheme, in which case http is assumed. A positive
// timeout bounds every request.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPBlogAdapter(address string, timeout time.Duration, logger *logger.Logger) (BlogAPI, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpBlogAdapter{client: utils.NewHTTPClient(baseURL, timeout), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [BlogAPI].
func (h *httpBlogAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [BlogAPI].
func (h *httpBlogAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [BlogAPI]. POST /auth/registration.
func (h *httpBlogAdapter) Register(ctx context.Context, req models.RegistrationRequest) error {
	resp, err := h.jsonRequest(ctx, req).Post("/auth/registration")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}
	return mapHTTPError(resp)
}

// ConfirmRegistration implements [BlogAPI]. POST /auth/registration-confirmation.
func (h *httpBlogAdapter) ConfirmRegistration(ctx context.Context, code string) error {
	resp, err := h.jsonRequest(ctx, models.ConfirmationRequest{Code: code}).Post("/auth/registration-confirmation")
	if err != nil {
		return fmt.Errorf("confirm registration request: %w", err)
	}
	return mapHTTPError(resp)
}

// ResendConfirmation implements [BlogAPI]. POST /auth/registration-email-resending.
func (h *httpBlogAdapter) ResendConfirmation(ctx context.Context, email string) error {
	resp, err := h.jsonRequest(ctx, models.EmailResendingRequest{Email: email}).Post("/auth/registration-email-resending")
	if err != nil {
		return fmt.Errorf("resend confirmation request: %w", err)
	}
	return mapHTTPError(resp)
}

// Login implements [BlogAPI]. On success the access token from the body is
// stored via SetToken.
func (h *httpBlogAdapter) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var result models.LoginResponse

	resp, err := h.jsonRequest(ctx, req).SetResult(&result).Post("/auth/login")
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	h.SetToken(result.AccessToken)
	h.logger.Debug().Str("func", "*httpBlogAdapter.Login").Msg("access token stored")
	return result.AccessToken, nil
}

// Me implements [BlogAPI]. Requires a stored token.
func (h *httpBlogAdapter) Me(ctx context.Context) (models.Identity, error) {
	var identity models.Identity

	resp, err := h.authedRequest(ctx).SetResult(&identity).Get("/auth/me")
	if err != nil {
		return models.Identity{}, fmt.Errorf("me request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Identity{}, err
	}
	return identity, nil
}

// Version implements [BlogAPI].
func (h *httpBlogAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&version).Get("/version")
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}
	return version, nil
}

// CreateUser implements [BlogAPI]. POST /users with Basic auth.
func (h *httpBlogAdapter) CreateUser(ctx context.Context, admin Credentials, req models.RegistrationRequest) (models.UserView, error) {
	var created models.UserView

	resp, err := h.jsonRequest(ctx, req).
		SetBasicAuth(admin.Login, admin.Password).
		SetResult(&created).
		Post("/users")
	if err != nil {
		return models.UserView{}, fmt.Errorf("create user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserView{}, err
	}
	return created, nil
}

// DeleteUser implements [BlogAPI]. DELETE /users/{id} with Basic auth.
func (h *httpBlogAdapter) DeleteUser(ctx context.Context, admin Credentials, userID string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(admin.Login, admin.Password).
		SetPathParam("id", userID).
		Delete("/users/{id}")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}
	return mapHTTPError(resp)
}

// ResetAll implements [BlogAPI]. DELETE /testing/all-data.
func (h *httpBlogAdapter) ResetAll(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Delete("/testing/all-data")
	if err != nil {
		return fmt.Errorf("reset request: %w", err)
	}
	return mapHTTPError(resp)
}

// LastConfirmationCode implements [BlogAPI]. GET /testing/last-confirmation-code.
func (h *httpBlogAdapter) LastConfirmationCode(ctx context.Context) (string, error) {
	var result models.ConfirmationCodeResponse

	resp, err := h.client.R().SetContext(ctx).SetResult(&result).Get("/testing/last-confirmation-code")
	if err != nil {
		return "", fmt.Errorf("last confirmation code request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return result.Code, nil
}

func (h *httpBlogAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

func (h *httpBlogAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
