package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helper ----

// newTestRouter builds the full router over services that always succeed.
func newTestRouter(t *testing.T, cfg config.StructuredConfig) http.Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: &mockAuthService{
			registerFn: func(_ context.Context, login, _, email string) (models.User, error) {
				return models.User{ID: "u-1", Login: login, Email: email}, nil
			},
			confirmRegistrationFn: func(context.Context, string) error { return nil },
			resendConfirmationFn:  func(context.Context, string) (string, error) { return "code", nil },
			loginFn: func(context.Context, string, string) (models.Token, error) {
				return models.Token{SignedString: "stub-token"}, nil
			},
			parseTokenFn: func(_ context.Context, token string) (models.Identity, error) {
				if token != "stub-token" {
					return models.Identity{}, service.ErrTokenIsExpiredOrInvalid
				}
				return bobIdentity, nil
			},
		},
		UserService: &mockUserService{
			createConfirmedUserFn: func(_ context.Context, login, _, email string) (models.User, error) {
				return models.User{ID: "u-2", Login: login, Email: email}, nil
			},
			deleteUserFn:             func(context.Context, string) error { return nil },
			resetAllFn:               func(context.Context) error { return nil },
			latestConfirmationCodeFn: func(context.Context) (string, error) { return "code", nil },
		},
		AppInfoService: &mockAppInfoService{version: "1.0.0", build: models.NewAppBuildInfo("1.0.0", "2026-03-01", "abc123")},
	}
	return NewHandler(svcs, cfg, logger.Nop()).Init()
}

func serve(router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

const registrationBody = `{"login":"bob123","password":"secret1","email":"bob@x.com"}`

// ---- Every route is reachable ----

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestRouter(t, testConfig)
	bearer := map[string]string{"Authorization": "Bearer stub-token"}
	admin := map[string]string{"Authorization": "Basic YWRtaW46cXdlcnR5"}

	tests := []struct {
		method     string
		path       string
		body       string
		headers    map[string]string
		wantStatus int
	}{
		{http.MethodPost, "/auth/registration", registrationBody, nil, http.StatusNoContent},
		{http.MethodPost, "/auth/registration-confirmation", `{"code":"code"}`, nil, http.StatusNoContent},
		{http.MethodPost, "/auth/registration-email-resending", `{"email":"bob@x.com"}`, nil, http.StatusNoContent},
		{http.MethodPost, "/auth/login", `{"loginOrEmail":"bob123","password":"secret1"}`, nil, http.StatusOK},
		{http.MethodGet, "/auth/me", "", bearer, http.StatusOK},
		{http.MethodPost, "/users", registrationBody, admin, http.StatusCreated},
		{http.MethodDelete, "/users/u-2", "", admin, http.StatusNoContent},
		{http.MethodDelete, "/testing/all-data", "", nil, http.StatusNoContent},
		{http.MethodGet, "/testing/last-confirmation-code", "", nil, http.StatusOK},
		{http.MethodPost, "/testing/confirm-email", `{"code":"code"}`, nil, http.StatusNoContent},
		{http.MethodGet, "/version", "", nil, http.StatusOK},
		{http.MethodGet, "/metrics", "", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(router, tt.method, tt.path, tt.body, tt.headers)
			assert.Equal(t, tt.wantStatus, rr.Code, rr.Body.String())
		})
	}
}

// ---- Protected routes ----

func TestInit_ProtectedRoutes_RequireAuth(t *testing.T) {
	router := newTestRouter(t, testConfig)

	tests := []struct {
		name   string
		method string
		path   string
		header string
	}{
		{"me without token", http.MethodGet, "/auth/me", ""},
		{"me with forged token", http.MethodGet, "/auth/me", "Bearer forged"},
		{"me with basic credentials", http.MethodGet, "/auth/me", "Basic YWRtaW46cXdlcnR5"},
		{"create user without credentials", http.MethodPost, "/users", ""},
		{"create user with bearer token", http.MethodPost, "/users", "Bearer stub-token"},
		{"delete user with wrong password", http.MethodDelete, "/users/u-1", "Basic YWRtaW46d3Jvbmc="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.header != "" {
				headers["Authorization"] = tt.header
			}
			rr := serve(router, tt.method, tt.path, "", headers)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

// ---- Testing endpoints ----

func TestInit_TestingRoutesHiddenByDefault(t *testing.T) {
	cfg := testConfig
	cfg.App.TestingEndpoints = false
	router := newTestRouter(t, cfg)

	for _, path := range []string{"/testing/all-data", "/testing/last-confirmation-code"} {
		t.Run(path, func(t *testing.T) {
			rr := serve(router, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}

	rr := serve(router, http.MethodDelete, "/testing/all-data", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// ---- Unknown routes and wrong methods ----

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router := newTestRouter(t, testConfig)

	for _, path := range []string{"/api/user/register", "/auth", "/auth/unknown", "/blogs"} {
		t.Run(path, func(t *testing.T) {
			rr := serve(router, http.MethodGet, path, "", nil)
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

func TestInit_WrongMethod_Returns404NotMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, testConfig)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/auth/registration"},
		{http.MethodGet, "/auth/login"},
		{http.MethodPost, "/auth/me"},
		{http.MethodPost, "/version"},
		{http.MethodGet, "/users/u-1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(router, tt.method, tt.path, "", map[string]string{
				"Authorization": "Basic YWRtaW46cXdlcnR5",
			})
			assert.Equal(t, http.StatusNotFound, rr.Code)
		})
	}
}

// ---- Cross-cutting middlewares ----

func TestInit_TraceIDHeader(t *testing.T) {
	router := newTestRouter(t, testConfig)

	t.Run("generated", func(t *testing.T) {
		rr := serve(router, http.MethodGet, "/version", "", nil)
		assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
	})

	t.Run("echoed", func(t *testing.T) {
		rr := serve(router, http.MethodGet, "/version", "", map[string]string{traceIDHeader: "my-custom-trace-id-12345"})
		assert.Equal(t, "my-custom-trace-id-12345", rr.Header().Get(traceIDHeader))
	})
}

func TestInit_CORS(t *testing.T) {
	cfg := testConfig
	cfg.Server.AllowedOrigins = []string{"https://blog.example"}
	router := newTestRouter(t, cfg)

	t.Run("preflight from allowed origin", func(t *testing.T) {
		rr := serve(router, http.MethodOptions, "/auth/login", "", map[string]string{
			"Origin":                        "https://blog.example",
			"Access-Control-Request-Method": http.MethodPost,
		})
		assert.Equal(t, "https://blog.example", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		rr := serve(router, http.MethodGet, "/version", "", map[string]string{"Origin": "https://evil.example"})
		assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestInit_MetricsCountRequests(t *testing.T) {
	router := newTestRouter(t, testConfig)

	serve(router, http.MethodPost, "/auth/login", `{"loginOrEmail":"bob123","password":"secret1"}`, nil)
	rr := serve(router, http.MethodGet, "/metrics", "", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `http_requests_total{method="POST",path="/auth/login",status="200"} 1`)
}
