package handler_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-platform/internal/adapter"
	"github.com/MKhiriev/go-blog-platform/internal/config"
	"github.com/MKhiriev/go-blog-platform/internal/handler"
	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/notifier"
	"github.com/MKhiriev/go-blog-platform/internal/service"
	"github.com/MKhiriev/go-blog-platform/internal/store"
	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var admin = adapter.Credentials{Login: "admin", Password: "qwerty"}

var bob = models.RegistrationRequest{Login: "bob123", Password: "secret1", Email: "bob@x.com"}

// newTestAPI assembles the whole application over an in-memory SQLite
// database and the log notifier, and returns a client bound to it.
func newTestAPI(t *testing.T) adapter.BlogAPI {
	t.Helper()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "flow-test-key",
			TokenIssuer:      "go-blog-platform",
			TokenDuration:    time.Hour,
			ConfirmationTTL:  time.Hour,
			PasswordHashCost: bcrypt.MinCost,
			AdminLogin:       admin.Login,
			AdminPassword:    admin.Password,
			TestingEndpoints: true,
		},
		Storage: config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}},
		Server:  config.Server{HTTPAddress: "127.0.0.1:0"},
	}
	log := logger.Nop()

	db, err := store.NewDB(context.Background(), cfg.Storage.DB, log)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.Migrate())

	mailer, err := notifier.New(config.Notifier{Driver: config.NotifierLog}, log)
	require.NoError(t, err)

	services, err := service.NewServices(store.NewRepositories(db, log), mailer, cfg, models.NewAppBuildInfo("1.0.0", "N/A", "N/A"), log)
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg, log)
	require.NoError(t, err)

	srv := httptest.NewServer(handlers.HTTP.Init())
	t.Cleanup(srv.Close)

	api, err := adapter.NewHTTPBlogAdapter(srv.URL, 5*time.Second, log)
	require.NoError(t, err)
	return api
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var vErr *adapter.ValidationError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Fields, 1)
	assert.Equal(t, field, vErr.Fields[0].Field)
}

func TestFlow_RegisterConfirmLoginMe(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	require.NoError(t, api.Register(ctx, bob))

	// an unconfirmed account cannot log in
	_, err := api.Login(ctx, models.LoginRequest{LoginOrEmail: "bob123", Password: "secret1"})
	require.ErrorIs(t, err, adapter.ErrUnauthorized)

	code, err := api.LastConfirmationCode(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, code)

	require.NoError(t, api.ConfirmRegistration(ctx, code))

	// the code is single use
	err = api.ConfirmRegistration(ctx, code)
	requireFieldError(t, err, "code")

	token, err := api.Login(ctx, models.LoginRequest{LoginOrEmail: "bob@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	me, err := api.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, "bob123", me.Login)
	assert.Equal(t, "bob@x.com", me.Email)
	assert.NotEmpty(t, me.UserID)
}

func TestFlow_WrongPassword(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	_, err := api.CreateUser(ctx, admin, bob)
	require.NoError(t, err)

	_, err = api.Login(ctx, models.LoginRequest{LoginOrEmail: "bob123", Password: "secret2"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	_, err = api.Login(ctx, models.LoginRequest{LoginOrEmail: "nobody", Password: "secret1"})
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestFlow_DuplicateRegistration(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	require.NoError(t, api.Register(ctx, bob))

	tests := []struct {
		name      string
		req       models.RegistrationRequest
		wantField string
	}{
		{"same login", models.RegistrationRequest{Login: "bob123", Password: "secret1", Email: "other@x.com"}, "login"},
		{"same email", models.RegistrationRequest{Login: "alice1", Password: "secret1", Email: "bob@x.com"}, "email"},
		{"both taken reports login", bob, "login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireFieldError(t, api.Register(ctx, tt.req), tt.wantField)
		})
	}
}

func TestFlow_InvalidInput(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	err := api.Register(ctx, models.RegistrationRequest{Login: "bob 1", Password: "secret1", Email: "bob@x.com"})
	requireFieldError(t, err, "login")

	err = api.ResendConfirmation(ctx, "not-an-email")
	requireFieldError(t, err, "email")
}

func TestFlow_MultibytePasswordOverBcryptLimit(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	// 19 runes pass the length check but encode to 76 bytes
	long := models.RegistrationRequest{Login: "emoji1", Password: strings.Repeat("😀", 19), Email: "emoji@x.com"}

	requireFieldError(t, api.Register(ctx, long), "password")

	_, err := api.CreateUser(ctx, admin, long)
	requireFieldError(t, err, "password")

	long.Password = strings.Repeat("😀", 18)
	require.NoError(t, api.Register(ctx, long))
}

func TestFlow_ResendReplacesCode(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	require.NoError(t, api.Register(ctx, bob))
	first, err := api.LastConfirmationCode(ctx)
	require.NoError(t, err)

	require.NoError(t, api.ResendConfirmation(ctx, "bob@x.com"))

	second, err := api.LastConfirmationCode(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	// the old code no longer confirms
	requireFieldError(t, api.ConfirmRegistration(ctx, first), "code")

	require.NoError(t, api.ConfirmRegistration(ctx, second))

	// resending for a confirmed account is rejected
	requireFieldError(t, api.ResendConfirmation(ctx, "bob@x.com"), "email")
}

func TestFlow_ResendUnknownEmail(t *testing.T) {
	api := newTestAPI(t)

	requireFieldError(t, api.ResendConfirmation(context.Background(), "ghost@x.com"), "email")
}

func TestFlow_UnknownCode(t *testing.T) {
	api := newTestAPI(t)

	requireFieldError(t, api.ConfirmRegistration(context.Background(), "no-such-code"), "code")
}

func TestFlow_AdminCreatesAndDeletesUser(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	_, err := api.CreateUser(ctx, adapter.Credentials{Login: "admin", Password: "wrong"}, bob)
	require.ErrorIs(t, err, adapter.ErrUnauthorized)

	created, err := api.CreateUser(ctx, admin, models.RegistrationRequest{Login: "alice1", Password: "secret1", Email: "alice@x.com"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// admin-created accounts are confirmed already
	_, err = api.Login(ctx, models.LoginRequest{LoginOrEmail: "alice1", Password: "secret1"})
	assert.NoError(t, err)

	require.NoError(t, api.DeleteUser(ctx, admin, created.ID))
	assert.ErrorIs(t, api.DeleteUser(ctx, admin, created.ID), adapter.ErrNotFound)
}

func TestFlow_ResetAllData(t *testing.T) {
	ctx := context.Background()
	api := newTestAPI(t)

	require.NoError(t, api.Register(ctx, bob))
	require.NoError(t, api.ResetAll(ctx))

	code, err := api.LastConfirmationCode(ctx)
	require.NoError(t, err)
	assert.Empty(t, code)

	assert.NoError(t, api.Register(ctx, bob))
}

func TestFlow_Version(t *testing.T) {
	api := newTestAPI(t)

	v, err := api.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", v.Version)
}
