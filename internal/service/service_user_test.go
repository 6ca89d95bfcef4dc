package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-platform/internal/logger"
	"github.com/MKhiriev/go-blog-platform/internal/mock"
	"github.com/MKhiriev/go-blog-platform/internal/store"
	"github.com/MKhiriev/go-blog-platform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T) (*userService, *mock.MockUserRepository, *mock.MockPasswordHasher, *mock.MockConfirmationGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)

	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)
	generator := mock.NewMockConfirmationGenerator(ctrl)

	svc := NewUserService(repo, hasher, generator, fixedID("user-1"), logger.Nop()).(*userService)
	svc.now = func() time.Time { return testNow }

	return svc, repo, hasher, generator
}

// ── CreateConfirmedUser ──

func TestUserService_CreateConfirmedUser_Success(t *testing.T) {
	svc, repo, hasher, generator := newTestUserSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByLoginOrEmailPair(ctx, "bob123", "bob@x.com").Return(models.User{}, store.ErrNoUserWasFound)
	hasher.EXPECT().Hash("secret1").Return("hash", nil)
	generator.EXPECT().Generate().Return(pendingState("code-1"))
	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
		assert.True(t, u.Confirmation.IsConfirmed, "admin-created users must be confirmed")
		return u, nil
	})

	user, err := svc.CreateConfirmedUser(ctx, "bob123", "secret1", "bob@x.com")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, testNow, user.CreatedAt)
}

func TestUserService_CreateConfirmedUser_Conflict(t *testing.T) {
	svc, repo, _, _ := newTestUserSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByLoginOrEmailPair(ctx, "bob123", "bob@x.com").Return(models.User{Login: "alice", Email: "bob@x.com"}, nil)

	_, err := svc.CreateConfirmedUser(ctx, "bob123", "secret1", "bob@x.com")

	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestUserService_CreateConfirmedUser_InvalidData(t *testing.T) {
	svc, _, _, _ := newTestUserSvc(t)

	_, err := svc.CreateConfirmedUser(context.Background(), "bob123", "", "bob@x.com")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

// ── DeleteUser ──

func TestUserService_DeleteUser(t *testing.T) {
	tests := []struct {
		name    string
		deleted bool
		repoErr error
		want    error
	}{
		{name: "deleted", deleted: true},
		{name: "missing", deleted: false, want: ErrUserNotFound},
		{name: "store error", repoErr: store.ErrExecutingStatement, want: store.ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, _, _ := newTestUserSvc(t)
			repo.EXPECT().DeleteUser(gomock.Any(), "user-1").Return(tt.deleted, tt.repoErr)

			err := svc.DeleteUser(context.Background(), "user-1")

			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── testing helpers ──

func TestUserService_ResetAll(t *testing.T) {
	svc, repo, _, _ := newTestUserSvc(t)

	repo.EXPECT().DeleteAllUsers(gomock.Any()).Return(nil)
	require.NoError(t, svc.ResetAll(context.Background()))

	repo.EXPECT().DeleteAllUsers(gomock.Any()).Return(errors.New("boom"))
	assert.Error(t, svc.ResetAll(context.Background()))
}

func TestUserService_LatestConfirmationCode(t *testing.T) {
	svc, repo, _, _ := newTestUserSvc(t)

	repo.EXPECT().FindLatestUser(gomock.Any()).Return(storedUser(pendingState("code-7")), nil)
	code, err := svc.LatestConfirmationCode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "code-7", code)

	repo.EXPECT().FindLatestUser(gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	_, err = svc.LatestConfirmationCode(context.Background())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
