package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhub/ems-backend-go/internal/domain/auth"
	"github.com/staffhub/ems-backend-go/internal/domain/user"
	"github.com/staffhub/ems-backend-go/internal/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]user.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailExists
		}
	}
	f.users[u.ID] = u
	return u, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, filter user.ListUsersFilter) ([]user.User, int64, error) {
	var out []user.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) UpdateRole(ctx context.Context, id string, role user.Role) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.Role = role
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) UpdateStatus(ctx context.Context, id string, isActive bool) error {
	u, ok := f.users[id]
	if !ok {
		return user.ErrUserNotFound
	}
	u.IsActive = isActive
	f.users[id] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func newTestAuthService() (auth.AuthService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	jwtService := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "168h")
	return NewAuthService(repo, jwtService), repo
}

func registerReq(email, role string) auth.RegisterRequest {
	return auth.RegisterRequest{
		Name:            "Test User",
		Email:           email,
		Password:        "password123",
		ConfirmPassword: "password123",
		Role:            role,
	}
}

func TestRegister_FirstUserBootstrapsAdmin(t *testing.T) {
	svc, _ := newTestAuthService()

	tokens, err := svc.Register(context.Background(), registerReq("founder@example.com", "admin"))
	require.NoError(t, err)
	assert.Equal(t, "admin", tokens.User.Role)
}

func TestRegister_ElevatedRoleDowngradedAfterBootstrap(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), registerReq("founder@example.com", "admin"))
	require.NoError(t, err)

	for _, requested := range []string{"admin", "hr"} {
		tokens, err := svc.Register(context.Background(), registerReq(requested+"@example.com", requested))
		require.NoError(t, err)
		assert.Equal(t, "employee", tokens.User.Role, "requested role %q must not survive open registration", requested)
	}
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), registerReq("x@example.com", "superuser"))
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), registerReq("dup@example.com", ""))
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerReq("dup@example.com", ""))
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestRegister_IssuesBothTokens(t *testing.T) {
	svc, _ := newTestAuthService()

	tokens, err := svc.Register(context.Background(), registerReq("tokens@example.com", ""))
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Greater(t, tokens.RefreshExpiresAt, tokens.ExpiresAt)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.Register(context.Background(), registerReq("login@example.com", ""))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "login@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_InactiveAccount(t *testing.T) {
	svc, repo := newTestAuthService()

	tokens, err := svc.Register(context.Background(), registerReq("inactive@example.com", ""))
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(context.Background(), tokens.User.ID, false))

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "inactive@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrAccountInactive)
}
