package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"smarttrack-backend/internal/domains/user/model"
	"smarttrack-backend/internal/domains/user/repository"
	"smarttrack-backend/pkg/jwt"
)

type fakeUserRepo struct {
	repository.Repository

	byUsername  map[string]*model.User
	byEmail     map[string]*model.User
	created     *model.User
	usernameErr error
}

func newFakeUserRepo(users ...*model.User) *fakeUserRepo {
	f := &fakeUserRepo{
		byUsername: map[string]*model.User{},
		byEmail:    map[string]*model.User{},
	}
	for _, u := range users {
		f.byUsername[u.Username] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	f.created = u
	f.byUsername[u.Username] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if f.usernameErr != nil {
		return nil, f.usernameErr
	}
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, model.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	_, ok := f.byUsername[username]
	return ok, nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

// memoryCache is a minimal in-process stand-in for Redis. TTLs are ignored.
type memoryCache struct {
	values   map[string]interface{}
	counters map[string]int64
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		values:   map[string]interface{}{},
		counters: map[string]int64{},
	}
}

func (m *memoryCache) Get(_ context.Context, key string, _ interface{}) (bool, error) {
	_, ok := m.values[key]
	return ok, nil
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.values[key] = value
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.values, k)
		delete(m.counters, k)
	}
	return nil
}

func (m *memoryCache) Ping(_ context.Context) error { return nil }

func (m *memoryCache) Increment(_ context.Context, key string) (int64, error) {
	m.counters[key]++
	return m.counters[key], nil
}

func (m *memoryCache) Exists(_ context.Context, key string) (bool, error) {
	if _, ok := m.values[key]; ok {
		return true, nil
	}
	_, ok := m.counters[key]
	return ok, nil
}

func (m *memoryCache) Expire(_ context.Context, _ string, _ time.Duration) error { return nil }

func testJWT() *jwt.Manager {
	return jwt.NewManager("test-secret", 15*time.Minute, 72*time.Hour)
}

func activeUser(username, password string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		FullName:     "Test User",
		Role:         model.RoleOperator,
		IsActive:     true,
	}
}

func validRegister() model.RegisterRequest {
	return model.RegisterRequest{
		Username:        "warehouse1",
		Email:           "warehouse1@example.com",
		Password:        "s3cret-pass",
		ConfirmPassword: "s3cret-pass",
		FullName:        "Warehouse One",
		Role:            "OPERATOR",
	}
}

func TestRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, testJWT(), newMemoryCache())

	res, err := svc.Register(context.Background(), validRegister())
	require.NoError(t, err)

	assert.Equal(t, "warehouse1", res.Username)
	assert.Equal(t, model.RoleOperator, res.Role)
	require.NotNil(t, repo.created)
	assert.True(t, repo.created.IsActive)

	// Stored hash must verify against the original password.
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(repo.created.PasswordHash), []byte("s3cret-pass")))
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testJWT(), newMemoryCache())

	req := validRegister()
	req.ConfirmPassword = "something-else"

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrPasswordsDoNotMatch)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	existing := activeUser("warehouse1", "pw-unused-1")
	svc := NewService(newFakeUserRepo(existing), testJWT(), newMemoryCache())

	req := validRegister()
	req.Email = "fresh@example.com"

	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, model.ErrUsernameAlreadyExists)
}

func TestRegisterInvalidRole(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testJWT(), newMemoryCache())

	req := validRegister()
	req.Role = "SUPERUSER"

	_, err := svc.Register(context.Background(), req)
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	user := activeUser("warehouse1", "s3cret-pass")
	svc := NewService(newFakeUserRepo(user), testJWT(), newMemoryCache())

	res, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "warehouse1",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, res.ID)
	assert.NotEmpty(t, res.AccessToken)
	assert.NotEmpty(t, res.RefreshToken)

	// The access token round-trips through the manager.
	claims, err := testJWT().ValidateAccessToken(res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "OPERATOR", claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	user := activeUser("warehouse1", "s3cret-pass")
	svc := NewService(newFakeUserRepo(user), testJWT(), newMemoryCache())

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "warehouse1",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginUnknownUserSameError(t *testing.T) {
	svc := NewService(newFakeUserRepo(), testJWT(), newMemoryCache())

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})

	// Unknown user and wrong password are indistinguishable to callers.
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestLoginRepositoryFailureDoesNotBurnAttempt(t *testing.T) {
	repo := newFakeUserRepo(activeUser("warehouse1", "s3cret-pass"))
	dbDown := errors.New("connection refused")
	repo.usernameErr = dbDown
	cache := newMemoryCache()
	svc := NewService(repo, testJWT(), cache)

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "warehouse1",
		Password: "s3cret-pass",
	})

	// An outage propagates as-is and never counts toward the lockout.
	require.Error(t, err)
	assert.ErrorIs(t, err, dbDown)
	assert.False(t, errors.Is(err, model.ErrInvalidCredentials))
	assert.Zero(t, cache.counters["login_attempts:warehouse1"])
}

func TestLoginLocksAfterRepeatedFailures(t *testing.T) {
	user := activeUser("warehouse1", "s3cret-pass")
	cache := newMemoryCache()
	svc := NewService(newFakeUserRepo(user), testJWT(), cache)

	for i := 0; i < maxLoginAttempts; i++ {
		_, err := svc.Login(context.Background(), model.LoginRequest{
			Username: "warehouse1",
			Password: "wrong",
		})
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	}

	// Even the correct password is rejected while the lock holds.
	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "warehouse1",
		Password: "s3cret-pass",
	})
	assert.ErrorIs(t, err, model.ErrAccountLocked)
}

func TestLoginSuccessResetsFailureCounter(t *testing.T) {
	user := activeUser("warehouse1", "s3cret-pass")
	cache := newMemoryCache()
	svc := NewService(newFakeUserRepo(user), testJWT(), cache)

	for i := 0; i < maxLoginAttempts-1; i++ {
		_, _ = svc.Login(context.Background(), model.LoginRequest{
			Username: "warehouse1",
			Password: "wrong",
		})
	}

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "warehouse1",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	assert.Zero(t, cache.counters["login_attempts:warehouse1"])
}

func TestLoginInactiveAccount(t *testing.T) {
	user := activeUser("warehouse1", "s3cret-pass")
	user.IsActive = false
	svc := NewService(newFakeUserRepo(user), testJWT(), newMemoryCache())

	_, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "warehouse1",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, model.ErrAccountInactive)
}

func TestRefresh(t *testing.T) {
	user := activeUser("warehouse1", "s3cret-pass")
	svc := NewService(newFakeUserRepo(user), testJWT(), newMemoryCache())

	login, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "warehouse1",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), login.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, refreshed.ID)
	assert.NotEmpty(t, refreshed.AccessToken)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	user := activeUser("warehouse1", "s3cret-pass")
	svc := NewService(newFakeUserRepo(user), testJWT(), newMemoryCache())

	login, err := svc.Login(context.Background(), model.LoginRequest{
		Username: "warehouse1",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Refresh(context.Background(), login.AccessToken)
	assert.ErrorIs(t, err, model.ErrInvalidCredentials)
}
