package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Uoerim/UniSphere-sub001/internal/auth"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, name, email, passwordHash, role string) (*User, error) {
	args := m.Called(ctx, name, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) FindByID(ctx context.Context, id int) (*User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*User), args.Error(1)
}

func (m *MockRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

const testJWTSecret = "test-secret"

func TestRegister_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testJWTSecret)

	repo.On("EmailExists", mock.Anything, "alice@example.edu").Return(false, nil)
	repo.On("Create", mock.Anything, "Alice", "alice@example.edu", mock.AnythingOfType("string"), "member").
		Return(&User{ID: 1, Name: "Alice", Email: "alice@example.edu", Role: "member"}, nil)

	user, access, refresh, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.edu",
		Password: "supersecret",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	repo.AssertExpectations(t)
}

func TestRegister_EmailExists(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testJWTSecret)

	repo.On("EmailExists", mock.Anything, "alice@example.edu").Return(true, nil)

	_, _, _, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.edu",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, ErrEmailExists)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_Success(t *testing.T) {
	hash, err := auth.HashPassword("supersecret")
	require.NoError(t, err)

	repo := new(MockRepository)
	svc := NewService(repo, testJWTSecret)

	repo.On("FindByEmail", mock.Anything, "alice@example.edu").
		Return(&User{ID: 1, Email: "alice@example.edu", PasswordHash: hash, Role: "member"}, nil)

	user, access, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "alice@example.edu",
		Password: "supersecret",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, user.ID)

	claims, err := auth.ValidateToken(access, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, "member", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := auth.HashPassword("supersecret")
	require.NoError(t, err)

	repo := new(MockRepository)
	svc := NewService(repo, testJWTSecret)

	repo.On("FindByEmail", mock.Anything, "alice@example.edu").
		Return(&User{ID: 1, Email: "alice@example.edu", PasswordHash: hash}, nil)

	_, _, _, err = svc.Login(context.Background(), LoginRequest{
		Email:    "alice@example.edu",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testJWTSecret)

	repo.On("FindByEmail", mock.Anything, "ghost@example.edu").Return(nil, ErrUserNotFound)

	_, _, _, err := svc.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.edu",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshToken_Success(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testJWTSecret)

	_, refresh, err := auth.GenerateTokens(7, "bob@example.edu", "member", testJWTSecret, testJWTSecret)
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, 7).
		Return(&User{ID: 7, Email: "bob@example.edu", Role: "member"}, nil)

	access, user, err := svc.RefreshToken(context.Background(), refresh)
	require.NoError(t, err)
	assert.Equal(t, 7, user.ID)

	claims, err := auth.ValidateToken(access, testJWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "access", claims.TokenType)
}

func TestRefreshToken_DeletedUser(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testJWTSecret)

	_, refresh, err := auth.GenerateTokens(7, "bob@example.edu", "member", testJWTSecret, testJWTSecret)
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, 7).Return(nil, ErrUserNotFound)

	_, _, err = svc.RefreshToken(context.Background(), refresh)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, testJWTSecret)

	repo.On("FindByID", mock.Anything, 99).Return(nil, ErrUserNotFound)

	_, err := svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
