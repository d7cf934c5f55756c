package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taartu/internal/domain"
	"taartu/internal/repository"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil {
		u.ID = 42 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type stubJWT struct{}

func (stubJWT) GenerateToken(userID int64, role string) (string, error) {
	return "token", nil
}

func TestService_Register_DefaultsToCustomerRole(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(users, stubJWT{})
	result, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Jane",
		Email:    "Jane@Example.com",
		Password: "secret1",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, result.User.Role)
	assert.Equal(t, "jane@example.com", result.User.Email)
	assert.NotEqual(t, "secret1", result.User.PasswordHash)
	assert.Equal(t, "token", result.Token)
}

func TestService_Register_EmailTaken(t *testing.T) {
	users := new(MockUserRepository)
	users.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

	svc := NewService(users, stubJWT{})
	_, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Jane",
		Email:    "jane@example.com",
		Password: "secret1",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)

	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "jane@example.com").Return(&domain.User{
		ID:           42,
		Email:        "jane@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleBusinessOwner,
	}, nil)

	svc := NewService(users, stubJWT{})

	result, err := svc.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), result.User.ID)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	users.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, stubJWT{})
	_, err := svc.Login(context.Background(), LoginRequest{Email: "ghost@example.com", Password: "whatever"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
