package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	user.ID = 7
	return args.Error(0)
}

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID int64, role string, responsibleHotel *int64) (string, error) {
	args := m.Called(userID, role, responsibleHotel)
	return args.String(0), args.Error(1)
}

func TestRegister_GuestAccount(t *testing.T) {
	users := new(MockUserRepository)
	hotels := new(MockHotelRepository)
	s := NewService(users, hotels, new(MockTokenIssuer))

	users.On("GetByEmail", mock.Anything, "g@x.io").Return(nil, gorm.ErrRecordNotFound)
	users.On("Create", mock.Anything, mock.Anything).Return(nil)

	user, err := s.Register(context.Background(), RegisterRequest{
		Name: "G", Email: "G@X.io", Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, "g@x.io", user.Email)
	assert.Equal(t, domain.TierNone, user.MembershipTier)
	assert.Empty(t, user.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := new(MockUserRepository)
	s := NewService(users, new(MockHotelRepository), new(MockTokenIssuer))

	users.On("GetByEmail", mock.Anything, "g@x.io").Return(&domain.User{ID: 1}, nil)

	_, err := s.Register(context.Background(), RegisterRequest{
		Name: "G", Email: "g@x.io", Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_ManagerNeedsExistingHotel(t *testing.T) {
	users := new(MockUserRepository)
	hotels := new(MockHotelRepository)
	s := NewService(users, hotels, new(MockTokenIssuer))

	_, err := s.Register(context.Background(), RegisterRequest{
		Name: "M", Email: "m@x.io", Password: "supersecret", Role: "hotelManager",
	})
	assert.ErrorIs(t, err, ErrHotelRequired)

	hotelID := int64(404)
	hotels.On("GetByID", mock.Anything, hotelID).Return(nil, gorm.ErrRecordNotFound)

	_, err = s.Register(context.Background(), RegisterRequest{
		Name: "M", Email: "m@x.io", Password: "supersecret",
		Role: "hotelManager", ResponsibleHotel: &hotelID,
	})
	assert.ErrorIs(t, err, ErrHotelRequired)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	s := NewService(new(MockUserRepository), new(MockHotelRepository), new(MockTokenIssuer))

	_, err := s.Register(context.Background(), RegisterRequest{
		Name: "A", Email: "a@x.io", Password: "supersecret", Role: "admin",
	})
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogin_IssuesTokenWithHotelClaim(t *testing.T) {
	users := new(MockUserRepository)
	tokens := new(MockTokenIssuer)
	s := NewService(users, new(MockHotelRepository), tokens)

	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	assert.NoError(t, err)

	hotelID := int64(3)
	users.On("GetByEmail", mock.Anything, "m@x.io").Return(&domain.User{
		ID: 9, Email: "m@x.io", PasswordHash: string(hash),
		Role: domain.RoleHotelManager, ResponsibleHotel: &hotelID,
	}, nil)
	tokens.On("GenerateToken", int64(9), "hotelManager", &hotelID).Return("tok", nil)

	result, err := s.Login(context.Background(), LoginRequest{Email: "m@x.io", Password: "supersecret"})

	assert.NoError(t, err)
	assert.Equal(t, "tok", result.Token)
	assert.Empty(t, result.User.PasswordHash)
	tokens.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(MockUserRepository)
	s := NewService(users, new(MockHotelRepository), new(MockTokenIssuer))

	hash, _ := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	users.On("GetByEmail", mock.Anything, "g@x.io").Return(&domain.User{
		ID: 7, PasswordHash: string(hash), Role: domain.RoleUser,
	}, nil)

	_, err := s.Login(context.Background(), LoginRequest{Email: "g@x.io", Password: "nope"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(MockUserRepository)
	s := NewService(users, new(MockHotelRepository), new(MockTokenIssuer))

	users.On("GetByEmail", mock.Anything, "x@x.io").Return(nil, gorm.ErrRecordNotFound)

	_, err := s.Login(context.Background(), LoginRequest{Email: "x@x.io", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
