package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type Service struct {
	users  UserRepository
	hotels HotelRepository
	jwt    TokenIssuer
}

type LoginResult struct {
	User  *domain.User
	Token string
}

func NewService(users UserRepository, hotels HotelRepository, jwt TokenIssuer) *Service {
	return &Service{users: users, hotels: hotels, jwt: jwt}
}

// Register creates a guest or hotel-manager account. Admins are seeded out
// of band, never through the public endpoint.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	role := domain.RoleUser
	if req.Role != "" {
		role = domain.Role(req.Role)
	}
	if role != domain.RoleUser && role != domain.RoleHotelManager {
		return nil, ErrInvalidRole
	}

	if role == domain.RoleHotelManager {
		if req.ResponsibleHotel == nil {
			return nil, ErrHotelRequired
		}
		if _, err := s.hotels.GetByID(ctx, *req.ResponsibleHotel); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrHotelRequired
			}
			return nil, err
		}
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:             req.Name,
		Email:            email,
		Tel:              req.Tel,
		PasswordHash:     string(hash),
		Role:             role,
		MembershipTier:   domain.TierNone,
		ResponsibleHotel: req.ResponsibleHotel,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role), user.ResponsibleHotel)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &LoginResult{User: user, Token: token}, nil
}

func (s *Service) Me(ctx context.Context, actor domain.Actor) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	user.PasswordHash = ""
	return user, nil
}
