package auth

import (
	"context"

	"hotelbooking/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
}

type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string, responsibleHotel *int64) (string, error)
}
