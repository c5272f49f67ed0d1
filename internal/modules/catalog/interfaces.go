package catalog

import (
	"context"

	"hotelbooking/internal/domain"
)

type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context, limit, offset int) ([]domain.Hotel, int64, error)
	Create(ctx context.Context, h *domain.Hotel) error
	Update(ctx context.Context, h *domain.Hotel) error
	Delete(ctx context.Context, id int64) error
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error)
	CountByHotel(ctx context.Context, hotelID int64) (int64, error)
	Create(ctx context.Context, room *domain.Room) error
	Update(ctx context.Context, room *domain.Room) error
	DeleteCascade(ctx context.Context, roomID int64) error
	GetIntervals(ctx context.Context, roomID int64) ([]domain.Interval, error)
}
