package catalog

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type Service struct {
	hotels HotelRepository
	rooms  RoomRepository
}

func NewService(hotels HotelRepository, rooms RoomRepository) *Service {
	return &Service{hotels: hotels, rooms: rooms}
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	h, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) ListHotels(ctx context.Context, limit, offset int) ([]domain.Hotel, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.hotels.List(ctx, limit, offset)
}

func (s *Service) CreateHotel(ctx context.Context, req CreateHotelRequest) (*domain.Hotel, error) {
	h := &domain.Hotel{
		Name:    req.Name,
		Address: req.Address,
		Tel:     req.Tel,
		Picture: req.Picture,
	}
	if err := s.hotels.Create(ctx, h); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateHotel
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) UpdateHotel(ctx context.Context, actor domain.Actor, id int64, req UpdateHotelRequest) (*domain.Hotel, error) {
	h, err := s.GetHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canManage(actor, id) {
		return nil, ErrUnauthorized
	}

	if req.Name != nil {
		h.Name = *req.Name
	}
	if req.Address != nil {
		h.Address = *req.Address
	}
	if req.Tel != nil {
		h.Tel = *req.Tel
	}
	if req.Picture != nil {
		h.Picture = *req.Picture
	}

	if err := s.hotels.Update(ctx, h); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateHotel
		}
		return nil, err
	}
	return h, nil
}

func (s *Service) DeleteHotel(ctx context.Context, id int64) error {
	if _, err := s.GetHotel(ctx, id); err != nil {
		return err
	}
	return s.hotels.Delete(ctx, id)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}

func (s *Service) ListRooms(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	if _, err := s.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	return s.rooms.ListByHotel(ctx, hotelID)
}

// RoomAvailability returns the reserved intervals that still block the
// room. Callers check a candidate stay against them client-side.
func (s *Service) RoomAvailability(ctx context.Context, roomID int64) ([]domain.Interval, error) {
	if _, err := s.GetRoom(ctx, roomID); err != nil {
		return nil, err
	}
	return s.rooms.GetIntervals(ctx, roomID)
}

// CheckAvailability reports whether the room is free for the given stay.
func (s *Service) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	intervals, err := s.RoomAvailability(ctx, roomID)
	if err != nil {
		return false, err
	}
	return domain.IsAvailable(intervals, checkIn, checkOut), nil
}

func (s *Service) CreateRoom(ctx context.Context, actor domain.Actor, hotelID int64, req CreateRoomRequest) (*domain.Room, error) {
	if _, err := s.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}
	if !s.canManage(actor, hotelID) {
		return nil, ErrUnauthorized
	}

	roomType := domain.RoomStandard
	if req.Type != "" {
		roomType = domain.RoomType(req.Type)
	}
	if !roomType.Valid() || req.Price <= 0 || req.Number <= 0 {
		return nil, ErrInvalidRoom
	}

	room := &domain.Room{
		HotelID: hotelID,
		Type:    roomType,
		Number:  req.Number,
		Price:   req.Price,
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, actor domain.Actor, roomID int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !s.canManage(actor, room.HotelID) {
		return nil, ErrUnauthorized
	}

	if req.Type != nil {
		roomType := domain.RoomType(*req.Type)
		if !roomType.Valid() {
			return nil, ErrInvalidRoom
		}
		room.Type = roomType
	}
	if req.Number != nil {
		if *req.Number <= 0 {
			return nil, ErrInvalidRoom
		}
		room.Number = *req.Number
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, ErrInvalidRoom
		}
		room.Price = *req.Price
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// DeleteRoom removes a room and everything that hangs off it. A hotel
// keeps at least one room so it stays bookable.
func (s *Service) DeleteRoom(ctx context.Context, actor domain.Actor, roomID int64) error {
	room, err := s.GetRoom(ctx, roomID)
	if err != nil {
		return err
	}
	if !s.canManage(actor, room.HotelID) {
		return ErrUnauthorized
	}

	n, err := s.rooms.CountByHotel(ctx, room.HotelID)
	if err != nil {
		return err
	}
	if n <= 1 {
		return ErrLastRoom
	}

	return s.rooms.DeleteCascade(ctx, roomID)
}

func (s *Service) canManage(actor domain.Actor, hotelID int64) bool {
	return actor.Role == domain.RoleAdmin || actor.ManagesHotel(hotelID)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
