package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	if err := r.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("number asc").
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}
	return rooms, nil
}

func (r *RoomRepository) CountByHotel(ctx context.Context, hotelID int64) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Room{}).
		Where("hotel_id = ?", hotelID).
		Count(&n).Error
	return n, err
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

// DeleteCascade removes a room together with its bookings, their payments
// and its reserved intervals, in one transaction.
func (r *RoomRepository) DeleteCascade(ctx context.Context, roomID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var bookingIDs []int64
		if err := tx.Model(&domain.Booking{}).Where("room_id = ?", roomID).Pluck("id", &bookingIDs).Error; err != nil {
			return err
		}
		if len(bookingIDs) > 0 {
			if err := tx.Where("booking_id IN ?", bookingIDs).Delete(&domain.Payment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("room_id = ?", roomID).Delete(&domain.Booking{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("room_id = ?", roomID).Delete(&domain.UnavailablePeriod{}).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Room{}, roomID).Error
	})
}

// GetIntervals returns the room's reserved intervals.
func (r *RoomRepository) GetIntervals(ctx context.Context, roomID int64) ([]domain.Interval, error) {
	var periods []domain.UnavailablePeriod
	err := r.db.WithContext(ctx).
		Model(&domain.UnavailablePeriod{}).
		Where("room_id = ?", roomID).
		Find(&periods).Error
	if err != nil {
		return nil, err
	}

	intervals := make([]domain.Interval, 0, len(periods))
	for _, p := range periods {
		intervals = append(intervals, p.Interval())
	}
	return intervals, nil
}
