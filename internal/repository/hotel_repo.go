package repository

import (
	"context"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var h domain.Hotel
	if err := r.db.WithContext(ctx).First(&h, id).Error; err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HotelRepository) List(ctx context.Context, limit, offset int) ([]domain.Hotel, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Hotel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hotels []domain.Hotel
	err := r.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&hotels).Error
	if err != nil {
		return nil, 0, err
	}
	return hotels, total, nil
}

func (r *HotelRepository) ListAll(ctx context.Context) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	if err := r.db.WithContext(ctx).Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *HotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *HotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	return r.db.WithContext(ctx).Save(h).Error
}

func (r *HotelRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.Hotel{}, id).Error
}

// DecrementRank lowers a hotel's ad subscription rank by one, never below one.
func (r *HotelRepository) DecrementRank(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&domain.Hotel{}).
		Where("id = ? AND subscription_rank > 1", id).
		UpdateColumn("subscription_rank", gorm.Expr("subscription_rank - 1")).Error
}
