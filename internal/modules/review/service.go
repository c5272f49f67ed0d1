package review

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

type ReviewRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Review, error)
	ExistsByUserAndHotel(ctx context.Context, userID, hotelID int64) (bool, error)
	Create(ctx context.Context, rev *domain.Review) error
	Delete(ctx context.Context, id int64) error
}

type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}

type BookingRepository interface {
	LatestByUserAndHotel(ctx context.Context, userID, hotelID int64) (*domain.Booking, error)
}

type Service struct {
	reviews  ReviewRepository
	hotels   HotelRepository
	bookings BookingRepository

	now func() time.Time
}

func NewService(reviews ReviewRepository, hotels HotelRepository, bookings BookingRepository) *Service {
	return &Service{
		reviews:  reviews,
		hotels:   hotels,
		bookings: bookings,
		now:      time.Now,
	}
}

func (s *Service) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Review, error) {
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return s.reviews.ListByHotel(ctx, hotelID)
}

// Create accepts one review per guest per hotel, and only once their most
// recent stay there has checked out.
func (s *Service) Create(ctx context.Context, actor domain.Actor, hotelID int64, rating int, comment string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	booking, err := s.bookings.LatestByUserAndHotel(ctx, actor.ID, hotelID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrStayRequired
	}
	if !s.now().After(booking.CheckOutDate) {
		return nil, ErrReviewTooEarly
	}

	exists, err := s.reviews.ExistsByUserAndHotel(ctx, actor.ID, hotelID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	rev := &domain.Review{
		HotelID: hotelID,
		UserID:  actor.ID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviews.Create(ctx, rev); err != nil {
		return nil, err
	}
	return rev, nil
}

// Delete removes a review. The author may retract their own; admins
// moderate everything.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, reviewID int64) error {
	rev, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrReviewNotFound
		}
		return err
	}
	if actor.Role != domain.RoleAdmin && actor.ID != rev.UserID {
		return ErrUnauthorized
	}
	return s.reviews.Delete(ctx, reviewID)
}
