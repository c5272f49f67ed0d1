package review

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelbooking/internal/domain"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Review, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) ExistsByUserAndHotel(ctx context.Context, userID, hotelID int64) (bool, error) {
	args := m.Called(ctx, userID, hotelID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	args := m.Called(ctx, rev)
	return args.Error(0)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
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

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) LatestByUserAndHotel(ctx context.Context, userID, hotelID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

var guest = domain.Actor{ID: 7, Role: domain.RoleUser}

func newService(reviews *MockReviewRepository, hotels *MockHotelRepository, bookings *MockBookingRepository, now time.Time) *Service {
	s := NewService(reviews, hotels, bookings)
	s.now = func() time.Time { return now }
	return s
}

func TestCreate_RequiresPastStay(t *testing.T) {
	reviews := new(MockReviewRepository)
	hotels := new(MockHotelRepository)
	bookings := new(MockBookingRepository)
	s := newService(reviews, hotels, bookings, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))

	hotels.On("GetByID", mock.Anything, int64(3)).Return(&domain.Hotel{ID: 3}, nil)
	bookings.On("LatestByUserAndHotel", mock.Anything, guest.ID, int64(3)).Return(nil, nil)

	_, err := s.Create(context.Background(), guest, 3, 4, "nice")
	assert.ErrorIs(t, err, ErrStayRequired)
}

func TestCreate_BeforeCheckOutRejected(t *testing.T) {
	reviews := new(MockReviewRepository)
	hotels := new(MockHotelRepository)
	bookings := new(MockBookingRepository)
	s := newService(reviews, hotels, bookings, time.Date(2025, 4, 26, 0, 0, 0, 0, time.UTC))

	hotels.On("GetByID", mock.Anything, int64(3)).Return(&domain.Hotel{ID: 3}, nil)
	bookings.On("LatestByUserAndHotel", mock.Anything, guest.ID, int64(3)).Return(&domain.Booking{
		CheckOutDate: time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC),
	}, nil)

	_, err := s.Create(context.Background(), guest, 3, 4, "nice")
	assert.ErrorIs(t, err, ErrReviewTooEarly)
}

func TestCreate_OnePerHotel(t *testing.T) {
	reviews := new(MockReviewRepository)
	hotels := new(MockHotelRepository)
	bookings := new(MockBookingRepository)
	s := newService(reviews, hotels, bookings, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))

	hotels.On("GetByID", mock.Anything, int64(3)).Return(&domain.Hotel{ID: 3}, nil)
	bookings.On("LatestByUserAndHotel", mock.Anything, guest.ID, int64(3)).Return(&domain.Booking{
		CheckOutDate: time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC),
	}, nil)
	reviews.On("ExistsByUserAndHotel", mock.Anything, guest.ID, int64(3)).Return(true, nil)

	_, err := s.Create(context.Background(), guest, 3, 4, "again")
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCreate_Success(t *testing.T) {
	reviews := new(MockReviewRepository)
	hotels := new(MockHotelRepository)
	bookings := new(MockBookingRepository)
	s := newService(reviews, hotels, bookings, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC))

	hotels.On("GetByID", mock.Anything, int64(3)).Return(&domain.Hotel{ID: 3}, nil)
	bookings.On("LatestByUserAndHotel", mock.Anything, guest.ID, int64(3)).Return(&domain.Booking{
		CheckOutDate: time.Date(2025, 4, 28, 0, 0, 0, 0, time.UTC),
	}, nil)
	reviews.On("ExistsByUserAndHotel", mock.Anything, guest.ID, int64(3)).Return(false, nil)
	reviews.On("Create", mock.Anything, mock.Anything).Return(nil)

	rev, err := s.Create(context.Background(), guest, 3, 5, "great stay")
	assert.NoError(t, err)
	assert.Equal(t, 5, rev.Rating)
	assert.Equal(t, guest.ID, rev.UserID)
}

func TestCreate_RatingBounds(t *testing.T) {
	s := newService(new(MockReviewRepository), new(MockHotelRepository), new(MockBookingRepository), time.Now())

	_, err := s.Create(context.Background(), guest, 3, 0, "")
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = s.Create(context.Background(), guest, 3, 6, "")
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestDelete_AuthorOrAdmin(t *testing.T) {
	reviews := new(MockReviewRepository)
	s := newService(reviews, new(MockHotelRepository), new(MockBookingRepository), time.Now())

	reviews.On("GetByID", mock.Anything, int64(9)).Return(&domain.Review{ID: 9, UserID: guest.ID}, nil)
	reviews.On("Delete", mock.Anything, int64(9)).Return(nil)

	assert.NoError(t, s.Delete(context.Background(), guest, 9))

	stranger := domain.Actor{ID: 99, Role: domain.RoleUser}
	assert.ErrorIs(t, s.Delete(context.Background(), stranger, 9), ErrUnauthorized)

	admin := domain.Actor{ID: 1, Role: domain.RoleAdmin}
	assert.NoError(t, s.Delete(context.Background(), admin, 9))
}
