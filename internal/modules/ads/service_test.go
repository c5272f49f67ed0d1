package ads

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelbooking/internal/domain"
)

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) ListAll(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelRepository) DecrementRank(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func seeded(hotels *MockHotelRepository, seed int64) *Service {
	s := NewService(hotels)
	s.rng = rand.New(rand.NewSource(seed))
	return s
}

func TestPickBanners_DistinctAndCapped(t *testing.T) {
	repo := new(MockHotelRepository)
	repo.On("ListAll", mock.Anything).Return([]domain.Hotel{
		{ID: 1, Name: "A", SubscriptionRank: 5},
		{ID: 2, Name: "B", SubscriptionRank: 4},
		{ID: 3, Name: "C", SubscriptionRank: 3},
		{ID: 4, Name: "D", SubscriptionRank: 2},
		{ID: 5, Name: "E", SubscriptionRank: 1},
		{ID: 6, Name: "F", SubscriptionRank: 1},
		{ID: 7, Name: "G", SubscriptionRank: 1},
	}, nil)
	repo.On("DecrementRank", mock.Anything, mock.Anything).Return(nil)

	s := seeded(repo, 1)
	banners, err := s.PickBanners(context.Background())

	assert.NoError(t, err)
	assert.Len(t, banners, 5)

	seen := map[int64]bool{}
	for _, b := range banners {
		assert.False(t, seen[b.ID], "hotel %d picked twice", b.ID)
		seen[b.ID] = true
	}
}

func TestPickBanners_ZeroRankNeverWins(t *testing.T) {
	repo := new(MockHotelRepository)
	repo.On("ListAll", mock.Anything).Return([]domain.Hotel{
		{ID: 1, Name: "A", SubscriptionRank: 3},
		{ID: 2, Name: "B", SubscriptionRank: 0},
	}, nil)
	repo.On("DecrementRank", mock.Anything, int64(1)).Return(nil)

	s := seeded(repo, 42)
	banners, err := s.PickBanners(context.Background())

	assert.NoError(t, err)
	assert.Len(t, banners, 1)
	assert.Equal(t, int64(1), banners[0].ID)
}

func TestPickBanners_RankFloorIsOne(t *testing.T) {
	repo := new(MockHotelRepository)
	repo.On("ListAll", mock.Anything).Return([]domain.Hotel{
		{ID: 1, Name: "A", SubscriptionRank: 1},
	}, nil)

	s := seeded(repo, 7)
	banners, err := s.PickBanners(context.Background())

	assert.NoError(t, err)
	assert.Len(t, banners, 1)
	// rank 1 hotels keep their last token
	repo.AssertNotCalled(t, "DecrementRank", mock.Anything, mock.Anything)
}

func TestPickBanners_HigherRankWinsMoreOften(t *testing.T) {
	heavy, light := 0, 0
	for seed := int64(0); seed < 200; seed++ {
		repo := new(MockHotelRepository)
		repo.On("ListAll", mock.Anything).Return([]domain.Hotel{
			{ID: 1, Name: "Heavy", SubscriptionRank: 9},
			{ID: 2, Name: "Light", SubscriptionRank: 1},
		}, nil)
		repo.On("DecrementRank", mock.Anything, mock.Anything).Return(nil)

		s := seeded(repo, seed)
		banners, err := s.PickBanners(context.Background())
		assert.NoError(t, err)

		if banners[0].ID == 1 {
			heavy++
		} else {
			light++
		}
	}
	assert.Greater(t, heavy, light*3, "rank 9 should dominate rank 1 in first position")
}

func TestPickBanners_NoHotels(t *testing.T) {
	repo := new(MockHotelRepository)
	repo.On("ListAll", mock.Anything).Return([]domain.Hotel{}, nil)

	s := seeded(repo, 1)
	_, err := s.PickBanners(context.Background())
	assert.ErrorIs(t, err, ErrNoHotels)
}
