package ads

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"hotelbooking/internal/domain"
)

const bannerCount = 5

var ErrNoHotels = errors.New("no hotels to advertise")

type HotelRepository interface {
	ListAll(ctx context.Context) ([]domain.Hotel, error)
	DecrementRank(ctx context.Context, id int64) error
}

// Service runs the ad banner lottery. Each request draws up to five
// distinct hotels, weighted by subscription rank; every win burns one
// rank token so heavy subscribers fade over time instead of dominating
// the slot forever.
type Service struct {
	hotels HotelRepository

	mu  sync.Mutex
	rng *rand.Rand
}

func NewService(hotels HotelRepository) *Service {
	return &Service{
		hotels: hotels,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *Service) PickBanners(ctx context.Context) ([]domain.Hotel, error) {
	hotels, err := s.hotels.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(hotels) == 0 {
		return nil, ErrNoHotels
	}

	picked := make([]domain.Hotel, 0, bannerCount)
	taken := make(map[int64]bool, bannerCount)

	for i := 0; i < bannerCount; i++ {
		h, ok := s.draw(hotels, taken)
		if !ok {
			break
		}
		taken[h.ID] = true
		picked = append(picked, h)

		if h.SubscriptionRank > 1 {
			if err := s.hotels.DecrementRank(ctx, h.ID); err != nil {
				return nil, err
			}
		}
	}

	return picked, nil
}

// draw takes one weighted sample from the hotels not yet picked. Weights
// are cumulative rank tokens; a rank of zero never wins.
func (s *Service) draw(hotels []domain.Hotel, taken map[int64]bool) (domain.Hotel, bool) {
	type bucket struct {
		hotel domain.Hotel
		upTo  int
	}

	total := 0
	buckets := make([]bucket, 0, len(hotels))
	for _, h := range hotels {
		if taken[h.ID] || h.SubscriptionRank <= 0 {
			continue
		}
		total += h.SubscriptionRank
		buckets = append(buckets, bucket{hotel: h, upTo: total})
	}
	if total == 0 {
		return domain.Hotel{}, false
	}

	s.mu.Lock()
	n := s.rng.Intn(total)
	s.mu.Unlock()

	for _, b := range buckets {
		if b.upTo > n {
			return b.hotel, true
		}
	}
	return domain.Hotel{}, false
}
