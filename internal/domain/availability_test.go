package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAvailable_OverlapSemantics(t *testing.T) {
	intervals := []Interval{
		{StartDate: date(2025, 5, 10), EndDate: date(2025, 5, 13)},
	}

	// fully inside
	assert.False(t, IsAvailable(intervals, date(2025, 5, 11), date(2025, 5, 12)))
	// straddling the start
	assert.False(t, IsAvailable(intervals, date(2025, 5, 9), date(2025, 5, 11)))
	// straddling the end
	assert.False(t, IsAvailable(intervals, date(2025, 5, 12), date(2025, 5, 15)))
	// covering the whole interval
	assert.False(t, IsAvailable(intervals, date(2025, 5, 9), date(2025, 5, 14)))

	// touching endpoints do not overlap
	assert.True(t, IsAvailable(intervals, date(2025, 5, 8), date(2025, 5, 10)))
	assert.True(t, IsAvailable(intervals, date(2025, 5, 13), date(2025, 5, 15)))
	// disjoint
	assert.True(t, IsAvailable(intervals, date(2025, 5, 1), date(2025, 5, 3)))
}

func TestIsAvailable_Idempotent(t *testing.T) {
	intervals := []Interval{
		{StartDate: date(2025, 5, 10), EndDate: date(2025, 5, 13)},
	}
	first := IsAvailable(intervals, date(2025, 5, 11), date(2025, 5, 12))
	second := IsAvailable(intervals, date(2025, 5, 11), date(2025, 5, 12))
	assert.Equal(t, first, second)
}

func TestReserveRelease_RoundTrip(t *testing.T) {
	base := []Interval{
		{StartDate: date(2025, 5, 1), EndDate: date(2025, 5, 3)},
	}

	reserved := Reserve(base, date(2025, 5, 10), date(2025, 5, 12))
	assert.Len(t, reserved, 2)
	assert.False(t, IsAvailable(reserved, date(2025, 5, 10), date(2025, 5, 12)))

	released := Release(reserved, date(2025, 5, 10), date(2025, 5, 12))
	assert.Equal(t, base, released)

	// the original slice is untouched
	assert.Len(t, base, 1)
}

func TestRelease_NoExactMatchIsNoOp(t *testing.T) {
	intervals := []Interval{
		{StartDate: date(2025, 5, 10), EndDate: date(2025, 5, 13)},
	}
	out := Release(intervals, date(2025, 5, 10), date(2025, 5, 12))
	assert.Equal(t, intervals, out)
}

func TestRelease_RemovesFirstMatchOnly(t *testing.T) {
	iv := Interval{StartDate: date(2025, 5, 10), EndDate: date(2025, 5, 13)}
	out := Release([]Interval{iv, iv}, iv.StartDate, iv.EndDate)
	assert.Len(t, out, 1)
}

func TestBookingNights(t *testing.T) {
	b := &Booking{CheckInDate: date(2025, 4, 25), CheckOutDate: date(2025, 4, 28)}
	assert.Equal(t, 3, b.Nights())
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to BookingStatus }{
		{BookingPending, BookingConfirmed},
		{BookingPending, BookingCanceled},
		{BookingConfirmed, BookingCheckedIn},
		{BookingConfirmed, BookingCanceled},
		{BookingCheckedIn, BookingCompleted},
		{BookingCheckedIn, BookingCanceled},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}

	// terminal states are never left
	for _, to := range []BookingStatus{BookingPending, BookingConfirmed, BookingCheckedIn, BookingCompleted, BookingCanceled} {
		assert.False(t, CanTransition(BookingCompleted, to))
		assert.False(t, CanTransition(BookingCanceled, to))
	}

	assert.False(t, CanTransition(BookingPending, BookingCheckedIn))
	assert.False(t, CanTransition(BookingPending, BookingCompleted))
	assert.False(t, CanTransition(BookingConfirmed, BookingCompleted))
}
