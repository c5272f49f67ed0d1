package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRefundAmount_BeforeCheckIn(t *testing.T) {
	checkIn := date(2025, 4, 25)
	checkOut := date(2025, 4, 26)

	// more than 3 days out
	got, err := RefundAmount(checkIn, checkOut, date(2025, 4, 21), 1000)
	assert.NoError(t, err)
	assert.InDelta(t, 900.0, got, 1e-9)

	// within 3 days
	got, err = RefundAmount(checkIn, checkOut, date(2025, 4, 22), 1000)
	assert.NoError(t, err)
	assert.InDelta(t, 500.0, got, 1e-9)
}

func TestRefundAmount_AfterCheckOut(t *testing.T) {
	got, err := RefundAmount(date(2025, 4, 25), date(2025, 4, 26), date(2025, 4, 27), 1000)
	assert.NoError(t, err)
	assert.Zero(t, got)
}

func TestRefundAmount_DuringStay(t *testing.T) {
	checkIn := date(2025, 4, 25)
	paid := 1000.0

	cases := []struct {
		name     string
		checkOut time.Time
		cancelAt time.Time
		want     float64
	}{
		{"1 night", date(2025, 4, 26), date(2025, 4, 25), 0},
		{"2 nights, first day", date(2025, 4, 27), date(2025, 4, 25), 250},
		{"2 nights, second day", date(2025, 4, 27), date(2025, 4, 26), 0},
		{"3 nights, first day", date(2025, 4, 28), date(2025, 4, 25), 365},
		{"3 nights, second day", date(2025, 4, 28), date(2025, 4, 26), 120},
		{"3 nights, third day", date(2025, 4, 28), date(2025, 4, 27), 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RefundAmount(checkIn, tc.checkOut, tc.cancelAt, paid)
			assert.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestRefundAmount_UndefinedStayLength(t *testing.T) {
	checkIn := date(2025, 4, 25)
	checkOut := date(2025, 4, 29) // 4 nights: no rule

	_, err := RefundAmount(checkIn, checkOut, date(2025, 4, 25), 1000)
	assert.ErrorIs(t, err, ErrRefundPolicyUndefined)
}

func TestRefundAmount_Deterministic(t *testing.T) {
	checkIn := date(2025, 4, 25)
	checkOut := date(2025, 4, 28)
	cancelAt := date(2025, 4, 26)

	first, err := RefundAmount(checkIn, checkOut, cancelAt, 1234.56)
	assert.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := RefundAmount(checkIn, checkOut, cancelAt, 1234.56)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}

	// defined stay lengths never refund more than was paid, or less than zero
	assert.GreaterOrEqual(t, first, 0.0)
	assert.LessOrEqual(t, first, 1234.56)
}
