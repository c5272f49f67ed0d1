package domain

import (
	"errors"
	"time"
)

// The refund policy counts in whole 24h days, matching how check-in and
// check-out instants are stored (midnight UTC).
const refundDay = 24 * time.Hour

// ErrRefundPolicyUndefined is returned when the policy table has no rule for
// the booking's stay length. The caller must not fall back to 0% or 100%.
var ErrRefundPolicyUndefined = errors.New("no refund rule for this stay length")

// RefundAmount computes the amount returned to the guest when a paid booking
// is canceled at cancelAt. Pure: identical inputs always produce identical
// results.
//
// Before check-in the refund is 90% (more than 3 days out) or 50%.
// After check-out it is 0. During the stay it depends on the booked length:
// 1 night refunds nothing; 2 nights refund 25% within the first day;
// 3 nights refund 36.5% within the first day, 12% within the second.
func RefundAmount(checkIn, checkOut, cancelAt time.Time, paid float64) (float64, error) {
	var percent float64

	switch {
	case cancelAt.Before(checkIn):
		if checkIn.Sub(cancelAt) > 3*refundDay {
			percent = 0.90
		} else {
			percent = 0.50
		}

	case cancelAt.After(checkOut):
		percent = 0.00

	default:
		stay := checkOut.Sub(checkIn)
		elapsed := cancelAt.Sub(checkIn)

		switch stay {
		case refundDay:
			percent = 0.00
		case 2 * refundDay:
			if elapsed < refundDay {
				percent = 0.25
			}
		case 3 * refundDay:
			if elapsed < refundDay {
				percent = 0.365
			} else if elapsed < 2*refundDay {
				percent = 0.12
			}
		default:
			return 0, ErrRefundPolicyUndefined
		}
	}

	return percent * paid, nil
}
