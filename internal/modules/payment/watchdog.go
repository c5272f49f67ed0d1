package payment

import (
	"context"
	"log"
	"time"
)

// Watchdog fails payments that are still unpaid when their timeout
// elapses. The guarded repository write makes a late timer a no-op, so
// a fired timer never races a settled payment.
type Watchdog struct {
	payments PaymentRepository
	timeout  time.Duration

	afterFunc func(d time.Duration, f func()) *time.Timer
}

func NewWatchdog(payments PaymentRepository, timeout time.Duration) *Watchdog {
	return &Watchdog{
		payments:  payments,
		timeout:   timeout,
		afterFunc: time.AfterFunc,
	}
}

// Schedule arms the timeout for a freshly created payment.
func (w *Watchdog) Schedule(paymentID int64) {
	w.afterFunc(w.timeout, func() {
		failed, err := w.payments.MarkFailedIfUnpaid(context.Background(), paymentID)
		if err != nil {
			log.Printf("payment_watchdog_error payment_id=%d err=%v", paymentID, err)
			return
		}
		if failed {
			log.Printf("payment_timed_out payment_id=%d timeout=%s", paymentID, w.timeout)
		}
	})
}
