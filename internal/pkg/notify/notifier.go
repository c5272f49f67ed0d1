package notify

import "log"

// Notifier is the outbound notification seam. Delivery failures are the
// caller's to log; they must never fail the operation that triggered them.
type Notifier interface {
	SendRefundNotice(email, name string, bookingID int64, amount float64) error
	SendPaymentStatusNotice(email, name string, paymentID int64, status string) error
}

// LogNotifier writes notices to the process log. It stands in for a real
// mail transport in development and tests.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (LogNotifier) SendRefundNotice(email, name string, bookingID int64, amount float64) error {
	log.Printf("notify type=refund to=%s name=%q booking_id=%d amount=%.2f", email, name, bookingID, amount)
	return nil
}

func (LogNotifier) SendPaymentStatusNotice(email, name string, paymentID int64, status string) error {
	log.Printf("notify type=payment_status to=%s name=%q payment_id=%d status=%s", email, name, paymentID, status)
	return nil
}
