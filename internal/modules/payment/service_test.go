package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelbooking/internal/domain"
)

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListAll(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SettleCompleted(ctx context.Context, p *domain.Payment, now time.Time) (bool, error) {
	args := m.Called(ctx, p, now)
	if args.Bool(0) {
		p.Status = domain.PaymentCompleted
		p.PaymentDate = &now
	}
	return args.Bool(0), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) MarkFailedIfUnpaid(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendRefundNotice(email, name string, bookingID int64, amount float64) error {
	args := m.Called(email, name, bookingID, amount)
	return args.Error(0)
}

func (m *MockNotifier) SendPaymentStatusNotice(email, name string, paymentID int64, status string) error {
	args := m.Called(email, name, paymentID, status)
	return args.Error(0)
}

type MockAudit struct {
	mock.Mock
}

func (m *MockAudit) Record(ctx context.Context, userID int64, category, message string) {
	m.Called(ctx, userID, category, message)
}

type fixture struct {
	payments *MockPaymentRepository
	users    *MockUserRepository
	notifier *MockNotifier
	audit    *MockAudit
	service  *Service
}

func newFixture() *fixture {
	f := &fixture{
		payments: new(MockPaymentRepository),
		users:    new(MockUserRepository),
		notifier: new(MockNotifier),
		audit:    new(MockAudit),
	}
	f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
	f.users.On("GetByID", mock.Anything, mock.Anything).Return(&domain.User{ID: 7, Email: "g@x.io", Name: "G"}, nil).Maybe()
	f.notifier.On("SendPaymentStatusNotice", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.service = NewService(f.payments, f.users, f.notifier, f.audit)
	f.service.now = func() time.Time { return time.Date(2025, 4, 20, 12, 0, 0, 0, time.UTC) }
	return f
}

var guest = domain.Actor{ID: 7, Role: domain.RoleUser}
var admin = domain.Actor{ID: 1, Role: domain.RoleAdmin}

func unpaid() *domain.Payment {
	return &domain.Payment{ID: 5, BookingID: 42, UserID: guest.ID, Amount: 1000, Status: domain.PaymentUnpaid, Method: domain.MethodCard}
}

func TestUpdatePayment_GuestSubmitsPending(t *testing.T) {
	f := newFixture()

	f.payments.On("GetByID", mock.Anything, int64(5)).Return(unpaid(), nil)
	f.payments.On("Update", mock.Anything, mock.Anything).Return(nil)

	status := string(domain.PaymentPending)
	p, err := f.service.UpdatePayment(context.Background(), guest, 5, UpdatePaymentRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentPending, p.Status)
	assert.Nil(t, p.PaymentDate)
}

func TestUpdatePayment_GuestCannotSettle(t *testing.T) {
	f := newFixture()

	f.payments.On("GetByID", mock.Anything, int64(5)).Return(unpaid(), nil)

	status := string(domain.PaymentCompleted)
	_, err := f.service.UpdatePayment(context.Background(), guest, 5, UpdatePaymentRequest{Status: &status})

	assert.ErrorIs(t, err, ErrStatusChangeNotAllowed)
	f.payments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdatePayment_CompleteStampsPaymentDate(t *testing.T) {
	f := newFixture()

	p := unpaid()
	p.Status = domain.PaymentPending
	f.payments.On("GetByID", mock.Anything, int64(5)).Return(p, nil)
	f.payments.On("SettleCompleted", mock.Anything, p, f.service.now()).Return(true, nil)

	status := string(domain.PaymentCompleted)
	got, err := f.service.UpdatePayment(context.Background(), admin, 5, UpdatePaymentRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentCompleted, got.Status)
	if assert.NotNil(t, got.PaymentDate) {
		assert.Equal(t, f.service.now(), *got.PaymentDate)
	}
	f.payments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

// A concurrent settle that loses the in-transaction re-check is reported as
// a conflict, not written over the winner.
func TestUpdatePayment_SecondCompletedRejected(t *testing.T) {
	f := newFixture()

	p := unpaid()
	p.Status = domain.PaymentPending
	f.payments.On("GetByID", mock.Anything, int64(5)).Return(p, nil)
	f.payments.On("SettleCompleted", mock.Anything, p, f.service.now()).Return(false, nil)

	status := string(domain.PaymentCompleted)
	_, err := f.service.UpdatePayment(context.Background(), admin, 5, UpdatePaymentRequest{Status: &status})

	assert.ErrorIs(t, err, ErrCompletedPaymentExists)
	f.payments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdatePayment_MethodWhitelist(t *testing.T) {
	f := newFixture()

	f.payments.On("GetByID", mock.Anything, int64(5)).Return(unpaid(), nil)

	method := "Cash"
	_, err := f.service.UpdatePayment(context.Background(), guest, 5, UpdatePaymentRequest{Method: &method})
	assert.ErrorIs(t, err, ErrInvalidMethod)
}

func TestUpdatePayment_OtherGuestDenied(t *testing.T) {
	f := newFixture()

	f.payments.On("GetByID", mock.Anything, int64(5)).Return(unpaid(), nil)

	stranger := domain.Actor{ID: 99, Role: domain.RoleUser}
	status := string(domain.PaymentPending)
	_, err := f.service.UpdatePayment(context.Background(), stranger, 5, UpdatePaymentRequest{Status: &status})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdatePayment_EmptyRequest(t *testing.T) {
	f := newFixture()

	_, err := f.service.UpdatePayment(context.Background(), guest, 5, UpdatePaymentRequest{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestCancelPayment_PendingOnlyForGuests(t *testing.T) {
	f := newFixture()

	p := unpaid()
	p.Status = domain.PaymentPending
	f.payments.On("GetByID", mock.Anything, int64(5)).Return(p, nil)
	f.payments.On("Update", mock.Anything, mock.Anything).Return(nil)

	got, err := f.service.CancelPayment(context.Background(), guest, 5)
	assert.NoError(t, err)
	assert.Equal(t, domain.PaymentCanceled, got.Status)
	assert.NotNil(t, got.CanceledAt)
}

func TestCancelPayment_UnpaidRejectedForGuests(t *testing.T) {
	f := newFixture()

	f.payments.On("GetByID", mock.Anything, int64(5)).Return(unpaid(), nil)

	_, err := f.service.CancelPayment(context.Background(), guest, 5)
	assert.ErrorIs(t, err, ErrPaymentNotCancelable)
}

func TestCancelPayment_AdminVoidsAnythingButCompleted(t *testing.T) {
	f := newFixture()

	f.payments.On("GetByID", mock.Anything, int64(5)).Return(unpaid(), nil)
	f.payments.On("Update", mock.Anything, mock.Anything).Return(nil)

	_, err := f.service.CancelPayment(context.Background(), admin, 5)
	assert.NoError(t, err)

	f2 := newFixture()
	completed := unpaid()
	completed.Status = domain.PaymentCompleted
	f2.payments.On("GetByID", mock.Anything, int64(5)).Return(completed, nil)

	_, err = f2.service.CancelPayment(context.Background(), admin, 5)
	assert.ErrorIs(t, err, ErrPaymentNotCancelable)
}

func TestWatchdog_FailsUnpaidPaymentOnTimeout(t *testing.T) {
	repo := new(MockPaymentRepository)
	repo.On("MarkFailedIfUnpaid", mock.Anything, int64(5)).Return(true, nil)

	w := NewWatchdog(repo, 30*time.Second)

	var armed time.Duration
	w.afterFunc = func(d time.Duration, fn func()) *time.Timer {
		armed = d
		fn() // fire immediately
		return nil
	}

	w.Schedule(5)

	assert.Equal(t, 30*time.Second, armed)
	repo.AssertExpectations(t)
}

func TestWatchdog_SettledPaymentIsANoop(t *testing.T) {
	repo := new(MockPaymentRepository)
	repo.On("MarkFailedIfUnpaid", mock.Anything, int64(5)).Return(false, nil)

	w := NewWatchdog(repo, time.Second)
	w.afterFunc = func(d time.Duration, fn func()) *time.Timer {
		fn()
		return nil
	}

	w.Schedule(5)
	repo.AssertExpectations(t)
}
