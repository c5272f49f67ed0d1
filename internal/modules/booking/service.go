package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/notify"
	"hotelbooking/internal/repository"
)

const defaultNightlyCap = 3

// deleteWindow is how far before check-in a guest may still hard-delete a
// booking. Admins are exempt.
const deleteWindow = 7 * 24 * time.Hour

type Service struct {
	bookings  BookingRepository
	rooms     RoomRepository
	users     UserRepository
	payments  PaymentRepository
	notifier  notify.Notifier
	audit     AuditRecorder
	scheduler PaymentScheduler
	events    EventPublisher

	nightlyCap int
	now        func() time.Time
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	users UserRepository,
	payments PaymentRepository,
	notifier notify.Notifier,
	audit AuditRecorder,
	scheduler PaymentScheduler,
	events EventPublisher,
	nightlyCap int,
) *Service {
	if nightlyCap <= 0 {
		nightlyCap = defaultNightlyCap
	}
	return &Service{
		bookings:   bookings,
		rooms:      rooms,
		users:      users,
		payments:   payments,
		notifier:   notifier,
		audit:      audit,
		scheduler:  scheduler,
		events:     events,
		nightlyCap: nightlyCap,
		now:        time.Now,
	}
}

// CreateBooking validates a reservation request and opens the booking with
// its room interval and unpaid payment as one atomic unit. Preconditions are
// checked in order; nothing is written until all of them pass.
func (s *Service) CreateBooking(ctx context.Context, actor domain.Actor, roomID int64, req CreateBookingRequest) (*domain.Booking, *domain.Payment, error) {
	if !req.CheckOutDate.After(req.CheckInDate) {
		return nil, nil, ErrInvalidDateRange
	}

	nights := int(req.CheckOutDate.Sub(req.CheckInDate) / (24 * time.Hour))
	if nights > s.nightlyCap && actor.Role != domain.RoleAdmin {
		return nil, nil, ErrStayTooLong
	}

	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrRoomNotFound
		}
		return nil, nil, err
	}

	intervals, err := s.rooms.GetIntervals(ctx, roomID)
	if err != nil {
		return nil, nil, err
	}
	if !domain.IsAvailable(intervals, req.CheckInDate, req.CheckOutDate) {
		return nil, nil, ErrRoomUnavailable
	}

	method := domain.PaymentMethod(req.Method)
	if req.Method == "" {
		method = domain.MethodCard
	}
	if !method.Valid() {
		return nil, nil, ErrInvalidPaymentMethod
	}

	user, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, nil, err
	}

	b := &domain.Booking{
		UserID:        actor.ID,
		RoomID:        room.ID,
		HotelID:       room.HotelID,
		CheckInDate:   req.CheckInDate,
		CheckOutDate:  req.CheckOutDate,
		Status:        domain.BookingPending,
		TierAtBooking: user.MembershipTier,
	}
	p := &domain.Payment{
		UserID: actor.ID,
		Amount: room.Price * float64(nights),
		Status: domain.PaymentUnpaid,
		Method: method,
	}

	if err := s.bookings.CreateWithPayment(ctx, b, p); err != nil {
		if errors.Is(err, repository.ErrIntervalOverlap) {
			return nil, nil, ErrRoomUnavailable
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23P01") {
			return nil, nil, ErrRoomUnavailable
		}
		return nil, nil, err
	}

	s.scheduler.Schedule(p.ID)
	s.audit.Record(ctx, actor.ID, "booking",
		fmt.Sprintf("booking %d created for room %d, %d night(s)", b.ID, room.ID, nights))
	s.publish(b.HotelID, "booking.created", b)

	return b, p, nil
}

// UpdateBooking applies a status transition or a date change, never both in
// the same request.
func (s *Service) UpdateBooking(ctx context.Context, actor domain.Actor, bookingID int64, req UpdateBookingRequest) (*domain.Booking, error) {
	if req.hasStatus() == req.hasDates() {
		return nil, ErrInvalidRequest
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !s.canAccess(actor, b) {
		return nil, ErrUnauthorized
	}

	if req.hasStatus() {
		return s.updateStatus(ctx, actor, b, domain.BookingStatus(*req.Status))
	}
	return s.updateDates(ctx, actor, b, req)
}

func (s *Service) canAccess(actor domain.Actor, b *domain.Booking) bool {
	switch actor.Role {
	case domain.RoleAdmin:
		return true
	case domain.RoleHotelManager:
		return actor.ManagesHotel(b.HotelID)
	case domain.RoleUser:
		return actor.ID == b.UserID
	}
	return false
}

func (s *Service) updateStatus(ctx context.Context, actor domain.Actor, b *domain.Booking, target domain.BookingStatus) (*domain.Booking, error) {
	if !target.Valid() {
		return nil, ErrInvalidStatus
	}

	switch target {
	case domain.BookingPending:
		if actor.Role != domain.RoleAdmin {
			return nil, ErrUnauthorized
		}
	case domain.BookingCanceled:
		// owner, manager and admin may all cancel
	default:
		// confirmed / checkedIn / completed are staff transitions
		if actor.Role == domain.RoleUser {
			return nil, ErrUnauthorized
		}
	}

	switch target {
	case domain.BookingCanceled:
		return s.cancel(ctx, actor, b)
	case domain.BookingCompleted:
		return s.complete(ctx, actor, b)
	case domain.BookingPending:
		// admin reset; permitted from any non-terminal status
		if b.Status.Terminal() {
			return nil, ErrInvalidTransition
		}
	default:
		if !domain.CanTransition(b.Status, target) {
			return nil, ErrInvalidTransition
		}
	}

	if err := s.bookings.UpdateStatus(ctx, b.ID, b.Status, target); err != nil {
		if errors.Is(err, repository.ErrStaleBookingStatus) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	b.Status = target
	s.audit.Record(ctx, actor.ID, "booking",
		fmt.Sprintf("booking %d moved to %s", b.ID, target))
	s.publish(b.HotelID, "booking.status", b)
	return b, nil
}

// cancel runs the cancellation sub-flow: validate the current status, find
// the completed payment, price the refund and apply the whole unit
// atomically. Nothing mutates when the refund is denied.
func (s *Service) cancel(ctx context.Context, actor domain.Actor, b *domain.Booking) (*domain.Booking, error) {
	if b.Status != domain.BookingConfirmed && b.Status != domain.BookingCheckedIn {
		return nil, ErrBookingNotCancelable
	}

	p, err := s.payments.FindCompletedByBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoRefundablePayment
	}

	refund, err := domain.RefundAmount(b.CheckInDate, b.CheckOutDate, s.now(), p.Amount)
	if err != nil {
		return nil, err
	}
	if refund <= 0 {
		return nil, ErrRefundDenied
	}

	if err := s.bookings.CancelWithRefund(ctx, b.ID, p.ID, b.UserID, refund, s.now()); err != nil {
		switch {
		case errors.Is(err, repository.ErrStaleBookingStatus):
			return nil, ErrBookingNotCancelable
		case errors.Is(err, repository.ErrStalePaymentStatus):
			return nil, ErrNoRefundablePayment
		}
		return nil, err
	}
	b.Status = domain.BookingCanceled

	if user, uerr := s.users.GetByID(ctx, b.UserID); uerr == nil {
		if nerr := s.notifier.SendRefundNotice(user.Email, user.Name, b.ID, refund); nerr != nil {
			log.Printf("refund_notice_failed booking_id=%d err=%v", b.ID, nerr)
		}
	}
	s.audit.Record(ctx, actor.ID, "refund",
		fmt.Sprintf("booking %d canceled, %.2f refunded to user %d", b.ID, refund, b.UserID))
	s.publish(b.HotelID, "booking.canceled", b)

	return b, nil
}

// complete runs the completion sub-flow: close the booking and credit the
// stay's loyalty points, recomputing the member tier.
func (s *Service) complete(ctx context.Context, actor domain.Actor, b *domain.Booking) (*domain.Booking, error) {
	if !domain.CanTransition(b.Status, domain.BookingCompleted) {
		return nil, ErrInvalidTransition
	}

	room, err := s.rooms.GetByID(ctx, b.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomMissing
		}
		return nil, err
	}

	earned := int(room.Price/100) * b.Nights()

	newTier, tierChanged, err := s.bookings.Complete(ctx, b.ID, earned)
	if err != nil {
		if errors.Is(err, repository.ErrStaleBookingStatus) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}
	b.Status = domain.BookingCompleted

	if tierChanged {
		s.audit.Record(ctx, b.UserID, "membership",
			fmt.Sprintf("user %d promoted to %s tier", b.UserID, newTier))
	}
	s.audit.Record(ctx, actor.ID, "booking",
		fmt.Sprintf("booking %d completed, %d point(s) earned", b.ID, earned))
	s.publish(b.HotelID, "booking.completed", b)

	return b, nil
}

// updateDates merges the requested dates with the booking's current ones,
// re-validates the range and the nightly cap, and swaps the room interval.
func (s *Service) updateDates(ctx context.Context, actor domain.Actor, b *domain.Booking, req UpdateBookingRequest) (*domain.Booking, error) {
	checkIn := b.CheckInDate
	checkOut := b.CheckOutDate
	if req.CheckInDate != nil {
		checkIn = *req.CheckInDate
	}
	if req.CheckOutDate != nil {
		checkOut = *req.CheckOutDate
	}

	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}
	nights := int(checkOut.Sub(checkIn) / (24 * time.Hour))
	if nights > s.nightlyCap && actor.Role != domain.RoleAdmin {
		return nil, ErrStayTooLong
	}

	if _, err := s.rooms.GetByID(ctx, b.RoomID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomMissing
		}
		return nil, err
	}

	if err := s.bookings.UpdateDates(ctx, b.ID, checkIn, checkOut); err != nil {
		if errors.Is(err, repository.ErrStaleBookingStatus) {
			return nil, ErrInvalidTransition
		}
		return nil, err
	}

	b.CheckInDate = checkIn
	b.CheckOutDate = checkOut
	s.audit.Record(ctx, actor.ID, "booking",
		fmt.Sprintf("booking %d moved to %s - %s", b.ID,
			checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02")))
	s.publish(b.HotelID, "booking.dates", b)

	return b, nil
}

func (s *Service) GetBooking(ctx context.Context, actor domain.Actor, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if !s.canAccess(actor, b) {
		return nil, ErrUnauthorized
	}
	return b, nil
}

// ListBookings returns what the caller is entitled to see: admins all
// bookings, hotel managers their hotel's, guests their own.
func (s *Service) ListBookings(ctx context.Context, actor domain.Actor) ([]domain.Booking, error) {
	switch actor.Role {
	case domain.RoleAdmin:
		return s.bookings.ListAll(ctx)
	case domain.RoleHotelManager:
		if actor.ResponsibleHotel == nil {
			return []domain.Booking{}, nil
		}
		return s.bookings.ListByHotel(ctx, *actor.ResponsibleHotel)
	default:
		return s.bookings.ListByUser(ctx, actor.ID)
	}
}

// DeleteBooking hard-deletes a booking with its payments and interval.
// Guests may do so up to 7 days before check-in; admins any time.
func (s *Service) DeleteBooking(ctx context.Context, actor domain.Actor, bookingID int64) error {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}

	if actor.Role != domain.RoleAdmin && actor.ID != b.UserID {
		return ErrUnauthorized
	}
	if actor.Role != domain.RoleAdmin && b.CheckInDate.Sub(s.now()) < deleteWindow {
		return ErrDeleteWindowClosed
	}

	if err := s.bookings.DeleteCascade(ctx, bookingID); err != nil {
		return err
	}
	s.audit.Record(ctx, actor.ID, "booking", fmt.Sprintf("booking %d deleted", bookingID))
	return nil
}

func (s *Service) publish(hotelID int64, event string, b *domain.Booking) {
	if s.events == nil {
		return
	}
	s.events.PublishBookingEvent(hotelID, map[string]any{
		"event":   event,
		"booking": b,
	})
}
