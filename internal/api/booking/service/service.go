package bookingService

import (
	bookingRepository "DishaAssistant/internal/api/booking/repository"
	"DishaAssistant/internal/entity"
	"DishaAssistant/pkg/lock"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"time"
)

// IBookingService is the read-mostly view of the demo railway dataset. Lookups
// report absence with false and never fail for well-formed input.
type IBookingService interface {
	LookupBooking(ctx context.Context, pnr string) (entity.Booking, bool)
	LookupTrainStatus(ctx context.Context, number string) (entity.TrainStatus, bool)
	LookupRefund(ctx context.Context, pnr string) (entity.RefundRecord, bool)
	RecordCancellation(ctx context.Context, pnr string, fare int, refundAmount int) (entity.CancelledTicket, error)
	CancelBooking(ctx context.Context, pnr string) (entity.CancelledTicket, error)
	RefundHistory(ctx context.Context) []entity.RefundHistoryEntry
	AlternativeTrains(ctx context.Context) []entity.AlternativeTrain
	DemoBookings(ctx context.Context) []entity.Booking
	DemoTrains(ctx context.Context) []entity.TrainStatus
}

type bookingService struct {
	log               *logrus.Logger
	bookingRepository bookingRepository.Repository
	locks             *lock.Keyed
	now               func() time.Time
}

func NewBookingService(log *logrus.Logger, br bookingRepository.Repository) IBookingService {
	return &bookingService{
		log:               log,
		bookingRepository: br,
		locks:             lock.NewKeyed(),
		now:               time.Now,
	}
}

// NewBookingServiceWithClock pins "today" for synthesized records.
func NewBookingServiceWithClock(log *logrus.Logger, br bookingRepository.Repository, now func() time.Time) IBookingService {
	return &bookingService{
		log:               log,
		bookingRepository: br,
		locks:             lock.NewKeyed(),
		now:               now,
	}
}
