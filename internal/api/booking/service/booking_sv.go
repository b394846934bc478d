package bookingService

import (
	"DishaAssistant/internal/api/booking"
	bookingRepository "DishaAssistant/internal/api/booking/repository"
	"DishaAssistant/internal/entity"
	contextPkg "DishaAssistant/pkg/context"
	"errors"
	"fmt"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
	"math"
	"regexp"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

var (
	pnrFormat   = regexp.MustCompile(`^\d{10}$`)
	trainFormat = regexp.MustCompile(`^\d{5}$`)

	synthStatuses = []entity.BookingStatus{
		entity.BookingStatusConfirmed,
		entity.BookingStatusConfirmed,
		entity.BookingStatusConfirmed,
		entity.BookingStatusRAC,
		entity.BookingStatusWaitlist,
	}
	synthQuotas = []entity.Quota{
		entity.QuotaGeneral,
		entity.QuotaGeneral,
		entity.QuotaGeneral,
		entity.QuotaTatkal,
		entity.QuotaLadies,
	}
)

func ValidPNR(pnr string) bool {
	return pnrFormat.MatchString(pnr)
}

func ValidTrainNumber(number string) bool {
	return trainFormat.MatchString(number)
}

func (s *bookingService) LookupBooking(ctx context.Context, pnr string) (entity.Booking, bool) {
	if !ValidPNR(pnr) {
		return entity.Booking{}, false
	}

	client := s.bookingRepository.NewClient()

	b, ok := client.Catalog.GetBooking(pnr)
	if !ok {
		b = s.synthesizeBooking(pnr)
	}

	if _, cancelled := s.cancellation(ctx, client, pnr); cancelled {
		b.Status = entity.BookingStatusCancelled
	}

	return b, true
}

func (s *bookingService) DemoBookings(ctx context.Context) []entity.Booking {
	return s.bookingRepository.NewClient().Catalog.ListBookings()
}

// RecordCancellation upserts the side-table row for pnr. A repeated call keeps
// the first cancellation time and takes the latest amounts.
func (s *bookingService) RecordCancellation(ctx context.Context, pnr string, fare int, refundAmount int) (entity.CancelledTicket, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if !ValidPNR(pnr) {
		return entity.CancelledTicket{}, booking.ErrBookingNotFound
	}
	if fare <= 0 || refundAmount < 0 || refundAmount > fare {
		return entity.CancelledTicket{}, booking.ErrInvalidFare
	}

	unlock := s.locks.Lock(pnr)
	defer unlock()

	client := s.bookingRepository.NewClient()

	ticket := entity.CancelledTicket{
		PNR:          pnr,
		Fare:         fare,
		RefundAmount: refundAmount,
		CancelledAt:  s.now().UTC(),
	}
	if existing, ok := s.cancellation(ctx, client, pnr); ok {
		ticket.CancelledAt = existing.CancelledAt
	}

	if err := client.Cancellation.SaveCancellation(ctx, ticket); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"pnr":        pnr,
			"error":      err.Error(),
		}).Error("Failed to record cancellation")
		return entity.CancelledTicket{}, booking.ErrRecordCancellation
	}

	s.log.WithFields(logrus.Fields{
		"request_id":    requestID,
		"pnr":           pnr,
		"refund_amount": refundAmount,
	}).Info("Booking cancelled")

	return ticket, nil
}

// CancelBooking is the confirmed cancel action from the booking card. It uses
// the flat instant schedule; premium tatkal bookings are cancelled without a
// refund.
func (s *bookingService) CancelBooking(ctx context.Context, pnr string) (entity.CancelledTicket, error) {
	b, ok := s.LookupBooking(ctx, pnr)
	if !ok {
		return entity.CancelledTicket{}, booking.ErrBookingNotFound
	}

	refund := InstantCancellationRefund(b.Fare)
	if b.IsNonRefundable() {
		refund = 0
	}

	return s.RecordCancellation(ctx, pnr, b.Fare, refund)
}

func (s *bookingService) cancellation(ctx context.Context, client bookingRepository.Client, pnr string) (entity.CancelledTicket, bool) {
	ticket, err := client.Cancellation.GetCancellation(ctx, pnr)
	if err != nil {
		if !errors.Is(err, booking.ErrNoCancellation) {
			s.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"pnr":        pnr,
				"error":      err.Error(),
			}).Warn("Cancellation lookup failed, treating booking as active")
		}
		return entity.CancelledTicket{}, false
	}
	return ticket, true
}

func (s *bookingService) synthesizeBooking(pnr string) entity.Booking {
	n, _ := strconv.ParseInt(pnr, 10, 64)
	mod := func(m int) int { return int(n % int64(m)) }

	stations := bookingRepository.SampleStations
	train := bookingRepository.SampleTrains[mod(len(bookingRepository.SampleTrains))]
	fromIndex := mod(len(stations))
	toIndex := (fromIndex + 3) % len(stations)
	if toIndex == fromIndex {
		toIndex = (toIndex + 1) % len(stations)
	}

	status := synthStatuses[mod(len(synthStatuses))]
	passenger := entity.Passenger{
		Name: bookingRepository.SampleNames[mod(len(bookingRepository.SampleNames))],
		Age:  25 + mod(30),
		Seat: "-",
	}
	switch status {
	case entity.BookingStatusConfirmed:
		passenger.Status = "CNF"
		passenger.Seat = fmt.Sprintf("B%d-%d", mod(8)+1, mod(60)+1)
	case entity.BookingStatusRAC:
		passenger.Status = "RAC"
	default:
		passenger.Status = "WL"
	}

	today := s.today()

	return entity.Booking{
		PNR:         pnr,
		TrainNumber: train.Number,
		TrainName:   train.Name,
		From:        stations[fromIndex],
		To:          stations[toIndex],
		JourneyDate: today.AddDate(0, 0, mod(10)+1).Format(dateLayout),
		BookingDate: today.AddDate(0, 0, -(mod(5) + 1)).Format(dateLayout),
		Class:       bookingRepository.SampleClasses[mod(len(bookingRepository.SampleClasses))],
		Fare:        1500 + mod(3000),
		Passengers:  []entity.Passenger{passenger},
		Status:      status,
		Quota:       synthQuotas[mod(len(synthQuotas))],
	}
}

func (s *bookingService) today() time.Time {
	now := s.now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// InstantCancellationRefund is the flat schedule of the interactive cancel
// flow: 25% of the fare is deducted, rounded to the nearest rupee.
func InstantCancellationRefund(fare int) int {
	if fare <= 0 {
		return 0
	}
	return int(math.Round(float64(fare) * 0.75))
}
