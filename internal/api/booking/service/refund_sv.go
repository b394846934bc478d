package bookingService

import (
	"DishaAssistant/internal/api/booking"
	"DishaAssistant/internal/entity"
	"golang.org/x/net/context"
	"math"
	"strconv"
	"time"
)

const day = 24 * time.Hour

var synthRefundStatuses = []entity.RefundState{
	entity.RefundStateInitiated,
	entity.RefundStateApproved,
	entity.RefundStateProcessing,
	entity.RefundStateCredited,
}

// LookupRefund consults the cancellation side-table, then the seeded refunds,
// then falls back to a record derived from the PNR.
func (s *bookingService) LookupRefund(ctx context.Context, pnr string) (entity.RefundRecord, bool) {
	if !ValidPNR(pnr) {
		return entity.RefundRecord{}, false
	}

	client := s.bookingRepository.NewClient()

	if ticket, ok := s.cancellation(ctx, client, pnr); ok {
		return s.cancelledRefund(ticket), true
	}

	if rec, ok := client.Catalog.GetRefund(pnr); ok {
		return rec, true
	}

	return s.synthesizeRefund(pnr), true
}

func (s *bookingService) RefundHistory(ctx context.Context) []entity.RefundHistoryEntry {
	return s.bookingRepository.NewClient().Catalog.ListRefundHistory()
}

// cancelledRefund steps processing -> approved -> credited at one and three
// whole days after the cancellation.
func (s *bookingService) cancelledRefund(ticket entity.CancelledTicket) entity.RefundRecord {
	cancelledAt := ticket.CancelledAt.UTC()
	days := int(s.now().Sub(cancelledAt) / day)

	status := entity.RefundStateCredited
	switch {
	case days < 1:
		status = entity.RefundStateProcessing
	case days < 3:
		status = entity.RefundStateApproved
	}

	rec := entity.RefundRecord{
		PNR:                ticket.PNR,
		Status:             status,
		Percentage:         100,
		Amount:             ticket.RefundAmount,
		SubmittedDate:      cancelledAt.Format(dateLayout),
		ExpectedCreditDate: cancelledAt.Add(5 * day).Format(dateLayout),
		Stages:             entity.StagesFor(status),
	}
	if days >= 1 {
		rec.ApprovedDate = cancelledAt.Add(day).Format(dateLayout)
	}
	if days >= 3 {
		rec.CreditedDate = cancelledAt.Add(3 * day).Format(dateLayout)
	}

	return rec
}

func (s *bookingService) synthesizeRefund(pnr string) entity.RefundRecord {
	n, _ := strconv.ParseInt(pnr, 10, 64)
	mod := func(m int) int { return int(n % int64(m)) }

	status := synthRefundStatuses[mod(len(synthRefundStatuses))]

	percentage := 0
	switch status {
	case entity.RefundStateCredited:
		percentage = 75
	case entity.RefundStateProcessing:
		percentage = 60
	case entity.RefundStateApproved:
		percentage = 50
	}

	base := 1000 + mod(4000)
	submitted := s.today().AddDate(0, 0, -(mod(5) + 1))
	approved := submitted.AddDate(0, 0, 1)
	expected := approved.AddDate(0, 0, 5)

	rec := entity.RefundRecord{
		PNR:                pnr,
		Status:             status,
		Percentage:         percentage,
		Amount:             int(math.Round(float64(base) * float64(percentage) / 100)),
		SubmittedDate:      submitted.Format(dateLayout),
		ExpectedCreditDate: expected.Format(dateLayout),
		Stages:             entity.StagesFor(status),
	}
	if status != entity.RefundStateInitiated {
		rec.ApprovedDate = approved.Format(dateLayout)
	}
	if status == entity.RefundStateCredited {
		rec.CreditedDate = expected.Format(dateLayout)
	}

	return rec
}

// EstimateRefund is the time-tiered calculator schedule. It is independent of
// InstantCancellationRefund and the two are not expected to agree.
func EstimateRefund(ticketType entity.TicketType, fare int, hoursBefore float64) (entity.RefundEstimate, error) {
	if fare <= 0 || hoursBefore < 0 || math.IsNaN(hoursBefore) {
		return entity.RefundEstimate{}, booking.ErrInvalidFare
	}

	var tiers [4]int
	switch ticketType {
	case entity.TicketTypeAC:
		tiers = [4]int{25, 50, 75, 100}
	case entity.TicketTypeSleeper:
		tiers = [4]int{20, 40, 60, 100}
	case entity.TicketTypeTatkal:
	default:
		return entity.RefundEstimate{}, booking.ErrInvalidTicketType
	}

	est := entity.RefundEstimate{
		TicketType:  ticketType,
		Fare:        fare,
		HoursBefore: hoursBefore,
	}

	switch {
	case ticketType == entity.TicketTypeTatkal:
		est.DeductionPercent = 100
		est.Window = "Non-refundable"
		est.ProcessingTime = "N/A"
	case hoursBefore >= 48:
		est.DeductionPercent = tiers[0]
		est.Window = "48+ hours before departure"
		est.ProcessingTime = "7-10 working days"
	case hoursBefore >= 12:
		est.DeductionPercent = tiers[1]
		est.Window = "12-48 hours before departure"
		est.ProcessingTime = "7-10 working days"
	case hoursBefore >= 4:
		est.DeductionPercent = tiers[2]
		est.Window = "4-12 hours before departure"
		est.ProcessingTime = "10-15 working days"
	default:
		est.DeductionPercent = tiers[3]
		est.Window = "Less than 4 hours before departure"
		est.ProcessingTime = "N/A"
	}

	est.Deduction = int(math.Round(float64(fare) * float64(est.DeductionPercent) / 100))
	est.Refund = fare - est.Deduction

	return est, nil
}
