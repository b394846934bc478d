package chatService

import (
	"DishaAssistant/internal/entity"
	"DishaAssistant/pkg/tone"
	"fmt"
	"golang.org/x/net/context"
	"strings"
)

// Prompts list identifiers straight from the booking service so examples
// always match what lookups accept.

func (s *chatService) demoBookings(ctx context.Context) []entity.Booking {
	bookings := s.bookingService.DemoBookings(ctx)
	if len(bookings) > demoExamples {
		bookings = bookings[:demoExamples]
	}
	return bookings
}

func (s *chatService) firstDemoPNR(ctx context.Context) string {
	if bookings := s.demoBookings(ctx); len(bookings) > 0 {
		return bookings[0].PNR
	}
	return ""
}

func (s *chatService) demoBookingLines(ctx context.Context) string {
	var lines []string
	for _, b := range s.demoBookings(ctx) {
		lines = append(lines, fmt.Sprintf("- %s: %s to %s (%s)", b.PNR, b.From, b.To, b.Status))
	}
	return strings.Join(lines, "\n")
}

func (s *chatService) demoRefundLines(ctx context.Context) string {
	var lines []string
	for _, b := range s.demoBookings(ctx) {
		rec, ok := s.bookingService.LookupRefund(ctx, b.PNR)
		if !ok {
			continue
		}
		lines = append(lines, fmt.Sprintf("- %s: %s, %s", b.PNR, rec.Status, tone.FormatAmount(rec.Amount)))
	}
	return strings.Join(lines, "\n")
}

func (s *chatService) demoTrains(ctx context.Context) []entity.TrainStatus {
	trains := s.bookingService.DemoTrains(ctx)
	if len(trains) > demoExamples {
		trains = trains[:demoExamples]
	}
	return trains
}

func (s *chatService) firstDemoTrain(ctx context.Context) string {
	if trains := s.demoTrains(ctx); len(trains) > 0 {
		return trains[0].TrainNumber
	}
	return ""
}

// firstCancelledTrain looks past the example cutoff since the cancelled demo
// train may sit anywhere in the listing.
func (s *chatService) firstCancelledTrain(ctx context.Context) string {
	trains := s.bookingService.DemoTrains(ctx)
	for _, t := range trains {
		if t.Status == entity.TrainStateCancelled {
			return t.TrainNumber
		}
	}
	if len(trains) > 0 {
		return trains[0].TrainNumber
	}
	return ""
}

func (s *chatService) demoTrainLines(ctx context.Context) string {
	var lines []string
	for _, t := range s.demoTrains(ctx) {
		lines = append(lines, fmt.Sprintf("- %s: %s", t.TrainNumber, trainSummary(t)))
	}
	return strings.Join(lines, "\n")
}

func trainSummary(t entity.TrainStatus) string {
	switch {
	case t.Status == entity.TrainStateCancelled:
		return "Cancelled"
	case t.Status == entity.TrainStateDiverted:
		return "Diverted"
	case t.Delay >= 60 && t.Delay%60 == 0:
		hours := t.Delay / 60
		if hours == 1 {
			return "Delayed by 1 hour"
		}
		return fmt.Sprintf("Delayed by %d hours", hours)
	case t.Delay > 0:
		return fmt.Sprintf("Running %d min late", t.Delay)
	}
	return "Running on time"
}
