package chatService

import (
	bookingService "DishaAssistant/internal/api/booking/service"
	"DishaAssistant/internal/entity"
	"DishaAssistant/pkg/nlp"
	"DishaAssistant/pkg/tone"
	"fmt"
	"golang.org/x/net/context"
	"regexp"
	"strconv"
	"strings"
)

// Number of live identifiers listed in "please provide" prompts.
const demoExamples = 3

var (
	counterTicketPattern = regexp.MustCompile(`\b(counter|offline)\b`)
	hoursPattern         = regexp.MustCompile(`\b(\d{1,3})\s*(?:hours?|hrs?)\b`)

	tdrReasons = []string{
		"Train cancelled or rescheduled",
		"Train delayed by more than 3 hours",
		"AC or other services not working",
		"Duplicate or erroneous booking",
		"Medical emergency",
	}
)

type reply struct {
	text string
	link string
	rich entity.RichContent
	// pnr is the booking the reply was about, remembered for follow-ups.
	pnr string
	// stateful replies drive the dialogue and are never handed to the
	// completion service.
	stateful    bool
	suggestions []string
}

func (s *chatService) generate(ctx context.Context, intent string, ents nlp.Entities, message string, conv *entity.ConversationContext) reply {
	r := s.dispatch(ctx, intent, ents, message, conv)
	if def, ok := s.classifier.Definition(intent); ok && len(def.FollowUp) > 0 {
		r.suggestions = append([]string(nil), def.FollowUp...)
	}
	return r
}

func (s *chatService) dispatch(ctx context.Context, intent string, ents nlp.Entities, message string, conv *entity.ConversationContext) reply {
	if def, ok := s.classifier.Definition(intent); ok {
		switch {
		case def.RequiresPNR && ents.PNR == "":
			return s.providePNR(ctx, intent)
		case def.RequiresTrainNumber && ents.TrainNumber == "" && ents.PNR == "":
			return s.provideTrain(ctx)
		}
	}

	switch intent {
	case "":
		return reply{text: nlp.FallbackResponses[s.choose(len(nlp.FallbackResponses))]}
	case nlp.IntentOutOfContext:
		return reply{text: nlp.OutOfContextResponse, stateful: true}

	case nlp.IntentRefundRequestInitial:
		return s.startRefundRequest(ctx, ents, conv)
	case nlp.IntentRefundRequestConfirm:
		return s.confirmRefundRequest(conv)
	case nlp.IntentTravelCreditAccept:
		return s.acceptTravelCredit(conv)

	case nlp.IntentRefundExplanation, nlp.IntentRefundRulesExplanation, nlp.IntentRefundProcessExplanation,
		nlp.IntentTrainDelayExplanation, nlp.IntentTDRExplanation:
		return s.canned(intent, true)

	case nlp.IntentPNRCheckDetailed:
		return s.pnrDetails(ctx, ents)
	case nlp.IntentPNRStatus:
		if ents.PNR != "" {
			return s.pnrDetails(ctx, ents)
		}
		return s.canned(intent, false)
	case nlp.IntentTrainStatusCheck:
		return s.trainStatus(ctx, ents)
	case nlp.IntentRefundStatusCheck:
		return s.refundStatus(ctx, ents)
	case nlp.IntentRefundAmountInquiry:
		return s.refundAmount(ctx, message, ents)
	case nlp.IntentRefundHistory:
		return reply{
			text: "Your recent refund transactions:",
			rich: entity.RefundHistory{Entries: s.bookingService.RefundHistory(ctx)},
		}
	case nlp.IntentRefundCalculator:
		return s.refundCalculator(message, ents)
	case nlp.IntentTDRFiling:
		return reply{
			text: "TDR (Ticket Deposit Receipt) is used for refund claims when:\n- Train is cancelled or rescheduled\n- Train delayed by more than 3 hours\n- Services not provided (AC/food/water)\n- Booking errors\n\nFollow the steps below to file:",
			rich: entity.TDRFiling{},
		}
	case nlp.IntentTDRFilingContinue:
		return s.tdrGuidance(ctx, conv)
	case nlp.IntentCancelledTrainRefund:
		return s.cancelledTrainRefund(ctx, ents)
	case nlp.IntentPartialCancellation:
		r := s.canned(intent, false)
		r.rich = entity.RefundCalculator{}
		return r
	case nlp.IntentAlternativeTrains:
		return s.alternativeTrains(ctx, ents)
	case nlp.IntentCancellation:
		return s.cancellationPreview(ctx, ents)

	case nlp.IntentTicketBooking, nlp.IntentTicketBookingWithDetails:
		return ticketBooking(ents)
	case nlp.IntentRefundStatus:
		ticketType := entity.TimelineETicket
		if counterTicketPattern.MatchString(nlp.Normalize(message)) {
			ticketType = entity.TimelineCounter
		}
		label := "e-ticket"
		if ticketType == entity.TimelineCounter {
			label = "counter ticket"
		}
		return reply{
			text: fmt.Sprintf("I'll show you the complete refund process timeline for your %s.\n\nHere's what happens at each stage:", label),
			rich: entity.RefundTimeline{TicketType: ticketType},
		}
	case nlp.IntentRefundETicket:
		return reply{
			text: "Here's the complete e-ticket refund process timeline:",
			rich: entity.RefundTimeline{TicketType: entity.TimelineETicket},
		}
	case nlp.IntentRefundCounterTicket:
		return reply{
			text: "Here's the complete counter ticket refund process timeline:",
			rich: entity.RefundTimeline{TicketType: entity.TimelineCounter},
		}
	}

	return s.canned(intent, false)
}

// canned answers from the intent registry. Explanations always use their
// first response; everything else picks one at random.
func (s *chatService) canned(intent string, first bool) reply {
	def, ok := s.classifier.Definition(intent)
	if !ok || len(def.Responses) == 0 {
		return reply{text: nlp.FallbackResponses[s.choose(len(nlp.FallbackResponses))]}
	}

	i := 0
	if !first {
		i = s.choose(len(def.Responses))
	}
	return reply{text: def.Responses[i], link: def.Link}
}

func (s *chatService) pnrDetails(ctx context.Context, ents nlp.Entities) reply {
	b, ok := s.bookingService.LookupBooking(ctx, ents.PNR)
	if !ok {
		return reply{text: fmt.Sprintf("PNR %s not found in the system.\n\nPossible reasons:\n- PNR number might be incorrect\n- Booking might be very old (>9 months)\n- Check if you entered all 10 digits correctly\n\nTry these demo PNRs:\n%s", ents.PNR, s.demoBookingLines(ctx))}
	}

	return reply{
		text: fmt.Sprintf("Booking found for PNR %s:", ents.PNR),
		rich: entity.PNRDetails{Booking: b},
		pnr:  ents.PNR,
	}
}

func (s *chatService) trainStatus(ctx context.Context, ents nlp.Entities) reply {
	// A typed train number wins over the booking's train.
	number := ents.TrainNumber
	if number == "" && ents.PNR != "" {
		if b, ok := s.bookingService.LookupBooking(ctx, ents.PNR); ok {
			number = b.TrainNumber
		}
	}

	if number == "" {
		return s.provideTrain(ctx)
	}

	if train, ok := s.bookingService.LookupTrainStatus(ctx, number); ok {
		return reply{
			text: fmt.Sprintf("Train %s status:", number),
			rich: entity.TrainStatusCard{Train: train},
		}
	}
	return reply{text: fmt.Sprintf("Train %s not found.\n\nTry these demo trains:\n%s", number, s.demoTrainLines(ctx))}
}

func (s *chatService) refundStatus(ctx context.Context, ents nlp.Entities) reply {
	rec, ok := s.bookingService.LookupRefund(ctx, ents.PNR)
	if !ok {
		return reply{text: fmt.Sprintf("No refund found for PNR %s.\n\nPossible reasons:\n- Ticket hasn't been cancelled yet\n- Refund already completed\n- No refund applicable\n\nDemo PNRs with refund status:\n%s", ents.PNR, s.demoRefundLines(ctx))}
	}

	text := fmt.Sprintf("%s. Refund status for PNR %s:", s.phrases.Acknowledgment(rec.Amount), ents.PNR)
	if toned := tone.Render(tone.ContextRefundStatus, string(rec.Status), rec.Amount); toned != "" {
		text += "\n\n" + toned
	}

	return reply{
		text: text,
		rich: entity.RefundStatusCard{Refund: rec},
		pnr:  ents.PNR,
	}
}

// refundAmount answers for a PNR when one is known; a bare fare is treated as
// a calculator request.
func (s *chatService) refundAmount(ctx context.Context, message string, ents nlp.Entities) reply {
	if ents.PNR == "" && ents.HasAmount {
		return s.refundCalculator(message, ents)
	}
	if ents.PNR == "" {
		return reply{text: "I can look up the exact refund amount for you. Please share your 10-digit PNR.\n\nDemo PNRs with refunds:\n" + s.demoRefundLines(ctx)}
	}

	rec, ok := s.bookingService.LookupRefund(ctx, ents.PNR)
	if !ok {
		return s.refundStatus(ctx, ents)
	}

	return reply{
		text: fmt.Sprintf("The refund for PNR %s is %s (%s).", ents.PNR, tone.FormatAmount(rec.Amount), rec.Status),
		rich: entity.RefundStatusCard{Refund: rec},
		pnr:  ents.PNR,
	}
}

// refundCalculator prefills the form when the message already carries a fare
// and the hours left before departure.
func (s *chatService) refundCalculator(message string, ents nlp.Entities) reply {
	normalized := nlp.Normalize(message)
	m := hoursPattern.FindStringSubmatch(normalized)
	if !ents.HasAmount || m == nil {
		return reply{
			text: "Calculate your estimated refund amount based on ticket type and cancellation timing:",
			rich: entity.RefundCalculator{},
		}
	}

	hours, _ := strconv.Atoi(m[1])
	ticketType := entity.TicketTypeAC
	switch {
	case strings.Contains(normalized, "tatkal"):
		ticketType = entity.TicketTypeTatkal
	case strings.Contains(normalized, "sleeper"):
		ticketType = entity.TicketTypeSleeper
	}

	estimate, err := bookingService.EstimateRefund(ticketType, ents.Amount, float64(hours))
	if err != nil {
		return reply{
			text: "Calculate your estimated refund amount based on ticket type and cancellation timing:",
			rich: entity.RefundCalculator{},
		}
	}

	text := tone.Render(tone.ContextRefundCalculator, tone.SubEstimate, estimate.Fare)
	text += fmt.Sprintf("\n\nFare: %s\nDeduction (%d%%): %s\nRefund: %s\nWindow: %s",
		tone.FormatAmount(estimate.Fare),
		estimate.DeductionPercent,
		tone.FormatAmount(estimate.Deduction),
		tone.FormatAmount(estimate.Refund),
		estimate.Window,
	)

	return reply{text: text, rich: entity.RefundCalculator{Estimate: &estimate}}
}

func (s *chatService) tdrGuidance(ctx context.Context, conv *entity.ConversationContext) reply {
	amount := 0
	if conv.LastPNR != "" {
		if rec, ok := s.bookingService.LookupRefund(ctx, conv.LastPNR); ok {
			amount = rec.Amount
		}
	}

	reasons := make([]string, len(tdrReasons))
	copy(reasons, tdrReasons)

	return reply{
		text: tone.Render(tone.ContextTDRFiling, tone.SubGuidance, amount),
		rich: entity.TDRFiling{Reasons: reasons},
	}
}

func (s *chatService) cancelledTrainRefund(ctx context.Context, ents nlp.Entities) reply {
	if ents.TrainNumber != "" {
		train, ok := s.bookingService.LookupTrainStatus(ctx, ents.TrainNumber)
		if ok && train.Status == entity.TrainStateCancelled {
			return reply{
				text: fmt.Sprintf("Train %s is cancelled. Here are alternatives for your journey:", ents.TrainNumber),
				rich: entity.AlternativeTrains{
					OriginalTrain: ents.TrainNumber + " - " + train.TrainName,
					Alternatives:  s.bookingService.AlternativeTrains(ctx),
					Reason:        "Original train cancelled",
				},
			}
		}
	}

	example := s.firstCancelledTrain(ctx)
	return reply{text: "For cancelled trains, you are eligible for full refund automatically.\n\nWhat happens:\n- Full fare refunded automatically\n- No cancellation charges\n- Credit within 5-7 business days\n\nTo see alternatives, provide your cancelled train number.\n\nExample: \"My train " + example + " is cancelled\""}
}

func (s *chatService) alternativeTrains(ctx context.Context, ents nlp.Entities) reply {
	if ents.TrainNumber != "" {
		if train, ok := s.bookingService.LookupTrainStatus(ctx, ents.TrainNumber); ok {
			reason := "Alternative options requested"
			if train.Status == entity.TrainStateCancelled {
				reason = "Train cancelled"
			}
			return reply{
				text: "Alternative trains available for your route:",
				rich: entity.AlternativeTrains{
					OriginalTrain: ents.TrainNumber + " - " + train.TrainName,
					Alternatives:  s.bookingService.AlternativeTrains(ctx),
					Reason:        reason,
				},
			}
		}
	}

	return reply{text: "To find alternative trains, provide:\n- Your original train number, OR\n- Route (From to To)\n\nExample: \"Show alternatives for train " + s.firstDemoTrain(ctx) + "\"\n\nDemo trains:\n" + s.demoTrainLines(ctx)}
}

// cancellationPreview shows what the booking card's cancel action would
// refund. It never records the cancellation itself.
func (s *chatService) cancellationPreview(ctx context.Context, ents nlp.Entities) reply {
	if ents.PNR == "" {
		return s.canned(nlp.IntentCancellation, false)
	}

	b, ok := s.bookingService.LookupBooking(ctx, ents.PNR)
	if !ok {
		return s.canned(nlp.IntentCancellation, false)
	}

	switch {
	case b.Status == entity.BookingStatusCancelled:
		r := reply{text: fmt.Sprintf("PNR %s is already cancelled. Here's where your refund stands:", b.PNR), pnr: b.PNR}
		if rec, ok := s.bookingService.LookupRefund(ctx, b.PNR); ok {
			r.rich = entity.RefundStatusCard{Refund: rec}
		}
		return r
	case b.IsNonRefundable():
		return reply{
			text: fmt.Sprintf("PNR %s (%s) is a Premium Tatkal booking. You can still cancel it, but Premium Tatkal tickets are non-refundable, so no amount will be returned.", b.PNR, b.TrainName),
			rich: entity.PNRDetails{Booking: b},
			pnr:  b.PNR,
		}
	}

	refund := bookingService.InstantCancellationRefund(b.Fare)
	return reply{
		text: fmt.Sprintf("Here are the details for PNR %s (%s, %s to %s on %s).\n\nIf you cancel now, 25%% of the %s fare is deducted and %s will be refunded to your original payment method.\n\nUse the Cancel button on the booking card below to confirm.",
			b.PNR, b.TrainName, b.From, b.To, b.JourneyDate, tone.FormatAmount(b.Fare), tone.FormatAmount(refund)),
		rich: entity.PNRDetails{Booking: b},
		pnr:  b.PNR,
	}
}

// providePNR asks for the booking an intent cannot answer without.
func (s *chatService) providePNR(ctx context.Context, intent string) reply {
	if intent == nlp.IntentRefundStatusCheck {
		return reply{text: "Please provide your PNR to check refund status.\n\nExample: \"Where is my refund for " + s.firstDemoPNR(ctx) + "\"\n\nDemo PNRs with refunds:\n" + s.demoRefundLines(ctx)}
	}
	return reply{text: "Please provide your 10-digit PNR number.\n\nExample: \"Check PNR " + s.firstDemoPNR(ctx) + "\"\n\nDemo PNRs available:\n" + s.demoBookingLines(ctx)}
}

func (s *chatService) provideTrain(ctx context.Context) reply {
	return reply{text: "Please provide a train number or PNR to check status.\n\nExample: \"Check status of train " + s.firstDemoTrain(ctx) + "\"\n\nDemo train numbers:\n" + s.demoTrainLines(ctx)}
}

func ticketBooking(ents nlp.Entities) reply {
	card := entity.TicketBooking{}
	if ents.Stations != nil {
		card.From = ents.Stations.From
		card.To = ents.Stations.To
	}

	text := "I can help you book a train ticket! Fill in the details below:"
	if card.From != "" && card.To != "" {
		text = fmt.Sprintf("Great! Let me help you book from **%s** to **%s**:", card.From, card.To)
	}

	return reply{text: text, rich: card}
}

func (s *chatService) choose(n int) int {
	if n <= 0 {
		return 0
	}
	i := s.pick(n)
	if i < 0 || i >= n {
		return 0
	}
	return i
}
