package chatService

import (
	"DishaAssistant/internal/api/chat"
	chatRepository "DishaAssistant/internal/api/chat/repository"
	"DishaAssistant/internal/entity"
	"DishaAssistant/pkg/llm"
	"DishaAssistant/pkg/nlp"
	"DishaAssistant/pkg/tone"
	"fmt"
	"golang.org/x/net/context"
	"strings"
)

const (
	llmTemperature = 0.7
	llmMaxTokens   = 800

	// Stored transcript turns replayed when the client sends no history.
	maxReplayedTurns = 20
)

const personaPrompt = `You are DISHA 2.0, a proactive AI copilot for IRCTC, Indian Railways' official virtual assistant.

You help with train ticket booking guidance, PNR status, train running status, refunds and cancellations, TDR (Ticket Deposit Receipt) filing, Tatkal rules, e-catering, and account or payment issues.

Be helpful, friendly and professional. Keep answers clear, concise and actionable, use simple language and bullet points for lists.`

const rulesPrompt = `RESPONSE GUIDELINES:
- Remember the conversation: when the user says "it", "this", "that", "my ticket" or "the same", refer to the PNR or train discussed earlier.
- Use the SYSTEM DATA blocks appended to user messages as the source of truth for bookings, trains and refunds.
- The UI renders cards for structured data; summarise conversationally instead of repeating every field.
- Premium Tatkal tickets are non-refundable under any circumstance.
- Only answer railway questions; politely redirect anything else.
- Always offer to help with a follow-up.`

// complete asks the completion service for the reply text. Rich content is
// never taken from the completion.
func (s *chatService) complete(
	ctx context.Context,
	client chatRepository.Client,
	message string,
	supplied []chat.HistoryMessage,
	ents nlp.Entities,
	conv *entity.ConversationContext,
) (string, error) {
	c, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	turns := replayTurns(supplied)
	if len(turns) == 0 {
		if transcript, err := client.Transcript.GetTranscript(ctx, conv.SessionID); err == nil {
			turns = transcriptTurns(transcript)
		}
	}

	turns = append(turns, llm.Message{
		Role:    llm.RoleUser,
		Content: message + s.systemData(ctx, message, ents),
	})

	text, err := s.completer.Complete(c, llm.Request{
		System:      s.systemPrompt(ctx),
		Messages:    turns,
		Temperature: llmTemperature,
		MaxTokens:   llmMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", chat.ErrCompletion, s.completer.Name(), err)
	}
	return text, nil
}

// systemPrompt embeds the live demo tables so the model never invents
// identifiers the lookups would reject.
func (s *chatService) systemPrompt(ctx context.Context) string {
	var sb strings.Builder
	sb.WriteString(personaPrompt)
	sb.WriteString("\n\nMOCK DATABASE FOR DEMONSTRATION:\n\nPNR Database (10-digit numbers):\n")
	for _, b := range s.bookingService.DemoBookings(ctx) {
		fmt.Fprintf(&sb, "- %s: %s (%s), %s to %s, %s, %s, %s, %d passenger(s), quota %s - %s\n",
			b.PNR, b.TrainName, b.TrainNumber, b.From, b.To, b.JourneyDate, b.Class,
			tone.FormatAmount(b.Fare), len(b.Passengers), b.Quota, strings.ToUpper(string(b.Status)))
	}

	sb.WriteString("\nTrain Status (5-digit numbers):\n")
	for _, t := range s.bookingService.DemoTrains(ctx) {
		fmt.Fprintf(&sb, "- %s (%s): %s\n", t.TrainNumber, t.TrainName, trainSummary(t))
	}

	sb.WriteString("\nRefund Status:\n")
	for _, b := range s.bookingService.DemoBookings(ctx) {
		if rec, ok := s.bookingService.LookupRefund(ctx, b.PNR); ok {
			fmt.Fprintf(&sb, "- %s: %s (%d%%), %s, expected %s\n",
				b.PNR, strings.ToUpper(string(rec.Status)), rec.Percentage, tone.FormatAmount(rec.Amount), rec.ExpectedCreditDate)
		}
	}

	sb.WriteString("\n")
	sb.WriteString(rulesPrompt)
	return sb.String()
}

// systemData is the annotation appended to the user's turn.
func (s *chatService) systemData(ctx context.Context, message string, ents nlp.Entities) string {
	labels := nlp.DetectTopics(message)
	var sb strings.Builder

	if ents.PNRFromContext {
		fmt.Fprintf(&sb, "\n\n[CONTEXT NOTE: The user referred to an earlier message. PNR %s was taken from the conversation history. Continue naturally about this PNR.]", ents.PNR)
	}

	switch {
	case ents.PNR != "":
		b, ok := s.bookingService.LookupBooking(ctx, ents.PNR)
		if !ok {
			fmt.Fprintf(&sb, "\n\n[SYSTEM: PNR %s NOT FOUND. Suggest demo PNRs instead.]", ents.PNR)
			break
		}
		passengers := make([]string, 0, len(b.Passengers))
		for _, p := range b.Passengers {
			passengers = append(passengers, fmt.Sprintf("%s (%s, %s)", p.Name, p.Status, p.Seat))
		}
		fmt.Fprintf(&sb, "\n\n[SYSTEM DATA - PNR %s FOUND]:\n- Train: %s (%s)\n- Route: %s to %s\n- Journey Date: %s\n- Class: %s\n- Fare: %s\n- Quota: %s\n- Status: %s\n- Passengers: %s",
			b.PNR, b.TrainName, b.TrainNumber, b.From, b.To, b.JourneyDate, b.Class,
			tone.FormatAmount(b.Fare), b.Quota, strings.ToUpper(string(b.Status)), strings.Join(passengers, ", "))
		if b.IsNonRefundable() {
			sb.WriteString("\nIMPORTANT: This is a Premium Tatkal ticket - NON-REFUNDABLE")
		}
		sb.WriteString("]")

		if nlp.HasLabel(labels, nlp.LabelRefund) {
			if rec, ok := s.bookingService.LookupRefund(ctx, ents.PNR); ok {
				fmt.Fprintf(&sb, "\n\n[REFUND STATUS FOR %s]:\n- Status: %s\n- Amount: %s\n- Progress: %d%%\n- Expected Credit: %s]",
					ents.PNR, strings.ToUpper(string(rec.Status)), tone.FormatAmount(rec.Amount), rec.Percentage, rec.ExpectedCreditDate)
			}
		}

	case ents.TrainNumber != "":
		t, ok := s.bookingService.LookupTrainStatus(ctx, ents.TrainNumber)
		if !ok {
			fmt.Fprintf(&sb, "\n\n[SYSTEM: Train %s NOT FOUND. Suggest demo trains instead.]", ents.TrainNumber)
			break
		}
		fmt.Fprintf(&sb, "\n\n[SYSTEM DATA - TRAIN %s STATUS]:\n- Train: %s\n- Status: %s\n- Delay: %d minutes\n- Current Location: %s\n- Expected Arrival: %s\n- Last Updated: %s",
			t.TrainNumber, t.TrainName, strings.ToUpper(string(t.Status)), t.Delay, t.CurrentLocation, t.ExpectedArrival, t.LastUpdated)
		switch {
		case t.Status == entity.TrainStateCancelled:
			sb.WriteString("\nTRAIN CANCELLED: Suggest alternative trains and explain the automatic full refund.")
		case t.Delay >= 180:
			sb.WriteString("\nDELAY OVER 3 HOURS: The user may be eligible for a TDR refund claim.")
		}
		sb.WriteString("]")
	}

	if nlp.HasLabel(labels, nlp.LabelRefundHistory) {
		sb.WriteString("\n\n[SYSTEM: User wants refund history. The refund history dashboard is shown below your reply:")
		for i, h := range s.bookingService.RefundHistory(ctx) {
			fmt.Fprintf(&sb, "\n%d. PNR %s - %s %s (%s)", i+1, h.PNR, tone.FormatAmount(h.Amount), h.Status, h.TrainName)
		}
		sb.WriteString("]")
	}

	if len(labels) > 0 {
		fmt.Fprintf(&sb, "\n\n[USER INTENT: %s]", strings.Join(labels, ", "))
	}

	return sb.String()
}

func replayTurns(supplied []chat.HistoryMessage) []llm.Message {
	turns := make([]llm.Message, 0, len(supplied))
	for _, m := range supplied {
		role := llm.RoleUser
		if m.IsBot {
			role = llm.RoleAssistant
		}
		turns = append(turns, llm.Message{Role: role, Content: m.Text})
	}
	return turns
}

func transcriptTurns(transcript []entity.TranscriptMessage) []llm.Message {
	if len(transcript) > maxReplayedTurns {
		transcript = transcript[len(transcript)-maxReplayedTurns:]
	}
	turns := make([]llm.Message, 0, len(transcript))
	for _, m := range transcript {
		role := llm.RoleUser
		if m.Role == entity.RoleBot {
			role = llm.RoleAssistant
		}
		turns = append(turns, llm.Message{Role: role, Content: m.Content})
	}
	return turns
}
