package chatService

import (
	"DishaAssistant/internal/entity"
	"DishaAssistant/pkg/nlp"
	"DishaAssistant/pkg/tone"
	"golang.org/x/net/context"
)

const lostTrackResponse = "I'm sorry, I seem to have lost track of your refund request. Let's restart: just say \"I want a refund\" and I'll pick it up from there."

// startRefundRequest opens the refund dialogue for the message PNR, else the
// last PNR discussed, else the first demo booking.
func (s *chatService) startRefundRequest(ctx context.Context, ents nlp.Entities, conv *entity.ConversationContext) reply {
	pnr := ""
	switch {
	case ents.PNR != "" && !ents.PNRFromContext:
		pnr = ents.PNR
	case conv.LastPNR != "":
		pnr = conv.LastPNR
	case ents.PNR != "":
		pnr = ents.PNR
	default:
		pnr = s.firstDemoPNR(ctx)
	}

	rec, ok := s.bookingService.LookupRefund(ctx, pnr)
	if !ok {
		conv.ClearPending()
		return reply{text: lostTrackResponse, stateful: true}
	}

	if rec.Status == entity.RefundStateRejected || rec.Amount <= 0 {
		conv.ClearPending()
		return reply{
			text:     tone.Render(tone.ContextRefundStatus, string(entity.RefundStateRejected), rec.Amount),
			rich:     entity.RefundStatusCard{Refund: rec},
			pnr:      pnr,
			stateful: true,
		}
	}

	conv.PendingConfirmation = &entity.PendingConfirmation{
		Type:   entity.PendingRefundRequest,
		Amount: rec.Amount,
		PNR:    pnr,
	}

	return reply{
		text:     s.phrases.Empathy(rec.Amount) + ". " + tone.RenderWith(tone.ContextRefundRequest, tone.SubInitial, rec.Amount, map[string]string{"pnr": pnr}),
		pnr:      pnr,
		stateful: true,
	}
}

func (s *chatService) confirmRefundRequest(conv *entity.ConversationContext) reply {
	if !conv.HasPending(entity.PendingRefundRequest) {
		conv.ClearPending()
		return reply{text: lostTrackResponse, stateful: true}
	}

	pending := conv.PendingConfirmation
	pending.Initiated = true
	pending.Type = entity.PendingTravelCredit

	return reply{
		text: tone.RenderWith(tone.ContextRefundRequest, tone.SubSubmitted, pending.Amount, map[string]string{
			"pnr":    pending.PNR,
			"credit": tone.FormatAmount(tone.TravelCredit(pending.Amount)),
		}),
		pnr:      pending.PNR,
		stateful: true,
	}
}

func (s *chatService) acceptTravelCredit(conv *entity.ConversationContext) reply {
	if !conv.HasPending(entity.PendingTravelCredit) || !conv.PendingConfirmation.Initiated {
		conv.ClearPending()
		return reply{text: lostTrackResponse, stateful: true}
	}

	pending := *conv.PendingConfirmation
	conv.ClearPending()

	closed := tone.RenderWith(tone.ContextRefundRequest, tone.SubClosed, pending.Amount, map[string]string{
		"pnr":    pending.PNR,
		"credit": tone.FormatAmount(tone.TravelCredit(pending.Amount)),
	})

	return reply{
		text: closed + "\n\n" + s.phrases.Closing(pending.Amount) + ".",
		pnr:      pending.PNR,
		stateful: true,
	}
}
