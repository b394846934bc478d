package bookingHandler

import (
	"DishaAssistant/internal/api/booking"
	contextPkg "DishaAssistant/pkg/context"
	"DishaAssistant/pkg/handlerUtil"
	"DishaAssistant/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *BookingHandler) GetBooking(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	pnr := ctx.Params("pnr")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"pnr":        pnr,
	}).Debug("Processing get booking request")

	b, ok := h.bookingService.LookupBooking(c, pnr)
	if !ok {
		return errHandler.Handle(ctx, requestID, booking.ErrBookingNotFound, ctx.Path(), "get_booking")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, b)
	}
}

func (h *BookingHandler) ListBookings(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	bookings := h.bookingService.DemoBookings(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, fiber.Map{
			"bookings": bookings,
		})
	}
}

func (h *BookingHandler) CancelBooking(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	pnr := ctx.Params("pnr")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"pnr":        pnr,
	}).Info("Processing cancel booking request")

	ticket, err := h.bookingService.CancelBooking(c, pnr)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "cancel_booking")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, booking.CancelBookingResponse{
			PNR:          ticket.PNR,
			Fare:         ticket.Fare,
			RefundAmount: ticket.RefundAmount,
			CancelledAt:  ticket.CancelledAt.Format(time.RFC3339),
		})
	}
}
