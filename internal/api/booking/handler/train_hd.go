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

func (h *BookingHandler) GetTrainStatus(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	number := ctx.Params("number")

	h.log.WithFields(log.Fields{
		"request_id":   requestID,
		"path":         ctx.Path(),
		"train_number": number,
	}).Debug("Processing train status request")

	train, ok := h.bookingService.LookupTrainStatus(c, number)
	if !ok {
		return errHandler.Handle(ctx, requestID, booking.ErrTrainNotFound, ctx.Path(), "get_train_status")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, train)
	}
}

func (h *BookingHandler) ListTrains(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	trains := h.bookingService.DemoTrains(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, booking.TrainListResponse{Trains: trains})
	}
}

func (h *BookingHandler) GetAlternatives(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	alternatives := h.bookingService.AlternativeTrains(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, booking.AlternativeTrainsResponse{Alternatives: alternatives})
	}
}
