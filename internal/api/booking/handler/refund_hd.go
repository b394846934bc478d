package bookingHandler

import (
	"DishaAssistant/internal/api/booking"
	bookingService "DishaAssistant/internal/api/booking/service"
	"DishaAssistant/internal/entity"
	contextPkg "DishaAssistant/pkg/context"
	"DishaAssistant/pkg/handlerUtil"
	"DishaAssistant/pkg/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
	"time"
)

func (h *BookingHandler) GetRefund(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	pnr := ctx.Params("pnr")

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
		"pnr":        pnr,
	}).Debug("Processing refund status request")

	refund, ok := h.bookingService.LookupRefund(c, pnr)
	if !ok {
		return errHandler.Handle(ctx, requestID, booking.ErrRefundNotFound, ctx.Path(), "get_refund")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, refund)
	}
}

func (h *BookingHandler) GetRefundHistory(ctx *fiber.Ctx) error {
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 10*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	history := h.bookingService.RefundHistory(c)

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, booking.RefundHistoryResponse{Refunds: history})
	}
}

func (h *BookingHandler) EstimateRefund(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)

	errHandler := handlerUtil.New(h.log)

	var req booking.EstimateRefundRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	h.log.WithFields(log.Fields{
		"request_id":  requestID,
		"ticket_type": req.TicketType,
		"fare":        req.Fare,
	}).Debug("Processing refund estimate request")

	estimate, err := bookingService.EstimateRefund(entity.TicketType(req.TicketType), req.Fare, req.HoursBefore)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "estimate_refund")
	}

	return errHandler.HandleSuccess(ctx, fiber.StatusOK, estimate)
}
