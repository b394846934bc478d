package handlerUtil

import (
	"DishaAssistant/internal/api/booking"
	"DishaAssistant/internal/api/chat"
	"DishaAssistant/pkg/log"
	"DishaAssistant/pkg/response"
	"errors"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

type domainError struct {
	err     error
	status  int
	code    string
	message string
}

var domainErrors = []domainError{
	// Booking domain errors
	{booking.ErrBookingNotFound, fiber.StatusNotFound, "BOOKING_NOT_FOUND", "No booking found for this PNR"},
	{booking.ErrTrainNotFound, fiber.StatusNotFound, "TRAIN_NOT_FOUND", "No running status found for this train"},
	{booking.ErrRefundNotFound, fiber.StatusNotFound, "REFUND_NOT_FOUND", "No refund found for this PNR"},
	{booking.ErrInvalidTicketType, fiber.StatusBadRequest, "INVALID_TICKET_TYPE", "Ticket type must be ac, sleeper or tatkal"},
	{booking.ErrInvalidFare, fiber.StatusBadRequest, "INVALID_FARE", "Fare must be positive and hours cannot be negative"},
	{booking.ErrRecordCancellation, fiber.StatusInternalServerError, "CANCELLATION_FAILED", "Failed to cancel booking"},

	// Chat domain errors
	{chat.ErrSessionNotFound, fiber.StatusNotFound, "SESSION_NOT_FOUND", "Chat session not found"},
	{chat.ErrEmptyMessage, fiber.StatusBadRequest, "VALIDATION_ERROR", "Message is required"},
	{chat.ErrClearSession, fiber.StatusInternalServerError, "CLEAR_FAILED", "Failed to clear chat"},
}

func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	for _, d := range domainErrors {
		if !errors.Is(err, d.err) {
			continue
		}
		entry := h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"path":       path,
			"operation":  operation,
		})
		resp := ErrorResponse{
			Error: d.message,
			Code:  d.code,
		}
		if d.status >= fiber.StatusInternalServerError {
			resp.TraceID = log.ErrorWithTraceID(entry, d.message)
		} else {
			entry.Warn(d.message)
		}
		return c.Status(d.status).JSON(resp)
	}

	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(fiber.Map{"error": err.Error()})
	}

	traceID := log.ErrorWithTraceID(h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}), "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error:   "An unexpected error occurred",
		TraceID: traceID,
	})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "Validation failed: " + err.Error(),
		"code":  "VALIDATION_ERROR",
	})
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
