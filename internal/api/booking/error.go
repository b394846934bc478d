package booking

import "DishaAssistant/pkg/response"

var (
	ErrBookingNotFound    = response.NewError(404, "booking not found")
	ErrTrainNotFound      = response.NewError(404, "train not found")
	ErrRefundNotFound     = response.NewError(404, "refund not found")
	ErrInvalidTicketType  = response.NewError(400, "invalid ticket type")
	ErrInvalidFare        = response.NewError(400, "invalid fare")
	ErrRecordCancellation = response.NewError(500, "failed to record cancellation")
	ErrNoCancellation     = response.NewError(404, "cancellation not found")
)
