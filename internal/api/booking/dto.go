package booking

import "DishaAssistant/internal/entity"

type EstimateRefundRequest struct {
	TicketType  string  `json:"ticketType" validate:"required,oneof=ac sleeper tatkal"`
	Fare        int     `json:"fare" validate:"required,gt=0"`
	HoursBefore float64 `json:"hoursBefore" validate:"gte=0"`
}

type CancelBookingResponse struct {
	PNR          string `json:"pnr"`
	Fare         int    `json:"fare"`
	RefundAmount int    `json:"refundAmount"`
	CancelledAt  string `json:"cancelledAt"`
}

type TrainListResponse struct {
	Trains []entity.TrainStatus `json:"trains"`
}

type AlternativeTrainsResponse struct {
	Alternatives []entity.AlternativeTrain `json:"alternatives"`
}

type RefundHistoryResponse struct {
	Refunds []entity.RefundHistoryEntry `json:"refunds"`
}
