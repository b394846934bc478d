package entity

import "time"

type RefundState string

const (
	RefundStateInitiated  RefundState = "initiated"
	RefundStateApproved   RefundState = "approved"
	RefundStateProcessing RefundState = "processing"
	RefundStateCredited   RefundState = "credited"
	RefundStateRejected   RefundState = "rejected"
)

type RefundStages struct {
	Received   bool `json:"received"`
	Approved   bool `json:"approved"`
	Processing bool `json:"processing"`
	Credited   bool `json:"credited"`
}

// StagesFor returns the stage flags implied by a status. A stage is never set
// without every earlier stage also being set.
func StagesFor(status RefundState) RefundStages {
	switch status {
	case RefundStateApproved:
		return RefundStages{Received: true, Approved: true}
	case RefundStateProcessing:
		return RefundStages{Received: true, Approved: true, Processing: true}
	case RefundStateCredited:
		return RefundStages{Received: true, Approved: true, Processing: true, Credited: true}
	default:
		return RefundStages{Received: true}
	}
}

type RefundRecord struct {
	PNR                string       `json:"pnr"`
	Status             RefundState  `json:"status"`
	Percentage         int          `json:"percentage"`
	Amount             int          `json:"amount"`
	SubmittedDate      string       `json:"submittedDate"`
	ApprovedDate       string       `json:"approvedDate,omitempty"`
	CreditedDate       string       `json:"creditedDate,omitempty"`
	ExpectedCreditDate string       `json:"expectedCreditDate"`
	Stages             RefundStages `json:"stages"`
}

type RefundHistoryEntry struct {
	PNR         string `json:"pnr"`
	Amount      int    `json:"amount"`
	Status      string `json:"status"`
	Date        string `json:"date"`
	Reason      string `json:"reason,omitempty"`
	TrainNumber string `json:"trainNumber,omitempty"`
	TrainName   string `json:"trainName,omitempty"`
}

// CancelledTicket is a row of the cancellation side-table.
type CancelledTicket struct {
	PNR          string    `json:"pnr"`
	Fare         int       `json:"fare"`
	RefundAmount int       `json:"refundAmount"`
	CancelledAt  time.Time `json:"cancelledAt"`
}

type TicketType string

const (
	TicketTypeAC      TicketType = "ac"
	TicketTypeSleeper TicketType = "sleeper"
	TicketTypeTatkal  TicketType = "tatkal"
)

type RefundEstimate struct {
	TicketType       TicketType `json:"ticketType"`
	Fare             int        `json:"fare"`
	HoursBefore      float64    `json:"hoursBefore"`
	DeductionPercent int        `json:"deductionPercent"`
	Deduction        int        `json:"deduction"`
	Refund           int        `json:"refund"`
	Window           string     `json:"window"`
	ProcessingTime   string     `json:"processingTime"`
}
