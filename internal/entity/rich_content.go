package entity

type RichContentType string

const (
	RichContentPNRDetails        RichContentType = "pnr-details"
	RichContentTrainStatus       RichContentType = "train-status"
	RichContentRefundStatus      RichContentType = "refund-status"
	RichContentRefundHistory     RichContentType = "refund-history"
	RichContentRefundCalculator  RichContentType = "refund-calculator"
	RichContentRefundTimeline    RichContentType = "refund-timeline"
	RichContentAlternativeTrains RichContentType = "alternative-trains"
	RichContentTDRFiling         RichContentType = "tdr-filing"
	RichContentTicketBooking     RichContentType = "ticket-booking"
)

// RichContentEnvelope is the wire form of a rich content payload.
type RichContentEnvelope struct {
	Type       RichContentType `json:"type"`
	Data       interface{}     `json:"data,omitempty"`
	TicketType string          `json:"ticketType,omitempty"`
}

// RichContent is implemented only by the payload kinds declared in this file.
type RichContent interface {
	Kind() RichContentType
	Envelope() *RichContentEnvelope
	isRichContent()
}

type PNRDetails struct {
	Booking Booking
}

func (PNRDetails) Kind() RichContentType { return RichContentPNRDetails }
func (p PNRDetails) Envelope() *RichContentEnvelope {
	return &RichContentEnvelope{Type: p.Kind(), Data: p.Booking}
}
func (PNRDetails) isRichContent() {}

type TrainStatusCard struct {
	Train TrainStatus
}

func (TrainStatusCard) Kind() RichContentType { return RichContentTrainStatus }
func (t TrainStatusCard) Envelope() *RichContentEnvelope {
	return &RichContentEnvelope{Type: t.Kind(), Data: t.Train}
}
func (TrainStatusCard) isRichContent() {}

type RefundStatusCard struct {
	Refund RefundRecord
}

func (RefundStatusCard) Kind() RichContentType { return RichContentRefundStatus }
func (r RefundStatusCard) Envelope() *RichContentEnvelope {
	return &RichContentEnvelope{Type: r.Kind(), Data: r.Refund}
}
func (RefundStatusCard) isRichContent() {}

type RefundHistory struct {
	Entries []RefundHistoryEntry
}

func (RefundHistory) Kind() RichContentType { return RichContentRefundHistory }
func (r RefundHistory) Envelope() *RichContentEnvelope {
	return &RichContentEnvelope{Type: r.Kind(), Data: r.Entries}
}
func (RefundHistory) isRichContent() {}

// RefundCalculator renders the calculator form, prefilled when Estimate is set.
type RefundCalculator struct {
	Estimate *RefundEstimate
}

func (RefundCalculator) Kind() RichContentType { return RichContentRefundCalculator }
func (r RefundCalculator) Envelope() *RichContentEnvelope {
	env := &RichContentEnvelope{Type: r.Kind()}
	if r.Estimate != nil {
		env.Data = r.Estimate
	}
	return env
}
func (RefundCalculator) isRichContent() {}

const (
	TimelineETicket = "e-ticket"
	TimelineCounter = "counter"
)

type RefundTimeline struct {
	TicketType string
}

func (RefundTimeline) Kind() RichContentType { return RichContentRefundTimeline }
func (r RefundTimeline) Envelope() *RichContentEnvelope {
	return &RichContentEnvelope{Type: r.Kind(), TicketType: r.TicketType}
}
func (RefundTimeline) isRichContent() {}

type AlternativeTrains struct {
	OriginalTrain string             `json:"originalTrain"`
	Alternatives  []AlternativeTrain `json:"alternatives"`
	Reason        string             `json:"reason"`
}

func (AlternativeTrains) Kind() RichContentType { return RichContentAlternativeTrains }
func (a AlternativeTrains) Envelope() *RichContentEnvelope {
	return &RichContentEnvelope{Type: a.Kind(), Data: a}
}
func (AlternativeTrains) isRichContent() {}

type TDRFiling struct {
	Reasons []string `json:"reasons,omitempty"`
}

func (TDRFiling) Kind() RichContentType { return RichContentTDRFiling }
func (t TDRFiling) Envelope() *RichContentEnvelope {
	env := &RichContentEnvelope{Type: t.Kind()}
	if len(t.Reasons) > 0 {
		env.Data = t
	}
	return env
}
func (TDRFiling) isRichContent() {}

type TicketBooking struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (TicketBooking) Kind() RichContentType { return RichContentTicketBooking }
func (t TicketBooking) Envelope() *RichContentEnvelope {
	return &RichContentEnvelope{Type: t.Kind(), Data: t}
}
func (TicketBooking) isRichContent() {}
