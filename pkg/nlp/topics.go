package nlp

import "regexp"

// Topic labels attached to a message for the completion service. Unlike
// Classify, a message may carry several.
const (
	LabelPNRCheck          = "pnr_check"
	LabelTrainStatus       = "train_status"
	LabelRefund            = "refund"
	LabelRefundEligibility = "refund_eligibility"
	LabelRefundTimeline    = "refund_timeline"
	LabelETicket           = "e_ticket"
	LabelCounterTicket     = "counter_ticket"
	LabelExplanation       = "explanation"
	LabelCancellation      = "cancellation"
	LabelTDR               = "tdr"
	LabelAlternatives      = "alternatives"
	LabelRefundHistory     = "refund_history"
	LabelRefundCalculator  = "refund_calculator"
	LabelGreeting          = "greeting"
	LabelTicketBooking     = "ticket_booking"
	LabelFareInquiry       = "fare_inquiry"
	LabelTatkal            = "tatkal"
)

var topicLabels = []struct {
	label    string
	patterns []*regexp.Regexp
}{
	{LabelPNRCheck, patterns(`\b(pnr|booking|ticket)\b.*\b(status|check|find|show|details|where)\b`, `\b\d{10}\b`)},
	{LabelTrainStatus, patterns(`\b(train|running|delay|cancel|status|where)\b`, `\b\d{5}\b`)},
	{LabelRefund, patterns(`\b(refund|money back|return|credited|payment|eligible|eligibility)\b`)},
	{LabelRefundEligibility, patterns(
		`\b(eligible|eligibility|can i get|will i get|do i get)\b.*\b(refund|money|amount)\b`,
		`\b(refund|money)\b.*\b(eligible|eligibility|get back|receive)\b`,
	)},
	{LabelRefundTimeline, patterns(
		`\b(refund|money)\b.*\b(time|how long|process|step|timeline|procedure|when|days)\b`,
		`\b(time|how long|process|step|timeline|procedure|when|days)\b.*\b(refund|money)\b`,
		`\bhow\b.*\b(refund|cancellation)\b.*\b(work|process)\b`,
	)},
	{LabelETicket, patterns(`\be-?ticket\b`)},
	{LabelCounterTicket, patterns(`\bcounter\b.*\bticket\b`, `\boffline\b.*\bticket\b`)},
	{LabelExplanation, patterns(`\b(why|reason|rejected|denied|not eligible)\b`)},
	{LabelCancellation, patterns(`\b(cancel|cancellation)\b`)},
	{LabelTDR, patterns(`\btdr\b`, `\b(file|claim|deposit receipt)\b`)},
	{LabelAlternatives, patterns(`\b(alternative|other train|different train|next train)\b`)},
	{LabelRefundHistory, patterns(`\b(history|all refund|past refund|previous)\b`)},
	{LabelRefundCalculator, patterns(`\b(calculate|how much|estimate|refund amount)\b`)},
	{LabelGreeting, patterns(`^(hi|hello|hey|help|what can you do)\b`)},
	{LabelTicketBooking, patterns(
		`\b(book|booking|reserve|reservation)\b.*\b(ticket|train)\b`,
		`\b(ticket|train)\b.*\b(book|reserve)\b`,
		`\bi want to book\b`,
		`\b(want|need)\b.*\bticket\b`,
		`\bmake\b.*\breservation\b`,
		`\b(book|reserve)\b.*\b(from|to)\b`,
	)},
	{LabelFareInquiry, patterns(`\b(fare|price|cost|charge|how much|ticket price)\b`)},
	{LabelTatkal, patterns(`\btatkal\b`)},
}

// DetectTopics returns every topic label the message touches, in a fixed order.
func DetectTopics(text string) []string {
	normalized := Normalize(text)
	var labels []string
	for _, t := range topicLabels {
		if matchesAny(t.patterns, normalized) {
			labels = append(labels, t.label)
		}
	}
	return labels
}

// HasLabel reports whether label is present in labels.
func HasLabel(labels []string, label string) bool {
	for _, l := range labels {
		if l == label {
			return true
		}
	}
	return false
}
