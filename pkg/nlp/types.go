package nlp

import "regexp"

const (
	IntentOutOfContext = "out_of_context"

	IntentGreeting                 = "greeting"
	IntentPNRStatus                = "pnr_status"
	IntentTrainSearch              = "train_search"
	IntentTicketBooking            = "ticket_booking"
	IntentTicketBookingWithDetails = "ticket_booking_with_details"
	IntentRefundAmountInquiry      = "refund_amount_inquiry"
	IntentRefundRequestInitial     = "refund_request_initial"
	IntentRefundRequestConfirm     = "refund_request_confirm"
	IntentTravelCreditAccept       = "travel_credit_accept"
	IntentCancellation             = "cancellation"
	IntentTatkalBooking            = "tatkal_booking"
	IntentFareInfo                 = "fare_info"
	IntentFoodOrdering             = "food_ordering"
	IntentStationCode              = "station_code"
	IntentRefundStatus             = "refund_status"
	IntentRefundETicket            = "refund_e_ticket"
	IntentRefundCounterTicket      = "refund_counter_ticket"
	IntentHelp                     = "help"
	IntentAccountIssues            = "account_issues"
	IntentPaymentIssues            = "payment_issues"
	IntentPNRCheckDetailed         = "pnr_check_detailed"
	IntentTrainStatusCheck         = "train_status_check"
	IntentRefundStatusCheck        = "refund_status_check"
	IntentRefundCalculator         = "refund_calculator"
	IntentRefundHistory            = "refund_history"
	IntentTDRFiling                = "tdr_filing"
	IntentCancelledTrainRefund     = "cancelled_train_refund"
	IntentPartialCancellation      = "partial_cancellation"
	IntentAlternativeTrains        = "alternative_trains"
	IntentRefundExplanation        = "refund_explanation"
	IntentRefundRulesExplanation   = "refund_rules_explanation"
	IntentRefundProcessExplanation = "refund_process_explanation"
	IntentTrainDelayExplanation    = "train_delay_explanation"
	IntentTDRExplanation           = "tdr_explanation"
	IntentTDRFilingContinue        = "tdr_filing_continue"
)

// Topic values understood by follow-up resolution.
const (
	TopicRefund  = "refund"
	TopicBooking = "booking"
	TopicTrain   = "train"
	TopicTDR     = "tdr"
)

// Pending confirmation kinds understood by follow-up resolution.
const (
	PendingRefundRequest = "refund_request"
	PendingTravelCredit  = "travel_credit"
)

// IntentDefinition is one registry entry. FollowUp holds the quick replies
// offered with the answer; the Requires flags make the generator ask for the
// missing identifier before answering.
type IntentDefinition struct {
	Name      string
	Patterns  []*regexp.Regexp
	Responses []string
	FollowUp  []string
	Link      string

	RequiresPNR         bool
	RequiresTrainNumber bool
}

func (d IntentDefinition) Matches(text string) bool {
	for _, p := range d.Patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

type StationPair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Entities struct {
	PNR            string       `json:"pnr,omitempty"`
	PNRFromContext bool         `json:"pnr_from_context,omitempty"`
	TrainNumber    string       `json:"train_number,omitempty"`
	Stations       *StationPair `json:"stations,omitempty"`
	Amount         int          `json:"amount,omitempty"`
	HasAmount      bool         `json:"has_amount,omitempty"`
}

// DialogueState is the slice of conversation state the classifier reads.
type DialogueState struct {
	LastIntent string
	LastTopic  string
	Pending    string
}

type IExtractor interface {
	Extract(text string, history []string) Entities
}

type IClassifier interface {
	Classify(text string, entities Entities, state DialogueState) string
	Definition(name string) (IntentDefinition, bool)
}
