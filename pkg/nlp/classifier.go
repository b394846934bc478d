package nlp

import (
	"regexp"
	"strings"
)

type outOfContextRule struct {
	re     *regexp.Regexp
	unless *regexp.Regexp
}

var (
	outOfContextRules = []outOfContextRule{
		{
			re:     regexp.MustCompile(`\b(cook|cooking|dinner|lunch|breakfast|recipe|food|eat|meal)\b`),
			unless: regexp.MustCompile(`\b(train|order|e-?catering|journey|seat|pnr|coach|station)\b`),
		},
		{re: regexp.MustCompile(`\b(weather|temperature|rain|sunny|climate)\b`)},
		{re: regexp.MustCompile(`\b(movie|film|music|song|game|sport)\b`)},
		{
			re:     regexp.MustCompile(`\b(shopping|buy|purchase|product)\b`),
			unless: regexp.MustCompile(`\bticket`),
		},
		{re: regexp.MustCompile(`\b(health|doctor|medicine|hospital)\b`)},
		{re: regexp.MustCompile(`\b(news|politics|election)\b`)},
		{re: regexp.MustCompile(`\b(job|career|interview|salary)\b`)},
		{re: regexp.MustCompile(`\b(dating|relationship|love|marriage)\b`)},
		{re: regexp.MustCompile(`\b(homework|assignment|study)\b`)},
	}

	followUpShapes = []*regexp.Regexp{
		regexp.MustCompile(`\b(why|how|what|when|where)\b`),
		regexp.MustCompile(`\b(tell me more|explain|details|reason)\b`),
		regexp.MustCompile(`\b(this|that|it)\b`),
		affirmativePattern,
		regexp.MustCompile(`^no\b`),
	}

	affirmativePattern = regexp.MustCompile(`^(yes|yeah|yep|sure|ok|okay|haan|proceed|go ahead|please do)\b`)
	whyPattern         = regexp.MustCompile(`\b(why|reason|how come)\b`)
	howPattern         = regexp.MustCompile(`\b(how|process|steps)\b`)
	whatPattern        = regexp.MustCompile(`\b(what|which|tell me)\b`)

	refundWithPNRPattern = regexp.MustCompile(`\b(refund|money|amount|return|tdr)\b`)
	trainWithPNRPattern  = regexp.MustCompile(`\b(train|running|cancel|delay)\b`)
	alternativePattern   = regexp.MustCompile(`\b(alternative|other|different|instead)\b`)
	trainCancelPattern   = regexp.MustCompile(`\b(cancel|cancelled|canceled)\b`)
	refundKeywordPattern = regexp.MustCompile(`\b(refund|money|amount)\b`)

	refundAmountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(my|i|me)\b.*\brefund\b.*\b(\d+|rupees?|rs\.?)\b`),
		regexp.MustCompile(`\brefund\b.*\b(\d{3,5})\b`),
	}
	bareRefundPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(i want|i need|can i get)\b.*\brefund[.?!]*$`),
		regexp.MustCompile(`^refund[.?!]*$`),
	}

	calculatorPattern        = regexp.MustCompile(`\b(calculate|how much|estimate)\b`)
	historyPattern           = regexp.MustCompile(`\b(history|past|all|show|list)\b`)
	refundTrackingPattern    = regexp.MustCompile(`\b(where|status|track|check|pending|receive|credited)\b`)
	tdrPattern               = regexp.MustCompile(`\b(tdr|file|claim)\b`)
	alternativeTrainsPattern = regexp.MustCompile(`\b(alternative|other|different)\b.*\btrains?\b`)

	partialCancelPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bpartial\b.*\bcancel`),
		regexp.MustCompile(`\bcancel\b.*\b(one|some|few)\b.*\bpassengers?\b`),
	}

	// Intents with a dedicated tier, skipped by the final sweep.
	tieredIntents = map[string]bool{
		IntentPNRCheckDetailed:     true,
		IntentTrainStatusCheck:     true,
		IntentRefundStatusCheck:    true,
		IntentRefundCalculator:     true,
		IntentRefundHistory:        true,
		IntentTDRFiling:            true,
		IntentCancelledTrainRefund: true,
		IntentAlternativeTrains:    true,
		IntentPartialCancellation:  true,
	}
)

// maxContextualWords bounds how long a why/how/what message may be before it
// is treated as a fresh question instead of a follow-up.
const maxContextualWords = 8

type tier struct {
	name  string
	match func(text string, ents Entities) string
}

type Classifier struct {
	intents []IntentDefinition
	byName  map[string]IntentDefinition
	tiers   []tier
}

func NewClassifier(intents []IntentDefinition) *Classifier {
	c := &Classifier{
		intents: intents,
		byName:  make(map[string]IntentDefinition, len(intents)),
	}
	for _, d := range intents {
		c.byName[d.Name] = d
	}
	c.tiers = []tier{
		{"pnr_refund", func(text string, ents Entities) string {
			if messagePNR(ents) && refundWithPNRPattern.MatchString(text) {
				return IntentRefundStatusCheck
			}
			return ""
		}},
		{"pnr_train", func(text string, ents Entities) string {
			if messagePNR(ents) && trainWithPNRPattern.MatchString(text) {
				return IntentTrainStatusCheck
			}
			return ""
		}},
		{"pnr", func(text string, ents Entities) string {
			if messagePNR(ents) {
				return IntentPNRCheckDetailed
			}
			return ""
		}},
		{"train_alternative", func(text string, ents Entities) string {
			if ents.TrainNumber != "" && alternativePattern.MatchString(text) {
				return IntentAlternativeTrains
			}
			return ""
		}},
		{"train_cancel", func(text string, ents Entities) string {
			if ents.TrainNumber != "" && trainCancelPattern.MatchString(text) {
				return IntentCancelledTrainRefund
			}
			return ""
		}},
		{"train", func(text string, ents Entities) string {
			if ents.TrainNumber != "" && !refundKeywordPattern.MatchString(text) {
				return IntentTrainStatusCheck
			}
			return ""
		}},
		{"refund_request", func(text string, _ Entities) string {
			if matchesAny(bareRefundPatterns, text) {
				return IntentRefundRequestInitial
			}
			return ""
		}},
		{"refund_amount", func(text string, ents Entities) string {
			if messagePNR(ents) || !refundKeywordPattern.MatchString(text) {
				return ""
			}
			if ents.HasAmount || matchesAny(refundAmountPatterns, text) {
				return IntentRefundAmountInquiry
			}
			return ""
		}},
		{"refund", func(text string, _ Entities) string {
			if !refundKeywordPattern.MatchString(text) {
				return ""
			}
			switch {
			case calculatorPattern.MatchString(text):
				return IntentRefundCalculator
			case historyPattern.MatchString(text):
				return IntentRefundHistory
			case refundTrackingPattern.MatchString(text):
				return IntentRefundStatusCheck
			}
			return ""
		}},
		{"tdr", func(text string, _ Entities) string {
			if tdrPattern.MatchString(text) {
				return IntentTDRFiling
			}
			return ""
		}},
		{"alternatives", func(text string, _ Entities) string {
			if alternativeTrainsPattern.MatchString(text) {
				return IntentAlternativeTrains
			}
			return ""
		}},
		{"partial_cancellation", func(text string, _ Entities) string {
			if matchesAny(partialCancelPatterns, text) {
				return IntentPartialCancellation
			}
			return ""
		}},
	}
	return c
}

func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultIntents())
}

// Classify returns the single intent for text, or "" when nothing matches.
func (c *Classifier) Classify(text string, ents Entities, state DialogueState) string {
	normalized := Normalize(text)
	if normalized == "" {
		return ""
	}

	if IsOutOfContext(normalized) {
		return IntentOutOfContext
	}

	if IsFollowUp(normalized) {
		if intent := c.contextual(normalized, ents, state); intent != "" {
			return intent
		}
	}

	for _, t := range c.tiers {
		if intent := t.match(normalized, ents); intent != "" {
			return intent
		}
	}

	for _, d := range c.intents {
		if tieredIntents[d.Name] {
			continue
		}
		if d.Matches(normalized) {
			return d.Name
		}
	}

	return ""
}

func (c *Classifier) Definition(name string) (IntentDefinition, bool) {
	d, ok := c.byName[name]
	return d, ok
}

func (c *Classifier) contextual(text string, ents Entities, state DialogueState) string {
	if affirmativePattern.MatchString(text) {
		switch {
		case state.Pending == PendingRefundRequest:
			return IntentRefundRequestConfirm
		case state.Pending == PendingTravelCredit:
			return IntentTravelCreditAccept
		case state.LastIntent == IntentRefundRequestInitial:
			return IntentRefundRequestConfirm
		case state.LastIntent == IntentRefundRequestConfirm:
			return IntentTravelCreditAccept
		case state.LastIntent == IntentTDRFiling:
			return IntentTDRFilingContinue
		case state.LastIntent == IntentRefundCalculator:
			return IntentRefundCalculator
		}
		return ""
	}

	if state.LastTopic == "" || hasIdentifiers(ents) || len(strings.Fields(text)) > maxContextualWords {
		return ""
	}

	switch {
	case whyPattern.MatchString(text):
		switch state.LastTopic {
		case TopicRefund:
			return IntentRefundExplanation
		case TopicTrain:
			return IntentTrainDelayExplanation
		case TopicTDR:
			return IntentTDRExplanation
		}
	case howPattern.MatchString(text):
		switch state.LastTopic {
		case TopicRefund:
			return IntentRefundProcessExplanation
		case TopicTDR:
			return IntentTDRFiling
		}
	case whatPattern.MatchString(text):
		if state.LastTopic == TopicRefund {
			return IntentRefundRulesExplanation
		}
	}

	return ""
}

// IsOutOfContext reports whether normalized text is about a topic the
// assistant does not serve.
func IsOutOfContext(normalized string) bool {
	for _, r := range outOfContextRules {
		if !r.re.MatchString(normalized) {
			continue
		}
		if r.unless != nil && r.unless.MatchString(normalized) {
			continue
		}
		return true
	}
	return false
}

func IsFollowUp(normalized string) bool {
	return matchesAny(followUpShapes, normalized)
}

// TopicFor maps an intent onto the topic tag remembered between turns.
func TopicFor(intent string) string {
	switch intent {
	case IntentRefundStatusCheck, IntentRefundCalculator, IntentRefundHistory,
		IntentRefundAmountInquiry, IntentRefundRequestInitial, IntentRefundRequestConfirm,
		IntentTravelCreditAccept, IntentRefundStatus, IntentRefundETicket,
		IntentRefundCounterTicket, IntentRefundExplanation, IntentRefundRulesExplanation,
		IntentRefundProcessExplanation, IntentCancellation, IntentPartialCancellation:
		return TopicRefund
	case IntentTDRFiling, IntentTDRFilingContinue, IntentTDRExplanation:
		return TopicTDR
	case IntentTrainStatusCheck, IntentCancelledTrainRefund, IntentAlternativeTrains,
		IntentTrainDelayExplanation, IntentTrainSearch:
		return TopicTrain
	case IntentPNRCheckDetailed, IntentPNRStatus, IntentTicketBooking,
		IntentTicketBookingWithDetails, IntentTatkalBooking:
		return TopicBooking
	}
	return ""
}

func messagePNR(ents Entities) bool {
	return ents.PNR != "" && !ents.PNRFromContext
}

func hasIdentifiers(ents Entities) bool {
	return messagePNR(ents) || ents.TrainNumber != "" || ents.HasAmount
}

func matchesAny(res []*regexp.Regexp, text string) bool {
	for _, re := range res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}
