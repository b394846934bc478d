package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "hello world", Normalize("  Héllo   WORLD "))
	assert.Equal(t, "", Normalize("   "))
}

func TestExtract_PNRBeatsTrainNumber(t *testing.T) {
	ents := NewExtractor().Extract("Check PNR 1234567890 for train 12301", nil)

	assert.Equal(t, "1234567890", ents.PNR)
	assert.False(t, ents.PNRFromContext)
	assert.Empty(t, ents.TrainNumber)
	assert.False(t, ents.HasAmount)
}

func TestExtract_TrainNumber(t *testing.T) {
	ents := NewExtractor().Extract("Is train 12259 running?", nil)

	assert.Empty(t, ents.PNR)
	assert.Equal(t, "12259", ents.TrainNumber)
}

func TestExtract_CurrencyAmountIsNotTrainNumber(t *testing.T) {
	cases := map[string]int{
		"my refund of rs 12000": 12000,
		"₹4,500 refund":         4500,
		"refund 4500 rupees":    4500,
		"inr 800 was deducted":  800,
	}

	for text, want := range cases {
		ents := NewExtractor().Extract(text, nil)
		assert.True(t, ents.HasAmount, text)
		assert.Equal(t, want, ents.Amount, text)
		assert.Empty(t, ents.TrainNumber, text)
	}
}

func TestExtract_BareAmount(t *testing.T) {
	ents := NewExtractor().Extract("refund 750", nil)

	assert.True(t, ents.HasAmount)
	assert.Equal(t, 750, ents.Amount)
}

func TestExtract_ContextualPNR(t *testing.T) {
	history := []string{"Check PNR 9876543210", "thanks"}

	ents := NewExtractor().Extract("cancel it", history)

	assert.Equal(t, "9876543210", ents.PNR)
	assert.True(t, ents.PNRFromContext)
}

func TestExtract_ContextualPNRNeedsCue(t *testing.T) {
	ents := NewExtractor().Extract("hello there", []string{"pnr 9876543210"})

	assert.Empty(t, ents.PNR)
}

func TestResolvePNRFromHistory(t *testing.T) {
	t.Run("newest wins", func(t *testing.T) {
		history := []string{"pnr 1111111111", "pnr 2222222222", "ok"}
		assert.Equal(t, "2222222222", ResolvePNRFromHistory(history))
	})

	t.Run("never looks past ten entries", func(t *testing.T) {
		history := []string{"pnr 1111111111"}
		for i := 0; i < 10; i++ {
			history = append(history, "something else")
		}
		assert.Empty(t, ResolvePNRFromHistory(history))

		history = history[1:]
		history[0] = "pnr 3333333333"
		assert.Equal(t, "3333333333", ResolvePNRFromHistory(history))
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, ResolvePNRFromHistory(nil))
	})
}

func TestExtractStations(t *testing.T) {
	cases := []struct {
		text string
		want *StationPair
	}{
		{"book ticket from new delhi to mumbai", &StationPair{From: "New Delhi", To: "Mumbai"}},
		{"ticket to mumbai from delhi", &StationPair{From: "Delhi", To: "Mumbai"}},
		{"Delhi to Mumbai", &StationPair{From: "Delhi", To: "Mumbai"}},
		{"i want to go delhi to mumbai", &StationPair{From: "Delhi", To: "Mumbai"}},
		{"patna se ranchi tak", &StationPair{From: "Patna", To: "Ranchi"}},
		{"check my pnr", nil},
	}

	for _, tc := range cases {
		got := ExtractStations(tc.text)
		if tc.want == nil {
			assert.Nil(t, got, tc.text)
			continue
		}
		require.NotNil(t, got, tc.text)
		assert.Equal(t, *tc.want, *got, tc.text)
	}
}

func classify(t *testing.T, text string, history []string, state DialogueState) string {
	t.Helper()
	ents := NewExtractor().Extract(text, history)
	return NewDefaultClassifier().Classify(text, ents, state)
}

func TestClassify_Tiers(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"Check PNR 1234567890", IntentPNRCheckDetailed},
		{"1234567890", IntentPNRCheckDetailed},
		{"refund status for 5555555555", IntentRefundStatusCheck},
		{"is the train on time for 1234567890", IntentTrainStatusCheck},
		{"Is train 12259 running?", IntentTrainStatusCheck},
		{"any alternative for 12259", IntentAlternativeTrains},
		{"12259 got cancelled", IntentCancelledTrainRefund},
		{"I want a refund", IntentRefundRequestInitial},
		{"refund", IntentRefundRequestInitial},
		{"my refund of rs 4500", IntentRefundAmountInquiry},
		{"calculate my refund", IntentRefundCalculator},
		{"show refund history", IntentRefundHistory},
		{"where is my refund", IntentRefundStatusCheck},
		{"how to file tdr", IntentTDRFiling},
		{"show alternative trains", IntentAlternativeTrains},
		{"partial cancellation of ticket", IntentPartialCancellation},
		{"hello", IntentGreeting},
		{"order food on train", IntentFoodOrdering},
		{"tatkal timings", IntentTatkalBooking},
		{"book ticket from delhi to mumbai", IntentTicketBookingWithDetails},
		{"i want to book a ticket", IntentTicketBooking},
		{"qwerty asdf", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, classify(t, tc.text, nil, DialogueState{}), tc.text)
	}
}

func TestClassify_OutOfContextWins(t *testing.T) {
	assert.Equal(t, IntentOutOfContext, classify(t, "weather today", nil, DialogueState{}))
	assert.Equal(t, IntentOutOfContext, classify(t, "weather today 1234567890", nil, DialogueState{}))
	assert.Equal(t, IntentOutOfContext, classify(t, "suggest a good movie", nil, DialogueState{}))
	assert.Equal(t, IntentOutOfContext, classify(t, "yes what is the weather", nil, DialogueState{Pending: PendingRefundRequest}))
}

func TestClassify_Affirmatives(t *testing.T) {
	cases := []struct {
		state DialogueState
		want  string
	}{
		{DialogueState{Pending: PendingRefundRequest}, IntentRefundRequestConfirm},
		{DialogueState{Pending: PendingTravelCredit}, IntentTravelCreditAccept},
		{DialogueState{LastIntent: IntentRefundRequestInitial}, IntentRefundRequestConfirm},
		{DialogueState{LastIntent: IntentRefundRequestConfirm}, IntentTravelCreditAccept},
		{DialogueState{LastIntent: IntentTDRFiling}, IntentTDRFilingContinue},
		{DialogueState{LastIntent: IntentRefundCalculator}, IntentRefundCalculator},
		{DialogueState{}, ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, classify(t, "yes", nil, tc.state), "%+v", tc.state)
	}
}

func TestClassify_TopicFollowUps(t *testing.T) {
	cases := []struct {
		text  string
		topic string
		want  string
	}{
		{"why?", TopicRefund, IntentRefundExplanation},
		{"why", TopicTrain, IntentTrainDelayExplanation},
		{"why", TopicTDR, IntentTDRExplanation},
		{"how does it work", TopicRefund, IntentRefundProcessExplanation},
		{"how", TopicTDR, IntentTDRFiling},
		{"what are the rules", TopicRefund, IntentRefundRulesExplanation},
		{"tell me more", TopicRefund, IntentRefundRulesExplanation},
	}

	for _, tc := range cases {
		got := classify(t, tc.text, nil, DialogueState{LastTopic: tc.topic})
		assert.Equal(t, tc.want, got, tc.text)
	}
}

func TestClassify_ContextualCancel(t *testing.T) {
	history := []string{"Check PNR 9876543210"}
	state := DialogueState{LastIntent: IntentPNRCheckDetailed, LastTopic: TopicBooking}

	ents := NewExtractor().Extract("cancel it", history)
	require.Equal(t, "9876543210", ents.PNR)

	assert.Equal(t, IntentCancellation, NewDefaultClassifier().Classify("cancel it", ents, state))
}

func TestClassifier_Definition(t *testing.T) {
	c := NewDefaultClassifier()

	d, ok := c.Definition(IntentGreeting)
	require.True(t, ok)
	assert.Len(t, d.FollowUp, 4)
	assert.NotEmpty(t, d.Responses)

	_, ok = c.Definition("nope")
	assert.False(t, ok)
}

func TestClassifier_RequiredIdentifiers(t *testing.T) {
	c := NewDefaultClassifier()

	for name, want := range map[string][2]bool{
		IntentPNRCheckDetailed:     {true, false},
		IntentRefundStatusCheck:    {true, false},
		IntentTrainStatusCheck:     {false, true},
		IntentCancellation:         {false, false},
		IntentCancelledTrainRefund: {false, false},
	} {
		d, ok := c.Definition(name)
		require.True(t, ok, name)
		assert.Equal(t, want[0], d.RequiresPNR, name)
		assert.Equal(t, want[1], d.RequiresTrainNumber, name)
	}
}

func TestDefaultIntents_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range DefaultIntents() {
		assert.False(t, seen[d.Name], d.Name)
		seen[d.Name] = true
	}
}

func TestTopicFor(t *testing.T) {
	assert.Equal(t, TopicRefund, TopicFor(IntentRefundStatusCheck))
	assert.Equal(t, TopicTDR, TopicFor(IntentTDRFiling))
	assert.Equal(t, TopicTrain, TopicFor(IntentTrainStatusCheck))
	assert.Equal(t, TopicBooking, TopicFor(IntentPNRCheckDetailed))
	assert.Empty(t, TopicFor(IntentGreeting))
}

func TestDetectTopics(t *testing.T) {
	labels := DetectTopics("Why was my refund for 1234567890 rejected?")

	assert.True(t, HasLabel(labels, LabelPNRCheck))
	assert.True(t, HasLabel(labels, LabelRefund))
	assert.True(t, HasLabel(labels, LabelExplanation))
	assert.False(t, HasLabel(labels, LabelTatkal))

	assert.Empty(t, DetectTopics("qwerty"))
}
