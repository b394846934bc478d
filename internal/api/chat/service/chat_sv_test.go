package chatService

import (
	bookingRepository "DishaAssistant/internal/api/booking/repository"
	bookingService "DishaAssistant/internal/api/booking/service"
	"DishaAssistant/internal/api/chat"
	chatRepository "DishaAssistant/internal/api/chat/repository"
	"DishaAssistant/internal/entity"
	"DishaAssistant/pkg/llm"
	"DishaAssistant/pkg/nlp"
	"DishaAssistant/pkg/storage"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 20, 12, 0, 0, 0, time.UTC)

type stubCompleter struct {
	mu    sync.Mutex
	text  string
	err   error
	block bool
	calls int
	last  llm.Request
}

func (s *stubCompleter) Name() string { return "stub" }

func (s *stubCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	s.mu.Lock()
	s.calls++
	s.last = req
	s.mu.Unlock()

	if s.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

type fixture struct {
	svc      IChatService
	impl     *chatService
	bookings bookingService.IBookingService
	chatRepo chatRepository.Repository
}

func newFixture(t *testing.T, completer llm.ICompleter, timeout time.Duration) fixture {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	store := storage.NewMemory()
	bs := bookingService.NewBookingServiceWithClock(logger, bookingRepository.New(store, logger), func() time.Time { return fixedNow })
	cr := chatRepository.New(store, logger, time.Hour)

	svc := NewChatService(logger, cr, bs, completer, Config{
		LLMTimeout: timeout,
		Now:        func() time.Time { return fixedNow },
		Pick:       func(int) int { return 0 },
	})

	return fixture{svc: svc, impl: svc.(*chatService), bookings: bs, chatRepo: cr}
}

func send(t *testing.T, svc IChatService, sessionID, message string) chat.ChatResponse {
	t.Helper()
	resp, err := svc.ProcessMessage(context.Background(), chat.ChatRequest{Message: message, SessionID: sessionID})
	require.NoError(t, err)
	return resp
}

func TestProcessMessage_PNRDetails(t *testing.T) {
	f := newFixture(t, nil, 0)

	resp := send(t, f.svc, "s1", "Check PNR 1234567890")

	require.NotNil(t, resp.RichContent)
	assert.Equal(t, entity.RichContentPNRDetails, resp.RichContent.Type)
	b, ok := resp.RichContent.Data.(entity.Booking)
	require.True(t, ok)
	assert.Equal(t, "12301", b.TrainNumber)
	assert.Equal(t, entity.BookingStatusConfirmed, b.Status)
	assert.Equal(t, nlp.IntentPNRCheckDetailed, resp.Intent)
	assert.False(t, resp.Fallback)
}

func TestProcessMessage_TrainStatus(t *testing.T) {
	f := newFixture(t, nil, 0)

	resp := send(t, f.svc, "s1", "Is train 12259 running?")

	require.NotNil(t, resp.RichContent)
	assert.Equal(t, entity.RichContentTrainStatus, resp.RichContent.Type)
	train, ok := resp.RichContent.Data.(entity.TrainStatus)
	require.True(t, ok)
	assert.Equal(t, entity.TrainStateCancelled, train.Status)
}

func TestProcessMessage_TypedTrainBeatsRememberedPNR(t *testing.T) {
	f := newFixture(t, nil, 0)

	send(t, f.svc, "s1", "Check PNR 9876543210")
	resp := send(t, f.svc, "s1", "Is my train 12301 running?")

	assert.Equal(t, "Train 12301 status:", resp.Response)
	require.NotNil(t, resp.RichContent)
	train, ok := resp.RichContent.Data.(entity.TrainStatus)
	require.True(t, ok)
	assert.Equal(t, "12301", train.TrainNumber)

	// Without a typed number the booking's train is used.
	conv := entity.NewConversationContext("s2")
	r := f.impl.generate(context.Background(), nlp.IntentTrainStatusCheck, nlp.Entities{PNR: "9876543210", PNRFromContext: true}, "is it running", conv)
	assert.Equal(t, "Train 12951 status:", r.text)
}

func TestProcessMessage_RejectedRefund(t *testing.T) {
	f := newFixture(t, nil, 0)

	resp := send(t, f.svc, "s1", "refund status for 5555555555")

	require.NotNil(t, resp.RichContent)
	assert.Equal(t, entity.RichContentRefundStatus, resp.RichContent.Type)
	rec, ok := resp.RichContent.Data.(entity.RefundRecord)
	require.True(t, ok)
	assert.Equal(t, entity.RefundStateRejected, rec.Status)
	assert.Equal(t, 0, rec.Amount)
	assert.Contains(t, resp.Response, "Premium Tatkal tickets aren't eligible")
}

func TestProcessMessage_OutOfContext(t *testing.T) {
	f := newFixture(t, nil, 0)

	for _, msg := range []string{"weather today", "weather today 1234567890"} {
		resp := send(t, f.svc, "s1", msg)
		assert.Equal(t, nlp.IntentOutOfContext, resp.Intent, msg)
		assert.Equal(t, nlp.OutOfContextResponse, resp.Response)
		assert.Nil(t, resp.RichContent)
	}
}

func TestProcessMessage_ContextualCancel(t *testing.T) {
	f := newFixture(t, nil, 0)

	send(t, f.svc, "s1", "Check PNR 9876543210")
	resp := send(t, f.svc, "s1", "cancel it")

	assert.Equal(t, nlp.IntentCancellation, resp.Intent)
	require.NotNil(t, resp.RichContent)
	b, ok := resp.RichContent.Data.(entity.Booking)
	require.True(t, ok)
	assert.Equal(t, "9876543210", b.PNR)
	assert.Contains(t, resp.Response, "₹3,188")

	// Previewing never cancels.
	after, _ := f.bookings.LookupBooking(context.Background(), "9876543210")
	assert.Equal(t, entity.BookingStatusConfirmed, after.Status)
}

func historyWithPNRAt(pairs int) []chat.HistoryMessage {
	h := []chat.HistoryMessage{{Text: "Check PNR 9876543210"}}
	for i := 0; i < pairs; i++ {
		h = append(h,
			chat.HistoryMessage{Text: "Here is what I found.", IsBot: true},
			chat.HistoryMessage{Text: "thanks"},
		)
	}
	return h
}

func TestProcessMessage_HistoryLookbackCountsBotTurns(t *testing.T) {
	f := newFixture(t, nil, 0)
	ctx := context.Background()

	// PNR message is the 11th entry back.
	resp, err := f.svc.ProcessMessage(ctx, chat.ChatRequest{
		Message:             "cancel it",
		SessionID:           "s1",
		ConversationHistory: historyWithPNRAt(5),
	})
	require.NoError(t, err)
	assert.Equal(t, nlp.IntentCancellation, resp.Intent)
	assert.Nil(t, resp.RichContent)
	assert.NotContains(t, resp.Response, "9876543210")

	// 9 entries back is still in reach.
	resp, err = f.svc.ProcessMessage(ctx, chat.ChatRequest{
		Message:             "cancel it",
		SessionID:           "s2",
		ConversationHistory: historyWithPNRAt(4),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.RichContent)
	b, ok := resp.RichContent.Data.(entity.Booking)
	require.True(t, ok)
	assert.Equal(t, "9876543210", b.PNR)
}

func TestUserHistory_KeepsUserTextsInWindow(t *testing.T) {
	got := userHistory(historyWithPNRAt(5), entity.NewConversationContext("s1"))
	assert.Len(t, got, 5)
	assert.NotContains(t, got, "Check PNR 9876543210")

	got = userHistory(historyWithPNRAt(4), entity.NewConversationContext("s1"))
	assert.Equal(t, "Check PNR 9876543210", got[0])
}

func TestProcessMessage_RefundDialogue(t *testing.T) {
	f := newFixture(t, nil, 0)

	first := send(t, f.svc, "s1", "I want a refund")
	assert.Equal(t, nlp.IntentRefundRequestInitial, first.Intent)
	assert.True(t, strings.HasPrefix(first.Response, "No worries. "), first.Response)
	assert.Contains(t, first.Response, "₹3,123")
	assert.Contains(t, first.Response, "Shall I proceed")

	conv, err := f.svc.GetContext(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, conv.PendingConfirmation)
	assert.Equal(t, entity.PendingRefundRequest, conv.PendingConfirmation.Type)
	assert.False(t, conv.PendingConfirmation.Initiated)

	second := send(t, f.svc, "s1", "yes")
	assert.Equal(t, nlp.IntentRefundRequestConfirm, second.Intent)
	assert.Contains(t, second.Response, "submitted")
	assert.Contains(t, second.Response, "travel credit of ₹156")

	conv, _ = f.svc.GetContext(context.Background(), "s1")
	require.NotNil(t, conv.PendingConfirmation)
	assert.Equal(t, entity.PendingTravelCredit, conv.PendingConfirmation.Type)
	assert.True(t, conv.PendingConfirmation.Initiated)

	third := send(t, f.svc, "s1", "yes")
	assert.Equal(t, nlp.IntentTravelCreditAccept, third.Intent)
	assert.NotContains(t, third.Response, "?")
	assert.Contains(t, third.Response, "₹156")
	assert.True(t, strings.HasSuffix(third.Response, "Let me know if you need anything else."), third.Response)

	conv, _ = f.svc.GetContext(context.Background(), "s1")
	assert.Nil(t, conv.PendingConfirmation)
}

func TestProcessMessage_RefundDialogueUsesLastPNR(t *testing.T) {
	f := newFixture(t, nil, 0)

	send(t, f.svc, "s1", "Check PNR 9876543210")
	resp := send(t, f.svc, "s1", "I want a refund")

	assert.Contains(t, resp.Response, "9876543210")
	assert.Contains(t, resp.Response, "₹3,850")
}

func TestProcessMessage_LostTrack(t *testing.T) {
	f := newFixture(t, nil, 0)
	ctx := context.Background()

	conv := entity.NewConversationContext("s1")
	conv.LastIntent = nlp.IntentRefundRequestInitial
	require.NoError(t, f.chatRepo.NewClient().Context.SaveContext(ctx, conv))

	resp := send(t, f.svc, "s1", "yes")
	assert.Equal(t, nlp.IntentRefundRequestConfirm, resp.Intent)
	assert.Equal(t, lostTrackResponse, resp.Response)
	assert.NotContains(t, resp.Response, "₹")
}

func TestGenerate_ConfirmWithoutPendingIsRecoverable(t *testing.T) {
	f := newFixture(t, nil, 0)
	conv := entity.NewConversationContext("s1")

	for _, intent := range []string{nlp.IntentRefundRequestConfirm, nlp.IntentTravelCreditAccept} {
		r := f.impl.generate(context.Background(), intent, nlp.Entities{}, "yes", conv)
		assert.Equal(t, lostTrackResponse, r.text)
		assert.Nil(t, conv.PendingConfirmation)
	}
}

func TestGenerate_PromptsListLiveDemoIDs(t *testing.T) {
	f := newFixture(t, nil, 0)
	ctx := context.Background()
	conv := entity.NewConversationContext("s1")

	pnr := f.impl.generate(ctx, nlp.IntentPNRCheckDetailed, nlp.Entities{}, "check pnr", conv)
	for _, id := range []string{"1234567890", "9876543210", "5555555555"} {
		assert.Contains(t, pnr.text, id)
	}
	assert.NotContains(t, pnr.text, "1111111111")

	train := f.impl.generate(ctx, nlp.IntentTrainStatusCheck, nlp.Entities{}, "train status", conv)
	assert.Contains(t, train.text, "- 12301: Running on time")
	assert.Contains(t, train.text, "- 12951: Delayed by 2 hours")
	assert.Contains(t, train.text, "- 12259: Cancelled")

	missing := f.impl.generate(ctx, nlp.IntentTrainStatusCheck, nlp.Entities{TrainNumber: "99999"}, "train 99999", conv)
	assert.Contains(t, missing.text, "Train 99999 not found")
	assert.Nil(t, missing.rich)
}

func TestGenerate_MissingIdentifierPrompts(t *testing.T) {
	f := newFixture(t, nil, 0)
	ctx := context.Background()
	conv := entity.NewConversationContext("s1")

	refund := f.impl.generate(ctx, nlp.IntentRefundStatusCheck, nlp.Entities{}, "where is my refund", conv)
	assert.True(t, strings.HasPrefix(refund.text, "Please provide your PNR to check refund status."))
	assert.Nil(t, refund.rich)
}

func TestProcessMessage_GreetingSuggestions(t *testing.T) {
	f := newFixture(t, nil, 0)

	resp := send(t, f.svc, "s1", "hello")
	assert.Equal(t, nlp.IntentGreeting, resp.Intent)
	assert.Equal(t, []string{"Check PNR Status", "Find Trains", "Cancellation Policy", "Tatkal Booking"}, resp.Suggestions)

	resp = send(t, f.svc, "s1", "Check PNR 1234567890")
	assert.Empty(t, resp.Suggestions)
}

func TestProcessMessage_CalculatorPrefill(t *testing.T) {
	f := newFixture(t, nil, 0)

	resp := send(t, f.svc, "s1", "calculate refund for ₹2000 sleeper ticket 24 hours before")

	require.NotNil(t, resp.RichContent)
	assert.Equal(t, entity.RichContentRefundCalculator, resp.RichContent.Type)
	est, ok := resp.RichContent.Data.(*entity.RefundEstimate)
	require.True(t, ok)
	assert.Equal(t, 1200, est.Refund)
	assert.Contains(t, resp.Response, "Refund: ₹1,200")
}

func TestProcessMessage_Unclassified(t *testing.T) {
	f := newFixture(t, nil, 0)

	resp := send(t, f.svc, "s1", "xyzzy plugh")
	assert.Empty(t, resp.Intent)
	assert.Equal(t, nlp.FallbackResponses[0], resp.Response)
}

func TestProcessMessage_EmptyMessage(t *testing.T) {
	f := newFixture(t, nil, 0)

	_, err := f.svc.ProcessMessage(context.Background(), chat.ChatRequest{Message: "   "})
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)
}

func TestProcessMessage_SessionLifecycle(t *testing.T) {
	f := newFixture(t, nil, 0)
	ctx := context.Background()

	resp := send(t, f.svc, "", "hello")
	require.NotEmpty(t, resp.SessionID)

	transcript, err := f.svc.GetTranscript(ctx, resp.SessionID)
	require.NoError(t, err)
	require.Len(t, transcript, 2)
	assert.Equal(t, entity.RoleUser, transcript[0].Role)
	assert.Equal(t, "hello", transcript[0].Content)
	assert.Equal(t, entity.RoleBot, transcript[1].Role)
	assert.Equal(t, resp.Response, transcript[1].Content)

	conv, err := f.svc.GetContext(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Len(t, conv.History, 1)

	require.NoError(t, f.svc.ClearSession(ctx, resp.SessionID))

	_, err = f.svc.GetContext(ctx, resp.SessionID)
	assert.ErrorIs(t, err, chat.ErrSessionNotFound)
	transcript, _ = f.svc.GetTranscript(ctx, resp.SessionID)
	assert.Empty(t, transcript)
}

func TestProcessMessage_CompletionText(t *testing.T) {
	stub := &stubCompleter{text: "Your Howrah Rajdhani booking is confirmed."}
	f := newFixture(t, stub, time.Second)

	resp, err := f.svc.ProcessMessage(context.Background(), chat.ChatRequest{
		Message:   "Check PNR 1234567890",
		SessionID: "s1",
		ConversationHistory: []chat.HistoryMessage{
			{Text: "hi", IsBot: false},
			{Text: "Hello! How can I help?", IsBot: true},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Your Howrah Rajdhani booking is confirmed.", resp.Response)
	assert.False(t, resp.Fallback)
	require.NotNil(t, resp.RichContent)
	assert.Equal(t, entity.RichContentPNRDetails, resp.RichContent.Type)

	require.Len(t, stub.last.Messages, 3)
	assert.Equal(t, llm.RoleAssistant, stub.last.Messages[1].Role)
	final := stub.last.Messages[2].Content
	assert.True(t, strings.HasPrefix(final, "Check PNR 1234567890"))
	assert.Contains(t, final, "[SYSTEM DATA - PNR 1234567890 FOUND]")
	assert.Contains(t, stub.last.System, "12301")
	assert.Contains(t, stub.last.System, "Premium Tatkal")
}

func TestProcessMessage_CompletionFailureFallsBack(t *testing.T) {
	stub := &stubCompleter{err: errors.New("502 bad gateway")}
	f := newFixture(t, stub, time.Second)

	resp := send(t, f.svc, "s1", "Check PNR 1234567890")

	assert.True(t, resp.Fallback)
	assert.Equal(t, "Booking found for PNR 1234567890:", resp.Response)
	require.NotNil(t, resp.RichContent)
	assert.Equal(t, entity.RichContentPNRDetails, resp.RichContent.Type)
}

func TestProcessMessage_CompletionTimeoutFallsBack(t *testing.T) {
	stub := &stubCompleter{block: true}
	f := newFixture(t, stub, 20*time.Millisecond)

	resp := send(t, f.svc, "s1", "Is train 12951 running?")

	assert.True(t, resp.Fallback)
	assert.Equal(t, "Train 12951 status:", resp.Response)
}

func TestProcessMessage_DialogueSkipsCompletion(t *testing.T) {
	stub := &stubCompleter{text: "should not be used"}
	f := newFixture(t, stub, time.Second)

	resp := send(t, f.svc, "s1", "I want a refund")
	assert.Contains(t, resp.Response, "Shall I proceed")

	resp = send(t, f.svc, "s1", "weather today")
	assert.Equal(t, nlp.OutOfContextResponse, resp.Response)

	assert.Equal(t, 0, stub.calls)
}

func TestComplete_WrapsProviderError(t *testing.T) {
	stub := &stubCompleter{err: errors.New("quota exceeded")}
	f := newFixture(t, stub, time.Second)
	conv := entity.NewConversationContext("s1")

	_, err := f.impl.complete(context.Background(), f.chatRepo.NewClient(), "hello", nil, nlp.Entities{}, conv)
	assert.ErrorIs(t, err, chat.ErrCompletion)
	assert.Contains(t, err.Error(), "quota exceeded")
}
