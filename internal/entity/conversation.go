package entity

import "time"

const MaxHistoryEntries = 50

type Topic string

const (
	TopicNone    Topic = ""
	TopicRefund  Topic = "refund"
	TopicBooking Topic = "booking"
	TopicTrain   Topic = "train"
	TopicTDR     Topic = "tdr"
)

type PendingType string

const (
	PendingRefundRequest PendingType = "refund_request"
	PendingTravelCredit  PendingType = "travel_credit"
)

type PendingConfirmation struct {
	Type      PendingType `json:"type"`
	Amount    int         `json:"amount"`
	PNR       string      `json:"pnr"`
	Initiated bool        `json:"initiated"`
}

type HistoryEntry struct {
	UserMessage string    `json:"userMessage"`
	Intent      string    `json:"intent"`
	Timestamp   time.Time `json:"timestamp"`
}

// ConversationContext is the per-session dialogue state.
type ConversationContext struct {
	SessionID           string               `json:"sessionId"`
	LastIntent          string               `json:"lastIntent,omitempty"`
	LastPNR             string               `json:"lastPnr,omitempty"`
	LastTrainNumber     string               `json:"lastTrainNumber,omitempty"`
	LastTopic           Topic                `json:"lastTopic,omitempty"`
	LastRichContent     *RichContentEnvelope `json:"lastRichContent,omitempty"`
	History             []HistoryEntry       `json:"history"`
	PendingConfirmation *PendingConfirmation `json:"pendingConfirmation,omitempty"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

func NewConversationContext(sessionID string) *ConversationContext {
	return &ConversationContext{
		SessionID: sessionID,
		History:   make([]HistoryEntry, 0),
	}
}

// Append records a processed message, evicting the oldest entries beyond
// MaxHistoryEntries.
func (c *ConversationContext) Append(message, intent string, at time.Time) {
	c.History = append(c.History, HistoryEntry{
		UserMessage: message,
		Intent:      intent,
		Timestamp:   at,
	})
	if overflow := len(c.History) - MaxHistoryEntries; overflow > 0 {
		trimmed := make([]HistoryEntry, MaxHistoryEntries)
		copy(trimmed, c.History[overflow:])
		c.History = trimmed
	}
	c.UpdatedAt = at
}

// RecentMessages returns up to n user messages, newest last.
func (c *ConversationContext) RecentMessages(n int) []string {
	start := len(c.History) - n
	if start < 0 {
		start = 0
	}
	out := make([]string, 0, len(c.History)-start)
	for _, h := range c.History[start:] {
		out = append(out, h.UserMessage)
	}
	return out
}

func (c *ConversationContext) HasPending(t PendingType) bool {
	return c.PendingConfirmation != nil && c.PendingConfirmation.Type == t
}

func (c *ConversationContext) ClearPending() {
	c.PendingConfirmation = nil
}

type TranscriptRole string

const (
	RoleUser TranscriptRole = "user"
	RoleBot  TranscriptRole = "bot"
)

type TranscriptMessage struct {
	ID          string               `json:"id"`
	Role        TranscriptRole       `json:"role"`
	Content     string               `json:"content"`
	Timestamp   time.Time            `json:"timestamp"`
	Link        string               `json:"link,omitempty"`
	RichContent *RichContentEnvelope `json:"richContent,omitempty"`
}
