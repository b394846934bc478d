package entity

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConversationContext_AppendKeepsMostRecent(t *testing.T) {
	c := NewConversationContext("s1")
	base := time.Date(2026, 1, 18, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 60; i++ {
		c.Append(fmt.Sprintf("message %d", i), "greeting", base.Add(time.Duration(i)*time.Second))
	}

	require.Len(t, c.History, MaxHistoryEntries)
	assert.Equal(t, "message 10", c.History[0].UserMessage)
	assert.Equal(t, "message 59", c.History[len(c.History)-1].UserMessage)
	for i := 1; i < len(c.History); i++ {
		assert.True(t, c.History[i-1].Timestamp.Before(c.History[i].Timestamp))
	}
}

func TestConversationContext_RecentMessages(t *testing.T) {
	c := NewConversationContext("s1")
	now := time.Now()
	c.Append("a", "", now)
	c.Append("b", "", now)
	c.Append("c", "", now)

	assert.Equal(t, []string{"b", "c"}, c.RecentMessages(2))
	assert.Equal(t, []string{"a", "b", "c"}, c.RecentMessages(10))
}

func TestStagesFor(t *testing.T) {
	tests := []struct {
		status RefundState
		want   RefundStages
	}{
		{RefundStateInitiated, RefundStages{Received: true}},
		{RefundStateRejected, RefundStages{Received: true}},
		{RefundStateApproved, RefundStages{Received: true, Approved: true}},
		{RefundStateProcessing, RefundStages{Received: true, Approved: true, Processing: true}},
		{RefundStateCredited, RefundStages{Received: true, Approved: true, Processing: true, Credited: true}},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, StagesFor(tt.status))
		})
	}
}

func TestRichContentEnvelope(t *testing.T) {
	env := RefundTimeline{TicketType: TimelineCounter}.Envelope()
	assert.Equal(t, RichContentRefundTimeline, env.Type)
	assert.Equal(t, "counter", env.TicketType)
	assert.Nil(t, env.Data)

	calc := RefundCalculator{}.Envelope()
	assert.Nil(t, calc.Data)
}
