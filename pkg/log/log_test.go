package log

import (
	contextPkg "DishaAssistant/pkg/context"
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorWithTraceID_UsesRequestID(t *testing.T) {
	logger, hook := test.NewNullLogger()

	traceID := ErrorWithTraceID(logger.WithField("request_id", "req-42"), "boom")

	assert.Equal(t, "req-42", traceID)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "req-42", hook.LastEntry().Data["trace_id"])
}

func TestErrorWithTraceID_MintsWhenMissing(t *testing.T) {
	logger, hook := test.NewNullLogger()

	for _, entry := range []*logrus.Entry{
		logger.WithField("path", "/chat"),
		logger.WithField("request_id", "unknown"),
	} {
		traceID := ErrorWithTraceID(entry, "boom")
		_, err := uuid.Parse(traceID)
		assert.NoError(t, err)
		assert.Equal(t, traceID, hook.LastEntry().Data["trace_id"])
	}
}

func TestWithRequestID(t *testing.T) {
	logger, _ := test.NewNullLogger()

	ctx := contextPkg.WithSessionID(contextPkg.WithRequestID(context.Background(), "req-7"), "sess-1")
	entry := WithRequestID(logger, ctx)
	assert.Equal(t, "req-7", entry.Data["request_id"])
	assert.Equal(t, "sess-1", entry.Data["session_id"])

	bare := WithRequestID(logger, context.Background())
	assert.Equal(t, "unknown", bare.Data["request_id"])
	assert.NotContains(t, bare.Data, "session_id")
}
