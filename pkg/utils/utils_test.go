package utils

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewULIDFromTimestamp(t *testing.T) {
	at := time.Date(2026, 1, 18, 15, 30, 0, 0, time.UTC)

	id, err := New().NewULIDFromTimestamp(at)
	require.NoError(t, err)

	parsed, err := ulid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(at), parsed.Time())
}

func TestNewSessionID(t *testing.T) {
	u := New()
	a, b := u.NewSessionID(), u.NewSessionID()

	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
