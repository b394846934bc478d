package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecked(t *testing.T) {
	text, err := Checked("Hello")
	require.NoError(t, err)
	assert.Equal(t, "Hello", text)

	_, err = Checked("  \n ")
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}
