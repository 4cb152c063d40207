package ws

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAfterCloseIsRejected(t *testing.T) {
	c := NewClient("k", nil)
	assert.True(t, c.Send([]byte("x")))

	c.Close()
	assert.False(t, c.Send([]byte("y")))
}

func TestCloseIsIdempotent(t *testing.T) {
	c := NewClient("k", nil)
	c.Close()
	c.Close()
	assert.False(t, c.Send([]byte("x")))
}

func TestSendJSONReportsDroppedPayloads(t *testing.T) {
	c := NewClient("k", nil)
	require.NoError(t, c.SendJSON(map[string]string{"type": "system"}))

	c.Close()
	assert.ErrorIs(t, c.SendJSON(map[string]string{"type": "system"}), ErrSendDropped)
}

func TestSendJSONReportsFullQueue(t *testing.T) {
	c := NewClient("k", nil)
	for i := 0; i < cap(c.send); i++ {
		require.True(t, c.Send([]byte("x")))
	}
	assert.ErrorIs(t, c.SendJSON("overflow"), ErrSendDropped)
}
