package transport

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionManagerRegisterBindNotify(t *testing.T) {
	s := newSubscriptionManager(zerolog.Nop())

	req := s.register(1, json.RawMessage(`["newHeads"]`))
	assert.Equal(t, uint64(1), req.ID)
	assert.Equal(t, "eth_subscribe", req.Method)

	stream, ok := s.takeStream(1)
	require.True(t, ok)
	// Can only be taken once.
	_, ok = s.takeStream(1)
	assert.False(t, ok)

	require.NoError(t, s.bindSuccess(1, json.RawMessage(`"0xcd0c3e8af590364c09d0fa6a1210faf5"`)))

	s.handleNotification("0xcd0c3e8af590364c09d0fa6a1210faf5", json.RawMessage(`"foo"`))
	assert.Equal(t, json.RawMessage(`"foo"`), <-stream)
}

// A notification for a server id with no alias is dropped, not buffered.
func TestSubscriptionManagerDropsUnaliasedNotification(t *testing.T) {
	s := newSubscriptionManager(zerolog.Nop())
	// Should not panic or block; there is nothing registered at all.
	s.handleNotification("0xdeadbeef", json.RawMessage(`"ignored"`))
}

// bindSuccess on an id that was never registered (e.g. it already lost a
// race with an unsubscribe) is a no-op.
func TestSubscriptionManagerBindSuccessUnknownID(t *testing.T) {
	s := newSubscriptionManager(zerolog.Nop())
	require.NoError(t, s.bindSuccess(99, json.RawMessage(`"0x1"`)))
	assert.Empty(t, s.aliases)
}

func TestSubscriptionManagerBindSuccessMalformedServerID(t *testing.T) {
	s := newSubscriptionManager(zerolog.Nop())
	s.register(1, json.RawMessage(`["newHeads"]`))
	require.Error(t, s.bindSuccess(1, json.RawMessage(`"not-a-number"`)))
}

// The alias is cleared before a replay subscribe is sent and set again
// only when the replay succeeds.
func TestSubscriptionManagerReissueForReplayClearsAliases(t *testing.T) {
	s := newSubscriptionManager(zerolog.Nop())
	s.register(1, json.RawMessage(`["newHeads"]`))
	require.NoError(t, s.bindSuccess(1, json.RawMessage(`"0xaa"`)))

	reqs := s.reissueForReplay()
	require.Len(t, reqs, 1)
	assert.Equal(t, uint64(1), reqs[0].ID)
	assert.Equal(t, "eth_subscribe", reqs[0].Method)
	assert.JSONEq(t, `["newHeads"]`, string(reqs[0].Params))

	// The old alias is gone; a notification tagged with it is now
	// unaliased and dropped rather than delivered to the stale stream.
	s.handleNotification("0xaa", json.RawMessage(`"stray"`))
}

// endSubscription with a bound server id produces a fresh eth_unsubscribe
// frame and removes both the active subscription and its alias.
func TestSubscriptionManagerEndSubscriptionBound(t *testing.T) {
	s := newSubscriptionManager(zerolog.Nop())
	s.register(1, json.RawMessage(`["newHeads"]`))
	require.NoError(t, s.bindSuccess(1, json.RawMessage(`"0xaa"`)))

	req, sent := s.endSubscription(1, 2)
	require.True(t, sent)
	assert.Equal(t, uint64(2), req.ID)
	assert.Equal(t, "eth_unsubscribe", req.Method)
	assert.JSONEq(t, `["0xaa"]`, string(req.Params))

	assert.False(t, s.has(1))
}

// endSubscription on a subscribe that is still in flight (no bound
// server id yet) produces no frame.
func TestSubscriptionManagerEndSubscriptionUnbound(t *testing.T) {
	s := newSubscriptionManager(zerolog.Nop())
	s.register(1, json.RawMessage(`["newHeads"]`))

	_, sent := s.endSubscription(1, 2)
	assert.False(t, sent)
	assert.False(t, s.has(1))
}

// endSubscription on an unknown id (already removed, or never existed)
// is a no-op.
func TestSubscriptionManagerEndSubscriptionUnknown(t *testing.T) {
	s := newSubscriptionManager(zerolog.Nop())
	_, sent := s.endSubscription(42, 2)
	assert.False(t, sent)
}
