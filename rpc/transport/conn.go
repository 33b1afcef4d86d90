package transport

import (
	"context"
	"encoding/json"
)

// Connection is the low-level capability exposed by the duplex request
// manager to the rest of the package (and, through Transport, to the rest
// of the module). It is the contract the ABI/contract-binding, signer, and
// gas-middleware layers are written against; none of them know about ids,
// reconnection, or subscription aliasing.
type Connection interface {
	// RequestID returns the next id to use for a request. Ids are assigned
	// from a single monotonically increasing counter shared by every call
	// and subscription made through this connection and are never reused,
	// including across reconnects.
	RequestID() uint64

	// SendRawRequest dispatches a single JSON-RPC call and waits for its
	// matching response. Delivery is at-most-once and in order with
	// respect to the caller. Cancelling ctx (or the caller abandoning the
	// call) only stops the local wait; the request was already written to
	// the wire and any eventual response is discarded.
	SendRawRequest(ctx context.Context, id uint64, method string, params json.RawMessage) (json.RawMessage, error)
}

// DuplexConnection extends Connection with push subscriptions. It is
// implemented by the request manager behind the IPC and WebSocket
// transports, and by nothing else: HTTP has no push channel to multiplex.
type DuplexConnection interface {
	Connection

	// Subscribe starts a new subscription and returns the stable,
	// client-side subscription id together with the channel that will
	// receive raw notification payloads in the order the server sent
	// them. The channel is never closed by a reconnect; it is only closed
	// once Unsubscribe has been serviced (or the manager has shut down).
	Subscribe(ctx context.Context, params json.RawMessage) (clientSubID uint64, stream <-chan json.RawMessage, err error)

	// Unsubscribe requests removal of a subscription. It reports true only
	// if the server acknowledged the removal; the unsubscribe request is
	// sent regardless of whether the caller waits for the result.
	Unsubscribe(ctx context.Context, clientSubID uint64) (bool, error)
}
