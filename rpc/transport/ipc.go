package transport

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"github.com/defiweb/go-eth-duplex/types"
)

// IPC is a Transport and SubscriptionTransport implementation that
// multiplexes calls and subscriptions over a single Unix domain socket,
// reconnecting and replaying active subscriptions transparently when the
// socket drops.
type IPC struct {
	conn *duplexManager
	opts IPCOptions
}

// IPCOptions contains options for the IPC transport.
type IPCOptions struct {
	// Context used for the initial dial only; it does not bound the
	// lifetime of the connection once established.
	Context context.Context

	// Path is the path to the IPC socket.
	Path string

	// Timeout is the timeout for individual requests. Default is 60s.
	Timeout time.Duration

	// Logger receives structured diagnostics about reconnects and dropped
	// frames. The zero value discards them.
	Logger zerolog.Logger

	// MaxReconnects bounds how many total reconnection events the transport
	// will go through over its life before giving up on every pending call.
	// Each dropped connection that is successfully replaced spends one,
	// whether or not it was preceded by other disconnects. Default is 5.
	MaxReconnects int
}

// NewIPC creates a new IPC instance and dials the socket once before
// returning.
func NewIPC(opts IPCOptions) (*IPC, error) {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.MaxReconnects == 0 {
		opts.MaxReconnects = 5
	}

	dial := func(ctx context.Context) (*backendDriver, error) {
		return dialIPC(ctx, opts.Path)
	}
	policy := reconnectPolicy{maxReconnects: opts.MaxReconnects}
	conn, err := newDuplexManager(opts.Context, opts.Logger, dial, policy)
	if err != nil {
		return nil, err
	}
	return &IPC{conn: conn, opts: opts}, nil
}

// Call implements the Transport interface.
func (i *IPC) Call(ctx context.Context, result any, method string, args ...any) error {
	ctx, cancel := context.WithTimeout(ctx, i.opts.Timeout)
	defer cancel()

	params, err := marshalArgs(args)
	if err != nil {
		return err
	}
	id := i.conn.RequestID()
	raw, err := i.conn.SendRawRequest(ctx, id, method, params)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return json.Unmarshal(raw, result)
}

// Subscribe implements the SubscriptionTransport interface.
func (i *IPC) Subscribe(ctx context.Context, method string, args ...any) (chan json.RawMessage, string, error) {
	params, err := json.Marshal(append([]any{method}, args...))
	if err != nil {
		return nil, "", NewSerializationError(err)
	}
	clientID, stream, err := i.conn.Subscribe(ctx, params)
	if err != nil {
		return nil, "", err
	}
	return forwardStream(stream), types.Uint64ToNumberPtr(clientID).String(), nil
}

// Unsubscribe implements the SubscriptionTransport interface.
func (i *IPC) Unsubscribe(ctx context.Context, id string) error {
	clientID := types.HexToNumberPtr(id).Big().Uint64()
	ok, err := i.conn.Unsubscribe(ctx, clientID)
	if err != nil {
		return err
	}
	if !ok {
		return NewProtocolError("server did not acknowledge unsubscribe", nil)
	}
	return nil
}

// Close shuts the transport down, failing every pending call and closing
// every open subscription stream.
func (i *IPC) Close() error {
	return i.conn.Close()
}
