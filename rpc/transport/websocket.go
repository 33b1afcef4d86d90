package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/defiweb/go-eth-duplex/types"
)

// Websocket is a Transport and SubscriptionTransport implementation that
// multiplexes calls and subscriptions over a single WebSocket connection,
// reconnecting and replaying active subscriptions transparently when the
// connection drops.
type Websocket struct {
	conn *duplexManager
	opts WebsocketOptions
}

// WebsocketOptions contains options for the websocket transport.
type WebsocketOptions struct {
	// Context used for the initial dial only; it does not bound the
	// lifetime of the connection once established.
	Context context.Context

	// URL of the websocket endpoint.
	URL string

	// HTTPClient is used for the handshake.
	HTTPClient *http.Client

	// HTTPHeader specifies the HTTP headers included in the handshake
	// request. Use BasicAuth or BearerAuth to populate an Authorization
	// header.
	HTTPHeader http.Header

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

// NewWebsocket creates a new Websocket instance and dials the connection
// once before returning.
func NewWebsocket(opts WebsocketOptions) (*Websocket, error) {
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
		return dialWebsocket(ctx, opts.URL, opts.HTTPClient, opts.HTTPHeader)
	}
	policy := reconnectPolicy{maxReconnects: opts.MaxReconnects}
	conn, err := newDuplexManager(opts.Context, opts.Logger, dial, policy)
	if err != nil {
		return nil, err
	}
	return &Websocket{conn: conn, opts: opts}, nil
}

// Call implements the Transport interface.
func (ws *Websocket) Call(ctx context.Context, result any, method string, args ...any) error {
	ctx, cancel := context.WithTimeout(ctx, ws.opts.Timeout)
	defer cancel()

	params, err := marshalArgs(args)
	if err != nil {
		return err
	}
	id := ws.conn.RequestID()
	raw, err := ws.conn.SendRawRequest(ctx, id, method, params)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	return json.Unmarshal(raw, result)
}

// Subscribe implements the SubscriptionTransport interface.
func (ws *Websocket) Subscribe(ctx context.Context, method string, args ...any) (chan json.RawMessage, string, error) {
	params, err := json.Marshal(append([]any{method}, args...))
	if err != nil {
		return nil, "", NewSerializationError(err)
	}
	clientID, stream, err := ws.conn.Subscribe(ctx, params)
	if err != nil {
		return nil, "", err
	}
	return forwardStream(stream), types.Uint64ToNumberPtr(clientID).String(), nil
}

// Unsubscribe implements the SubscriptionTransport interface.
func (ws *Websocket) Unsubscribe(ctx context.Context, id string) error {
	clientID := types.HexToNumberPtr(id).Big().Uint64()
	ok, err := ws.conn.Unsubscribe(ctx, clientID)
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
func (ws *Websocket) Close() error {
	return ws.conn.Close()
}

// BasicAuth renders an HTTP Basic Authorization header value for use in
// WebsocketOptions.HTTPHeader.
func BasicAuth(username, password string) string {
	return basicAuthHeader(username, password)
}

// BearerAuth renders an HTTP Bearer Authorization header value for use in
// WebsocketOptions.HTTPHeader.
func BearerAuth(token string) string {
	return "Bearer " + token
}
