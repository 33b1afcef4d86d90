package transport

import (
	"encoding/json"
	"fmt"

	"github.com/defiweb/go-eth-duplex/types"
)

// jsonrpcVersion is the only protocol version this package understands.
const jsonrpcVersion = "2.0"

// request is a JSON-RPC 2.0 request frame. Params is omitted from the wire
// entirely when the caller supplied no parameters.
type request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      uint64          `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

// marshalArgs JSON-encodes a variadic call argument list into params,
// leaving params nil when there are no arguments so it is omitted from the
// wire entirely.
func marshalArgs(args []any) (json.RawMessage, error) {
	if len(args) == 0 {
		return nil, nil
	}
	params, err := json.Marshal(args)
	if err != nil {
		return nil, NewSerializationError(err)
	}
	return params, nil
}

// newRequest builds a request frame, JSON-encoding params from a variadic
// argument list.
func newRequest(id uint64, method string, args []any) (request, error) {
	params, err := marshalArgs(args)
	if err != nil {
		return request{}, err
	}
	return request{JSONRPC: jsonrpcVersion, ID: id, Method: method, Params: params}, nil
}

// newRawRequest builds a request frame around already-serialized params,
// used by the duplex Connection capability which deals in raw JSON only.
func newRawRequest(id uint64, method string, params json.RawMessage) request {
	return request{JSONRPC: jsonrpcVersion, ID: id, Method: method, Params: params}
}

// rpcError is the JSON-RPC error object.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Error implements the error interface.
func (e *rpcError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// notificationParams is the inner "params" object of a subscription
// notification frame.
type notificationParams struct {
	Subscription types.Number    `json:"subscription"`
	Result       json.RawMessage `json:"result"`
}

// messageKind discriminates the three inbound frame shapes: success,
// error, and notification. JSON-RPC has no explicit tag for this, so the
// frame is parsed once into a generic shape and classified by which
// combination of fields is present.
type messageKind int

const (
	kindInvalid messageKind = iota
	kindSuccess
	kindError
	kindNotification
)

// message is an inbound frame, already classified into exactly one of
// Success, Error, or Notification. Any other combination of fields fails to
// parse.
type message struct {
	Kind   messageKind
	ID     uint64
	Result json.RawMessage
	Error  *rpcError
	Method string
	Params notificationParams
}

// wireMessage mirrors every field any of the three frame shapes can carry,
// so that a single json.Unmarshal can classify the frame by presence.
type wireMessage struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      *uint64         `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *rpcError       `json:"error"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

// parseMessage classifies a single raw JSON-RPC frame. It returns a
// ProtocolError for anything that is not exactly one of success, error, or
// notification.
func parseMessage(raw json.RawMessage) (message, error) {
	var w wireMessage
	if err := json.Unmarshal(raw, &w); err != nil {
		return message{}, NewProtocolError("malformed JSON-RPC frame", err)
	}
	if w.JSONRPC != jsonrpcVersion {
		return message{}, NewProtocolError(fmt.Sprintf("unsupported jsonrpc version %q", w.JSONRPC), nil)
	}

	hasResult := w.Result != nil
	hasError := w.Error != nil
	hasNotification := w.Method != "" && w.Params != nil

	switch {
	case w.ID != nil && hasResult && !hasError && !hasNotification:
		return message{Kind: kindSuccess, ID: *w.ID, Result: w.Result}, nil
	case w.ID != nil && hasError && !hasResult && !hasNotification:
		return message{Kind: kindError, ID: *w.ID, Error: w.Error}, nil
	case w.ID == nil && hasNotification && !hasResult && !hasError:
		var params notificationParams
		if err := json.Unmarshal(w.Params, &params); err != nil {
			return message{}, NewProtocolError("malformed subscription notification", err)
		}
		return message{Kind: kindNotification, Method: w.Method, Params: params}, nil
	default:
		return message{}, NewProtocolError("frame is neither a success/error response nor a notification", nil)
	}
}
