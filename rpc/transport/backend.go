package transport

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"runtime"
	"sync"

	"nhooyr.io/websocket"
)

// backendDriver is the driver handle the request manager holds for one
// connection: an outbound channel for frames to write, an inbound
// channel of frames the backend has parsed off the wire, and an error
// one-shot that fires exactly once when the connection becomes unusable.
//
// Both channels are logically unbounded: the manager is the sole
// producer on outbound and the sole consumer on inbound, and neither side
// should ever block on the other's pace. Go channels are bounded by
// construction, so outbound/inbound are backed by unboundedChan, a small
// growable-queue goroutine rather than a fixed-size buffer.
type backendDriver struct {
	outbound chan<- []byte // frames to write, produced by the manager
	inbound  <-chan []byte // frames read off the wire, consumed by the manager
	errCh    chan error    // fires at most once

	shutdownOnce sync.Once
	shutdownFn   func()
}

// shutdown drops both halves of the backend. It is safe to call multiple
// times and from multiple goroutines.
func (b *backendDriver) shutdown() {
	b.shutdownOnce.Do(func() {
		if b.shutdownFn != nil {
			b.shutdownFn()
		}
	})
}

// unboundedChan returns a send side and a receive side backed by an
// internal growable queue: sends on in never block waiting for a reader of
// out, so the backend's write half can stay ahead of its read half without
// risking a deadlock between the two when both are driven from the same
// select loop.
func unboundedChan[T any]() (chan<- T, <-chan T) {
	in := make(chan T)
	out := make(chan T)
	go func() {
		defer close(out)
		var queue []T
		for {
			if len(queue) == 0 {
				v, ok := <-in
				if !ok {
					return
				}
				queue = append(queue, v)
				continue
			}
			select {
			case v, ok := <-in:
				if !ok {
					for _, q := range queue {
						out <- q
					}
					return
				}
				queue = append(queue, v)
			case out <- queue[0]:
				queue = queue[1:]
			}
		}
	}()
	return in, out
}

// dialIPC opens the Unix domain socket at path and starts its read and
// write loops. The reader runs on a dedicated, OS-thread-locked goroutine
// so its blocking reads never park a pooled OS thread that other
// goroutines need.
func dialIPC(ctx context.Context, path string) (*backendDriver, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", path)
	if err != nil {
		return nil, NewTransportError("dial", err)
	}

	outIn, outOut := unboundedChan[[]byte]()
	inIn, inOut := unboundedChan[[]byte]()
	errCh := make(chan error, 1)

	b := &backendDriver{
		outbound: outIn,
		inbound:  inOut,
		errCh:    errCh,
		shutdownFn: func() {
			_ = conn.Close()
			close(outIn)
		},
	}

	go ipcReadLoop(conn, inIn, errCh)
	go ipcWriteLoop(conn, outOut, errCh)

	return b, nil
}

func ipcReadLoop(conn net.Conn, inbound chan<- []byte, errCh chan error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(inbound)

	dec := json.NewDecoder(conn)
	for {
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				err = ErrServerExit
			}
			select {
			case errCh <- NewTransportError("read", err):
			default:
			}
			return
		}
		inbound <- raw
	}
}

func ipcWriteLoop(conn net.Conn, outbound <-chan []byte, errCh chan error) {
	for frame := range outbound {
		if _, err := conn.Write(frame); err != nil {
			select {
			case errCh <- NewTransportError("write", err):
			default:
			}
			return
		}
	}
}

// dialWebsocket opens a WebSocket connection and starts its read and write
// loops. It uses the low-level Conn.Read/Conn.Write API rather than the
// wsjson helpers so that a binary frame, never valid for JSON-RPC, can be
// rejected as a protocol error instead of silently accepted.
func dialWebsocket(ctx context.Context, url string, httpClient *http.Client, header http.Header) (*backendDriver, error) {
	conn, _, err := websocket.Dial(ctx, url, &websocket.DialOptions{
		HTTPClient: httpClient,
		HTTPHeader: header,
	})
	if err != nil {
		return nil, NewTransportError("dial", err)
	}

	outIn, outOut := unboundedChan[[]byte]()
	inIn, inOut := unboundedChan[[]byte]()
	errCh := make(chan error, 1)

	b := &backendDriver{
		outbound: outIn,
		inbound:  inOut,
		errCh:    errCh,
		shutdownFn: func() {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			close(outIn)
		},
	}

	go wsReadLoop(conn, inIn, errCh)
	go wsWriteLoop(conn, outOut, errCh)

	return b, nil
}

func wsReadLoop(conn *websocket.Conn, inbound chan<- []byte, errCh chan error) {
	defer close(inbound)
	// The background context is used deliberately: canceling a context
	// passed to Conn.Read makes nhooyr.io/websocket close the connection
	// with a 1008 policy-violation code, which would misrepresent why the
	// connection actually ended.
	ctx := context.Background()
	for {
		kind, data, err := conn.Read(ctx)
		if err != nil {
			if websocket.CloseStatus(err) != -1 {
				err = ErrServerExit
			}
			select {
			case errCh <- NewTransportError("read", err):
			default:
			}
			return
		}
		if kind != websocket.MessageText {
			select {
			case errCh <- NewProtocolError("binary websocket frame is not valid JSON-RPC", nil):
			default:
			}
			return
		}
		inbound <- data
	}
}

func wsWriteLoop(conn *websocket.Conn, outbound <-chan []byte, errCh chan error) {
	ctx := context.Background()
	for frame := range outbound {
		if err := conn.Write(ctx, websocket.MessageText, frame); err != nil {
			select {
			case errCh <- NewTransportError("write", err):
			default:
			}
			return
		}
	}
}

// forwardStream copies a receive-only notification stream onto a
// bidirectional channel, so DuplexConnection.Subscribe's internal stream -
// which must stay receive-only, since the subscription manager is its only
// legitimate sender - can be handed out through the SubscriptionTransport
// surface, where the existing channel type is bidirectional.
func forwardStream(in <-chan json.RawMessage) chan json.RawMessage {
	out := make(chan json.RawMessage)
	go func() {
		defer close(out)
		for v := range in {
			out <- v
		}
	}()
	return out
}
