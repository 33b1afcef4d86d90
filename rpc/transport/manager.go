package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// instrKind discriminates the three instructions the public client handle
// can send to the manager's loop.
type instrKind int

const (
	instrCall instrKind = iota
	instrSubscribe
	instrUnsubscribe
)

// instruction is a single unit of work handed to the manager's loop from
// whatever goroutine is calling SendRawRequest, Subscribe, or Unsubscribe.
type instruction struct {
	kind   instrKind
	id     uint64
	method string
	params json.RawMessage
	reply  chan instrReply
}

// instrReply is the outcome of an instruction, delivered back to the
// caller's goroutine over the instruction's own reply channel.
type instrReply struct {
	result json.RawMessage
	ok     bool
	err    error
}

// pendingReq is what the loop remembers about a request it is waiting on a
// response for. isSub marks an eth_subscribe call, so its success response
// is routed through the subscription manager's bind step instead of being
// handed back verbatim; isUnsub marks a synthesized eth_unsubscribe call,
// whose boolean result becomes the instrReply.ok the caller sees.
type pendingReq struct {
	reply   chan instrReply
	method  string
	params  json.RawMessage
	isSub   bool
	isUnsub bool
}

// dialFunc opens a fresh backend connection. It is called once up front
// and again on every reconnect.
type dialFunc func(ctx context.Context) (*backendDriver, error)

// reconnectPolicy bounds how many times the request manager will try to
// replace a failed backend over its entire lifetime: maxReconnects total
// reconnection events, not per-failure retries. A single failed dial is
// terminal.
type reconnectPolicy struct {
	maxReconnects int
}

// duplexManager multiplexes many in-flight calls and long-lived push
// subscriptions over a single connection. It is the single owner of a
// backend driver and a subscription manager, reachable only through the
// instruction channel so that all of its mutable state - the id counter
// aside - is confined to one goroutine.
type duplexManager struct {
	log zerolog.Logger
	id  string

	dial dialFunc

	// remainingReconnects is the persistent budget from reconnectPolicy:
	// decremented by exactly one on every call to reconnect, regardless
	// of whether that call succeeds, so it counts total reconnection
	// events over the manager's life - not dial attempts within a single
	// event. Only the run goroutine touches it.
	remainingReconnects int

	nextID uint64

	instrCh   chan instruction
	closeOnce sync.Once
	closed    chan struct{}
	termErr   error // set once, before closed is closed; read only after closed fires

	subs *subscriptionManager
}

// newDuplexManager dials the first backend and starts the manager's loop.
// The loop owns the backend from this point forward; ctx governs only the
// initial dial.
func newDuplexManager(ctx context.Context, log zerolog.Logger, dial dialFunc, policy reconnectPolicy) (*duplexManager, error) {
	backend, err := dial(ctx)
	if err != nil {
		return nil, err
	}
	m := &duplexManager{
		log:                 log,
		id:                  uuid.NewString(),
		dial:                dial,
		remainingReconnects: policy.maxReconnects,
		instrCh:             make(chan instruction),
		closed:              make(chan struct{}),
		subs:                newSubscriptionManager(log),
	}
	go m.run(backend)
	return m, nil
}

// RequestID implements Connection.
func (m *duplexManager) RequestID() uint64 {
	return atomic.AddUint64(&m.nextID, 1)
}

// SendRawRequest implements Connection.
func (m *duplexManager) SendRawRequest(ctx context.Context, id uint64, method string, params json.RawMessage) (json.RawMessage, error) {
	reply := make(chan instrReply, 1)
	instr := instruction{kind: instrCall, id: id, method: method, params: params, reply: reply}
	if err := m.send(ctx, instr); err != nil {
		return nil, err
	}
	select {
	case r := <-reply:
		return r.result, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Subscribe implements DuplexConnection.
func (m *duplexManager) Subscribe(ctx context.Context, params json.RawMessage) (uint64, <-chan json.RawMessage, error) {
	id := m.RequestID()
	reply := make(chan instrReply, 1)
	instr := instruction{kind: instrSubscribe, id: id, method: "eth_subscribe", params: params, reply: reply}
	if err := m.send(ctx, instr); err != nil {
		return 0, nil, err
	}
	select {
	case r := <-reply:
		if r.err != nil {
			return 0, nil, r.err
		}
		stream, ok := m.subs.takeStream(id)
		if !ok {
			return 0, nil, NewProtocolError("subscription stream was already consumed", nil)
		}
		return id, stream, nil
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	}
}

// Unsubscribe implements DuplexConnection.
func (m *duplexManager) Unsubscribe(ctx context.Context, clientSubID uint64) (bool, error) {
	reply := make(chan instrReply, 1)
	instr := instruction{kind: instrUnsubscribe, id: clientSubID, reply: reply}
	if err := m.send(ctx, instr); err != nil {
		return false, err
	}
	select {
	case r := <-reply:
		return r.ok, r.err
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

// Close shuts the manager down: the loop drops its backend and every
// pending caller, including any in-flight Subscribe/Unsubscribe, fails
// with ErrManagerClosed. instrCh is deliberately never closed - it has
// many concurrent senders, and closing a channel out from under them is a
// race; m.closed is the single-writer signal instead.
func (m *duplexManager) Close() error {
	m.terminate(ErrManagerClosed)
	return nil
}

// terminate arms m.closed so that every send() call already waiting, or
// made after this point, fails fast with err instead of blocking forever
// on an instruction channel nothing reads anymore. Only the first call
// has any effect.
func (m *duplexManager) terminate(err error) {
	m.closeOnce.Do(func() {
		m.termErr = err
		close(m.closed)
	})
}

func (m *duplexManager) send(ctx context.Context, instr instruction) error {
	select {
	case m.instrCh <- instr:
		return nil
	case <-m.closed:
		return m.termErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

// run is the manager's single goroutine. Every read of pending, every
// call into subs, and every send on backend.outbound happens here and
// nowhere else.
func (m *duplexManager) run(backend *backendDriver) {
	pending := make(map[uint64]pendingReq)

	defer func() {
		// backend is nil when the loop exits through a failed reconnect;
		// reconnect has already shut the old one down in that case.
		if backend != nil {
			backend.shutdown()
		}
		m.terminate(ErrManagerClosed)
		m.failAll(pending, ErrManagerClosed)
		m.subs.closeAll()
	}()

	for {
		// Priority 1: frames already sitting in the backend's inbound queue.
		select {
		case raw, ok := <-backend.inbound:
			if !ok {
				var alive bool
				backend, alive = m.reconnect(backend, ErrDeadChannel, pending)
				if !alive {
					return
				}
				continue
			}
			m.handleFrame(raw, pending)
			continue
		default:
		}

		// Priority 2: the backend's error one-shot.
		select {
		case err := <-backend.errCh:
			var alive bool
			backend, alive = m.reconnect(backend, err, pending)
			if !alive {
				return
			}
			continue
		default:
		}

		// Priority 3: whichever of the three sources becomes ready first.
		select {
		case raw, ok := <-backend.inbound:
			if !ok {
				var alive bool
				backend, alive = m.reconnect(backend, ErrDeadChannel, pending)
				if !alive {
					return
				}
				continue
			}
			m.handleFrame(raw, pending)
		case err := <-backend.errCh:
			var alive bool
			backend, alive = m.reconnect(backend, err, pending)
			if !alive {
				return
			}
		case instr := <-m.instrCh:
			m.handleInstruction(instr, backend, pending)
		case <-m.closed:
			return
		}
	}
}

func (m *duplexManager) handleFrame(raw []byte, pending map[uint64]pendingReq) {
	msg, err := parseMessage(raw)
	if err != nil {
		m.log.Warn().Str("manager", m.id).Err(err).Msg("dropping frame that failed to parse")
		return
	}
	switch msg.Kind {
	case kindNotification:
		m.subs.handleNotification(msg.Params.Subscription.String(), msg.Params.Result)
	case kindSuccess:
		m.resolvePending(pending, msg.ID, msg.Result, nil)
	case kindError:
		m.resolvePending(pending, msg.ID, nil, NewRPCError(msg.Error.Code, msg.Error.Message, msg.Error.Data))
	default:
		m.log.Warn().Str("manager", m.id).Msg("dropping frame of unknown shape")
	}
}

func (m *duplexManager) resolvePending(pending map[uint64]pendingReq, id uint64, result json.RawMessage, err error) {
	p, ok := pending[id]
	if !ok {
		// A subscribe replayed after a reconnect has no pending entry and
		// no caller waiting on it, but its success response still carries
		// the fresh server id the alias table needs. Everything else with
		// no pending entry is an orphaned response.
		if err == nil && m.subs.has(id) {
			if bindErr := m.subs.bindSuccess(id, result); bindErr != nil {
				m.log.Warn().Str("manager", m.id).Uint64("id", id).Err(bindErr).
					Msg("failed to rebind replayed subscription")
			}
			return
		}
		m.log.Warn().Str("manager", m.id).Uint64("id", id).Msg("response for unknown request id, dropping")
		return
	}
	delete(pending, id)

	if err == nil && p.isSub {
		// The raw result is the server-assigned id, which never reaches
		// the caller; Subscribe resolves to the client-side id it chose.
		if bindErr := m.subs.bindSuccess(id, result); bindErr != nil {
			err = bindErr
		}
		result = nil
	}

	reply := instrReply{result: result, err: err, ok: err == nil}
	if p.isUnsub && err == nil {
		var ack bool
		if uerr := json.Unmarshal(result, &ack); uerr == nil {
			reply.ok = ack
		}
	}
	p.reply <- reply
}

// insertPending records a new in-flight request under id, panicking if one
// is already present. Ids come from a single monotonic counter and are
// never reused, so this can only fire on a programming error in this
// package, never on network input.
func insertPending(pending map[uint64]pendingReq, id uint64, p pendingReq) {
	if _, exists := pending[id]; exists {
		panic(fmt.Sprintf("transport: duplicate pending request id %d", id))
	}
	pending[id] = p
}

func (m *duplexManager) handleInstruction(instr instruction, backend *backendDriver, pending map[uint64]pendingReq) {
	switch instr.kind {
	case instrCall:
		req := newRawRequest(instr.id, instr.method, instr.params)
		data, err := json.Marshal(req)
		if err != nil {
			instr.reply <- instrReply{err: NewSerializationError(err)}
			return
		}
		insertPending(pending, instr.id, pendingReq{reply: instr.reply, method: instr.method, params: instr.params})
		backend.outbound <- data

	case instrSubscribe:
		req := m.subs.register(instr.id, instr.params)
		data, err := json.Marshal(req)
		if err != nil {
			instr.reply <- instrReply{err: NewSerializationError(err)}
			return
		}
		insertPending(pending, instr.id, pendingReq{reply: instr.reply, isSub: true})
		backend.outbound <- data

	case instrUnsubscribe:
		if !m.subs.has(instr.id) {
			instr.reply <- instrReply{ok: false}
			return
		}
		freshID := m.RequestID()
		req, sent := m.subs.endSubscription(instr.id, freshID)
		if !sent {
			instr.reply <- instrReply{ok: false}
			return
		}
		data, err := json.Marshal(req)
		if err != nil {
			instr.reply <- instrReply{err: NewSerializationError(err)}
			return
		}
		insertPending(pending, freshID, pendingReq{reply: instr.reply, isUnsub: true})
		backend.outbound <- data
	}
}

// reconnect replaces a failed backend, replays active subscriptions, and
// re-dispatches pending requests. It returns the replacement backend and
// true, or nil and false once the reconnect budget is exhausted, in which
// case every pending caller has already been failed with
// ErrTooManyReconnects.
func (m *duplexManager) reconnect(old *backendDriver, cause error, pending map[uint64]pendingReq) (*backendDriver, bool) {
	// The budget is a persistent, total count of reconnection events over
	// the manager's life, not a per-event retry count. Checked and
	// decremented once per call, before anything else - a manager that
	// reconnects successfully ten times and then fails an eleventh dial
	// has spent ten of its events, not zero.
	if m.remainingReconnects == 0 {
		old.shutdown()
		m.log.Error().Str("manager", m.id).Msg("reconnect budget exhausted")
		m.terminate(ErrTooManyReconnects)
		m.failAll(pending, ErrTooManyReconnects)
		return nil, false
	}
	m.remainingReconnects--

	m.log.Warn().Str("manager", m.id).Err(cause).
		Int("remaining", m.remainingReconnects).
		Msg("backend connection failed, reconnecting")

	// A single failed dial is terminal - there is no internal retry loop
	// or backoff here; the dial error propagates directly.
	backend, err := m.dial(context.Background())
	if err != nil {
		old.shutdown()
		m.log.Error().Str("manager", m.id).Err(err).Msg("reconnect dial failed")
		m.terminate(NewTransportError("reconnect", err))
		m.failAll(pending, NewTransportError("reconnect", err))
		return nil, false
	}

	m.log.Info().Str("manager", m.id).Msg("reconnected")

	// Drain whatever the old backend had already parsed off the wire
	// before tearing it down: the server may have written replies
	// before the disconnect was observed locally, and
	// those frames must still be delivered. The drain is non-blocking
	// rather than "range until closed" because a write-side failure
	// can leave the old read half still healthy and its inbound
	// channel never closing on its own; shutdown() right after forces
	// it closed either way.
drain:
	for {
		select {
		case raw, ok := <-old.inbound:
			if !ok {
				break drain
			}
			m.handleFrame(raw, pending)
		default:
			break drain
		}
	}
	old.shutdown()

	// Replay active subscriptions first: their client ids are reused,
	// and the subscription manager clears their server-side aliases as
	// it builds the frames.
	for _, req := range m.subs.reissueForReplay() {
		data, merr := json.Marshal(req)
		if merr != nil {
			m.log.Error().Str("manager", m.id).Err(merr).Msg("failed to serialize replayed subscribe")
			continue
		}
		backend.outbound <- data
	}

	// Re-dispatch every request that was still awaiting a response.
	// Subscribe calls are skipped: they were just replayed above
	// under the same client id, and a duplicate eth_subscribe for
	// that id would leave two server-side aliases pointing at one
	// local subscription. A pending unsubscribe is resolved locally
	// as not acknowledged: the connection it targeted is gone, so no
	// acknowledgement can arrive for it.
	for id, p := range pending {
		switch {
		case p.isSub:
			continue
		case p.isUnsub:
			p.reply <- instrReply{ok: false}
			delete(pending, id)
		default:
			req := newRawRequest(id, p.method, p.params)
			data, merr := json.Marshal(req)
			if merr != nil {
				p.reply <- instrReply{err: NewSerializationError(merr)}
				delete(pending, id)
				continue
			}
			backend.outbound <- data
		}
	}

	return backend, true
}

func (m *duplexManager) failAll(pending map[uint64]pendingReq, err error) {
	for id, p := range pending {
		p.reply <- instrReply{err: err}
		delete(pending, id)
	}
}
