package transport

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/defiweb/go-eth-duplex/types"
)

// activeSub is the bookkeeping for one logical subscription, independent
// of the current connection. It lives from the moment the subscribe
// instruction is received until the client unsubscribes.
type activeSub struct {
	params   json.RawMessage        // original subscribe params, replayed verbatim on reconnect
	notify   chan<- json.RawMessage // producer side; closed by endSubscription
	serverID string                 // current server-assigned alias, hex-encoded; "" if unaliased
}

// subscriptionManager owns the client-id -> active-sub map, the
// server-id -> client-id alias table, and the shared
// client-id -> notification-stream map that the public client handle uses
// to retrieve the stream registered for a subscription once its id is
// known.
//
// subs and aliases are only ever touched from the request manager's single
// goroutine and so need no synchronization. chanMap is the one exception:
// it is read by whatever goroutine is waiting on a Subscribe() call, which
// is not the manager's own goroutine, so it is guarded by a plain mutex
// with no blocking work inside the critical section.
type subscriptionManager struct {
	log zerolog.Logger

	subs    map[uint64]*activeSub
	aliases map[string]uint64

	chanMu  sync.Mutex
	chanMap map[uint64]<-chan json.RawMessage
}

func newSubscriptionManager(log zerolog.Logger) *subscriptionManager {
	return &subscriptionManager{
		log:     log,
		subs:    make(map[uint64]*activeSub),
		aliases: make(map[string]uint64),
		chanMap: make(map[uint64]<-chan json.RawMessage),
	}
}

// has reports whether clientID names a currently active subscription.
func (s *subscriptionManager) has(clientID uint64) bool {
	_, ok := s.subs[clientID]
	return ok
}

// register creates the subscription's notification queue and records the
// active-sub entry. It must run before the subscribe frame is dispatched
// so that a notification arriving ahead of the subscribe's own success
// response is never lost; some servers start pushing before they write
// the acknowledgement.
func (s *subscriptionManager) register(clientID uint64, params json.RawMessage) request {
	notify, stream := unboundedChan[json.RawMessage]()
	s.subs[clientID] = &activeSub{params: params, notify: notify}

	s.chanMu.Lock()
	s.chanMap[clientID] = stream
	s.chanMu.Unlock()

	return newRawRequest(clientID, "eth_subscribe", params)
}

// takeStream removes and returns the notification stream registered for
// clientID. It is called by the public client handle once it learns the
// subscribe call succeeded, not by the manager's own goroutine.
func (s *subscriptionManager) takeStream(clientID uint64) (<-chan json.RawMessage, bool) {
	s.chanMu.Lock()
	defer s.chanMu.Unlock()
	ch, ok := s.chanMap[clientID]
	if ok {
		delete(s.chanMap, clientID)
	}
	return ch, ok
}

// bindSuccess is called when a success response arrives for an id that is
// a known subscribe id. It parses the result as a 256-bit hex server id
// and installs the alias; the server-assigned id stays internal, and the
// caller's Subscribe resolves to the stable client-side id instead.
func (s *subscriptionManager) bindSuccess(clientID uint64, rawResult json.RawMessage) error {
	entry, ok := s.subs[clientID]
	if !ok {
		return nil
	}
	var serverID types.Number
	if err := json.Unmarshal(rawResult, &serverID); err != nil {
		return NewProtocolError("subscribe result is not a 256-bit hex integer", err)
	}
	hex := serverID.String()
	s.aliases[hex] = clientID
	entry.serverID = hex
	return nil
}

// handleNotification is called for every notification frame. If no alias
// exists for the server id, the notification is logged and dropped, never
// buffered; the only legitimate cause is a subscription that has already
// been torn down. Otherwise it is handed to the subscription's queue,
// which never blocks: the queue is unbounded, and a subscription only
// ever goes away through an explicit Unsubscribe, which removes the alias
// synchronously before this method could observe it.
func (s *subscriptionManager) handleNotification(serverIDHex string, result json.RawMessage) {
	clientID, ok := s.aliases[serverIDHex]
	if !ok {
		s.log.Warn().Str("server_id", serverIDHex).Msg("notification for unaliased subscription, dropping")
		return
	}
	entry, ok := s.subs[clientID]
	if !ok {
		// Aliases are removed together with their subscription, so this
		// should be unreachable; repair the table rather than panic on
		// server input.
		s.log.Warn().Str("server_id", serverIDHex).Uint64("client_id", clientID).
			Msg("alias pointed at a missing subscription, dropping")
		delete(s.aliases, serverIDHex)
		return
	}
	entry.notify <- result
}

// endSubscription removes the active-sub entry, closes its notification
// channel, and, if a server-id alias was bound, synthesizes an
// eth_unsubscribe frame using freshID (allocated by the request manager's
// id counter). If the subscribe was still in flight (no bound server id
// yet), no frame is produced; the eventual subscribe success response
// will find no entry and will itself be dropped.
func (s *subscriptionManager) endSubscription(clientID, freshID uint64) (request, bool) {
	entry, ok := s.subs[clientID]
	if !ok {
		return request{}, false
	}
	delete(s.subs, clientID)
	close(entry.notify)

	if entry.serverID == "" {
		return request{}, false
	}
	delete(s.aliases, entry.serverID)

	params, err := json.Marshal([1]string{entry.serverID})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to serialize eth_unsubscribe params")
		return request{}, false
	}
	return newRawRequest(freshID, "eth_unsubscribe", params), true
}

// closeAll closes every active subscription's notification channel and
// clears all state, including streams registered but not yet taken. Called
// once, when the request manager shuts down for good.
func (s *subscriptionManager) closeAll() {
	for id, entry := range s.subs {
		close(entry.notify)
		delete(s.subs, id)
	}
	s.aliases = make(map[string]uint64)

	s.chanMu.Lock()
	s.chanMap = make(map[uint64]<-chan json.RawMessage)
	s.chanMu.Unlock()
}

// reissueForReplay returns a fresh eth_subscribe frame, reusing the
// client-side id, for every active subscription, and clears every bound
// server-id alias as it goes: the alias must be gone before the replayed
// subscribe hits the wire.
func (s *subscriptionManager) reissueForReplay() []request {
	reqs := make([]request, 0, len(s.subs))
	for id, entry := range s.subs {
		entry.serverID = ""
		reqs = append(reqs, newRawRequest(id, "eth_subscribe", entry.params))
	}
	s.aliases = make(map[string]uint64)
	return reqs
}
