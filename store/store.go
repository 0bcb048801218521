package store

import (
	"sync"

	"github.com/oldbig/redux-lite/equality"
	"github.com/oldbig/redux-lite/errors"
)

// Sink receives every dispatched action together with the resulting
// state. It is the DevTools bridge contract: Init is called exactly once
// per binding with the effective initial state, Send once per dispatch
// (including reducer no-ops), Disconnect once when the binding closes.
type Sink interface {
	Init(state State)
	Send(action Action, state State)
	Disconnect()
}

// Option configures a Factory.
type Option func(*Factory)

// WithMiddleware appends middleware to the pipeline. The first middleware
// given is the outermost stage of every dispatch.
func WithMiddleware(middleware ...Middleware) Option {
	return func(f *Factory) {
		f.middleware = append(f.middleware, middleware...)
	}
}

// WithSink attaches a DevTools sink to every binding produced by the
// factory. Without it the DevTools path is a nil check per dispatch.
func WithSink(sink Sink) Option {
	return func(f *Factory) {
		f.sink = sink
	}
}

// Factory holds the immutable parts of a store: the definition, the
// unwrapped initial state, and the configured middleware and sink. It
// carries no runtime state itself; every Bind call produces a fully
// isolated binding instance, so two bindings from one factory never share
// anything mutable.
type Factory struct {
	def        Definition
	initial    State
	middleware []Middleware
	sink       Sink
}

// New creates a factory for the given definition. The initial state is
// unwrapped once, here.
func New(def Definition, opts ...Option) *Factory {
	f := &Factory{
		def:     def,
		initial: Unwrap(def),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// InitialState returns a copy of the unwrapped initial state.
func (f *Factory) InitialState() State {
	return f.initial.clone()
}

// Bind seeds a new binding instance. Overrides merge onto the initial
// state per MergeState semantics, in the order given. The dispatcher map
// is built here, once, by iterating the definition keys; the sink, if
// configured, receives Init with the effective initial state.
func (f *Factory) Bind(overrides ...Override) *Store {
	state := f.initial.clone()
	for _, override := range overrides {
		state = MergeState(state, override)
	}

	s := &Store{
		def:         f.def,
		state:       state,
		sink:        f.sink,
		watchers:    make(map[int]*watcher),
		subscribers: make(map[chan Commit]struct{}),
	}

	api := API{
		GetState: s.GetState,
		// Re-enters at the outermost stage so middleware-issued
		// dispatches pass through the whole chain again.
		Dispatch: func(action Action) Action {
			return s.dispatch(action)
		},
	}
	s.dispatch = composeMiddleware(f.middleware, api, s.commit)

	s.dispatchers = make(map[string]*Dispatcher, len(f.def))
	for _, key := range f.def.Keys() {
		s.dispatchers[key] = &Dispatcher{store: s, key: key}
	}

	if s.sink != nil {
		s.sink.Init(state)
	}
	return s
}

// Store is one binding instance: isolated state plus the composed
// dispatch chain and its observers. All mutation flows through the
// reducer; watchers and feed subscribers only observe.
//
// Dispatches from multiple goroutines serialize at the reducer, so state
// transitions are linearizable. Sink and watcher deliveries from
// concurrent dispatchers may interleave; only single-goroutine use sees
// them in commit order.
type Store struct {
	def         Definition
	sink        Sink
	dispatch    DispatchFunc
	dispatchers map[string]*Dispatcher

	mu     sync.Mutex
	state  State
	closed bool

	obsMu       sync.Mutex
	watchers    map[int]*watcher
	nextWatchID int
	subscribers map[chan Commit]struct{}
}

// GetState returns the current committed state. The returned map is the
// live reference, not a copy: reducer no-ops keep it identical between
// calls, which is what lets consumers skip work by comparing references.
// Treat it as read-only.
func (s *Store) GetState() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch sends an action through the middleware pipeline to the
// reducer. It is the generic entry point; the per-slice dispatchers and
// the typed accessor layer all funnel through here. Dispatch runs to
// completion synchronously and returns the action as it left the
// outermost middleware stage.
func (s *Store) Dispatch(action Action) (Action, error) {
	if s.isClosed() {
		return action, errors.StoreClosed()
	}
	return s.dispatch(action), nil
}

// Update dispatches a full replacement of the given slice. The payload
// may be a literal value or an Updater.
func (s *Store) Update(key string, payload interface{}) error {
	_, err := s.Dispatch(Action{Type: key, Payload: payload})
	return err
}

// UpdatePartial dispatches a shallow partial merge into the given slice.
// Non-record slices fall back to full replacement.
func (s *Store) UpdatePartial(key string, payload interface{}) error {
	_, err := s.Dispatch(Action{Type: key, Payload: payload, Partial: true})
	return err
}

// For returns the dispatcher generated for a declared slice.
func (s *Store) For(key string) (*Dispatcher, error) {
	d, ok := s.dispatchers[key]
	if !ok {
		return nil, errors.UnknownSlice(key)
	}
	return d, nil
}

// Dispatchers returns the slice-keyed dispatcher map built at bind time.
func (s *Store) Dispatchers() map[string]*Dispatcher {
	return s.dispatchers
}

// commit is the base of the middleware chain: it runs the reducer, swaps
// the state, and fans out notifications. The sink is notified on every
// dispatch, reducer no-op or not; watchers and feed subscribers only see
// actual changes.
func (s *Store) commit(action Action) Action {
	s.mu.Lock()
	next, changed := reduce(s.state, action)
	s.state = next
	s.mu.Unlock()

	if s.sink != nil {
		s.sink.Send(action, next)
	}
	if changed {
		s.notifyWatchers(next)
		s.broadcast(Commit{Action: action, State: next})
	}
	return action
}

func (s *Store) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// Close tears the binding down: watchers and feed subscribers are
// dropped, subscriber channels are closed, and the sink receives
// Disconnect. Further operations return ErrCodeStoreClosed. Close is
// idempotent.
func (s *Store) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.obsMu.Lock()
	s.watchers = make(map[int]*watcher)
	for ch := range s.subscribers {
		close(ch)
	}
	s.subscribers = make(map[chan Commit]struct{})
	s.obsMu.Unlock()

	if s.sink != nil {
		s.sink.Disconnect()
	}
}

// Subscribe creates a raw feed of committed updates, one Commit per
// state-changing dispatch. The channel is buffered and sends are
// non-blocking, so a slow consumer loses updates rather than stalling
// dispatch.
func (s *Store) Subscribe() (<-chan Commit, error) {
	if s.isClosed() {
		return nil, errors.StoreClosed()
	}
	ch := make(chan Commit, 100)
	s.obsMu.Lock()
	s.subscribers[ch] = struct{}{}
	s.obsMu.Unlock()
	return ch, nil
}

// Unsubscribe removes a feed subscription and closes its channel.
func (s *Store) Unsubscribe(ch <-chan Commit) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	for sub := range s.subscribers {
		if sub == ch {
			delete(s.subscribers, sub)
			close(sub)
			return
		}
	}
}

func (s *Store) broadcast(c Commit) {
	s.obsMu.Lock()
	defer s.obsMu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- c:
		default:
		}
	}
}

// watcher is one selector subscription: the derived-value cache plus the
// equality gate that decides whether the subscriber hears about a change.
type watcher struct {
	selector func(State) interface{}
	equals   func(a, b interface{}) bool
	notify   func(interface{})
	cached   interface{}
}

// WatchOption configures a single Watch call.
type WatchOption func(*watcher)

// WithEquality substitutes the equality function used to gate
// notifications for this watcher. The default is the deep comparison in
// the equality package; a custom function is the way out when derived
// values carry fields that do not compare structurally, such as
// closures.
func WithEquality(equals func(a, b interface{}) bool) WatchOption {
	return func(w *watcher) {
		w.equals = equals
	}
}

// Watch registers a selector subscription. On every committed change the
// selector is recomputed against the new state; notify fires only when
// the derived value differs from the cached one under the watcher's
// equality function. When the values compare equal the previous derived
// value is kept, preserving reference stability for downstream
// memoization. The returned cancel function removes the subscription.
//
// Watch on a closed binding is a usage error.
func (s *Store) Watch(selector func(State) interface{}, notify func(interface{}), opts ...WatchOption) (func(), error) {
	if s.isClosed() {
		return nil, errors.StoreClosed()
	}

	w := &watcher{
		selector: selector,
		equals:   equality.Equal,
		notify:   notify,
	}
	for _, opt := range opts {
		opt(w)
	}
	w.cached = selector(s.GetState())

	s.obsMu.Lock()
	id := s.nextWatchID
	s.nextWatchID++
	s.watchers[id] = w
	s.obsMu.Unlock()

	cancel := func() {
		s.obsMu.Lock()
		delete(s.watchers, id)
		s.obsMu.Unlock()
	}
	return cancel, nil
}

// notifyWatchers recomputes every registered selector against the new
// state. The watcher list is snapshotted first so a notify callback can
// dispatch or register watchers without deadlocking. The cached derived
// value is compared and swapped under obsMu, never while notify runs, so
// concurrent dispatchers cannot race on it and a notify callback can
// still dispatch.
func (s *Store) notifyWatchers(state State) {
	s.obsMu.Lock()
	snapshot := make([]*watcher, 0, len(s.watchers))
	for _, w := range s.watchers {
		snapshot = append(snapshot, w)
	}
	s.obsMu.Unlock()

	for _, w := range snapshot {
		fresh := w.selector(state)
		s.obsMu.Lock()
		if w.equals(w.cached, fresh) {
			s.obsMu.Unlock()
			continue
		}
		w.cached = fresh
		s.obsMu.Unlock()
		w.notify(fresh)
	}
}
