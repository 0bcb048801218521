package devtools

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/oldbig/redux-lite/errors"
	"github.com/oldbig/redux-lite/logging"
	"github.com/oldbig/redux-lite/store"
)

// Options configures a remote sink connection.
type Options struct {
	// URL is the monitor websocket endpoint, e.g.
	// ws://127.0.0.1:9200/devtools.
	URL string
	// Store names this binding in the monitor. Defaults to "default".
	Store string
	// HandshakeTimeout bounds the dial. Defaults to 5s.
	HandshakeTimeout time.Duration
}

// RemoteSink forwards every dispatch to a monitor endpoint over a
// websocket. It implements store.Sink. Send failures are logged and
// otherwise swallowed: the bridge observes the store, it must never make
// dispatch fail.
type RemoteSink struct {
	name   string
	logger *logrus.Entry

	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// Connect dials the monitor endpoint and returns a sink ready to hand to
// store.WithSink. A monitor that is down is a connection error here, not
// a latent dispatch failure later.
func Connect(opts Options) (*RemoteSink, error) {
	if opts.Store == "" {
		opts.Store = "default"
	}
	timeout := opts.HandshakeTimeout
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	dialer := websocket.Dialer{HandshakeTimeout: timeout}
	conn, _, err := dialer.Dial(opts.URL, nil)
	if err != nil {
		return nil, errors.DevToolsUnavailable(opts.URL, err)
	}

	return &RemoteSink{
		name:   opts.Store,
		logger: logging.NewLogger("devtools"),
		conn:   conn,
	}, nil
}

// Init sends the effective initial state. Called once per binding.
func (r *RemoteSink) Init(state store.State) {
	r.write(Frame{
		Type:   FrameInit,
		Store:  r.name,
		State:  sanitizeState(state),
		SentAt: time.Now(),
	})
}

// Send forwards one dispatched action and the resulting state.
func (r *RemoteSink) Send(action store.Action, state store.State) {
	r.write(Frame{
		Type:   FrameAction,
		Store:  r.name,
		Action: toWireAction(action),
		State:  sanitizeState(state),
		SentAt: time.Now(),
	})
}

// Disconnect announces teardown and closes the connection. Idempotent.
func (r *RemoteSink) Disconnect() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	conn := r.conn
	r.mu.Unlock()

	frame := Frame{Type: FrameDisconnect, Store: r.name, SentAt: time.Now()}
	if err := conn.WriteJSON(frame); err != nil {
		r.logger.Debugf("disconnect frame not delivered: %v", err)
	}
	_ = conn.Close()
}

func (r *RemoteSink) write(frame Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	if err := r.conn.WriteJSON(frame); err != nil {
		r.logger.Warnf("dropping %s frame for store %s: %v", frame.Type, r.name, err)
	}
}
