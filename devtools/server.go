package devtools

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/oldbig/redux-lite/logging"
	"github.com/oldbig/redux-lite/store"
)

// Handler receives decoded monitor frames. Implementations must be safe
// for concurrent calls; each connected store runs on its own goroutine.
type Handler interface {
	HandleInit(storeName string, state store.State)
	HandleAction(storeName string, action store.Action, state store.State)
	HandleDisconnect(storeName string)
}

// Server is the receiving end of the DevTools bridge. It upgrades
// incoming websocket connections and feeds decoded frames to the
// handler. Used by the redux-monitor CLI; embeddable anywhere an
// http.Handler fits.
type Server struct {
	handler  Handler
	logger   *logrus.Entry
	upgrader websocket.Upgrader
}

// NewServer creates a monitor server delivering frames to handler.
func NewServer(handler Handler) *Server {
	return &Server{
		handler: handler,
		logger:  logging.NewLogger("devtools-server"),
	}
}

// ServeHTTP upgrades the connection and pumps frames until the peer goes
// away.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warnf("upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	s.logger.Debug("store connected")

	var connected string
	for {
		var frame Frame
		if err := conn.ReadJSON(&frame); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debugf("read ended: %v", err)
			}
			break
		}

		switch frame.Type {
		case FrameInit:
			connected = frame.Store
			s.handler.HandleInit(frame.Store, frame.State)
		case FrameAction:
			action := store.Action{}
			if frame.Action != nil {
				action = store.Action{
					Type:    frame.Action.Type,
					Payload: frame.Action.Payload,
					Partial: frame.Action.Partial,
				}
			}
			s.handler.HandleAction(frame.Store, action, frame.State)
		case FrameDisconnect:
			s.handler.HandleDisconnect(frame.Store)
			return
		default:
			s.logger.Warnf("unknown frame type %q from store %q", frame.Type, frame.Store)
		}
	}

	// Peer vanished without a disconnect frame.
	if connected != "" {
		s.handler.HandleDisconnect(connected)
	}
}

// ListenAndServe mounts the server at path and blocks serving addr.
func ListenAndServe(addr, path string, handler Handler) error {
	mux := http.NewServeMux()
	mux.Handle(path, NewServer(handler))
	return http.ListenAndServe(addr, mux)
}
