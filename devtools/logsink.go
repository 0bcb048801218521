package devtools

import (
	"github.com/sirupsen/logrus"

	"github.com/oldbig/redux-lite/logging"
	"github.com/oldbig/redux-lite/store"
)

// LogSink is a store.Sink that writes the action stream to the
// structured log instead of a remote monitor. Handy during development
// when running a monitor process is overkill.
type LogSink struct {
	name   string
	logger *logrus.Entry
}

// NewLogSink creates a log-backed sink under the given store name.
func NewLogSink(name string) *LogSink {
	if name == "" {
		name = "default"
	}
	return &LogSink{
		name:   name,
		logger: logging.NewLogger("devtools"),
	}
}

func (l *LogSink) Init(state store.State) {
	l.logger.WithFields(logrus.Fields{
		"store": l.name,
		"state": state,
	}).Info("store initialized")
}

func (l *LogSink) Send(action store.Action, state store.State) {
	l.logger.WithFields(logrus.Fields{
		"store":   l.name,
		"action":  action.Type,
		"partial": action.Partial,
	}).Debug("action dispatched")
}

func (l *LogSink) Disconnect() {
	l.logger.WithField("store", l.name).Info("store disconnected")
}
