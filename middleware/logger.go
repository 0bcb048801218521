// Package middleware provides stock middleware for redux-lite stores:
// structured action logging and YAML state snapshots.
package middleware

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oldbig/redux-lite/logging"
	"github.com/oldbig/redux-lite/store"
)

// Logger returns middleware that logs every action passing through the
// pipeline, with the dispatch duration of the inner stages. A nil entry
// uses the default "store" component logger.
func Logger(entry *logrus.Entry) store.Middleware {
	if entry == nil {
		entry = logging.NewLogger("store")
	}
	return func(api store.API) func(next store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action store.Action) store.Action {
				started := time.Now()
				out := next(action)
				entry.WithFields(logrus.Fields{
					"action":   action.Type,
					"partial":  action.Partial,
					"duration": time.Since(started),
				}).Debug("dispatched")
				return out
			}
		}
	}
}
