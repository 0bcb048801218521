package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oldbig/redux-lite/store"
	"github.com/oldbig/redux-lite/testutil"
)

func TestMiddlewareOnionOrdering(t *testing.T) {
	var log []string
	factory := store.New(
		store.Definition{"count": 0},
		store.WithMiddleware(
			testutil.ScriptedMiddleware("m1", &log),
			testutil.ScriptedMiddleware("m2", &log),
		),
	)
	s := factory.Bind()

	require.NoError(t, s.Update("count", 1))

	assert.Equal(t, []string{"m1-start", "m2-start", "m2-end", "m1-end"}, log)
}

func TestMiddlewareZeroIsIdentity(t *testing.T) {
	s := store.New(store.Definition{"count": 0}).Bind()

	require.NoError(t, s.Update("count", 1))

	assert.Equal(t, 1, s.GetState()["count"])
}

func TestMiddlewareGetStateSeesLatestCommit(t *testing.T) {
	var observed []interface{}
	spy := store.Middleware(func(api store.API) func(store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action store.Action) store.Action {
				observed = append(observed, api.GetState()["count"])
				out := next(action)
				observed = append(observed, api.GetState()["count"])
				return out
			}
		}
	})

	s := store.New(store.Definition{"count": 0}, store.WithMiddleware(spy)).Bind()
	require.NoError(t, s.Update("count", 7))

	assert.Equal(t, []interface{}{0, 7}, observed)
}

func TestMiddlewareDispatchReentersOutermost(t *testing.T) {
	var log []string

	// outer tags every action it sees so re-entry is visible.
	outer := store.Middleware(func(api store.API) func(store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action store.Action) store.Action {
				log = append(log, "outer:"+action.Type)
				return next(action)
			}
		}
	})

	// inner reacts to "ping" by dispatching "pong" through the API.
	inner := store.Middleware(func(api store.API) func(store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action store.Action) store.Action {
				out := next(action)
				if action.Type == "ping" {
					api.Dispatch(store.Action{Type: "pong", Payload: 1})
				}
				return out
			}
		}
	})

	s := store.New(
		store.Definition{"ping": 0, "pong": 0},
		store.WithMiddleware(outer, inner),
	).Bind()

	require.NoError(t, s.Update("ping", 1))

	// The middleware-issued dispatch passed through the outermost stage.
	assert.Equal(t, []string{"outer:ping", "outer:pong"}, log)
	assert.Equal(t, 1, s.GetState()["pong"])
}

func TestMiddlewareShortCircuitSkipsReducer(t *testing.T) {
	drop := store.Middleware(func(api store.API) func(store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action store.Action) store.Action {
				if action.Type == "blocked" {
					return action
				}
				return next(action)
			}
		}
	})

	s := store.New(
		store.Definition{"blocked": 0, "open": 0},
		store.WithMiddleware(drop),
	).Bind()

	require.NoError(t, s.Update("blocked", 9))
	require.NoError(t, s.Update("open", 9))

	assert.Equal(t, 0, s.GetState()["blocked"])
	assert.Equal(t, 9, s.GetState()["open"])
}

func TestMiddlewarePanicPropagates(t *testing.T) {
	boom := store.Middleware(func(api store.API) func(store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action store.Action) store.Action {
				panic("middleware failure")
			}
		}
	})

	s := store.New(store.Definition{"count": 0}, store.WithMiddleware(boom)).Bind()

	assert.PanicsWithValue(t, "middleware failure", func() {
		_ = s.Update("count", 1)
	})
	// State is untouched after the failed dispatch.
	assert.Equal(t, 0, s.GetState()["count"])
}

func TestMiddlewareCanRewriteActions(t *testing.T) {
	double := store.Middleware(func(api store.API) func(store.DispatchFunc) store.DispatchFunc {
		return func(next store.DispatchFunc) store.DispatchFunc {
			return func(action store.Action) store.Action {
				if n, ok := action.Payload.(int); ok {
					action.Payload = n * 2
				}
				return next(action)
			}
		}
	})

	s := store.New(store.Definition{"count": 0}, store.WithMiddleware(double)).Bind()
	require.NoError(t, s.Update("count", 3))

	assert.Equal(t, 6, s.GetState()["count"])
}
