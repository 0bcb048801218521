package store

// DispatchFunc consumes an action and returns it, following the classic
// middleware chaining shape.
type DispatchFunc func(Action) Action

// API is the fixed surface handed to each middleware. GetState returns
// the latest committed state, including updates made earlier in the same
// synchronous call chain. Dispatch re-enters the pipeline at its
// outermost stage, so a middleware dispatching an action it also matches
// must guard against unbounded recursion; that contract belongs to the
// middleware author, not the pipeline.
type API struct {
	GetState func() State
	Dispatch DispatchFunc
}

// Middleware wraps dispatch. It receives the pipeline API, then the next
// stage, and returns its own stage. A middleware that does not call next
// short-circuits the chain and the reducer never sees the action.
type Middleware func(api API) func(next DispatchFunc) DispatchFunc

// composeMiddleware builds the dispatch chain. The first middleware in
// the sequence becomes the outermost stage: with [m1, m2] a dispatch runs
// m1 pre, m2 pre, base, m2 post, m1 post. Zero middleware yields base
// unchanged. Panics inside a middleware propagate to the dispatch call
// site; the pipeline does not recover.
func composeMiddleware(middleware []Middleware, api API, base DispatchFunc) DispatchFunc {
	dispatch := base
	for i := len(middleware) - 1; i >= 0; i-- {
		dispatch = middleware[i](api)(dispatch)
	}
	return dispatch
}
