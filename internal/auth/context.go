package auth

import "context"

// Context identifies the authenticated caller for authorization checks.
type Context struct {
	CallerID string
	IsAdmin  bool
}

type contextKey string

const callerKey contextKey = "caller"

// WithCaller returns a context carrying the authenticated caller.
func WithCaller(ctx context.Context, caller Context) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

// FromContext extracts the authenticated caller set by the middleware.
func FromContext(ctx context.Context) (Context, bool) {
	caller, ok := ctx.Value(callerKey).(Context)
	return caller, ok
}
