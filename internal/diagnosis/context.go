package diagnosis

import "context"

type contextKey string

const sessionKey contextKey = "diagnosis_session"

// WithSessionID attaches the host's session identifier to ctx so the
// classification audit event can reference it.
func WithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionKey, id)
}

// SessionIDFrom returns the session identifier attached to ctx, or "".
func SessionIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(sessionKey).(string); ok {
		return v
	}
	return ""
}
