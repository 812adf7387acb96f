package usecase

import "context"

type actorCtxKey struct{}

// WithActor stores the username acting on the request, used for audit events.
func WithActor(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, username)
}

// ActorFrom returns the acting username or "anonymous".
func ActorFrom(ctx context.Context) string {
	if v, ok := ctx.Value(actorCtxKey{}).(string); ok && v != "" {
		return v
	}
	return "anonymous"
}
