package cli

import (
	"context"

	"github.com/thenoetrevino/focup/internal/app"
)

type contextKey string

const appKey contextKey = "app"

// WithApp returns a context that makes GetCLIFromContext reuse a
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// GetCLIFromContext returns a CLI for the app stored in ctx, or bootstraps
// a new one when there is none
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
			return newCLIForApp(a), nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}
