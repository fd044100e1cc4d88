package common

import (
	"context"

	"github.com/teemow/analytics-mcp/internal/property"
	"github.com/teemow/analytics-mcp/internal/server"
)

// ResolveProperty canonicalizes the raw property argument of a tool call.
// Structural references (numeric IDs, properties/{id}) resolve locally;
// free-text display names go through the account-summary resolver, which
// requires Admin API credentials.
func ResolveProperty(ctx context.Context, sc *server.ServerContext, raw any) (property.Ref, error) {
	ref, perr := property.Parse(raw)
	if perr == nil {
		return ref, nil
	}
	if _, ok := raw.(string); !ok {
		return property.Ref{}, perr
	}

	resolver, err := sc.Resolver()
	if err != nil {
		return property.Ref{}, err
	}
	return resolver.Resolve(ctx, raw)
}
