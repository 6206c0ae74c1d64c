// Package reqctx carries the per-request identity from the HTTP layer to resolvers.
package reqctx

import (
	"Recipe-Hub/domain"
	"context"
)

type Request struct {
	UserID    string
	Role      string
	RequestID string
	IP        string
}

type ctxKey struct{}

func With(ctx context.Context, req *Request) context.Context {
	return context.WithValue(ctx, ctxKey{}, req)
}

// From never returns nil; a context without a request is anonymous.
func From(ctx context.Context) *Request {
	if req, ok := ctx.Value(ctxKey{}).(*Request); ok && req != nil {
		return req
	}
	return &Request{}
}

func (r *Request) Authenticated() bool {
	return r != nil && r.UserID != ""
}

// RequireUser returns the caller id or domain.ErrUnauthorized.
func RequireUser(ctx context.Context) (string, error) {
	req := From(ctx)
	if !req.Authenticated() {
		return "", domain.ErrUnauthorized
	}
	return req.UserID, nil
}

// ViewerID returns the caller id or "" for anonymous callers.
func ViewerID(ctx context.Context) string {
	return From(ctx).UserID
}
