package graph

import (
	"context"

	"github.com/graph-gophers/graphql-go"
)

// CommentAdded streams new comments on one recipe until the client goes away.
func (r *Resolver) CommentAdded(ctx context.Context, args struct{ RecipeID graphql.ID }) (<-chan *commentView, error) {
	events, err := r.broker.Subscribe(ctx, string(args.RecipeID))
	if err != nil {
		return nil, wrapError(err)
	}
	out := make(chan *commentView)
	go func() {
		defer close(out)
		for event := range events {
			select {
			case out <- toCommentView(event.Comment):
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
