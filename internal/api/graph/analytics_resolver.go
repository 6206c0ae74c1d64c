package graph

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/reqctx"
	"Recipe-Hub/internal/utils"
	"context"

	"github.com/graph-gophers/graphql-go"
)

type analyticsArgs struct {
	Period string
	Start  *graphql.Time
	End    *graphql.Time
}

func (a analyticsArgs) toRequest() domain.AnalyticsRequest {
	req := domain.AnalyticsRequest{Period: a.Period}
	if a.Start != nil {
		t := a.Start.Time
		req.Start = &t
	}
	if a.End != nil {
		t := a.End.Time
		req.End = &t
	}
	return req
}

func (r *Resolver) MyAnalytics(ctx context.Context, args analyticsArgs) (*analyticsView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := args.toRequest()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.analytics.MyAnalytics(ctx, userID, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toAnalyticsView(res), nil
}

func (r *Resolver) RecipeAnalytics(ctx context.Context, args struct {
	RecipeID graphql.ID
	Period   string
	Start    *graphql.Time
	End      *graphql.Time
}) (*analyticsView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := analyticsArgs{Period: args.Period, Start: args.Start, End: args.End}.toRequest()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.analytics.RecipeAnalytics(ctx, userID, string(args.RecipeID), req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toAnalyticsView(res), nil
}
