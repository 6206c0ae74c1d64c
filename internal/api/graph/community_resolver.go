package graph

import (
	"context"
)

func (r *Resolver) TrendingRecipes(ctx context.Context, args struct{ Limit *int32 }) ([]*trendingRecipeView, error) {
	res, err := r.community.TrendingRecipes(ctx, intValue(args.Limit))
	if err != nil {
		return nil, wrapError(err)
	}
	return toTrendingViews(res), nil
}

func (r *Resolver) TopChefs(ctx context.Context, args struct{ Limit *int32 }) ([]*topChefView, error) {
	res, err := r.community.TopChefs(ctx, intValue(args.Limit))
	if err != nil {
		return nil, wrapError(err)
	}
	return toTopChefViews(res), nil
}

func (r *Resolver) CommunityData(ctx context.Context) (*communityDataView, error) {
	res, err := r.community.CommunityData(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return &communityDataView{
		Trending: toTrendingViews(res.Trending),
		TopChefs: toTopChefViews(res.TopChefs),
		Totals: &communityTotalsView{
			Members:          int32(res.Totals.Members),
			Recipes:          int32(res.Totals.Recipes),
			CommentsThisWeek: int32(res.Totals.CommentsThisWeek),
		},
		RecentComments: toCommentViews(res.RecentComments),
	}, nil
}
