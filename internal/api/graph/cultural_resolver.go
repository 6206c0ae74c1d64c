package graph

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/reqctx"
	"Recipe-Hub/internal/utils"
	"context"

	"github.com/graph-gophers/graphql-go"
)

type (
	culturalFilterInput struct {
		Religion         *string
		DietTypes        *[]string
		CuisineTypes     *[]string
		SpiceLevel       *string
		Region           *string
		Festival         *string
		AvoidIngredients *[]string
	}

	culturalPreferenceInput struct {
		Religion         *string
		DietTypes        *[]string
		CuisineTypes     *[]string
		SpiceLevel       *string
		Region           *string
		Festivals        *[]string
		AvoidIngredients *[]string
	}
)

func (in *culturalFilterInput) toFilter() domain.CulturalFilter {
	if in == nil {
		return domain.CulturalFilter{}
	}
	return domain.CulturalFilter{
		Religion:         stringValue(in.Religion),
		DietTypes:        listValue(in.DietTypes),
		CuisineTypes:     listValue(in.CuisineTypes),
		SpiceLevel:       stringValue(in.SpiceLevel),
		Region:           stringValue(in.Region),
		Festival:         stringValue(in.Festival),
		AvoidIngredients: listValue(in.AvoidIngredients),
	}
}

func (r *Resolver) CulturalRecipes(ctx context.Context, args struct {
	Filter *culturalFilterInput
	Offset *int32
	Limit  *int32
}) (*recipePageView, error) {
	req := domain.CulturalRecipesRequest{
		Filter: args.Filter.toFilter(),
		Page:   toPage(args.Offset, args.Limit),
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.cultural.CulturalRecipes(ctx, req, reqctx.ViewerID(ctx))
	if err != nil {
		return nil, wrapError(err)
	}
	return toRecipePageView(res), nil
}

func (r *Resolver) RecommendedRecipes(ctx context.Context, args struct{ Limit *int32 }) ([]*recipeView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.cultural.RecommendedRecipes(ctx, userID, intValue(args.Limit))
	if err != nil {
		return nil, wrapError(err)
	}
	return toRecipeViews(res), nil
}

func (r *Resolver) SetRecipeCulturalTag(ctx context.Context, args struct {
	RecipeID graphql.ID
	Input    culturalTagInput
}) (*culturalTagView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := args.Input.toRequest()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.cultural.SetRecipeCulturalTag(ctx, userID, string(args.RecipeID), req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toCulturalTagView(&res), nil
}

func (r *Resolver) SetCulturalPreference(ctx context.Context, args struct{ Input culturalPreferenceInput }) (*culturalPreferenceView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := domain.CulturalPreferenceRequest{
		Religion:         stringValue(args.Input.Religion),
		DietTypes:        listValue(args.Input.DietTypes),
		CuisineTypes:     listValue(args.Input.CuisineTypes),
		SpiceLevel:       stringValue(args.Input.SpiceLevel),
		Region:           stringValue(args.Input.Region),
		Festivals:        listValue(args.Input.Festivals),
		AvoidIngredients: listValue(args.Input.AvoidIngredients),
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.cultural.SetPreference(ctx, userID, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toCulturalPreferenceView(res), nil
}

func (r *Resolver) MyCulturalPreference(ctx context.Context) (*culturalPreferenceView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.cultural.MyPreference(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	return toCulturalPreferenceView(res), nil
}

func (r *Resolver) OnboardingStatus(ctx context.Context) (*onboardingStatusView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.cultural.OnboardingStatus(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	return toOnboardingStatusView(res), nil
}

func (r *Resolver) CompleteOnboardingStep(ctx context.Context, args struct{ Step string }) (*onboardingStatusView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.cultural.CompleteOnboardingStep(ctx, userID, args.Step)
	if err != nil {
		return nil, wrapError(err)
	}
	return toOnboardingStatusView(res), nil
}

func (r *Resolver) Festivals(args struct{ Religion *string }) []*festivalView {
	festivals := r.cultural.Festivals(stringValue(args.Religion))
	out := make([]*festivalView, 0, len(festivals))
	for _, f := range festivals {
		out = append(out, &festivalView{Name: f.Name, Religion: f.Religion, Region: f.Region, Month: int32(f.Month)})
	}
	return out
}
