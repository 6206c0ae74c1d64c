package graph

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/reqctx"
	"Recipe-Hub/internal/utils"
	"context"

	"github.com/graph-gophers/graphql-go"
)

type (
	ingredientInput struct {
		Name     string
		Quantity *string
		Unit     *string
	}

	culturalTagInput struct {
		CuisineType *string
		DietTypes   *[]string
		SpiceLevel  *string
		Religion    *string
		Region      *string
		Festival    *string
	}

	recipeInput struct {
		Title           string
		Description     *string
		ImageURL        *string
		PrepTimeMinutes *int32
		CookTimeMinutes *int32
		Servings        *int32
		DifficultyLevel *string
		CuisineType     *string
		Ingredients     []ingredientInput
		Steps           []string
		Tags            *[]string
		CulturalTag     *culturalTagInput
	}

	pageArgs struct {
		Offset *int32
		Limit  *int32
	}

	recipeIDArgs struct {
		RecipeID graphql.ID
	}
)

func (in culturalTagInput) toRequest() domain.CulturalTagRequest {
	return domain.CulturalTagRequest{
		CuisineType: stringValue(in.CuisineType),
		DietTypes:   listValue(in.DietTypes),
		SpiceLevel:  stringValue(in.SpiceLevel),
		Religion:    stringValue(in.Religion),
		Region:      stringValue(in.Region),
		Festival:    stringValue(in.Festival),
	}
}

func (in recipeInput) toRequest() domain.RecipeRequest {
	req := domain.RecipeRequest{
		Title:           in.Title,
		Description:     stringValue(in.Description),
		ImageURL:        stringValue(in.ImageURL),
		PrepTimeMinutes: intValue(in.PrepTimeMinutes),
		CookTimeMinutes: intValue(in.CookTimeMinutes),
		Servings:        intValue(in.Servings),
		DifficultyLevel: stringValue(in.DifficultyLevel),
		CuisineType:     stringValue(in.CuisineType),
		Ingredients:     make([]domain.IngredientRequest, 0, len(in.Ingredients)),
		Steps:           in.Steps,
		Tags:            listValue(in.Tags),
	}
	if req.Servings == 0 {
		req.Servings = 1
	}
	for _, ing := range in.Ingredients {
		req.Ingredients = append(req.Ingredients, domain.IngredientRequest{
			Name:     ing.Name,
			Quantity: stringValue(ing.Quantity),
			Unit:     stringValue(ing.Unit),
		})
	}
	if in.CulturalTag != nil {
		tag := in.CulturalTag.toRequest()
		req.CulturalTag = &tag
	}
	return req
}

func (r *Resolver) Recipe(ctx context.Context, args struct {
	ID        graphql.ID
	TrackView *bool
}) (*recipeView, error) {
	trackView := args.TrackView != nil && *args.TrackView
	res, err := r.recipes.GetRecipe(ctx, string(args.ID), reqctx.ViewerID(ctx), trackView)
	if err != nil {
		return nil, wrapError(err)
	}
	return toRecipeView(res), nil
}

func (r *Resolver) Recipes(ctx context.Context, args struct {
	Search   *string
	AuthorID *graphql.ID
	Offset   *int32
	Limit    *int32
}) (*recipePageView, error) {
	req := domain.RecipeListRequest{
		Search: stringValue(args.Search),
		Page:   toPage(args.Offset, args.Limit),
	}
	if args.AuthorID != nil {
		req.AuthorID = string(*args.AuthorID)
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.recipes.ListRecipes(ctx, req, reqctx.ViewerID(ctx))
	if err != nil {
		return nil, wrapError(err)
	}
	return toRecipePageView(res), nil
}

func (r *Resolver) MyRecipes(ctx context.Context, args pageArgs) (*recipePageView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.recipes.MyRecipes(ctx, userID, toPage(args.Offset, args.Limit))
	if err != nil {
		return nil, wrapError(err)
	}
	return toRecipePageView(res), nil
}

func (r *Resolver) CreateRecipe(ctx context.Context, args struct{ Input recipeInput }) (*recipeView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := args.Input.toRequest()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.recipes.CreateRecipe(ctx, userID, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toRecipeView(res), nil
}

func (r *Resolver) UpdateRecipe(ctx context.Context, args struct {
	ID    graphql.ID
	Input recipeInput
}) (*recipeView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := args.Input.toRequest()
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.recipes.UpdateRecipe(ctx, userID, string(args.ID), req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toRecipeView(res), nil
}

func (r *Resolver) DeleteRecipe(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return false, wrapError(err)
	}
	if err := r.recipes.DeleteRecipe(ctx, userID, string(args.ID)); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) LikeRecipe(ctx context.Context, args recipeIDArgs) (*likeResultView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.recipes.LikeRecipe(ctx, userID, string(args.RecipeID))
	if err != nil {
		return nil, wrapError(err)
	}
	return &likeResultView{RecipeID: graphql.ID(res.RecipeID), IsLiked: res.IsLiked, LikesCount: int32(res.LikesCount)}, nil
}

func (r *Resolver) UnlikeRecipe(ctx context.Context, args recipeIDArgs) (*likeResultView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.recipes.UnlikeRecipe(ctx, userID, string(args.RecipeID))
	if err != nil {
		return nil, wrapError(err)
	}
	return &likeResultView{RecipeID: graphql.ID(res.RecipeID), IsLiked: res.IsLiked, LikesCount: int32(res.LikesCount)}, nil
}

// RateRecipe leaves the 1..5 range check to the service so callers get ErrInvalidRating.
func (r *Resolver) RateRecipe(ctx context.Context, args struct {
	RecipeID graphql.ID
	Value    int32
}) (*ratingResultView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.recipes.RateRecipe(ctx, userID, domain.RatingRequest{
		RecipeID: string(args.RecipeID),
		Value:    int(args.Value),
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return &ratingResultView{
		RecipeID:      graphql.ID(res.RecipeID),
		MyRating:      int32(res.MyRating),
		AverageRating: res.AverageRating,
		RatingsCount:  int32(res.RatingsCount),
	}, nil
}

func (r *Resolver) AddComment(ctx context.Context, args struct {
	RecipeID graphql.ID
	Content  string
}) (*commentView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := domain.CommentRequest{RecipeID: string(args.RecipeID), Content: args.Content}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.recipes.AddComment(ctx, userID, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toCommentView(res), nil
}

func (r *Resolver) DeleteComment(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return false, wrapError(err)
	}
	if err := r.recipes.DeleteComment(ctx, userID, string(args.ID)); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) Comments(ctx context.Context, args struct {
	RecipeID graphql.ID
	Offset   *int32
	Limit    *int32
}) (*commentPageView, error) {
	res, err := r.recipes.GetComments(ctx, string(args.RecipeID), toPage(args.Offset, args.Limit))
	if err != nil {
		return nil, wrapError(err)
	}
	return &commentPageView{Comments: toCommentViews(res.Comments), Total: int32(res.Total)}, nil
}

func (r *Resolver) BookmarkRecipe(ctx context.Context, args recipeIDArgs) (bool, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return false, wrapError(err)
	}
	if err := r.recipes.BookmarkRecipe(ctx, userID, string(args.RecipeID)); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) RemoveBookmark(ctx context.Context, args recipeIDArgs) (bool, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return false, wrapError(err)
	}
	if err := r.recipes.RemoveBookmark(ctx, userID, string(args.RecipeID)); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) BookmarkedRecipes(ctx context.Context, args pageArgs) (*recipePageView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.recipes.GetBookmarkedRecipes(ctx, userID, toPage(args.Offset, args.Limit))
	if err != nil {
		return nil, wrapError(err)
	}
	return toRecipePageView(res), nil
}

func (r *Resolver) MarkAsCooked(ctx context.Context, args recipeIDArgs) (bool, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return false, wrapError(err)
	}
	if err := r.recipes.MarkAsCooked(ctx, userID, string(args.RecipeID)); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) CookingHistory(ctx context.Context, args pageArgs) (*cookingHistoryView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.recipes.GetRecipeHistory(ctx, userID, toPage(args.Offset, args.Limit))
	if err != nil {
		return nil, wrapError(err)
	}
	return toCookingHistoryView(res), nil
}
