package graph

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/reqctx"
	"Recipe-Hub/internal/utils"
	"context"

	"github.com/graph-gophers/graphql-go"
)

type mealPlanItemInput struct {
	MealPlanID graphql.ID
	RecipeID   graphql.ID
	DayOfWeek  string
	MealType   string
	Servings   *int32
}

func (r *Resolver) CreateMealPlan(ctx context.Context, args struct {
	Name      string
	WeekStart graphql.Time
}) (*mealPlanView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := domain.MealPlanRequest{Name: args.Name, WeekStart: args.WeekStart.Time}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.mealPlans.CreateMealPlan(ctx, userID, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toMealPlanView(res), nil
}

func (r *Resolver) MealPlans(ctx context.Context) ([]*mealPlanView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.mealPlans.MealPlans(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]*mealPlanView, 0, len(res))
	for _, p := range res {
		out = append(out, toMealPlanView(p))
	}
	return out, nil
}

func (r *Resolver) MealPlan(ctx context.Context, args struct{ ID graphql.ID }) (*mealPlanView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.mealPlans.MealPlan(ctx, userID, string(args.ID))
	if err != nil {
		return nil, wrapError(err)
	}
	return toMealPlanView(res), nil
}

func (r *Resolver) DeleteMealPlan(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return false, wrapError(err)
	}
	if err := r.mealPlans.DeleteMealPlan(ctx, userID, string(args.ID)); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) AddMealPlanItem(ctx context.Context, args struct{ Input mealPlanItemInput }) (*mealPlanView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := domain.MealPlanItemRequest{
		MealPlanID: string(args.Input.MealPlanID),
		RecipeID:   string(args.Input.RecipeID),
		DayOfWeek:  args.Input.DayOfWeek,
		MealType:   args.Input.MealType,
		Servings:   intValue(args.Input.Servings),
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.mealPlans.AddMealPlanItem(ctx, userID, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toMealPlanView(res), nil
}

func (r *Resolver) RemoveMealPlanItem(ctx context.Context, args struct{ ID graphql.ID }) (*mealPlanView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.mealPlans.RemoveMealPlanItem(ctx, userID, string(args.ID))
	if err != nil {
		return nil, wrapError(err)
	}
	return toMealPlanView(res), nil
}

func (r *Resolver) GenerateShoppingList(ctx context.Context, args struct {
	MealPlanID graphql.ID
	Name       *string
}) (*shoppingListView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := domain.GenerateShoppingListRequest{MealPlanID: string(args.MealPlanID), Name: stringValue(args.Name)}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.mealPlans.GenerateShoppingList(ctx, userID, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toShoppingListView(res), nil
}

func (r *Resolver) ShoppingLists(ctx context.Context) ([]*shoppingListView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.mealPlans.ShoppingLists(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	out := make([]*shoppingListView, 0, len(res))
	for _, l := range res {
		out = append(out, toShoppingListView(l))
	}
	return out, nil
}

func (r *Resolver) ToggleShoppingListItem(ctx context.Context, args struct{ ID graphql.ID }) (*shoppingListItemView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.mealPlans.ToggleShoppingListItem(ctx, userID, string(args.ID))
	if err != nil {
		return nil, wrapError(err)
	}
	return toShoppingListItemView(res), nil
}

func (r *Resolver) AddShoppingListItem(ctx context.Context, args struct {
	ShoppingListID graphql.ID
	Name           string
	Quantity       *string
}) (*shoppingListItemView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	req := domain.ShoppingListItemRequest{
		ShoppingListID: string(args.ShoppingListID),
		Name:           args.Name,
		Quantity:       stringValue(args.Quantity),
	}
	if err := utils.ValidateStruct(req); err != nil {
		return nil, wrapError(err)
	}
	res, err := r.mealPlans.AddShoppingListItem(ctx, userID, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return toShoppingListItemView(res), nil
}

func (r *Resolver) DeleteShoppingList(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return false, wrapError(err)
	}
	if err := r.mealPlans.DeleteShoppingList(ctx, userID, string(args.ID)); err != nil {
		return false, wrapError(err)
	}
	return true, nil
}

func (r *Resolver) DashboardSummary(ctx context.Context) (*dashboardSummaryView, error) {
	userID, err := reqctx.RequireUser(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	res, err := r.mealPlans.DashboardSummary(ctx, userID)
	if err != nil {
		return nil, wrapError(err)
	}
	return toDashboardSummaryView(res), nil
}
