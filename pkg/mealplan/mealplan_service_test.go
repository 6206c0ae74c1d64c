package mealplan

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/utils/logger"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeMealPlanRepo struct {
	MealPlanRepository
	plans     map[uuid.UUID]*entities.MealPlan
	recipes   map[uuid.UUID]*entities.Recipe
	lists     map[uuid.UUID]*entities.ShoppingList
	counts    DashboardCounts
	currentAt time.Time
}

func newFakeMealPlanRepo() *fakeMealPlanRepo {
	return &fakeMealPlanRepo{
		plans:   map[uuid.UUID]*entities.MealPlan{},
		recipes: map[uuid.UUID]*entities.Recipe{},
		lists:   map[uuid.UUID]*entities.ShoppingList{},
	}
}

func (f *fakeMealPlanRepo) CreateMealPlan(_ context.Context, p *entities.MealPlan) error {
	f.plans[p.ID] = p
	return nil
}

func (f *fakeMealPlanRepo) GetMealPlan(_ context.Context, id string) (*entities.MealPlan, error) {
	if p, ok := f.plans[uuid.MustParse(id)]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMealPlanRepo) GetMealPlanWithIngredients(ctx context.Context, id string) (*entities.MealPlan, error) {
	return f.GetMealPlan(ctx, id)
}

func (f *fakeMealPlanRepo) GetMealPlans(_ context.Context, userID string) ([]*entities.MealPlan, error) {
	var out []*entities.MealPlan
	for _, p := range f.plans {
		if p.UserID.String() == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeMealPlanRepo) GetCurrentMealPlan(_ context.Context, userID string, today time.Time) (*entities.MealPlan, error) {
	f.currentAt = today
	for _, p := range f.plans {
		if p.UserID.String() == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMealPlanRepo) DeleteMealPlan(_ context.Context, id string) error {
	delete(f.plans, uuid.MustParse(id))
	return nil
}

func (f *fakeMealPlanRepo) RecipeExists(_ context.Context, id string) (bool, error) {
	_, ok := f.recipes[uuid.MustParse(id)]
	return ok, nil
}

func (f *fakeMealPlanRepo) CreateMealPlanItem(_ context.Context, item *entities.MealPlanItem) error {
	item.Recipe = f.recipes[item.RecipeID]
	p := f.plans[item.MealPlanID]
	p.Items = append(p.Items, item)
	return nil
}

func (f *fakeMealPlanRepo) GetMealPlanItem(_ context.Context, id string) (*entities.MealPlanItem, error) {
	for _, p := range f.plans {
		for _, it := range p.Items {
			if it.ID.String() == id {
				return it, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMealPlanRepo) DeleteMealPlanItem(_ context.Context, id string) error {
	for _, p := range f.plans {
		for i, it := range p.Items {
			if it.ID.String() == id {
				p.Items = append(p.Items[:i], p.Items[i+1:]...)
				return nil
			}
		}
	}
	return nil
}

func (f *fakeMealPlanRepo) CreateShoppingList(_ context.Context, l *entities.ShoppingList) error {
	for _, it := range l.Items {
		it.ID = uuid.New()
		it.ShoppingListID = l.ID
	}
	f.lists[l.ID] = l
	return nil
}

func (f *fakeMealPlanRepo) GetShoppingList(_ context.Context, id string) (*entities.ShoppingList, error) {
	if l, ok := f.lists[uuid.MustParse(id)]; ok {
		return l, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMealPlanRepo) GetShoppingListItem(_ context.Context, id string) (*entities.ShoppingListItem, error) {
	for _, l := range f.lists {
		for _, it := range l.Items {
			if it.ID.String() == id {
				cp := *it
				return &cp, nil
			}
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeMealPlanRepo) ToggleShoppingListItem(_ context.Context, id string) error {
	for _, l := range f.lists {
		for _, it := range l.Items {
			if it.ID.String() == id {
				it.IsChecked = !it.IsChecked
			}
		}
	}
	return nil
}

func (f *fakeMealPlanRepo) CreateShoppingListItem(_ context.Context, item *entities.ShoppingListItem) error {
	l := f.lists[item.ShoppingListID]
	item.Position = len(l.Items)
	l.Items = append(l.Items, item)
	return nil
}

func (f *fakeMealPlanRepo) GetDashboardCounts(context.Context, string) (DashboardCounts, error) {
	return f.counts, nil
}

func (f *fakeMealPlanRepo) GetRecentRecipes(_ context.Context, userID string, limit int) ([]*entities.Recipe, error) {
	var out []*entities.Recipe
	for _, r := range f.recipes {
		if r.UserID.String() == userID && len(out) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

func newTestService(repo *fakeMealPlanRepo) *mealPlanService {
	svc := NewMealPlanService(repo, logger.NewNop()).(*mealPlanService)
	svc.now = func() time.Time { return time.Date(2026, 3, 4, 18, 30, 0, 0, time.UTC) }
	return svc
}

func (f *fakeMealPlanRepo) seedRecipe(owner uuid.UUID, ingredients ...*entities.Ingredient) *entities.Recipe {
	r := &entities.Recipe{ID: uuid.New(), UserID: owner, Title: "Recipe", Ingredients: ingredients}
	f.recipes[r.ID] = r
	return r
}

func TestMealPlanOwnership(t *testing.T) {
	repo := newFakeMealPlanRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	owner, stranger := uuid.NewString(), uuid.NewString()
	r := repo.seedRecipe(uuid.New())

	plan, err := svc.CreateMealPlan(ctx, owner, domain.MealPlanRequest{
		Name:      " Week 10 ",
		WeekStart: time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "Week 10", plan.Name)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), plan.WeekStart)

	_, err = svc.MealPlan(ctx, stranger, plan.ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedMealPlanAccess)
	_, err = svc.AddMealPlanItem(ctx, stranger, domain.MealPlanItemRequest{MealPlanID: plan.ID, RecipeID: r.ID.String()})
	assert.ErrorIs(t, err, domain.ErrUnauthorizedMealPlanAccess)
	assert.ErrorIs(t, svc.DeleteMealPlan(ctx, stranger, plan.ID), domain.ErrUnauthorizedMealPlanAccess)

	_, err = svc.AddMealPlanItem(ctx, owner, domain.MealPlanItemRequest{MealPlanID: plan.ID, RecipeID: uuid.NewString()})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)

	updated, err := svc.AddMealPlanItem(ctx, owner, domain.MealPlanItemRequest{
		MealPlanID: plan.ID, RecipeID: r.ID.String(), DayOfWeek: "MONDAY", MealType: "DINNER",
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 1, updated.Items[0].Servings)

	_, err = svc.RemoveMealPlanItem(ctx, stranger, updated.Items[0].ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedMealPlanAccess)
	updated, err = svc.RemoveMealPlanItem(ctx, owner, updated.Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, updated.Items)

	require.NoError(t, svc.DeleteMealPlan(ctx, owner, plan.ID))
	_, err = svc.MealPlan(ctx, owner, plan.ID)
	assert.ErrorIs(t, err, domain.ErrMealPlanNotFound)
}

func TestGenerateShoppingList(t *testing.T) {
	repo := newFakeMealPlanRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	owner := uuid.NewString()

	plan, err := svc.CreateMealPlan(ctx, owner, domain.MealPlanRequest{Name: "Week", WeekStart: time.Now()})
	require.NoError(t, err)

	_, err = svc.GenerateShoppingList(ctx, owner, domain.GenerateShoppingListRequest{MealPlanID: plan.ID})
	assert.ErrorIs(t, err, domain.ErrEmptyMealPlan)

	dal := repo.seedRecipe(uuid.New(),
		&entities.Ingredient{Name: "Lentils", Quantity: "1", Unit: "cup"},
		&entities.Ingredient{Name: "Onion", Quantity: "1"})
	curry := repo.seedRecipe(uuid.New(),
		&entities.Ingredient{Name: "onion", Quantity: "2"},
		&entities.Ingredient{Name: "Chicken", Quantity: "500g"})
	for _, r := range []*entities.Recipe{dal, curry} {
		_, err = svc.AddMealPlanItem(ctx, owner, domain.MealPlanItemRequest{
			MealPlanID: plan.ID, RecipeID: r.ID.String(), DayOfWeek: "TUESDAY", MealType: "LUNCH", Servings: 2,
		})
		require.NoError(t, err)
	}

	list, err := svc.GenerateShoppingList(ctx, owner, domain.GenerateShoppingListRequest{MealPlanID: plan.ID})
	require.NoError(t, err)
	assert.Equal(t, "Shopping list for Week", list.Name)
	assert.Equal(t, plan.ID, list.MealPlanID)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "Onion", list.Items[1].Name)
	assert.Equal(t, "1 + 2", list.Items[1].Quantity)
	assert.Equal(t, domain.CategoryMeat, list.Items[2].Category)

	toggled, err := svc.ToggleShoppingListItem(ctx, owner, list.Items[0].ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsChecked)
	_, err = svc.ToggleShoppingListItem(ctx, uuid.NewString(), list.Items[0].ID)
	assert.ErrorIs(t, err, domain.ErrUnauthorizedMealPlanAccess)

	added, err := svc.AddShoppingListItem(ctx, owner, domain.ShoppingListItemRequest{
		ShoppingListID: list.ID, Name: "Milk", Quantity: "1 l",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CategoryDairy, added.Category)

	_, err = svc.ToggleShoppingListItem(ctx, owner, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrShoppingListItemNotFound)
}

func TestDashboardSummary(t *testing.T) {
	repo := newFakeMealPlanRepo()
	repo.counts = DashboardCounts{Recipes: 2, Followers: 3, LikesReceived: 7}
	svc := newTestService(repo)
	ctx := context.Background()
	me := uuid.New()
	repo.seedRecipe(me)

	summary, err := svc.DashboardSummary(ctx, me.String())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.RecipesCount)
	assert.Equal(t, 7, summary.LikesReceived)
	assert.Len(t, summary.RecentRecipes, 1)
	assert.Nil(t, summary.CurrentMealPlan)
	assert.Equal(t, time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC), repo.currentAt)

	_, err = svc.CreateMealPlan(ctx, me.String(), domain.MealPlanRequest{Name: "Now", WeekStart: time.Now()})
	require.NoError(t, err)
	summary, err = svc.DashboardSummary(ctx, me.String())
	require.NoError(t, err)
	require.NotNil(t, summary.CurrentMealPlan)
	assert.Equal(t, "Now", summary.CurrentMealPlan.Name)
}
