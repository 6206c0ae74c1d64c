package mealplan

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/pkg/recipe"
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const recentRecipesLimit = 5

type (
	MealPlanService interface {
		CreateMealPlan(ctx context.Context, userID string, req domain.MealPlanRequest) (domain.MealPlan, error)
		MealPlans(ctx context.Context, userID string) ([]domain.MealPlan, error)
		MealPlan(ctx context.Context, userID, planID string) (domain.MealPlan, error)
		DeleteMealPlan(ctx context.Context, userID, planID string) error
		AddMealPlanItem(ctx context.Context, userID string, req domain.MealPlanItemRequest) (domain.MealPlan, error)
		RemoveMealPlanItem(ctx context.Context, userID, itemID string) (domain.MealPlan, error)

		GenerateShoppingList(ctx context.Context, userID string, req domain.GenerateShoppingListRequest) (domain.ShoppingList, error)
		ShoppingLists(ctx context.Context, userID string) ([]domain.ShoppingList, error)
		ToggleShoppingListItem(ctx context.Context, userID, itemID string) (domain.ShoppingListItem, error)
		AddShoppingListItem(ctx context.Context, userID string, req domain.ShoppingListItemRequest) (domain.ShoppingListItem, error)
		DeleteShoppingList(ctx context.Context, userID, listID string) error

		DashboardSummary(ctx context.Context, userID string) (domain.DashboardSummary, error)
	}

	mealPlanService struct {
		mealPlanRepository MealPlanRepository
		log                *logger.Logger
		now                func() time.Time
	}
)

func NewMealPlanService(mealPlanRepository MealPlanRepository, log *logger.Logger) MealPlanService {
	return &mealPlanService{
		mealPlanRepository: mealPlanRepository,
		log:                log.With("service", "mealplan"),
		now:                time.Now,
	}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	return parsed, nil
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *mealPlanService) ownedPlan(ctx context.Context, userID, planID string, withIngredients bool) (*entities.MealPlan, error) {
	if _, err := parseID(planID); err != nil {
		return nil, err
	}
	get := s.mealPlanRepository.GetMealPlan
	if withIngredients {
		get = s.mealPlanRepository.GetMealPlanWithIngredients
	}
	plan, err := get(ctx, planID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrMealPlanNotFound
	}
	if err != nil {
		return nil, err
	}
	if plan.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedMealPlanAccess
	}
	return plan, nil
}

func (s *mealPlanService) ownedList(ctx context.Context, userID, listID string) (*entities.ShoppingList, error) {
	if _, err := parseID(listID); err != nil {
		return nil, err
	}
	list, err := s.mealPlanRepository.GetShoppingList(ctx, listID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrShoppingListNotFound
	}
	if err != nil {
		return nil, err
	}
	if list.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedMealPlanAccess
	}
	return list, nil
}

func (s *mealPlanService) CreateMealPlan(ctx context.Context, userID string, req domain.MealPlanRequest) (domain.MealPlan, error) {
	userUUID, err := parseID(userID)
	if err != nil {
		return domain.MealPlan{}, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.MealPlan{}, domain.ErrInvalidInput
	}

	plan := &entities.MealPlan{
		ID:        uuid.New(),
		UserID:    userUUID,
		Name:      name,
		WeekStart: truncateDay(req.WeekStart),
	}
	if err := s.mealPlanRepository.CreateMealPlan(ctx, plan); err != nil {
		return domain.MealPlan{}, err
	}
	return ToMealPlan(plan), nil
}

func (s *mealPlanService) MealPlans(ctx context.Context, userID string) ([]domain.MealPlan, error) {
	plans, err := s.mealPlanRepository.GetMealPlans(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.MealPlan, 0, len(plans))
	for _, p := range plans {
		out = append(out, ToMealPlan(p))
	}
	return out, nil
}

func (s *mealPlanService) MealPlan(ctx context.Context, userID, planID string) (domain.MealPlan, error) {
	plan, err := s.ownedPlan(ctx, userID, planID, false)
	if err != nil {
		return domain.MealPlan{}, err
	}
	return ToMealPlan(plan), nil
}

func (s *mealPlanService) DeleteMealPlan(ctx context.Context, userID, planID string) error {
	if _, err := s.ownedPlan(ctx, userID, planID, false); err != nil {
		return err
	}
	if err := s.mealPlanRepository.DeleteMealPlan(ctx, planID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealPlanNotFound
		}
		return err
	}
	s.log.Info("meal plan deleted", "meal_plan_id", planID, "user_id", userID)
	return nil
}

func (s *mealPlanService) AddMealPlanItem(ctx context.Context, userID string, req domain.MealPlanItemRequest) (domain.MealPlan, error) {
	plan, err := s.ownedPlan(ctx, userID, req.MealPlanID, false)
	if err != nil {
		return domain.MealPlan{}, err
	}
	recipeID, err := parseID(req.RecipeID)
	if err != nil {
		return domain.MealPlan{}, err
	}
	exists, err := s.mealPlanRepository.RecipeExists(ctx, req.RecipeID)
	if err != nil {
		return domain.MealPlan{}, err
	}
	if !exists {
		return domain.MealPlan{}, domain.ErrRecipeNotFound
	}

	servings := req.Servings
	if servings <= 0 {
		servings = 1
	}
	item := &entities.MealPlanItem{
		ID:         uuid.New(),
		MealPlanID: plan.ID,
		RecipeID:   recipeID,
		DayOfWeek:  strings.ToUpper(req.DayOfWeek),
		MealType:   strings.ToUpper(req.MealType),
		Servings:   servings,
	}
	if err := s.mealPlanRepository.CreateMealPlanItem(ctx, item); err != nil {
		return domain.MealPlan{}, err
	}
	return s.MealPlan(ctx, userID, req.MealPlanID)
}

func (s *mealPlanService) RemoveMealPlanItem(ctx context.Context, userID, itemID string) (domain.MealPlan, error) {
	if _, err := parseID(itemID); err != nil {
		return domain.MealPlan{}, err
	}
	item, err := s.mealPlanRepository.GetMealPlanItem(ctx, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.MealPlan{}, domain.ErrMealPlanItemNotFound
	}
	if err != nil {
		return domain.MealPlan{}, err
	}
	planID := item.MealPlanID.String()
	if _, err := s.ownedPlan(ctx, userID, planID, false); err != nil {
		return domain.MealPlan{}, err
	}
	if err := s.mealPlanRepository.DeleteMealPlanItem(ctx, itemID); err != nil {
		return domain.MealPlan{}, err
	}
	return s.MealPlan(ctx, userID, planID)
}

func (s *mealPlanService) GenerateShoppingList(ctx context.Context, userID string, req domain.GenerateShoppingListRequest) (domain.ShoppingList, error) {
	plan, err := s.ownedPlan(ctx, userID, req.MealPlanID, true)
	if err != nil {
		return domain.ShoppingList{}, err
	}
	items := BuildShoppingItems(plan)
	if len(items) == 0 {
		return domain.ShoppingList{}, domain.ErrEmptyMealPlan
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Shopping list for " + plan.Name
	}
	list := &entities.ShoppingList{
		ID:         uuid.New(),
		UserID:     plan.UserID,
		MealPlanID: &plan.ID,
		Name:       name,
		Items:      items,
	}
	if err := s.mealPlanRepository.CreateShoppingList(ctx, list); err != nil {
		return domain.ShoppingList{}, err
	}
	s.log.Info("shopping list generated", "meal_plan_id", req.MealPlanID, "items", len(items))

	stored, err := s.mealPlanRepository.GetShoppingList(ctx, list.ID.String())
	if err != nil {
		return domain.ShoppingList{}, err
	}
	return ToShoppingList(stored), nil
}

func (s *mealPlanService) ShoppingLists(ctx context.Context, userID string) ([]domain.ShoppingList, error) {
	lists, err := s.mealPlanRepository.GetShoppingLists(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.ShoppingList, 0, len(lists))
	for _, l := range lists {
		out = append(out, ToShoppingList(l))
	}
	return out, nil
}

func (s *mealPlanService) ToggleShoppingListItem(ctx context.Context, userID, itemID string) (domain.ShoppingListItem, error) {
	if _, err := parseID(itemID); err != nil {
		return domain.ShoppingListItem{}, err
	}
	item, err := s.mealPlanRepository.GetShoppingListItem(ctx, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ShoppingListItem{}, domain.ErrShoppingListItemNotFound
	}
	if err != nil {
		return domain.ShoppingListItem{}, err
	}
	if _, err := s.ownedList(ctx, userID, item.ShoppingListID.String()); err != nil {
		return domain.ShoppingListItem{}, err
	}
	if err := s.mealPlanRepository.ToggleShoppingListItem(ctx, itemID); err != nil {
		return domain.ShoppingListItem{}, err
	}
	item.IsChecked = !item.IsChecked
	return ToShoppingListItem(item), nil
}

func (s *mealPlanService) AddShoppingListItem(ctx context.Context, userID string, req domain.ShoppingListItemRequest) (domain.ShoppingListItem, error) {
	list, err := s.ownedList(ctx, userID, req.ShoppingListID)
	if err != nil {
		return domain.ShoppingListItem{}, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return domain.ShoppingListItem{}, domain.ErrInvalidInput
	}
	item := &entities.ShoppingListItem{
		ID:             uuid.New(),
		ShoppingListID: list.ID,
		Name:           name,
		Quantity:       strings.TrimSpace(req.Quantity),
		Category:       Categorize(name),
	}
	if err := s.mealPlanRepository.CreateShoppingListItem(ctx, item); err != nil {
		return domain.ShoppingListItem{}, err
	}
	return ToShoppingListItem(item), nil
}

func (s *mealPlanService) DeleteShoppingList(ctx context.Context, userID, listID string) error {
	if _, err := s.ownedList(ctx, userID, listID); err != nil {
		return err
	}
	return s.mealPlanRepository.DeleteShoppingList(ctx, listID)
}

func (s *mealPlanService) DashboardSummary(ctx context.Context, userID string) (domain.DashboardSummary, error) {
	counts, err := s.mealPlanRepository.GetDashboardCounts(ctx, userID)
	if err != nil {
		return domain.DashboardSummary{}, err
	}
	recent, err := s.mealPlanRepository.GetRecentRecipes(ctx, userID, recentRecipesLimit)
	if err != nil {
		return domain.DashboardSummary{}, err
	}

	summary := domain.DashboardSummary{
		RecipesCount:     counts.Recipes,
		BookmarksCount:   counts.Bookmarks,
		MealPlansCount:   counts.MealPlans,
		EnrollmentsCount: counts.Enrollments,
		FollowersCount:   counts.Followers,
		FollowingCount:   counts.Following,
		LikesReceived:    counts.LikesReceived,
		RecentRecipes:    make([]domain.RecipeBrief, 0, len(recent)),
	}
	for _, r := range recent {
		summary.RecentRecipes = append(summary.RecentRecipes, recipe.ToBrief(r))
	}

	plan, err := s.mealPlanRepository.GetCurrentMealPlan(ctx, userID, truncateDay(s.now()))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return domain.DashboardSummary{}, err
	default:
		current := ToMealPlan(plan)
		summary.CurrentMealPlan = &current
	}
	return summary, nil
}
