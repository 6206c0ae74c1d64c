package domain

import (
	"errors"
	"time"
)

var (
	ErrMealPlanNotFound           = errors.New("meal plan not found")
	ErrMealPlanItemNotFound       = errors.New("meal plan item not found")
	ErrUnauthorizedMealPlanAccess = errors.New("unauthorized access to meal plan")
	ErrEmptyMealPlan              = errors.New("meal plan has no recipes")
	ErrShoppingListNotFound       = errors.New("shopping list not found")
	ErrShoppingListItemNotFound   = errors.New("shopping list item not found")
)

const (
	CategoryMeat       = "meat"
	CategoryVegetables = "vegetables"
	CategoryFruits     = "fruits"
	CategoryDairy      = "dairy"
	CategoryGrains     = "grains"
	CategorySpices     = "spices"
	CategoryOther      = "other"
)

type (
	MealPlanRequest struct {
		Name      string    `json:"name" validate:"required,max=100"`
		WeekStart time.Time `json:"week_start" validate:"required"`
	}

	MealPlanItemRequest struct {
		MealPlanID string `json:"meal_plan_id" validate:"required,uuid"`
		RecipeID   string `json:"recipe_id" validate:"required,uuid"`
		DayOfWeek  string `json:"day_of_week" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
		MealType   string `json:"meal_type" validate:"required,oneof=BREAKFAST LUNCH DINNER SNACK"`
		Servings   int    `json:"servings" validate:"min=0,max=100"`
	}

	MealPlanItem struct {
		ID        string      `json:"id"`
		DayOfWeek string      `json:"day_of_week"`
		MealType  string      `json:"meal_type"`
		Servings  int         `json:"servings"`
		Recipe    RecipeBrief `json:"recipe"`
	}

	MealPlan struct {
		ID        string         `json:"id"`
		Name      string         `json:"name"`
		WeekStart time.Time      `json:"week_start"`
		Items     []MealPlanItem `json:"items"`
		CreatedAt time.Time      `json:"created_at"`
	}

	// RecipeBrief is the lightweight recipe card used inside plans and dashboards.
	RecipeBrief struct {
		ID              string `json:"id"`
		Title           string `json:"title"`
		ImageURL        string `json:"image_url,omitempty"`
		PrepTimeMinutes int    `json:"prep_time_minutes"`
		CookTimeMinutes int    `json:"cook_time_minutes"`
		CuisineType     string `json:"cuisine_type"`
	}

	GenerateShoppingListRequest struct {
		MealPlanID string `json:"meal_plan_id" validate:"required,uuid"`
		Name       string `json:"name" validate:"omitempty,max=100"`
	}

	ShoppingListItemRequest struct {
		ShoppingListID string `json:"shopping_list_id" validate:"required,uuid"`
		Name           string `json:"name" validate:"required,max=100"`
		Quantity       string `json:"quantity" validate:"omitempty,max=100"`
	}

	ShoppingListItem struct {
		ID        string `json:"id"`
		Name      string `json:"name"`
		Quantity  string `json:"quantity"`
		Category  string `json:"category"`
		IsChecked bool   `json:"is_checked"`
	}

	ShoppingList struct {
		ID         string             `json:"id"`
		Name       string             `json:"name"`
		MealPlanID string             `json:"meal_plan_id,omitempty"`
		Items      []ShoppingListItem `json:"items"`
		CreatedAt  time.Time          `json:"created_at"`
	}

	DashboardSummary struct {
		RecipesCount     int           `json:"recipes_count"`
		BookmarksCount   int           `json:"bookmarks_count"`
		MealPlansCount   int           `json:"meal_plans_count"`
		EnrollmentsCount int           `json:"enrollments_count"`
		FollowersCount   int           `json:"followers_count"`
		FollowingCount   int           `json:"following_count"`
		LikesReceived    int           `json:"likes_received"`
		RecentRecipes    []RecipeBrief `json:"recent_recipes"`
		CurrentMealPlan  *MealPlan     `json:"current_meal_plan,omitempty"`
	}
)
