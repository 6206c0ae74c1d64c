package mealplan

import (
	"Recipe-Hub/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MealPlanRepository interface {
		CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error
		GetMealPlan(ctx context.Context, planID string) (*entities.MealPlan, error)
		GetMealPlanWithIngredients(ctx context.Context, planID string) (*entities.MealPlan, error)
		GetMealPlans(ctx context.Context, userID string) ([]*entities.MealPlan, error)
		GetCurrentMealPlan(ctx context.Context, userID string, today time.Time) (*entities.MealPlan, error)
		DeleteMealPlan(ctx context.Context, planID string) error
		CreateMealPlanItem(ctx context.Context, item *entities.MealPlanItem) error
		GetMealPlanItem(ctx context.Context, itemID string) (*entities.MealPlanItem, error)
		DeleteMealPlanItem(ctx context.Context, itemID string) error
		RecipeExists(ctx context.Context, recipeID string) (bool, error)

		CreateShoppingList(ctx context.Context, list *entities.ShoppingList) error
		GetShoppingList(ctx context.Context, listID string) (*entities.ShoppingList, error)
		GetShoppingLists(ctx context.Context, userID string) ([]*entities.ShoppingList, error)
		GetShoppingListItem(ctx context.Context, itemID string) (*entities.ShoppingListItem, error)
		CreateShoppingListItem(ctx context.Context, item *entities.ShoppingListItem) error
		ToggleShoppingListItem(ctx context.Context, itemID string) error
		DeleteShoppingList(ctx context.Context, listID string) error

		GetDashboardCounts(ctx context.Context, userID string) (DashboardCounts, error)
		GetRecentRecipes(ctx context.Context, userID string, limit int) ([]*entities.Recipe, error)
	}

	DashboardCounts struct {
		Recipes       int
		Bookmarks     int
		MealPlans     int
		Enrollments   int
		Followers     int
		Following     int
		LikesReceived int
	}

	mealPlanRepository struct {
		db *gorm.DB
	}
)

func NewMealPlanRepository(db *gorm.DB) MealPlanRepository {
	return &mealPlanRepository{db: db}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at asc, id asc") }).
		Preload("Items.Recipe")
}

func (r *mealPlanRepository) CreateMealPlan(ctx context.Context, plan *entities.MealPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *mealPlanRepository) GetMealPlan(ctx context.Context, planID string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	if err := preloadItems(r.db.WithContext(ctx)).Where("id = ?", planID).First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) GetMealPlanWithIngredients(ctx context.Context, planID string) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	err := preloadItems(r.db.WithContext(ctx)).
		Preload("Items.Recipe.Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Where("id = ?", planID).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *mealPlanRepository) GetMealPlans(ctx context.Context, userID string) ([]*entities.MealPlan, error) {
	var plans []*entities.MealPlan
	err := preloadItems(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("week_start desc, created_at desc").
		Find(&plans).Error
	return plans, err
}

// GetCurrentMealPlan returns the plan whose week contains today, falling back to the most
// recently started one.
func (r *mealPlanRepository) GetCurrentMealPlan(ctx context.Context, userID string, today time.Time) (*entities.MealPlan, error) {
	var plan entities.MealPlan
	err := preloadItems(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN week_start <= ? AND week_start > ? THEN 0 ELSE 1 END, week_start DESC",
			Vars:               []any{today, today.AddDate(0, 0, -7)},
			WithoutParentheses: true,
		}}).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// DeleteMealPlan removes the plan with its items and detaches shopping lists generated from it.
func (r *mealPlanRepository) DeleteMealPlan(ctx context.Context, planID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_plan_id = ?", planID).Delete(&entities.MealPlanItem{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&entities.ShoppingList{}).
			Where("meal_plan_id = ?", planID).
			Update("meal_plan_id", nil).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", planID).Delete(&entities.MealPlan{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *mealPlanRepository) CreateMealPlanItem(ctx context.Context, item *entities.MealPlanItem) error {
	return r.db.WithContext(ctx).Omit("Recipe").Create(item).Error
}

func (r *mealPlanRepository) GetMealPlanItem(ctx context.Context, itemID string) (*entities.MealPlanItem, error) {
	var item entities.MealPlanItem
	if err := r.db.WithContext(ctx).Preload("Recipe").Where("id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *mealPlanRepository) DeleteMealPlanItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Where("id = ?", itemID).Delete(&entities.MealPlanItem{}).Error
}

func (r *mealPlanRepository) RecipeExists(ctx context.Context, recipeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("id = ?", recipeID).Count(&count).Error
	return count > 0, err
}

// CreateShoppingList stores the list and its items atomically.
func (r *mealPlanRepository) CreateShoppingList(ctx context.Context, list *entities.ShoppingList) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		items := list.Items
		if err := tx.Omit("Items").Create(list).Error; err != nil {
			return err
		}
		for _, item := range items {
			if item.ID == uuid.Nil {
				item.ID = uuid.New()
			}
			item.ShoppingListID = list.ID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
}

func preloadListItems(db *gorm.DB) *gorm.DB {
	return db.Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position asc, created_at asc") })
}

func (r *mealPlanRepository) GetShoppingList(ctx context.Context, listID string) (*entities.ShoppingList, error) {
	var list entities.ShoppingList
	if err := preloadListItems(r.db.WithContext(ctx)).Where("id = ?", listID).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *mealPlanRepository) GetShoppingLists(ctx context.Context, userID string) ([]*entities.ShoppingList, error) {
	var lists []*entities.ShoppingList
	err := preloadListItems(r.db.WithContext(ctx)).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&lists).Error
	return lists, err
}

func (r *mealPlanRepository) GetShoppingListItem(ctx context.Context, itemID string) (*entities.ShoppingListItem, error) {
	var item entities.ShoppingListItem
	if err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateShoppingListItem appends the item after the list's current last position.
func (r *mealPlanRepository) CreateShoppingListItem(ctx context.Context, item *entities.ShoppingListItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&entities.ShoppingListItem{}).
			Select("COALESCE(MAX(position) + 1, 0)").
			Where("shopping_list_id = ?", item.ShoppingListID).
			Scan(&next).Error; err != nil {
			return err
		}
		item.Position = next
		return tx.Create(item).Error
	})
}

func (r *mealPlanRepository) ToggleShoppingListItem(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).Model(&entities.ShoppingListItem{}).
		Where("id = ?", itemID).
		UpdateColumn("is_checked", gorm.Expr("NOT is_checked")).Error
}

func (r *mealPlanRepository) DeleteShoppingList(ctx context.Context, listID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shopping_list_id = ?", listID).Delete(&entities.ShoppingListItem{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", listID).Delete(&entities.ShoppingList{}).Error
	})
}

func (r *mealPlanRepository) GetDashboardCounts(ctx context.Context, userID string) (DashboardCounts, error) {
	var counts DashboardCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM recipes WHERE user_id = @id) AS recipes,
			(SELECT COUNT(*) FROM recipe_bookmarks WHERE user_id = @id) AS bookmarks,
			(SELECT COUNT(*) FROM meal_plans WHERE user_id = @id) AS meal_plans,
			(SELECT COUNT(*) FROM course_enrollments WHERE user_id = @id) AS enrollments,
			(SELECT COUNT(*) FROM follows WHERE following_id = @id) AS followers,
			(SELECT COUNT(*) FROM follows WHERE follower_id = @id) AS following,
			(SELECT COUNT(*) FROM likes JOIN recipes ON recipes.id = likes.recipe_id WHERE recipes.user_id = @id) AS likes_received
	`, map[string]any{"id": userID}).Scan(&counts).Error
	return counts, err
}

func (r *mealPlanRepository) GetRecentRecipes(ctx context.Context, userID string, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&recipes).Error
	return recipes, err
}
