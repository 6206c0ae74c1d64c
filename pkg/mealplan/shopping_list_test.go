package mealplan

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	tests := map[string]string{
		"Chicken thighs":   domain.CategoryMeat,
		"Eggs":             domain.CategoryMeat,
		"Eggplant":         domain.CategoryVegetables,
		"Red Onion":        domain.CategoryVegetables,
		"Chickpeas":        domain.CategoryGrains,
		"Basmati Rice":     domain.CategoryGrains,
		"Paneer":           domain.CategoryDairy,
		"Garam Masala":     domain.CategorySpices,
		"Coriander powder": domain.CategorySpices,
		"Fresh coriander":  domain.CategoryVegetables,
		"Mango":            domain.CategoryFruits,
		"Baking soda":      domain.CategoryOther,
	}
	for name, want := range tests {
		assert.Equal(t, want, Categorize(name), name)
	}
}

func planWith(recipes ...*entities.Recipe) *entities.MealPlan {
	plan := &entities.MealPlan{}
	for _, r := range recipes {
		plan.Items = append(plan.Items, &entities.MealPlanItem{Recipe: r})
	}
	return plan
}

func recipeWith(ingredients ...*entities.Ingredient) *entities.Recipe {
	return &entities.Recipe{Ingredients: ingredients}
}

func TestBuildShoppingItemsMergesByName(t *testing.T) {
	plan := planWith(
		recipeWith(
			&entities.Ingredient{Name: "Onion", Quantity: "2"},
			&entities.Ingredient{Name: "Rice", Quantity: "200", Unit: "g"},
		),
		recipeWith(
			&entities.Ingredient{Name: " onion ", Quantity: "1", Unit: "large"},
			&entities.Ingredient{Name: "Salt"},
			&entities.Ingredient{Name: "salt", Quantity: "1 tsp"},
		),
		nil,
	)

	items := BuildShoppingItems(plan)
	require.Len(t, items, 3)

	assert.Equal(t, "Onion", items[0].Name)
	assert.Equal(t, "2 + 1 large", items[0].Quantity)
	assert.Equal(t, domain.CategoryVegetables, items[0].Category)

	assert.Equal(t, "Rice", items[1].Name)
	assert.Equal(t, "200 g", items[1].Quantity)

	assert.Equal(t, "Salt", items[2].Name)
	assert.Equal(t, "1 tsp", items[2].Quantity)
	assert.Equal(t, 2, items[2].Position)
}

func TestBuildShoppingItemsEmptyPlan(t *testing.T) {
	assert.Empty(t, BuildShoppingItems(&entities.MealPlan{}))
	assert.Empty(t, BuildShoppingItems(planWith(recipeWith(&entities.Ingredient{Name: "  "}))))
}
