package mealplan

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"strings"
)

// categoryKeywords is checked in order; the first category with a keyword contained in the
// lower-cased ingredient name wins.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{domain.CategorySpices, []string{"salt", "pepper", "chili", "chilli", "cumin", "turmeric", "masala", "coriander powder", "cardamom", "clove", "cinnamon", "paprika", "spice", "saffron", "mustard seed"}},
	{domain.CategoryGrains, []string{"rice", "flour", "wheat", "atta", "bread", "pasta", "noodle", "oats", "lentil", "dal", "quinoa", "semolina", "rava", "chickpea"}},
	{domain.CategoryVegetables, []string{"onion", "tomato", "potato", "garlic", "ginger", "carrot", "spinach", "peas", "bean", "cabbage", "cauliflower", "capsicum", "okra", "brinjal", "eggplant", "coriander", "mint", "cucumber", "pumpkin", "mushroom"}},
	{domain.CategoryMeat, []string{"chicken", "mutton", "lamb", "beef", "pork", "fish", "prawn", "shrimp", "egg", "meat", "bacon", "turkey"}},
	{domain.CategoryDairy, []string{"milk", "cheese", "paneer", "butter", "ghee", "yogurt", "yoghurt", "curd", "cream"}},
	{domain.CategoryFruits, []string{"apple", "banana", "mango", "lemon", "lime", "orange", "grape", "berry", "coconut", "pineapple", "raisin", "date"}},
}

// Categorize maps an ingredient name onto a shopping category by keyword substring.
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, c := range categoryKeywords {
		for _, kw := range c.keywords {
			if strings.Contains(lower, kw) {
				return c.category
			}
		}
	}
	return domain.CategoryOther
}

func quantityText(ing *entities.Ingredient) string {
	return strings.TrimSpace(strings.TrimSpace(ing.Quantity) + " " + strings.TrimSpace(ing.Unit))
}

// BuildShoppingItems merges the ingredients of every recipe in the plan. Names are grouped
// case-insensitively, keeping the first spelling and first-seen order; quantity texts are
// joined with " + " because they are free text and cannot be summed.
func BuildShoppingItems(plan *entities.MealPlan) []*entities.ShoppingListItem {
	var items []*entities.ShoppingListItem
	index := map[string]int{}

	for _, it := range plan.Items {
		if it.Recipe == nil {
			continue
		}
		for _, ing := range it.Recipe.Ingredients {
			name := strings.TrimSpace(ing.Name)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			qty := quantityText(ing)

			if i, ok := index[key]; ok {
				if qty != "" {
					if items[i].Quantity == "" {
						items[i].Quantity = qty
					} else {
						items[i].Quantity += " + " + qty
					}
				}
				continue
			}
			index[key] = len(items)
			items = append(items, &entities.ShoppingListItem{
				Name:     name,
				Quantity: qty,
				Category: Categorize(name),
				Position: len(items),
			})
		}
	}
	return items
}
