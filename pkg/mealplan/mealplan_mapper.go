package mealplan

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/pkg/recipe"
)

func ToMealPlan(p *entities.MealPlan) domain.MealPlan {
	out := domain.MealPlan{
		ID:        p.ID.String(),
		Name:      p.Name,
		WeekStart: p.WeekStart,
		Items:     make([]domain.MealPlanItem, 0, len(p.Items)),
		CreatedAt: p.CreatedAt,
	}
	for _, it := range p.Items {
		out.Items = append(out.Items, domain.MealPlanItem{
			ID:        it.ID.String(),
			DayOfWeek: it.DayOfWeek,
			MealType:  it.MealType,
			Servings:  it.Servings,
			Recipe:    recipe.ToBrief(it.Recipe),
		})
	}
	return out
}

func ToShoppingListItem(i *entities.ShoppingListItem) domain.ShoppingListItem {
	return domain.ShoppingListItem{
		ID:        i.ID.String(),
		Name:      i.Name,
		Quantity:  i.Quantity,
		Category:  i.Category,
		IsChecked: i.IsChecked,
	}
}

func ToShoppingList(l *entities.ShoppingList) domain.ShoppingList {
	out := domain.ShoppingList{
		ID:        l.ID.String(),
		Name:      l.Name,
		Items:     make([]domain.ShoppingListItem, 0, len(l.Items)),
		CreatedAt: l.CreatedAt,
	}
	if l.MealPlanID != nil {
		out.MealPlanID = l.MealPlanID.String()
	}
	for _, it := range l.Items {
		out.Items = append(out.Items, ToShoppingListItem(it))
	}
	return out
}
