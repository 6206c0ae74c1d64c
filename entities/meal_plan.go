package entities

import (
	"time"

	"github.com/google/uuid"
)

type MealPlan struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Name      string    `json:"name"`
	WeekStart time.Time `gorm:"type:date" json:"week_start"`

	Items []*MealPlanItem `gorm:"foreignKey:MealPlanID"`
	Timestamp
}

type MealPlanItem struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MealPlanID uuid.UUID `gorm:"type:uuid;index;not null" json:"meal_plan_id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;index;not null" json:"recipe_id"`
	DayOfWeek  string    `json:"day_of_week"` // MONDAY..SUNDAY
	MealType   string    `json:"meal_type"`   // BREAKFAST, LUNCH, DINNER, SNACK
	Servings   int       `json:"servings"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}

type ShoppingList struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	MealPlanID *uuid.UUID `gorm:"type:uuid" json:"meal_plan_id,omitempty"`
	Name       string     `json:"name"`

	Items []*ShoppingListItem `gorm:"foreignKey:ShoppingListID"`
	Timestamp
}

type ShoppingListItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ShoppingListID uuid.UUID `gorm:"type:uuid;index;not null" json:"shopping_list_id"`
	Name           string    `json:"name"`
	Quantity       string    `json:"quantity"`
	Category       string    `json:"category"`
	IsChecked      bool      `json:"is_checked"`
	Position       int       `json:"position"`

	Timestamp
}
