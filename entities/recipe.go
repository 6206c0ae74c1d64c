package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Recipe struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;index;not null" json:"user_id"`
	Title           string         `gorm:"not null" json:"title"`
	Description     string         `json:"description"`
	ImageURL        string         `json:"image_url,omitempty"`
	PrepTimeMinutes int            `json:"prep_time_minutes"`
	CookTimeMinutes int            `json:"cook_time_minutes"`
	Servings        int            `json:"servings"`
	DifficultyLevel string         `json:"difficulty_level"`
	CuisineType     string         `json:"cuisine_type"`
	Steps           pq.StringArray `gorm:"type:text[]" json:"steps"`
	Tags            pq.StringArray `gorm:"type:text[]" json:"tags"`
	ViewCount       int            `gorm:"default:0" json:"view_count"`

	User        *User         `gorm:"foreignKey:UserID"`
	Ingredients []*Ingredient `gorm:"foreignKey:RecipeID"`
	CulturalTag *CulturalTag  `gorm:"foreignKey:RecipeID"`
	Timestamp
}

type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index;not null" json:"recipe_id"`
	Name     string    `gorm:"not null" json:"name"`
	Quantity string    `json:"quantity"`
	Unit     string    `json:"unit,omitempty"`
	Position int       `json:"position"`
}

type RecipeBookmark struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_user_recipe" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookmark_user_recipe;index" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamptz" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type RecipeHistory struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	CookedAt time.Time `gorm:"type:timestamptz" json:"cooked_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type RecipeView struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_recipe_view_recipe_time" json:"recipe_id"`
	ViewerID  *uuid.UUID `gorm:"type:uuid" json:"viewer_id,omitempty"`
	CreatedAt time.Time  `gorm:"type:timestamptz;index:idx_recipe_view_recipe_time" json:"created_at"`
}
