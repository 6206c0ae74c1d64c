package entities

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CulturalTag struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID    uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"recipe_id"`
	CuisineType string         `gorm:"index" json:"cuisine_type"`
	DietTypes   pq.StringArray `gorm:"type:text[]" json:"diet_types"`
	SpiceLevel  string         `json:"spice_level,omitempty"`
	Religion    string         `json:"religion,omitempty"`
	Region      string         `json:"region,omitempty"`
	Festival    string         `json:"festival,omitempty"`

	Timestamp
}

type CulturalPreference struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID      `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Religion         string         `json:"religion,omitempty"`
	DietTypes        pq.StringArray `gorm:"type:text[]" json:"diet_types"`
	CuisineTypes     pq.StringArray `gorm:"type:text[]" json:"cuisine_types"`
	SpiceLevel       string         `json:"spice_level,omitempty"`
	Region           string         `json:"region,omitempty"`
	Festivals        pq.StringArray `gorm:"type:text[]" json:"festivals"`
	AvoidIngredients pq.StringArray `gorm:"type:text[]" json:"avoid_ingredients"`

	Timestamp
}
