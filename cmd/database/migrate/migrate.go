package migration

import (
	"Recipe-Hub/entities"
	"fmt"

	"gorm.io/gorm"
)

// Models lists every table in dependency order.
func Models() []interface{} {
	return []interface{}{
		&entities.User{},
		&entities.Location{},
		&entities.Follow{},
		&entities.Recipe{},
		&entities.Ingredient{},
		&entities.CulturalTag{},
		&entities.Like{},
		&entities.Rating{},
		&entities.Comment{},
		&entities.RecipeBookmark{},
		&entities.RecipeHistory{},
		&entities.RecipeView{},
		&entities.CulturalPreference{},
		&entities.Course{},
		&entities.Lesson{},
		&entities.CourseEnrollment{},
		&entities.MealPlan{},
		&entities.MealPlanItem{},
		&entities.ShoppingList{},
		&entities.ShoppingListItem{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	for _, model := range Models() {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrating %T: %w", model, err)
		}
	}

	// no self-follow
	if err := db.Exec(`DO $$ BEGIN
		ALTER TABLE follows ADD CONSTRAINT chk_follows_not_self CHECK (follower_id <> following_id);
	EXCEPTION WHEN duplicate_object THEN NULL; END $$;`).Error; err != nil {
		return fmt.Errorf("follows self check: %w", err)
	}
	if err := db.Exec(`DO $$ BEGIN
		ALTER TABLE ratings ADD CONSTRAINT chk_ratings_value CHECK (value BETWEEN 1 AND 5);
	EXCEPTION WHEN duplicate_object THEN NULL; END $$;`).Error; err != nil {
		return fmt.Errorf("ratings value check: %w", err)
	}
	return nil
}
