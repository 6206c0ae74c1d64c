package cultural

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/pkg/recipe"
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CulturalRepository interface {
		GetRecipes(ctx context.Context, filter domain.CulturalFilter, excludeUserID string, offset, limit int) ([]*entities.Recipe, int64, error)
		GetRecipeOwner(ctx context.Context, recipeID string) (uuid.UUID, error)
		UpsertRecipeTag(ctx context.Context, tag *entities.CulturalTag) error
		GetRecipeTag(ctx context.Context, recipeID string) (*entities.CulturalTag, error)

		GetPreference(ctx context.Context, userID string) (*entities.CulturalPreference, error)
		UpsertPreference(ctx context.Context, pref *entities.CulturalPreference) error

		GetOnboarding(ctx context.Context, userID string) (step string, onboarded bool, err error)
		UpdateOnboarding(ctx context.Context, userID, step string, onboarded bool) error
	}

	culturalRepository struct {
		db *gorm.DB
	}
)

func NewCulturalRepository(db *gorm.DB) CulturalRepository {
	return &culturalRepository{db: db}
}

func (r *culturalRepository) GetRecipes(ctx context.Context, filter domain.CulturalFilter, excludeUserID string, offset, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	base := r.db.WithContext(ctx).Model(&entities.Recipe{}).Scopes(FilterScope(filter))
	if excludeUserID != "" {
		base = base.Where("recipes.user_id <> ?", excludeUserID)
	}

	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := recipe.PreloadRecipe(base.Session(&gorm.Session{})).
		Select("recipes.*").
		Order("recipes.created_at desc, recipes.id desc").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}

func (r *culturalRepository) GetRecipeOwner(ctx context.Context, recipeID string) (uuid.UUID, error) {
	var rec entities.Recipe
	if err := r.db.WithContext(ctx).Select("id", "user_id").Where("id = ?", recipeID).First(&rec).Error; err != nil {
		return uuid.Nil, err
	}
	return rec.UserID, nil
}

func (r *culturalRepository) UpsertRecipeTag(ctx context.Context, tag *entities.CulturalTag) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"cuisine_type", "diet_types", "spice_level", "religion", "region", "festival", "updated_at",
		}),
	}).Create(tag).Error
}

func (r *culturalRepository) GetRecipeTag(ctx context.Context, recipeID string) (*entities.CulturalTag, error) {
	var tag entities.CulturalTag
	if err := r.db.WithContext(ctx).Where("recipe_id = ?", recipeID).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *culturalRepository) GetPreference(ctx context.Context, userID string) (*entities.CulturalPreference, error) {
	var pref entities.CulturalPreference
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

// UpsertPreference replaces the user's preference row and, for users still on the
// preferences step, moves their onboarding forward in the same transaction.
func (r *culturalRepository) UpsertPreference(ctx context.Context, pref *entities.CulturalPreference) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"religion", "diet_types", "cuisine_types", "spice_level", "region",
				"festivals", "avoid_ingredients", "updated_at",
			}),
		}).Create(pref).Error; err != nil {
			return err
		}
		return tx.Model(&entities.User{}).
			Where("id = ? AND onboarding_step = ?", pref.UserID, domain.OnboardingStepPreferences).
			Update("onboarding_step", domain.OnboardingStepLocation).Error
	})
}

func (r *culturalRepository) GetOnboarding(ctx context.Context, userID string) (string, bool, error) {
	var user entities.User
	err := r.db.WithContext(ctx).
		Select("id", "onboarding_step", "is_onboarded").
		Where("id = ?", userID).
		First(&user).Error
	if err != nil {
		return "", false, err
	}
	return user.OnboardingStep, user.IsOnboarded, nil
}

func (r *culturalRepository) UpdateOnboarding(ctx context.Context, userID, step string, onboarded bool) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"onboarding_step": step, "is_onboarded": onboarded}).Error
}
