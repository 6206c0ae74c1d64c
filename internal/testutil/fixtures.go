package testutil

import (
	"Recipe-Hub/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *entities.User {
	tb.Helper()
	u := &entities.User{
		ID:             uuid.New(),
		Phone:          "+1555" + uuid.NewString()[:7],
		Name:           name,
		Role:           "user",
		OnboardingStep: "PROFILE",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedRecipe(tb testing.TB, ctx context.Context, tx *gorm.DB, userID uuid.UUID, title string, ingredients ...string) *entities.Recipe {
	tb.Helper()
	r := &entities.Recipe{
		ID:       uuid.New(),
		UserID:   userID,
		Title:    title,
		Servings: 2,
		Steps:    pq.StringArray{"cook"},
		Tags:     pq.StringArray{},
	}
	for i, name := range ingredients {
		r.Ingredients = append(r.Ingredients, &entities.Ingredient{
			ID:       uuid.New(),
			Name:     name,
			Quantity: "1",
			Position: i,
		})
	}
	if err := tx.WithContext(ctx).Create(r).Error; err != nil {
		tb.Fatalf("seed recipe: %v", err)
	}
	return r
}

func SeedCulturalTag(tb testing.TB, ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, tag entities.CulturalTag) *entities.CulturalTag {
	tb.Helper()
	tag.ID = uuid.New()
	tag.RecipeID = recipeID
	if err := tx.WithContext(ctx).Create(&tag).Error; err != nil {
		tb.Fatalf("seed cultural tag: %v", err)
	}
	return &tag
}

func SeedLike(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, recipeID uuid.UUID, at time.Time) {
	tb.Helper()
	l := &entities.Like{ID: uuid.New(), UserID: userID, RecipeID: recipeID, CreatedAt: at}
	if err := tx.WithContext(ctx).Create(l).Error; err != nil {
		tb.Fatalf("seed like: %v", err)
	}
}

func SeedComment(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, recipeID uuid.UUID, at time.Time) {
	tb.Helper()
	c := &entities.Comment{ID: uuid.New(), UserID: userID, RecipeID: recipeID, Content: "nice"}
	c.CreatedAt = at
	c.UpdatedAt = at
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed comment: %v", err)
	}
}

func SeedView(tb testing.TB, ctx context.Context, tx *gorm.DB, recipeID uuid.UUID, at time.Time) {
	tb.Helper()
	v := &entities.RecipeView{ID: uuid.New(), RecipeID: recipeID, CreatedAt: at}
	if err := tx.WithContext(ctx).Create(v).Error; err != nil {
		tb.Fatalf("seed view: %v", err)
	}
}

func SeedFollow(tb testing.TB, ctx context.Context, tx *gorm.DB, followerID, followingID uuid.UUID) {
	tb.Helper()
	f := &entities.Follow{ID: uuid.New(), FollowerID: followerID, FollowingID: followingID}
	if err := tx.WithContext(ctx).Create(f).Error; err != nil {
		tb.Fatalf("seed follow: %v", err)
	}
}
