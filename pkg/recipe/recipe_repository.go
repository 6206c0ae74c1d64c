package recipe

import (
	"Recipe-Hub/entities"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		DeleteRecipe(ctx context.Context, id string) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter ListFilter, offset, limit int) ([]*entities.Recipe, int64, error)
		RecordView(ctx context.Context, recipeID uuid.UUID, viewerID *uuid.UUID) error

		GetStats(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]Stats, error)
		GetViewerState(ctx context.Context, viewerID string, recipeIDs []uuid.UUID) (map[uuid.UUID]ViewerRow, error)

		CreateLike(ctx context.Context, like *entities.Like) error
		DeleteLike(ctx context.Context, userID, recipeID string) (int64, error)
		CountLikes(ctx context.Context, recipeID string) (int64, error)
		UpsertRating(ctx context.Context, rating *entities.Rating) error

		CreateComment(ctx context.Context, comment *entities.Comment) error
		GetCommentByID(ctx context.Context, id string) (*entities.Comment, error)
		DeleteComment(ctx context.Context, id string) error
		GetComments(ctx context.Context, recipeID string, offset, limit int) ([]*entities.Comment, int64, error)

		BookmarkRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
		RemoveBookmark(ctx context.Context, userID, recipeID string) error
		GetRecipeBookmarks(ctx context.Context, userID string, offset, limit int) ([]*entities.Recipe, int64, error)

		AddRecipeHistory(ctx context.Context, userID, recipeID uuid.UUID) error
		GetRecipeHistory(ctx context.Context, userID string, offset, limit int) ([]*entities.RecipeHistory, int64, error)
	}

	ListFilter struct {
		Search   string
		AuthorID string
	}

	Stats struct {
		RecipeID      uuid.UUID
		LikesCount    int
		CommentsCount int
		RatingsCount  int
		AverageRating float64
	}

	ViewerRow struct {
		RecipeID     uuid.UUID
		IsLiked      bool
		IsBookmarked bool
		IsCooked     bool
		MyRating     *int
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// PreloadRecipe loads the author, ordered ingredients and cultural tag.
func PreloadRecipe(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("CulturalTag")
}

// CreateRecipe writes the recipe, its ingredients and its cultural tag atomically.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(recipe).Error; err != nil {
			return err
		}
		for i, ing := range recipe.Ingredients {
			ing.RecipeID = recipe.ID
			ing.Position = i
		}
		if len(recipe.Ingredients) > 0 {
			if err := tx.Create(&recipe.Ingredients).Error; err != nil {
				return err
			}
		}
		if recipe.CulturalTag != nil {
			recipe.CulturalTag.RecipeID = recipe.ID
			if err := tx.Create(recipe.CulturalTag).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateRecipe replaces the scalar fields, the ingredient rows and, when set, the cultural tag.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(recipe).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.Ingredient{}).Error; err != nil {
			return err
		}
		for i, ing := range recipe.Ingredients {
			ing.ID = uuid.New()
			ing.RecipeID = recipe.ID
			ing.Position = i
		}
		if len(recipe.Ingredients) > 0 {
			if err := tx.Create(&recipe.Ingredients).Error; err != nil {
				return err
			}
		}
		if recipe.CulturalTag != nil {
			return upsertCulturalTag(tx, recipe.CulturalTag)
		}
		return nil
	})
}

func upsertCulturalTag(tx *gorm.DB, tag *entities.CulturalTag) error {
	if tag.ID == uuid.Nil {
		tag.ID = uuid.New()
	}
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "recipe_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"cuisine_type", "diet_types", "spice_level", "religion", "region", "festival", "updated_at",
		}),
	}).Create(tag).Error
}

// DeleteRecipe removes the recipe and every row that references it.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dependents := []interface{}{
			&entities.Ingredient{},
			&entities.Comment{},
			&entities.Like{},
			&entities.Rating{},
			&entities.RecipeBookmark{},
			&entities.RecipeView{},
			&entities.RecipeHistory{},
			&entities.MealPlanItem{},
			&entities.CulturalTag{},
		}
		for _, model := range dependents {
			if err := tx.Where("recipe_id = ?", id).Delete(model).Error; err != nil {
				return err
			}
		}
		res := tx.Where("id = ?", id).Delete(&entities.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := PreloadRecipe(r.db.WithContext(ctx)).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// SearchScope matches title, description or any tag case-insensitively.
func SearchScope(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		search = strings.TrimSpace(search)
		if search == "" {
			return db
		}
		like := "%" + search + "%"
		return db.Where(
			"recipes.title ILIKE ? OR recipes.description ILIKE ? OR EXISTS (SELECT 1 FROM unnest(recipes.tags) AS t WHERE t ILIKE ?)",
			like, like, like,
		)
	}
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter ListFilter, offset, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	base := r.db.WithContext(ctx).Model(&entities.Recipe{}).Scopes(SearchScope(filter.Search))
	if filter.AuthorID != "" {
		base = base.Where("recipes.user_id = ?", filter.AuthorID)
	}

	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := PreloadRecipe(base.Session(&gorm.Session{})).
		Order("recipes.created_at desc, recipes.id desc").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}

func (r *recipeRepository) RecordView(ctx context.Context, recipeID uuid.UUID, viewerID *uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		view := &entities.RecipeView{ID: uuid.New(), RecipeID: recipeID, ViewerID: viewerID}
		if err := tx.Create(view).Error; err != nil {
			return err
		}
		return tx.Model(&entities.Recipe{}).
			Where("id = ?", recipeID).
			UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error
	})
}

// GetStats aggregates engagement counts for a page of recipes in one round trip.
func (r *recipeRepository) GetStats(ctx context.Context, recipeIDs []uuid.UUID) (map[uuid.UUID]Stats, error) {
	out := make(map[uuid.UUID]Stats, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return out, nil
	}
	var rows []Stats
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			r.id AS recipe_id,
			(SELECT COUNT(*) FROM likes l WHERE l.recipe_id = r.id) AS likes_count,
			(SELECT COUNT(*) FROM comments c WHERE c.recipe_id = r.id) AS comments_count,
			(SELECT COUNT(*) FROM ratings rt WHERE rt.recipe_id = r.id) AS ratings_count,
			COALESCE((SELECT AVG(rt.value) FROM ratings rt WHERE rt.recipe_id = r.id), 0)::float8 AS average_rating
		FROM recipes r
		WHERE r.id IN ?`, recipeIDs).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.RecipeID] = row
	}
	return out, nil
}

func (r *recipeRepository) GetViewerState(ctx context.Context, viewerID string, recipeIDs []uuid.UUID) (map[uuid.UUID]ViewerRow, error) {
	out := make(map[uuid.UUID]ViewerRow, len(recipeIDs))
	if viewerID == "" || len(recipeIDs) == 0 {
		return out, nil
	}
	var rows []ViewerRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			r.id AS recipe_id,
			EXISTS (SELECT 1 FROM likes l WHERE l.recipe_id = r.id AND l.user_id = @viewer) AS is_liked,
			EXISTS (SELECT 1 FROM recipe_bookmarks b WHERE b.recipe_id = r.id AND b.user_id = @viewer) AS is_bookmarked,
			EXISTS (SELECT 1 FROM recipe_histories h WHERE h.recipe_id = r.id AND h.user_id = @viewer) AS is_cooked,
			(SELECT rt.value FROM ratings rt WHERE rt.recipe_id = r.id AND rt.user_id = @viewer) AS my_rating
		FROM recipes r
		WHERE r.id IN @ids`,
		map[string]interface{}{"viewer": viewerID, "ids": recipeIDs},
	).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.RecipeID] = row
	}
	return out, nil
}

func (r *recipeRepository) CreateLike(ctx context.Context, like *entities.Like) error {
	return r.db.WithContext(ctx).Create(like).Error
}

func (r *recipeRepository) DeleteLike(ctx context.Context, userID, recipeID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.Like{})
	return res.RowsAffected, res.Error
}

func (r *recipeRepository) CountLikes(ctx context.Context, recipeID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.Like{}).Where("recipe_id = ?", recipeID).Count(&count).Error
	return count, err
}

// UpsertRating keeps one rating per (user, recipe); rating again overwrites the value.
func (r *recipeRepository) UpsertRating(ctx context.Context, rating *entities.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "recipe_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"value": rating.Value, "updated_at": time.Now()}),
	}).Create(rating).Error
}

func (r *recipeRepository) CreateComment(ctx context.Context, comment *entities.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *recipeRepository) GetCommentByID(ctx context.Context, id string) (*entities.Comment, error) {
	var comment entities.Comment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Recipe").
		Where("id = ?", id).
		First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *recipeRepository) DeleteComment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Comment{}).Error
}

func (r *recipeRepository) GetComments(ctx context.Context, recipeID string, offset, limit int) ([]*entities.Comment, int64, error) {
	var comments []*entities.Comment
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&entities.Comment{}).
		Where("recipe_id = ?", recipeID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("recipe_id = ?", recipeID).
		Order("created_at desc, id desc").
		Offset(offset).
		Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}
	return comments, count, nil
}

// BookmarkRecipe is idempotent.
func (r *recipeRepository) BookmarkRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	bookmark := &entities.RecipeBookmark{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(bookmark).Error
}

func (r *recipeRepository) RemoveBookmark(ctx context.Context, userID, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.RecipeBookmark{}).Error
}

func (r *recipeRepository) GetRecipeBookmarks(ctx context.Context, userID string, offset, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	base := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Joins("JOIN recipe_bookmarks ON recipes.id = recipe_bookmarks.recipe_id").
		Where("recipe_bookmarks.user_id = ?", userID)

	if err := base.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := PreloadRecipe(base.Session(&gorm.Session{})).
		Order("recipe_bookmarks.created_at desc").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}
	return recipes, count, nil
}

func (r *recipeRepository) AddRecipeHistory(ctx context.Context, userID, recipeID uuid.UUID) error {
	history := &entities.RecipeHistory{
		ID:       uuid.New(),
		UserID:   userID,
		RecipeID: recipeID,
		CookedAt: time.Now(),
	}
	return r.db.WithContext(ctx).Create(history).Error
}

func (r *recipeRepository) GetRecipeHistory(ctx context.Context, userID string, offset, limit int) ([]*entities.RecipeHistory, int64, error) {
	var history []*entities.RecipeHistory
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&entities.RecipeHistory{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}
	if err := r.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.User").
		Preload("Recipe.Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("position asc") }).
		Preload("Recipe.CulturalTag").
		Where("user_id = ?", userID).
		Order("cooked_at desc").
		Offset(offset).
		Limit(limit).
		Find(&history).Error; err != nil {
		return nil, 0, err
	}
	return history, count, nil
}
