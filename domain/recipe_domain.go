package domain

import (
	"errors"
	"time"
)

var (
	ErrRecipeNotFound            = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess  = errors.New("unauthorized access to recipe")
	ErrAlreadyLiked              = errors.New("recipe already liked")
	ErrNotLiked                  = errors.New("recipe is not liked")
	ErrInvalidRating             = errors.New("rating must be between 1 and 5")
	ErrCommentNotFound           = errors.New("comment not found")
	ErrUnauthorizedCommentAccess = errors.New("unauthorized access to comment")
)

const (
	DifficultyEasy   = "EASY"
	DifficultyMedium = "MEDIUM"
	DifficultyHard   = "HARD"
)

type (
	IngredientRequest struct {
		Name     string `json:"name" validate:"required,max=100"`
		Quantity string `json:"quantity" validate:"omitempty,max=50"`
		Unit     string `json:"unit" validate:"omitempty,max=30"`
	}

	RecipeRequest struct {
		Title           string              `json:"title" validate:"required,max=200"`
		Description     string              `json:"description" validate:"omitempty,max=2000"`
		ImageURL        string              `json:"image_url" validate:"omitempty,url"`
		PrepTimeMinutes int                 `json:"prep_time_minutes" validate:"min=0,max=1440"`
		CookTimeMinutes int                 `json:"cook_time_minutes" validate:"min=0,max=1440"`
		Servings        int                 `json:"servings" validate:"min=1,max=100"`
		DifficultyLevel string              `json:"difficulty_level" validate:"omitempty,oneof=EASY MEDIUM HARD"`
		CuisineType     string              `json:"cuisine_type" validate:"omitempty,max=40"`
		Ingredients     []IngredientRequest `json:"ingredients" validate:"required,min=1,dive"`
		Steps           []string            `json:"steps" validate:"required,min=1,dive,required,max=2000"`
		Tags            []string            `json:"tags" validate:"omitempty,max=20,dive,max=40"`
		CulturalTag     *CulturalTagRequest `json:"cultural_tag" validate:"omitempty"`
	}

	RecipeListRequest struct {
		Search   string `json:"search" validate:"omitempty,max=100"`
		AuthorID string `json:"author_id" validate:"omitempty,uuid"`
		Page
	}

	Ingredient struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Quantity string `json:"quantity"`
		Unit     string `json:"unit,omitempty"`
	}

	RecipeStats struct {
		LikesCount    int     `json:"likes_count"`
		CommentsCount int     `json:"comments_count"`
		RatingsCount  int     `json:"ratings_count"`
		AverageRating float64 `json:"average_rating"`
	}

	ViewerState struct {
		IsLiked      bool `json:"is_liked"`
		IsBookmarked bool `json:"is_bookmarked"`
		IsCooked     bool `json:"is_cooked"`
		MyRating     *int `json:"my_rating,omitempty"`
	}

	Recipe struct {
		ID              string       `json:"id"`
		Author          UserSummary  `json:"author"`
		Title           string       `json:"title"`
		Description     string       `json:"description"`
		ImageURL        string       `json:"image_url,omitempty"`
		PrepTimeMinutes int          `json:"prep_time_minutes"`
		CookTimeMinutes int          `json:"cook_time_minutes"`
		Servings        int          `json:"servings"`
		DifficultyLevel string       `json:"difficulty_level"`
		CuisineType     string       `json:"cuisine_type"`
		Steps           []string     `json:"steps"`
		Tags            []string     `json:"tags"`
		ViewCount       int          `json:"view_count"`
		Ingredients     []Ingredient `json:"ingredients"`
		CulturalTag     *CulturalTag `json:"cultural_tag,omitempty"`
		Stats           RecipeStats  `json:"stats"`
		Viewer          ViewerState  `json:"viewer"`
		CreatedAt       time.Time    `json:"created_at"`
		UpdatedAt       time.Time    `json:"updated_at"`
	}

	RecipeConnection struct {
		Recipes []Recipe `json:"recipes"`
		Total   int64    `json:"total"`
		Offset  int      `json:"offset"`
		Limit   int      `json:"limit"`
	}

	CommentRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Content  string `json:"content" validate:"required,max=2000"`
	}

	Comment struct {
		ID        string      `json:"id"`
		RecipeID  string      `json:"recipe_id"`
		Author    UserSummary `json:"author"`
		Content   string      `json:"content"`
		CreatedAt time.Time   `json:"created_at"`
	}

	CommentConnection struct {
		Comments []Comment `json:"comments"`
		Total    int64     `json:"total"`
	}

	RatingRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Value    int    `json:"value" validate:"min=1,max=5"`
	}

	RatingResult struct {
		RecipeID      string  `json:"recipe_id"`
		MyRating      int     `json:"my_rating"`
		AverageRating float64 `json:"average_rating"`
		RatingsCount  int     `json:"ratings_count"`
	}

	LikeResult struct {
		RecipeID   string `json:"recipe_id"`
		IsLiked    bool   `json:"is_liked"`
		LikesCount int    `json:"likes_count"`
	}

	CookingHistoryEntry struct {
		Recipe   Recipe    `json:"recipe"`
		CookedAt time.Time `json:"cooked_at"`
	}

	CookingHistory struct {
		Entries []CookingHistoryEntry `json:"entries"`
		Total   int64                 `json:"total"`
	}

	// CommentEvent is published to subscribers of a single recipe.
	CommentEvent struct {
		RecipeID string  `json:"recipe_id"`
		Comment  Comment `json:"comment"`
	}
)
