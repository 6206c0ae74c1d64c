package community

import (
	"Recipe-Hub/entities"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CommunityRepository interface {
		GetTrending(ctx context.Context, since time.Time, limit int) ([]TrendingRow, error)
		GetTopChefs(ctx context.Context, limit int) ([]ChefRow, error)
		GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error)
		GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error)
		GetTotals(ctx context.Context, since time.Time) (Totals, error)
		GetRecentComments(ctx context.Context, limit int) ([]*entities.Comment, error)
	}

	TrendingRow struct {
		RecipeID      uuid.UUID
		CreatedAt     time.Time
		LikesCount    int
		CommentsCount int
		ViewsCount    int
	}

	ChefRow struct {
		UserID         uuid.UUID
		RecipesCount   int
		FollowersCount int
		TotalLikes     int
		AverageRating  float64
	}

	Totals struct {
		Members          int
		Recipes          int
		CommentsThisWeek int
	}

	communityRepository struct {
		db *gorm.DB
	}
)

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

const trendingQuery = `
WITH recent_likes AS (
	SELECT recipe_id, COUNT(*) AS n FROM likes WHERE created_at >= @since GROUP BY recipe_id
), recent_comments AS (
	SELECT recipe_id, COUNT(*) AS n FROM comments WHERE created_at >= @since GROUP BY recipe_id
), recent_views AS (
	SELECT recipe_id, COUNT(*) AS n FROM recipe_views WHERE created_at >= @since GROUP BY recipe_id
)
SELECT
	r.id AS recipe_id,
	r.created_at,
	COALESCE(l.n, 0) AS likes_count,
	COALESCE(c.n, 0) AS comments_count,
	COALESCE(v.n, 0) AS views_count
FROM recipes r
LEFT JOIN recent_likes l ON l.recipe_id = r.id
LEFT JOIN recent_comments c ON c.recipe_id = r.id
LEFT JOIN recent_views v ON v.recipe_id = r.id
ORDER BY COALESCE(l.n, 0) * 3 + COALESCE(c.n, 0) * 2 + COALESCE(v.n, 0) DESC, r.created_at DESC, r.id
LIMIT @limit`

func (r *communityRepository) GetTrending(ctx context.Context, since time.Time, limit int) ([]TrendingRow, error) {
	var rows []TrendingRow
	err := r.db.WithContext(ctx).
		Raw(trendingQuery, map[string]any{"since": since, "limit": limit}).
		Scan(&rows).Error
	return rows, err
}

const topChefsQuery = `
WITH chef_recipes AS (
	SELECT user_id, COUNT(*) AS n FROM recipes GROUP BY user_id
), chef_followers AS (
	SELECT following_id AS user_id, COUNT(*) AS n FROM follows GROUP BY following_id
), chef_likes AS (
	SELECT r.user_id, COUNT(*) AS n FROM likes l JOIN recipes r ON r.id = l.recipe_id GROUP BY r.user_id
), chef_ratings AS (
	SELECT r.user_id, AVG(rt.value)::float8 AS avg FROM ratings rt JOIN recipes r ON r.id = rt.recipe_id GROUP BY r.user_id
)
SELECT
	cr.user_id,
	cr.n AS recipes_count,
	COALESCE(cf.n, 0) AS followers_count,
	COALESCE(cl.n, 0) AS total_likes,
	COALESCE(ra.avg, 0) AS average_rating
FROM chef_recipes cr
LEFT JOIN chef_followers cf ON cf.user_id = cr.user_id
LEFT JOIN chef_likes cl ON cl.user_id = cr.user_id
LEFT JOIN chef_ratings ra ON ra.user_id = cr.user_id
ORDER BY cr.n * 2 + COALESCE(cf.n, 0) * 3 + COALESCE(cl.n, 0) + COALESCE(ra.avg, 0) * 10 DESC, cr.user_id
LIMIT @limit`

// GetTopChefs only ranks users who have published at least one recipe.
func (r *communityRepository) GetTopChefs(ctx context.Context, limit int) ([]ChefRow, error) {
	var rows []ChefRow
	err := r.db.WithContext(ctx).
		Raw(topChefsQuery, map[string]any{"limit": limit}).
		Scan(&rows).Error
	return rows, err
}

func (r *communityRepository) GetRecipesByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if len(ids) == 0 {
		return recipes, nil
	}
	err := r.db.WithContext(ctx).Preload("User").Where("id IN ?", ids).Find(&recipes).Error
	return recipes, err
}

func (r *communityRepository) GetUsersByIDs(ctx context.Context, ids []uuid.UUID) ([]*entities.User, error) {
	var users []*entities.User
	if len(ids) == 0 {
		return users, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}

func (r *communityRepository) GetTotals(ctx context.Context, since time.Time) (Totals, error) {
	var totals Totals
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM users) AS members,
			(SELECT COUNT(*) FROM recipes) AS recipes,
			(SELECT COUNT(*) FROM comments WHERE created_at >= @since) AS comments_this_week`,
		map[string]any{"since": since},
	).Scan(&totals).Error
	return totals, err
}

func (r *communityRepository) GetRecentComments(ctx context.Context, limit int) ([]*entities.Comment, error) {
	var comments []*entities.Comment
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at desc, id desc").
		Limit(limit).
		Find(&comments).Error
	return comments, err
}
