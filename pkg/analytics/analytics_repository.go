package analytics

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AnalyticsRepository interface {
		GetRecipeOwner(ctx context.Context, recipeID string) (uuid.UUID, error)
		CountMetrics(ctx context.Context, scope Scope, w domain.DateRange) (domain.MetricCounts, error)
		GetDailyCounts(ctx context.Context, scope Scope, w domain.DateRange) ([]DailyRow, error)
	}

	// Scope selects the author's recipes, or one of them when RecipeID is set.
	Scope struct {
		AuthorID string
		RecipeID string
	}

	DailyRow struct {
		Day      time.Time
		Views    int
		Likes    int
		Comments int
	}

	analyticsRepository struct {
		db *gorm.DB
	}
)

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func (s Scope) recipeFilter() string {
	if s.RecipeID != "" {
		return "r.user_id = @author AND r.id = @recipe"
	}
	return "r.user_id = @author"
}

func (s Scope) args(w domain.DateRange) map[string]any {
	args := map[string]any{"author": s.AuthorID, "from": w.Start, "to": w.End}
	if s.RecipeID != "" {
		args["recipe"] = s.RecipeID
	}
	return args
}

func (r *analyticsRepository) GetRecipeOwner(ctx context.Context, recipeID string) (uuid.UUID, error) {
	var rec entities.Recipe
	if err := r.db.WithContext(ctx).Select("id", "user_id").Where("id = ?", recipeID).First(&rec).Error; err != nil {
		return uuid.Nil, err
	}
	return rec.UserID, nil
}

// CountMetrics counts followers only for author-wide scopes; a single recipe has none.
func (r *analyticsRepository) CountMetrics(ctx context.Context, scope Scope, w domain.DateRange) (domain.MetricCounts, error) {
	filter := scope.recipeFilter()
	followers := "(SELECT COUNT(*) FROM follows WHERE following_id = @author AND created_at >= @from AND created_at < @to)"
	if scope.RecipeID != "" {
		followers = "0"
	}

	query := fmt.Sprintf(`
		SELECT
			(SELECT COUNT(*) FROM recipe_views v JOIN recipes r ON r.id = v.recipe_id
				WHERE %[1]s AND v.created_at >= @from AND v.created_at < @to) AS views,
			(SELECT COUNT(*) FROM likes l JOIN recipes r ON r.id = l.recipe_id
				WHERE %[1]s AND l.created_at >= @from AND l.created_at < @to) AS likes,
			(SELECT COUNT(*) FROM comments c JOIN recipes r ON r.id = c.recipe_id
				WHERE %[1]s AND c.created_at >= @from AND c.created_at < @to) AS comments,
			%[2]s AS new_followers`, filter, followers)

	var counts domain.MetricCounts
	err := r.db.WithContext(ctx).Raw(query, scope.args(w)).Scan(&counts).Error
	return counts, err
}

// GetDailyCounts buckets events by UTC day whatever the session TimeZone is.
func (r *analyticsRepository) GetDailyCounts(ctx context.Context, scope Scope, w domain.DateRange) ([]DailyRow, error) {
	filter := scope.recipeFilter()
	query := fmt.Sprintf(`
		SELECT day, SUM(views) AS views, SUM(likes) AS likes, SUM(comments) AS comments
		FROM (
			SELECT date_trunc('day', v.created_at AT TIME ZONE 'UTC') AS day, 1 AS views, 0 AS likes, 0 AS comments
			FROM recipe_views v JOIN recipes r ON r.id = v.recipe_id
			WHERE %[1]s AND v.created_at >= @from AND v.created_at < @to
			UNION ALL
			SELECT date_trunc('day', l.created_at AT TIME ZONE 'UTC'), 0, 1, 0
			FROM likes l JOIN recipes r ON r.id = l.recipe_id
			WHERE %[1]s AND l.created_at >= @from AND l.created_at < @to
			UNION ALL
			SELECT date_trunc('day', c.created_at AT TIME ZONE 'UTC'), 0, 0, 1
			FROM comments c JOIN recipes r ON r.id = c.recipe_id
			WHERE %[1]s AND c.created_at >= @from AND c.created_at < @to
		) events
		GROUP BY day
		ORDER BY day`, filter)

	var rows []DailyRow
	err := r.db.WithContext(ctx).Raw(query, scope.args(w)).Scan(&rows).Error
	return rows, err
}
