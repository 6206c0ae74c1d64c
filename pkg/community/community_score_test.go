package community

import (
	"Recipe-Hub/domain"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrendingScoreOrdering(t *testing.T) {
	now := time.Now()
	first := TrendingRow{RecipeID: uuid.New(), CreatedAt: now, LikesCount: 1}
	second := TrendingRow{RecipeID: uuid.New(), CreatedAt: now, CommentsCount: 2}
	third := TrendingRow{RecipeID: uuid.New(), CreatedAt: now, ViewsCount: 5}

	assert.Equal(t, 3, TrendingScore(first.LikesCount, first.CommentsCount, first.ViewsCount))
	assert.Equal(t, 4, TrendingScore(second.LikesCount, second.CommentsCount, second.ViewsCount))
	assert.Equal(t, 5, TrendingScore(third.LikesCount, third.CommentsCount, third.ViewsCount))

	rows := []TrendingRow{first, second, third}
	SortTrending(rows)
	assert.Equal(t, []uuid.UUID{third.RecipeID, second.RecipeID, first.RecipeID},
		[]uuid.UUID{rows[0].RecipeID, rows[1].RecipeID, rows[2].RecipeID})
}

func TestSortTrendingTieBreaks(t *testing.T) {
	now := time.Now()
	older := TrendingRow{RecipeID: uuid.New(), CreatedAt: now.Add(-time.Hour), LikesCount: 1}
	newer := TrendingRow{RecipeID: uuid.New(), CreatedAt: now, ViewsCount: 3}
	a := TrendingRow{RecipeID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), CreatedAt: now.Add(-2 * time.Hour)}
	b := TrendingRow{RecipeID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), CreatedAt: now.Add(-2 * time.Hour)}

	rows := []TrendingRow{b, older, a, newer}
	SortTrending(rows)
	require.Len(t, rows, 4)
	assert.Equal(t, newer.RecipeID, rows[0].RecipeID)
	assert.Equal(t, older.RecipeID, rows[1].RecipeID)
	assert.Equal(t, a.RecipeID, rows[2].RecipeID)
	assert.Equal(t, b.RecipeID, rows[3].RecipeID)
}

func TestBadgeLadder(t *testing.T) {
	tests := []struct {
		recipes int
		avg     float64
		want    string
	}{
		{50, 4.5, domain.BadgeMasterChef},
		{50, 4.4, domain.BadgeExpertChef},
		{20, 4.0, domain.BadgeExpertChef},
		{49, 3.9, domain.BadgeExperiencedCook},
		{10, 0, domain.BadgeExperiencedCook},
		{9, 5, domain.BadgeHomeCook},
		{0, 0, domain.BadgeHomeCook},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Badge(tt.recipes, tt.avg), "%d recipes, %.1f avg", tt.recipes, tt.avg)
	}
}

func TestChefScore(t *testing.T) {
	assert.Equal(t, 2*3+3*2+5+42.5, ChefScore(3, 2, 5, 4.25))
	assert.Zero(t, ChefScore(0, 0, 0, 0))
}
