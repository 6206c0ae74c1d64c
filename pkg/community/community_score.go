package community

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/pkg/recipe"
	"sort"
)

func TrendingScore(likes, comments, views int) int {
	return likes*3 + comments*2 + views
}

// ChefScore ranks authors on the leaderboard.
func ChefScore(recipes, followers, likes int, avgRating float64) float64 {
	return recipe.RoundRating(float64(recipes*2+followers*3+likes) + avgRating*10)
}

// Badge walks the ladder from the top; the first rung the chef qualifies for wins.
func Badge(recipes int, avgRating float64) string {
	switch {
	case recipes >= 50 && avgRating >= 4.5:
		return domain.BadgeMasterChef
	case recipes >= 20 && avgRating >= 4.0:
		return domain.BadgeExpertChef
	case recipes >= 10:
		return domain.BadgeExperiencedCook
	default:
		return domain.BadgeHomeCook
	}
}

// SortTrending orders by score, then newer recipe, then id, so equal scores have a stable order.
func SortTrending(rows []TrendingRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		si := TrendingScore(rows[i].LikesCount, rows[i].CommentsCount, rows[i].ViewsCount)
		sj := TrendingScore(rows[j].LikesCount, rows[j].CommentsCount, rows[j].ViewsCount)
		if si != sj {
			return si > sj
		}
		if !rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].CreatedAt.After(rows[j].CreatedAt)
		}
		return rows[i].RecipeID.String() < rows[j].RecipeID.String()
	})
}

func SortChefs(chefs []domain.TopChef) {
	sort.SliceStable(chefs, func(i, j int) bool {
		if chefs[i].Score != chefs[j].Score {
			return chefs[i].Score > chefs[j].Score
		}
		return chefs[i].User.ID < chefs[j].User.ID
	})
}
