package domain

const (
	BadgeMasterChef       = "Master Chef"
	BadgeExpertChef       = "Expert Chef"
	BadgeExperiencedCook  = "Experienced Cook"
	BadgeHomeCook         = "Home Cook"
	TrendingWindowDays    = 7
	DefaultTrendingLimit  = 10
	DefaultTopChefsLimit  = 10
	CommunityTrendingSize = 6
	CommunityTopChefsSize = 5
	CommunityCommentsSize = 10
)

type (
	TrendingRecipe struct {
		Recipe        RecipeBrief `json:"recipe"`
		Author        UserSummary `json:"author"`
		LikesCount    int         `json:"likes_count"`
		CommentsCount int         `json:"comments_count"`
		ViewsCount    int         `json:"views_count"`
		Score         int         `json:"score"`
	}

	TopChef struct {
		User           UserSummary `json:"user"`
		RecipesCount   int         `json:"recipes_count"`
		FollowersCount int         `json:"followers_count"`
		TotalLikes     int         `json:"total_likes"`
		AverageRating  float64     `json:"average_rating"`
		Score          float64     `json:"score"`
		Badge          string      `json:"badge"`
	}

	CommunityTotals struct {
		Members          int `json:"members"`
		Recipes          int `json:"recipes"`
		CommentsThisWeek int `json:"comments_this_week"`
	}

	CommunityData struct {
		Trending       []TrendingRecipe `json:"trending"`
		TopChefs       []TopChef        `json:"top_chefs"`
		Totals         CommunityTotals  `json:"totals"`
		RecentComments []Comment        `json:"recent_comments"`
	}
)
