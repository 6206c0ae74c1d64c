package graph

import (
	"Recipe-Hub/domain"
	"time"

	"github.com/graph-gophers/graphql-go"
)

// The engine only accepts int32 for Int and graphql.Time for Time, so every
// domain type is mirrored by a view struct resolved field by field.

type userView struct {
	ID             graphql.ID
	Phone          *string
	Email          *string
	Name           string
	Username       *string
	Bio            *string
	AvatarURL      *string
	Role           string
	IsOnboarded    bool
	OnboardingStep string
	CreatedAt      graphql.Time
}

type userProfileView struct {
	User           *userView
	FollowersCount int32
	FollowingCount int32
	RecipesCount   int32
	IsFollowing    bool
}

type userSummaryView struct {
	ID        graphql.ID
	Name      string
	Username  *string
	AvatarURL *string
}

type userPageView struct {
	Users []*userSummaryView
	Total int32
}

type locationView struct {
	ID        graphql.ID
	Label     string
	City      string
	State     string
	Country   string
	Latitude  float64
	Longitude float64
	IsPrimary bool
	CreatedAt graphql.Time
}

type otpChallengeView struct {
	Phone     string
	ExpiresAt graphql.Time
}

type authPayloadView struct {
	Token     string
	User      *userView
	IsNewUser bool
}

type ingredientView struct {
	ID       graphql.ID
	Name     string
	Quantity string
	Unit     *string
}

type culturalTagView struct {
	CuisineType *string
	DietTypes   []string
	SpiceLevel  *string
	Religion    *string
	Region      *string
	Festival    *string
}

type recipeView struct {
	ID              graphql.ID
	Author          *userSummaryView
	Title           string
	Description     string
	ImageURL        *string
	PrepTimeMinutes int32
	CookTimeMinutes int32
	Servings        int32
	DifficultyLevel string
	CuisineType     string
	Steps           []string
	Tags            []string
	ViewCount       int32
	Ingredients     []*ingredientView
	CulturalTag     *culturalTagView
	LikesCount      int32
	CommentsCount   int32
	RatingsCount    int32
	AverageRating   float64
	IsLiked         bool
	IsBookmarked    bool
	IsCooked        bool
	MyRating        *int32
	CreatedAt       graphql.Time
	UpdatedAt       graphql.Time
}

type recipeBriefView struct {
	ID              graphql.ID
	Title           string
	ImageURL        *string
	PrepTimeMinutes int32
	CookTimeMinutes int32
	CuisineType     string
}

type recipePageView struct {
	Recipes []*recipeView
	Total   int32
	Offset  int32
	Limit   int32
}

type commentView struct {
	ID        graphql.ID
	RecipeID  graphql.ID
	Author    *userSummaryView
	Content   string
	CreatedAt graphql.Time
}

type commentPageView struct {
	Comments []*commentView
	Total    int32
}

type likeResultView struct {
	RecipeID   graphql.ID
	IsLiked    bool
	LikesCount int32
}

type ratingResultView struct {
	RecipeID      graphql.ID
	MyRating      int32
	AverageRating float64
	RatingsCount  int32
}

type cookingHistoryEntryView struct {
	Recipe   *recipeView
	CookedAt graphql.Time
}

type cookingHistoryView struct {
	Entries []*cookingHistoryEntryView
	Total   int32
}

type culturalPreferenceView struct {
	ID               graphql.ID
	Religion         *string
	DietTypes        []string
	CuisineTypes     []string
	SpiceLevel       *string
	Region           *string
	Festivals        []string
	AvoidIngredients []string
	UpdatedAt        graphql.Time
}

type onboardingStatusView struct {
	IsOnboarded    bool
	CurrentStep    string
	CompletedSteps []string
	RemainingSteps []string
}

type festivalView struct {
	Name     string
	Religion string
	Region   string
	Month    int32
}

type mealPlanItemView struct {
	ID        graphql.ID
	DayOfWeek string
	MealType  string
	Servings  int32
	Recipe    *recipeBriefView
}

type mealPlanView struct {
	ID        graphql.ID
	Name      string
	WeekStart graphql.Time
	Items     []*mealPlanItemView
	CreatedAt graphql.Time
}

type shoppingListItemView struct {
	ID        graphql.ID
	Name      string
	Quantity  string
	Category  string
	IsChecked bool
}

type shoppingListView struct {
	ID         graphql.ID
	Name       string
	MealPlanID *graphql.ID
	Items      []*shoppingListItemView
	CreatedAt  graphql.Time
}

type dashboardSummaryView struct {
	RecipesCount     int32
	BookmarksCount   int32
	MealPlansCount   int32
	EnrollmentsCount int32
	FollowersCount   int32
	FollowingCount   int32
	LikesReceived    int32
	RecentRecipes    []*recipeBriefView
	CurrentMealPlan  *mealPlanView
}

type lessonView struct {
	ID              graphql.ID
	Title           string
	Content         string
	VideoURL        *string
	Position        int32
	DurationMinutes int32
}

type courseView struct {
	ID               graphql.ID
	Instructor       *userSummaryView
	Title            string
	Description      string
	ImageURL         *string
	Level            string
	CuisineType      *string
	IsPublished      bool
	Lessons          []*lessonView
	EnrollmentsCount int32
	CreatedAt        graphql.Time
}

type coursePageView struct {
	Courses []*courseView
	Total   int32
}

type enrollmentView struct {
	ID                 graphql.ID
	Course             *courseView
	Progress           float64
	CompletedLessonIDs []graphql.ID
	EnrolledAt         graphql.Time
	CompletedAt        *graphql.Time
}

type trendingRecipeView struct {
	Recipe        *recipeBriefView
	Author        *userSummaryView
	LikesCount    int32
	CommentsCount int32
	ViewsCount    int32
	Score         int32
}

type topChefView struct {
	User           *userSummaryView
	RecipesCount   int32
	FollowersCount int32
	TotalLikes     int32
	AverageRating  float64
	Score          float64
	Badge          string
}

type communityTotalsView struct {
	Members          int32
	Recipes          int32
	CommentsThisWeek int32
}

type communityDataView struct {
	Trending       []*trendingRecipeView
	TopChefs       []*topChefView
	Totals         *communityTotalsView
	RecentComments []*commentView
}

type metricCountsView struct {
	Views        int32
	Likes        int32
	Comments     int32
	NewFollowers int32
}

type growthRatesView struct {
	Views        float64
	Likes        float64
	Comments     float64
	NewFollowers float64
}

type dailyPointView struct {
	Date     graphql.Time
	Views    int32
	Likes    int32
	Comments int32
}

type analyticsView struct {
	Period   string
	Start    graphql.Time
	End      graphql.Time
	Current  *metricCountsView
	Previous *metricCountsView
	Growth   *growthRatesView
	Daily    []*dailyPointView
	RecipeID *graphql.ID
}

type uploadURLView struct {
	UploadURL string
	PublicURL string
	Key       string
	ExpiresAt graphql.Time
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalID(s string) *graphql.ID {
	if s == "" {
		return nil
	}
	id := graphql.ID(s)
	return &id
}

func gqlTime(t time.Time) graphql.Time {
	return graphql.Time{Time: t}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toUserView(u domain.User) *userView {
	return &userView{
		ID:             graphql.ID(u.ID),
		Phone:          optional(u.Phone),
		Email:          optional(u.Email),
		Name:           u.Name,
		Username:       optional(u.Username),
		Bio:            optional(u.Bio),
		AvatarURL:      optional(u.AvatarURL),
		Role:           u.Role,
		IsOnboarded:    u.IsOnboarded,
		OnboardingStep: u.OnboardingStep,
		CreatedAt:      gqlTime(u.CreatedAt),
	}
}

func toUserProfileView(p domain.UserProfile) *userProfileView {
	return &userProfileView{
		User:           toUserView(p.User),
		FollowersCount: int32(p.FollowersCount),
		FollowingCount: int32(p.FollowingCount),
		RecipesCount:   int32(p.RecipesCount),
		IsFollowing:    p.IsFollowing,
	}
}

func toUserSummaryView(u domain.UserSummary) *userSummaryView {
	return &userSummaryView{
		ID:        graphql.ID(u.ID),
		Name:      u.Name,
		Username:  optional(u.Username),
		AvatarURL: optional(u.AvatarURL),
	}
}

func toUserPageView(users []domain.UserSummary, total int64) *userPageView {
	out := &userPageView{Users: make([]*userSummaryView, 0, len(users)), Total: int32(total)}
	for _, u := range users {
		out.Users = append(out.Users, toUserSummaryView(u))
	}
	return out
}

func toLocationView(l domain.Location) *locationView {
	return &locationView{
		ID:        graphql.ID(l.ID),
		Label:     l.Label,
		City:      l.City,
		State:     l.State,
		Country:   l.Country,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		IsPrimary: l.IsPrimary,
		CreatedAt: gqlTime(l.CreatedAt),
	}
}

func toCulturalTagView(t *domain.CulturalTag) *culturalTagView {
	if t == nil {
		return nil
	}
	return &culturalTagView{
		CuisineType: optional(t.CuisineType),
		DietTypes:   nonNil(t.DietTypes),
		SpiceLevel:  optional(t.SpiceLevel),
		Religion:    optional(t.Religion),
		Region:      optional(t.Region),
		Festival:    optional(t.Festival),
	}
}

func toRecipeView(r domain.Recipe) *recipeView {
	v := &recipeView{
		ID:              graphql.ID(r.ID),
		Author:          toUserSummaryView(r.Author),
		Title:           r.Title,
		Description:     r.Description,
		ImageURL:        optional(r.ImageURL),
		PrepTimeMinutes: int32(r.PrepTimeMinutes),
		CookTimeMinutes: int32(r.CookTimeMinutes),
		Servings:        int32(r.Servings),
		DifficultyLevel: r.DifficultyLevel,
		CuisineType:     r.CuisineType,
		Steps:           nonNil(r.Steps),
		Tags:            nonNil(r.Tags),
		ViewCount:       int32(r.ViewCount),
		Ingredients:     make([]*ingredientView, 0, len(r.Ingredients)),
		CulturalTag:     toCulturalTagView(r.CulturalTag),
		LikesCount:      int32(r.Stats.LikesCount),
		CommentsCount:   int32(r.Stats.CommentsCount),
		RatingsCount:    int32(r.Stats.RatingsCount),
		AverageRating:   r.Stats.AverageRating,
		IsLiked:         r.Viewer.IsLiked,
		IsBookmarked:    r.Viewer.IsBookmarked,
		IsCooked:        r.Viewer.IsCooked,
		CreatedAt:       gqlTime(r.CreatedAt),
		UpdatedAt:       gqlTime(r.UpdatedAt),
	}
	if r.Viewer.MyRating != nil {
		rating := int32(*r.Viewer.MyRating)
		v.MyRating = &rating
	}
	for _, ing := range r.Ingredients {
		v.Ingredients = append(v.Ingredients, &ingredientView{
			ID:       graphql.ID(ing.ID),
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     optional(ing.Unit),
		})
	}
	return v
}

func toRecipeViews(recipes []domain.Recipe) []*recipeView {
	out := make([]*recipeView, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeView(r))
	}
	return out
}

func toRecipePageView(c domain.RecipeConnection) *recipePageView {
	return &recipePageView{
		Recipes: toRecipeViews(c.Recipes),
		Total:   int32(c.Total),
		Offset:  int32(c.Offset),
		Limit:   int32(c.Limit),
	}
}

func toRecipeBriefView(r domain.RecipeBrief) *recipeBriefView {
	return &recipeBriefView{
		ID:              graphql.ID(r.ID),
		Title:           r.Title,
		ImageURL:        optional(r.ImageURL),
		PrepTimeMinutes: int32(r.PrepTimeMinutes),
		CookTimeMinutes: int32(r.CookTimeMinutes),
		CuisineType:     r.CuisineType,
	}
}

func toCommentView(c domain.Comment) *commentView {
	return &commentView{
		ID:        graphql.ID(c.ID),
		RecipeID:  graphql.ID(c.RecipeID),
		Author:    toUserSummaryView(c.Author),
		Content:   c.Content,
		CreatedAt: gqlTime(c.CreatedAt),
	}
}

func toCommentViews(comments []domain.Comment) []*commentView {
	out := make([]*commentView, 0, len(comments))
	for _, c := range comments {
		out = append(out, toCommentView(c))
	}
	return out
}

func toCookingHistoryView(h domain.CookingHistory) *cookingHistoryView {
	out := &cookingHistoryView{
		Entries: make([]*cookingHistoryEntryView, 0, len(h.Entries)),
		Total:   int32(h.Total),
	}
	for _, e := range h.Entries {
		out.Entries = append(out.Entries, &cookingHistoryEntryView{
			Recipe:   toRecipeView(e.Recipe),
			CookedAt: gqlTime(e.CookedAt),
		})
	}
	return out
}

func toCulturalPreferenceView(p domain.CulturalPreference) *culturalPreferenceView {
	return &culturalPreferenceView{
		ID:               graphql.ID(p.ID),
		Religion:         optional(p.Religion),
		DietTypes:        nonNil(p.DietTypes),
		CuisineTypes:     nonNil(p.CuisineTypes),
		SpiceLevel:       optional(p.SpiceLevel),
		Region:           optional(p.Region),
		Festivals:        nonNil(p.Festivals),
		AvoidIngredients: nonNil(p.AvoidIngredients),
		UpdatedAt:        gqlTime(p.UpdatedAt),
	}
}

func toOnboardingStatusView(s domain.OnboardingStatus) *onboardingStatusView {
	return &onboardingStatusView{
		IsOnboarded:    s.IsOnboarded,
		CurrentStep:    s.CurrentStep,
		CompletedSteps: nonNil(s.CompletedSteps),
		RemainingSteps: nonNil(s.RemainingSteps),
	}
}

func toMealPlanView(p domain.MealPlan) *mealPlanView {
	v := &mealPlanView{
		ID:        graphql.ID(p.ID),
		Name:      p.Name,
		WeekStart: gqlTime(p.WeekStart),
		Items:     make([]*mealPlanItemView, 0, len(p.Items)),
		CreatedAt: gqlTime(p.CreatedAt),
	}
	for _, item := range p.Items {
		v.Items = append(v.Items, &mealPlanItemView{
			ID:        graphql.ID(item.ID),
			DayOfWeek: item.DayOfWeek,
			MealType:  item.MealType,
			Servings:  int32(item.Servings),
			Recipe:    toRecipeBriefView(item.Recipe),
		})
	}
	return v
}

func toShoppingListItemView(i domain.ShoppingListItem) *shoppingListItemView {
	return &shoppingListItemView{
		ID:        graphql.ID(i.ID),
		Name:      i.Name,
		Quantity:  i.Quantity,
		Category:  i.Category,
		IsChecked: i.IsChecked,
	}
}

func toShoppingListView(l domain.ShoppingList) *shoppingListView {
	v := &shoppingListView{
		ID:         graphql.ID(l.ID),
		Name:       l.Name,
		MealPlanID: optionalID(l.MealPlanID),
		Items:      make([]*shoppingListItemView, 0, len(l.Items)),
		CreatedAt:  gqlTime(l.CreatedAt),
	}
	for _, item := range l.Items {
		v.Items = append(v.Items, toShoppingListItemView(item))
	}
	return v
}

func toDashboardSummaryView(s domain.DashboardSummary) *dashboardSummaryView {
	v := &dashboardSummaryView{
		RecipesCount:     int32(s.RecipesCount),
		BookmarksCount:   int32(s.BookmarksCount),
		MealPlansCount:   int32(s.MealPlansCount),
		EnrollmentsCount: int32(s.EnrollmentsCount),
		FollowersCount:   int32(s.FollowersCount),
		FollowingCount:   int32(s.FollowingCount),
		LikesReceived:    int32(s.LikesReceived),
		RecentRecipes:    make([]*recipeBriefView, 0, len(s.RecentRecipes)),
	}
	for _, r := range s.RecentRecipes {
		v.RecentRecipes = append(v.RecentRecipes, toRecipeBriefView(r))
	}
	if s.CurrentMealPlan != nil {
		v.CurrentMealPlan = toMealPlanView(*s.CurrentMealPlan)
	}
	return v
}

func toCourseView(c domain.Course) *courseView {
	v := &courseView{
		ID:               graphql.ID(c.ID),
		Instructor:       toUserSummaryView(c.Instructor),
		Title:            c.Title,
		Description:      c.Description,
		ImageURL:         optional(c.ImageURL),
		Level:            c.Level,
		CuisineType:      optional(c.CuisineType),
		IsPublished:      c.IsPublished,
		Lessons:          make([]*lessonView, 0, len(c.Lessons)),
		EnrollmentsCount: int32(c.EnrollmentsCount),
		CreatedAt:        gqlTime(c.CreatedAt),
	}
	for _, l := range c.Lessons {
		v.Lessons = append(v.Lessons, &lessonView{
			ID:              graphql.ID(l.ID),
			Title:           l.Title,
			Content:         l.Content,
			VideoURL:        optional(l.VideoURL),
			Position:        int32(l.Position),
			DurationMinutes: int32(l.DurationMinutes),
		})
	}
	return v
}

func toCourseViews(courses []domain.Course) []*courseView {
	out := make([]*courseView, 0, len(courses))
	for _, c := range courses {
		out = append(out, toCourseView(c))
	}
	return out
}

func toEnrollmentView(e domain.Enrollment) *enrollmentView {
	v := &enrollmentView{
		ID:                 graphql.ID(e.ID),
		Course:             toCourseView(e.Course),
		Progress:           e.Progress,
		CompletedLessonIDs: make([]graphql.ID, 0, len(e.CompletedLessonIDs)),
		EnrolledAt:         gqlTime(e.EnrolledAt),
	}
	for _, id := range e.CompletedLessonIDs {
		v.CompletedLessonIDs = append(v.CompletedLessonIDs, graphql.ID(id))
	}
	if e.CompletedAt != nil {
		t := gqlTime(*e.CompletedAt)
		v.CompletedAt = &t
	}
	return v
}

func toTrendingViews(items []domain.TrendingRecipe) []*trendingRecipeView {
	out := make([]*trendingRecipeView, 0, len(items))
	for _, t := range items {
		out = append(out, &trendingRecipeView{
			Recipe:        toRecipeBriefView(t.Recipe),
			Author:        toUserSummaryView(t.Author),
			LikesCount:    int32(t.LikesCount),
			CommentsCount: int32(t.CommentsCount),
			ViewsCount:    int32(t.ViewsCount),
			Score:         int32(t.Score),
		})
	}
	return out
}

func toTopChefViews(chefs []domain.TopChef) []*topChefView {
	out := make([]*topChefView, 0, len(chefs))
	for _, c := range chefs {
		out = append(out, &topChefView{
			User:           toUserSummaryView(c.User),
			RecipesCount:   int32(c.RecipesCount),
			FollowersCount: int32(c.FollowersCount),
			TotalLikes:     int32(c.TotalLikes),
			AverageRating:  c.AverageRating,
			Score:          c.Score,
			Badge:          c.Badge,
		})
	}
	return out
}

func toMetricCountsView(m domain.MetricCounts) *metricCountsView {
	return &metricCountsView{
		Views:        int32(m.Views),
		Likes:        int32(m.Likes),
		Comments:     int32(m.Comments),
		NewFollowers: int32(m.NewFollowers),
	}
}

func toAnalyticsView(a domain.Analytics) *analyticsView {
	v := &analyticsView{
		Period:   a.Period,
		Start:    gqlTime(a.Window.Start),
		End:      gqlTime(a.Window.End),
		Current:  toMetricCountsView(a.Current),
		Previous: toMetricCountsView(a.Previous),
		Growth: &growthRatesView{
			Views:        a.Growth.Views,
			Likes:        a.Growth.Likes,
			Comments:     a.Growth.Comments,
			NewFollowers: a.Growth.NewFollowers,
		},
		Daily:    make([]*dailyPointView, 0, len(a.Daily)),
		RecipeID: optionalID(a.RecipeID),
	}
	for _, d := range a.Daily {
		v.Daily = append(v.Daily, &dailyPointView{
			Date:     gqlTime(d.Date),
			Views:    int32(d.Views),
			Likes:    int32(d.Likes),
			Comments: int32(d.Comments),
		})
	}
	return v
}
