package community

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/testutil"
	"Recipe-Hub/internal/utils/logger"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommunityRepo struct {
	CommunityRepository
	trending  []TrendingRow
	chefs     []ChefRow
	recipes   []*entities.Recipe
	users     []*entities.User
	since     time.Time
	lastLimit int
}

func (f *fakeCommunityRepo) GetTrending(_ context.Context, since time.Time, limit int) ([]TrendingRow, error) {
	f.since, f.lastLimit = since, limit
	return append([]TrendingRow{}, f.trending...), nil
}

func (f *fakeCommunityRepo) GetTopChefs(_ context.Context, limit int) ([]ChefRow, error) {
	f.lastLimit = limit
	return f.chefs, nil
}

func (f *fakeCommunityRepo) GetRecipesByIDs(context.Context, []uuid.UUID) ([]*entities.Recipe, error) {
	return f.recipes, nil
}

func (f *fakeCommunityRepo) GetUsersByIDs(context.Context, []uuid.UUID) ([]*entities.User, error) {
	return f.users, nil
}

func (f *fakeCommunityRepo) GetTotals(context.Context, time.Time) (Totals, error) {
	return Totals{Members: 4, Recipes: 3, CommentsThisWeek: 2}, nil
}

func (f *fakeCommunityRepo) GetRecentComments(context.Context, int) ([]*entities.Comment, error) {
	return []*entities.Comment{{ID: uuid.New(), UserID: uuid.New(), Content: "Lovely"}}, nil
}

var fixedNow = time.Date(2026, 6, 10, 12, 0, 0, 0, time.UTC)

func newTestService(repo *fakeCommunityRepo) CommunityService {
	svc := NewCommunityService(repo, logger.NewNop()).(*communityService)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestTrendingRecipes(t *testing.T) {
	chef := &entities.User{ID: uuid.New(), Name: "Chef"}
	liked := &entities.Recipe{ID: uuid.New(), UserID: chef.ID, User: chef, Title: "Liked"}
	viewed := &entities.Recipe{ID: uuid.New(), UserID: chef.ID, User: chef, Title: "Viewed"}
	repo := &fakeCommunityRepo{
		trending: []TrendingRow{
			{RecipeID: liked.ID, LikesCount: 1},
			{RecipeID: viewed.ID, ViewsCount: 5},
			{RecipeID: uuid.New(), ViewsCount: 100},
		},
		recipes: []*entities.Recipe{liked, viewed},
	}
	svc := newTestService(repo)

	got, err := svc.TrendingRecipes(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTrendingLimit, repo.lastLimit)
	assert.Equal(t, fixedNow.AddDate(0, 0, -7), repo.since)

	require.Len(t, got, 2, "rows without a loaded recipe are dropped")
	assert.Equal(t, "Viewed", got[0].Recipe.Title)
	assert.Equal(t, 5, got[0].Score)
	assert.Equal(t, "Chef", got[0].Author.Name)
	assert.Equal(t, 3, got[1].Score)

	_, err = svc.TrendingRecipes(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxPageLimit, repo.lastLimit)
}

func TestTopChefsBadgesAndOrder(t *testing.T) {
	master := &entities.User{ID: uuid.New(), Name: "Master"}
	home := &entities.User{ID: uuid.New(), Name: "Home"}
	repo := &fakeCommunityRepo{
		chefs: []ChefRow{
			{UserID: home.ID, RecipesCount: 1, TotalLikes: 1},
			{UserID: master.ID, RecipesCount: 60, FollowersCount: 10, TotalLikes: 100, AverageRating: 4.666},
		},
		users: []*entities.User{master, home},
	}

	chefs, err := newTestService(repo).TopChefs(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, chefs, 2)
	assert.Equal(t, "Master", chefs[0].User.Name)
	assert.Equal(t, domain.BadgeMasterChef, chefs[0].Badge)
	assert.Equal(t, 4.67, chefs[0].AverageRating)
	assert.Equal(t, domain.BadgeHomeCook, chefs[1].Badge)
	assert.Equal(t, 3.0, chefs[1].Score)
}

func TestCommunityData(t *testing.T) {
	repo := &fakeCommunityRepo{}
	data, err := newTestService(repo).CommunityData(context.Background())
	require.NoError(t, err)
	assert.Empty(t, data.Trending)
	assert.Equal(t, domain.CommunityTotals{Members: 4, Recipes: 3, CommentsThisWeek: 2}, data.Totals)
	require.Len(t, data.RecentComments, 1)
	assert.Equal(t, "Lovely", data.RecentComments[0].Content)
}

func TestCommunityRepositoryAggregates(t *testing.T) {
	tx := testutil.Tx(t, testutil.DB(t))
	ctx := context.Background()
	repo := NewCommunityRepository(tx)
	now := time.Now()

	chef := testutil.SeedUser(t, ctx, tx, "Chef")
	fan := testutil.SeedUser(t, ctx, tx, "Fan")
	popular := testutil.SeedRecipe(t, ctx, tx, chef.ID, "Popular")
	quiet := testutil.SeedRecipe(t, ctx, tx, chef.ID, "Quiet")

	testutil.SeedLike(t, ctx, tx, fan.ID, popular.ID, now)
	testutil.SeedComment(t, ctx, tx, fan.ID, popular.ID, now)
	testutil.SeedView(t, ctx, tx, quiet.ID, now.AddDate(0, 0, -30))
	testutil.SeedFollow(t, ctx, tx, fan.ID, chef.ID)

	rows, err := repo.GetTrending(ctx, now.AddDate(0, 0, -7), 10)
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, popular.ID, rows[0].RecipeID)
	assert.Equal(t, 1, rows[0].LikesCount)
	assert.Equal(t, 1, rows[0].CommentsCount)

	chefs, err := repo.GetTopChefs(ctx, 10)
	require.NoError(t, err)
	require.NotEmpty(t, chefs)
	assert.Equal(t, ChefRow{UserID: chef.ID, RecipesCount: 2, FollowersCount: 1, TotalLikes: 1}, chefs[0])

	totals, err := repo.GetTotals(ctx, now.AddDate(0, 0, -7))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, totals.Members, 2)
	assert.GreaterOrEqual(t, totals.CommentsThisWeek, 1)
}
