package community

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/pkg/recipe"
	"Recipe-Hub/pkg/user"
	"context"
	"time"

	"github.com/google/uuid"
)

type (
	CommunityService interface {
		TrendingRecipes(ctx context.Context, limit int) ([]domain.TrendingRecipe, error)
		TopChefs(ctx context.Context, limit int) ([]domain.TopChef, error)
		CommunityData(ctx context.Context) (domain.CommunityData, error)
	}

	communityService struct {
		communityRepository CommunityRepository
		log                 *logger.Logger
		now                 func() time.Time
	}
)

func NewCommunityService(communityRepository CommunityRepository, log *logger.Logger) CommunityService {
	return &communityService{
		communityRepository: communityRepository,
		log:                 log.With("service", "community"),
		now:                 time.Now,
	}
}

func clampLimit(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > domain.MaxPageLimit {
		return domain.MaxPageLimit
	}
	return limit
}

func (s *communityService) windowStart() time.Time {
	return s.now().AddDate(0, 0, -domain.TrendingWindowDays)
}

func (s *communityService) TrendingRecipes(ctx context.Context, limit int) ([]domain.TrendingRecipe, error) {
	limit = clampLimit(limit, domain.DefaultTrendingLimit)
	rows, err := s.communityRepository.GetTrending(ctx, s.windowStart(), limit)
	if err != nil {
		return nil, err
	}
	SortTrending(rows)

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.RecipeID)
	}
	recipes, err := s.communityRepository.GetRecipesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entities.Recipe, len(recipes))
	for _, r := range recipes {
		byID[r.ID] = r
	}

	out := make([]domain.TrendingRecipe, 0, len(rows))
	for _, row := range rows {
		r, ok := byID[row.RecipeID]
		if !ok {
			continue
		}
		author := user.ToSummary(r.User)
		if author.ID == "" {
			author.ID = r.UserID.String()
		}
		out = append(out, domain.TrendingRecipe{
			Recipe:        recipe.ToBrief(r),
			Author:        author,
			LikesCount:    row.LikesCount,
			CommentsCount: row.CommentsCount,
			ViewsCount:    row.ViewsCount,
			Score:         TrendingScore(row.LikesCount, row.CommentsCount, row.ViewsCount),
		})
	}
	return out, nil
}

func (s *communityService) TopChefs(ctx context.Context, limit int) ([]domain.TopChef, error) {
	limit = clampLimit(limit, domain.DefaultTopChefsLimit)
	rows, err := s.communityRepository.GetTopChefs(ctx, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.UserID)
	}
	users, err := s.communityRepository.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*entities.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	chefs := make([]domain.TopChef, 0, len(rows))
	for _, row := range rows {
		summary := user.ToSummary(byID[row.UserID])
		summary.ID = row.UserID.String()
		avg := recipe.RoundRating(row.AverageRating)
		chefs = append(chefs, domain.TopChef{
			User:           summary,
			RecipesCount:   row.RecipesCount,
			FollowersCount: row.FollowersCount,
			TotalLikes:     row.TotalLikes,
			AverageRating:  avg,
			Score:          ChefScore(row.RecipesCount, row.FollowersCount, row.TotalLikes, row.AverageRating),
			Badge:          Badge(row.RecipesCount, row.AverageRating),
		})
	}
	SortChefs(chefs)
	return chefs, nil
}

func (s *communityService) CommunityData(ctx context.Context) (domain.CommunityData, error) {
	trending, err := s.TrendingRecipes(ctx, domain.CommunityTrendingSize)
	if err != nil {
		return domain.CommunityData{}, err
	}
	chefs, err := s.TopChefs(ctx, domain.CommunityTopChefsSize)
	if err != nil {
		return domain.CommunityData{}, err
	}
	totals, err := s.communityRepository.GetTotals(ctx, s.windowStart())
	if err != nil {
		return domain.CommunityData{}, err
	}
	comments, err := s.communityRepository.GetRecentComments(ctx, domain.CommunityCommentsSize)
	if err != nil {
		return domain.CommunityData{}, err
	}

	data := domain.CommunityData{
		Trending: trending,
		TopChefs: chefs,
		Totals: domain.CommunityTotals{
			Members:          totals.Members,
			Recipes:          totals.Recipes,
			CommentsThisWeek: totals.CommentsThisWeek,
		},
		RecentComments: make([]domain.Comment, 0, len(comments)),
	}
	for _, c := range comments {
		data.RecentComments = append(data.RecentComments, recipe.ToComment(c))
	}
	return data, nil
}
