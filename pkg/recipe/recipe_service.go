package recipe

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/pkg/notification"
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, userID string, req domain.RecipeRequest) (domain.Recipe, error)
		UpdateRecipe(ctx context.Context, userID, recipeID string, req domain.RecipeRequest) (domain.Recipe, error)
		DeleteRecipe(ctx context.Context, userID, recipeID string) error
		GetRecipe(ctx context.Context, recipeID, viewerID string, trackView bool) (domain.Recipe, error)
		ListRecipes(ctx context.Context, req domain.RecipeListRequest, viewerID string) (domain.RecipeConnection, error)
		MyRecipes(ctx context.Context, userID string, page domain.Page) (domain.RecipeConnection, error)

		LikeRecipe(ctx context.Context, userID, recipeID string) (domain.LikeResult, error)
		UnlikeRecipe(ctx context.Context, userID, recipeID string) (domain.LikeResult, error)
		RateRecipe(ctx context.Context, userID string, req domain.RatingRequest) (domain.RatingResult, error)

		AddComment(ctx context.Context, userID string, req domain.CommentRequest) (domain.Comment, error)
		DeleteComment(ctx context.Context, userID, commentID string) error
		GetComments(ctx context.Context, recipeID string, page domain.Page) (domain.CommentConnection, error)

		BookmarkRecipe(ctx context.Context, userID, recipeID string) error
		RemoveBookmark(ctx context.Context, userID, recipeID string) error
		GetBookmarkedRecipes(ctx context.Context, userID string, page domain.Page) (domain.RecipeConnection, error)

		MarkAsCooked(ctx context.Context, userID, recipeID string) error
		GetRecipeHistory(ctx context.Context, userID string, page domain.Page) (domain.CookingHistory, error)

		// Hydrate attaches engagement counts and the viewer's state to loaded recipes.
		Hydrate(ctx context.Context, recipes []*entities.Recipe, viewerID string) ([]domain.Recipe, error)
	}

	// ImageRemover deletes uploaded media; failures are logged, never returned.
	ImageRemover interface {
		DeleteByPublicURL(ctx context.Context, publicURL string) error
	}

	recipeService struct {
		recipeRepository RecipeRepository
		broker           notification.Broker
		images           ImageRemover
		log              *logger.Logger
	}
)

func NewRecipeService(recipeRepository RecipeRepository, broker notification.Broker, images ImageRemover, log *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		broker:           broker,
		images:           images,
		log:              log.With("service", "recipe"),
	}
}

func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domain.ErrParseUUID
	}
	return parsed, nil
}

func (s *recipeService) loadRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	if _, err := parseID(recipeID); err != nil {
		return nil, err
	}
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRecipeNotFound
	}
	return recipe, err
}

func (s *recipeService) loadOwnedRecipe(ctx context.Context, userID, recipeID string) (*entities.Recipe, error) {
	recipe, err := s.loadRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if recipe.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}
	return recipe, nil
}

func (s *recipeService) hydrateOne(ctx context.Context, recipe *entities.Recipe, viewerID string) (domain.Recipe, error) {
	out, err := s.Hydrate(ctx, []*entities.Recipe{recipe}, viewerID)
	if err != nil {
		return domain.Recipe{}, err
	}
	return out[0], nil
}

func (s *recipeService) Hydrate(ctx context.Context, recipes []*entities.Recipe, viewerID string) ([]domain.Recipe, error) {
	ids := make([]uuid.UUID, 0, len(recipes))
	for _, r := range recipes {
		ids = append(ids, r.ID)
	}
	stats, err := s.recipeRepository.GetStats(ctx, ids)
	if err != nil {
		return nil, err
	}
	viewer, err := s.recipeRepository.GetViewerState(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Recipe, 0, len(recipes))
	for _, r := range recipes {
		d := ToRecipe(r)
		st := stats[r.ID]
		d.Stats = domain.RecipeStats{
			LikesCount:    st.LikesCount,
			CommentsCount: st.CommentsCount,
			RatingsCount:  st.RatingsCount,
			AverageRating: RoundRating(st.AverageRating),
		}
		if v, ok := viewer[r.ID]; ok {
			d.Viewer = domain.ViewerState{
				IsLiked:      v.IsLiked,
				IsBookmarked: v.IsBookmarked,
				IsCooked:     v.IsCooked,
				MyRating:     v.MyRating,
			}
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *recipeService) connection(ctx context.Context, recipes []*entities.Recipe, total int64, page domain.Page, viewerID string) (domain.RecipeConnection, error) {
	hydrated, err := s.Hydrate(ctx, recipes, viewerID)
	if err != nil {
		return domain.RecipeConnection{}, err
	}
	return domain.RecipeConnection{
		Recipes: hydrated,
		Total:   total,
		Offset:  page.Offset,
		Limit:   page.Limit,
	}, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, userID string, req domain.RecipeRequest) (domain.Recipe, error) {
	userUUID, err := parseID(userID)
	if err != nil {
		return domain.Recipe{}, err
	}

	recipe := &entities.Recipe{
		ID:     uuid.New(),
		UserID: userUUID,
	}
	applyRequest(recipe, req)

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}
	s.log.Info("recipe created", "recipe_id", recipe.ID.String(), "user_id", userID)

	created, err := s.loadRecipe(ctx, recipe.ID.String())
	if err != nil {
		return domain.Recipe{}, err
	}
	return s.hydrateOne(ctx, created, userID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, userID, recipeID string, req domain.RecipeRequest) (domain.Recipe, error) {
	recipe, err := s.loadOwnedRecipe(ctx, userID, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}

	existingTag := recipe.CulturalTag
	applyRequest(recipe, req)
	if req.CulturalTag != nil && existingTag != nil {
		recipe.CulturalTag.ID = existingTag.ID
	}
	if req.CulturalTag == nil {
		// leave the stored tag alone
		recipe.CulturalTag = nil
	}

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe); err != nil {
		return domain.Recipe{}, err
	}

	updated, err := s.loadRecipe(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}
	return s.hydrateOne(ctx, updated, userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID string) error {
	recipe, err := s.loadOwnedRecipe(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	if s.images != nil && recipe.ImageURL != "" {
		if err := s.images.DeleteByPublicURL(ctx, recipe.ImageURL); err != nil {
			s.log.Warn("failed to delete recipe image", "recipe_id", recipeID, "error", err)
		}
	}
	s.log.Info("recipe deleted", "recipe_id", recipeID, "user_id", userID)
	return nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID, viewerID string, trackView bool) (domain.Recipe, error) {
	recipe, err := s.loadRecipe(ctx, recipeID)
	if err != nil {
		return domain.Recipe{}, err
	}

	if trackView {
		var viewer *uuid.UUID
		if id, err := uuid.Parse(viewerID); err == nil {
			viewer = &id
		}
		if err := s.recipeRepository.RecordView(ctx, recipe.ID, viewer); err != nil {
			s.log.Warn("failed to record view", "recipe_id", recipeID, "error", err)
		} else {
			recipe.ViewCount++
		}
	}
	return s.hydrateOne(ctx, recipe, viewerID)
}

func (s *recipeService) ListRecipes(ctx context.Context, req domain.RecipeListRequest, viewerID string) (domain.RecipeConnection, error) {
	page := req.Page.Normalize()
	if req.AuthorID != "" {
		if _, err := parseID(req.AuthorID); err != nil {
			return domain.RecipeConnection{}, err
		}
	}
	recipes, total, err := s.recipeRepository.GetRecipes(ctx, ListFilter{
		Search:   strings.TrimSpace(req.Search),
		AuthorID: req.AuthorID,
	}, page.Offset, page.Limit)
	if err != nil {
		return domain.RecipeConnection{}, err
	}
	return s.connection(ctx, recipes, total, page, viewerID)
}

func (s *recipeService) MyRecipes(ctx context.Context, userID string, page domain.Page) (domain.RecipeConnection, error) {
	return s.ListRecipes(ctx, domain.RecipeListRequest{AuthorID: userID, Page: page}, userID)
}

func (s *recipeService) LikeRecipe(ctx context.Context, userID, recipeID string) (domain.LikeResult, error) {
	recipe, err := s.loadRecipe(ctx, recipeID)
	if err != nil {
		return domain.LikeResult{}, err
	}
	userUUID, err := parseID(userID)
	if err != nil {
		return domain.LikeResult{}, err
	}

	err = s.recipeRepository.CreateLike(ctx, &entities.Like{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: recipe.ID,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.LikeResult{}, domain.ErrAlreadyLiked
	}
	if err != nil {
		return domain.LikeResult{}, err
	}
	return s.likeResult(ctx, recipeID, true)
}

func (s *recipeService) UnlikeRecipe(ctx context.Context, userID, recipeID string) (domain.LikeResult, error) {
	if _, err := s.loadRecipe(ctx, recipeID); err != nil {
		return domain.LikeResult{}, err
	}
	n, err := s.recipeRepository.DeleteLike(ctx, userID, recipeID)
	if err != nil {
		return domain.LikeResult{}, err
	}
	if n == 0 {
		return domain.LikeResult{}, domain.ErrNotLiked
	}
	return s.likeResult(ctx, recipeID, false)
}

func (s *recipeService) likeResult(ctx context.Context, recipeID string, liked bool) (domain.LikeResult, error) {
	count, err := s.recipeRepository.CountLikes(ctx, recipeID)
	if err != nil {
		return domain.LikeResult{}, err
	}
	return domain.LikeResult{RecipeID: recipeID, IsLiked: liked, LikesCount: int(count)}, nil
}

func (s *recipeService) RateRecipe(ctx context.Context, userID string, req domain.RatingRequest) (domain.RatingResult, error) {
	if req.Value < 1 || req.Value > 5 {
		return domain.RatingResult{}, domain.ErrInvalidRating
	}
	recipe, err := s.loadRecipe(ctx, req.RecipeID)
	if err != nil {
		return domain.RatingResult{}, err
	}
	userUUID, err := parseID(userID)
	if err != nil {
		return domain.RatingResult{}, err
	}

	if err := s.recipeRepository.UpsertRating(ctx, &entities.Rating{
		UserID:   userUUID,
		RecipeID: recipe.ID,
		Value:    req.Value,
	}); err != nil {
		return domain.RatingResult{}, err
	}

	stats, err := s.recipeRepository.GetStats(ctx, []uuid.UUID{recipe.ID})
	if err != nil {
		return domain.RatingResult{}, err
	}
	st := stats[recipe.ID]
	return domain.RatingResult{
		RecipeID:      req.RecipeID,
		MyRating:      req.Value,
		AverageRating: RoundRating(st.AverageRating),
		RatingsCount:  st.RatingsCount,
	}, nil
}

func (s *recipeService) AddComment(ctx context.Context, userID string, req domain.CommentRequest) (domain.Comment, error) {
	recipe, err := s.loadRecipe(ctx, req.RecipeID)
	if err != nil {
		return domain.Comment{}, err
	}
	userUUID, err := parseID(userID)
	if err != nil {
		return domain.Comment{}, err
	}

	comment := &entities.Comment{
		ID:       uuid.New(),
		RecipeID: recipe.ID,
		UserID:   userUUID,
		Content:  strings.TrimSpace(req.Content),
	}
	if comment.Content == "" {
		return domain.Comment{}, domain.ErrInvalidInput
	}
	if err := s.recipeRepository.CreateComment(ctx, comment); err != nil {
		return domain.Comment{}, err
	}

	stored, err := s.recipeRepository.GetCommentByID(ctx, comment.ID.String())
	if err != nil {
		return domain.Comment{}, err
	}
	out := ToComment(stored)

	if s.broker != nil {
		event := domain.CommentEvent{RecipeID: out.RecipeID, Comment: out}
		if err := s.broker.Publish(ctx, event); err != nil {
			s.log.Warn("failed to publish comment", "recipe_id", out.RecipeID, "error", err)
		}
	}
	return out, nil
}

// DeleteComment is allowed for the comment author and the recipe author.
func (s *recipeService) DeleteComment(ctx context.Context, userID, commentID string) error {
	if _, err := parseID(commentID); err != nil {
		return err
	}
	comment, err := s.recipeRepository.GetCommentByID(ctx, commentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrCommentNotFound
	}
	if err != nil {
		return err
	}

	isAuthor := comment.UserID.String() == userID
	isRecipeOwner := comment.Recipe != nil && comment.Recipe.UserID.String() == userID
	if !isAuthor && !isRecipeOwner {
		return domain.ErrUnauthorizedCommentAccess
	}
	return s.recipeRepository.DeleteComment(ctx, commentID)
}

func (s *recipeService) GetComments(ctx context.Context, recipeID string, page domain.Page) (domain.CommentConnection, error) {
	if _, err := s.loadRecipe(ctx, recipeID); err != nil {
		return domain.CommentConnection{}, err
	}
	page = page.Normalize()
	comments, total, err := s.recipeRepository.GetComments(ctx, recipeID, page.Offset, page.Limit)
	if err != nil {
		return domain.CommentConnection{}, err
	}
	out := domain.CommentConnection{Comments: make([]domain.Comment, 0, len(comments)), Total: total}
	for _, c := range comments {
		out.Comments = append(out.Comments, ToComment(c))
	}
	return out, nil
}

func (s *recipeService) BookmarkRecipe(ctx context.Context, userID, recipeID string) error {
	recipe, err := s.loadRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	userUUID, err := parseID(userID)
	if err != nil {
		return err
	}
	return s.recipeRepository.BookmarkRecipe(ctx, userUUID, recipe.ID)
}

func (s *recipeService) RemoveBookmark(ctx context.Context, userID, recipeID string) error {
	if _, err := parseID(recipeID); err != nil {
		return err
	}
	return s.recipeRepository.RemoveBookmark(ctx, userID, recipeID)
}

func (s *recipeService) GetBookmarkedRecipes(ctx context.Context, userID string, page domain.Page) (domain.RecipeConnection, error) {
	page = page.Normalize()
	recipes, total, err := s.recipeRepository.GetRecipeBookmarks(ctx, userID, page.Offset, page.Limit)
	if err != nil {
		return domain.RecipeConnection{}, err
	}
	return s.connection(ctx, recipes, total, page, userID)
}

func (s *recipeService) MarkAsCooked(ctx context.Context, userID, recipeID string) error {
	recipe, err := s.loadRecipe(ctx, recipeID)
	if err != nil {
		return err
	}
	userUUID, err := parseID(userID)
	if err != nil {
		return err
	}
	return s.recipeRepository.AddRecipeHistory(ctx, userUUID, recipe.ID)
}

func (s *recipeService) GetRecipeHistory(ctx context.Context, userID string, page domain.Page) (domain.CookingHistory, error) {
	page = page.Normalize()
	history, total, err := s.recipeRepository.GetRecipeHistory(ctx, userID, page.Offset, page.Limit)
	if err != nil {
		return domain.CookingHistory{}, err
	}

	recipes := make([]*entities.Recipe, 0, len(history))
	for _, h := range history {
		if h.Recipe != nil {
			recipes = append(recipes, h.Recipe)
		}
	}
	hydrated, err := s.Hydrate(ctx, recipes, userID)
	if err != nil {
		return domain.CookingHistory{}, err
	}
	byID := make(map[string]domain.Recipe, len(hydrated))
	for _, r := range hydrated {
		byID[r.ID] = r
	}

	out := domain.CookingHistory{Entries: make([]domain.CookingHistoryEntry, 0, len(history)), Total: total}
	for _, h := range history {
		r, ok := byID[h.RecipeID.String()]
		if !ok {
			continue
		}
		out.Entries = append(out.Entries, domain.CookingHistoryEntry{Recipe: r, CookedAt: h.CookedAt})
	}
	return out, nil
}
