package cultural

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/entities"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/pkg/recipe"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CulturalService interface {
		CulturalRecipes(ctx context.Context, req domain.CulturalRecipesRequest, viewerID string) (domain.RecipeConnection, error)
		RecommendedRecipes(ctx context.Context, userID string, limit int) ([]domain.Recipe, error)
		SetRecipeCulturalTag(ctx context.Context, userID, recipeID string, req domain.CulturalTagRequest) (domain.CulturalTag, error)

		SetPreference(ctx context.Context, userID string, req domain.CulturalPreferenceRequest) (domain.CulturalPreference, error)
		MyPreference(ctx context.Context, userID string) (domain.CulturalPreference, error)

		OnboardingStatus(ctx context.Context, userID string) (domain.OnboardingStatus, error)
		CompleteOnboardingStep(ctx context.Context, userID, step string) (domain.OnboardingStatus, error)
		Festivals(religion string) []domain.Festival
	}

	culturalService struct {
		culturalRepository CulturalRepository
		recipes            recipe.RecipeService
		log                *logger.Logger
	}
)

func NewCulturalService(culturalRepository CulturalRepository, recipes recipe.RecipeService, log *logger.Logger) CulturalService {
	return &culturalService{
		culturalRepository: culturalRepository,
		recipes:            recipes,
		log:                log.With("service", "cultural"),
	}
}

func (s *culturalService) CulturalRecipes(ctx context.Context, req domain.CulturalRecipesRequest, viewerID string) (domain.RecipeConnection, error) {
	page := req.Page.Normalize()
	found, total, err := s.culturalRepository.GetRecipes(ctx, req.Filter, "", page.Offset, page.Limit)
	if err != nil {
		return domain.RecipeConnection{}, err
	}
	hydrated, err := s.recipes.Hydrate(ctx, found, viewerID)
	if err != nil {
		return domain.RecipeConnection{}, err
	}
	return domain.RecipeConnection{Recipes: hydrated, Total: total, Offset: page.Offset, Limit: page.Limit}, nil
}

// RecommendedRecipes narrows other authors' recipes by the caller's stored preference.
// Without a preference the newest recipes are returned.
func (s *culturalService) RecommendedRecipes(ctx context.Context, userID string, limit int) ([]domain.Recipe, error) {
	page := domain.Page{Limit: limit}.Normalize()

	var filter domain.CulturalFilter
	pref, err := s.culturalRepository.GetPreference(ctx, userID)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil:
		return nil, err
	default:
		filter = PreferenceFilter(toPreference(pref))
	}

	found, _, err := s.culturalRepository.GetRecipes(ctx, filter, userID, 0, page.Limit)
	if err != nil {
		return nil, err
	}
	return s.recipes.Hydrate(ctx, found, userID)
}

func (s *culturalService) SetRecipeCulturalTag(ctx context.Context, userID, recipeID string, req domain.CulturalTagRequest) (domain.CulturalTag, error) {
	id, err := uuid.Parse(recipeID)
	if err != nil {
		return domain.CulturalTag{}, domain.ErrParseUUID
	}
	owner, err := s.culturalRepository.GetRecipeOwner(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CulturalTag{}, domain.ErrRecipeNotFound
	}
	if err != nil {
		return domain.CulturalTag{}, err
	}
	if owner.String() != userID {
		return domain.CulturalTag{}, domain.ErrUnauthorizedRecipeAccess
	}

	if err := s.culturalRepository.UpsertRecipeTag(ctx, recipe.NewCulturalTag(id, req)); err != nil {
		return domain.CulturalTag{}, err
	}
	stored, err := s.culturalRepository.GetRecipeTag(ctx, recipeID)
	if err != nil {
		return domain.CulturalTag{}, err
	}
	return *recipe.ToCulturalTag(stored), nil
}

func (s *culturalService) SetPreference(ctx context.Context, userID string, req domain.CulturalPreferenceRequest) (domain.CulturalPreference, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CulturalPreference{}, domain.ErrParseUUID
	}

	pref := &entities.CulturalPreference{
		ID:               uuid.New(),
		UserID:           userUUID,
		Religion:         req.Religion,
		DietTypes:        compact(req.DietTypes),
		CuisineTypes:     compact(req.CuisineTypes),
		SpiceLevel:       req.SpiceLevel,
		Region:           req.Region,
		Festivals:        compact(req.Festivals),
		AvoidIngredients: compact(req.AvoidIngredients),
	}
	if err := s.culturalRepository.UpsertPreference(ctx, pref); err != nil {
		return domain.CulturalPreference{}, err
	}
	s.log.Info("cultural preference saved", "user_id", userID)
	return s.MyPreference(ctx, userID)
}

func (s *culturalService) MyPreference(ctx context.Context, userID string) (domain.CulturalPreference, error) {
	pref, err := s.culturalRepository.GetPreference(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CulturalPreference{}, domain.ErrCulturalPreferenceNotFound
	}
	if err != nil {
		return domain.CulturalPreference{}, err
	}
	return toPreference(pref), nil
}

func (s *culturalService) OnboardingStatus(ctx context.Context, userID string) (domain.OnboardingStatus, error) {
	step, onboarded, err := s.culturalRepository.GetOnboarding(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.OnboardingStatus{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.OnboardingStatus{}, err
	}
	return onboardingStatus(step, onboarded), nil
}

func (s *culturalService) CompleteOnboardingStep(ctx context.Context, userID, step string) (domain.OnboardingStatus, error) {
	current, onboarded, err := s.culturalRepository.GetOnboarding(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.OnboardingStatus{}, domain.ErrUserNotFound
	}
	if err != nil {
		return domain.OnboardingStatus{}, err
	}

	next, err := NextOnboardingStep(current, step)
	if err != nil {
		return domain.OnboardingStatus{}, err
	}
	if next != current {
		onboarded = onboarded || next == domain.OnboardingStepDone
		if err := s.culturalRepository.UpdateOnboarding(ctx, userID, next, onboarded); err != nil {
			return domain.OnboardingStatus{}, err
		}
		s.log.Info("onboarding advanced", "user_id", userID, "step", next)
	}
	return onboardingStatus(next, onboarded), nil
}

func (s *culturalService) Festivals(religion string) []domain.Festival {
	return Festivals(religion)
}

func toPreference(p *entities.CulturalPreference) domain.CulturalPreference {
	return domain.CulturalPreference{
		ID:               p.ID.String(),
		Religion:         p.Religion,
		DietTypes:        append([]string{}, p.DietTypes...),
		CuisineTypes:     append([]string{}, p.CuisineTypes...),
		SpiceLevel:       p.SpiceLevel,
		Region:           p.Region,
		Festivals:        append([]string{}, p.Festivals...),
		AvoidIngredients: append([]string{}, p.AvoidIngredients...),
		UpdatedAt:        p.UpdatedAt,
	}
}
