package analytics

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/utils/logger"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	AnalyticsService interface {
		MyAnalytics(ctx context.Context, userID string, req domain.AnalyticsRequest) (domain.Analytics, error)
		RecipeAnalytics(ctx context.Context, userID, recipeID string, req domain.AnalyticsRequest) (domain.Analytics, error)
	}

	analyticsService struct {
		analyticsRepository AnalyticsRepository
		log                 *logger.Logger
		now                 func() time.Time
	}
)

func NewAnalyticsService(analyticsRepository AnalyticsRepository, log *logger.Logger) AnalyticsService {
	return &analyticsService{
		analyticsRepository: analyticsRepository,
		log:                 log.With("service", "analytics"),
		now:                 time.Now,
	}
}

func (s *analyticsService) MyAnalytics(ctx context.Context, userID string, req domain.AnalyticsRequest) (domain.Analytics, error) {
	return s.build(ctx, Scope{AuthorID: userID}, req)
}

func (s *analyticsService) RecipeAnalytics(ctx context.Context, userID, recipeID string, req domain.AnalyticsRequest) (domain.Analytics, error) {
	if _, err := uuid.Parse(recipeID); err != nil {
		return domain.Analytics{}, domain.ErrParseUUID
	}
	owner, err := s.analyticsRepository.GetRecipeOwner(ctx, recipeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Analytics{}, domain.ErrRecipeNotFound
	}
	if err != nil {
		return domain.Analytics{}, err
	}
	if owner.String() != userID {
		return domain.Analytics{}, domain.ErrUnauthorizedRecipeAccess
	}

	out, err := s.build(ctx, Scope{AuthorID: userID, RecipeID: recipeID}, req)
	if err != nil {
		return domain.Analytics{}, err
	}
	out.RecipeID = recipeID
	return out, nil
}

func (s *analyticsService) build(ctx context.Context, scope Scope, req domain.AnalyticsRequest) (domain.Analytics, error) {
	window, err := Window(req, s.now())
	if err != nil {
		return domain.Analytics{}, err
	}
	previous := PreviousWindow(window)

	current, err := s.analyticsRepository.CountMetrics(ctx, scope, window)
	if err != nil {
		return domain.Analytics{}, err
	}
	before, err := s.analyticsRepository.CountMetrics(ctx, scope, previous)
	if err != nil {
		return domain.Analytics{}, err
	}
	daily, err := s.analyticsRepository.GetDailyCounts(ctx, scope, window)
	if err != nil {
		return domain.Analytics{}, err
	}

	period := req.Period
	if period == "" {
		period = domain.PeriodWeek
	}
	return domain.Analytics{
		Period:   period,
		Window:   window,
		Current:  current,
		Previous: before,
		Growth:   GrowthRates(current, before),
		Daily:    DailySeries(window, daily),
	}, nil
}
