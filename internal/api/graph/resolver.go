package graph

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/pkg/analytics"
	"Recipe-Hub/pkg/community"
	"Recipe-Hub/pkg/course"
	"Recipe-Hub/pkg/cultural"
	"Recipe-Hub/pkg/mealplan"
	"Recipe-Hub/pkg/notification"
	"Recipe-Hub/pkg/recipe"
	"Recipe-Hub/pkg/user"
	"context"
	_ "embed"

	"github.com/graph-gophers/graphql-go"
)

//go:embed schema.graphql
var schemaSDL string

const maxQueryDepth = 12

type (
	Uploader interface {
		CreateUploadURL(ctx context.Context, req domain.UploadURLRequest, userID string) (domain.UploadURL, error)
	}

	Services struct {
		Users     user.UserService
		Recipes   recipe.RecipeService
		Cultural  cultural.CulturalService
		MealPlans mealplan.MealPlanService
		Courses   course.CourseService
		Community community.CommunityService
		Analytics analytics.AnalyticsService
		Media     Uploader
		Broker    notification.Broker
	}

	// Resolver is the root of Query, Mutation and Subscription.
	Resolver struct {
		users     user.UserService
		recipes   recipe.RecipeService
		cultural  cultural.CulturalService
		mealPlans mealplan.MealPlanService
		courses   course.CourseService
		community community.CommunityService
		analytics analytics.AnalyticsService
		media     Uploader
		broker    notification.Broker
		log       *logger.Logger
	}
)

func NewResolver(s Services, log *logger.Logger) *Resolver {
	return &Resolver{
		users:     s.Users,
		recipes:   s.Recipes,
		cultural:  s.Cultural,
		mealPlans: s.MealPlans,
		courses:   s.Courses,
		community: s.Community,
		analytics: s.Analytics,
		media:     s.Media,
		broker:    s.Broker,
		log:       log.With("component", "graphql"),
	}
}

func NewSchema(resolver *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(schemaSDL, resolver,
		graphql.UseFieldResolvers(),
		graphql.MaxDepth(maxQueryDepth),
	)
}

func toPage(offset, limit *int32) domain.Page {
	var p domain.Page
	if offset != nil {
		p.Offset = int(*offset)
	}
	if limit != nil {
		p.Limit = int(*limit)
	}
	return p
}

func intValue(v *int32) int {
	if v == nil {
		return 0
	}
	return int(*v)
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func listValue(s *[]string) []string {
	if s == nil {
		return nil
	}
	return *s
}
