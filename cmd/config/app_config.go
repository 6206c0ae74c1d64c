package config

import (
	"Recipe-Hub/internal/api/graph"
	"Recipe-Hub/internal/api/routes"
	"Recipe-Hub/internal/middleware"
	"Recipe-Hub/internal/utils"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/internal/utils/storage"
	"Recipe-Hub/pkg/analytics"
	"Recipe-Hub/pkg/community"
	"Recipe-Hub/pkg/course"
	"Recipe-Hub/pkg/cultural"
	"Recipe-Hub/pkg/jwt"
	"Recipe-Hub/pkg/mealplan"
	"Recipe-Hub/pkg/notification"
	"Recipe-Hub/pkg/otp"
	"Recipe-Hub/pkg/recipe"
	"Recipe-Hub/pkg/user"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewApp wires every layer. A nil rdb falls back to in-process OTP storage and
// comment fan-out, which only works on a single node.
func NewApp(db *gorm.DB, rdb *redis.Client, log *logger.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: !utils.IsProduction(),
	})
	middlewares := middleware.NewMiddleware(log)

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("open access log: %w", err)
	}
	app.Use(fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 1 * time.Second,
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/metrics"
		},
	}))

	// utils
	s3 := storage.NewAwsS3()

	var (
		otpStore otp.Store
		broker   notification.Broker
	)
	if rdb != nil {
		otpStore = otp.NewRedisStore(rdb)
		broker = notification.NewRedisBroker(rdb, log)
	} else {
		log.Warn("REDIS_ADDR not set, using in-process OTP store and comment broker")
		otpStore = otp.NewMemoryStore()
		broker = notification.NewMemoryBroker()
	}
	app.Hooks().OnShutdown(broker.Close)

	var sender otp.Sender
	if utils.IsProduction() {
		sender = otp.NewGatewaySender(utils.GetConfig("SMS_GATEWAY_DOMAIN"))
	} else {
		sender = otp.NewLogSender(log)
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	culturalRepository := cultural.NewCulturalRepository(db)
	mealPlanRepository := mealplan.NewMealPlanRepository(db)
	courseRepository := course.NewCourseRepository(db)
	communityRepository := community.NewCommunityRepository(db)
	analyticsRepository := analytics.NewAnalyticsRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	otpService := otp.NewOTPService(otpStore, sender, log)
	userService := user.NewUserService(userRepository, otpService, jwtService, log)
	recipeService := recipe.NewRecipeService(recipeRepository, broker, s3, log)
	culturalService := cultural.NewCulturalService(culturalRepository, recipeService, log)
	mealPlanService := mealplan.NewMealPlanService(mealPlanRepository, log)
	courseService := course.NewCourseService(courseRepository, log)
	communityService := community.NewCommunityService(communityRepository, log)
	analyticsService := analytics.NewAnalyticsService(analyticsRepository, log)

	// GraphQL
	schema, err := graph.NewSchema(graph.NewResolver(graph.Services{
		Users:     userService,
		Recipes:   recipeService,
		Cultural:  culturalService,
		MealPlans: mealPlanService,
		Courses:   courseService,
		Community: communityService,
		Analytics: analyticsService,
		Media:     s3,
		Broker:    broker,
	}, log))
	if err != nil {
		return nil, fmt.Errorf("parse graphql schema: %w", err)
	}
	graphQLHandler := graph.NewHandler(schema, log)

	// routes
	routesConfig := routes.Config{
		App:            app,
		GraphQLHandler: graphQLHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
