package routes

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/graph"
	"Recipe-Hub/internal/middleware"
	"Recipe-Hub/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Config struct {
	App            *fiber.App
	GraphQLHandler graph.Handler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.GraphQL()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": domain.MessageSuccessPing})
	})
	c.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (c *Config) GraphQL() {
	gql := c.App.Group("/graphql", c.Middleware.OptionalAuthMiddleware(c.JWTService))
	gql.Post("", c.GraphQLHandler.Query)
	gql.Get("/subscriptions", c.GraphQLHandler.Subscribe)
}
