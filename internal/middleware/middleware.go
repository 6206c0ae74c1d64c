package middleware

import (
	"Recipe-Hub/internal/api/reqctx"
	"Recipe-Hub/internal/utils"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/pkg/jwt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
	}

	middleware struct {
		log *logger.Logger
	}
)

func NewMiddleware(log *logger.Logger) Middleware {
	return &middleware{log: log.With("component", "middleware")}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins: utils.GetConfig("CORS_ORIGIN"),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
	})
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return ""
}

// OptionalAuthMiddleware attaches the caller identity when a valid bearer token is present.
// Missing or invalid tokens leave the request anonymous.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := &reqctx.Request{
			RequestID: c.Get(fiber.HeaderXRequestID),
			IP:        c.IP(),
		}
		if req.RequestID == "" {
			req.RequestID = uuid.NewString()
		}
		if token := bearerToken(c); token != "" {
			userID, role, err := jwtService.GetUserIDByToken(token)
			if err != nil {
				m.log.Debug("ignoring bearer token", "error", err, "request_id", req.RequestID)
			} else {
				req.UserID = userID
				req.Role = role
				c.Locals("user_id", userID)
				c.Locals("role", role)
			}
		}
		c.SetUserContext(reqctx.With(c.UserContext(), req))
		return c.Next()
	}
}
