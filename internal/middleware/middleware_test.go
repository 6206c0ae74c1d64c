package middleware

import (
	"Recipe-Hub/domain"
	"Recipe-Hub/internal/api/reqctx"
	"Recipe-Hub/internal/utils/logger"
	"Recipe-Hub/pkg/jwt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, svc jwt.JWTService) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(NewMiddleware(logger.NewNop()).OptionalAuthMiddleware(svc))
	app.Get("/who", func(c *fiber.Ctx) error {
		req := reqctx.From(c.UserContext())
		if !req.Authenticated() {
			return c.SendString("anonymous")
		}
		return c.SendString(req.UserID + ":" + req.Role)
	})
	return app
}

func get(t *testing.T, app *fiber.App, auth string) string {
	t.Helper()
	r := httptest.NewRequest("GET", "/who", nil)
	if auth != "" {
		r.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(r)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	svc := jwt.NewJWTServiceWithSecret("secret", time.Hour)
	app := newTestApp(t, svc)

	token, err := svc.GenerateTokenUser("u-1", domain.RoleUser)
	require.NoError(t, err)

	assert.Equal(t, "u-1:user", get(t, app, "Bearer "+token))
	assert.Equal(t, "anonymous", get(t, app, ""))
	assert.Equal(t, "anonymous", get(t, app, "Bearer garbage"))
	assert.Equal(t, "anonymous", get(t, app, "Basic abc"))
}
