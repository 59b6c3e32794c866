package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/grovesocial/grove/pkg/internal/checkers"
	"github.com/grovesocial/grove/pkg/internal/database"
	"github.com/grovesocial/grove/pkg/internal/http/api"
	"github.com/grovesocial/grove/pkg/internal/localize"
	"github.com/grovesocial/grove/pkg/internal/models"
	"github.com/grovesocial/grove/pkg/internal/security"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Tokens verifies the bearer tokens the auth middleware accepts. Wired in
// main before the server starts.
var Tokens *security.Tokens

type App struct {
	app *fiber.App
}

func statusOf(kind checkers.ErrorKind) int {
	switch kind {
	case checkers.KindValidation:
		return fiber.StatusBadRequest
	case checkers.KindPermissionDenied:
		return fiber.StatusForbidden
	case checkers.KindNotFound:
		return fiber.StatusNotFound
	case checkers.KindAuthenticationFailed:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	var checkErr *checkers.Error
	if errors.As(err, &checkErr) {
		tag := localize.Match(c.Get(fiber.HeaderAcceptLanguage))
		return c.Status(statusOf(checkErr.Kind)).JSON(fiber.Map{
			"message": checkErr.Localize(tag),
		})
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"message": fiberErr.Message,
		})
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("An unhandled error occurred...")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "internal server error",
	})
}

// authMiddleware resolves the acting user from a bearer access token.
// Handlers mounted behind it can rely on Locals("user") being set.
func authMiddleware(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return fiber.NewError(fiber.StatusUnauthorized, "authorization required")
	}

	claims, err := Tokens.Verify(parts[1], security.TokenTypeAccess)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
	}

	var user models.User
	if err := database.C.First(&user, claims.UserID).Error; err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "account no longer exists")
	}

	c.Locals("user", user)
	return c.Next()
}

func NewServer() *App {
	app := fiber.New(fiber.Config{
		AppName:               "Grove",
		DisableStartupMessage: true,
		EnableIPValidation:    true,
		ServerHeader:          "Grove",
		JSONEncoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Marshal,
		JSONDecoder:           jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal,
		ErrorHandler:          errorHandler,
	})

	app.Use(logger.New(logger.Config{
		Format: "${status} | ${latency} | ${method} ${path}\n",
		Output: log.Logger,
	}))
	app.Use(cors.New())

	api.MapAPIs(app, "/api", authMiddleware)

	return &App{app: app}
}

func (v *App) Listen() {
	if err := v.app.Listen(viper.GetString("bind")); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when starting the http server.")
	}
}
