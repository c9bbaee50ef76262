package http

import (
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/gymkit/dashboard/internal/app"
	"github.com/gymkit/dashboard/internal/observability"
	"github.com/gymkit/dashboard/pkg/util"
)

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
func RegisterMiddlewares(fiberApp *fiber.App, logger *zap.Logger) {
	fiberApp.Use(errorHandlingMiddleware(logger))
	fiberApp.Use(observability.RequestLogger(logger))
}

// RequireSession gates page and form routes: while logged out they answer 401
// with the logged-out frame rather than dispatching.
func RequireSession(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, ok := a.Sessions.Current(); !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"frame": a.Frame(),
				"error": fiber.Map{"message": "not logged in"},
			})
		}
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = util.NewNetworkFailure(nil)
			}
			if err != nil {
				if fe, ok := err.(*fiber.Error); ok {
					c.Status(fe.Code)
					_ = c.JSON(fiber.Map{"error": fiber.Map{"message": fe.Message}})
					err = nil
					return
				}
				ce := util.ToClientError(err)
				c.Status(statusFor(ce))
				_ = c.JSON(fiber.Map{"error": fiber.Map{
					"kind":    ce.Kind,
					"message": ce.Message,
				}})
				err = nil
			}
		}()
		return c.Next()
	}
}

// statusFor maps the client error taxonomy onto UI response statuses.
func statusFor(ce *util.ClientError) int {
	switch ce.Kind {
	case util.KindValidation:
		return fiber.StatusBadRequest
	case util.KindAuth:
		return fiber.StatusUnauthorized
	case util.KindNetwork:
		return fiber.StatusBadGateway
	}
	if ce.HTTPStatus >= 400 {
		return ce.HTTPStatus
	}
	return fiber.StatusBadGateway
}
