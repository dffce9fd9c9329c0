package app

import (
	"errors"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

const internalErrorMsg = "Internal server error"

// ErrorHandler renders handler errors as {"error": msg}. Server errors are logged here
// and nowhere else.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := internalErrorMsg

	var fiberErr *fiber.Error
	if richErr, ok := richerrors.AsRichError(err); ok {
		if richErr.Code != 0 {
			code = richErr.Code
		}
		if richErr.ExternalMsg != "" {
			msg = richErr.ExternalMsg
		}
	} else if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		msg = fiberErr.Message
	}

	if code >= fiber.StatusInternalServerError {
		zerolog.Ctx(c.UserContext()).Error().Err(err).Int("code", code).Str("path", c.Path()).Msg("Request failed")
		msg = internalErrorMsg
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
