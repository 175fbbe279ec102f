package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/DaveCybr/ar-backend/internal/errors"
)

const (
	localUserID = "user_id"
	localEmail  = "email"
)

// RequireAuth validates the bearer access token and stores the caller's
// identity in the request locals.
func (h *AuthHandler) RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": autherror.ErrInvalidToken.Error()})
		}

		claims, err := h.tokenService.VerifyAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return errorResponse(c, err)
		}

		c.Locals(localUserID, claims.UserID)
		c.Locals(localEmail, claims.Email)

		return c.Next()
	}
}
