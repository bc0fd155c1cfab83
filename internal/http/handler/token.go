package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"moneyapi/internal/config"
)

const refreshTokenCookie = "refreshToken"

// RevokeToken godoc
// @Summary Revoke refresh token
// @Description Clears the refresh token cookie. No server-side state is involved.
// @Tags tokens
// @Success 204
// @Router /tokens/revoke [delete]
func RevokeToken(sec config.SecurityConfig, contextPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Cookie(&fiber.Cookie{
			Name:     refreshTokenCookie,
			Value:    "",
			Path:     contextPath + "/oauth/token",
			Expires:  fasthttp.CookieExpireDelete,
			HTTPOnly: true,
			Secure:   sec.EnableHTTPS,
		})
		return c.SendStatus(fiber.StatusNoContent)
	}
}
