package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/xiaogao007/Stickplanet/internal/models"
	"github.com/xiaogao007/Stickplanet/internal/services"
)

// Login exchanges a client login code for a session token, creating the
// profile on first sight.
func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.validate.Struct(input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "code is required")
	}

	openID, err := handler.identity.Resolve(c.Context(), input.Code)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "login code rejected")
	}

	profile, err := handler.profileService.LoginOrRegister(openID, services.LoginInfo{
		Nickname:  input.Nickname,
		AvatarURL: input.AvatarURL,
	})
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	token, err := handler.buildToken(&profile, authTokenTTL)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}
	handler.setAuthCookie(c, token)

	return c.JSON(fiber.Map{
		"token": token,
		"user": fiber.Map{
			"id":         profile.ID,
			"openid":     profile.OpenID,
			"nickname":   profile.Nickname,
			"avatar_url": profile.AvatarURL,
			"role":       profile.Role,
		},
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) buildToken(profile *models.Profile, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = authTokenTTL
	}
	now := time.Now()

	claims := authClaims{
		ProfileID: profile.ID,
		Role:      profile.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(authTokenTTL),
	})
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}
