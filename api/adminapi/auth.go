package adminapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/folio-cms/folio/auth"
)

// SessionCookieName is the name of the cookie carrying the session token
const SessionCookieName = "admin_token"

const localsClaims = "session_claims"

// sessionCookie returns the session cookie with its fixed attributes. The
// cookie has no expiry of its own; the token inside expires.
func sessionCookie(value string) *fiber.Cookie {
	return &fiber.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	}
}

// expiredSessionCookie instructs the client to delete the session cookie
func expiredSessionCookie() *fiber.Cookie {
	cookie := sessionCookie("")
	cookie.Expires = time.Unix(0, 0)
	return cookie
}

// requireSession rejects requests without a valid admin session cookie.
// All rejections look the same to the client.
func requireSession(guard *auth.Guard) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := guard.Authorize(c.Cookies(SessionCookieName))
		if err != nil {
			return detail(c, fiber.StatusForbidden, auth.ErrForbidden.Error())
		}
		c.Locals(localsClaims, claims)
		return c.Next()
	}
}

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// registerAuth wires the login, logout and session routes
func registerAuth(r fiber.Router, authenticator *auth.Authenticator, guard fiber.Handler) {
	r.Post(
		"/admin/login", func(c *fiber.Ctx) error {
			var req loginRequest
			if err := c.BodyParser(&req); err != nil {
				return detail(c, fiber.StatusBadRequest, detailInvalidBody)
			}
			token, err := authenticator.Login(req.Username, req.Password)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidCredentials) {
					log.WithField("ip", c.IP()).Info("failed admin login")
					return detail(c, fiber.StatusUnauthorized, auth.ErrInvalidCredentials.Error())
				}
				log.WithError(err).Error("could not issue session token")
				return detail(c, fiber.StatusInternalServerError, detailInternalError)
			}
			c.Cookie(sessionCookie(token))
			log.WithField("ip", c.IP()).Info("admin logged in")
			return c.JSON(fiber.Map{"ok": true})
		},
	)

	logout := func(c *fiber.Ctx) error {
		c.Cookie(expiredSessionCookie())
		return c.JSON(fiber.Map{"ok": true})
	}
	r.Post("/logout", logout)
	r.Post("/admin/logout", logout)

	r.Get(
		"/admin/session", guard, func(c *fiber.Ctx) error {
			resp := fiber.Map{"ok": true}
			if claims, ok := c.Locals(localsClaims).(*auth.Claims); ok {
				resp["expires_at"] = claims.ExpiresAt.Unix()
			}
			return c.JSON(resp)
		},
	)
}
