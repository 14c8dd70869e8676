package auth

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"college-admin/app/config"
)

// Handler carries the operator credentials. The console is single-user:
// one admin account configured through the environment.
type Handler struct {
	cfg          *config.Config
	passwordHash string
}

// SetupAuthRoutes registers the login page and API and returns the
// handler so main can build the middleware from it.
func SetupAuthRoutes(app *fiber.App, cfg *config.Config) *Handler {
	hash, err := HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}
	h := &Handler{cfg: cfg, passwordHash: hash}

	app.Get("/login", h.LoginPage)
	app.Post("/api/login", h.LoginAPI)
	app.Post("/api/logout", h.LogoutAPI)
	return h
}

// LoginPage renders the login form, skipping it for a valid session.
func (h *Handler) LoginPage(c *fiber.Ctx) error {
	if tokenString := c.Cookies("jwt_token"); tokenString != "" {
		if _, err := ValidateJWT(tokenString, h.cfg.JWTSecret); err == nil {
			return c.Redirect("/")
		}
	}
	return c.Render("login", fiber.Map{
		"Title": "Login - College Admin",
	})
}

// Middleware validates the JWT cookie and stores the operator email in
// the request context. API requests get a 401; page requests a redirect.
func (h *Handler) Middleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		return h.reject(c)
	}
	claims, err := ValidateJWT(tokenString, h.cfg.JWTSecret)
	if err != nil {
		return h.reject(c)
	}
	c.Locals("operator", claims.Email)
	return c.Next()
}

func (h *Handler) reject(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   "authentication required",
		})
	}
	return c.Redirect("/login")
}
