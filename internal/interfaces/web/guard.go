package web

import (
	"github.com/gofiber/fiber/v2"

	appsession "github.com/invorya/inventory-web/internal/application/session"
	"github.com/invorya/inventory-web/internal/domain/entity"
)

// Guards de navegación. Se evalúan por cada petición contra la única fuente de
// verdad de sesión; la decisión es siempre renderizar o redirigir, nunca un
// error explícito (la denegación por rol es silenciosa, hacia /dashboard).

// RequireGuest deja pasar solo sin sesión; con sesión redirige a /dashboard.
func RequireGuest(state *appsession.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if state.Current().Authenticated {
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireAuth deja pasar solo con sesión iniciada; si no, redirige a /login.
func RequireAuth(state *appsession.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !state.Current().Authenticated {
			return c.Redirect("/login", fiber.StatusFound)
		}
		return c.Next()
	}
}

// RequireAdmin exige sesión con rol Administrator. Sin sesión va a /login;
// con sesión de rol insuficiente va a /dashboard sin mensaje.
func RequireAdmin(state *appsession.State) fiber.Handler {
	return func(c *fiber.Ctx) error {
		snap := state.Current()
		if !snap.Authenticated {
			return c.Redirect("/login", fiber.StatusFound)
		}
		if snap.Role != entity.RoleAdministrator {
			return c.Redirect("/dashboard", fiber.StatusFound)
		}
		return c.Next()
	}
}
