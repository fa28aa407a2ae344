package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/inventory-web/internal/application/services"
	appsession "github.com/invorya/inventory-web/internal/application/session"
)

// LoginHandler vista de login y cierre de sesión.
type LoginHandler struct {
	renderer *Renderer
	auth     *services.AuthService
	state    *appsession.State
}

// NewLoginHandler construye el handler.
func NewLoginHandler(renderer *Renderer, auth *services.AuthService, state *appsession.State) *LoginHandler {
	return &LoginHandler{renderer: renderer, auth: auth, state: state}
}

// Show renderiza el formulario de login.
// GET /login
func (h *LoginHandler) Show(c *fiber.Ctx) error {
	return h.renderer.Render(c, "login", "Login", nil)
}

// Submit procesa el formulario. Solo cuando el login contra el API tuvo éxito
// y el token quedó persistido se marca la sesión en memoria con el rol
// devuelto. En fallo la notificación ya fue emitida por el cliente HTTP; aquí
// solo se vuelve al formulario con el estado previo intacto.
// POST /login
func (h *LoginHandler) Submit(c *fiber.Ctx) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	out, err := h.auth.Login(c.Context(), email, password)
	if err != nil {
		return c.Redirect("/login", fiber.StatusFound)
	}
	h.state.Login(out.User.Role)
	return c.Redirect("/dashboard", fiber.StatusFound)
}

// Logout destruye el token persistido y el estado en memoria, y vuelve al login.
// POST /logout
func (h *LoginHandler) Logout(c *fiber.Ctx) error {
	_ = h.auth.Logout()
	h.state.Logout()
	return c.Redirect("/login", fiber.StatusFound)
}
