package web

import (
	"github.com/gofiber/fiber/v2"

	appsession "github.com/invorya/inventory-web/internal/application/session"
	"github.com/invorya/inventory-web/internal/domain/entity"
)

// DashboardHandler vista principal: navegación según rol y logout.
type DashboardHandler struct {
	renderer *Renderer
	state    *appsession.State
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(renderer *Renderer, state *appsession.State) *DashboardHandler {
	return &DashboardHandler{renderer: renderer, state: state}
}

type dashboardData struct {
	IsAdmin bool
}

// Show renderiza el dashboard. Los enlaces a usuarios y reportes solo se
// muestran a Administrator; el guard en el router refuerza lo mismo por detrás.
// GET /dashboard
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	snap := h.state.Current()
	return h.renderer.Render(c, "dashboard", "Dashboard", dashboardData{
		IsAdmin: snap.Role == entity.RoleAdministrator,
	})
}
