package web

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/inventory-web/internal/application/dto"
	"github.com/invorya/inventory-web/internal/application/services"
	"github.com/invorya/inventory-web/internal/domain"
)

// ReportHandler vistas de reportes (solo Administrator). Los reportes son
// proyecciones de solo lectura que se recalculan en cada petición explícita;
// aquí no se guarda nada entre renders.
type ReportHandler struct {
	renderer *Renderer
	toasts   *Toasts
	reports  *services.ReportService
}

// NewReportHandler construye el handler.
func NewReportHandler(renderer *Renderer, toasts *Toasts, reports *services.ReportService) *ReportHandler {
	return &ReportHandler{renderer: renderer, toasts: toasts, reports: reports}
}

type reportsData struct {
	Inventory *dto.InventoryReportResponse
	Sales     *dto.SalesReportResponse
	StartDate string
	EndDate   string
}

// Show renderiza la página de reportes sin datos generados.
// GET /reports
func (h *ReportHandler) Show(c *fiber.Ctx) error {
	return h.renderer.Render(c, "reports", "Reports", reportsData{})
}

// Inventory genera el reporte de valorización.
// POST /reports/inventory
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.reports.Inventory(c.Context())
	if err != nil {
		h.toasts.Notify("Failed to generate inventory report")
		return h.renderer.Render(c, "reports", "Reports", reportsData{})
	}
	h.toasts.Notify("Inventory report generated successfully")
	return h.renderer.Render(c, "reports", "Reports", reportsData{Inventory: out})
}

// Sales genera el reporte de ventas. Ambas fechas son obligatorias; si falta
// alguna no se emite petición al API.
// POST /reports/sales
func (h *ReportHandler) Sales(c *fiber.Ctx) error {
	start := c.FormValue("startDate")
	end := c.FormValue("endDate")
	out, err := h.reports.Sales(c.Context(), start, end)
	if err != nil {
		if errors.Is(err, domain.ErrMissingDates) {
			h.toasts.Notify("Please select start and end dates")
		} else {
			h.toasts.Notify("Failed to generate sales report")
		}
		return h.renderer.Render(c, "reports", "Reports", reportsData{StartDate: start, EndDate: end})
	}
	h.toasts.Notify("Sales report generated successfully")
	return h.renderer.Render(c, "reports", "Reports", reportsData{
		Sales:     out,
		StartDate: start,
		EndDate:   end,
	})
}
