package services

import (
	"context"
	"net/url"

	"github.com/invorya/inventory-web/internal/application/dto"
	"github.com/invorya/inventory-web/internal/domain"
	"github.com/invorya/inventory-web/internal/infrastructure/api"
)

// ReportService proyecciones de solo lectura: valorización de inventario y
// ventas por rango de fechas. Nada se cachea; cada petición recalcula.
type ReportService struct {
	client *api.Client
}

// NewReportService construye el servicio.
func NewReportService(client *api.Client) *ReportService {
	return &ReportService{client: client}
}

// Inventory consulta GET /api/reports/inventory. La agregación viene del
// servidor y se confía tal cual.
func (s *ReportService) Inventory(ctx context.Context) (*dto.InventoryReportResponse, error) {
	var out dto.InventoryReportResponse
	if err := s.client.Get(ctx, "/api/reports/inventory", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Sales consulta GET /api/reports/sales?startDate=&endDate= (fechas ISO).
// Ambas fechas son obligatorias; faltando una no se emite petición.
func (s *ReportService) Sales(ctx context.Context, startDate, endDate string) (*dto.SalesReportResponse, error) {
	if startDate == "" || endDate == "" {
		return nil, domain.ErrMissingDates
	}
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)
	var out dto.SalesReportResponse
	if err := s.client.Get(ctx, "/api/reports/sales?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}
