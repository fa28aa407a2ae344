package services

import (
	"context"

	"github.com/invorya/inventory-web/internal/application/dto"
	"github.com/invorya/inventory-web/internal/domain"
	"github.com/invorya/inventory-web/internal/domain/entity"
	"github.com/invorya/inventory-web/internal/infrastructure/api"
)

// ProductService CRUD tipado sobre /api/products. Cada función delega en el
// cliente HTTP y propaga sus fallos sin capturar ni reintentar.
type ProductService struct {
	client *api.Client
}

// NewProductService construye el servicio.
func NewProductService(client *api.Client) *ProductService {
	return &ProductService{client: client}
}

// List devuelve la colección en el orden en que la entrega el servidor; el
// cliente no garantiza ningún orden propio.
func (s *ProductService) List(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := s.client.Get(ctx, "/api/products", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea un producto y devuelve la entidad con el id asignado por el servidor.
func (s *ProductService) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out entity.Product
	if err := s.client.Post(ctx, "/api/products", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update envía un patch explícito (solo los campos presentes) vía PUT y
// devuelve la entidad actualizada.
func (s *ProductService) Update(ctx context.Context, id string, patch dto.ProductPatch) (*entity.Product, error) {
	if patch.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	var out entity.Product
	if err := s.client.Put(ctx, "/api/products/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina el producto; no hay cuerpo de respuesta en el éxito.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/api/products/"+id)
}
