package services

import (
	"context"

	"github.com/invorya/inventory-web/internal/application/dto"
	"github.com/invorya/inventory-web/internal/domain"
	"github.com/invorya/inventory-web/internal/domain/entity"
	"github.com/invorya/inventory-web/internal/infrastructure/api"
)

// UserService CRUD tipado sobre /api/users (solo Administrator llega hasta
// aquí; el guard de rutas lo garantiza antes). El bearer token lo adjunta el
// cliente HTTP en su hook de salida: este servicio no duplica esa lógica.
type UserService struct {
	client *api.Client
}

// NewUserService construye el servicio.
func NewUserService(client *api.Client) *UserService {
	return &UserService{client: client}
}

// List devuelve los usuarios tal como los entrega el servidor.
func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	var out []entity.User
	if err := s.client.Get(ctx, "/api/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create crea un usuario (email, password de solo escritura, rol del enum).
func (s *UserService) Create(ctx context.Context, in dto.CreateUserRequest) (*entity.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	var out entity.User
	if err := s.client.Post(ctx, "/api/users", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update envía un patch de email/rol vía PUT.
func (s *UserService) Update(ctx context.Context, id string, patch dto.UserPatch) (*entity.User, error) {
	if patch.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	var out entity.User
	if err := s.client.Put(ctx, "/api/users/"+id, patch, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete elimina el usuario.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.client.Delete(ctx, "/api/users/"+id)
}
