package services

import (
	"context"

	"github.com/invorya/inventory-web/internal/application/dto"
	"github.com/invorya/inventory-web/internal/infrastructure/api"
	"github.com/invorya/inventory-web/internal/infrastructure/session"
)

// AuthService primitivas de sesión contra el API: login, logout y perfil.
type AuthService struct {
	client *api.Client
	tokens *session.Store
}

// NewAuthService construye el servicio.
func NewAuthService(client *api.Client, tokens *session.Store) *AuthService {
	return &AuthService{client: client, tokens: tokens}
}

// Login autentica contra POST /api/auth/login y, si el backend devolvió un
// token, lo persiste antes de retornar. El fallo se propaga sin tocar.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	err := s.client.Post(ctx, "/api/auth/login", dto.LoginRequest{Email: email, Password: password}, &out)
	if err != nil {
		return nil, err
	}
	if out.Token != "" {
		if err := s.tokens.Save(out.Token); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

// Logout destruye el token persistido. No llama al API: la sesión es un
// concepto puramente local del cliente.
func (s *AuthService) Logout() error {
	return s.tokens.Clear()
}

// Me consulta GET /api/auth/me con el bearer token vigente.
func (s *AuthService) Me(ctx context.Context) (*dto.UserInfo, error) {
	var out dto.UserInfo
	if err := s.client.Get(ctx, "/api/auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
