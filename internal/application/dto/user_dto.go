package dto

import (
	"net/mail"
	"strings"

	"github.com/invorya/inventory-web/internal/domain"
	"github.com/invorya/inventory-web/internal/domain/entity"
)

// CreateUserRequest entrada para crear un usuario. El password solo viaja
// en la creación; el API nunca lo devuelve.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Validate verifica email bien formado y rol dentro del enum.
func (r CreateUserRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return domain.ErrInvalidEmail
	}
	if strings.TrimSpace(r.Password) == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidRole(r.Role) {
		return domain.ErrInvalidRole
	}
	return nil
}

// UserPatch actualización parcial explícita de un usuario (email y rol;
// el password no se edita por esta vía).
type UserPatch struct {
	Email *string `json:"email,omitempty"`
	Role  *string `json:"role,omitempty"`
}

// Validate valida campo a campo los valores presentes.
func (p UserPatch) Validate() error {
	if p.Email != nil {
		if _, err := mail.ParseAddress(*p.Email); err != nil {
			return domain.ErrInvalidEmail
		}
	}
	if p.Role != nil && !entity.ValidRole(*p.Role) {
		return domain.ErrInvalidRole
	}
	return nil
}

// IsZero indica si el patch no trae ningún campo.
func (p UserPatch) IsZero() bool {
	return p.Email == nil && p.Role == nil
}
