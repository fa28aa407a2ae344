package session

import (
	"context"

	"github.com/invorya/inventory-web/internal/application/dto"
)

// ProfileFunc obtiene el perfil del usuario autenticado (GET /api/auth/me).
type ProfileFunc func(ctx context.Context) (*dto.UserInfo, error)

// Rehydrate intenta recuperar la sesión al arrancar a partir de un token
// persistido. Comportamiento configurable y explícito:
//
//   - enabled=false (por defecto): se conserva el comportamiento original del
//     front-end, donde recargar la página pierde el estado en memoria aunque
//     exista un token válido en el almacén, y se exige login de nuevo.
//   - enabled=true: se valida el token contra el API; si responde, el estado
//     pasa a autenticado con el rol devuelto. Si el token fue rechazado, el
//     401 ya habrá limpiado el almacén por el camino normal del cliente.
//
// Devuelve true si la sesión quedó recuperada.
func Rehydrate(ctx context.Context, enabled bool, hasToken bool, profile ProfileFunc, state *State) bool {
	if !enabled || !hasToken {
		return false
	}
	me, err := profile(ctx)
	if err != nil {
		return false
	}
	state.Login(me.Role)
	return true
}
