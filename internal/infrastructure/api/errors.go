package api

import "fmt"

// Kind clasifica un fallo de transporte o de protocolo contra el API remoto.
type Kind int

const (
	// KindAuthExpired respuesta 401: el token fue rechazado y la sesión local se destruye.
	KindAuthExpired Kind = iota + 1
	// KindForbidden respuesta 403.
	KindForbidden
	// KindNotFound respuesta 404.
	KindNotFound
	// KindServer respuesta 500.
	KindServer
	// KindOtherStatus cualquier otro código no exitoso.
	KindOtherStatus
	// KindNetwork la petición salió pero no llegó respuesta del servidor.
	KindNetwork
	// KindRequestSetup el fallo ocurrió antes de poder despachar la petición
	// (cuerpo no serializable, URL inválida, respuesta indecodificable).
	KindRequestSetup
)

func (k Kind) String() string {
	switch k {
	case KindAuthExpired:
		return "auth_expired"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindServer:
		return "server_error"
	case KindOtherStatus:
		return "http_error"
	case KindNetwork:
		return "network_unreachable"
	case KindRequestSetup:
		return "request_setup"
	default:
		return "unknown"
	}
}

// Error fallo clasificado del cliente HTTP. La notificación al usuario ya fue
// emitida cuando el caller recibe este error; el error se propaga igualmente
// para que cada vista decida qué hacer con su propio estado.
type Error struct {
	Kind   Kind
	Status int    // código HTTP si hubo respuesta; 0 si no
	Path   string // ruta relativa de la petición
	cause  error
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %s %s (HTTP %d)", e.Kind, e.Path, e.Status)
	}
	if e.cause != nil {
		return fmt.Sprintf("api: %s %s: %v", e.Kind, e.Path, e.cause)
	}
	return fmt.Sprintf("api: %s %s", e.Kind, e.Path)
}

// Unwrap expone la causa original para errors.Is/As.
func (e *Error) Unwrap() error { return e.cause }
