package entity

// Roles reconocidos por el backend. El rol controla el acceso a las vistas
// de usuarios y reportes.
const (
	RoleAdministrator = "Administrator"
	RoleNormalUser    = "Normal User"
)

// ValidRole indica si el rol es uno de los dos valores del enum.
func ValidRole(role string) bool {
	return role == RoleAdministrator || role == RoleNormalUser
}

// User representa una cuenta del sistema. El password es de solo escritura:
// se acepta al crear y el API nunca lo devuelve.
type User struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
