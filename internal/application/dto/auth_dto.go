package dto

// LoginRequest entrada para login contra POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserInfo perfil de usuario embebido en la respuesta de login y en /api/auth/me.
// A diferencia de los listados, aquí el backend expone el id como "id".
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginResponse salida del login: token opaco + perfil.
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
