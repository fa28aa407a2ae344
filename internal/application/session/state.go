package session

import "sync"

// Snapshot lectura consistente del estado de sesión en un instante.
type Snapshot struct {
	Authenticated bool
	Role          string
}

// State estado de sesión único para todo el proceso: bandera de autenticación
// y rol vigente. Tanto el manejador de 401 del cliente HTTP como el guard de
// rutas observan esta misma fuente de verdad; las copias independientes del
// diseño original quedan eliminadas. Los suscriptores reciben cada transición.
type State struct {
	mu            sync.RWMutex
	authenticated bool
	role          string
	subs          []func(Snapshot)
}

// NewState construye el estado, inicialmente sin sesión.
func NewState() *State {
	return &State{}
}

// Current devuelve una instantánea del estado.
func (s *State) Current() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Authenticated: s.authenticated, Role: s.role}
}

// Login marca la sesión como iniciada con el rol dado. Se invoca solo después
// de que el login contra el API tuvo éxito y el token quedó persistido.
func (s *State) Login(role string) {
	s.transition(true, role)
}

// Logout destruye el estado en memoria (el token persistido lo limpia quien
// corresponda: el servicio de auth o el manejador de 401).
func (s *State) Logout() {
	s.transition(false, "")
}

// AuthLost implementa api.AuthLostListener: un 401 en cualquier petición
// deja el proceso entero en estado no autenticado.
func (s *State) AuthLost() {
	s.Logout()
}

// Subscribe registra un observador de transiciones. El callback se ejecuta
// fuera del lock, con la instantánea resultante de cada transición.
func (s *State) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *State) transition(authenticated bool, role string) {
	s.mu.Lock()
	s.authenticated = authenticated
	s.role = role
	snap := Snapshot{Authenticated: authenticated, Role: role}
	subs := make([]func(Snapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}
