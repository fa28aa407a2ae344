package web

import "sync"

// Toasts cola de mensajes transitorios para el usuario, análoga al contenedor
// de toasts del navegador. Es global al proceso (igual que la sesión: un solo
// usuario por instancia del front-end). Implementa api.Notifier, así que el
// cliente HTTP deposita aquí sus notificaciones de fallo; los handlers añaden
// las suyas de éxito o rechazo local. Cada render drena la cola completa.
type Toasts struct {
	mu       sync.Mutex
	messages []string
}

// NewToasts construye la cola vacía.
func NewToasts() *Toasts {
	return &Toasts{}
}

// Notify encola un mensaje. Implementa api.Notifier.
func (t *Toasts) Notify(message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = append(t.messages, message)
}

// Drain devuelve los mensajes pendientes y vacía la cola.
func (t *Toasts) Drain() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.messages
	t.messages = nil
	return out
}
