package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/inventory-web/pkg/logger"
)

// Textos fijos de notificación al usuario, uno por rama de fallo.
const (
	msgSessionExpired = "Session expired. Please login again."
	msgForbidden      = "You do not have permission to perform this action."
	msgNotFound       = "Resource not found."
	msgServerError    = "Server error. Please try again later."
	msgGenericError   = "An error occurred. Please try again."
	msgNetworkError   = "Unable to connect to the server. Please check your internet connection."
	msgUnexpected     = "An unexpected error occurred."
)

// Límite de lectura del cuerpo de respuesta.
const maxResponseBytes = 1 << 20

// TokenStore vista del almacén de sesión que el cliente necesita: leer el
// token por petición saliente y destruirlo ante un 401.
type TokenStore interface {
	Token() (string, bool)
	Clear() error
}

// Notifier recibe los mensajes destinados al usuario (el análogo del toast).
type Notifier interface {
	Notify(message string)
}

// AuthLostListener se invoca una vez por cada respuesta 401, después de limpiar
// el token. Sustituye a la navegación forzada: quien mantiene el estado de
// sesión se suscribe y reacciona; el router observa ese estado de forma declarativa.
type AuthLostListener interface {
	AuthLost()
}

// Config parámetros de construcción del cliente.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	Tokens     TokenStore
	Notifier   Notifier
	OnAuthLost AuthLostListener // opcional
	Log        *logger.Logger   // opcional
}

// Client cliente HTTP compartido contra el API de inventario. Se configura una
// sola vez con el endpoint base y el content-type por defecto; adjunta el
// bearer token en cada salida y clasifica cada fallo en una notificación fija
// antes de propagarlo al caller.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	notifier   Notifier
	onAuthLost AuthLostListener
	log        *logger.Logger
}

// New construye el cliente. BaseURL sin slash final; timeout por defecto 25 s.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	log := cfg.Log
	if log == nil {
		log = logger.Nop()
	}
	notifier := cfg.Notifier
	if notifier == nil {
		notifier = nopNotifier{}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     cfg.Tokens,
		notifier:   notifier,
		onAuthLost: cfg.OnAuthLost,
		log:        log,
	}
}

// Get emite GET path y decodifica la respuesta en out (si out != nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post emite POST path con body JSON y decodifica la respuesta en out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put emite PUT path con body JSON y decodifica la respuesta en out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete emite DELETE path; no se espera cuerpo en la respuesta.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

// do ejecuta la petición completa: serializar, adjuntar cabeceras, enviar,
// clasificar el fallo (notificando una sola vez) o decodificar el éxito.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return c.fail(&Error{Kind: KindRequestSetup, Path: path, cause: err}, msgUnexpected)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return c.fail(&Error{Kind: KindRequestSetup, Path: path, cause: err}, msgUnexpected)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	// Token presente -> Authorization: Bearer <token>; ausente -> la petición
	// sale igual, solo que sin la cabecera.
	if c.tokens != nil {
		if token, ok := c.tokens.Token(); ok {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// La petición salió pero no hubo respuesta del servidor.
		return c.fail(&Error{Kind: KindNetwork, Path: path, cause: err}, msgNetworkError)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.fail(&Error{Kind: KindNetwork, Path: path, cause: err}, msgNetworkError)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil || len(bytes.TrimSpace(rawBody)) == 0 {
			return nil
		}
		if err := json.Unmarshal(rawBody, out); err != nil {
			return c.fail(&Error{Kind: KindRequestSetup, Path: path, cause: fmt.Errorf("decodificar respuesta: %w", err)}, msgUnexpected)
		}
		return nil
	}

	return c.classify(resp.StatusCode, path)
}

// classify despacha por código de estado a su notificación fija. Siempre
// devuelve el error al caller: la notificación es un efecto secundario, no un
// sustituto de la propagación.
func (c *Client) classify(status int, path string) error {
	apiErr := &Error{Status: status, Path: path}
	switch status {
	case http.StatusUnauthorized:
		apiErr.Kind = KindAuthExpired
		// Destruir la sesión persistida antes de avisar a nadie.
		if c.tokens != nil {
			if err := c.tokens.Clear(); err != nil {
				c.log.Error().Err(err).Msg("limpiar token tras 401")
			}
		}
		c.notifier.Notify(msgSessionExpired)
		if c.onAuthLost != nil {
			c.onAuthLost.AuthLost()
		}
		c.log.Warn().Str("path", path).Msg("sesión expirada (401)")
		return apiErr
	case http.StatusForbidden:
		apiErr.Kind = KindForbidden
		return c.fail(apiErr, msgForbidden)
	case http.StatusNotFound:
		apiErr.Kind = KindNotFound
		return c.fail(apiErr, msgNotFound)
	case http.StatusInternalServerError:
		apiErr.Kind = KindServer
		return c.fail(apiErr, msgServerError)
	default:
		apiErr.Kind = KindOtherStatus
		return c.fail(apiErr, msgGenericError)
	}
}

// fail notifica el mensaje y devuelve el error, dejando un registro en el log.
func (c *Client) fail(apiErr *Error, message string) error {
	c.notifier.Notify(message)
	c.log.Error().Str("path", apiErr.Path).Int("status", apiErr.Status).
		Str("kind", apiErr.Kind.String()).Msg("petición al API fallida")
	return apiErr
}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}
