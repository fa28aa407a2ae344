// Package fakeapi implementa en memoria el contrato del backend de inventario
// (auth, products, users, reports) para que los tests del front-end ejerciten
// el mismo protocolo que el API real: login con bcrypt que emite JWT HS256,
// middleware de bearer token, ids asignados por el servidor y agregaciones de
// reportes calculadas del lado del servidor.
package fakeapi

import (
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/inventory-web/internal/domain/entity"
	pkgjwt "github.com/invorya/inventory-web/pkg/jwt"
)

const (
	jwtSecret  = "fakeapi-secret"
	jwtIssuer  = "fakeapi"
	jwtExpMins = 60
)

type account struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
}

type sale struct {
	ProductName string
	Quantity    int
	Total       decimal.Decimal
	Date        time.Time
}

// Server API de inventario en memoria. Expone contadores de peticiones por
// método para que los tests afirmen ausencia de tráfico (p.ej. una salida de
// stock rechazada localmente no debe generar ningún PUT).
type Server struct {
	mu       sync.Mutex
	app      *fiber.App
	http     *httptest.Server
	accounts map[string]*account // por email
	products []*entity.Product
	sales    []sale

	// Contadores por método HTTP observado en rutas /api/.
	Requests map[string]int

	// ForcedStatus, si es distinto de cero, hace que toda ruta /api/ responda
	// ese código sin tocar el estado. Para tests de clasificación de errores.
	ForcedStatus int
}

// New construye y arranca el servidor con un usuario administrador y otro
// normal sembrados. Cerrar con Close.
func New() *Server {
	s := &Server{
		accounts: map[string]*account{},
		Requests: map[string]int{},
	}
	s.seedAccount("admin@invorya.test", "admin-password", entity.RoleAdministrator)
	s.seedAccount("user@invorya.test", "user-password", entity.RoleNormalUser)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	api := app.Group("/api", s.observe)

	api.Post("/auth/login", s.login)
	api.Get("/auth/me", s.requireAuth, s.me)

	api.Get("/products", s.requireAuth, s.listProducts)
	api.Post("/products", s.requireAuth, s.createProduct)
	api.Put("/products/:id", s.requireAuth, s.updateProduct)
	api.Delete("/products/:id", s.requireAuth, s.deleteProduct)

	api.Get("/users", s.requireAuth, s.listUsers)
	api.Post("/users", s.requireAuth, s.createUser)
	api.Put("/users/:id", s.requireAuth, s.updateUser)
	api.Delete("/users/:id", s.requireAuth, s.deleteUser)

	api.Get("/reports/inventory", s.requireAuth, s.inventoryReport)
	api.Get("/reports/sales", s.requireAuth, s.salesReport)

	s.app = app
	s.http = httptest.NewServer(adaptor.FiberApp(app))
	return s
}

// URL origen base del servidor.
func (s *Server) URL() string { return s.http.URL }

// Close apaga el servidor.
func (s *Server) Close() { s.http.Close() }

// SeedProduct agrega un producto con id asignado y lo devuelve.
func (s *Server) SeedProduct(name string, price decimal.Decimal, quantity int) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &entity.Product{ID: uuid.NewString(), Name: name, Price: price, Quantity: quantity}
	s.products = append(s.products, p)
	return p
}

// SeedSale agrega una venta al libro para el reporte de ventas.
func (s *Server) SeedSale(productName string, quantity int, total decimal.Decimal, date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = append(s.sales, sale{ProductName: productName, Quantity: quantity, Total: total, Date: date})
}

// Product devuelve una copia del producto por id, si existe.
func (s *Server) Product(id string) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return *p, true
		}
	}
	return entity.Product{}, false
}

// RequestCount total de peticiones del método dado (GET, PUT, ...).
func (s *Server) RequestCount(method string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Requests[method]
}

// Token emite un token válido para el email sembrado; para armar fixtures sin
// pasar por el login.
func (s *Server) Token(email string) string {
	s.mu.Lock()
	acc := s.accounts[email]
	s.mu.Unlock()
	if acc == nil {
		return ""
	}
	tok, _ := pkgjwt.Generate(jwtSecret, acc.ID, acc.Email, acc.Role, jwtIssuer, jwtExpMins)
	return tok
}

func (s *Server) seedAccount(email, password, role string) {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	s.accounts[email] = &account{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
}

// ── Middlewares ───────────────────────────────────────────────────────────────

func (s *Server) observe(c *fiber.Ctx) error {
	s.mu.Lock()
	s.Requests[c.Method()]++
	forced := s.ForcedStatus
	s.mu.Unlock()
	if forced != 0 {
		return c.SendStatus(forced)
	}
	return c.Next()
}

func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "token requerido"})
	}
	claims, err := pkgjwt.Parse(jwtSecret, strings.TrimSpace(parts[1]))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "token inválido"})
	}
	c.Locals("claims", claims)
	return c.Next()
}

// ── Auth ─────────────────────────────────────────────────────────────────────

func (s *Server) login(c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	s.mu.Lock()
	acc := s.accounts[in.Email]
	s.mu.Unlock()
	if acc == nil || bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "credenciales inválidas"})
	}
	token, err := pkgjwt.Generate(jwtSecret, acc.ID, acc.Email, acc.Role, jwtIssuer, jwtExpMins)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{
		"token": token,
		"user":  fiber.Map{"id": acc.ID, "email": acc.Email, "role": acc.Role},
	})
}

func (s *Server) me(c *fiber.Ctx) error {
	claims := c.Locals("claims").(*pkgjwt.Claims)
	return c.JSON(fiber.Map{"id": claims.UserID, "email": claims.Email, "role": claims.Role})
}

// ── Products ─────────────────────────────────────────────────────────────────

func (s *Server) listProducts(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return c.JSON(out)
}

func (s *Server) createProduct(c *fiber.Ctx) error {
	var in struct {
		Name     string          `json:"name"`
		Price    decimal.Decimal `json:"price"`
		Quantity int             `json:"quantity"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p := &entity.Product{ID: uuid.NewString(), Name: in.Name, Price: in.Price, Quantity: in.Quantity}
	s.products = append(s.products, p)
	return c.Status(fiber.StatusCreated).JSON(p)
}

func (s *Server) updateProduct(c *fiber.Ctx) error {
	var in struct {
		Name     *string          `json:"name"`
		Price    *decimal.Decimal `json:"price"`
		Quantity *int             `json:"quantity"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == c.Params("id") {
			if in.Name != nil {
				p.Name = *in.Name
			}
			if in.Price != nil {
				p.Price = *in.Price
			}
			if in.Quantity != nil {
				p.Quantity = *in.Quantity
			}
			return c.JSON(p)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "producto no encontrado"})
}

func (s *Server) deleteProduct(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.products {
		if p.ID == c.Params("id") {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "producto no encontrado"})
}

// ── Users ────────────────────────────────────────────────────────────────────

func (s *Server) listUsers(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.User, 0, len(s.accounts))
	for _, acc := range s.accounts {
		out = append(out, entity.User{ID: acc.ID, Email: acc.Email, Role: acc.Role})
	}
	return c.JSON(out)
}

func (s *Server) createUser(c *fiber.Ctx) error {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.accounts[in.Email]; exists {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "email ya registrado"})
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.MinCost)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	acc := &account{ID: uuid.NewString(), Email: in.Email, PasswordHash: string(hash), Role: in.Role}
	s.accounts[in.Email] = acc
	return c.Status(fiber.StatusCreated).JSON(entity.User{ID: acc.ID, Email: acc.Email, Role: acc.Role})
}

func (s *Server) updateUser(c *fiber.Ctx) error {
	var in struct {
		Email *string `json:"email"`
		Role  *string `json:"role"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, acc := range s.accounts {
		if acc.ID == c.Params("id") {
			if in.Email != nil && *in.Email != email {
				delete(s.accounts, email)
				acc.Email = *in.Email
				s.accounts[acc.Email] = acc
			}
			if in.Role != nil {
				acc.Role = *in.Role
			}
			return c.JSON(entity.User{ID: acc.ID, Email: acc.Email, Role: acc.Role})
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "usuario no encontrado"})
}

func (s *Server) deleteUser(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for email, acc := range s.accounts {
		if acc.ID == c.Params("id") {
			delete(s.accounts, email)
			return c.SendStatus(fiber.StatusNoContent)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "usuario no encontrado"})
}

// ── Reports ──────────────────────────────────────────────────────────────────

func (s *Server) inventoryReport(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := make([]entity.InventoryRow, 0, len(s.products))
	total := decimal.Zero
	for _, p := range s.products {
		value := p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
		rows = append(rows, entity.InventoryRow{Name: p.Name, Quantity: p.Quantity, Value: value})
		total = total.Add(value)
	}
	return c.JSON(fiber.Map{"report": rows, "totalValue": total})
}

func (s *Server) salesReport(c *fiber.Ctx) error {
	start, err1 := time.Parse("2006-01-02", c.Query("startDate"))
	end, err2 := time.Parse("2006-01-02", c.Query("endDate"))
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "fechas inválidas"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rows := []entity.SalesRow{}
	total := decimal.Zero
	for _, sl := range s.sales {
		if sl.Date.Before(start) || sl.Date.After(end.Add(24*time.Hour)) {
			continue
		}
		rows = append(rows, entity.SalesRow{Name: sl.ProductName, Quantity: sl.Quantity, Total: sl.Total})
		total = total.Add(sl.Total)
	}
	return c.JSON(fiber.Map{"report": rows, "totalSales": total})
}
