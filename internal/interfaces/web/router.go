package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/inventory-web/internal/application/services"
	appsession "github.com/invorya/inventory-web/internal/application/session"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Renderer *Renderer
	Toasts   *Toasts
	State    *appsession.State
	Auth     *services.AuthService
	Products *services.ProductService
	Users    *services.UserService
	Reports  *services.ReportService
}

// Router registra las rutas del front-end con su política de acceso:
//   - /            -> redirige a /login incondicionalmente
//   - /login       -> solo sin sesión; con sesión va a /dashboard
//   - /dashboard   -> requiere sesión
//   - /products    -> requiere sesión
//   - /users       -> requiere sesión y rol Administrator
//   - /reports     -> requiere sesión y rol Administrator
func Router(app *fiber.App, deps RouterDeps) {
	guest := RequireGuest(deps.State)
	authed := RequireAuth(deps.State)
	admin := RequireAdmin(deps.State)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect("/login", fiber.StatusFound)
	})

	loginHandler := NewLoginHandler(deps.Renderer, deps.Auth, deps.State)
	app.Get("/login", guest, loginHandler.Show)
	app.Post("/login", guest, loginHandler.Submit)
	app.Post("/logout", authed, loginHandler.Logout)

	dashboardHandler := NewDashboardHandler(deps.Renderer, deps.State)
	app.Get("/dashboard", authed, dashboardHandler.Show)

	productHandler := NewProductHandler(deps.Renderer, deps.Toasts, deps.Products)
	products := app.Group("/products", authed)
	products.Get("/", productHandler.Show)
	products.Post("/add", productHandler.Add)
	products.Post("/update", productHandler.Update)
	products.Post("/delete", productHandler.Delete)
	products.Post("/input", productHandler.Input)
	products.Post("/output", productHandler.Output)

	userHandler := NewUserHandler(deps.Renderer, deps.Toasts, deps.Users)
	users := app.Group("/users", admin)
	users.Get("/", userHandler.Show)
	users.Post("/add", userHandler.Add)
	users.Post("/update", userHandler.Update)
	users.Post("/delete", userHandler.Delete)

	reportHandler := NewReportHandler(deps.Renderer, deps.Toasts, deps.Reports)
	reports := app.Group("/reports", admin)
	reports.Get("/", reportHandler.Show)
	reports.Post("/inventory", reportHandler.Inventory)
	reports.Post("/sales", reportHandler.Sales)
}
