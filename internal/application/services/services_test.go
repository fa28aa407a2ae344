package services_test

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/inventory-web/internal/application/dto"
	"github.com/invorya/inventory-web/internal/application/services"
	"github.com/invorya/inventory-web/internal/domain"
	"github.com/invorya/inventory-web/internal/domain/entity"
	"github.com/invorya/inventory-web/internal/infrastructure/api"
	"github.com/invorya/inventory-web/internal/infrastructure/session"
	"github.com/invorya/inventory-web/internal/testsupport/fakeapi"
)

// fixture levanta el backend falso y un cliente con almacén de sesión real.
func fixture(t *testing.T) (*fakeapi.Server, *session.Store, *api.Client) {
	t.Helper()
	fake := fakeapi.New()
	t.Cleanup(fake.Close)

	store, err := session.NewStore(filepath.Join(t.TempDir(), "session"))
	require.NoError(t, err)

	client := api.New(api.Config{BaseURL: fake.URL(), Tokens: store})
	return fake, store, client
}

// loginAdmin deja la sesión de administrador persistida en el almacén.
func loginAdmin(t *testing.T, fake *fakeapi.Server, store *session.Store) {
	t.Helper()
	require.NoError(t, store.Save(fake.Token("admin@invorya.test")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthService_LoginPersisteElToken(t *testing.T) {
	_, store, client := fixture(t)
	auth := services.NewAuthService(client, store)

	out, err := auth.Login(context.Background(), "admin@invorya.test", "admin-password")
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "admin@invorya.test", out.User.Email)
	assert.Equal(t, entity.RoleAdministrator, out.User.Role)

	token, ok := store.Token()
	assert.True(t, ok, "el token queda persistido antes de retornar")
	assert.Equal(t, out.Token, token)

	// Con el token persistido las llamadas autenticadas funcionan.
	me, err := auth.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdministrator, me.Role)
}

func TestAuthService_CredencialesInvalidas(t *testing.T) {
	_, store, client := fixture(t)
	auth := services.NewAuthService(client, store)

	_, err := auth.Login(context.Background(), "admin@invorya.test", "password-equivocado")

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	_, ok := store.Token()
	assert.False(t, ok, "un login fallido no deja token")
}

func TestAuthService_LogoutDestruyeLaSesionLocal(t *testing.T) {
	fake, store, client := fixture(t)
	loginAdmin(t, fake, store)
	auth := services.NewAuthService(client, store)

	requestsBefore := fake.RequestCount("POST") + fake.RequestCount("GET") +
		fake.RequestCount("PUT") + fake.RequestCount("DELETE")
	require.NoError(t, auth.Logout())

	_, ok := store.Token()
	assert.False(t, ok)
	requestsAfter := fake.RequestCount("POST") + fake.RequestCount("GET") +
		fake.RequestCount("PUT") + fake.RequestCount("DELETE")
	assert.Equal(t, requestsBefore, requestsAfter, "el logout es puramente local, sin tráfico")
}

// ──────────────────────────────────────────────────────────────────────────────
// Products
// ──────────────────────────────────────────────────────────────────────────────

func TestProductService_CRUD(t *testing.T) {
	fake, store, client := fixture(t)
	loginAdmin(t, fake, store)
	products := services.NewProductService(client)
	ctx := context.Background()

	created, err := products.Create(ctx, dto.CreateProductRequest{
		Name:     "Teclado",
		Price:    decimal.RequireFromString("9.99"),
		Quantity: 10,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "el id lo asigna el servidor")

	list, err := products.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Teclado", list[0].Name)
	assert.True(t, list[0].Price.Equal(decimal.RequireFromString("9.99")))

	name := "Teclado mecánico"
	price := decimal.RequireFromString("12.50")
	updated, err := products.Update(ctx, created.ID, dto.ProductPatch{Name: &name, Price: &price})
	require.NoError(t, err)
	assert.Equal(t, "Teclado mecánico", updated.Name)
	assert.True(t, updated.Price.Equal(price))
	assert.Equal(t, 10, updated.Quantity, "los campos ausentes del patch no se tocan")

	require.NoError(t, products.Delete(ctx, created.ID))
	list, err = products.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProductService_UpdateEsIdempotente(t *testing.T) {
	fake, store, client := fixture(t)
	loginAdmin(t, fake, store)
	products := services.NewProductService(client)
	ctx := context.Background()

	seeded := fake.SeedProduct("Mouse", decimal.RequireFromString("25.00"), 4)
	qty := 7
	patch := dto.ProductPatch{Quantity: &qty}

	first, err := products.Update(ctx, seeded.ID, patch)
	require.NoError(t, err)
	second, err := products.Update(ctx, seeded.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, first.Quantity, second.Quantity, "repetir el mismo patch no cambia nada")
	assert.Equal(t, 7, second.Quantity)
}

func TestProductService_ValidacionCortaAntesDeLaRed(t *testing.T) {
	fake, store, client := fixture(t)
	loginAdmin(t, fake, store)
	products := services.NewProductService(client)
	ctx := context.Background()

	postsBefore := fake.RequestCount("POST")
	_, err := products.Create(ctx, dto.CreateProductRequest{
		Name:  "Monitor",
		Price: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, domain.ErrNegativePrice)
	assert.Equal(t, postsBefore, fake.RequestCount("POST"), "entrada inválida no genera tráfico")

	putsBefore := fake.RequestCount("PUT")
	_, err = products.Update(ctx, "cualquier-id", dto.ProductPatch{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un patch vacío se rechaza localmente")
	neg := -3
	_, err = products.Update(ctx, "cualquier-id", dto.ProductPatch{Quantity: &neg})
	assert.ErrorIs(t, err, domain.ErrNegativeQuantity)
	assert.Equal(t, putsBefore, fake.RequestCount("PUT"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Users
// ──────────────────────────────────────────────────────────────────────────────

func TestUserService_CRUD(t *testing.T) {
	fake, store, client := fixture(t)
	loginAdmin(t, fake, store)
	users := services.NewUserService(client)
	ctx := context.Background()

	created, err := users.Create(ctx, dto.CreateUserRequest{
		Email:    "nuevo@invorya.test",
		Password: "clave-segura",
		Role:     entity.RoleNormalUser,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.RoleNormalUser, created.Role)

	list, err := users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3, "los dos sembrados más el recién creado")

	email := "renombrado@invorya.test"
	role := entity.RoleAdministrator
	updated, err := users.Update(ctx, created.ID, dto.UserPatch{Email: &email, Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "renombrado@invorya.test", updated.Email)
	assert.Equal(t, entity.RoleAdministrator, updated.Role)

	require.NoError(t, users.Delete(ctx, created.ID))
	list, err = users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestUserService_ValidacionDeEmailYRol(t *testing.T) {
	fake, store, client := fixture(t)
	loginAdmin(t, fake, store)
	users := services.NewUserService(client)
	ctx := context.Background()

	postsBefore := fake.RequestCount("POST")
	_, err := users.Create(ctx, dto.CreateUserRequest{Email: "no-es-email", Password: "x", Role: entity.RoleNormalUser})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = users.Create(ctx, dto.CreateUserRequest{Email: "ok@invorya.test", Password: "x", Role: "SuperUser"})
	assert.ErrorIs(t, err, domain.ErrInvalidRole, "el rol debe pertenecer al enum")
	assert.Equal(t, postsBefore, fake.RequestCount("POST"))

	_, err = users.Update(ctx, "cualquier-id", dto.UserPatch{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reports
// ──────────────────────────────────────────────────────────────────────────────

func TestReportService_Inventario(t *testing.T) {
	fake, store, client := fixture(t)
	loginAdmin(t, fake, store)
	reports := services.NewReportService(client)

	fake.SeedProduct("Teclado", decimal.RequireFromString("9.99"), 10)
	fake.SeedProduct("Mouse", decimal.RequireFromString("25.00"), 2)

	out, err := reports.Inventory(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Report, 2)
	assert.True(t, out.Report[0].Value.Equal(decimal.RequireFromString("99.90")),
		"el valor por fila es precio por cantidad, calculado en el servidor")
	assert.True(t, out.TotalValue.Equal(decimal.RequireFromString("149.90")))
}

func TestReportService_VentasFiltraPorRango(t *testing.T) {
	fake, store, client := fixture(t)
	loginAdmin(t, fake, store)
	reports := services.NewReportService(client)

	fake.SeedSale("Teclado", 2, decimal.RequireFromString("19.98"), time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	fake.SeedSale("Mouse", 1, decimal.RequireFromString("25.00"), time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))

	out, err := reports.Sales(context.Background(), "2026-03-01", "2026-03-31")
	require.NoError(t, err)
	require.Len(t, out.Report, 1, "solo las ventas dentro del rango")
	assert.Equal(t, "Teclado", out.Report[0].Name)
	assert.True(t, out.TotalSales.Equal(decimal.RequireFromString("19.98")))
}

func TestReportService_VentasSinFechasNoEmitePeticion(t *testing.T) {
	fake, store, client := fixture(t)
	loginAdmin(t, fake, store)
	reports := services.NewReportService(client)

	getsBefore := fake.RequestCount("GET")
	_, err := reports.Sales(context.Background(), "", "2026-03-31")
	assert.ErrorIs(t, err, domain.ErrMissingDates)
	_, err = reports.Sales(context.Background(), "2026-03-01", "")
	assert.ErrorIs(t, err, domain.ErrMissingDates)
	assert.Equal(t, getsBefore, fake.RequestCount("GET"), "faltando una fecha no hay tráfico")
}
