package web

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/invorya/inventory-web/internal/application/dto"
	"github.com/invorya/inventory-web/internal/application/services"
	"github.com/invorya/inventory-web/internal/domain/entity"
)

// ProductHandler vista de productos: listado, alta, edición, borrado y
// movimientos de stock (entrada/salida). Tras toda mutación confirmada se
// vuelve a /products, lo que re-consulta la lista; en fallo el estado previo
// queda intacto y la única retroalimentación es el toast.
type ProductHandler struct {
	renderer *Renderer
	toasts   *Toasts
	products *services.ProductService
}

// NewProductHandler construye el handler.
func NewProductHandler(renderer *Renderer, toasts *Toasts, products *services.ProductService) *ProductHandler {
	return &ProductHandler{renderer: renderer, toasts: toasts, products: products}
}

type productsData struct {
	Products []entity.Product
}

// Show lista los productos en el orden en que el servidor los entrega.
// GET /products
func (h *ProductHandler) Show(c *fiber.Ctx) error {
	list, err := h.products.List(c.Context())
	if err != nil {
		h.toasts.Notify("Failed to fetch products")
		list = nil
	}
	return h.renderer.Render(c, "products", "Products", productsData{Products: list})
}

// Add crea un producto desde el formulario de alta.
// POST /products/add
func (h *ProductHandler) Add(c *fiber.Ctx) error {
	price, perr := decimal.NewFromString(c.FormValue("price"))
	qty, qerr := strconv.Atoi(c.FormValue("quantity"))
	if perr != nil || qerr != nil {
		h.toasts.Notify("Failed to add product")
		return c.Redirect("/products", fiber.StatusFound)
	}
	_, err := h.products.Create(c.Context(), dto.CreateProductRequest{
		Name:     c.FormValue("name"),
		Price:    price,
		Quantity: qty,
	})
	if err != nil {
		h.toasts.Notify("Failed to add product")
		return c.Redirect("/products", fiber.StatusFound)
	}
	h.toasts.Notify("Product added successfully")
	return c.Redirect("/products", fiber.StatusFound)
}

// Update edita nombre, precio y cantidad de un producto existente.
// POST /products/update
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id := c.FormValue("id")
	name := c.FormValue("name")
	price, perr := decimal.NewFromString(c.FormValue("price"))
	qty, qerr := strconv.Atoi(c.FormValue("quantity"))
	if id == "" || perr != nil || qerr != nil {
		h.toasts.Notify("Failed to update product")
		return c.Redirect("/products", fiber.StatusFound)
	}
	_, err := h.products.Update(c.Context(), id, dto.ProductPatch{
		Name:     &name,
		Price:    &price,
		Quantity: &qty,
	})
	if err != nil {
		h.toasts.Notify("Failed to update product")
		return c.Redirect("/products", fiber.StatusFound)
	}
	h.toasts.Notify("Product updated successfully")
	return c.Redirect("/products", fiber.StatusFound)
}

// Delete elimina un producto.
// POST /products/delete
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id := c.FormValue("id")
	if err := h.products.Delete(c.Context(), id); err != nil {
		h.toasts.Notify("Failed to delete product")
		return c.Redirect("/products", fiber.StatusFound)
	}
	h.toasts.Notify("Product deleted successfully")
	return c.Redirect("/products", fiber.StatusFound)
}

// Input registra una entrada de stock: suma la cantidad al disponible que
// traía la vista y envía el nuevo total.
// POST /products/input
func (h *ProductHandler) Input(c *fiber.Ctx) error {
	id, qty, available, ok := h.movementForm(c)
	if !ok {
		return c.Redirect("/products", fiber.StatusFound)
	}
	newQty := available + qty
	if _, err := h.products.Update(c.Context(), id, dto.ProductPatch{Quantity: &newQty}); err != nil {
		h.toasts.Notify("Failed to update product quantity")
		return c.Redirect("/products", fiber.StatusFound)
	}
	h.toasts.Notify("Product input successful")
	return c.Redirect("/products", fiber.StatusFound)
}

// Output registra una salida de stock. Si la cantidad excede el disponible se
// rechaza aquí mismo, sin emitir ninguna petición al API; una salida aceptada
// jamás produce cantidad negativa.
// POST /products/output
func (h *ProductHandler) Output(c *fiber.Ctx) error {
	id, qty, available, ok := h.movementForm(c)
	if !ok {
		return c.Redirect("/products", fiber.StatusFound)
	}
	newQty := available - qty
	if newQty < 0 {
		h.toasts.Notify("Cannot remove more than available quantity")
		return c.Redirect("/products", fiber.StatusFound)
	}
	if _, err := h.products.Update(c.Context(), id, dto.ProductPatch{Quantity: &newQty}); err != nil {
		h.toasts.Notify("Failed to update product quantity")
		return c.Redirect("/products", fiber.StatusFound)
	}
	h.toasts.Notify("Product output successful")
	return c.Redirect("/products", fiber.StatusFound)
}

// movementForm extrae id, cantidad y disponible de los formularios de
// entrada/salida. El disponible viaja oculto desde la última vista renderizada,
// igual que el estado en memoria del componente original.
func (h *ProductHandler) movementForm(c *fiber.Ctx) (id string, qty, available int, ok bool) {
	id = c.FormValue("id")
	qty, qerr := strconv.Atoi(c.FormValue("qty"))
	available, aerr := strconv.Atoi(c.FormValue("available"))
	if id == "" || qerr != nil || aerr != nil || qty <= 0 || available < 0 {
		h.toasts.Notify("Failed to update product quantity")
		return "", 0, 0, false
	}
	return id, qty, available, true
}
