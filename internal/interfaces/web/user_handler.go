package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/inventory-web/internal/application/dto"
	"github.com/invorya/inventory-web/internal/application/services"
	"github.com/invorya/inventory-web/internal/domain/entity"
)

// UserHandler vista de administración de usuarios (solo Administrator llega
// aquí, el guard lo garantiza). El password es de solo escritura: se acepta en
// el alta y nunca se muestra ni se edita.
type UserHandler struct {
	renderer *Renderer
	toasts   *Toasts
	users    *services.UserService
}

// NewUserHandler construye el handler.
func NewUserHandler(renderer *Renderer, toasts *Toasts, users *services.UserService) *UserHandler {
	return &UserHandler{renderer: renderer, toasts: toasts, users: users}
}

type usersData struct {
	Users []entity.User
}

// Show lista los usuarios.
// GET /users
func (h *UserHandler) Show(c *fiber.Ctx) error {
	list, err := h.users.List(c.Context())
	if err != nil {
		h.toasts.Notify("Failed to fetch users")
		list = nil
	}
	return h.renderer.Render(c, "users", "Users", usersData{Users: list})
}

// Add crea un usuario con email, password y rol.
// POST /users/add
func (h *UserHandler) Add(c *fiber.Ctx) error {
	_, err := h.users.Create(c.Context(), dto.CreateUserRequest{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
		Role:     c.FormValue("role"),
	})
	if err != nil {
		h.toasts.Notify("Failed to add user")
		return c.Redirect("/users", fiber.StatusFound)
	}
	h.toasts.Notify("User added successfully")
	return c.Redirect("/users", fiber.StatusFound)
}

// Update edita email y rol (nunca el password).
// POST /users/update
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.FormValue("id")
	email := c.FormValue("email")
	role := c.FormValue("role")
	if id == "" {
		h.toasts.Notify("Failed to update user")
		return c.Redirect("/users", fiber.StatusFound)
	}
	_, err := h.users.Update(c.Context(), id, dto.UserPatch{Email: &email, Role: &role})
	if err != nil {
		h.toasts.Notify("Failed to update user")
		return c.Redirect("/users", fiber.StatusFound)
	}
	h.toasts.Notify("User updated successfully")
	return c.Redirect("/users", fiber.StatusFound)
}

// Delete elimina un usuario.
// POST /users/delete
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.FormValue("id")
	if err := h.users.Delete(c.Context(), id); err != nil {
		h.toasts.Notify("Failed to delete user")
		return c.Redirect("/users", fiber.StatusFound)
	}
	h.toasts.Notify("User deleted successfully")
	return c.Redirect("/users", fiber.StatusFound)
}
