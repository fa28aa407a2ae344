package web_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invorya/inventory-web/internal/domain/entity"
)

func TestUsers_ListadoMuestraLosSembrados(t *testing.T) {
	ta := adminApp(t)

	html := body(t, get(t, ta.app, "/users"))
	assert.Contains(t, html, "admin@invorya.test")
	assert.Contains(t, html, "user@invorya.test")
	assert.NotContains(t, html, "admin-password", "el password jamás se muestra en el listado")
}

func TestUsers_AltaEdicionYBorrado(t *testing.T) {
	ta := adminApp(t)

	resp := postForm(t, ta.app, "/users/add", url.Values{
		"email":    {"nuevo@invorya.test"},
		"password": {"clave-segura"},
		"role":     {entity.RoleNormalUser},
	})
	assertRedirect(t, resp, "/users")
	assert.Contains(t, ta.toasts.Drain(), "User added successfully")

	html := body(t, get(t, ta.app, "/users"))
	assert.Contains(t, html, "nuevo@invorya.test")
	assert.Contains(t, html, entity.RoleNormalUser)
}

func TestUsers_AltaConEmailInvalido(t *testing.T) {
	ta := adminApp(t)

	postsBefore := ta.fake.RequestCount("POST")
	resp := postForm(t, ta.app, "/users/add", url.Values{
		"email":    {"no-es-email"},
		"password": {"x"},
		"role":     {entity.RoleNormalUser},
	})
	assertRedirect(t, resp, "/users")

	assert.Equal(t, postsBefore, ta.fake.RequestCount("POST"),
		"la validación local corta antes de la red")
	assert.Contains(t, ta.toasts.Drain(), "Failed to add user")
}

func TestUsers_AltaConRolFueraDelEnum(t *testing.T) {
	ta := adminApp(t)

	resp := postForm(t, ta.app, "/users/add", url.Values{
		"email":    {"ok@invorya.test"},
		"password": {"x"},
		"role":     {"SuperUser"},
	})
	assertRedirect(t, resp, "/users")
	assert.Contains(t, ta.toasts.Drain(), "Failed to add user")
}
