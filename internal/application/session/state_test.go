package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/inventory-web/internal/application/dto"
	"github.com/invorya/inventory-web/internal/application/session"
	"github.com/invorya/inventory-web/internal/domain/entity"
)

func TestState_ArrancaSinSesion(t *testing.T) {
	state := session.NewState()
	snap := state.Current()
	assert.False(t, snap.Authenticated)
	assert.Empty(t, snap.Role)
}

func TestState_LoginYLogout(t *testing.T) {
	state := session.NewState()

	state.Login(entity.RoleAdministrator)
	snap := state.Current()
	assert.True(t, snap.Authenticated)
	assert.Equal(t, entity.RoleAdministrator, snap.Role)

	state.Logout()
	snap = state.Current()
	assert.False(t, snap.Authenticated)
	assert.Empty(t, snap.Role, "el logout borra también el rol")
}

func TestState_SuscriptoresRecibenCadaTransicion(t *testing.T) {
	state := session.NewState()
	var seen []session.Snapshot
	state.Subscribe(func(s session.Snapshot) { seen = append(seen, s) })

	state.Login(entity.RoleNormalUser)
	state.Logout()

	require.Len(t, seen, 2)
	assert.True(t, seen[0].Authenticated)
	assert.Equal(t, entity.RoleNormalUser, seen[0].Role)
	assert.False(t, seen[1].Authenticated)
}

func TestState_AuthLostEquivaleALogout(t *testing.T) {
	state := session.NewState()
	state.Login(entity.RoleAdministrator)

	// Un 401 en cualquier petición deja el proceso sin sesión.
	state.AuthLost()

	snap := state.Current()
	assert.False(t, snap.Authenticated)
	assert.Empty(t, snap.Role)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rehidratación al arranque
// ──────────────────────────────────────────────────────────────────────────────

func TestRehydrate_DeshabilitadoExigeLoginDeNuevo(t *testing.T) {
	state := session.NewState()
	called := false
	profile := func(ctx context.Context) (*dto.UserInfo, error) {
		called = true
		return &dto.UserInfo{Role: entity.RoleAdministrator}, nil
	}

	ok := session.Rehydrate(context.Background(), false, true, profile, state)

	assert.False(t, ok)
	assert.False(t, called, "deshabilitado no debe tocar el API aunque haya token")
	assert.False(t, state.Current().Authenticated)
}

func TestRehydrate_SinTokenNoHayNadaQueRecuperar(t *testing.T) {
	state := session.NewState()
	profile := func(ctx context.Context) (*dto.UserInfo, error) {
		t.Error("sin token no debe consultarse el perfil")
		return nil, nil
	}

	ok := session.Rehydrate(context.Background(), true, false, profile, state)

	assert.False(t, ok)
	assert.False(t, state.Current().Authenticated)
}

func TestRehydrate_TokenValidoRecuperaLaSesion(t *testing.T) {
	state := session.NewState()
	profile := func(ctx context.Context) (*dto.UserInfo, error) {
		return &dto.UserInfo{ID: "u1", Email: "admin@invorya.test", Role: entity.RoleAdministrator}, nil
	}

	ok := session.Rehydrate(context.Background(), true, true, profile, state)

	assert.True(t, ok)
	snap := state.Current()
	assert.True(t, snap.Authenticated)
	assert.Equal(t, entity.RoleAdministrator, snap.Role)
}

func TestRehydrate_TokenRechazadoDejaElEstadoLimpio(t *testing.T) {
	state := session.NewState()
	profile := func(ctx context.Context) (*dto.UserInfo, error) {
		return nil, errors.New("HTTP 401")
	}

	ok := session.Rehydrate(context.Background(), true, true, profile, state)

	assert.False(t, ok)
	assert.False(t, state.Current().Authenticated)
}
