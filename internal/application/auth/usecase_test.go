package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gior-api/internal/application/auth"
	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/infrastructure/sqlite"
)

func newAuth(t *testing.T) *auth.AuthUseCase {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, sqlite.Migrate(ctx, db))

	uc := auth.NewAuthUseCase(sqlite.NewUserRepository(db), auth.JWTConfig{Secret: "test-secret", ExpMinutes: 5, Issuer: "gior-test"})
	_, err = uc.EnsureUser(ctx, "caja1", "caja-pass", entity.RoleEmployee)
	require.NoError(t, err)
	return uc
}

func TestLogin_UsuarioYClave(t *testing.T) {
	uc := newAuth(t)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: " caja1 ", Password: "caja-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "caja1", res.Usuario)
	assert.Equal(t, entity.RoleEmployee, res.Role)
}

func TestLogin_SinUsuarioBuscaPorClave(t *testing.T) {
	uc := newAuth(t)

	res, err := uc.Login(context.Background(), dto.LoginRequest{Password: "caja-pass"})
	require.NoError(t, err)
	assert.Equal(t, "caja1", res.Usuario)

	_, err = uc.Login(context.Background(), dto.LoginRequest{Password: "ninguna"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_NoRevelaSiElUsuarioExiste(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	_, wrongPass := uc.Login(ctx, dto.LoginRequest{Usuario: "caja1", Password: "otra"})
	_, unknown := uc.Login(ctx, dto.LoginRequest{Usuario: "fantasma", Password: "otra"})

	require.Error(t, unknown)
	assert.ErrorIs(t, unknown, domain.ErrUnauthorized)
	assert.Equal(t, wrongPass, unknown)
}

func TestLogin_ClaveVacia(t *testing.T) {
	uc := newAuth(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Usuario: "caja1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEnsureUser_Idempotente(t *testing.T) {
	uc := newAuth(t)
	ctx := context.Background()

	created, err := uc.EnsureUser(ctx, "caja1", "caja-pass", entity.RoleEmployee)
	require.NoError(t, err)
	assert.False(t, created)

	_, err = uc.EnsureUser(ctx, "corto", "1234", entity.RoleEmployee)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.EnsureUser(ctx, "otro", "larga-clave", "root")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
