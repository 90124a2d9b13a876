// migrate aplica el esquema de la base configurada (DB_DRIVER) y crea los usuarios iniciales
// a partir de SEED_ADMIN_* y SEED_EMPLOYEE_*.
//
// Uso: go run ./cmd/migrate
package main

import (
	"context"
	"time"

	"github.com/jhoicas/gior-api/internal/application/auth"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/infrastructure/store"
	"github.com/jhoicas/gior-api/pkg/config"
	"github.com/jhoicas/gior-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db, err := store.Open(ctx, cfg.DB, true)
	if err != nil {
		log.Fatal().Err(err).Msg("migración")
	}
	defer db.Close()
	log.Info().Str("db_driver", db.Driver).Msg("esquema aplicado")

	authUC := auth.NewAuthUseCase(db.Repos.Users, auth.JWTConfig{Secret: cfg.JWT.Secret, Issuer: cfg.JWT.Issuer})
	seeds := []struct {
		user, password, role string
	}{
		{cfg.Seed.AdminUser, cfg.Seed.AdminPassword, entity.RoleAdmin},
		{cfg.Seed.EmployeeUser, cfg.Seed.EmployeePassword, entity.RoleEmployee},
	}
	for _, s := range seeds {
		if s.password == "" {
			log.Warn().Str("user", s.user).Msg("sin contraseña configurada, usuario omitido")
			continue
		}
		created, err := authUC.EnsureUser(ctx, s.user, s.password, s.role)
		if err != nil {
			log.Fatal().Err(err).Str("user", s.user).Msg("crear usuario")
		}
		log.Info().Str("user", s.user).Str("role", s.role).Bool("created", created).Msg("usuario inicial")
	}
}
