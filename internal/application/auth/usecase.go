package auth

import (
	"context"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gior-api/internal/application/dto"
	"github.com/jhoicas/gior-api/internal/domain"
	"github.com/jhoicas/gior-api/internal/domain/entity"
	"github.com/jhoicas/gior-api/internal/domain/repository"
	"github.com/jhoicas/gior-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: login y alta de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica usuario/password y genera el JWT con el rol.
// Sin usuario se busca entre los usuarios activos el que tenga esa contraseña.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	user, err := uc.findUser(ctx, strings.TrimSpace(in.Usuario), in.Password)
	if err != nil {
		return nil, err
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, strconv.FormatInt(user.ID, 10), user.Username, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: user.Username, Role: user.Role}, nil
}

func (uc *AuthUseCase) findUser(ctx context.Context, username, password string) (*entity.User, error) {
	if username != "" {
		user, err := uc.userRepo.FindByUsername(ctx, username)
		if err != nil {
			return nil, domain.StorageFailure(err)
		}
		// Usuario inexistente y contraseña errada responden igual.
		if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrUnauthorized
		}
		return user, nil
	}

	users, err := uc.userRepo.ListActive(ctx)
	if err != nil {
		return nil, domain.StorageFailure(err)
	}
	for _, u := range users {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			return u, nil
		}
	}
	return nil, domain.ErrUnauthorized
}

// EnsureUser crea el usuario con la contraseña hasheada (bcrypt) si aún no existe.
// Devuelve true si lo creó.
func (uc *AuthUseCase) EnsureUser(ctx context.Context, username, password, role string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || len(password) < 8 {
		return false, domain.ErrInvalidInput
	}
	if role != entity.RoleAdmin && role != entity.RoleEmployee {
		return false, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return false, domain.StorageFailure(err)
	}
	if existing != nil {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return false, domain.StorageFailure(err)
	}
	return true, nil
}
