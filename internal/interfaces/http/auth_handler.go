package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gior-api/internal/application/auth"
	"github.com/jhoicas/gior-api/internal/application/dto"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Description  El usuario es opcional: sin él se busca el usuario activo cuya contraseña coincida.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "usuario, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password es requerido"})
	}
	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		status, code := errorStatus(err)
		if status == fiber.StatusUnauthorized {
			return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: "credenciales inválidas"})
		}
		if status == fiber.StatusForbidden {
			return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: "cuenta inactiva"})
		}
		return writeError(c, err)
	}
	return c.JSON(out)
}
