package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/chinawok-ops/internal/application/dto"
	"github.com/tu-usuario/chinawok-ops/internal/application/usecase"
	"github.com/tu-usuario/chinawok-ops/internal/domain"
)

// UserHandler maneja las operaciones sobre cuentas gobernadas por RBAC.
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Me godoc
// @Summary      Información de una cuenta (propia o de un tercero permitido)
// @Tags         users
// @Produce      json
// @Param        correo  query  string  false  "correo del usuario consultado; vacío = el propio"
// @Success      200  {object}  dto.UserResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/me [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.Get(Actor(c), c.Query("correo"))
	if err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Usuario encontrado", "usuario": user})
}

// List godoc
// @Summary      Listar todos los usuarios (solo Admin)
// @Tags         users
// @Produce      json
// @Success      200  {object}  dto.UserListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List(Actor(c))
	if err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(dto.UserListResponse{
		Message:  "Usuarios obtenidos correctamente",
		Usuarios: users,
	})
}

// Delete godoc
// @Summary      Eliminar una cuenta por correo
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DeleteUserRequest  true  "correo"
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	var in dto.DeleteUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Delete(Actor(c), in.Correo); err != nil {
		return mapUserError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Usuario eliminado correctamente"})
}

// mapUserError traduce los errores de dominio del caso de uso a HTTP.
// El Reason de la política viaja en el mensaje; nunca detalle interno.
func mapUserError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Usuario no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
