package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/zapateria/bodega-api/internal/application/auth"
	"github.com/zapateria/bodega-api/internal/application/dto"
	"github.com/zapateria/bodega-api/internal/application/usuarios"
	"github.com/zapateria/bodega-api/internal/domain"
	"github.com/zapateria/bodega-api/pkg/logger"
)

// UsuarioHandler maneja registro, login y administración de usuarios.
type UsuarioHandler struct {
	authUC  *auth.UseCase
	adminUC *usuarios.UseCase
	log     *logger.Logger
}

// NewUsuarioHandler construye el handler de usuarios.
func NewUsuarioHandler(authUC *auth.UseCase, adminUC *usuarios.UseCase, log *logger.Logger) *UsuarioHandler {
	return &UsuarioHandler{authUC: authUC, adminUC: adminUC, log: log}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "nombre, apellido, username, password"
// @Success      201   {object}  dto.TokenResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/register [post]
func (h *UsuarioHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Entrada inválida."))
	}
	token, err := h.authUC.Register(c.Context(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.TokenResponse{OK: true, Msg: token})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/login [post]
func (h *UsuarioHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Entrada inválida."))
	}
	token, err := h.authUC.Login(c.Context(), in)
	if err != nil {
		// Usuario inexistente y contraseña errada comparten el mismo mensaje
		// genérico para no revelar qué usernames existen.
		if errors.Is(err, domain.ErrUsuarioNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Usuario o contraseña incorrectos."))
		}
		if errors.Is(err, domain.ErrCredenciales) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("Usuario o contraseña incorrectos."))
		}
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.LoginResponse{OK: true, Msg: "Inicio de sesión exitoso.", Token: token})
}

// AllUsers godoc
// @Summary      Listar usuarios
// @Tags         usuarios
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.UsersResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/all-users [get]
func (h *UsuarioHandler) AllUsers(c *fiber.Ctx) error {
	users, err := h.adminUC.ListAll(c.Context())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.UsersResponse{OK: true, Users: users})
}

// AssignRole godoc
// @Summary      Asignar rol a un usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.AssignRoleRequest  true  "role_id, uid"
// @Success      200   {object}  dto.UserActionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/assign-role [post]
func (h *UsuarioHandler) AssignRole(c *fiber.Ctx) error {
	var in dto.AssignRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Entrada inválida."))
	}
	user, err := h.adminUC.AssignRole(c.Context(), in.RoleID, in.UID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.UserActionResponse{OK: true, Msg: "Rol asignado correctamente.", User: *user})
}

// DeleteUser godoc
// @Summary      Eliminar usuario
// @Tags         usuarios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.DeleteUserRequest  true  "uid"
// @Success      200   {object}  dto.UserActionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/v1/usuarios/delete-user [post]
func (h *UsuarioHandler) DeleteUser(c *fiber.Ctx) error {
	var in dto.DeleteUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Entrada inválida."))
	}
	user, err := h.adminUC.Delete(c.Context(), in.UID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.UserActionResponse{
		OK:   true,
		Msg:  fmt.Sprintf("Usuario con UID %d eliminado correctamente.", user.UID),
		User: *user,
	})
}
