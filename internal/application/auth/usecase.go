package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/zapateria/bodega-api/internal/application/dto"
	"github.com/zapateria/bodega-api/internal/domain"
	"github.com/zapateria/bodega-api/internal/domain/entity"
	"github.com/zapateria/bodega-api/internal/domain/repository"
	"github.com/zapateria/bodega-api/pkg/jwt"
	"github.com/zapateria/bodega-api/pkg/validate"
)

// Mensajes de validación de registro y login.
const (
	MsgNombreInvalido     = "Nombre y apellido deben contener solo letras y espacios, y tener entre 2 y 50 caracteres."
	MsgUsernameInvalido   = "El username solo puede contener letras, números y guiones bajos, sin espacios ni caracteres especiales."
	MsgPasswordDebil      = "La contraseña debe tener al menos 8 caracteres, incluir mayúsculas, minúsculas y números."
	MsgCamposObligatorios = "Username y password son obligatorios."
	MsgUsernameFormato    = "El username solo puede contener letras, números y guiones bajos."
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	repo   repository.UsuarioRepository
	va     *validate.Validator
	jwtCfg JWTConfig
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(repo repository.UsuarioRepository, va *validate.Validator, jwtCfg JWTConfig) *UseCase {
	return &UseCase{repo: repo, va: va, jwtCfg: jwtCfg}
}

// Register sanitiza y valida la entrada, verifica que el username esté libre,
// hashea la contraseña con bcrypt y crea el usuario con el rol por defecto
// (tienda, el menos privilegiado). Devuelve el token de sesión de 7 días.
func (uc *UseCase) Register(ctx context.Context, in dto.RegisterRequest) (string, error) {
	in.Nombre = validate.Sanitize(in.Nombre)
	in.Apellido = validate.Sanitize(in.Apellido)
	in.Username = validate.Sanitize(in.Username)

	if err := uc.va.Struct(in); err != nil {
		field, _ := validate.First(err)
		return "", domain.Validacion(mensajeRegistro(field))
	}

	existente, err := uc.repo.FindByUsername(ctx, in.Username)
	if err != nil {
		return "", err
	}
	if existente != nil {
		return "", domain.ErrUsernameRegistrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashear contraseña: %w", err)
	}

	u := &entity.Usuario{
		Nombre:       in.Nombre,
		Apellido:     in.Apellido,
		Username:     in.Username,
		PasswordHash: string(hash),
		RoleID:       entity.RoleTienda,
	}
	if err := uc.repo.Create(ctx, u); err != nil {
		return "", err
	}

	return jwt.Generate(uc.jwtCfg.Secret, u.UID, u.Username, int(u.RoleID), uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
}

// Login verifica credenciales y devuelve el token de sesión de 7 días.
// Usuario inexistente y contraseña errada devuelven errores distintos para el
// código HTTP, pero el handler responde el mismo mensaje genérico en ambos casos.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (string, error) {
	if in.Username == "" || in.Password == "" {
		return "", domain.Validacion(MsgCamposObligatorios)
	}
	username := strings.TrimSpace(in.Username)
	if !validate.UsernameValido(username) {
		return "", domain.Validacion(MsgUsernameFormato)
	}

	u, err := uc.repo.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", domain.ErrUsuarioNoEncontrado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)); err != nil {
		return "", domain.ErrCredenciales
	}

	return jwt.Generate(uc.jwtCfg.Secret, u.UID, u.Username, int(u.RoleID), uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
}

// mensajeRegistro asigna el mensaje de la primera violación según el campo.
func mensajeRegistro(field string) string {
	switch field {
	case "Nombre", "Apellido":
		return MsgNombreInvalido
	case "Username":
		return MsgUsernameInvalido
	case "Password":
		return MsgPasswordDebil
	default:
		return "Entrada inválida."
	}
}
