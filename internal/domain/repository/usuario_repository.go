package repository

import (
	"context"

	"github.com/zapateria/bodega-api/internal/domain/entity"
)

// UsuarioRepository puerto de persistencia de usuarios.
type UsuarioRepository interface {
	// Create persiste el usuario y asigna su UID.
	// Devuelve domain.ErrUsernameRegistrado si el username ya existe.
	Create(ctx context.Context, u *entity.Usuario) error

	// FindByUsername devuelve el usuario (con hash) o nil si no existe.
	FindByUsername(ctx context.Context, username string) (*entity.Usuario, error)

	// FindByUID devuelve el usuario o nil si no existe.
	FindByUID(ctx context.Context, uid int64) (*entity.Usuario, error)

	// List devuelve todos los usuarios sin el hash de contraseña.
	List(ctx context.Context) ([]*entity.Usuario, error)

	// AssignRole actualiza el rol y devuelve el usuario sin hash, o nil si el UID no existe.
	AssignRole(ctx context.Context, uid int64, role entity.Role) (*entity.Usuario, error)

	// Delete elimina por UID y devuelve el usuario eliminado, o nil si no existe.
	Delete(ctx context.Context, uid int64) (*entity.Usuario, error)
}
