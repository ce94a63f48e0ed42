package usuarios

import (
	"context"

	"github.com/zapateria/bodega-api/internal/application/dto"
	"github.com/zapateria/bodega-api/internal/domain"
	"github.com/zapateria/bodega-api/internal/domain/entity"
	"github.com/zapateria/bodega-api/internal/domain/repository"
)

// UseCase administración de usuarios: listado, asignación de rol y eliminación.
// La restricción a administradores la impone el middleware de roles, no este componente.
type UseCase struct {
	repo repository.UsuarioRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.UsuarioRepository) *UseCase {
	return &UseCase{repo: repo}
}

// ListAll devuelve todos los usuarios sin el hash de contraseña.
func (uc *UseCase) ListAll(ctx context.Context) ([]dto.UsuarioResponse, error) {
	usuarios, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, toResponse(u))
	}
	return out, nil
}

// AssignRole asigna un rol a un usuario y devuelve el registro actualizado.
func (uc *UseCase) AssignRole(ctx context.Context, roleID int, uid int64) (*dto.UsuarioResponse, error) {
	if roleID == 0 || uid == 0 {
		return nil, domain.Validacion("role_id y uid son obligatorios.")
	}
	role := entity.Role(roleID)
	if !role.Valid() {
		return nil, domain.Validacion("role_id inválido.")
	}

	u, err := uc.repo.FindByUID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}

	actualizado, err := uc.repo.AssignRole(ctx, uid, role)
	if err != nil {
		return nil, err
	}
	if actualizado == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	resp := toResponse(actualizado)
	return &resp, nil
}

// Delete elimina un usuario por UID y devuelve el registro eliminado.
func (uc *UseCase) Delete(ctx context.Context, uid int64) (*dto.UsuarioResponse, error) {
	if uid == 0 {
		return nil, domain.Validacion("El uid es obligatorio.")
	}
	eliminado, err := uc.repo.Delete(ctx, uid)
	if err != nil {
		return nil, err
	}
	if eliminado == nil {
		return nil, domain.ErrUsuarioNoEncontrado
	}
	resp := toResponse(eliminado)
	return &resp, nil
}

func toResponse(u *entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		UID:      u.UID,
		Nombre:   u.Nombre,
		Apellido: u.Apellido,
		Username: u.Username,
		RoleID:   int(u.RoleID),
	}
}
