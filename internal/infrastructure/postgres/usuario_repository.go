package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zapateria/bodega-api/internal/domain"
	"github.com/zapateria/bodega-api/internal/domain/entity"
	"github.com/zapateria/bodega-api/internal/domain/repository"
)

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementación del puerto UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	pool *pgxpool.Pool
}

// NewUsuarioRepository construye el adaptador de persistencia de usuarios.
func NewUsuarioRepository(pool *pgxpool.Pool) *UsuarioRepo {
	return &UsuarioRepo{pool: pool}
}

// Create persiste un nuevo usuario y asigna el UID devuelto por la base.
func (r *UsuarioRepo) Create(ctx context.Context, u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nombre, apellido, username, password, role_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING uid`
	err := r.pool.QueryRow(ctx, query,
		u.Nombre, u.Apellido, u.Username, u.PasswordHash, int(u.RoleID),
	).Scan(&u.UID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameRegistrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// FindByUsername devuelve el usuario con su hash, o nil si no existe.
func (r *UsuarioRepo) FindByUsername(ctx context.Context, username string) (*entity.Usuario, error) {
	query := `
		SELECT uid, nombre, apellido, username, password, role_id
		FROM usuarios WHERE username = $1`
	var u entity.Usuario
	var roleID int
	err := r.pool.QueryRow(ctx, query, username).Scan(
		&u.UID, &u.Nombre, &u.Apellido, &u.Username, &u.PasswordHash, &roleID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar por username: %w", err)
	}
	u.RoleID = entity.Role(roleID)
	return &u, nil
}

// FindByUID devuelve el usuario o nil si no existe.
func (r *UsuarioRepo) FindByUID(ctx context.Context, uid int64) (*entity.Usuario, error) {
	query := `
		SELECT uid, nombre, apellido, username, password, role_id
		FROM usuarios WHERE uid = $1`
	var u entity.Usuario
	var roleID int
	err := r.pool.QueryRow(ctx, query, uid).Scan(
		&u.UID, &u.Nombre, &u.Apellido, &u.Username, &u.PasswordHash, &roleID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("buscar por uid: %w", err)
	}
	u.RoleID = entity.Role(roleID)
	return &u, nil
}

// List devuelve todos los usuarios sin el hash de contraseña.
func (r *UsuarioRepo) List(ctx context.Context) ([]*entity.Usuario, error) {
	query := `SELECT uid, nombre, apellido, username, role_id FROM usuarios ORDER BY uid`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	defer rows.Close()

	var usuarios []*entity.Usuario
	for rows.Next() {
		var u entity.Usuario
		var roleID int
		if err := rows.Scan(&u.UID, &u.Nombre, &u.Apellido, &u.Username, &roleID); err != nil {
			return nil, fmt.Errorf("scan usuario: %w", err)
		}
		u.RoleID = entity.Role(roleID)
		usuarios = append(usuarios, &u)
	}
	return usuarios, rows.Err()
}

// AssignRole actualiza el rol y devuelve el registro sin hash, o nil si el UID no existe.
func (r *UsuarioRepo) AssignRole(ctx context.Context, uid int64, role entity.Role) (*entity.Usuario, error) {
	query := `
		UPDATE usuarios SET role_id = $1
		WHERE uid = $2
		RETURNING uid, nombre, apellido, username, role_id`
	var u entity.Usuario
	var roleID int
	err := r.pool.QueryRow(ctx, query, int(role), uid).Scan(
		&u.UID, &u.Nombre, &u.Apellido, &u.Username, &roleID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("asignar rol: %w", err)
	}
	u.RoleID = entity.Role(roleID)
	return &u, nil
}

// Delete elimina por UID y devuelve el registro eliminado, o nil si no existe.
func (r *UsuarioRepo) Delete(ctx context.Context, uid int64) (*entity.Usuario, error) {
	query := `
		DELETE FROM usuarios WHERE uid = $1
		RETURNING uid, nombre, apellido, username, role_id`
	var u entity.Usuario
	var roleID int
	err := r.pool.QueryRow(ctx, query, uid).Scan(
		&u.UID, &u.Nombre, &u.Apellido, &u.Username, &roleID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("eliminar usuario: %w", err)
	}
	u.RoleID = entity.Role(roleID)
	return &u, nil
}
