package entity

// Role rol de un usuario. En la base de datos se persiste como role_id entero.
type Role int

// Roles válidos. Admin administra usuarios; Bodega y Tienda son roles operativos.
const (
	RoleAdmin  Role = 1
	RoleBodega Role = 2
	RoleTienda Role = 3
)

// Valid indica si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleBodega || r == RoleTienda
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleBodega:
		return "bodega"
	case RoleTienda:
		return "tienda"
	default:
		return "desconocido"
	}
}

// Usuario representa un usuario del sistema.
type Usuario struct {
	UID          int64
	Nombre       string
	Apellido     string
	Username     string // único, alfanumérico y guion bajo
	PasswordHash string // bcrypt, nunca en claro después de persistir
	RoleID       Role
}
