package dto

// RegisterRequest entrada para registro. Los campos de texto se sanitizan
// antes de evaluar las reglas declaradas.
type RegisterRequest struct {
	Nombre   string `json:"nombre" validate:"required,nombre_valido"`
	Apellido string `json:"apellido" validate:"required,nombre_valido"`
	Username string `json:"username" validate:"required,username_valido"`
	Password string `json:"password" validate:"required,password_fuerte"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UsuarioResponse salida de un usuario (nunca incluye el hash de contraseña).
type UsuarioResponse struct {
	UID      int64  `json:"uid"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	Username string `json:"username"`
	RoleID   int    `json:"role_id"`
}

// AssignRoleRequest entrada para asignar rol (solo admin).
type AssignRoleRequest struct {
	RoleID int   `json:"role_id"`
	UID    int64 `json:"uid"`
}

// DeleteUserRequest entrada para eliminar usuario (solo admin).
type DeleteUserRequest struct {
	UID int64 `json:"uid"`
}

// TokenResponse respuesta de registro: el token viaja en msg.
type TokenResponse struct {
	OK  bool   `json:"ok"`
	Msg string `json:"msg"`
}

// LoginResponse respuesta de login.
type LoginResponse struct {
	OK    bool   `json:"ok"`
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// UsersResponse listado de usuarios.
type UsersResponse struct {
	OK    bool              `json:"ok"`
	Users []UsuarioResponse `json:"users"`
}

// UserActionResponse resultado de asignar rol o eliminar usuario.
type UserActionResponse struct {
	OK   bool            `json:"ok"`
	Msg  string          `json:"msg"`
	User UsuarioResponse `json:"user"`
}
