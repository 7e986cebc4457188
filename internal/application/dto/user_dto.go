package dto

import "time"

// RegisterRequest entrada para registro (password en texto, se hashea en el use case).
type RegisterRequest struct {
	Correo   string `json:"correo" validate:"required,email"`
	Nombre   string `json:"nombre" validate:"required,min=1,max=200"`
	Password string `json:"contrasena" validate:"required,min=8"`
	Role     string `json:"role" validate:"omitempty,oneof=Admin Gerente Cliente"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Correo   string `json:"correo" validate:"required,email"`
	Password string `json:"contrasena" validate:"required"`
}

// UserResponse salida de un usuario. El hash de contraseña jamás se incluye.
type UserResponse struct {
	Correo    string    `json:"correo"`
	Nombre    string    `json:"nombre"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	Usuario UserResponse `json:"usuario"`
}

// UserListResponse listado completo de usuarios (solo Admin).
type UserListResponse struct {
	Message  string         `json:"message"`
	Usuarios []UserResponse `json:"usuarios"`
}

// DeleteUserRequest entrada para eliminar una cuenta por correo.
type DeleteUserRequest struct {
	Correo string `json:"correo" validate:"required,email"`
}
