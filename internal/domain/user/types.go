package user

import "errors"

var ErrInvalidRole = errors.New("invalid role")

// Role mirrors the tipo_usuario column values.
type Role string

const (
	RoleAdmin    Role = "administrador"
	RoleEmpleado Role = "empleado"
	RoleCliente  Role = "cliente"
)

func NewRole(value string) (Role, error) {
	role := Role(value)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleEmpleado, RoleCliente:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role may see other users' reservations.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleEmpleado
}
