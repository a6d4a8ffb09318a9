package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmon    = "Admon"    // acceso total, incluye usuarios y cifras financieras
	RoleEmpleado = "Empleado" // operación sin cifras financieras ni administración de usuarios
	RoleLector   = "Lector"   // solo lectura
)

// User representa un usuario del sistema.
type User struct {
	ID        string
	Name      string
	Email     string
	Password  string // hash bcrypt; texto plano solo en modo de compatibilidad
	Role      string // Admon, Empleado, Lector
	CreatedAt time.Time
}

// ValidRole indica si role es uno de los roles del sistema.
func ValidRole(role string) bool {
	return role == RoleAdmon || role == RoleEmpleado || role == RoleLector
}

// UserPatch es una actualización parcial de usuario. Password solo cambia cuando viene informado.
type UserPatch struct {
	Name     *string
	Email    *string
	Role     *string
	Password *string
}
