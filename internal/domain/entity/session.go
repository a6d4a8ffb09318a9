package entity

import "time"

// Principal es el usuario autenticado tal como lo ven los componentes que autorizan.
type Principal struct {
	UserID string
	Name   string
	Email  string
	Role   string
}

// CanWrite permite registrar movimientos y mantener el catálogo.
func (p Principal) CanWrite() bool {
	return p.Role == RoleAdmon || p.Role == RoleEmpleado
}

// CanViewFinancials permite ver costos y valor del inventario.
func (p Principal) CanViewFinancials() bool {
	return p.Role == RoleAdmon
}

// CanManageUsers permite administrar usuarios.
func (p Principal) CanManageUsers() bool {
	return p.Role == RoleAdmon
}

// Session es la sesión explícita de un principal: se crea al iniciar sesión y se elimina al cerrarla.
type Session struct {
	ID        string
	Principal Principal
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión venció en el instante now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
