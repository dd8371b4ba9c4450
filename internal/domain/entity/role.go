package entity

// Role es el scope del token y define qué rutas puede usar el principal.
type Role string

const (
	RoleCompany  Role = "COMPANY"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// Valid rechaza cualquier valor fuera de COMPANY, MANAGER o EMPLOYEE.
func (r Role) Valid() bool {
	switch r {
	case RoleCompany, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// CanBecome indica si la transición de rol es legal.
// Sólo EMPLOYEE -> MANAGER (y la identidad); un MANAGER nunca vuelve a EMPLOYEE.
func (r Role) CanBecome(target Role) bool {
	if !r.Valid() || !target.Valid() {
		return false
	}
	if r == target {
		return true
	}
	return r == RoleEmployee && target == RoleManager
}

func (r Role) String() string { return string(r) }
