package entity

// Principal es el llamador ya autenticado: sujeto del token (UUID) y scope.
// Lo construye el middleware HTTP y se pasa explícito a cada caso de uso.
type Principal struct {
	ID   string
	Role Role
}

func (p Principal) IsCompany() bool  { return p.Role == RoleCompany }
func (p Principal) IsManager() bool  { return p.Role == RoleManager }
func (p Principal) IsEmployee() bool { return p.Role == RoleEmployee }
