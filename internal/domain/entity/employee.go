package entity

import "time"

// Employee pertenece a una Company. El proyecto que gestiona se deriva de
// projects.manager_id; TeamID vacío significa sin equipo.
type Employee struct {
	ID           string
	CompanyID    string
	Name         string
	Username     string
	CPF          string // 11 dígitos, sin máscara
	Email        string
	PasswordHash string // bcrypt
	Role         Role   // EMPLOYEE o MANAGER
	TeamID       string
	CreatedAt    time.Time
}

// PromoteToManager deja al empleado como MANAGER y fuera de cualquier equipo.
func (e *Employee) PromoteToManager() {
	e.Role = RoleManager
	e.TeamID = ""
}

// OnTeam informa si el empleado es miembro de algún equipo.
func (e *Employee) OnTeam() bool { return e.TeamID != "" }

func (e *Employee) IsManager() bool { return e.Role == RoleManager }
