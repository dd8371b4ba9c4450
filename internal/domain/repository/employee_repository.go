package repository

import (
	"context"

	"github.com/jhoicas/office-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByUsername(ctx context.Context, username string) (*entity.Employee, error)
	IDsByUsername(ctx context.Context, username string) ([]string, error)
	IDsByCPF(ctx context.Context, cpf string) ([]string, error)
	IDsByEmail(ctx context.Context, email string) ([]string, error)
	// Update persiste todos los campos, incluidos rol y equipo.
	Update(ctx context.Context, employee *entity.Employee) error
	// Delete elimina también sus comentarios.
	Delete(ctx context.Context, id string) error
	ListByCompany(ctx context.Context, companyID string) ([]*entity.Employee, error)
	ListByTeam(ctx context.Context, teamID string) ([]*entity.Employee, error)
	// ClearTeam deja sin equipo a todos los miembros de teamID.
	ClearTeam(ctx context.Context, teamID string) error
}
