package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/jhoicas/office-api/internal/application/access"
	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
	"github.com/jhoicas/office-api/pkg/brdoc"
)

// EmployeeUseCase alta y gestión de empleados.
type EmployeeUseCase struct {
	tx  TxRunner
	now Clock
}

// NewEmployeeUseCase construye el caso de uso de empleados.
func NewEmployeeUseCase(tx TxRunner) *EmployeeUseCase {
	return &EmployeeUseCase{tx: tx, now: systemClock}
}

// Create da de alta un empleado (rol EMPLOYEE, sin equipo) en la empresa autenticada.
func (uc *EmployeeUseCase) Create(ctx context.Context, p entity.Principal, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	var out *dto.EmployeeResponse
	err = uc.tx.Run(ctx, func(r repository.Set) error {
		company, err := access.ResolveCompany(ctx, r.Companies, p)
		if err != nil {
			return err
		}
		e := &entity.Employee{
			ID:           uuid.New().String(),
			CompanyID:    company.ID,
			Name:         in.Name,
			Username:     in.Username,
			CPF:          brdoc.Digits(in.CPF),
			Email:        in.Email,
			PasswordHash: hash,
			Role:         entity.RoleEmployee,
			CreatedAt:    uc.now(),
		}
		if err := uc.checkUnique(ctx, r, e, true); err != nil {
			return err
		}
		if err := r.Employees.Create(ctx, e); err != nil {
			return err
		}
		out, err = employeeView(ctx, r, e)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update el propio empleado cambia nombre, username, email y contraseña.
func (uc *EmployeeUseCase) Update(ctx context.Context, p entity.Principal, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	var out *dto.EmployeeResponse
	err = uc.tx.Run(ctx, func(r repository.Set) error {
		e, err := access.ResolveEmployee(ctx, r.Employees, p)
		if err != nil {
			return err
		}
		e.Name = in.Name
		e.Username = in.Username
		e.Email = in.Email
		e.PasswordHash = hash
		if err := uc.checkUnique(ctx, r, e, false); err != nil {
			return err
		}
		if err := r.Employees.Update(ctx, e); err != nil {
			return err
		}
		out, err = employeeView(ctx, r, e)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete la empresa elimina a uno de sus empleados por username.
func (uc *EmployeeUseCase) Delete(ctx context.Context, p entity.Principal, username string) error {
	return uc.tx.Run(ctx, func(r repository.Set) error {
		company, err := access.ResolveCompany(ctx, r.Companies, p)
		if err != nil {
			return err
		}
		e, err := findCompanyEmployee(ctx, r, company.ID, username)
		if err != nil {
			return err
		}
		return deleteEmployee(ctx, r, e)
	})
}

// DeleteSelf el empleado autenticado se da de baja.
func (uc *EmployeeUseCase) DeleteSelf(ctx context.Context, p entity.Principal) error {
	return uc.tx.Run(ctx, func(r repository.Set) error {
		e, err := access.ResolveEmployee(ctx, r.Employees, p)
		if err != nil {
			return err
		}
		return deleteEmployee(ctx, r, e)
	})
}

// List empleados de la empresa autenticada.
func (uc *EmployeeUseCase) List(ctx context.Context, p entity.Principal) ([]dto.EmployeeResponse, error) {
	var out []dto.EmployeeResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		company, err := access.ResolveCompany(ctx, r.Companies, p)
		if err != nil {
			return err
		}
		list, err := r.Employees.ListByCompany(ctx, company.ID)
		if err != nil {
			return err
		}
		out, err = employeeViews(ctx, r, list)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get empleado de la empresa autenticada por username.
func (uc *EmployeeUseCase) Get(ctx context.Context, p entity.Principal, username string) (*dto.EmployeeResponse, error) {
	var out *dto.EmployeeResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		company, err := access.ResolveCompany(ctx, r.Companies, p)
		if err != nil {
			return err
		}
		e, err := findCompanyEmployee(ctx, r, company.ID, username)
		if err != nil {
			return err
		}
		out, err = employeeView(ctx, r, e)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Me datos del empleado autenticado.
func (uc *EmployeeUseCase) Me(ctx context.Context, p entity.Principal) (*dto.EmployeeResponse, error) {
	var out *dto.EmployeeResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		e, err := access.ResolveEmployee(ctx, r.Employees, p)
		if err != nil {
			return err
		}
		out, err = employeeView(ctx, r, e)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// checkUnique valida username, email y (sólo en alta) CPF; en edición se excluye al propio empleado.
func (uc *EmployeeUseCase) checkUnique(ctx context.Context, r repository.Set, e *entity.Employee, creating bool) error {
	excluding := e.ID
	if creating {
		excluding = ""
	}
	if err := checkUnique(ctx, "username", r.Employees.IDsByUsername, e.Username, excluding); err != nil {
		return err
	}
	if creating {
		if err := checkUnique(ctx, "cpf", r.Employees.IDsByCPF, e.CPF, ""); err != nil {
			return err
		}
	}
	return checkUnique(ctx, "email", r.Employees.IDsByEmail, e.Email, excluding)
}

// findCompanyEmployee busca por username dentro del tenant; fuera de él es "no encontrado".
func findCompanyEmployee(ctx context.Context, r repository.Set, companyID, username string) (*entity.Employee, error) {
	e, err := r.Employees.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrEmployeeNotFound
	}
	if err := access.AssertOwnership(companyID, e.CompanyID, domain.ErrEmployeeNotFound); err != nil {
		return nil, err
	}
	return e, nil
}

// deleteEmployee rechaza la baja de quien gestiona un proyecto; sus comentarios caen en cascada.
func deleteEmployee(ctx context.Context, r repository.Set, e *entity.Employee) error {
	managed, err := r.Projects.GetByManager(ctx, e.ID)
	if err != nil {
		return err
	}
	if managed != nil {
		return domain.ErrEmployeeManagesProject
	}
	return r.Employees.Delete(ctx, e.ID)
}
