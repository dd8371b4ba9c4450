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

// CompanyUseCase registro y autogestión de la empresa (tenant).
type CompanyUseCase struct {
	tx  TxRunner
	now Clock
}

// NewCompanyUseCase construye el caso de uso con el runner transaccional.
func NewCompanyUseCase(tx TxRunner) *CompanyUseCase {
	return &CompanyUseCase{tx: tx, now: systemClock}
}

// Register crea la empresa y su dirección. Devuelve ErrNameAlreadyUsed si el
// nombre o el CNPJ ya existen.
func (uc *CompanyUseCase) Register(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	company := &entity.Company{
		ID:           uuid.New().String(),
		Name:         in.Name,
		CNPJ:         brdoc.Digits(in.CNPJ),
		PasswordHash: hash,
		CreatedAt:    uc.now(),
	}
	var address *entity.Address
	if in.Address != nil {
		address = &entity.Address{CompanyID: company.ID}
		applyAddress(address, *in.Address)
	}

	var out *dto.CompanyResponse
	err = uc.tx.Run(ctx, func(r repository.Set) error {
		if err := checkUnique(ctx, "name", r.Companies.IDsByName, company.Name, ""); err != nil {
			return err
		}
		if err := checkUnique(ctx, "cnpj", r.Companies.IDsByCNPJ, company.CNPJ, ""); err != nil {
			return err
		}
		if err := r.Companies.Create(ctx, company); err != nil {
			return err
		}
		if address != nil {
			if err := r.Addresses.Save(ctx, address); err != nil {
				return err
			}
		}
		var err error
		out, err = uc.profile(ctx, r, company)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get perfil de la empresa con dirección, empleados, proyectos y equipos.
func (uc *CompanyUseCase) Get(ctx context.Context, p entity.Principal) (*dto.CompanyResponse, error) {
	var out *dto.CompanyResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		company, err := access.ResolveCompany(ctx, r.Companies, p)
		if err != nil {
			return err
		}
		out, err = uc.profile(ctx, r, company)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update reemplaza nombre, CNPJ y contraseña; la unicidad excluye a la propia empresa.
func (uc *CompanyUseCase) Update(ctx context.Context, p entity.Principal, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	var out *dto.CompanyResponse
	err = uc.tx.Run(ctx, func(r repository.Set) error {
		company, err := access.ResolveCompany(ctx, r.Companies, p)
		if err != nil {
			return err
		}
		cnpj := brdoc.Digits(in.CNPJ)
		if err := checkUnique(ctx, "name", r.Companies.IDsByName, in.Name, company.ID); err != nil {
			return err
		}
		if err := checkUnique(ctx, "cnpj", r.Companies.IDsByCNPJ, cnpj, company.ID); err != nil {
			return err
		}
		company.Name = in.Name
		company.CNPJ = cnpj
		company.PasswordHash = hash
		if err := r.Companies.Update(ctx, company); err != nil {
			return err
		}
		out, err = uc.profile(ctx, r, company)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina la empresa y en cascada todo lo que le pertenece.
func (uc *CompanyUseCase) Delete(ctx context.Context, p entity.Principal) error {
	return uc.tx.Run(ctx, func(r repository.Set) error {
		company, err := access.ResolveCompany(ctx, r.Companies, p)
		if err != nil {
			return err
		}
		return r.Companies.Delete(ctx, company.ID)
	})
}

func (uc *CompanyUseCase) profile(ctx context.Context, r repository.Set, c *entity.Company) (*dto.CompanyResponse, error) {
	out := &dto.CompanyResponse{ID: c.ID, Name: c.Name, CNPJ: c.CNPJ}

	address, err := r.Addresses.GetByCompany(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	out.Address = entityToAddressResponse(address)

	employees, err := r.Employees.ListByCompany(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if out.Employees, err = employeeViews(ctx, r, employees); err != nil {
		return nil, err
	}
	projects, err := r.Projects.ListByCompany(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if out.Projects, err = projectViews(ctx, r, projects, uc.now()); err != nil {
		return nil, err
	}
	teams, err := r.Teams.ListByCompany(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if out.Teams, err = teamViews(ctx, r, teams); err != nil {
		return nil, err
	}
	return out, nil
}

func applyAddress(a *entity.Address, in dto.AddressRequest) {
	a.ZipCode = in.ZipCode
	a.Number = in.Number
	a.Street = in.Street
	a.Neighborhood = in.Neighborhood
	a.City = in.City
	a.State = in.State
}

// AddressUseCase lectura y actualización de la dirección de la empresa.
type AddressUseCase struct {
	tx TxRunner
}

// NewAddressUseCase construye el caso de uso de dirección.
func NewAddressUseCase(tx TxRunner) *AddressUseCase {
	return &AddressUseCase{tx: tx}
}

// Get devuelve la dirección de la empresa autenticada.
func (uc *AddressUseCase) Get(ctx context.Context, p entity.Principal) (*dto.AddressResponse, error) {
	var out *dto.AddressResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		company, err := access.ResolveCompany(ctx, r.Companies, p)
		if err != nil {
			return err
		}
		address, err := r.Addresses.GetByCompany(ctx, company.ID)
		if err != nil {
			return err
		}
		if address == nil {
			return domain.ErrAddressNotFound
		}
		out = entityToAddressResponse(address)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update reemplaza todos los campos de la dirección.
func (uc *AddressUseCase) Update(ctx context.Context, p entity.Principal, in dto.AddressRequest) (*dto.AddressResponse, error) {
	var out *dto.AddressResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		company, err := access.ResolveCompany(ctx, r.Companies, p)
		if err != nil {
			return err
		}
		address := &entity.Address{CompanyID: company.ID}
		applyAddress(address, in)
		if err := r.Addresses.Save(ctx, address); err != nil {
			return err
		}
		out = entityToAddressResponse(address)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
