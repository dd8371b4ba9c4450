package memory

import (
	"context"

	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

var (
	_ repository.CompanyRepository = (*CompanyRepo)(nil)
	_ repository.AddressRepository = (*AddressRepo)(nil)
)

// CompanyRepo empresas dentro de una transacción go-memdb.
type CompanyRepo struct{ tx *tx }

func (r *CompanyRepo) check(c *entity.Company) error {
	if err := unique(r.tx, tableCompanies, "name", c.Name, c.ID, companyKey); err != nil {
		return err
	}
	return unique(r.tx, tableCompanies, "cnpj", c.CNPJ, c.ID, companyKey)
}

func (r *CompanyRepo) Create(_ context.Context, c *entity.Company) error {
	if err := r.check(c); err != nil {
		return err
	}
	return put(r.tx, tableCompanies, c)
}

func (r *CompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	return first[entity.Company](r.tx, tableCompanies, "id", id)
}

func (r *CompanyRepo) GetByName(_ context.Context, name string) (*entity.Company, error) {
	return first[entity.Company](r.tx, tableCompanies, "name", name)
}

func (r *CompanyRepo) IDsByName(_ context.Context, name string) ([]string, error) {
	return ids(r.tx, tableCompanies, "name", name, companyKey)
}

func (r *CompanyRepo) IDsByCNPJ(_ context.Context, cnpj string) ([]string, error) {
	return ids(r.tx, tableCompanies, "cnpj", cnpj, companyKey)
}

func (r *CompanyRepo) Update(_ context.Context, c *entity.Company) error {
	ok, err := exists(r.tx, tableCompanies, c.ID)
	if err != nil || !ok {
		return err
	}
	if err := r.check(c); err != nil {
		return err
	}
	return put(r.tx, tableCompanies, c)
}

// Delete replica ON DELETE CASCADE de addresses, employees, projects y teams.
func (r *CompanyRepo) Delete(_ context.Context, id string) error {
	if err := remove(r.tx, tableAddresses, "id", id); err != nil {
		return err
	}
	projects, err := all[entity.Project](r.tx, tableProjects, "company_id", id)
	if err != nil {
		return err
	}
	for _, p := range projects {
		if err := r.tx.deleteProject(p.ID); err != nil {
			return err
		}
	}
	if err := remove(r.tx, tableTeams, "company_id", id); err != nil {
		return err
	}
	employees, err := all[entity.Employee](r.tx, tableEmployees, "company_id", id)
	if err != nil {
		return err
	}
	for _, e := range employees {
		if err := r.tx.deleteEmployee(e.ID); err != nil {
			return err
		}
	}
	return remove(r.tx, tableCompanies, "id", id)
}

// AddressRepo dirección 1:1 de la empresa.
type AddressRepo struct{ tx *tx }

func (r *AddressRepo) Save(_ context.Context, a *entity.Address) error {
	return put(r.tx, tableAddresses, a)
}

func (r *AddressRepo) GetByCompany(_ context.Context, companyID string) (*entity.Address, error) {
	return first[entity.Address](r.tx, tableAddresses, "id", companyID)
}
