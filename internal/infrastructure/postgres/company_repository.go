package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)
var _ repository.AddressRepository = (*AddressRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

const companyColumns = `id, name, cnpj, password_hash, created_at`

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, cnpj, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query,
		company.ID, company.Name, company.CNPJ, company.PasswordHash, company.CreatedAt,
	)
	return writeErr("insert company", err)
}

func (r *CompanyRepo) get(ctx context.Context, op, where string, arg any) (*entity.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies WHERE ` + where
	var c entity.Company
	err := r.q.QueryRow(ctx, query, arg).Scan(
		&c.ID, &c.Name, &c.CNPJ, &c.PasswordHash, &c.CreatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &c, nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return r.get(ctx, "get company", "id = $1", id)
}

// GetByName obtiene una empresa por nombre (login).
func (r *CompanyRepo) GetByName(ctx context.Context, name string) (*entity.Company, error) {
	return r.get(ctx, "get company by name", "name = $1", name)
}

func (r *CompanyRepo) IDsByName(ctx context.Context, name string) ([]string, error) {
	return collectIDs(ctx, r.q, "company ids by name", `SELECT id FROM companies WHERE name = $1`, name)
}

func (r *CompanyRepo) IDsByCNPJ(ctx context.Context, cnpj string) ([]string, error) {
	return collectIDs(ctx, r.q, "company ids by cnpj", `SELECT id FROM companies WHERE cnpj = $1`, cnpj)
}

// Update actualiza nombre, CNPJ y contraseña.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `UPDATE companies SET name = $2, cnpj = $3, password_hash = $4 WHERE id = $1`
	_, err := r.q.Exec(ctx, query, company.ID, company.Name, company.CNPJ, company.PasswordHash)
	return writeErr("update company", err)
}

// Delete borra la empresa; las FKs ON DELETE CASCADE arrastran el resto.
// Los proyectos se borran antes para liberar projects.manager_id.
func (r *CompanyRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM projects WHERE company_id = $1`, id); err != nil {
		return fmt.Errorf("delete company projects: %w", err)
	}
	if _, err := r.q.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}

// AddressRepo dirección 1:1 de la empresa.
type AddressRepo struct {
	q Querier
}

func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

// Save hace upsert sobre company_id.
func (r *AddressRepo) Save(ctx context.Context, a *entity.Address) error {
	query := `
		INSERT INTO addresses (company_id, zip_code, number, street, neighborhood, city, state)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (company_id) DO UPDATE SET
			zip_code = EXCLUDED.zip_code, number = EXCLUDED.number, street = EXCLUDED.street,
			neighborhood = EXCLUDED.neighborhood, city = EXCLUDED.city, state = EXCLUDED.state`
	_, err := r.q.Exec(ctx, query,
		a.CompanyID, a.ZipCode, a.Number, a.Street, a.Neighborhood, a.City, a.State,
	)
	return writeErr("save address", err)
}

func (r *AddressRepo) GetByCompany(ctx context.Context, companyID string) (*entity.Address, error) {
	query := `
		SELECT company_id, zip_code, number, street, neighborhood, city, state
		FROM addresses WHERE company_id = $1`
	var a entity.Address
	err := r.q.QueryRow(ctx, query, companyID).Scan(
		&a.CompanyID, &a.ZipCode, &a.Number, &a.Street, &a.Neighborhood, &a.City, &a.State,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get address: %w", err)
	}
	return &a, nil
}
