package repository

import (
	"context"

	"github.com/jhoicas/office-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure. Los Get devuelven (nil, nil) si no existe.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	GetByName(ctx context.Context, name string) (*entity.Company, error)
	// IDsByName e IDsByCNPJ devuelven los ids que ya usan el valor (pre-validación de unicidad).
	IDsByName(ctx context.Context, name string) ([]string, error)
	IDsByCNPJ(ctx context.Context, cnpj string) ([]string, error)
	Update(ctx context.Context, company *entity.Company) error
	// Delete elimina en cascada dirección, empleados, proyectos y equipos.
	Delete(ctx context.Context, id string) error
}

// AddressRepository puerto para la dirección 1:1 de la empresa.
type AddressRepository interface {
	// Save inserta o reemplaza la dirección de la empresa.
	Save(ctx context.Context, address *entity.Address) error
	GetByCompany(ctx context.Context, companyID string) (*entity.Address, error)
}
