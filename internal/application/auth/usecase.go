package auth

import (
	"context"
	"crypto/rsa"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/application/usecase"
	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/repository"
	"github.com/jhoicas/office-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	PrivateKey *rsa.PrivateKey
	Issuer     string
	TTL        time.Duration
}

// AuthUseCase login de empresas y empleados.
type AuthUseCase struct {
	tx     usecase.TxRunner
	jwtCfg JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(tx usecase.TxRunner, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{tx: tx, jwtCfg: jwtCfg}
}

// LoginCompany verifica nombre/password de la empresa y emite un token con scope COMPANY.
func (uc *AuthUseCase) LoginCompany(ctx context.Context, in dto.CompanyLoginRequest) (*dto.LoginResponse, error) {
	var company *entity.Company
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		var err error
		company, err = r.Companies.GetByName(ctx, in.Name)
		return err
	})
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrLoginCompanyNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrPasswordMismatch
	}
	return uc.issue(company.ID, entity.RoleCompany)
}

// LoginEmployee verifica username/password; el scope es el rol actual del empleado.
func (uc *AuthUseCase) LoginEmployee(ctx context.Context, in dto.EmployeeLoginRequest) (*dto.LoginResponse, error) {
	var employee *entity.Employee
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		var err error
		employee, err = r.Employees.GetByUsername(ctx, in.Username)
		return err
	})
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.ErrLoginEmployeeNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrPasswordMismatch
	}
	return uc.issue(employee.ID, employee.Role)
}

func (uc *AuthUseCase) issue(subject string, role entity.Role) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.PrivateKey, subject, role.String(), uc.jwtCfg.Issuer, uc.jwtCfg.TTL)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(uc.jwtCfg.TTL / time.Second),
	}, nil
}
