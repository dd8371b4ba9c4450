package entity

import "time"

// Company representa el tenant raíz. Borrarla elimina en cascada su dirección,
// empleados, proyectos y equipos.
type Company struct {
	ID           string
	Name         string
	CNPJ         string // 14 dígitos, sin máscara
	PasswordHash string // bcrypt
	CreatedAt    time.Time
}

// Address dirección 1:1 de la empresa; company_id es la clave primaria.
type Address struct {
	CompanyID    string
	ZipCode      string // 8 caracteres
	Number       string
	Street       string
	Neighborhood string
	City         string
	State        string
}
