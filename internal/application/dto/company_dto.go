package dto

// AddressRequest dirección de la empresa (registro y actualización).
type AddressRequest struct {
	ZipCode      string `json:"zip_code" validate:"notblank,len=8"`
	Number       string `json:"number" validate:"notblank"`
	Street       string `json:"street" validate:"notblank"`
	Neighborhood string `json:"neighborhood" validate:"notblank"`
	City         string `json:"city" validate:"notblank"`
	State        string `json:"state" validate:"notblank"`
}

// CreateCompanyRequest registro público de una empresa. La dirección es
// opcional; si llega se validan todos sus campos.
type CreateCompanyRequest struct {
	Name     string          `json:"name" validate:"notblank,max=200"`
	CNPJ     string          `json:"cnpj" validate:"cnpj"`
	Password string          `json:"password" validate:"notblank"`
	Address  *AddressRequest `json:"address" validate:"omitempty"`
}

// UpdateCompanyRequest reemplaza nombre, cnpj y contraseña.
type UpdateCompanyRequest struct {
	Name     string `json:"name" validate:"notblank,max=200"`
	CNPJ     string `json:"cnpj" validate:"cnpj"`
	Password string `json:"password" validate:"notblank"`
}

// CompanyLoginRequest login por nombre de empresa.
type CompanyLoginRequest struct {
	Name     string `json:"name" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// AddressResponse salida de la dirección.
type AddressResponse struct {
	ZipCode      string `json:"zip_code"`
	Number       string `json:"number"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// CompanyResponse perfil de la empresa (sin datos sensibles).
type CompanyResponse struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	CNPJ      string             `json:"cnpj"`
	Address   *AddressResponse   `json:"address,omitempty"`
	Employees []EmployeeResponse `json:"employees"`
	Projects  []ProjectResponse  `json:"projects"`
	Teams     []TeamResponse     `json:"teams"`
}
