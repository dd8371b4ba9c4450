package dto

// CreateEmployeeRequest alta de empleado por la empresa.
type CreateEmployeeRequest struct {
	Name     string `json:"name" validate:"notblank,max=200"`
	Username string `json:"username" validate:"notblank,max=100,ne_ignore_case=me"`
	CPF      string `json:"cpf" validate:"cpf"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"notblank"`
}

// UpdateEmployeeRequest el propio empleado actualiza sus datos.
type UpdateEmployeeRequest struct {
	Name     string `json:"name" validate:"notblank,max=200"`
	Username string `json:"username" validate:"notblank,max=100,ne_ignore_case=me"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"notblank"`
}

// EmployeeLoginRequest login por username.
type EmployeeLoginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// EmployeeResponse salida de un empleado (sin password).
type EmployeeResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Team     string `json:"team,omitempty"`
	Project  string `json:"project,omitempty"`
}
