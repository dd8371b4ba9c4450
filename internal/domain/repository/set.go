package repository

// Set agrupa los repositorios atados a una misma transacción (unidad de trabajo).
type Set struct {
	Companies CompanyRepository
	Addresses AddressRepository
	Employees EmployeeRepository
	Projects  ProjectRepository
	Teams     TeamRepository
	Tasks     TaskRepository
	Comments  CommentRepository
}
