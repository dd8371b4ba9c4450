package entity

import "time"

// Project de una empresa, con un único manager. Deadline es una fecha (00:00 UTC).
type Project struct {
	ID          string
	CompanyID   string
	ManagerID   string
	Name        string
	Description string
	Deadline    time.Time
	CreatedAt   time.Time
}

// Team agrupa empleados; ProjectID vacío significa equipo sin proyecto.
type Team struct {
	ID        string
	CompanyID string
	ProjectID string
	Name      string
	CreatedAt time.Time
}

// Task unidad de trabajo de un proyecto. Deadline con fecha y hora (UTC).
type Task struct {
	ID          string
	ProjectID   string
	Title       string
	Description string
	Deadline    time.Time
	CreatedAt   time.Time
}

// Comment de un empleado sobre una tarea. PostedAt no cambia al editar.
type Comment struct {
	ID       string
	TaskID   string
	OwnerID  string
	Content  string
	PostedAt time.Time
}
