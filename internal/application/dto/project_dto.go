package dto

// ProjectRequest alta y actualización de proyecto; deadline en dd/MM/yyyy.
type ProjectRequest struct {
	Name            string `json:"name" validate:"notblank,max=200"`
	Description     string `json:"description" validate:"notblank"`
	ManagerUsername string `json:"manager_username" validate:"notblank"`
	Deadline        string `json:"deadline" validate:"notblank"`
}

// ProjectResponse salida de un proyecto. Expired se calcula con la fecha actual.
type ProjectResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	ManagerUsername string   `json:"manager_username"`
	Deadline        string   `json:"deadline"`
	Expired         bool     `json:"expired"`
	Teams           []string `json:"teams,omitempty"`
}

// CreateTeamRequest el manager crea un equipo con miembros iniciales.
type CreateTeamRequest struct {
	Name      string   `json:"name" validate:"notblank,max=200"`
	Usernames []string `json:"usernames" validate:"required,min=1,dive,notblank"`
}

// UpdateTeamRequest renombra y ajusta miembros.
type UpdateTeamRequest struct {
	Name     string   `json:"name" validate:"notblank,max=200"`
	ToAdd    []string `json:"to_add" validate:"omitempty,dive,notblank"`
	ToRemove []string `json:"to_remove" validate:"omitempty,dive,notblank"`
}

// TeamResponse salida de un equipo con los usernames de sus miembros.
type TeamResponse struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Project string   `json:"project,omitempty"`
	Members []string `json:"members"`
}
