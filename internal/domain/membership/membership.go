// Package membership concentra las reglas de consistencia entre empleados,
// equipos y proyectos. Son funciones puras: los casos de uso las encadenan
// dentro de una misma transacción y luego persisten las entidades mutadas.
package membership

import (
	"strings"
	"time"

	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
)

// Formatos de fecha límite aceptados en la API.
const (
	ProjectDeadlineLayout = "02/01/2006"
	TaskDeadlineLayout    = "02/01/2006 15:04"
)

// AssignManager asigna candidate como manager de project. managing es el
// proyecto que el candidato ya gestiona (nil si ninguno). Mantener al mismo
// manager en su propio proyecto es válido; un rol que no puede pasar a
// MANAGER se rechaza.
func AssignManager(project *entity.Project, candidate *entity.Employee, managing *entity.Project) error {
	if candidate == nil || candidate.CompanyID != project.CompanyID {
		return domain.ErrEmployeeNotFound
	}
	if !candidate.Role.CanBecome(entity.RoleManager) {
		return domain.ErrInvalidRoleTransition
	}
	if managing != nil && managing.ID != project.ID {
		return domain.ErrEmployeeAlreadyManaging
	}
	candidate.PromoteToManager()
	project.ManagerID = candidate.ID
	return nil
}

// AddTeamMember agrega candidate al equipo. El orden de las validaciones
// determina qué error ve el cliente.
func AddTeamMember(team *entity.Team, candidate *entity.Employee) error {
	if candidate == nil || candidate.CompanyID != team.CompanyID {
		return domain.ErrEmployeeNotFound
	}
	if candidate.OnTeam() {
		return domain.ErrEmployeeAlreadyOnTeam
	}
	if candidate.IsManager() {
		return domain.ErrManagerCannotJoinTeam
	}
	candidate.TeamID = team.ID
	return nil
}

// RemoveTeamMember saca a candidate del equipo.
func RemoveTeamMember(team *entity.Team, candidate *entity.Employee) error {
	if candidate == nil {
		return domain.ErrEmployeeNotFound
	}
	if candidate.TeamID != team.ID {
		return domain.ErrEmployeeNotInTeam
	}
	candidate.TeamID = ""
	return nil
}

// ValidateUniqueName falla si algún id que ya usa el valor es distinto de
// excludingID (vacío en creación). kind nombra el campo en el mensaje.
func ValidateUniqueName(kind string, matchingIDs []string, excludingID string) error {
	for _, id := range matchingIDs {
		if id != "" && id != excludingID {
			return domain.NameAlreadyUsed(kind)
		}
	}
	return nil
}

// ValidateDeadline rechaza candidate anterior a now; igual es válido.
func ValidateDeadline(candidate, now time.Time) error {
	if candidate.Before(now) {
		return domain.ErrDeadlineInPast
	}
	return nil
}

// ValidateProjectDeadline compara a nivel de día: hoy es válido.
func ValidateProjectDeadline(deadline, now time.Time) error {
	return ValidateDeadline(deadline, StartOfDay(now))
}

// ParseProjectDeadline interpreta "dd/MM/yyyy" en UTC.
func ParseProjectDeadline(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(ProjectDeadlineLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDeadlineFormat
	}
	return t, nil
}

// ParseTaskDeadline interpreta "dd/MM/yyyy HH:mm" en UTC.
func ParseTaskDeadline(raw string) (time.Time, error) {
	t, err := time.ParseInLocation(TaskDeadlineLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return time.Time{}, domain.ErrInvalidDeadlineFormat
	}
	return t, nil
}

// StartOfDay trunca t a las 00:00 en UTC.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ProjectExpired true cuando la fecha límite ya pasó (el día de hoy no cuenta).
func ProjectExpired(p *entity.Project, now time.Time) bool {
	return p.Deadline.Before(StartOfDay(now))
}

// TaskExpired true cuando la fecha y hora límite ya pasaron.
func TaskExpired(t *entity.Task, now time.Time) bool {
	return t.Deadline.Before(now)
}
