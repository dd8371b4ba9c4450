package domain

import (
	"errors"
	"fmt"
)

// Tipos de error de dominio. El traductor HTTP decide el status según el tipo
// (errors.Is), nunca según el error concreto.
var (
	ErrNotFound    = errors.New("non-existent information")
	ErrUsedData    = errors.New("provided information")
	ErrInvalidData = errors.New("invalid data")
	ErrLoginFailed = errors.New("access forbidden")
)

// Error es un error de dominio con mensaje para el cliente y un tipo (Kind).
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap expone el tipo para errors.Is(err, ErrNotFound) y similares.
func (e *Error) Unwrap() error { return e.Kind }

func newError(kind error, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Inexistentes o fuera del tenant del solicitante.
var (
	ErrCompanyNotFound     = newError(ErrNotFound, "Company not found")
	ErrAddressNotFound     = newError(ErrNotFound, "Address not found")
	ErrEmployeeNotFound    = newError(ErrNotFound, "Employee not found")
	ErrProjectNotFound     = newError(ErrNotFound, "Project not found")
	ErrNotWorkingOnProject = newError(ErrNotFound, "You aren't working on a Project")
	ErrTeamNotFound        = newError(ErrNotFound, "Team not found")
	ErrTaskNotFound        = newError(ErrNotFound, "Task not found")
	ErrCommentNotFound     = newError(ErrNotFound, "Comment not found")
)

// ErrNameAlreadyUsed violación de unicidad (nombre, cnpj, username, cpf, email, título).
var ErrNameAlreadyUsed = newError(ErrUsedData, "Information already in use")

// NameAlreadyUsed ErrNameAlreadyUsed con el campo en el mensaje.
func NameAlreadyUsed(field string) error {
	return &Error{Kind: ErrNameAlreadyUsed, Message: fmt.Sprintf("%s already in use", field)}
}

// Transiciones de empleado o datos inválidos.
var (
	ErrEmployeeAlreadyManaging = newError(ErrInvalidData, "Already manage a project")
	ErrEmployeeAlreadyOnTeam   = newError(ErrInvalidData, "Already on a team")
	ErrManagerCannotJoinTeam   = newError(ErrInvalidData, "Manager can not be part of the team")
	ErrEmployeeNotInTeam       = newError(ErrInvalidData, "Does not exist in the team")
	ErrEmployeeManagesProject  = newError(ErrInvalidData, "Employee manages a project")
	ErrInvalidRoleTransition   = newError(ErrInvalidData, "Invalid role transition")
	ErrDeadlineInPast          = newError(ErrInvalidData, "Deadline can not be in the past")
	ErrInvalidDeadlineFormat   = newError(ErrInvalidData, "Invalid deadline format")
)

// Login fallido.
var (
	ErrLoginCompanyNotFound  = newError(ErrLoginFailed, "Company not found")
	ErrLoginEmployeeNotFound = newError(ErrLoginFailed, "Employee not found")
	ErrPasswordMismatch      = newError(ErrLoginFailed, "Password does not match")
)
