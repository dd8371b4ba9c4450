package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/office-api/internal/application/access"
	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/domain/membership"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

// TaskUseCase tareas del proyecto que gestiona el manager.
type TaskUseCase struct {
	tx  TxRunner
	now Clock
}

// NewTaskUseCase construye el caso de uso de tareas.
func NewTaskUseCase(tx TxRunner) *TaskUseCase {
	return &TaskUseCase{tx: tx, now: systemClock}
}

// Create agrega una tarea al proyecto gestionado por el manager autenticado.
func (uc *TaskUseCase) Create(ctx context.Context, p entity.Principal, in dto.TaskRequest) (*dto.TaskResponse, error) {
	now := uc.now()
	var out *dto.TaskResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		project, err := managerProject(ctx, r, p)
		if err != nil {
			return err
		}
		task := &entity.Task{
			ID:          uuid.New().String(),
			ProjectID:   project.ID,
			Title:       in.Title,
			Description: in.Description,
			CreatedAt:   now,
		}
		if err := applyTask(ctx, r, task, in, "", now); err != nil {
			return err
		}
		if err := r.Tasks.Create(ctx, task); err != nil {
			return err
		}
		out, err = taskView(ctx, r, task, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update reemplaza título, descripción y fecha límite.
func (uc *TaskUseCase) Update(ctx context.Context, p entity.Principal, id string, in dto.TaskRequest) (*dto.TaskResponse, error) {
	now := uc.now()
	var out *dto.TaskResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		task, err := managedTask(ctx, r, p, id)
		if err != nil {
			return err
		}
		task.Title = in.Title
		task.Description = in.Description
		if err := applyTask(ctx, r, task, in, task.ID, now); err != nil {
			return err
		}
		if err := r.Tasks.Update(ctx, task); err != nil {
			return err
		}
		out, err = taskView(ctx, r, task, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete elimina la tarea y sus comentarios.
func (uc *TaskUseCase) Delete(ctx context.Context, p entity.Principal, id string) error {
	return uc.tx.Run(ctx, func(r repository.Set) error {
		task, err := managedTask(ctx, r, p, id)
		if err != nil {
			return err
		}
		return r.Tasks.Delete(ctx, task.ID)
	})
}

// Get tarea del proyecto del manager, con sus comentarios.
func (uc *TaskUseCase) Get(ctx context.Context, p entity.Principal, id string) (*dto.TaskResponse, error) {
	now := uc.now()
	var out *dto.TaskResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		task, err := managedTask(ctx, r, p, id)
		if err != nil {
			return err
		}
		out, err = taskView(ctx, r, task, now)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// List tareas del proyecto en el que trabaja el llamador (gestionado o el de su equipo).
func (uc *TaskUseCase) List(ctx context.Context, p entity.Principal) ([]dto.TaskResponse, error) {
	now := uc.now()
	var out []dto.TaskResponse
	err := uc.tx.Run(ctx, func(r repository.Set) error {
		e, err := access.ResolveEmployee(ctx, r.Employees, p)
		if err != nil {
			return err
		}
		project, err := access.WorkingProject(ctx, r.Projects, r.Teams, e)
		if err != nil {
			return err
		}
		tasks, err := r.Tasks.ListByProject(ctx, project.ID)
		if err != nil {
			return err
		}
		out = make([]dto.TaskResponse, 0, len(tasks))
		for _, t := range tasks {
			v, err := taskView(ctx, r, t, now)
			if err != nil {
				return err
			}
			out = append(out, *v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func applyTask(ctx context.Context, r repository.Set, task *entity.Task, in dto.TaskRequest, excludingID string, now time.Time) error {
	if err := checkUnique(ctx, "title", r.Tasks.IDsByTitle, task.Title, excludingID); err != nil {
		return err
	}
	deadline, err := membership.ParseTaskDeadline(in.Deadline)
	if err != nil {
		return err
	}
	if err := membership.ValidateDeadline(deadline, now); err != nil {
		return err
	}
	task.Deadline = deadline
	return nil
}

func managerProject(ctx context.Context, r repository.Set, p entity.Principal) (*entity.Project, error) {
	manager, err := access.ResolveEmployee(ctx, r.Employees, p)
	if err != nil {
		return nil, err
	}
	return access.ManagedProject(ctx, r.Projects, manager)
}

// managedTask tarea que pertenece al proyecto gestionado por el manager.
func managedTask(ctx context.Context, r repository.Set, p entity.Principal, id string) (*entity.Task, error) {
	project, err := managerProject(ctx, r, p)
	if err != nil {
		return nil, err
	}
	task, err := r.Tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}
	if err := access.AssertOwnership(project.ID, task.ProjectID, domain.ErrTaskNotFound); err != nil {
		return nil, err
	}
	return task, nil
}
