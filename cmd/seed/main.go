// seed crea un tenant de demostración (empresa, empleados, proyecto, equipo,
// tarea y comentario) usando los mismos casos de uso que la API.
//
// Uso: go run ./cmd/seed
// Toma la conexión de la misma configuración que cmd/api (DATABASE_URL, DB_HOST, ...).
// Si la empresa demo ya existe no hace nada.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jhoicas/office-api/internal/application/dto"
	"github.com/jhoicas/office-api/internal/application/usecase"
	"github.com/jhoicas/office-api/internal/domain"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/internal/infrastructure/postgres"
	"github.com/jhoicas/office-api/pkg/config"
	"github.com/jhoicas/office-api/pkg/logger"
)

const demoPassword = "office123"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, App: cfg.App.Name}).Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB, log)
	if err != nil {
		log.Error().Err(err).Msg("conexión a PostgreSQL")
		os.Exit(1)
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Error().Err(err).Msg("migraciones")
		os.Exit(1)
	}

	if err := seed(ctx, postgres.NewTxRunner(pool)); err != nil {
		if errors.Is(err, domain.ErrUsedData) {
			log.Info().Msg("tenant demo ya existe, nada que hacer")
			return
		}
		log.Error().Err(err).Msg("seed")
		os.Exit(1)
	}
	log.Info().Str("company", "Demo Office").Str("password", demoPassword).Msg("tenant demo creado")
}

func seed(ctx context.Context, tx usecase.TxRunner) error {
	companies := usecase.NewCompanyUseCase(tx)
	employees := usecase.NewEmployeeUseCase(tx)
	projects := usecase.NewProjectUseCase(tx)
	teams := usecase.NewTeamUseCase(tx)
	tasks := usecase.NewTaskUseCase(tx)
	comments := usecase.NewCommentUseCase(tx)

	company, err := companies.Register(ctx, dto.CreateCompanyRequest{
		Name: "Demo Office", CNPJ: "11222333000181", Password: demoPassword,
		Address: &dto.AddressRequest{
			ZipCode: "01001000", Number: "1", Street: "Praça da Sé",
			Neighborhood: "Sé", City: "São Paulo", State: "SP",
		},
	})
	if err != nil {
		return err
	}
	owner := entity.Principal{ID: company.ID, Role: entity.RoleCompany}

	staff := []struct{ username, cpf string }{
		{"maria", "52998224725"},
		{"joao", "11144477735"},
		{"ana", "12345678909"},
	}
	ids := make(map[string]string, len(staff))
	for _, s := range staff {
		e, err := employees.Create(ctx, owner, dto.CreateEmployeeRequest{
			Name: s.username, Username: s.username, CPF: s.cpf,
			Email: s.username + "@demo.office", Password: demoPassword,
		})
		if err != nil {
			return err
		}
		ids[s.username] = e.ID
	}

	deadline := time.Now().UTC().AddDate(0, 3, 0)
	if _, err := projects.Create(ctx, owner, dto.ProjectRequest{
		Name: "Website", Description: "Nuevo sitio corporativo",
		ManagerUsername: "maria", Deadline: deadline.Format(dto.DateLayout),
	}); err != nil {
		return err
	}
	manager := entity.Principal{ID: ids["maria"], Role: entity.RoleManager}

	if _, err := teams.Create(ctx, manager, dto.CreateTeamRequest{
		Name: "Frontend", Usernames: []string{"joao", "ana"},
	}); err != nil {
		return err
	}
	task, err := tasks.Create(ctx, manager, dto.TaskRequest{
		Title: "Landing page", Description: "Primera versión de la portada",
		Deadline: deadline.Add(-24 * time.Hour).Format(dto.DateTimeLayout),
	})
	if err != nil {
		return err
	}
	_, err = comments.Create(ctx, entity.Principal{ID: ids["joao"], Role: entity.RoleEmployee},
		task.ID, dto.CommentRequest{Content: "Empiezo con el header"})
	return err
}
