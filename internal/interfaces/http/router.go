package http

import (
	"context"
	"crypto/rsa"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/office-api/internal/application/auth"
	"github.com/jhoicas/office-api/internal/application/usecase"
	"github.com/jhoicas/office-api/internal/domain/entity"
	"github.com/jhoicas/office-api/pkg/logger"
)

// Pinger lo implementan los stores (postgres y memoria) para /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	AddressUC  *usecase.AddressUseCase
	EmployeeUC *usecase.EmployeeUseCase
	ProjectUC  *usecase.ProjectUseCase
	TeamUC     *usecase.TeamUseCase
	TaskUC     *usecase.TaskUseCase
	CommentUC  *usecase.CommentUseCase
	AuthUC     *auth.AuthUseCase
	Store      Pinger
	PublicKey  *rsa.PublicKey
	Issuer     string
	AppName    string
}

// NewApp crea la app Fiber con el traductor de errores, recover y el log de peticiones.
func NewApp(name string, log *logger.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: ErrorHandler(log, func() time.Time { return time.Now().UTC() }),
	})
	app.Use(RequestLogger(log))
	app.Use(recover.New())
	return app
}

// scope devuelve la cadena auth + rol + handler de una ruta protegida.
type scope func(h fiber.Handler) []fiber.Handler

func newScope(authn fiber.Handler, roles ...entity.Role) scope {
	authz := RequireRole(roles...)
	return func(h fiber.Handler) []fiber.Handler {
		return []fiber.Handler{authn, authz, h}
	}
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		if err := deps.Store.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "down", "service": deps.AppName})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	api := app.Group("/api")

	authn := AuthMiddleware(deps.PublicKey, deps.Issuer)
	company := newScope(authn, entity.RoleCompany)
	manager := newScope(authn, entity.RoleManager)
	staff := newScope(authn, entity.RoleEmployee, entity.RoleManager)

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/companies/login", authHandler.LoginCompany)
	api.Post("/employees/login", authHandler.LoginEmployee)

	// Companies y dirección
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.AddressUC)
	api.Post("/companies", companyHandler.Create)
	api.Get("/companies", company(companyHandler.Get)...)
	api.Put("/companies", company(companyHandler.Update)...)
	api.Delete("/companies", company(companyHandler.Delete)...)
	api.Get("/addresses", company(companyHandler.GetAddress)...)
	api.Put("/addresses", company(companyHandler.UpdateAddress)...)

	// Employees: /me antes de /:username
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	api.Get("/employees/me", staff(employeeHandler.Me)...)
	api.Put("/employees", staff(employeeHandler.UpdateSelf)...)
	api.Delete("/employees", staff(employeeHandler.DeleteSelf)...)
	api.Post("/employees", company(employeeHandler.Create)...)
	api.Get("/employees", company(employeeHandler.List)...)
	api.Get("/employees/:username", company(employeeHandler.Get)...)
	api.Delete("/employees/:username", company(employeeHandler.Delete)...)

	// Projects
	projectHandler := NewProjectHandler(deps.ProjectUC)
	api.Post("/projects", company(projectHandler.Create)...)
	api.Get("/projects", company(projectHandler.List)...)
	api.Get("/projects/:id", company(projectHandler.Get)...)
	api.Put("/projects/:id", company(projectHandler.Update)...)
	api.Delete("/projects/:id", company(projectHandler.Delete)...)

	// Teams
	teamHandler := NewTeamHandler(deps.TeamUC)
	api.Get("/teams", company(teamHandler.ListByCompany)...)
	api.Get("/teams/project", manager(teamHandler.ListByProject)...)
	api.Post("/teams", manager(teamHandler.Create)...)
	api.Put("/teams/:id", manager(teamHandler.Update)...)
	api.Delete("/teams/:id", manager(teamHandler.Delete)...)

	// Tasks
	taskHandler := NewTaskHandler(deps.TaskUC)
	api.Post("/tasks", manager(taskHandler.Create)...)
	api.Get("/tasks", staff(taskHandler.List)...)
	api.Get("/tasks/:id", manager(taskHandler.Get)...)
	api.Put("/tasks/:id", manager(taskHandler.Update)...)
	api.Delete("/tasks/:id", manager(taskHandler.Delete)...)

	// Comments
	commentHandler := NewCommentHandler(deps.CommentUC)
	api.Get("/comments", staff(commentHandler.ListMine)...)
	api.Get("/comments/:id", manager(commentHandler.ListByTask)...)
	api.Post("/comments/:id", staff(commentHandler.Create)...)
	api.Put("/comments/:id", staff(commentHandler.Update)...)
	api.Delete("/comments/:id", staff(commentHandler.Delete)...)
}
