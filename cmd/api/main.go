package main

import (
	"context"
	"crypto/rsa"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/office-api/internal/application/auth"
	"github.com/jhoicas/office-api/internal/application/usecase"
	"github.com/jhoicas/office-api/internal/infrastructure/memory"
	"github.com/jhoicas/office-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/office-api/internal/interfaces/http"
	"github.com/jhoicas/office-api/pkg/config"
	"github.com/jhoicas/office-api/pkg/jwt"
	"github.com/jhoicas/office-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// store es lo que el arranque necesita de cualquier backend de persistencia.
type store interface {
	usecase.TxRunner
	httpRouter.Pinger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var txRunner store
	switch cfg.Store.Driver {
	case config.StoreMemory:
		log.Warn().Msg("usando store en memoria: los datos se pierden al reiniciar")
		txRunner = memory.NewStore()
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		txRunner = postgres.NewTxRunner(pool)
	}

	privateKey, publicKey, err := loadKeys(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("llaves JWT")
	}

	authUC := auth.NewAuthUseCase(txRunner, auth.JWTConfig{
		PrivateKey: privateKey,
		Issuer:     cfg.JWT.Issuer,
		TTL:        cfg.JWT.TTL(),
	})

	app := httpRouter.NewApp(cfg.App.Name, log.Component("http"))

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Office API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:  usecase.NewCompanyUseCase(txRunner),
		AddressUC:  usecase.NewAddressUseCase(txRunner),
		EmployeeUC: usecase.NewEmployeeUseCase(txRunner),
		ProjectUC:  usecase.NewProjectUseCase(txRunner),
		TeamUC:     usecase.NewTeamUseCase(txRunner),
		TaskUC:     usecase.NewTaskUseCase(txRunner),
		CommentUC:  usecase.NewCommentUseCase(txRunner),
		AuthUC:     authUC,
		Store:      txRunner,
		PublicKey:  publicKey,
		Issuer:     cfg.JWT.Issuer,
		AppName:    cfg.App.Name,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// loadKeys lee el par RSA de la configuración. En development, sin llaves
// configuradas, genera un par efímero (los tokens no sobreviven al reinicio).
func loadKeys(cfg *config.Config, log *logger.Logger) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	if cfg.JWT.PrivateKey == "" && cfg.JWT.PublicKey == "" {
		if !cfg.App.IsDevelopment() {
			return nil, nil, fmt.Errorf("JWT_PRIVATE_KEY y JWT_PUBLIC_KEY son obligatorias fuera de development")
		}
		log.Warn().Msg("JWT sin llaves configuradas: generando par RSA efímero")
		return jwt.GenerateKeyPair(2048)
	}
	priv, err := jwt.ParsePrivateKey(cfg.JWT.PrivateKey)
	if err != nil {
		return nil, nil, fmt.Errorf("JWT_PRIVATE_KEY: %w", err)
	}
	pub, err := jwt.ParsePublicKey(cfg.JWT.PublicKey)
	if err != nil {
		return nil, nil, fmt.Errorf("JWT_PUBLIC_KEY: %w", err)
	}
	return priv, pub, nil
}
