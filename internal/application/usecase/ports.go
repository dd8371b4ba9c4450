package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/office-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando los
// repositorios atados a esa tx. Si fn devuelve error no se confirma nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Set) error) error
}

// Clock fuente de la hora actual (UTC). Reemplazable en tests.
type Clock func() time.Time

func systemClock() time.Time { return time.Now().UTC() }
