package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/office-api/internal/application/usecase"
	"github.com/jhoicas/office-api/internal/domain/repository"
)

// Ensure TxRunner implements usecase.TxRunner.
var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(repos repository.Set) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewRepositorySet(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return writeErr("commit transaction", err)
	}
	return nil
}

// Ping verifica la conexión (health check).
func (r *TxRunner) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// NewRepositorySet construye todos los repositorios sobre q (pool o tx).
func NewRepositorySet(q Querier) repository.Set {
	return repository.Set{
		Companies: NewCompanyRepository(q),
		Addresses: NewAddressRepository(q),
		Employees: NewEmployeeRepository(q),
		Projects:  NewProjectRepository(q),
		Teams:     NewTeamRepository(q),
		Tasks:     NewTaskRepository(q),
		Comments:  NewCommentRepository(q),
	}
}
