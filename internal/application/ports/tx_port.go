package ports

import (
	"context"

	"github.com/jhoicas/gior-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Commit si fn devuelve nil; Rollback ante cualquier error o cancelación del contexto.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repos) error) error
}
