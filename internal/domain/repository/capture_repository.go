package repository

import (
	"context"

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
)

// ContextRepository define el puerto de persistencia del contexto operativo (kardex_context_v1).
type ContextRepository interface {
	LoadContext(ctx context.Context, initial entity.ContextState) (entity.ContextState, error)
	SaveContext(ctx context.Context, state entity.ContextState) error
}

// QueueRepository define el puerto de persistencia de la bandeja de movimientos (kardex_queue_v1).
// El orden de la bandeja se conserva.
type QueueRepository interface {
	LoadQueue(ctx context.Context) ([]*entity.Movement, error)
	SaveQueue(ctx context.Context, queue []*entity.Movement) error
}
