package capture

import (
	"context"
	"fmt"

	"github.com/jhoicas/kardex-captura/internal/application/dto"
	"github.com/jhoicas/kardex-captura/internal/domain"
	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/domain/kardex"
)

// Queue devuelve la bandeja y sus totales.
func (uc *UseCase) Queue(_ context.Context) dto.QueueResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return dto.QueueResponse{Items: uc.queueSnapshot(), Summary: kardex.Summarize(uc.queue)}
}

// Summary totales de la bandeja.
func (uc *UseCase) Summary(_ context.Context) kardex.Summary {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return kardex.Summarize(uc.queue)
}

// EditQueued carga una fila de la bandeja en el borrador y entra en modo edición.
func (uc *UseCase) EditQueued(_ context.Context, id string) (dto.DraftResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	idx := uc.indexOf(id)
	if idx < 0 {
		return dto.DraftResponse{}, fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, id)
	}
	uc.draft = uc.queue[idx].Clone()
	uc.editingID = id
	return uc.draftResponse(), nil
}

// DuplicateQueued copia una fila (id nuevo, sin documento, estado draft) al inicio de la bandeja.
func (uc *UseCase) DuplicateQueued(ctx context.Context, id string) (*entity.Movement, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	idx := uc.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, id)
	}
	c := kardex.Duplicate(uc.queue[idx])
	next := make([]*entity.Movement, 0, len(uc.queue)+1)
	next = append(next, c)
	next = append(next, uc.queue...)
	if err := uc.saveQueue(ctx, next); err != nil {
		return nil, err
	}
	return c.Clone(), nil
}

// DeleteQueued elimina una fila; si estaba en edición, cancela la edición.
func (uc *UseCase) DeleteQueued(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	idx := uc.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: movimiento %s", domain.ErrNotFound, id)
	}
	next := make([]*entity.Movement, 0, len(uc.queue)-1)
	next = append(next, uc.queue[:idx]...)
	next = append(next, uc.queue[idx+1:]...)
	if err := uc.saveQueue(ctx, next); err != nil {
		return err
	}
	if uc.editingID == id {
		uc.cancelEdit()
	}
	return nil
}

// ClearQueue vacía la bandeja y cancela cualquier edición.
func (uc *UseCase) ClearQueue(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.saveQueue(ctx, []*entity.Movement{}); err != nil {
		return err
	}
	uc.cancelEdit()
	return nil
}

// Submit revalida toda la bandeja y la persiste. Si algún movimiento queda con error
// el envío se bloquea completo (domain.ErrQueueHasErrors); si no, genera el lote XML
// y lo archiva.
func (uc *UseCase) Submit(ctx context.Context) (dto.SubmitResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if len(uc.queue) == 0 {
		return dto.SubmitResponse{}, domain.ErrEmptyQueue
	}

	validated := make([]*entity.Movement, len(uc.queue))
	for i, m := range uc.queue {
		c := m.Clone()
		kardex.Revalidate(c)
		validated[i] = c
	}
	if err := uc.saveQueue(ctx, validated); err != nil {
		return dto.SubmitResponse{}, err
	}

	sum := kardex.Summarize(validated)
	if sum.ErrorsCount > 0 {
		uc.log.Warn().Int("errors", sum.ErrorsCount).Int("count", sum.Count).Msg("envío bloqueado")
		return dto.SubmitResponse{}, fmt.Errorf("%w: %d movimiento(s)", domain.ErrQueueHasErrors, sum.ErrorsCount)
	}

	batch, err := uc.batches.Build(validated, uc.state)
	if err != nil {
		return dto.SubmitResponse{}, fmt.Errorf("generar lote: %w", err)
	}
	path, err := uc.archive.Save(batch)
	if err != nil {
		return dto.SubmitResponse{}, fmt.Errorf("archivar lote: %w", err)
	}

	resp := dto.SubmitResponse{
		BatchID:   batch.ID,
		CreatedAt: batch.CreatedAt,
		Count:     batch.Count,
		Digest:    batch.Digest,
		Path:      path,
		Summary:   sum,
	}
	if uc.cfg.ClearOnSubmit {
		if err := uc.saveQueue(ctx, []*entity.Movement{}); err != nil {
			return dto.SubmitResponse{}, err
		}
		uc.cancelEdit()
		resp.Cleared = true
	}

	uc.log.Info().
		Str("batch_id", batch.ID).
		Int("count", batch.Count).
		Str("digest", batch.Digest).
		Bool("cleared", resp.Cleared).
		Msg("bandeja enviada")
	return resp, nil
}

// ExportXML genera el lote XML de la bandeja actual sin enviarla ni archivarla.
func (uc *UseCase) ExportXML(_ context.Context) (*entity.SubmissionBatch, error) {
	uc.mu.Lock()
	queue, state := uc.queueSnapshot(), uc.state
	uc.mu.Unlock()

	batch, err := uc.batches.Build(queue, state)
	if err != nil {
		return nil, fmt.Errorf("generar lote: %w", err)
	}
	return batch, nil
}

// SummaryPDF genera el resumen imprimible de la bandeja.
func (uc *UseCase) SummaryPDF(ctx context.Context) ([]byte, error) {
	uc.mu.Lock()
	queue, state := uc.queueSnapshot(), uc.state
	uc.mu.Unlock()

	out, err := uc.reports.GenerateSummaryPDF(ctx, state, queue, uc.now())
	if err != nil {
		return nil, fmt.Errorf("generar resumen: %w", err)
	}
	return out, nil
}
