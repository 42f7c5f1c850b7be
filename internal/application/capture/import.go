package capture

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/jhoicas/kardex-captura/internal/application/dto"
	"github.com/jhoicas/kardex-captura/internal/domain"
	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/domain/kardex"
)

// Import lee un CSV, lo interpreta y lo combina con la bandeja según mode (append|replace).
// Solo una importación a la vez; una segunda concurrente devuelve domain.ErrImportInProgress.
// Si el archivo no se puede leer o no produce movimientos la bandeja no cambia.
func (uc *UseCase) Import(ctx context.Context, r io.Reader, mode string) (dto.ImportResponse, error) {
	m, err := kardex.ParseImportMode(mode)
	if err != nil {
		return dto.ImportResponse{}, err
	}
	if !uc.imports.TryAcquire(1) {
		return dto.ImportResponse{}, domain.ErrImportInProgress
	}
	defer uc.imports.Release(1)

	res, err := uc.readCSV(r)
	if err != nil {
		return dto.ImportResponse{}, err
	}
	return uc.applyImport(ctx, res, m)
}

// PreviewImport interpreta el CSV sin tocar la bandeja y lo deja en espera de confirmación.
func (uc *UseCase) PreviewImport(_ context.Context, r io.Reader) (dto.ImportPreviewResponse, error) {
	if !uc.imports.TryAcquire(1) {
		return dto.ImportPreviewResponse{}, domain.ErrImportInProgress
	}
	defer uc.imports.Release(1)

	res, err := uc.readCSV(r)
	if err != nil {
		return dto.ImportPreviewResponse{}, err
	}

	id := uuid.New().String()
	uc.previews.Set(id, res, cache.DefaultExpiration)
	return dto.ImportPreviewResponse{
		ID:        id,
		ExpiresAt: uc.now().Add(uc.cfg.PreviewTTL),
		Imported:  res.Imported,
		Skipped:   res.Skipped,
		Errors:    res.Errors,
		Movements: res.Movements,
	}, nil
}

// CommitImport aplica una vista previa a la bandeja. Cada vista previa se aplica una sola vez.
func (uc *UseCase) CommitImport(ctx context.Context, id, mode string) (dto.ImportResponse, error) {
	m, err := kardex.ParseImportMode(mode)
	if err != nil {
		return dto.ImportResponse{}, err
	}
	if !uc.imports.TryAcquire(1) {
		return dto.ImportResponse{}, domain.ErrImportInProgress
	}
	defer uc.imports.Release(1)

	v, ok := uc.previews.Get(id)
	if !ok {
		return dto.ImportResponse{}, domain.ErrPreviewExpired
	}
	uc.previews.Delete(id)

	res, ok := v.(kardex.ImportResult)
	if !ok {
		return dto.ImportResponse{}, domain.ErrPreviewExpired
	}
	return uc.applyImport(ctx, res, m)
}

func (uc *UseCase) readCSV(r io.Reader) (kardex.ImportResult, error) {
	text, err := uc.decoder.Decode(r)
	if err != nil {
		uc.log.Warn().Err(err).Msg("archivo de importación ilegible")
		return kardex.ImportResult{}, fmt.Errorf("leer archivo: %w", err)
	}

	uc.mu.Lock()
	defaults := uc.state
	uc.mu.Unlock()

	return kardex.ParseCSV(text, defaults), nil
}

func (uc *UseCase) applyImport(ctx context.Context, res kardex.ImportResult, mode kardex.ImportMode) (dto.ImportResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	resp := dto.ImportResponse{
		Mode:     mode,
		Imported: res.Imported,
		Skipped:  res.Skipped,
		Errors:   res.Errors,
	}
	if len(res.Movements) == 0 {
		resp.QueueSize = len(uc.queue)
		uc.log.Warn().Strs("errors", res.Errors).Msg("importación sin movimientos, bandeja sin cambios")
		return resp, nil
	}

	incoming := make([]*entity.Movement, len(res.Movements))
	for i, m := range res.Movements {
		incoming[i] = m.Clone()
	}
	candidates := len(incoming)
	if mode == kardex.ImportAppend {
		candidates += len(uc.queue)
	}

	merged := kardex.Merge(incoming, uc.queue, mode)
	if err := uc.saveQueue(ctx, merged); err != nil {
		return dto.ImportResponse{}, err
	}
	if uc.editingID != "" && uc.indexOf(uc.editingID) < 0 {
		uc.cancelEdit()
	}

	resp.Applied = true
	resp.DuplicatesDropped = candidates - len(merged)
	resp.QueueSize = len(merged)
	uc.log.Info().
		Str("mode", string(mode)).
		Int("imported", res.Imported).
		Int("skipped", res.Skipped).
		Int("duplicates_dropped", resp.DuplicatesDropped).
		Int("queue", len(merged)).
		Msg("importación aplicada")
	return resp, nil
}
