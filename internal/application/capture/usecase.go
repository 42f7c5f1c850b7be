// Package capture orquesta la captura de movimientos: contexto operativo, borrador,
// bandeja, importación CSV y envío.
package capture

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/jhoicas/kardex-captura/internal/application/dto"
	"github.com/jhoicas/kardex-captura/internal/domain"
	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/domain/kardex"
	"github.com/jhoicas/kardex-captura/internal/domain/repository"
)

// DefaultPreviewTTL vigencia de una vista previa de importación.
const DefaultPreviewTTL = 15 * time.Minute

// Config opciones de la captura.
type Config struct {
	DefaultCurrency string        // moneda inicial del contexto
	ClearOnSubmit   bool          // vaciar la bandeja tras un envío exitoso
	PreviewTTL      time.Duration // vigencia de las vistas previas de importación
}

// Deps dependencias del caso de uso.
type Deps struct {
	Contexts repository.ContextRepository
	Queues   repository.QueueRepository
	Decoder  UploadDecoder
	Batches  BatchBuilder
	Archive  BatchArchive
	Reports  SummaryPDFGenerator
	Logger   zerolog.Logger
	Now      func() time.Time // nil = time.Now
}

// UseCase estado de una sesión de captura (un usuario, un borrador, una bandeja).
// Cada cambio a la bandeja o al contexto se persiste antes de quedar visible.
type UseCase struct {
	contexts repository.ContextRepository
	queues   repository.QueueRepository
	decoder  UploadDecoder
	batches  BatchBuilder
	archive  BatchArchive
	reports  SummaryPDFGenerator
	log      zerolog.Logger
	now      func() time.Time
	cfg      Config

	imports  *semaphore.Weighted
	previews *cache.Cache

	mu        sync.Mutex
	state     entity.ContextState
	draft     *entity.Movement
	editingID string
	queue     []*entity.Movement
}

// NewUseCase carga el contexto y la bandeja persistidos y prepara un borrador vacío.
func NewUseCase(ctx context.Context, deps Deps, cfg Config) (*UseCase, error) {
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = kardex.DefaultMoneda
	}
	if cfg.PreviewTTL <= 0 {
		cfg.PreviewTTL = DefaultPreviewTTL
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}

	uc := &UseCase{
		contexts: deps.Contexts,
		queues:   deps.Queues,
		decoder:  deps.Decoder,
		batches:  deps.Batches,
		archive:  deps.Archive,
		reports:  deps.Reports,
		log:      deps.Logger.With().Str("component", "capture").Logger(),
		now:      deps.Now,
		cfg:      cfg,
		imports:  semaphore.NewWeighted(1),
		previews: cache.New(cfg.PreviewTTL, 2*cfg.PreviewTTL),
	}

	state, err := uc.contexts.LoadContext(ctx, entity.ContextState{MonedaDefault: cfg.DefaultCurrency})
	if err != nil {
		return nil, fmt.Errorf("cargar contexto: %w", err)
	}
	queue, err := uc.queues.LoadQueue(ctx)
	if err != nil {
		return nil, fmt.Errorf("cargar bandeja: %w", err)
	}
	uc.state = state
	uc.queue = queue
	uc.resetDraft()

	uc.log.Info().Int("queue", len(queue)).Bool("context_ready", state.Ready()).Msg("sesión de captura cargada")
	return uc, nil
}

// Catalogs devuelve los catálogos de solo lectura.
func (uc *UseCase) Catalogs() dto.CatalogsResponse {
	return dto.CatalogsResponse{
		Classes:   kardex.MovementClasses(),
		Grupos:    append([]entity.GrupoKardex(nil), entity.GruposKardex...),
		Materials: kardex.Materials(),
		Centros:   kardex.Centros(),
		Almacenes: kardex.Almacenes(),
		Monedas:   kardex.Monedas(),
	}
}

// ── Contexto ──────────────────────────────────────────────────────────────────

// Context devuelve el contexto operativo.
func (uc *UseCase) Context(_ context.Context) dto.ContextResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return dto.ContextResponse{Context: uc.state, Ready: uc.state.Ready()}
}

// UpdateContext aplica cambios al contexto, lo persiste y sincroniza las dimensiones
// del borrador sin tocar sus campos de movimiento. El material deriva descripción y UM
// del catálogo.
func (uc *UseCase) UpdateContext(ctx context.Context, req dto.ContextPatchRequest) (dto.ContextResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.state
	if req.Centro != nil {
		v, err := fromCatalog("centro", *req.Centro, kardex.Centros())
		if err != nil {
			return dto.ContextResponse{}, err
		}
		next.Centro = v
	}
	if req.Almacen != nil {
		v, err := fromCatalog("almacén", *req.Almacen, kardex.Almacenes())
		if err != nil {
			return dto.ContextResponse{}, err
		}
		next.Almacen = v
	}
	if req.Material != nil {
		code := strings.TrimSpace(*req.Material)
		next.Material, next.MatDesc, next.UM = "", "", ""
		if code != "" {
			mat, ok := kardex.FindMaterial(code)
			if !ok {
				return dto.ContextResponse{}, fmt.Errorf("%w: material %q", domain.ErrInvalidInput, code)
			}
			next.Material, next.MatDesc, next.UM = mat.Code, mat.Desc, mat.UM
		}
	}
	if req.MonedaDefault != nil {
		v, err := fromCatalog("moneda", *req.MonedaDefault, kardex.Monedas())
		if err != nil {
			return dto.ContextResponse{}, err
		}
		next.MonedaDefault = v
	}

	if err := uc.contexts.SaveContext(ctx, next); err != nil {
		return dto.ContextResponse{}, fmt.Errorf("guardar contexto: %w", err)
	}
	uc.state = next
	uc.draft.ApplyContext(next)
	return dto.ContextResponse{Context: next, Ready: next.Ready()}, nil
}

// ── Borrador ──────────────────────────────────────────────────────────────────

// Draft devuelve una copia del borrador actual.
func (uc *UseCase) Draft(_ context.Context) dto.DraftResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.draftResponse()
}

// PatchDraft actualiza campos del borrador. Cantidad y valor se limpian con
// kardex.ClampNumberString. Requiere contexto completo.
func (uc *UseCase) PatchDraft(_ context.Context, req dto.DraftPatchRequest) (dto.DraftResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.state.Ready() {
		return dto.DraftResponse{}, domain.ErrContextNotReady
	}

	d := uc.draft
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.FechaConta, req.FechaConta)
	set(&d.NoDocumentoMat, req.NoDocumentoMat)
	set(&d.NoPedido, req.NoPedido)
	set(&d.CentroDestino, req.CentroDestino)
	set(&d.AlmacenDestino, req.AlmacenDestino)
	set(&d.Moneda, req.Moneda)
	set(&d.Lote, req.Lote)
	set(&d.FechaFab, req.FechaFab)
	set(&d.Sgtxt, req.Sgtxt)
	set(&d.Lifnr, req.Lifnr)
	set(&d.ProveedorDesc, req.ProveedorDesc)
	if req.Cantidad != nil {
		d.Cantidad = kardex.ClampNumberString(*req.Cantidad, true)
	}
	if req.Valor != nil {
		d.Valor = kardex.ClampNumberString(*req.Valor, true)
	}
	return uc.draftResponse(), nil
}

// ApplyClass asigna la clase de movimiento al borrador; 0 la limpia.
func (uc *UseCase) ApplyClass(_ context.Context, code int) (dto.DraftResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.state.Ready() {
		return dto.DraftResponse{}, domain.ErrContextNotReady
	}
	if _, ok := kardex.ResolveClass(code); !ok && code != 0 {
		return dto.DraftResponse{}, fmt.Errorf("%w: clase de movimiento %d", domain.ErrInvalidInput, code)
	}
	kardex.ApplyClass(uc.draft, code)
	return uc.draftResponse(), nil
}

// SyncDraft vuelve a copiar el contexto en el borrador ("cargar contexto").
func (uc *UseCase) SyncDraft(_ context.Context) (dto.DraftResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !uc.state.Ready() {
		return dto.DraftResponse{}, domain.ErrContextNotReady
	}
	uc.draft.ApplyContext(uc.state)
	return uc.draftResponse(), nil
}

// AddDraft valida el borrador, lo agrega al inicio de la bandeja y prepara uno nuevo.
// Un borrador con errores también entra a la bandeja, marcado como error.
func (uc *UseCase) AddDraft(ctx context.Context) (dto.DraftStoreResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.editingID != "" {
		return dto.DraftStoreResponse{}, domain.ErrEditInProgress
	}

	m := uc.finalizeDraft()
	next := make([]*entity.Movement, 0, len(uc.queue)+1)
	next = append(next, m)
	next = append(next, uc.queue...)
	if err := uc.saveQueue(ctx, next); err != nil {
		return dto.DraftStoreResponse{}, err
	}
	uc.resetDraft()
	return dto.DraftStoreResponse{Movement: m.Clone(), Draft: uc.draftResponse()}, nil
}

// UpdateDraft valida el borrador en edición y reemplaza la fila de la bandeja con su id.
func (uc *UseCase) UpdateDraft(ctx context.Context) (dto.DraftStoreResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.editingID == "" {
		return dto.DraftStoreResponse{}, domain.ErrNotEditing
	}
	idx := uc.indexOf(uc.editingID)
	if idx < 0 {
		uc.cancelEdit()
		return dto.DraftStoreResponse{}, fmt.Errorf("%w: movimiento en edición", domain.ErrNotFound)
	}

	m := uc.finalizeDraft()
	next := append([]*entity.Movement(nil), uc.queue...)
	next[idx] = m
	if err := uc.saveQueue(ctx, next); err != nil {
		return dto.DraftStoreResponse{}, err
	}
	uc.cancelEdit()
	return dto.DraftStoreResponse{Movement: m.Clone(), Draft: uc.draftResponse()}, nil
}

// CancelEdit sale del modo edición y deja un borrador vacío con el contexto.
func (uc *UseCase) CancelEdit(_ context.Context) dto.DraftResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.cancelEdit()
	return uc.draftResponse()
}

// ── helpers (con uc.mu tomado) ────────────────────────────────────────────────

// finalizeDraft copia el borrador forzando el contexto; la moneda del borrador se
// conserva y solo cae a la del contexto si está vacía.
func (uc *UseCase) finalizeDraft() *entity.Movement {
	m := uc.draft.Clone()
	moneda := m.Moneda
	m.ApplyContext(uc.state)
	if moneda != "" {
		m.Moneda = moneda
	}
	kardex.Revalidate(m)
	return m
}

func (uc *UseCase) resetDraft() {
	uc.draft = kardex.NewDraftForContext(uc.now(), uc.state)
}

func (uc *UseCase) cancelEdit() {
	uc.editingID = ""
	uc.resetDraft()
}

func (uc *UseCase) draftResponse() dto.DraftResponse {
	return dto.DraftResponse{
		Draft:     uc.draft.Clone(),
		EditingID: uc.editingID,
		CanWork:   uc.state.Ready(),
	}
}

func (uc *UseCase) indexOf(id string) int {
	for i, m := range uc.queue {
		if m.ID == id {
			return i
		}
	}
	return -1
}

// saveQueue persiste next y solo entonces lo publica como bandeja actual.
func (uc *UseCase) saveQueue(ctx context.Context, next []*entity.Movement) error {
	if err := uc.queues.SaveQueue(ctx, next); err != nil {
		return fmt.Errorf("guardar bandeja: %w", err)
	}
	uc.queue = next
	return nil
}

func (uc *UseCase) queueSnapshot() []*entity.Movement {
	out := make([]*entity.Movement, len(uc.queue))
	for i, m := range uc.queue {
		out[i] = m.Clone()
	}
	return out
}

func fromCatalog(name, value string, allowed []string) (string, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return "", nil
	}
	for _, a := range allowed {
		if a == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, name, v)
}
