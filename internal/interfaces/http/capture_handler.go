package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-captura/internal/application/capture"
	"github.com/jhoicas/kardex-captura/internal/application/dto"
)

// CaptureHandler maneja contexto, borrador y bandeja de la captura.
type CaptureHandler struct {
	uc *capture.UseCase
}

// NewCaptureHandler construye el handler.
func NewCaptureHandler(uc *capture.UseCase) *CaptureHandler {
	return &CaptureHandler{uc: uc}
}

// Catalogs godoc
// @Summary      Catálogos de captura
// @Tags         catalogs
// @Produce      json
// @Success      200  {object}  dto.CatalogsResponse
// @Router       /api/catalogs [get]
func (h *CaptureHandler) Catalogs(c *fiber.Ctx) error {
	return c.JSON(h.uc.Catalogs())
}

// ── Contexto ──────────────────────────────────────────────────────────────────

// GetContext godoc
// @Summary      Contexto operativo
// @Tags         context
// @Produce      json
// @Success      200  {object}  dto.ContextResponse
// @Router       /api/context [get]
func (h *CaptureHandler) GetContext(c *fiber.Ctx) error {
	return c.JSON(h.uc.Context(c.Context()))
}

// PatchContext godoc
// @Summary      Actualizar contexto operativo
// @Description  Cambia centro, almacén, material o moneda. El material deriva descripción y UM.
// @Tags         context
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ContextPatchRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.ContextResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/context [patch]
func (h *CaptureHandler) PatchContext(c *fiber.Ctx) error {
	var in dto.ContextPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateContext(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ── Borrador ──────────────────────────────────────────────────────────────────

// GetDraft godoc
// @Summary      Borrador actual
// @Tags         draft
// @Produce      json
// @Success      200  {object}  dto.DraftResponse
// @Router       /api/draft [get]
func (h *CaptureHandler) GetDraft(c *fiber.Ctx) error {
	return c.JSON(h.uc.Draft(c.Context()))
}

// PatchDraft godoc
// @Summary      Editar campos del borrador
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        body  body      dto.DraftPatchRequest  true  "campos a cambiar"
// @Success      200   {object}  dto.DraftResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/draft [patch]
func (h *CaptureHandler) PatchDraft(c *fiber.Ctx) error {
	var in dto.DraftPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.PatchDraft(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ApplyClass godoc
// @Summary      Asignar clase de movimiento al borrador
// @Tags         draft
// @Accept       json
// @Produce      json
// @Param        body  body      dto.ApplyClassRequest  true  "claseMov (0 = limpiar)"
// @Success      200   {object}  dto.DraftResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/draft/class [post]
func (h *CaptureHandler) ApplyClass(c *fiber.Ctx) error {
	var in dto.ApplyClassRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.ApplyClass(c.Context(), in.ClaseMov)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SyncDraft copia el contexto en el borrador.
func (h *CaptureHandler) SyncDraft(c *fiber.Ctx) error {
	out, err := h.uc.SyncDraft(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AddDraft godoc
// @Summary      Agregar borrador a la bandeja
// @Description  Valida el borrador y lo agrega al inicio de la bandeja (con sus errores si los tiene).
// @Tags         draft
// @Produce      json
// @Success      201  {object}  dto.DraftStoreResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/draft/add [post]
func (h *CaptureHandler) AddDraft(c *fiber.Ctx) error {
	out, err := h.uc.AddDraft(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateDraft godoc
// @Summary      Guardar el movimiento en edición
// @Tags         draft
// @Produce      json
// @Success      200  {object}  dto.DraftStoreResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/draft/update [post]
func (h *CaptureHandler) UpdateDraft(c *fiber.Ctx) error {
	out, err := h.uc.UpdateDraft(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CancelEdit sale del modo edición.
func (h *CaptureHandler) CancelEdit(c *fiber.Ctx) error {
	return c.JSON(h.uc.CancelEdit(c.Context()))
}

// ── Bandeja ───────────────────────────────────────────────────────────────────

// GetQueue godoc
// @Summary      Bandeja de movimientos
// @Tags         queue
// @Produce      json
// @Success      200  {object}  dto.QueueResponse
// @Router       /api/queue [get]
func (h *CaptureHandler) GetQueue(c *fiber.Ctx) error {
	return c.JSON(h.uc.Queue(c.Context()))
}

// GetSummary totales de la bandeja.
func (h *CaptureHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary(c.Context()))
}

// ClearQueue godoc
// @Summary      Vaciar la bandeja
// @Tags         queue
// @Success      204
// @Router       /api/queue [delete]
func (h *CaptureHandler) ClearQueue(c *fiber.Ctx) error {
	if err := h.uc.ClearQueue(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// EditQueued carga una fila en el borrador.
func (h *CaptureHandler) EditQueued(c *fiber.Ctx) error {
	out, err := h.uc.EditQueued(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DuplicateQueued copia una fila al inicio de la bandeja.
func (h *CaptureHandler) DuplicateQueued(c *fiber.Ctx) error {
	out, err := h.uc.DuplicateQueued(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteQueued elimina una fila.
func (h *CaptureHandler) DeleteQueued(c *fiber.Ctx) error {
	if err := h.uc.DeleteQueued(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Submit godoc
// @Summary      Enviar la bandeja
// @Description  Revalida toda la bandeja. Si algún movimiento tiene error no se envía nada.
// @Tags         queue
// @Produce      json
// @Success      200  {object}  dto.SubmitResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/queue/submit [post]
func (h *CaptureHandler) Submit(c *fiber.Ctx) error {
	out, err := h.uc.Submit(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ExportXML godoc
// @Summary      Lote XML de la bandeja
// @Tags         queue
// @Produce      xml
// @Success      200
// @Router       /api/queue/export.xml [get]
func (h *CaptureHandler) ExportXML(c *fiber.Ctx) error {
	batch, err := h.uc.ExportXML(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="lote-%s.xml"`, batch.ID))
	c.Set("X-Batch-Digest", batch.Digest)
	return c.Send(batch.XML)
}

// SummaryPDF godoc
// @Summary      Resumen PDF de la bandeja
// @Tags         queue
// @Produce      application/pdf
// @Success      200
// @Router       /api/queue/summary.pdf [get]
func (h *CaptureHandler) SummaryPDF(c *fiber.Ctx) error {
	out, err := h.uc.SummaryPDF(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="resumen-captura.pdf"`)
	return c.Send(out)
}
