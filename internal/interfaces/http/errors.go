package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-captura/internal/application/dto"
	"github.com/jhoicas/kardex-captura/internal/domain"
)

// errorMapping status y código HTTP de cada error de dominio.
var errorMapping = []struct {
	err    error
	status int
	code   string
}{
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrContextNotReady, fiber.StatusConflict, "CONTEXT_NOT_READY"},
	{domain.ErrNotEditing, fiber.StatusConflict, "NOT_EDITING"},
	{domain.ErrEditInProgress, fiber.StatusConflict, "EDIT_IN_PROGRESS"},
	{domain.ErrImportInProgress, fiber.StatusConflict, "IMPORT_IN_PROGRESS"},
	{domain.ErrFileTooLarge, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE"},
	{domain.ErrUnreadableFile, fiber.StatusUnprocessableEntity, "UNREADABLE_FILE"},
	{domain.ErrQueueHasErrors, fiber.StatusUnprocessableEntity, "QUEUE_HAS_ERRORS"},
	{domain.ErrEmptyQueue, fiber.StatusUnprocessableEntity, "EMPTY_QUEUE"},
	{domain.ErrPreviewExpired, fiber.StatusGone, "PREVIEW_EXPIRED"},
}

// writeError traduce err a dto.ErrorResponse; errores no mapeados son INTERNAL (500).
func writeError(c *fiber.Ctx, err error) error {
	for _, m := range errorMapping {
		if errors.Is(err, m.err) {
			return c.Status(m.status).JSON(dto.ErrorResponse{Code: m.code, Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
