package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kardex-captura/internal/application/capture"
	"github.com/jhoicas/kardex-captura/internal/application/dto"
	"github.com/jhoicas/kardex-captura/internal/domain"
)

// ImportHandler maneja la importación de CSV a la bandeja.
type ImportHandler struct {
	uc *capture.UseCase
}

// NewImportHandler construye el handler.
func NewImportHandler(uc *capture.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// Import godoc
// @Summary      Importar CSV a la bandeja
// @Description  Interpreta el CSV y lo combina con la bandeja. mode: append (defecto) o replace.
// @Description  Errores estructurales devuelven applied=false y la bandeja no cambia.
// @Tags         import
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true   "archivo CSV"
// @Param        mode  formData  string  false  "append | replace"
// @Success      200   {object}  dto.ImportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      413   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/import [post]
func (h *ImportHandler) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return missingFile(c)
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, domain.ErrUnreadableFile)
	}
	defer f.Close()

	out, err := h.uc.Import(c.Context(), f, c.FormValue("mode"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Preview godoc
// @Summary      Vista previa de importación
// @Description  Interpreta el CSV sin tocar la bandeja; se confirma con /api/import/preview/{id}/commit.
// @Tags         import
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "archivo CSV"
// @Success      200   {object}  dto.ImportPreviewResponse
// @Router       /api/import/preview [post]
func (h *ImportHandler) Preview(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return missingFile(c)
	}
	f, err := fh.Open()
	if err != nil {
		return writeError(c, domain.ErrUnreadableFile)
	}
	defer f.Close()

	out, err := h.uc.PreviewImport(c.Context(), f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Confirmar vista previa
// @Tags         import
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true   "id de la vista previa"
// @Param        body  body      dto.ImportCommitRequest  false  "mode (también ?mode=)"
// @Success      200   {object}  dto.ImportResponse
// @Failure      410   {object}  dto.ErrorResponse
// @Router       /api/import/preview/{id}/commit [post]
func (h *ImportHandler) Commit(c *fiber.Ctx) error {
	in := dto.ImportCommitRequest{Mode: c.Query("mode")}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return badBody(c)
		}
	}
	out, err := h.uc.CommitImport(c.Context(), c.Params("id"), in.Mode)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

func missingFile(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "adjunta un archivo CSV en el campo file"})
}
