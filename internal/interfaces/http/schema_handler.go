package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invopop/jsonschema"

	"github.com/jhoicas/kardex-captura/internal/application/dto"
	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/domain/kardex"
)

// SchemaHandler publica el JSON Schema de las formas persistidas e intercambiadas.
type SchemaHandler struct {
	schemas map[string]*jsonschema.Schema
}

// NewSchemaHandler refleja los esquemas una sola vez.
func NewSchemaHandler() *SchemaHandler {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	return &SchemaHandler{schemas: map[string]*jsonschema.Schema{
		"movement":      reflector.Reflect(&entity.Movement{}),
		"context":       reflector.Reflect(&entity.ContextState{}),
		"queue":         reflector.Reflect(&[]entity.Movement{}),
		"import-result": reflector.Reflect(&kardex.ImportResult{}),
		"catalogs":      reflector.Reflect(&dto.CatalogsResponse{}),
	}}
}

// Get godoc
// @Summary      JSON Schema
// @Tags         schema
// @Produce      json
// @Param        name  path  string  true  "movement | context | queue | import-result | catalogs"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/schema/{name} [get]
func (h *SchemaHandler) Get(c *fiber.Ctx) error {
	s, ok := h.schemas[c.Params("name")]
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "esquema no encontrado"})
	}
	return c.JSON(s)
}
