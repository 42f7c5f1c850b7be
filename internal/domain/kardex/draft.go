package kardex

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
)

// NewDraft crea un borrador vacío con la fecha de hoy, sin clase y en estado draft.
func NewDraft(now time.Time) *entity.Movement {
	return &entity.Movement{
		ID:          uuid.New().String(),
		GrupoKardex: entity.GrupoOtros,
		FechaConta:  Today(now),
		Moneda:      DefaultMoneda,
		Status:      entity.StatusDraft,
	}
}

// NewDraftForContext crea un borrador vacío con las dimensiones del contexto aplicadas.
func NewDraftForContext(now time.Time, ctx entity.ContextState) *entity.Movement {
	d := NewDraft(now)
	d.ApplyContext(ctx)
	return d
}

// ApplyClass asigna la clase al borrador y deriva descripción y grupo de la tabla.
// Los campos de destino y proveedor se limpian cuando la nueva clase no los requiere.
func ApplyClass(m *entity.Movement, code int) {
	cls, ok := ResolveClass(code)
	m.ClaseMov = code
	m.ClaseMovDesc = cls.Desc
	m.GrupoKardex = entity.GrupoOtros
	if ok {
		m.GrupoKardex = cls.Grupo
	}
	if !cls.RequiresDestination {
		m.CentroDestino = ""
		m.AlmacenDestino = ""
	}
	if !cls.RequiresVendor {
		m.Lifnr = ""
		m.ProveedorDesc = ""
	}
}

// Duplicate copia un movimiento con id nuevo, sin número de documento y en estado draft.
func Duplicate(m *entity.Movement) *entity.Movement {
	c := m.Clone()
	c.ID = uuid.New().String()
	c.NoDocumentoMat = ""
	c.Status = entity.StatusDraft
	c.Errors = entity.FieldErrors{}
	return c
}
