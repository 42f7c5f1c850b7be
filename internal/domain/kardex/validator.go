package kardex

import "github.com/jhoicas/kardex-captura/internal/domain/entity"

// Mensajes de validación presentados al usuario.
const (
	MsgMaterialRequired    = "Selecciona material."
	MsgCentroRequired      = "Selecciona centro."
	MsgAlmacenRequired     = "Selecciona almacén."
	MsgClaseMovRequired    = "Selecciona clase de movimiento."
	MsgFechaContaRequired  = "Selecciona fecha contable."
	MsgCantidadRequired    = "Ingresa cantidad."
	MsgCantidadInvalid     = "Cantidad inválida."
	MsgCantidadZero        = "Cantidad no puede ser 0."
	MsgCentroDestRequired  = "Selecciona centro destino."
	MsgAlmacenDestRequired = "Selecciona almacén destino."
	MsgDestinoEqualsOrigen = "Destino no puede ser igual al origen."
	MsgLifnrRequired       = "Ingresa LIFNR (proveedor)."
	MsgValorInvalid        = "Valor inválido."
)

// Validate aplica todas las reglas de negocio al movimiento y devuelve los errores por campo.
// Las reglas son independientes: todas se evalúan y contribuyen al mismo resultado.
func Validate(m *entity.Movement) entity.FieldErrors {
	var errs entity.FieldErrors

	// Contexto
	if m.Material == "" {
		errs.Set(entity.FieldMaterial, MsgMaterialRequired)
	}
	if m.Centro == "" {
		errs.Set(entity.FieldCentro, MsgCentroRequired)
	}
	if m.Almacen == "" {
		errs.Set(entity.FieldAlmacen, MsgAlmacenRequired)
	}

	// Movimiento
	if m.ClaseMov == 0 {
		errs.Set(entity.FieldClaseMov, MsgClaseMovRequired)
	}
	if m.FechaConta == "" {
		errs.Set(entity.FieldFechaConta, MsgFechaContaRequired)
	}

	// Cantidad
	if m.Cantidad == "" {
		errs.Set(entity.FieldCantidad, MsgCantidadRequired)
	} else if qty, ok := ParseNumber(m.Cantidad); !ok {
		errs.Set(entity.FieldCantidad, MsgCantidadInvalid)
	} else if qty.IsZero() {
		errs.Set(entity.FieldCantidad, MsgCantidadZero)
	}

	cls, _ := ResolveClass(m.ClaseMov)

	// Traslado: destino obligatorio y distinto del origen
	if cls.RequiresDestination {
		if m.CentroDestino == "" {
			errs.Set(entity.FieldCentroDestino, MsgCentroDestRequired)
		}
		if m.AlmacenDestino == "" {
			errs.Set(entity.FieldAlmacenDestino, MsgAlmacenDestRequired)
		}
		if m.CentroDestino != "" && m.AlmacenDestino != "" &&
			m.CentroDestino == m.Centro && m.AlmacenDestino == m.Almacen {
			errs.Set(entity.FieldAlmacenDestino, MsgDestinoEqualsOrigen)
		}
	}

	if cls.RequiresVendor && m.Lifnr == "" {
		errs.Set(entity.FieldLifnr, MsgLifnrRequired)
	}

	// Valor opcional, pero si viene debe ser numérico
	if m.Valor != "" {
		if _, ok := ParseNumber(m.Valor); !ok {
			errs.Set(entity.FieldValor, MsgValorInvalid)
		}
	}

	return errs
}

// ComputeStatus deriva el estado a partir de los errores. Nunca devuelve StatusDraft.
func ComputeStatus(errs entity.FieldErrors) entity.MovementStatus {
	if errs.IsEmpty() {
		return entity.StatusReady
	}
	return entity.StatusError
}

// Revalidate recalcula errores y estado del movimiento en sitio.
func Revalidate(m *entity.Movement) {
	m.Errors = Validate(m)
	m.Status = ComputeStatus(m.Errors)
}
