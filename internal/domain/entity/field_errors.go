package entity

import "encoding/json"

// Field nombre de un campo validable del movimiento (coincide con la clave JSON).
type Field string

const (
	FieldMaterial       Field = "material"
	FieldCentro         Field = "centro"
	FieldAlmacen        Field = "almacen"
	FieldClaseMov       Field = "claseMov"
	FieldFechaConta     Field = "fechaConta"
	FieldCantidad       Field = "cantidad"
	FieldCentroDestino  Field = "centroDestino"
	FieldAlmacenDestino Field = "almacenDestino"
	FieldLifnr          Field = "lifnr"
	FieldValor          Field = "valor"
)

// Fields lista los campos validables en orden de formulario.
var Fields = []Field{
	FieldMaterial, FieldCentro, FieldAlmacen,
	FieldClaseMov, FieldFechaConta,
	FieldCantidad,
	FieldCentroDestino, FieldAlmacenDestino,
	FieldLifnr,
	FieldValor,
}

// FieldErrors mensajes de validación por campo. Un campo vacío significa sin error.
// Se serializa como objeto {campo: mensaje} omitiendo los campos sin error.
type FieldErrors struct {
	Material       string `json:"material,omitempty"`
	Centro         string `json:"centro,omitempty"`
	Almacen        string `json:"almacen,omitempty"`
	ClaseMov       string `json:"claseMov,omitempty"`
	FechaConta     string `json:"fechaConta,omitempty"`
	Cantidad       string `json:"cantidad,omitempty"`
	CentroDestino  string `json:"centroDestino,omitempty"`
	AlmacenDestino string `json:"almacenDestino,omitempty"`
	Lifnr          string `json:"lifnr,omitempty"`
	Valor          string `json:"valor,omitempty"`
}

func (e *FieldErrors) slot(f Field) *string {
	switch f {
	case FieldMaterial:
		return &e.Material
	case FieldCentro:
		return &e.Centro
	case FieldAlmacen:
		return &e.Almacen
	case FieldClaseMov:
		return &e.ClaseMov
	case FieldFechaConta:
		return &e.FechaConta
	case FieldCantidad:
		return &e.Cantidad
	case FieldCentroDestino:
		return &e.CentroDestino
	case FieldAlmacenDestino:
		return &e.AlmacenDestino
	case FieldLifnr:
		return &e.Lifnr
	case FieldValor:
		return &e.Valor
	}
	return nil
}

// Set asigna (o reemplaza) el mensaje de un campo. Campos desconocidos se ignoran.
func (e *FieldErrors) Set(f Field, msg string) {
	if p := e.slot(f); p != nil {
		*p = msg
	}
}

// Get devuelve el mensaje de un campo ("" si no tiene error).
func (e FieldErrors) Get(f Field) string {
	if p := e.slot(f); p != nil {
		return *p
	}
	return ""
}

// Len cantidad de campos con error.
func (e FieldErrors) Len() int {
	n := 0
	for _, f := range Fields {
		if e.Get(f) != "" {
			n++
		}
	}
	return n
}

// IsEmpty indica si no hay errores.
func (e FieldErrors) IsEmpty() bool { return e == FieldErrors{} }

// Map devuelve los errores como mapa campo → mensaje.
func (e FieldErrors) Map() map[Field]string {
	out := make(map[Field]string, len(Fields))
	for _, f := range Fields {
		if msg := e.Get(f); msg != "" {
			out[f] = msg
		}
	}
	return out
}

// UnmarshalJSON acepta el objeto persistido; claves desconocidas se descartan.
func (e *FieldErrors) UnmarshalJSON(data []byte) error {
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = FieldErrors{}
	for k, v := range raw {
		e.Set(Field(k), v)
	}
	return nil
}
