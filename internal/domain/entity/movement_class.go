package entity

// GrupoKardex agrupa las clases de movimiento en categorías del kardex.
// Es un conjunto cerrado: cualquier valor fuera de la lista se trata como GrupoOtros.
type GrupoKardex string

const (
	GrupoEntrada                 GrupoKardex = "Entrada"
	GrupoEntradaReversa          GrupoKardex = "Entrada_Reversa"
	GrupoSalida                  GrupoKardex = "Salida"
	GrupoSalidaReversa           GrupoKardex = "Salida_Reversa"
	GrupoTraslado                GrupoKardex = "Traslado"
	GrupoTrasladoReversa         GrupoKardex = "Traslado_Reversa"
	GrupoAjuste                  GrupoKardex = "Ajuste"
	GrupoAjusteReversa           GrupoKardex = "Ajuste_Reversa"
	GrupoCargoCentroCosto        GrupoKardex = "Cargo_CentroCosto"
	GrupoCargoCentroCostoReversa GrupoKardex = "Cargo_CentroCosto_Reversa"
	GrupoOtros                   GrupoKardex = "Otros"
)

// GruposKardex lista todos los grupos válidos en orden de presentación.
var GruposKardex = []GrupoKardex{
	GrupoEntrada,
	GrupoEntradaReversa,
	GrupoSalida,
	GrupoSalidaReversa,
	GrupoTraslado,
	GrupoTrasladoReversa,
	GrupoAjuste,
	GrupoAjusteReversa,
	GrupoCargoCentroCosto,
	GrupoCargoCentroCostoReversa,
	GrupoOtros,
}

// Valid indica si g pertenece al conjunto cerrado de grupos.
func (g GrupoKardex) Valid() bool {
	for _, v := range GruposKardex {
		if g == v {
			return true
		}
	}
	return false
}

// IsReversal indica si el grupo es una anulación.
func (g GrupoKardex) IsReversal() bool {
	switch g {
	case GrupoEntradaReversa, GrupoSalidaReversa, GrupoTrasladoReversa,
		GrupoAjusteReversa, GrupoCargoCentroCostoReversa:
		return true
	}
	return false
}

// ParseGrupoKardex convierte s en un grupo; si no coincide exactamente devuelve fallback.
func ParseGrupoKardex(s string, fallback GrupoKardex) GrupoKardex {
	g := GrupoKardex(s)
	if g.Valid() {
		return g
	}
	return fallback
}

// MovementClass representa una clase de movimiento (p. ej. 101 Compras) y sus requisitos.
type MovementClass struct {
	Code                int         `json:"code"`
	Desc                string      `json:"desc"`
	Grupo               GrupoKardex `json:"grupo"`
	RequiresVendor      bool        `json:"requiresVendor,omitempty"`
	RequiresDestination bool        `json:"requiresDestination,omitempty"` // traslados
}

// CatalogItem material del catálogo (código, descripción y unidad de medida base).
type CatalogItem struct {
	Code string `json:"code"`
	Desc string `json:"desc"`
	UM   string `json:"um"`
}
