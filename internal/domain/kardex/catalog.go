// Package kardex contiene las reglas de dominio de la captura de movimientos de kardex:
// tabla de clases de movimiento, validación de borradores, importación CSV y
// combinación de la bandeja. Todas las funciones son puras y sin estado compartido.
package kardex

import "github.com/jhoicas/kardex-captura/internal/domain/entity"

// movementClasses tabla estática de clases de movimiento.
var movementClasses = []entity.MovementClass{
	{Code: 101, Desc: "Compras", Grupo: entity.GrupoEntrada, RequiresVendor: true},
	{Code: 102, Desc: "Anulación compras", Grupo: entity.GrupoEntradaReversa, RequiresVendor: true},
	{Code: 161, Desc: "NC", Grupo: entity.GrupoEntrada, RequiresVendor: true},
	{Code: 162, Desc: "Anulaciones NC", Grupo: entity.GrupoEntradaReversa, RequiresVendor: true},

	{Code: 201, Desc: "Cargas a Centro de costo", Grupo: entity.GrupoCargoCentroCosto},
	{Code: 202, Desc: "Anulación cargas a centro de costo", Grupo: entity.GrupoCargoCentroCostoReversa},

	{Code: 251, Desc: "Consumo de venta tienda", Grupo: entity.GrupoSalida},
	{Code: 252, Desc: "Anulación consumo de venta tienda", Grupo: entity.GrupoSalidaReversa},

	{Code: 261, Desc: "Mov a orden CO", Grupo: entity.GrupoSalida},
	{Code: 262, Desc: "Consumo de producción de planta", Grupo: entity.GrupoSalida},
	{Code: 263, Desc: "Anulación consumo de producción planta", Grupo: entity.GrupoSalidaReversa},

	{Code: 301, Desc: "Traslado entre almacenes (a un paso)", Grupo: entity.GrupoTraslado, RequiresDestination: true},
	{Code: 302, Desc: "Anulación traslado entre almacenes", Grupo: entity.GrupoTrasladoReversa, RequiresDestination: true},
	{Code: 303, Desc: "Traslado entre almacenes (a dos pasos)", Grupo: entity.GrupoTraslado, RequiresDestination: true},
	{Code: 304, Desc: "Anulación traslado entre centros", Grupo: entity.GrupoTrasladoReversa, RequiresDestination: true},
	{Code: 305, Desc: "Confirmación traslados estadísticas", Grupo: entity.GrupoTraslado, RequiresDestination: true},

	{Code: 311, Desc: "Traslado entre almacenes (a un paso)", Grupo: entity.GrupoTraslado, RequiresDestination: true},
	{Code: 312, Desc: "Anulación traslado entre almacenes", Grupo: entity.GrupoTrasladoReversa, RequiresDestination: true},
	{Code: 313, Desc: "Traslado entre almacenes (a dos pasos)", Grupo: entity.GrupoTraslado, RequiresDestination: true},
	{Code: 314, Desc: "Anulación traslado entre centros", Grupo: entity.GrupoTrasladoReversa, RequiresDestination: true},
	{Code: 315, Desc: "Movimiento entre almacenes planta", Grupo: entity.GrupoTraslado, RequiresDestination: true},

	{Code: 601, Desc: "Facturación directa", Grupo: entity.GrupoSalida},
	{Code: 602, Desc: "Anulación factura directa", Grupo: entity.GrupoSalidaReversa},

	{Code: 641, Desc: "Traslados entre bodega y tienda", Grupo: entity.GrupoTraslado, RequiresDestination: true},
	{Code: 642, Desc: "Anulación traslados bodega y tienda", Grupo: entity.GrupoTrasladoReversa, RequiresDestination: true},

	{Code: 701, Desc: "Ajuste de inventario", Grupo: entity.GrupoAjuste},
	{Code: 702, Desc: "Anulación ajuste de inventario", Grupo: entity.GrupoAjusteReversa},

	{Code: 531, Desc: "Creación de orden de fabricación", Grupo: entity.GrupoEntrada},
	{Code: 532, Desc: "Anulación orden de fabricación", Grupo: entity.GrupoEntradaReversa},
}

var classByCode = func() map[int]entity.MovementClass {
	m := make(map[int]entity.MovementClass, len(movementClasses))
	for _, c := range movementClasses {
		m[c.Code] = c
	}
	return m
}()

// Catálogos mock del contexto operativo.
var (
	materials = []entity.CatalogItem{
		{Code: "1004D", Desc: "Queso Domino's", UM: "LB"},
		{Code: "1003P", Desc: "Pepperoni", UM: "LB"},
		{Code: "4002D", Desc: "Condimento Guajillo", UM: "LB"},
	}
	centros   = []string{"0014", "0015", "0016"}
	almacenes = []string{"0001", "0002", "0003", "0004"}
	monedas   = []string{"GTQ", "USD"}
)

// DefaultMoneda moneda de un borrador nuevo.
const DefaultMoneda = "GTQ"

// ResolveClass busca la clase por código. Devuelve false si el código es 0 o desconocido.
func ResolveClass(code int) (entity.MovementClass, bool) {
	if code == 0 {
		return entity.MovementClass{}, false
	}
	c, ok := classByCode[code]
	return c, ok
}

// MovementClasses devuelve una copia de la tabla para poblar selectores.
func MovementClasses() []entity.MovementClass {
	return append([]entity.MovementClass(nil), movementClasses...)
}

// Materials devuelve una copia del catálogo de materiales.
func Materials() []entity.CatalogItem {
	return append([]entity.CatalogItem(nil), materials...)
}

// FindMaterial busca un material por código.
func FindMaterial(code string) (entity.CatalogItem, bool) {
	for _, m := range materials {
		if m.Code == code {
			return m, true
		}
	}
	return entity.CatalogItem{}, false
}

// Centros devuelve los centros disponibles.
func Centros() []string { return append([]string(nil), centros...) }

// Almacenes devuelve los almacenes disponibles.
func Almacenes() []string { return append([]string(nil), almacenes...) }

// Monedas devuelve las monedas disponibles.
func Monedas() []string { return append([]string(nil), monedas...) }
