package entity

// ContextState contexto operativo (centro, almacén, material y moneda) que se aplica a los borradores.
type ContextState struct {
	Centro        string `json:"centro"`
	Almacen       string `json:"almacen"`
	Material      string `json:"material"`
	MatDesc       string `json:"matDesc"`
	UM            string `json:"um"`
	MonedaDefault string `json:"monedaDefault"`
}

// Ready indica si centro, almacén y material están seleccionados.
func (c ContextState) Ready() bool {
	return c.Centro != "" && c.Almacen != "" && c.Material != ""
}
