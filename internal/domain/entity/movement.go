package entity

// MovementStatus estado derivado de un movimiento en la bandeja.
type MovementStatus string

const (
	StatusDraft MovementStatus = "draft" // aún no validado
	StatusReady MovementStatus = "ready"
	StatusError MovementStatus = "error"
)

// Movement borrador de un movimiento de kardex. Las etiquetas JSON conservan la forma
// persistida de la bandeja (kardex_queue_v1).
type Movement struct {
	ID string `json:"id"`

	// Movimiento
	ClaseMov       int         `json:"claseMov"` // 0 = sin clase
	ClaseMovDesc   string      `json:"claseMovDesc"`
	GrupoKardex    GrupoKardex `json:"grupoKardex"`
	FechaConta     string      `json:"fechaConta"` // yyyy-mm-dd
	NoDocumentoMat string      `json:"noDocumentoMat"`
	NoPedido       string      `json:"noPedido"`

	// Contexto / dimensiones
	Material string `json:"material"`
	MatDesc  string `json:"matDesc"`
	Centro   string `json:"centro"`
	Almacen  string `json:"almacen"`

	// Destino (traslados)
	CentroDestino  string `json:"centroDestino"`
	AlmacenDestino string `json:"almacenDestino"`

	// Cantidades (texto tal como se capturó)
	Cantidad string `json:"cantidad"`
	UM       string `json:"um"`
	Valor    string `json:"valor"`
	Moneda   string `json:"moneda"`

	// Trazabilidad
	Lote     string `json:"lote"`
	FechaFab string `json:"fechaFab"` // yyyy-mm-dd
	Sgtxt    string `json:"sgtxt"`

	// Proveedor
	Lifnr         string `json:"lifnr"`
	ProveedorDesc string `json:"proveedorDesc"`

	Status MovementStatus `json:"status"`
	Errors FieldErrors    `json:"errors"`
}

// Clone devuelve una copia independiente del movimiento.
func (m *Movement) Clone() *Movement {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// ApplyContext copia en el movimiento las dimensiones del contexto operativo.
func (m *Movement) ApplyContext(ctx ContextState) {
	m.Material = ctx.Material
	m.MatDesc = ctx.MatDesc
	m.Centro = ctx.Centro
	m.Almacen = ctx.Almacen
	m.UM = ctx.UM
	m.Moneda = ctx.MonedaDefault
}
