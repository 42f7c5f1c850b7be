package dto

import (
	"time"

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/domain/kardex"
)

// CatalogsResponse catálogos de solo lectura para poblar la captura.
type CatalogsResponse struct {
	Classes   []entity.MovementClass `json:"classes"`
	Grupos    []entity.GrupoKardex   `json:"grupos"`
	Materials []entity.CatalogItem   `json:"materials"`
	Centros   []string               `json:"centros"`
	Almacenes []string               `json:"almacenes"`
	Monedas   []string               `json:"monedas"`
}

// ContextResponse contexto operativo y si está completo para capturar.
type ContextResponse struct {
	Context entity.ContextState `json:"context"`
	Ready   bool                `json:"ready"`
}

// ContextPatchRequest cambios parciales al contexto. Los campos nil no se tocan.
// matDesc y um se derivan del material.
type ContextPatchRequest struct {
	Centro        *string `json:"centro,omitempty"`
	Almacen       *string `json:"almacen,omitempty"`
	Material      *string `json:"material,omitempty"`
	MonedaDefault *string `json:"monedaDefault,omitempty"`
}

// DraftResponse borrador actual.
type DraftResponse struct {
	Draft     *entity.Movement `json:"draft"`
	EditingID string           `json:"editingId,omitempty"`
	CanWork   bool             `json:"canWork"`
}

// DraftPatchRequest cambios parciales al borrador. La clase se cambia con ApplyClassRequest
// y las dimensiones del contexto no se editan aquí.
type DraftPatchRequest struct {
	FechaConta     *string `json:"fechaConta,omitempty"`
	NoDocumentoMat *string `json:"noDocumentoMat,omitempty"`
	NoPedido       *string `json:"noPedido,omitempty"`
	CentroDestino  *string `json:"centroDestino,omitempty"`
	AlmacenDestino *string `json:"almacenDestino,omitempty"`
	Cantidad       *string `json:"cantidad,omitempty"`
	Valor          *string `json:"valor,omitempty"`
	Moneda         *string `json:"moneda,omitempty"`
	Lote           *string `json:"lote,omitempty"`
	FechaFab       *string `json:"fechaFab,omitempty"`
	Sgtxt          *string `json:"sgtxt,omitempty"`
	Lifnr          *string `json:"lifnr,omitempty"`
	ProveedorDesc  *string `json:"proveedorDesc,omitempty"`
}

// ApplyClassRequest clase a aplicar al borrador; 0 limpia la clase.
type ApplyClassRequest struct {
	ClaseMov int `json:"claseMov"`
}

// DraftStoreResponse movimiento guardado en la bandeja y el borrador que lo reemplaza.
type DraftStoreResponse struct {
	Movement *entity.Movement `json:"movement"`
	Draft    DraftResponse    `json:"draft"`
}

// QueueResponse bandeja con sus totales.
type QueueResponse struct {
	Items   []*entity.Movement `json:"items"`
	Summary kardex.Summary     `json:"summary"`
}

// ImportResponse resultado de una importación aplicada (o rechazada) sobre la bandeja.
type ImportResponse struct {
	Mode              kardex.ImportMode `json:"mode"`
	Applied           bool              `json:"applied"`
	Imported          int               `json:"imported"`
	Skipped           int               `json:"skipped"`
	DuplicatesDropped int               `json:"duplicatesDropped"`
	Errors            []string          `json:"errors"`
	QueueSize         int               `json:"queueSize"`
}

// ImportPreviewResponse importación en espera de confirmación.
type ImportPreviewResponse struct {
	ID        string             `json:"id"`
	ExpiresAt time.Time          `json:"expiresAt"`
	Imported  int                `json:"imported"`
	Skipped   int                `json:"skipped"`
	Errors    []string           `json:"errors"`
	Movements []*entity.Movement `json:"movements"`
}

// ImportCommitRequest modo con el que se confirma una vista previa.
type ImportCommitRequest struct {
	Mode string `json:"mode"`
}

// SubmitResponse acuse del envío de la bandeja.
type SubmitResponse struct {
	BatchID   string         `json:"batchId"`
	CreatedAt time.Time      `json:"createdAt"`
	Count     int            `json:"count"`
	Digest    string         `json:"digest"`
	Path      string         `json:"path"`
	Cleared   bool           `json:"cleared"`
	Summary   kardex.Summary `json:"summary"`
}
