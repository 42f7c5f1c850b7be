package capture

import (
	"context"
	"io"
	"time"

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
)

// UploadDecoder convierte el archivo subido en texto UTF-8.
type UploadDecoder interface {
	Decode(r io.Reader) (string, error)
}

// BatchBuilder genera el lote de envío (XML + huella) de la bandeja.
type BatchBuilder interface {
	Build(queue []*entity.Movement, state entity.ContextState) (*entity.SubmissionBatch, error)
}

// BatchArchive guarda los lotes enviados y devuelve su ubicación.
type BatchArchive interface {
	Save(batch *entity.SubmissionBatch) (string, error)
}

// SummaryPDFGenerator genera el resumen imprimible de la bandeja.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, state entity.ContextState, queue []*entity.Movement, generatedAt time.Time) ([]byte, error)
}
