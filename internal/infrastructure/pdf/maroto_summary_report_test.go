package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/infrastructure/pdf"
)

func TestGenerateSummaryPDF(t *testing.T) {
	queue := []*entity.Movement{
		{ID: "a", ClaseMov: 101, ClaseMovDesc: "Entrada de mercancías", GrupoKardex: entity.GrupoEntrada,
			FechaConta: "2024-03-01", Material: "1004D", Centro: "0014", Almacen: "0001",
			Cantidad: "5", UM: "LB", Valor: "10", Moneda: "GTQ", Status: entity.StatusReady},
		{ID: "b", GrupoKardex: entity.GrupoOtros, Status: entity.StatusError},
	}
	gen := pdf.NewMarotoSummaryReport("")

	out, err := gen.GenerateSummaryPDF(context.Background(),
		entity.ContextState{Centro: "0014", Almacen: "0001"}, queue, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateSummaryPDF_BandejaVacia(t *testing.T) {
	out, err := pdf.NewMarotoSummaryReport("Resumen").GenerateSummaryPDF(
		context.Background(), entity.ContextState{}, nil, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
