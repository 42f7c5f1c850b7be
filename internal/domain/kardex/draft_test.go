package kardex_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/domain/kardex"
)

func TestNewDraftForContext(t *testing.T) {
	ctx := entity.ContextState{Centro: "0014", Almacen: "0001", Material: "1003P", MatDesc: "Pepperoni", UM: "LB", MonedaDefault: "USD"}
	d := kardex.NewDraftForContext(time.Date(2024, 3, 1, 8, 0, 0, 0, time.Local), ctx)

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "2024-03-01", d.FechaConta)
	assert.Equal(t, 0, d.ClaseMov)
	assert.Equal(t, entity.GrupoOtros, d.GrupoKardex)
	assert.Equal(t, entity.StatusDraft, d.Status)
	assert.Equal(t, "1003P", d.Material)
	assert.Equal(t, "USD", d.Moneda)
}

func TestApplyClass_LimpiaCamposQueNoAplican(t *testing.T) {
	d := &entity.Movement{CentroDestino: "0015", AlmacenDestino: "0002", Lifnr: "100", ProveedorDesc: "Prov"}

	kardex.ApplyClass(d, 311)
	assert.Equal(t, "Traslado entre almacenes (a un paso)", d.ClaseMovDesc)
	assert.Equal(t, entity.GrupoTraslado, d.GrupoKardex)
	assert.Equal(t, "0015", d.CentroDestino, "311 conserva destino")
	assert.Empty(t, d.Lifnr, "311 no requiere proveedor")

	kardex.ApplyClass(d, 0)
	assert.Empty(t, d.ClaseMovDesc)
	assert.Equal(t, entity.GrupoOtros, d.GrupoKardex)
	assert.Empty(t, d.CentroDestino)
	assert.Empty(t, d.AlmacenDestino)
}

func TestDuplicate(t *testing.T) {
	orig := validMovement()
	orig.NoDocumentoMat = "4917406604"
	kardex.Revalidate(orig)

	c := kardex.Duplicate(orig)
	assert.NotEqual(t, orig.ID, c.ID)
	assert.Empty(t, c.NoDocumentoMat)
	assert.Equal(t, entity.StatusDraft, c.Status)
	assert.True(t, c.Errors.IsEmpty())
	assert.Equal(t, orig.Cantidad, c.Cantidad)
	assert.Equal(t, "4917406604", orig.NoDocumentoMat, "el original no se modifica")
}

func TestSummarize(t *testing.T) {
	a := validMovement()
	a.Cantidad = "10.5"
	a.Valor = "100.255"
	kardex.Revalidate(a)

	b := validMovement()
	b.Cantidad = "abc"
	kardex.Revalidate(b)

	s := kardex.Summarize([]*entity.Movement{a, b})
	assert.Equal(t, 2, s.Count)
	assert.Equal(t, 1, s.ReadyCount)
	assert.Equal(t, 1, s.ErrorsCount)
	assert.True(t, s.TotalQty.Equal(decimal.RequireFromString("10.5")))
	assert.True(t, s.TotalVal.Equal(decimal.RequireFromString("100.26")))
	assert.False(t, s.CanSubmit)

	require.False(t, kardex.Summarize(nil).CanSubmit, "bandeja vacía no se puede registrar")
}
