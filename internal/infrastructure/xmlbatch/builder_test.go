package xmlbatch_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/infrastructure/xmlbatch"
)

func fixedNow() time.Time { return time.Date(2024, 3, 1, 15, 4, 5, 0, time.UTC) }

func sampleQueue() []*entity.Movement {
	return []*entity.Movement{
		{ID: "a", ClaseMov: 311, ClaseMovDesc: "Traslado almacén→almacén", GrupoKardex: entity.GrupoTraslado,
			FechaConta: "2024-03-01", Material: "1004D", Centro: "0014", Almacen: "0001",
			CentroDestino: "0014", AlmacenDestino: "0002", Cantidad: "5", UM: "LB", Moneda: "GTQ",
			Status: entity.StatusReady},
		{ID: "b", ClaseMov: 101, GrupoKardex: entity.GrupoEntrada, FechaConta: "2024-03-01",
			Material: "1003P", Centro: "0014", Almacen: "0001", Cantidad: "2.5", Valor: "10.25",
			Lifnr: "P-1 & Cía", UM: "LB", Moneda: "GTQ", Status: entity.StatusReady},
	}
}

func TestBuild_EstructuraYHuella(t *testing.T) {
	b := xmlbatch.NewBuilder(fixedNow)
	batch, err := b.Build(sampleQueue(), entity.ContextState{Centro: "0014", Almacen: "0001", Material: "1004D"})
	require.NoError(t, err)

	assert.NotEmpty(t, batch.ID)
	assert.Equal(t, 2, batch.Count)
	assert.NotEmpty(t, batch.Digest)
	assert.True(t, bytes.HasPrefix(batch.XML, []byte("<?xml")))

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(batch.XML))
	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "LoteKardex", root.Tag)
	assert.Equal(t, batch.ID, root.SelectAttrValue("Id", ""))
	assert.Equal(t, "2", root.FindElement("Cabecera/CantidadMovimientos").Text())
	assert.Equal(t, "7.500", root.FindElement("Cabecera/TotalCantidad").Text())
	assert.Equal(t, "10.25", root.FindElement("Cabecera/TotalValor").Text())

	movs := root.FindElements("Movimientos/Movimiento")
	require.Len(t, movs, 2)
	assert.Equal(t, "a", movs[0].SelectAttrValue("id", ""))
	assert.Equal(t, "0002", movs[0].SelectElement("almacenDestino").Text())
	assert.Nil(t, movs[0].SelectElement("lifnr"), "campos vacíos no se emiten")
	assert.Equal(t, "P-1 & Cía", movs[1].SelectElement("lifnr").Text())

	assert.Equal(t, batch.Digest, root.SelectElement("Huella").Text())
}

func TestVerify_DetectaAlteraciones(t *testing.T) {
	batch, err := xmlbatch.NewBuilder(fixedNow).Build(sampleQueue(), entity.ContextState{})
	require.NoError(t, err)

	ok, err := xmlbatch.Verify(batch.XML)
	require.NoError(t, err)
	assert.True(t, ok)

	tampered := bytes.Replace(batch.XML, []byte("<cantidad>5</cantidad>"), []byte("<cantidad>50</cantidad>"), 1)
	require.NotEqual(t, batch.XML, tampered)
	ok, err = xmlbatch.Verify(tampered)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerify_DocumentoInvalido(t *testing.T) {
	_, err := xmlbatch.Verify([]byte("<Otro/>"))
	assert.Error(t, err)
}

func TestBuild_BandejaVacia(t *testing.T) {
	batch, err := xmlbatch.NewBuilder(fixedNow).Build(nil, entity.ContextState{})
	require.NoError(t, err)
	assert.Zero(t, batch.Count)
	ok, err := xmlbatch.Verify(batch.XML)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "envios")
	batch, err := xmlbatch.NewBuilder(fixedNow).Build(sampleQueue(), entity.ContextState{})
	require.NoError(t, err)

	path, err := xmlbatch.NewArchive(dir).Save(batch)
	require.NoError(t, err)
	assert.Equal(t, "lote-20240301T150405Z-"+batch.ID+".xml", filepath.Base(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, batch.XML, raw)
}
