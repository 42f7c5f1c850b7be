package localstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/domain/kardex"
	"github.com/jhoicas/kardex-captura/internal/infrastructure/localstore"
)

func newStore(t *testing.T) (*localstore.Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := localstore.New(dir, zerolog.Nop())
	require.NoError(t, err)
	return s, dir
}

func TestQueue_RoundTripConservaOrdenYCampos(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	text := "claseMov,material,centro,almacen,cantidad,fechaConta,centroDestino,almacenDestino,lote\n" +
		"311,1004D,0014,0001,5,2024-03-01,0015,0002,L1\n" +
		"101,1003P,0014,0001,2.5,1/3/2024,,,L2\n" +
		"701,4002D,0016,0003,0,2024-03-05,,,\n"
	queue := kardex.ParseCSV(text, entity.ContextState{UM: "LB", MonedaDefault: "GTQ"}).Movements
	require.Len(t, queue, 3)

	require.NoError(t, s.SaveQueue(ctx, queue))
	got, err := s.LoadQueue(ctx)
	require.NoError(t, err)

	require.Len(t, got, len(queue))
	for i := range queue {
		assert.Equal(t, *queue[i], *got[i], "movimiento %d", i)
	}
}

func TestQueue_SinArchivoDevuelveVacia(t *testing.T) {
	s, _ := newStore(t)
	got, err := s.LoadQueue(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestQueue_BlobCorruptoDevuelveVacia(t *testing.T) {
	s, dir := newStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, localstore.KeyQueue+".json"), []byte("{no-json"), 0o644))

	got, err := s.LoadQueue(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestContext_RoundTripEInicial(t *testing.T) {
	s, dir := newStore(t)
	ctx := context.Background()
	initial := entity.ContextState{MonedaDefault: "GTQ"}

	got, err := s.LoadContext(ctx, initial)
	require.NoError(t, err)
	assert.Equal(t, initial, got)

	state := entity.ContextState{Centro: "0014", Almacen: "0001", Material: "1004D", MatDesc: "Queso Domino's", UM: "LB", MonedaDefault: "USD"}
	require.NoError(t, s.SaveContext(ctx, state))
	got, err = s.LoadContext(ctx, initial)
	require.NoError(t, err)
	assert.Equal(t, state, got)

	require.NoError(t, os.WriteFile(filepath.Join(dir, localstore.KeyContext+".json"), []byte("[1,2"), 0o644))
	got, err = s.LoadContext(ctx, initial)
	require.NoError(t, err)
	assert.Equal(t, initial, got)
}

func TestQueue_ErroresPersistidosConClavesOriginales(t *testing.T) {
	s, dir := newStore(t)
	m := &entity.Movement{ID: "x", Status: entity.StatusError}
	m.Errors.Set(entity.FieldAlmacenDestino, kardex.MsgDestinoEqualsOrigen)
	require.NoError(t, s.SaveQueue(context.Background(), []*entity.Movement{m}))

	raw, err := os.ReadFile(filepath.Join(dir, localstore.KeyQueue+".json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"errors":{"almacenDestino":"Destino no puede ser igual al origen."}`)
}
