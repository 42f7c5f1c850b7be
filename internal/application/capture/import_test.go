package capture_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-captura/internal/application/capture"
	"github.com/jhoicas/kardex-captura/internal/domain"
	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/domain/kardex"
)

const importCSV = "claseMov;material;centro;almacen;cantidad;fechaConta;noDocumentoMat\n" +
	"701;1004D;0014;0001;5;1/3/2024;D-1\n" +
	"701;1004D;0014;0001;6;2024-03-02;D-2\n"

func TestImport_AppendDosVecesNoDuplica(t *testing.T) {
	e := newEnv(t, capture.Config{})
	ctx := context.Background()

	res, err := e.uc.Import(ctx, strings.NewReader(importCSV), "append")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, 2, res.Imported)
	assert.Zero(t, res.DuplicatesDropped)
	assert.Equal(t, 2, res.QueueSize)

	res, err = e.uc.Import(ctx, strings.NewReader(importCSV), "")
	require.NoError(t, err)
	assert.Equal(t, kardex.ImportAppend, res.Mode)
	assert.Equal(t, 2, res.DuplicatesDropped)
	assert.Equal(t, 2, res.QueueSize)

	q := e.uc.Queue(ctx).Items
	require.Len(t, q, 2)
	assert.Equal(t, "2024-03-01", q[0].FechaConta)
	assert.Equal(t, entity.StatusReady, q[0].Status)
	assert.Equal(t, "GTQ", q[0].Moneda)
}

func TestImport_ReplaceDescartaBandeja(t *testing.T) {
	e := newEnv(t, capture.Config{})
	ctx := context.Background()
	readyContext(t, e.uc)
	m := addValid(t, e.uc, "99")
	_, err := e.uc.EditQueued(ctx, m.ID)
	require.NoError(t, err)

	res, err := e.uc.Import(ctx, strings.NewReader(importCSV), "replace")
	require.NoError(t, err)
	assert.Equal(t, 2, res.QueueSize)

	for _, it := range e.uc.Queue(ctx).Items {
		assert.NotEqual(t, m.ID, it.ID)
	}
	assert.Empty(t, e.uc.Draft(ctx).EditingID, "la fila en edición ya no existe")
}

func TestImport_ErrorEstructuralNoCambiaBandeja(t *testing.T) {
	e := newEnv(t, capture.Config{})
	ctx := context.Background()
	readyContext(t, e.uc)
	addValid(t, e.uc, "5")

	res, err := e.uc.Import(ctx, strings.NewReader("claseMov,material,centro,almacen,fechaConta\n701,1004D,0014,0001,2024-03-01\n"), "replace")
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.Zero(t, res.Imported)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "cantidad")
	assert.Len(t, e.uc.Queue(ctx).Items, 1)
}

func TestImport_ArchivoIlegible(t *testing.T) {
	e := newEnv(t, capture.Config{})
	_, err := e.uc.Import(context.Background(), strings.NewReader("PK\x03\x04\x00\x00"), "append")
	assert.ErrorIs(t, err, domain.ErrUnreadableFile)
}

func TestImport_ModoInvalido(t *testing.T) {
	e := newEnv(t, capture.Config{})
	_, err := e.uc.Import(context.Background(), strings.NewReader(importCSV), "merge")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// blockingReader bloquea la primera lectura hasta que se cierre release.
type blockingReader struct {
	started chan struct{}
	release chan struct{}
	r       io.Reader
}

func (b *blockingReader) Read(p []byte) (int, error) {
	select {
	case <-b.started:
	default:
		close(b.started)
		<-b.release
	}
	return b.r.Read(p)
}

func TestImport_UnaALaVez(t *testing.T) {
	e := newEnv(t, capture.Config{})
	ctx := context.Background()

	br := &blockingReader{started: make(chan struct{}), release: make(chan struct{}), r: strings.NewReader(importCSV)}
	done := make(chan error, 1)
	go func() {
		_, err := e.uc.Import(ctx, br, "append")
		done <- err
	}()
	<-br.started

	_, err := e.uc.Import(ctx, strings.NewReader(importCSV), "append")
	assert.ErrorIs(t, err, domain.ErrImportInProgress)
	_, err = e.uc.PreviewImport(ctx, strings.NewReader(importCSV))
	assert.ErrorIs(t, err, domain.ErrImportInProgress)

	close(br.release)
	require.NoError(t, <-done)

	_, err = e.uc.Import(ctx, strings.NewReader(importCSV), "append")
	assert.NoError(t, err)
}

func TestPreviewYCommit(t *testing.T) {
	e := newEnv(t, capture.Config{})
	ctx := context.Background()

	p, err := e.uc.PreviewImport(ctx, strings.NewReader(importCSV+"abc;1004D;0014;0001;1;2024-03-01;D-3\n"))
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, 2, p.Imported)
	assert.Equal(t, 1, p.Skipped)
	assert.Equal(t, []string{"Fila 4: claseMov inválida."}, p.Errors)
	assert.True(t, p.ExpiresAt.After(fixedNow()))
	assert.Empty(t, e.uc.Queue(ctx).Items, "la vista previa no toca la bandeja")

	res, err := e.uc.CommitImport(ctx, p.ID, "append")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Len(t, e.uc.Queue(ctx).Items, 2)

	_, err = e.uc.CommitImport(ctx, p.ID, "append")
	assert.ErrorIs(t, err, domain.ErrPreviewExpired)
	_, err = e.uc.CommitImport(ctx, "desconocido", "append")
	assert.ErrorIs(t, err, domain.ErrPreviewExpired)
}
