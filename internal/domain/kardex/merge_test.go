package kardex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kardex-captura/internal/domain"
	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/domain/kardex"
)

func line(id, doc, cantidad string) *entity.Movement {
	return &entity.Movement{
		ID:             id,
		NoDocumentoMat: doc,
		ClaseMov:       701,
		Material:       "1004D",
		FechaConta:     "2024-03-01",
		Cantidad:       cantidad,
		Valor:          "100",
		Lote:           "L1",
	}
}

func ids(list []*entity.Movement) []string {
	out := make([]string, 0, len(list))
	for _, m := range list {
		out = append(out, m.ID)
	}
	return out
}

func TestUniqueKey(t *testing.T) {
	assert.Equal(t, "D1|701|1004D|2024-03-01|5|100|L1", kardex.UniqueKey(line("a", "D1", "5")))
	assert.Equal(t, "||||||", kardex.UniqueKey(&entity.Movement{}), "sin clase la posición queda vacía")
}

func TestMerge_AppendDosLotesIdenticos(t *testing.T) {
	batch1 := []*entity.Movement{line("a", "D1", "5")}
	batch2 := []*entity.Movement{line("b", "D1", "5")}

	queue := kardex.Merge(batch1, nil, kardex.ImportAppend)
	queue = kardex.Merge(batch2, queue, kardex.ImportAppend)

	require.Len(t, queue, 1)
	assert.Equal(t, "b", queue[0].ID, "el importado más reciente va primero y gana")
}

func TestMerge_AppendImportadosPrimero(t *testing.T) {
	existing := []*entity.Movement{line("e1", "D1", "5"), line("e2", "D2", "5")}
	incoming := []*entity.Movement{line("i1", "D3", "5"), line("i2", "D1", "5")}

	got := kardex.Merge(incoming, existing, kardex.ImportAppend)
	assert.Equal(t, []string{"i1", "i2", "e2"}, ids(got))
}

func TestMerge_ReplaceDescartaExistentes(t *testing.T) {
	existing := []*entity.Movement{line("e1", "D1", "5"), line("e2", "D9", "1")}
	incoming := []*entity.Movement{line("i1", "D1", "5"), line("i2", "D1", "5"), line("i3", "D2", "5")}

	got := kardex.Merge(incoming, existing, kardex.ImportReplace)
	assert.Equal(t, []string{"i1", "i3"}, ids(got))
}

func TestMerge_DistintaCantidadNoEsDuplicado(t *testing.T) {
	got := kardex.Merge([]*entity.Movement{line("a", "D1", "5"), line("b", "D1", "6")}, nil, kardex.ImportAppend)
	assert.Len(t, got, 2)
}

func TestParseImportMode(t *testing.T) {
	m, err := kardex.ParseImportMode("")
	require.NoError(t, err)
	assert.Equal(t, kardex.ImportAppend, m)

	m, err = kardex.ParseImportMode(" REPLACE ")
	require.NoError(t, err)
	assert.Equal(t, kardex.ImportReplace, m)

	_, err = kardex.ParseImportMode("merge")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
