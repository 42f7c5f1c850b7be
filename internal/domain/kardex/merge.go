package kardex

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/kardex-captura/internal/domain"
	"github.com/jhoicas/kardex-captura/internal/domain/entity"
)

// ImportMode cómo se combinan los movimientos importados con la bandeja.
type ImportMode string

const (
	ImportAppend  ImportMode = "append"  // importados primero, luego la bandeja existente
	ImportReplace ImportMode = "replace" // descarta la bandeja existente
)

// ParseImportMode valida el modo; vacío equivale a append.
func ParseImportMode(s string) (ImportMode, error) {
	switch ImportMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ImportAppend:
		return ImportAppend, nil
	case ImportReplace:
		return ImportReplace, nil
	}
	return "", fmt.Errorf("%w: modo de importación %q", domain.ErrInvalidInput, s)
}

// UniqueKey identidad de negocio de una línea de movimiento: documento, clase, material,
// fecha, cantidad, valor y lote. Dos movimientos distintos con los mismos siete campos colisionan.
func UniqueKey(m *entity.Movement) string {
	clase := ""
	if m.ClaseMov != 0 {
		clase = strconv.Itoa(m.ClaseMov)
	}
	return strings.Join([]string{
		m.NoDocumentoMat, clase, m.Material, m.FechaConta, m.Cantidad, m.Valor, m.Lote,
	}, "|")
}

// Merge combina importados con la bandeja existente según el modo y elimina duplicados
// por UniqueKey. Gana la primera aparición; los duplicados posteriores se descartan.
func Merge(incoming, existing []*entity.Movement, mode ImportMode) []*entity.Movement {
	combined := make([]*entity.Movement, 0, len(incoming)+len(existing))
	combined = append(combined, incoming...)
	if mode != ImportReplace {
		combined = append(combined, existing...)
	}
	return Dedupe(combined)
}

// Dedupe conserva la primera aparición de cada UniqueKey preservando el orden.
func Dedupe(list []*entity.Movement) []*entity.Movement {
	seen := make(map[string]struct{}, len(list))
	out := make([]*entity.Movement, 0, len(list))
	for _, m := range list {
		if m == nil {
			continue
		}
		k := UniqueKey(m)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, m)
	}
	return out
}
