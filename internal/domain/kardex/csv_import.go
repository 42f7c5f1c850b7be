package kardex

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
)

// MaxImportErrors tope de mensajes de error por fila devueltos en una importación.
const MaxImportErrors = 20

// Mensajes de errores estructurales de la importación.
const (
	MsgCSVNoRows          = "El CSV no contiene filas de datos."
	MsgCSVMissingColumns  = "Faltan columnas requeridas en CSV: %s"
	MsgCSVInvalidClaseMov = "Fila %d: claseMov inválida."
)

// ImportResult resultado de interpretar un CSV de movimientos.
type ImportResult struct {
	Movements []*entity.Movement `json:"movements"`
	Imported  int                `json:"imported"`
	Skipped   int                `json:"skipped"`
	Errors    []string           `json:"errors"`
}

// column columna lógica del CSV con sus encabezados aceptados.
type column struct {
	label   string
	aliases []string
}

var (
	colClaseMov       = column{"claseMov", []string{"claseMov"}}
	colClaseMovDesc   = column{"claseMovDesc", []string{"claseMovDesc"}}
	colGrupoKardex    = column{"grupoKardex", []string{"grupoKardex"}}
	colFechaConta     = column{"fechaConta", []string{"fechaConta"}}
	colNoDocumentoMat = column{"noDocumentoMat", []string{"noDocumentoMat"}}
	colNoPedido       = column{"noPedido", []string{"noPedido"}}
	colMaterial       = column{"material", []string{"material"}}
	colMatDesc        = column{"matDesc", []string{"matDesc"}}
	colCentro         = column{"centro/centroLogistico", []string{"centro", "centroLogistico"}}
	colAlmacen        = column{"almacen", []string{"almacen"}}
	colCentroDestino  = column{"centroDestino", []string{"centroDestino"}}
	colAlmacenDestino = column{"almacenDestino", []string{"almacenDestino"}}
	colCantidad       = column{"cantidad", []string{"cantidad"}}
	colUM             = column{"um", []string{"um"}}
	colValor          = column{"valor", []string{"valor"}}
	colMoneda         = column{"moneda", []string{"moneda"}}
	colLote           = column{"lote", []string{"lote"}}
	colFechaFab       = column{"fechaFab", []string{"fechaFab"}}
	colSgtxt          = column{"sgtxt", []string{"sgtxt"}}
	colLifnr          = column{"lifnr", []string{"lifnr"}}
	colProveedorDesc  = column{"proveedorDesc", []string{"proveedorDesc"}}

	requiredColumns = []column{colClaseMov, colMaterial, colCentro, colAlmacen, colCantidad, colFechaConta}
)

var (
	lineBreakRegex   = regexp.MustCompile(`\r?\n`)
	headerStripRegex = regexp.MustCompile(`[\s_\-.]`)
)

// ParseCSV interpreta el texto de un CSV de movimientos. defaults aporta la unidad y la
// moneda para filas que no las traen. Los errores estructurales (sin filas, columnas
// faltantes) devuelven cero movimientos; las filas con claseMov inválida se omiten y se
// reportan con su número de línea. Cada movimiento sale validado.
func ParseCSV(text string, defaults entity.ContextState) ImportResult {
	lines := splitLines(strings.TrimPrefix(text, "\ufeff"))
	if len(lines) <= 1 {
		return ImportResult{Movements: []*entity.Movement{}, Errors: []string{MsgCSVNoRows}}
	}

	delimiter := DetectDelimiter(lines[0])
	idx := newHeaderIndex(SplitCSVLine(lines[0], delimiter))

	var missing []string
	for _, req := range requiredColumns {
		if !idx.has(req) {
			missing = append(missing, req.label)
		}
	}
	if len(missing) > 0 {
		return ImportResult{
			Movements: []*entity.Movement{},
			Errors:    []string{fmt.Sprintf(MsgCSVMissingColumns, strings.Join(missing, ", "))},
		}
	}

	movements := make([]*entity.Movement, 0, len(lines)-1)
	var errs []string

	for row := 1; row < len(lines); row++ {
		lineNumber := row + 1
		cells := SplitCSVLine(lines[row], delimiter)

		claseMov, ok := parseClassCode(idx.cell(cells, colClaseMov))
		if !ok {
			errs = append(errs, fmt.Sprintf(MsgCSVInvalidClaseMov, lineNumber))
			continue
		}

		cls, found := ResolveClass(claseMov)
		fallbackGrupo := entity.GrupoOtros
		if found {
			fallbackGrupo = cls.Grupo
		}

		m := &entity.Movement{
			ID:             uuid.New().String(),
			ClaseMov:       claseMov,
			ClaseMovDesc:   firstNonEmpty(idx.cell(cells, colClaseMovDesc), cls.Desc),
			GrupoKardex:    entity.ParseGrupoKardex(idx.cell(cells, colGrupoKardex), fallbackGrupo),
			FechaConta:     NormalizeDate(idx.cell(cells, colFechaConta)),
			NoDocumentoMat: idx.cell(cells, colNoDocumentoMat),
			NoPedido:       idx.cell(cells, colNoPedido),
			Material:       idx.cell(cells, colMaterial),
			MatDesc:        idx.cell(cells, colMatDesc),
			Centro:         idx.cell(cells, colCentro),
			Almacen:        idx.cell(cells, colAlmacen),
			CentroDestino:  idx.cell(cells, colCentroDestino),
			AlmacenDestino: idx.cell(cells, colAlmacenDestino),
			Cantidad:       NormalizeNumeric(idx.cell(cells, colCantidad)),
			UM:             firstNonEmpty(idx.cell(cells, colUM), defaults.UM),
			Valor:          NormalizeNumeric(idx.cell(cells, colValor)),
			Moneda:         firstNonEmpty(idx.cell(cells, colMoneda), defaults.MonedaDefault),
			Lote:           idx.cell(cells, colLote),
			FechaFab:       NormalizeDate(idx.cell(cells, colFechaFab)),
			Sgtxt:          idx.cell(cells, colSgtxt),
			Lifnr:          idx.cell(cells, colLifnr),
			ProveedorDesc:  idx.cell(cells, colProveedorDesc),
		}
		Revalidate(m)
		movements = append(movements, m)
	}

	if len(errs) > MaxImportErrors {
		errs = errs[:MaxImportErrors]
	}
	if errs == nil {
		errs = []string{}
	}
	return ImportResult{
		Movements: movements,
		Imported:  len(movements),
		Skipped:   len(lines) - 1 - len(movements),
		Errors:    errs,
	}
}

// DetectDelimiter elige ';' si aparece más veces que ',' en el encabezado; si no, ','.
func DetectDelimiter(header string) rune {
	if strings.Count(header, ";") > strings.Count(header, ",") {
		return ';'
	}
	return ','
}

// SplitCSVLine separa una línea respetando comillas: '""' dentro de comillas es una
// comilla literal y el delimitador entre comillas no separa. Los valores se recortan.
func SplitCSVLine(line string, delimiter rune) []string {
	var out []string
	var current strings.Builder
	inQuotes := false
	rs := []rune(line)

	for i := 0; i < len(rs); i++ {
		ch := rs[i]
		if ch == '"' {
			if inQuotes && i+1 < len(rs) && rs[i+1] == '"' {
				current.WriteRune('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
			continue
		}
		if ch == delimiter && !inQuotes {
			out = append(out, strings.TrimSpace(current.String()))
			current.Reset()
			continue
		}
		current.WriteRune(ch)
	}
	return append(out, strings.TrimSpace(current.String()))
}

// NormalizeHeader pasa el encabezado a minúsculas sin acentos, espacios, '_', '-' ni '.'.
func NormalizeHeader(header string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		header,
	)
	if err != nil {
		folded = header
	}
	return headerStripRegex.ReplaceAllString(strings.ToLower(strings.TrimSpace(folded)), "")
}

// headerIndex encabezado normalizado → posición de la columna.
type headerIndex map[string]int

func newHeaderIndex(headers []string) headerIndex {
	idx := make(headerIndex, len(headers))
	for i, h := range headers {
		idx[NormalizeHeader(h)] = i
	}
	return idx
}

func (idx headerIndex) has(c column) bool {
	for _, a := range c.aliases {
		if _, ok := idx[NormalizeHeader(a)]; ok {
			return true
		}
	}
	return false
}

// cell devuelve el valor de la primera columna alias presente; "" si no existe o la fila es corta.
func (idx headerIndex) cell(cells []string, c column) string {
	for _, a := range c.aliases {
		if i, ok := idx[NormalizeHeader(a)]; ok {
			if i < len(cells) {
				return strings.TrimSpace(cells[i])
			}
			return ""
		}
	}
	return ""
}

// maxClassCode tope del código de clase; valores mayores no caben en el modelo.
var maxClassCode = decimal.NewFromInt(math.MaxInt32)

// parseClassCode exige un número entero distinto de cero dentro de ±maxClassCode.
func parseClassCode(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	d, ok := ParseNumber(raw)
	if !ok || d.IsZero() || d.Abs().GreaterThan(maxClassCode) || !d.IsInteger() {
		return 0, false
	}
	return int(d.IntPart()), true
}

func splitLines(text string) []string {
	var lines []string
	for _, l := range lineBreakRegex.Split(text, -1) {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
