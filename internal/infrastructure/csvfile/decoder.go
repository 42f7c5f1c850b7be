// Package csvfile convierte el archivo subido en texto UTF-8 listo para el parser
// de importación.
package csvfile

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/jhoicas/kardex-captura/internal/domain"
)

// DefaultMaxBytes tamaño máximo aceptado si no se configura otro.
const DefaultMaxBytes int64 = 5 << 20

// Decoder lee archivos CSV exportados desde hojas de cálculo.
type Decoder struct {
	maxBytes int64
}

// NewDecoder construye el decodificador; maxBytes <= 0 usa DefaultMaxBytes.
func NewDecoder(maxBytes int64) *Decoder {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Decoder{maxBytes: maxBytes}
}

// Decode lee r completo y devuelve su contenido como texto UTF-8.
//   - BOM UTF-8: se descarta.
//   - BOM UTF-16 (LE/BE): se decodifica.
//   - Bytes que no son UTF-8 válido: se interpretan como Windows-1252 (Excel en español).
//
// Contenido binario (bytes NUL) devuelve domain.ErrUnreadableFile.
func (d *Decoder) Decode(r io.Reader) (string, error) {
	raw, err := io.ReadAll(io.LimitReader(r, d.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableFile, err)
	}
	if int64(len(raw)) > d.maxBytes {
		return "", fmt.Errorf("%w (máximo %d bytes)", domain.ErrFileTooLarge, d.maxBytes)
	}

	var fallback transform.Transformer = transform.Nop
	if !utf8.Valid(raw) {
		fallback = charmap.Windows1252.NewDecoder()
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(fallback), raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUnreadableFile, err)
	}
	if bytes.IndexByte(out, 0) >= 0 {
		return "", domain.ErrUnreadableFile
	}
	return string(out), nil
}
