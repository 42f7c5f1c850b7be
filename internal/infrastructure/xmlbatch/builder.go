// Package xmlbatch genera el lote XML de envío de la bandeja de captura y su huella
// SHA-256 sobre la forma canónica (C14N) del documento.
package xmlbatch

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
	"github.com/jhoicas/kardex-captura/internal/domain/kardex"
)

const (
	Namespace = "urn:kardex-captura:lote:v1"
	AlgC14N   = "http://www.w3.org/TR/2001/REC-xml-c14n-20010315"
	AlgSHA256 = "http://www.w3.org/2001/04/xmlenc#sha256"

	tagRoot   = "LoteKardex"
	tagDigest = "Huella"
)

// Builder construye lotes a partir de la bandeja.
type Builder struct {
	now func() time.Time
}

// NewBuilder crea el builder; now nil usa time.Now.
func NewBuilder(now func() time.Time) *Builder {
	if now == nil {
		now = time.Now
	}
	return &Builder{now: now}
}

// Build arma el documento:
//
//	<LoteKardex xmlns=... Id=...>
//	  <Cabecera>   id, fecha, contexto, totales
//	  <Movimientos> un <Movimiento> por línea, en el orden de la bandeja
//	  <Huella>     SHA-256 del documento sin este elemento
//	</LoteKardex>
func (b *Builder) Build(queue []*entity.Movement, ctx entity.ContextState) (*entity.SubmissionBatch, error) {
	batch := &entity.SubmissionBatch{
		ID:        uuid.New().String(),
		CreatedAt: b.now().UTC(),
		Count:     len(queue),
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement(tagRoot)
	root.CreateAttr("xmlns", Namespace)
	root.CreateAttr("Id", batch.ID)

	sum := kardex.Summarize(queue)
	head := root.CreateElement("Cabecera")
	addText(head, "FechaCreacion", batch.CreatedAt.Format(time.RFC3339))
	addText(head, "Centro", ctx.Centro)
	addText(head, "Almacen", ctx.Almacen)
	addText(head, "Material", ctx.Material)
	addText(head, "CantidadMovimientos", strconv.Itoa(sum.Count))
	addText(head, "TotalCantidad", sum.TotalQty.StringFixed(3))
	addText(head, "TotalValor", sum.TotalVal.StringFixed(2))

	movs := root.CreateElement("Movimientos")
	for i, m := range queue {
		writeMovement(movs, i+1, m)
	}

	digest, err := digestOf(root)
	if err != nil {
		return nil, err
	}
	batch.Digest = digest
	h := root.CreateElement(tagDigest)
	h.CreateAttr("CanonicalizationMethod", AlgC14N)
	h.CreateAttr("DigestMethod", AlgSHA256)
	h.SetText(digest)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("xmlbatch: serializar: %w", err)
	}
	batch.XML = out
	return batch, nil
}

// Archive guarda los lotes enviados en un directorio.
type Archive struct {
	dir string
}

// NewArchive crea el archivo de lotes sobre dir.
func NewArchive(dir string) *Archive { return &Archive{dir: dir} }

// Save escribe el lote como lote-<fecha>-<id>.xml y devuelve la ruta.
func (a *Archive) Save(batch *entity.SubmissionBatch) (string, error) {
	dir := a.dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("xmlbatch: crear directorio: %w", err)
	}
	name := fmt.Sprintf("lote-%s-%s.xml", batch.CreatedAt.Format("20060102T150405Z"), batch.ID)
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, batch.XML, 0o644); err != nil {
		return "", fmt.Errorf("xmlbatch: escribir %s: %w", name, err)
	}
	return path, nil
}

// Verify recalcula la huella del documento y la compara con la declarada en <Huella>.
func Verify(data []byte) (bool, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return false, fmt.Errorf("xmlbatch: parsear XML: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != tagRoot {
		return false, fmt.Errorf("xmlbatch: raíz %s no encontrada", tagRoot)
	}
	h := root.SelectElement(tagDigest)
	if h == nil {
		return false, fmt.Errorf("xmlbatch: documento sin %s", tagDigest)
	}
	got, err := digestOf(root)
	if err != nil {
		return false, err
	}
	return got == h.Text(), nil
}

func writeMovement(parent *etree.Element, line int, m *entity.Movement) {
	el := parent.CreateElement("Movimiento")
	el.CreateAttr("linea", strconv.Itoa(line))
	el.CreateAttr("id", m.ID)

	clase := ""
	if m.ClaseMov != 0 {
		clase = strconv.Itoa(m.ClaseMov)
	}
	fields := [][2]string{
		{"claseMov", clase},
		{"claseMovDesc", m.ClaseMovDesc},
		{"grupoKardex", string(m.GrupoKardex)},
		{"fechaConta", m.FechaConta},
		{"noDocumentoMat", m.NoDocumentoMat},
		{"noPedido", m.NoPedido},
		{"material", m.Material},
		{"matDesc", m.MatDesc},
		{"centro", m.Centro},
		{"almacen", m.Almacen},
		{"centroDestino", m.CentroDestino},
		{"almacenDestino", m.AlmacenDestino},
		{"cantidad", m.Cantidad},
		{"um", m.UM},
		{"valor", m.Valor},
		{"moneda", m.Moneda},
		{"lote", m.Lote},
		{"fechaFab", m.FechaFab},
		{"sgtxt", m.Sgtxt},
		{"lifnr", m.Lifnr},
		{"proveedorDesc", m.ProveedorDesc},
	}
	for _, f := range fields {
		if f[1] != "" {
			addText(el, f[0], f[1])
		}
	}
}

func addText(parent *etree.Element, tag, value string) {
	parent.CreateElement(tag).SetText(value)
}

// digestOf calcula la huella de una copia de root sin el elemento <Huella>.
func digestOf(root *etree.Element) (string, error) {
	doc := etree.NewDocument()
	doc.SetRoot(root.Copy())
	if h := doc.Root().SelectElement(tagDigest); h != nil {
		doc.Root().RemoveChild(h)
	}
	raw, err := doc.WriteToBytes()
	if err != nil {
		return "", fmt.Errorf("xmlbatch: serializar para huella: %w", err)
	}
	canon, err := canonicalizeXML(raw)
	if err != nil {
		return "", fmt.Errorf("xmlbatch: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canon)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func canonicalizeXML(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}
