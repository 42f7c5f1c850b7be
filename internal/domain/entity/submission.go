package entity

import "time"

// SubmissionBatch lote de envío generado a partir de la bandeja validada.
type SubmissionBatch struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Count     int       `json:"count"`
	Digest    string    `json:"digest"` // base64(sha256(C14N))
	XML       []byte    `json:"-"`
}
