package kardex

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kardex-captura/internal/domain/entity"
)

// Summary totales de la bandeja de captura.
type Summary struct {
	Count       int             `json:"count"`
	ReadyCount  int             `json:"readyCount"`
	ErrorsCount int             `json:"errorsCount"`
	TotalQty    decimal.Decimal `json:"totalQty"` // 3 decimales
	TotalVal    decimal.Decimal `json:"totalVal"` // 2 decimales
	CanSubmit   bool            `json:"canSubmit"`
}

// Summarize calcula los totales. Cantidades o valores no numéricos cuentan como 0.
func Summarize(queue []*entity.Movement) Summary {
	var s Summary
	qty, val := decimal.Zero, decimal.Zero
	for _, m := range queue {
		s.Count++
		switch m.Status {
		case entity.StatusReady:
			s.ReadyCount++
		case entity.StatusError:
			s.ErrorsCount++
		}
		if d, ok := ParseNumber(m.Cantidad); ok {
			qty = qty.Add(d)
		}
		if d, ok := ParseNumber(m.Valor); ok {
			val = val.Add(d)
		}
	}
	s.TotalQty = qty.Round(3)
	s.TotalVal = val.Round(2)
	s.CanSubmit = s.Count > 0 && s.ErrorsCount == 0
	return s
}
