package stockentry

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// LineDivergence comparación cantidad esperada vs. real para una línea de la
// invoice. Advisory: una divergencia no bloquea el commit, sólo se muestra.
type LineDivergence struct {
	Item      entity.InvoiceItem
	Expected  int
	Actual    int
	Divergent bool
}

// Reconciliation resultado del batimento planilla vs. invoice de compra.
type Reconciliation struct {
	Rows         []ParsedRow // copia con ResolvedPrice/PriceSource fijados
	Divergences  []LineDivergence
	ParsedTotal  decimal.Decimal // suma de precios resueltos por fila
	InvoiceTotal decimal.Decimal // suma de montos de línea de la invoice
	Diff         decimal.Decimal // ParsedTotal - InvoiceTotal
}

func sameLot(a, b string) bool {
	return a != "" && strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Reconcile resuelve el precio efectivo de cada fila y contrasta cantidades por
// línea de invoice. Orden de resolución de precio (gana el primero):
//  1. línea de invoice con el mismo lote (case-insensitive, sin espacios bordes)
//  2. línea de invoice con modelo+capacidad canónicamente iguales
//  3. el precio de la propia planilla (posiblemente cero)
func Reconcile(rows []ParsedRow, items []entity.InvoiceItem) *Reconciliation {
	rec := &Reconciliation{Rows: make([]ParsedRow, len(rows))}
	copy(rec.Rows, rows)

	for i := range rec.Rows {
		row := &rec.Rows[i]
		row.ResolvedPrice = row.Price
		row.PriceSource = PriceFromSheet
		if row.LotID != "" {
			if item := findByLot(items, row.LotID); item != nil {
				row.ResolvedPrice = item.UnitPrice
				row.PriceSource = PriceFromLot
			}
		}
		if row.PriceSource == PriceFromSheet {
			if item := findByModel(items, row.Model, row.Capacity); item != nil {
				row.ResolvedPrice = item.UnitPrice
				row.PriceSource = PriceFromModel
			}
		}
		rec.ParsedTotal = rec.ParsedTotal.Add(row.ResolvedPrice)
	}

	for _, item := range items {
		actual := 0
		for _, row := range rec.Rows {
			if !MatchModelCapacity(row.Model, row.Capacity, item.ModelName, item.Capacity) {
				continue
			}
			// Una línea con lote sólo cuenta filas de ese mismo lote.
			if item.LotID != "" && !sameLot(item.LotID, row.LotID) {
				continue
			}
			actual++
		}
		rec.Divergences = append(rec.Divergences, LineDivergence{
			Item:      item,
			Expected:  item.Quantity,
			Actual:    actual,
			Divergent: actual != item.Quantity,
		})
		rec.InvoiceTotal = rec.InvoiceTotal.Add(lineAmount(item))
	}

	rec.Diff = rec.ParsedTotal.Sub(rec.InvoiceTotal)
	return rec
}

func findByLot(items []entity.InvoiceItem, lotID string) *entity.InvoiceItem {
	for i := range items {
		if sameLot(items[i].LotID, lotID) {
			return &items[i]
		}
	}
	return nil
}

func findByModel(items []entity.InvoiceItem, model, capacity string) *entity.InvoiceItem {
	for i := range items {
		if MatchModelCapacity(model, capacity, items[i].ModelName, items[i].Capacity) {
			return &items[i]
		}
	}
	return nil
}

func lineAmount(item entity.InvoiceItem) decimal.Decimal {
	if !item.TotalAmount.IsZero() {
		return item.TotalAmount
	}
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
}
