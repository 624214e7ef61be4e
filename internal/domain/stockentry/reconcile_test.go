package stockentry_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/stockentry"
)

func money(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func row(model, capacity, lot, price string) stockentry.ParsedRow {
	return stockentry.ParsedRow{
		Model:        model,
		Capacity:     capacity,
		LotID:        lot,
		SerialNumber: "S",
		Price:        money(price),
		Valid:        true,
	}
}

// Precedencia: el match por lote gana sobre el match por modelo.
func TestReconcile_PrecedenciaLoteSobreModelo(t *testing.T) {
	rows := []stockentry.ParsedRow{row("IPHONE 13", "128GB", "LOT-7", "50")}
	items := []entity.InvoiceItem{
		{ModelName: "iPhone 13", Capacity: "128GB", UnitPrice: money("90"), Quantity: 1},
		{ModelName: "Otro Modelo", LotID: "lot-7 ", UnitPrice: money("100"), Quantity: 1},
	}

	rec := stockentry.Reconcile(rows, items)
	require.Len(t, rec.Rows, 1)
	assert.True(t, money("100").Equal(rec.Rows[0].ResolvedPrice),
		"el lote debe ganar sobre el modelo: %s", rec.Rows[0].ResolvedPrice)
	assert.Equal(t, stockentry.PriceFromLot, rec.Rows[0].PriceSource)
}

func TestReconcile_FallbackModeloYPlanilla(t *testing.T) {
	rows := []stockentry.ParsedRow{
		row("iphone se2", "64GB", "", "10"),      // matchea por modelo canónico
		row("galaxy s99", "128GB", "", "123.45"), // sin match: precio de planilla
	}
	items := []entity.InvoiceItem{
		{ModelName: "iPhone SE (2ª geração)", Capacity: "64 GB", UnitPrice: money("75"), Quantity: 2},
	}

	rec := stockentry.Reconcile(rows, items)
	assert.True(t, money("75").Equal(rec.Rows[0].ResolvedPrice))
	assert.Equal(t, stockentry.PriceFromModel, rec.Rows[0].PriceSource)
	assert.True(t, money("123.45").Equal(rec.Rows[1].ResolvedPrice))
	assert.Equal(t, stockentry.PriceFromSheet, rec.Rows[1].PriceSource)
}

func TestReconcile_Divergencias(t *testing.T) {
	rows := make([]stockentry.ParsedRow, 0, 18)
	for i := 0; i < 8; i++ {
		rows = append(rows, row("iPhone 13", "128GB", "", "90"))
	}
	for i := 0; i < 10; i++ {
		rows = append(rows, row("iPhone 14", "256GB", "", "110"))
	}
	items := []entity.InvoiceItem{
		{ModelName: "IPHONE 13", Capacity: "128GB", UnitPrice: money("90"), Quantity: 10},  // faltan 2
		{ModelName: "IPHONE 14", Capacity: "256GB", UnitPrice: money("110"), Quantity: 10}, // exacto
	}

	rec := stockentry.Reconcile(rows, items)
	require.Len(t, rec.Divergences, 2)
	assert.True(t, rec.Divergences[0].Divergent, "10 esperados vs 8 reales debe divergir")
	assert.Equal(t, 8, rec.Divergences[0].Actual)
	assert.False(t, rec.Divergences[1].Divergent, "cantidades iguales no divergen")
}

// Una línea con lote sólo cuenta filas de ese lote, aunque el modelo matchee.
func TestReconcile_DivergenciaRestringidaPorLote(t *testing.T) {
	rows := []stockentry.ParsedRow{
		row("iPhone 13", "128GB", "LOT-A", "90"),
		row("iPhone 13", "128GB", "LOT-B", "90"),
	}
	items := []entity.InvoiceItem{
		{ModelName: "iPhone 13", Capacity: "128GB", LotID: "LOT-A", UnitPrice: money("90"), Quantity: 2},
	}

	rec := stockentry.Reconcile(rows, items)
	require.Len(t, rec.Divergences, 1)
	assert.Equal(t, 1, rec.Divergences[0].Actual, "sólo la fila de LOT-A cuenta")
	assert.True(t, rec.Divergences[0].Divergent)
}

func TestReconcile_Totales(t *testing.T) {
	rows := []stockentry.ParsedRow{
		row("iPhone 13", "128GB", "", "100"),
		row("iPhone 13", "128GB", "", "100"),
	}
	items := []entity.InvoiceItem{
		{ModelName: "iPhone 13", Capacity: "128GB", UnitPrice: money("100"), Quantity: 3},
	}

	rec := stockentry.Reconcile(rows, items)
	assert.True(t, money("200").Equal(rec.ParsedTotal), "ParsedTotal = %s", rec.ParsedTotal)
	assert.True(t, money("300").Equal(rec.InvoiceTotal), "InvoiceTotal = %s", rec.InvoiceTotal)
	assert.True(t, money("-100").Equal(rec.Diff), "Diff = %s", rec.Diff)
}
