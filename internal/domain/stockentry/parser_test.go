package stockentry_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/stockentry"
)

func TestParsePrice_Locales(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"1.234,56", "1234.56"},  // miles con punto, decimal con coma
		{"1234,56", "1234.56"},   // sólo coma decimal
		{"1.234", "1234"},        // punto de miles sin decimales
		{"$1,234.56", "1234.56"}, // formato US con símbolo
		{"1.234.567", "1234567"}, // múltiples puntos de miles
		{"R$ 2.500,00", "2500"},  // moneda brasileña
		{"99.9", "99.9"},         // decimal con punto simple
		{"", "0"},
		{"n/a", "0"}, // imparseable -> cero, nunca error
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			want, err := decimal.NewFromString(tc.want)
			require.NoError(t, err)
			assert.True(t, want.Equal(stockentry.ParsePrice(tc.raw)),
				"ParsePrice(%q) = %s, esperado %s", tc.raw, stockentry.ParsePrice(tc.raw), want)
		})
	}
}

func TestParseRows_ExtraeCapacidadDelModelo(t *testing.T) {
	records := [][]string{
		{"Lot ID", "Auction Model", "Grade", "Serial No"},
		{"LOT-1", "IPHONE SE2 64GB (2020)", "B", "SN001"},
	}
	result, err := stockentry.ParseRows(records)
	require.NoError(t, err)
	require.Len(t, result.Rows, 1)

	row := result.Rows[0]
	assert.Equal(t, "64GB", row.Capacity, "la capacidad embebida debe extraerse")
	assert.Equal(t, "IPHONE SE2 (2020)", row.Model, "el token de capacidad debe removerse del modelo")
	assert.True(t, row.Valid)
}

func TestParseRows_CapacidadRedundanteEnModelo(t *testing.T) {
	records := [][]string{
		{"Modelo", "Capacidade", "IMEI"},
		{"IPHONE 13 128GB", "128GB", "356789012345678"},
	}
	result, err := stockentry.ParseRows(records)
	require.NoError(t, err)
	row := result.Rows[0]
	assert.Equal(t, "IPHONE 13", row.Model)
	assert.Equal(t, "128GB", row.Capacity)
}

func TestParseRows_HeadersDifusos(t *testing.T) {
	// Headers con acentos, mayúsculas y decoración: el binding es por contains
	// sobre la forma normalizada.
	records := [][]string{
		{"MODELO ", "Preço Unitário (US$)", "Côr", "Condição", "Nº Série"},
		{"iphone 12", "1.100,00", "Preto", "A", "SER-99"},
	}
	result, err := stockentry.ParseRows(records)
	require.NoError(t, err)
	row := result.Rows[0]
	assert.Equal(t, "iphone 12", row.Model)
	assert.True(t, decimal.NewFromInt(1100).Equal(row.Price))
	assert.Equal(t, "Preto", row.Color)
	assert.Equal(t, "A", row.Grade)
	assert.Equal(t, "SER-99", row.SerialNumber)
}

func TestParseRows_IMEISoloDigitos(t *testing.T) {
	records := [][]string{
		{"model", "imei"},
		{"iphone 11", " 35-6789 01234567.8 "},
	}
	result, err := stockentry.ParseRows(records)
	require.NoError(t, err)
	assert.Equal(t, "356789012345678", result.Rows[0].IMEI)
}

func TestParseRows_LotesEnOrdenDePrimeraAparicion(t *testing.T) {
	records := [][]string{
		{"model", "serial", "lote"},
		{"iphone 11", "S1", "LOT-B"},
		{"iphone 11", "S2", "LOT-A"},
		{"iphone 11", "S3", "LOT-B"},
		{"iphone 12", "S4", ""},
	}
	result, err := stockentry.ParseRows(records)
	require.NoError(t, err)
	assert.Equal(t, []string{"LOT-B", "LOT-A"}, result.Lots)
	assert.Len(t, result.Rows, 4)
}

func TestParseRows_FilaInvalidaRetenida(t *testing.T) {
	records := [][]string{
		{"model", "imei", "serial"},
		{"iphone 11", "123456789012345", ""},
		{"iphone 12", "", ""}, // sin IMEI ni serial: inválida pero retenida
		{"", "999", ""},       // sin modelo: inválida
	}
	result, err := stockentry.ParseRows(records)
	require.NoError(t, err)
	require.Len(t, result.Rows, 3)
	assert.True(t, result.Rows[0].Valid)
	assert.False(t, result.Rows[1].Valid)
	assert.False(t, result.Rows[2].Valid)
}

func TestParseRows_PlanillaVacia(t *testing.T) {
	_, err := stockentry.ParseRows([][]string{{"model", "imei"}})
	assert.ErrorIs(t, err, domain.ErrEmptySheet)

	_, err = stockentry.ParseRows(nil)
	assert.ErrorIs(t, err, domain.ErrEmptySheet)

	// Filas presentes pero todas en blanco también es planilla vacía.
	_, err = stockentry.ParseRows([][]string{{"model", "imei"}, {"", ""}, {" ", ""}})
	assert.ErrorIs(t, err, domain.ErrEmptySheet)
}
