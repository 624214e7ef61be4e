package spreadsheet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/infrastructure/spreadsheet"
)

func TestRead_CSV(t *testing.T) {
	data := []byte("Modelo,Capacidade,Preço\niPhone 13,128GB,\"2.500,00\"\niPhone 12,64GB,1800\n")
	rows, err := spreadsheet.NewReader().Read("planilla.csv", data)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Modelo", "Capacidade", "Preço"}, rows[0])
	assert.Equal(t, "2.500,00", rows[1][2], "las celdas se entregan crudas, sin interpretar")
}

func TestRead_CSVFilasDeAnchoVariable(t *testing.T) {
	// Exports sucios suelen cortar columnas vacías al final.
	data := []byte("Modelo,IMEI,Lote\niPhone 13,350000000000001\n")
	rows, err := spreadsheet.NewReader().Read("sucio.csv", data)
	require.NoError(t, err, "un csv con filas de ancho distinto no debe fallar")
	assert.Len(t, rows[1], 2)
}

func TestRead_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Modelo", "IMEI"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"iPhone 13", "350000000000001"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	rows, err := spreadsheet.NewReader().Read("lote.xlsx", buf.Bytes())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "iPhone 13", rows[1][0])
}

func TestRead_ExtensionNoSoportada(t *testing.T) {
	_, err := spreadsheet.NewReader().Read("notas.pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, domain.ErrUnreadableFile)
}

func TestRead_XLSXCorrupto(t *testing.T) {
	_, err := spreadsheet.NewReader().Read("roto.xlsx", []byte("no es un zip"))
	assert.ErrorIs(t, err, domain.ErrUnreadableFile)
}

func TestRead_XLSCorrupto(t *testing.T) {
	_, err := spreadsheet.NewReader().Read("roto.xls", []byte{0x01, 0x02})
	assert.ErrorIs(t, err, domain.ErrUnreadableFile)
}
