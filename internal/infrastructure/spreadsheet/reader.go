// Package spreadsheet decodifica las planillas de proveedores (csv, xls, xlsx)
// a una matriz de celdas en texto. El casting de tipos queda en el parser del
// dominio; acá sólo se extrae el contenido crudo de la primera hoja.
package spreadsheet

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/extrame/xls"
	"github.com/xuri/excelize/v2"

	appstock "github.com/tu-usuario/estoque-pro/internal/application/stockentry"
	"github.com/tu-usuario/estoque-pro/internal/domain"
)

var _ appstock.SheetReader = (*Reader)(nil)

// Reader decodifica el archivo según su extensión.
type Reader struct{}

// NewReader construye el lector de planillas.
func NewReader() *Reader { return &Reader{} }

// Read devuelve las celdas de la primera hoja. La extensión del nombre de
// archivo decide el decoder; un archivo ilegible o de tipo no soportado
// devuelve ErrUnreadableFile.
func (r *Reader) Read(fileName string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		return readCSV(data)
	case ".xlsx":
		return readXLSX(data)
	case ".xls":
		return readXLS(data)
	default:
		return nil, fmt.Errorf("%w: extensión no soportada %q", domain.ErrUnreadableFile, filepath.Ext(fileName))
	}
}

// readCSV tolera filas de ancho variable y quotes sucios, comunes en exports
// de proveedores.
func readCSV(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: csv: %v", domain.ErrUnreadableFile, err)
	}
	return rows, nil
}

func readXLSX(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx: %v", domain.ErrUnreadableFile, err)
	}
	defer f.Close()
	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: xlsx: %v", domain.ErrUnreadableFile, err)
	}
	return rows, nil
}

func readXLS(data []byte) ([][]string, error) {
	book, err := xls.OpenReader(bytes.NewReader(data), "utf-8")
	if err != nil {
		return nil, fmt.Errorf("%w: xls: %v", domain.ErrUnreadableFile, err)
	}
	sheet := book.GetSheet(0)
	if sheet == nil {
		return nil, fmt.Errorf("%w: xls sin hojas", domain.ErrUnreadableFile)
	}
	rows := make([][]string, 0, sheet.MaxRow+1)
	for i := 0; i <= int(sheet.MaxRow); i++ {
		row := sheet.Row(i)
		if row == nil {
			rows = append(rows, nil)
			continue
		}
		cells := make([]string, 0, row.LastCol())
		for j := 0; j < row.LastCol(); j++ {
			cells = append(cells, row.Col(j))
		}
		rows = append(rows, cells)
	}
	return rows, nil
}
