package stockentry

import (
	"context"

	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el commit de una entrada
// (inventario + estimates + cuentas a cobrar) sea todo-o-nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		inventoryRepo repository.InventoryRepository,
		estimateRepo repository.EstimateRepository,
		receivableRepo repository.ReceivableRepository,
	) error) error
}

// SheetReader decodifica el archivo subido (csv/xls/xlsx) a una matriz de
// celdas en texto, primera fila incluida como headers.
type SheetReader interface {
	Read(fileName string, data []byte) ([][]string, error)
}
