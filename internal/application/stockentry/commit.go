package stockentry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
	"github.com/tu-usuario/estoque-pro/internal/domain/stockentry"
)

// b2bGroup línea agregada de un estimate back-to-back: mismo modelo canónico,
// capacidad y grade. El costo es el de la primera unidad vista del grupo.
type b2bGroup struct {
	key       string
	modelName string
	capacity  string
	grade     string
	quantity  int
	cost      decimal.Decimal
}

func groupKey(row stockentry.ParsedRow) string {
	return stockentry.ModelKey(row.Model) + "|" + stockentry.CapacityKey(row.Capacity) + "|" + strings.ToUpper(strings.TrimSpace(row.Grade))
}

// b2bCustomer acumulado por cliente de destino, en orden de primera aparición.
type b2bCustomer struct {
	customerID string
	groups     []*b2bGroup
}

// Commit confirma la entrada en una sola transacción: primero sintetiza los
// estimates y cuentas a cobrar back-to-back (fase A), después inserta el batch
// de unidades (fase B). Si cualquier paso falla, la sesión vuelve a revisión y
// la base queda intacta.
func (uc *UseCase) Commit(ctx context.Context, sessionID, userID string) (*dto.CommitResultResponse, error) {
	sess, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.BeginCommit(); err != nil {
		return nil, err
	}

	units := buildUnits(sess, userID)
	customers := groupByCustomer(sess)
	markup := decimal.NewFromFloat(uc.b2bMarkup)
	result := &dto.CommitResultResponse{
		SkippedRows: sess.InvalidRows(),
	}

	err = uc.txRunner.Run(ctx, func(
		inventoryRepo repository.InventoryRepository,
		estimateRepo repository.EstimateRepository,
		receivableRepo repository.ReceivableRepository,
	) error {
		// Re-chequeo dentro de la tx: otra sesión pudo commitear la misma
		// invoice entre la apertura del wizard y este punto.
		numbers, err := inventoryRepo.PurchaseInvoiceNumbers(sess.AgentID)
		if err != nil {
			return err
		}
		for _, n := range numbers {
			if n == sess.InvoiceNumber {
				return domain.ErrInvoiceCommitted
			}
		}

		// Fase A: un estimate pre-aprobado + cuenta a cobrar por cliente.
		estimateByCustomer := make(map[string]string, len(customers))
		for i, c := range customers {
			est, err := uc.createEstimate(estimateRepo, receivableRepo, sess, c, markup, i+1, userID)
			if err != nil {
				return err
			}
			estimateByCustomer[c.customerID] = est.ID
			result.EstimateIDs = append(result.EstimateIDs, est.ID)
		}
		result.EstimatesCreated = len(customers)
		result.ReceivablesCreated = len(customers)

		// Fase B: el batch completo de unidades, ya con el estimate vinculado.
		for _, u := range units {
			if u.ReservedForID != "" {
				u.EstimateID = estimateByCustomer[u.ReservedForID]
			}
		}
		if err := inventoryRepo.BulkInsert(units); err != nil {
			return err
		}
		result.UnitsCreated = len(units)
		return nil
	})
	if err != nil {
		sess.FailCommit()
		return nil, err
	}
	sess.FinishCommit()
	return result, nil
}

// buildUnits materializa las filas válidas como unidades del ledger. Reserved
// sólo para lotes back-to-back; filas sin lote entran sin ubicación.
func buildUnits(sess *stockentry.Session, userID string) []*entity.InventoryUnit {
	now := time.Now()
	units := make([]*entity.InventoryUnit, 0, len(sess.Recon.Rows))
	for _, row := range sess.Recon.Rows {
		if !row.Valid {
			continue
		}
		unit := &entity.InventoryUnit{
			ID:              uuid.New().String(),
			Model:           row.Model,
			Capacity:        row.Capacity,
			Color:           row.Color,
			Grade:           row.Grade,
			Price:           row.ResolvedPrice,
			IMEI:            row.IMEI,
			SerialNumber:    row.SerialNumber,
			PurchaseInvoice: sess.InvoiceNumber,
			AgentID:         sess.AgentID,
			Status:          entity.UnitStatusAvailable,
			EntryDate:       sess.EntryDate,
			CreatedBy:       userID,
			CreatedAt:       now,
		}
		if m := sess.MappingFor(row); m != nil {
			unit.LocationID = m.LocationID
			if m.BackToBack {
				unit.Status = entity.UnitStatusReserved
				unit.ReservedForID = m.CustomerID
			}
		}
		units = append(units, unit)
	}
	return units
}

// groupByCustomer agrega las filas válidas de lotes back-to-back por cliente y,
// dentro de cada cliente, por modelo canónico + capacidad + grade. Orden de
// primera aparición en ambos niveles, para que el estimate salga en el orden
// de la planilla.
func groupByCustomer(sess *stockentry.Session) []*b2bCustomer {
	var customers []*b2bCustomer
	byID := make(map[string]*b2bCustomer)
	for _, row := range sess.Recon.Rows {
		if !row.Valid {
			continue
		}
		m := sess.MappingFor(row)
		if m == nil || !m.BackToBack {
			continue
		}
		c, ok := byID[m.CustomerID]
		if !ok {
			c = &b2bCustomer{customerID: m.CustomerID}
			byID[m.CustomerID] = c
			customers = append(customers, c)
		}
		key := groupKey(row)
		var group *b2bGroup
		for _, g := range c.groups {
			if g.key == key {
				group = g
				break
			}
		}
		if group == nil {
			group = &b2bGroup{
				key:       key,
				modelName: row.Model,
				capacity:  row.Capacity,
				grade:     row.Grade,
				cost:      row.ResolvedPrice,
			}
			c.groups = append(c.groups, group)
		}
		group.quantity++
	}
	return customers
}

// createEstimate persiste el estimate pre-aprobado de un cliente con sus líneas
// y la cuenta a cobrar que espeja el total.
func (uc *UseCase) createEstimate(
	estimateRepo repository.EstimateRepository,
	receivableRepo repository.ReceivableRepository,
	sess *stockentry.Session,
	c *b2bCustomer,
	markup decimal.Decimal,
	seq int,
	userID string,
) (*entity.Estimate, error) {
	now := time.Now()
	est := &entity.Estimate{
		ID:        uuid.New().String(),
		AgentID:   c.customerID,
		Number:    fmt.Sprintf("EST-%s-%d", sess.InvoiceNumber, seq),
		Status:    entity.EstimateStatusPreApproved,
		Notes:     fmt.Sprintf("Entrada back-to-back (invoice %s)", sess.InvoiceNumber),
		CreatedBy: userID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := estimateRepo.Create(est); err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, g := range c.groups {
		unitPrice := g.cost.Mul(markup).Round(2)
		// El margen sale del par costo/precio persistido, no del factor de
		// markup: con costo cero (precio de planilla ilegible) el margen es 0.
		margin := decimal.Zero
		if g.cost.IsPositive() {
			margin = unitPrice.Sub(g.cost).Div(g.cost).Mul(decimal.NewFromInt(100))
		}
		item := &entity.EstimateItem{
			ID:            uuid.New().String(),
			EstimateID:    est.ID,
			ModelName:     g.modelName,
			Capacity:      g.capacity,
			Grade:         g.grade,
			Quantity:      g.quantity,
			UnitPrice:     unitPrice,
			CostPrice:     g.cost,
			MarginPercent: margin,
		}
		if err := estimateRepo.CreateItem(item); err != nil {
			return nil, err
		}
		subtotal = subtotal.Add(item.LineTotal())
	}
	// El total se re-deriva de las líneas persistidas, no del acumulado del
	// wizard: subtotal y total quedan siempre consistentes con los items.
	if err := estimateRepo.UpdateTotals(est.ID, subtotal, subtotal); err != nil {
		return nil, err
	}
	est.Subtotal = subtotal
	est.Total = subtotal

	recv := &entity.Receivable{
		ID:         uuid.New().String(),
		AgentID:    c.customerID,
		EstimateID: est.ID,
		Amount:     subtotal,
		Status:     entity.ReceivableStatusPending,
		Notes:      fmt.Sprintf("Reserva back-to-back, invoice de compra %s", sess.InvoiceNumber),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := receivableRepo.Create(recv); err != nil {
		return nil, err
	}
	return est, nil
}
