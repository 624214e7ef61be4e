package stockentry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	appstock "github.com/tu-usuario/estoque-pro/internal/application/stockentry"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

var errBulkFail = errors.New("bulk insert fail")

// memStore respaldo compartido de los fakes. El txRunner clona el store antes
// de correr la función y sólo promueve el clon si no hubo error, imitando el
// commit/rollback de una transacción real.
type memStore struct {
	units       []*entity.InventoryUnit
	estimates   []*entity.Estimate
	items       []*entity.EstimateItem
	receivables []*entity.Receivable
	failBulk    bool
}

func (s *memStore) clone() *memStore {
	c := &memStore{failBulk: s.failBulk}
	c.units = append(c.units, s.units...)
	c.estimates = append(c.estimates, s.estimates...)
	c.items = append(c.items, s.items...)
	c.receivables = append(c.receivables, s.receivables...)
	return c
}

type fakeInventoryRepo struct{ store *memStore }

func (r *fakeInventoryRepo) BulkInsert(units []*entity.InventoryUnit) error {
	if r.store.failBulk {
		return errBulkFail
	}
	r.store.units = append(r.store.units, units...)
	return nil
}

func (r *fakeInventoryRepo) List(repository.InventoryFilter) ([]*entity.InventoryUnit, error) {
	return r.store.units, nil
}

func (r *fakeInventoryRepo) Summary() ([]repository.ModelSummary, error) { return nil, nil }

func (r *fakeInventoryRepo) PurchaseInvoiceNumbers(agentID string) ([]string, error) {
	var numbers []string
	for _, u := range r.store.units {
		if u.AgentID == agentID {
			numbers = append(numbers, u.PurchaseInvoice)
		}
	}
	return numbers, nil
}

type fakeEstimateRepo struct{ store *memStore }

func (r *fakeEstimateRepo) Create(e *entity.Estimate) error {
	r.store.estimates = append(r.store.estimates, e)
	return nil
}

func (r *fakeEstimateRepo) CreateItem(i *entity.EstimateItem) error {
	r.store.items = append(r.store.items, i)
	return nil
}

func (r *fakeEstimateRepo) UpdateTotals(id string, subtotal, total decimal.Decimal) error {
	for _, e := range r.store.estimates {
		if e.ID == id {
			e.Subtotal = subtotal
			e.Total = total
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *fakeEstimateRepo) GetByID(id string) (*entity.Estimate, error) { return nil, nil }
func (r *fakeEstimateRepo) GetItemsByEstimateID(estimateID string) ([]*entity.EstimateItem, error) {
	var items []*entity.EstimateItem
	for _, i := range r.store.items {
		if i.EstimateID == estimateID {
			items = append(items, i)
		}
	}
	return items, nil
}
func (r *fakeEstimateRepo) List(string, int, int) ([]*entity.Estimate, error) { return nil, nil }

type fakeReceivableRepo struct{ store *memStore }

func (r *fakeReceivableRepo) Create(recv *entity.Receivable) error {
	r.store.receivables = append(r.store.receivables, recv)
	return nil
}

func (r *fakeReceivableRepo) List(string, string, int, int) ([]*entity.Receivable, error) {
	return r.store.receivables, nil
}

type fakeTxRunner struct{ store *memStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	repository.InventoryRepository,
	repository.EstimateRepository,
	repository.ReceivableRepository,
) error) error {
	staging := r.store.clone()
	err := fn(&fakeInventoryRepo{store: staging}, &fakeEstimateRepo{store: staging}, &fakeReceivableRepo{store: staging})
	if err != nil {
		return err
	}
	*r.store = *staging
	return nil
}

type fakeAgentRepo struct{ agents map[string]*entity.Agent }

func (r *fakeAgentRepo) Create(*entity.Agent) error { return nil }
func (r *fakeAgentRepo) GetByID(id string) (*entity.Agent, error) {
	return r.agents[id], nil
}
func (r *fakeAgentRepo) List(string, int, int) ([]*entity.Agent, error) { return nil, nil }
func (r *fakeAgentRepo) Update(*entity.Agent) error                     { return nil }
func (r *fakeAgentRepo) Delete(string) error                            { return nil }

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	items    map[string][]entity.InvoiceItem
}

func (r *fakeInvoiceRepo) GetByID(id string) (*entity.Invoice, error) { return r.invoices[id], nil }
func (r *fakeInvoiceRepo) ListByAgent(string) ([]*entity.Invoice, error) {
	return nil, nil
}
func (r *fakeInvoiceRepo) GetItemsByInvoiceID(invoiceID string) ([]entity.InvoiceItem, error) {
	return r.items[invoiceID], nil
}

type fakeLocationRepo struct {
	locations map[string]*entity.StockLocation
}

func (r *fakeLocationRepo) Create(*entity.StockLocation) error { return nil }
func (r *fakeLocationRepo) GetByID(id string) (*entity.StockLocation, error) {
	return r.locations[id], nil
}
func (r *fakeLocationRepo) List() ([]*entity.StockLocation, error) { return nil, nil }
func (r *fakeLocationRepo) Update(*entity.StockLocation) error     { return nil }
func (r *fakeLocationRepo) Delete(string) error                    { return nil }

type fakeReader struct{ cells [][]string }

func (r *fakeReader) Read(string, []byte) ([][]string, error) { return r.cells, nil }

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

const (
	vendorID   = "00000000-0000-0000-0000-0000000000a1"
	customerID = "00000000-0000-0000-0000-0000000000c1"
	invoiceID  = "00000000-0000-0000-0000-0000000000f1"
	locationID = "00000000-0000-0000-0000-0000000000d1"
	operatorID = "00000000-0000-0000-0000-0000000000e1"
)

// Planilla con dos lotes: LOT-1 con dos iPhone 13 a costos distintos (100 y
// 120), LOT-2 con un iPhone 12 válido y una fila sin IMEI ni serial.
var testSheet = [][]string{
	{"Modelo", "Capacidade", "Grade", "Preço", "IMEI", "Serial", "Lot ID"},
	{"iPhone 13", "128GB", "A", "100", "350000000000001", "", "LOT-1"},
	{"iPhone 13", "128GB", "A", "120", "350000000000002", "", "LOT-1"},
	{"iPhone 12", "64GB", "B", "90", "350000000000003", "", "LOT-2"},
	{"iPhone 11", "64GB", "C", "50", "", "", "LOT-2"},
}

type fixture struct {
	uc    *appstock.UseCase
	store *memStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newFixtureSheet(t, testSheet)
}

func newFixtureSheet(t *testing.T, cells [][]string) *fixture {
	t.Helper()
	store := &memStore{}
	agents := map[string]*entity.Agent{
		vendorID:   {ID: vendorID, Name: "T-Mobile Auctions", Roles: []string{entity.RoleStockVendor}},
		customerID: {ID: customerID, Name: "Revenda Silva", Roles: []string{entity.RoleCustomer}},
	}
	invoices := map[string]*entity.Invoice{
		invoiceID: {
			ID:            invoiceID,
			AgentID:       vendorID,
			InvoiceNumber: "INV-2026-001",
			Amount:        decimal.NewFromInt(310),
			Status:        entity.InvoiceStatusPending,
			IssueDate:     time.Now(),
		},
	}
	locations := map[string]*entity.StockLocation{
		locationID: {ID: locationID, Name: "Depósito Central"},
	}
	uc := appstock.NewUseCase(
		&fakeAgentRepo{agents: agents},
		&fakeInvoiceRepo{invoices: invoices, items: map[string][]entity.InvoiceItem{}},
		&fakeInventoryRepo{store: store},
		&fakeLocationRepo{locations: locations},
		&fakeReader{cells: cells},
		&fakeTxRunner{store: store},
		1.2,
	)
	return &fixture{uc: uc, store: store}
}

// startAndUpload abre la sesión y sube la planilla de prueba.
func (f *fixture) startAndUpload(t *testing.T) string {
	t.Helper()
	resp, err := f.uc.StartSession(dto.StartStockEntryRequest{
		AgentID:   vendorID,
		InvoiceID: invoiceID,
		EntryDate: "2026-08-28",
	})
	require.NoError(t, err)
	resp, err = f.uc.UploadSheet(resp.ID, "lote.xlsx", nil)
	require.NoError(t, err)
	require.Equal(t, "map_lots", resp.State, "con lotes en la planilla debe pasar a map_lots")
	return resp.ID
}

// mapAllLots mapea LOT-1 back-to-back al cliente y LOT-2 sin reserva.
func (f *fixture) mapAllLots(t *testing.T, sessionID string) {
	t.Helper()
	_, err := f.uc.MapLot(sessionID, dto.MapLotRequest{
		LotID: "LOT-1", LocationID: locationID, BackToBack: true, CustomerID: customerID,
	})
	require.NoError(t, err)
	_, err = f.uc.MapLot(sessionID, dto.MapLotRequest{
		LotID: "LOT-2", LocationID: locationID,
	})
	require.NoError(t, err)
	_, err = f.uc.Review(sessionID)
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// StartSession
// ──────────────────────────────────────────────────────────────────────────────

func TestStartSession_ProveedorSinRolEstoque(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.StartSession(dto.StartStockEntryRequest{
		AgentID:   customerID, // cliente, no proveedor de estoque
		InvoiceID: invoiceID,
		EntryDate: "2026-08-28",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un agente sin rol fornecedor_estoque no puede abrir una entrada")
}

func TestStartSession_InvoiceYaCommiteada(t *testing.T) {
	f := newFixture(t)
	// El ledger ya tiene una unidad de esa invoice.
	f.store.units = append(f.store.units, &entity.InventoryUnit{
		AgentID: vendorID, PurchaseInvoice: "INV-2026-001",
	})
	_, err := f.uc.StartSession(dto.StartStockEntryRequest{
		AgentID:   vendorID,
		InvoiceID: invoiceID,
		EntryDate: "2026-08-28",
	})
	assert.ErrorIs(t, err, domain.ErrInvoiceCommitted,
		"una invoice con unidades en el ledger no admite otra entrada")
}

func TestStartSession_FechaInvalida(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.StartSession(dto.StartStockEntryRequest{
		AgentID:   vendorID,
		InvoiceID: invoiceID,
		EntryDate: "28/08/2026",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de lotes
// ──────────────────────────────────────────────────────────────────────────────

func TestMapLot_BackToBackSinCliente(t *testing.T) {
	f := newFixture(t)
	id := f.startAndUpload(t)
	_, err := f.uc.MapLot(id, dto.MapLotRequest{
		LotID: "LOT-1", LocationID: locationID, BackToBack: true,
	})
	assert.ErrorIs(t, err, domain.ErrMissingCustomer,
		"back-to-back sin cliente debe rechazarse")
}

func TestReview_ConLoteSinUbicacion(t *testing.T) {
	f := newFixture(t)
	id := f.startAndUpload(t)
	_, err := f.uc.MapLot(id, dto.MapLotRequest{LotID: "LOT-1", LocationID: locationID})
	require.NoError(t, err)
	_, err = f.uc.Review(id)
	assert.ErrorIs(t, err, domain.ErrLotUnmapped,
		"no se puede revisar con lotes sin ubicación")
}

func TestGet_CommitReadySoloConTodoMapeado(t *testing.T) {
	f := newFixture(t)
	id := f.startAndUpload(t)

	resp, err := f.uc.Get(id)
	require.NoError(t, err)
	assert.False(t, resp.CommitReady)

	f.mapAllLots(t, id)
	resp, err = f.uc.Get(id)
	require.NoError(t, err)
	assert.True(t, resp.CommitReady)
	assert.Equal(t, 1, resp.InvalidRows, "la fila sin IMEI/serial queda retenida pero inválida")
}

// ──────────────────────────────────────────────────────────────────────────────
// Commit
// ──────────────────────────────────────────────────────────────────────────────

func TestCommit_CreaUnidadesEstimateYReceivable(t *testing.T) {
	f := newFixture(t)
	id := f.startAndUpload(t)
	f.mapAllLots(t, id)

	result, err := f.uc.Commit(context.Background(), id, operatorID)
	require.NoError(t, err)

	assert.Equal(t, 3, result.UnitsCreated, "sólo las 3 filas válidas entran al ledger")
	assert.Equal(t, 1, result.SkippedRows)
	assert.Equal(t, 1, result.EstimatesCreated, "un estimate por cliente back-to-back")
	assert.Equal(t, 1, result.ReceivablesCreated)

	// Unidades: LOT-1 reservadas para el cliente, LOT-2 disponible.
	require.Len(t, f.store.units, 3)
	reserved := 0
	for _, u := range f.store.units {
		assert.Equal(t, "INV-2026-001", u.PurchaseInvoice)
		assert.Equal(t, locationID, u.LocationID)
		if u.Status == entity.UnitStatusReserved {
			reserved++
			assert.Equal(t, customerID, u.ReservedForID)
			assert.NotEmpty(t, u.EstimateID, "la unidad reservada debe apuntar al estimate")
		} else {
			assert.Equal(t, entity.UnitStatusAvailable, u.Status)
			assert.Empty(t, u.ReservedForID)
		}
	}
	assert.Equal(t, 2, reserved, "las dos unidades de LOT-1 quedan reservadas")

	// Estimate: las dos unidades se agrupan en una línea, costo first-seen 100,
	// precio cost*1.2, margen 20%.
	require.Len(t, f.store.estimates, 1)
	est := f.store.estimates[0]
	assert.Equal(t, customerID, est.AgentID)
	assert.Equal(t, entity.EstimateStatusPreApproved, est.Status)

	require.Len(t, f.store.items, 1)
	item := f.store.items[0]
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.CostPrice.Equal(decimal.NewFromInt(100)),
		"el costo del grupo es el de la primera unidad vista, no un promedio")
	assert.True(t, item.UnitPrice.Equal(decimal.NewFromInt(120)),
		"precio = costo * markup 1.2")
	assert.True(t, item.MarginPercent.Equal(decimal.NewFromInt(20)))

	// Totales re-derivados de las líneas: 2 * 120 = 240.
	assert.True(t, est.Subtotal.Equal(decimal.NewFromInt(240)), "subtotal = %s", est.Subtotal)
	assert.True(t, est.Total.Equal(decimal.NewFromInt(240)))

	// Cuenta a cobrar espejando el total del estimate.
	require.Len(t, f.store.receivables, 1)
	recv := f.store.receivables[0]
	assert.Equal(t, customerID, recv.AgentID)
	assert.Equal(t, est.ID, recv.EstimateID)
	assert.Equal(t, entity.ReceivableStatusPending, recv.Status)
	assert.True(t, recv.Amount.Equal(est.Total))

	resp, err := f.uc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "done", resp.State)
}

func TestCommit_GrupoConCostoCeroNoTieneMargen(t *testing.T) {
	// Precio de planilla ilegible y sin línea de invoice que lo resuelva: la
	// fila entra con costo 0. La línea del estimate debe salir con precio 0 y
	// margen 0, no con el porcentaje del factor de markup.
	sheet := [][]string{
		{"Modelo", "Capacidade", "Grade", "Preço", "IMEI", "Serial", "Lot ID"},
		{"iPhone 13", "128GB", "A", "", "350000000000009", "", "LOT-9"},
	}
	f := newFixtureSheet(t, sheet)
	id := f.startAndUpload(t)
	_, err := f.uc.MapLot(id, dto.MapLotRequest{
		LotID: "LOT-9", LocationID: locationID, BackToBack: true, CustomerID: customerID,
	})
	require.NoError(t, err)
	_, err = f.uc.Review(id)
	require.NoError(t, err)

	_, err = f.uc.Commit(context.Background(), id, operatorID)
	require.NoError(t, err)

	require.Len(t, f.store.items, 1)
	item := f.store.items[0]
	assert.True(t, item.CostPrice.IsZero())
	assert.True(t, item.UnitPrice.IsZero())
	assert.True(t, item.MarginPercent.IsZero(),
		"con costo cero el margen es 0, no el del markup; margen = %s", item.MarginPercent)
}

func TestCommit_RollbackTotalSiFallaElBatch(t *testing.T) {
	f := newFixture(t)
	id := f.startAndUpload(t)
	f.mapAllLots(t, id)

	f.store.failBulk = true
	_, err := f.uc.Commit(context.Background(), id, operatorID)
	require.ErrorIs(t, err, errBulkFail)

	// Nada quedó persistido: estimates y receivables de la fase A se
	// revirtieron junto con el batch.
	assert.Empty(t, f.store.units)
	assert.Empty(t, f.store.estimates)
	assert.Empty(t, f.store.items)
	assert.Empty(t, f.store.receivables)

	// La sesión vuelve a revisión y el reintento funciona.
	resp, err := f.uc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "review", resp.State)

	f.store.failBulk = false
	result, err := f.uc.Commit(context.Background(), id, operatorID)
	require.NoError(t, err)
	assert.Equal(t, 3, result.UnitsCreated)
}

func TestCommit_ConflictoSiOtraSesionCommiteo(t *testing.T) {
	f := newFixture(t)
	id := f.startAndUpload(t)
	f.mapAllLots(t, id)

	// Otra sesión insertó unidades de la misma invoice mientras tanto.
	f.store.units = append(f.store.units, &entity.InventoryUnit{
		AgentID: vendorID, PurchaseInvoice: "INV-2026-001",
	})
	_, err := f.uc.Commit(context.Background(), id, operatorID)
	assert.ErrorIs(t, err, domain.ErrInvoiceCommitted,
		"el re-chequeo dentro de la tx debe detectar el doble commit")
}

func TestAbandon_DescartaSesion(t *testing.T) {
	f := newFixture(t)
	id := f.startAndUpload(t)
	require.NoError(t, f.uc.Abandon(id))
	_, err := f.uc.Get(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
