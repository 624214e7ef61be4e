package stockentry

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/estoque-pro/internal/application/dto"
	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/repository"
	"github.com/tu-usuario/estoque-pro/internal/domain/stockentry"
)

// UseCase orquesta el wizard de entrada de estoque. Las sesiones viven en
// memoria hasta el commit: nada toca la base antes del paso final.
type UseCase struct {
	agentRepo     repository.AgentRepository
	invoiceRepo   repository.InvoiceRepository
	inventoryRepo repository.InventoryRepository
	locationRepo  repository.StockLocationRepository
	reader        SheetReader
	txRunner      TxRunner
	b2bMarkup     float64

	mu       sync.RWMutex
	sessions map[string]*stockentry.Session
}

// NewUseCase construye el caso de uso del wizard.
func NewUseCase(
	agentRepo repository.AgentRepository,
	invoiceRepo repository.InvoiceRepository,
	inventoryRepo repository.InventoryRepository,
	locationRepo repository.StockLocationRepository,
	reader SheetReader,
	txRunner TxRunner,
	b2bMarkup float64,
) *UseCase {
	return &UseCase{
		agentRepo:     agentRepo,
		invoiceRepo:   invoiceRepo,
		inventoryRepo: inventoryRepo,
		locationRepo:  locationRepo,
		reader:        reader,
		txRunner:      txRunner,
		b2bMarkup:     b2bMarkup,
		sessions:      make(map[string]*stockentry.Session),
	}
}

// StartSession abre una sesión: proveedor con rol de estoque, invoice del
// proveedor aún sin unidades en el ledger, y fecha de entrada.
func (uc *UseCase) StartSession(in dto.StartStockEntryRequest) (*dto.StockEntrySessionResponse, error) {
	agent, err := uc.agentRepo.GetByID(in.AgentID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, domain.ErrNotFound
	}
	if !agent.HasRole(entity.RoleStockVendor) {
		return nil, domain.ErrInvalidInput
	}
	invoice, err := uc.invoiceRepo.GetByID(in.InvoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil || invoice.AgentID != in.AgentID {
		return nil, domain.ErrNotFound
	}
	committed, err := uc.invoiceCommitted(in.AgentID, invoice.InvoiceNumber)
	if err != nil {
		return nil, err
	}
	if committed {
		return nil, domain.ErrInvoiceCommitted
	}
	entryDate, err := time.Parse("2006-01-02", in.EntryDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}

	sess, err := stockentry.NewSession(uuid.New().String(), in.AgentID, invoice.ID, invoice.InvoiceNumber, entryDate)
	if err != nil {
		return nil, err
	}
	uc.mu.Lock()
	uc.sessions[sess.ID] = sess
	uc.mu.Unlock()
	return uc.toResponse(sess), nil
}

// UploadSheet decodifica el archivo, parsea las filas y corre la conciliación
// contra las líneas de la invoice. Re-subir reemplaza la planilla anterior.
func (uc *UseCase) UploadSheet(sessionID, fileName string, data []byte) (*dto.StockEntrySessionResponse, error) {
	sess, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	cells, err := uc.reader.Read(fileName, data)
	if err != nil {
		return nil, err
	}
	parsed, err := stockentry.ParseRows(cells)
	if err != nil {
		return nil, err
	}
	items, err := uc.invoiceRepo.GetItemsByInvoiceID(sess.InvoiceID)
	if err != nil {
		return nil, err
	}
	if err := sess.AttachSheet(fileName, parsed, items); err != nil {
		return nil, err
	}
	return uc.toResponse(sess), nil
}

// MapLot registra ubicación y reserva back-to-back para un lote. La ubicación
// debe existir; el cliente de destino debe existir y tener rol cliente.
func (uc *UseCase) MapLot(sessionID string, in dto.MapLotRequest) (*dto.StockEntrySessionResponse, error) {
	sess, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	if in.LocationID != "" {
		loc, err := uc.locationRepo.GetByID(in.LocationID)
		if err != nil {
			return nil, err
		}
		if loc == nil {
			return nil, domain.ErrNotFound
		}
	}
	if in.BackToBack {
		if in.CustomerID == "" {
			return nil, domain.ErrMissingCustomer
		}
		customer, err := uc.agentRepo.GetByID(in.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, domain.ErrNotFound
		}
		if !customer.HasRole(entity.RoleCustomer) {
			return nil, domain.ErrInvalidInput
		}
	}
	if err := sess.MapLot(in.LotID, in.LocationID, in.BackToBack, in.CustomerID); err != nil {
		return nil, err
	}
	return uc.toResponse(sess), nil
}

// Review avanza la sesión al paso de revisión, validando el gating de lotes.
func (uc *UseCase) Review(sessionID string) (*dto.StockEntrySessionResponse, error) {
	sess, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	if err := sess.ToReview(); err != nil {
		return nil, err
	}
	return uc.toResponse(sess), nil
}

// Get devuelve el estado actual de la sesión.
func (uc *UseCase) Get(sessionID string) (*dto.StockEntrySessionResponse, error) {
	sess, err := uc.session(sessionID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(sess), nil
}

// Abandon descarta una sesión que no esté en commit.
func (uc *UseCase) Abandon(sessionID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	sess, ok := uc.sessions[sessionID]
	if !ok {
		return domain.ErrSessionNotFound
	}
	if sess.State == stockentry.StateCommitting {
		return domain.ErrInvalidTransition
	}
	delete(uc.sessions, sessionID)
	return nil
}

func (uc *UseCase) session(id string) (*stockentry.Session, error) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	sess, ok := uc.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

// invoiceCommitted consulta el ledger: una invoice con unidades ya registradas
// no admite otra entrada.
func (uc *UseCase) invoiceCommitted(agentID, invoiceNumber string) (bool, error) {
	numbers, err := uc.inventoryRepo.PurchaseInvoiceNumbers(agentID)
	if err != nil {
		return false, err
	}
	for _, n := range numbers {
		if n == invoiceNumber {
			return true, nil
		}
	}
	return false, nil
}

func (uc *UseCase) toResponse(sess *stockentry.Session) *dto.StockEntrySessionResponse {
	resp := &dto.StockEntrySessionResponse{
		ID:            sess.ID,
		State:         string(sess.State),
		AgentID:       sess.AgentID,
		InvoiceID:     sess.InvoiceID,
		InvoiceNumber: sess.InvoiceNumber,
		EntryDate:     sess.EntryDate.Format("2006-01-02"),
		FileName:      sess.FileName,
		CreatedAt:     sess.CreatedAt,
	}
	for _, lot := range sess.Lots {
		m := sess.Mappings[lot]
		resp.Lots = append(resp.Lots, dto.LotMappingResponse{
			LotID:      lot,
			LocationID: m.LocationID,
			BackToBack: m.BackToBack,
			CustomerID: m.CustomerID,
		})
	}
	if sess.Recon != nil {
		for _, row := range sess.Recon.Rows {
			resp.Rows = append(resp.Rows, dto.ParsedRowResponse{
				Model:        row.Model,
				Capacity:     row.Capacity,
				Color:        row.Color,
				Grade:        row.Grade,
				IMEI:         row.IMEI,
				SerialNumber: row.SerialNumber,
				LotID:        row.LotID,
				Valid:        row.Valid,
				Price:        row.ResolvedPrice,
				PriceSource:  row.PriceSource,
			})
		}
		for _, d := range sess.Recon.Divergences {
			resp.Divergences = append(resp.Divergences, dto.DivergenceResponse{
				ModelName: d.Item.ModelName,
				Capacity:  d.Item.Capacity,
				LotID:     d.Item.LotID,
				Expected:  d.Expected,
				Actual:    d.Actual,
				Divergent: d.Divergent,
			})
		}
		resp.ParsedTotal = sess.Recon.ParsedTotal
		resp.InvoiceTotal = sess.Recon.InvoiceTotal
		resp.TotalDiff = sess.Recon.Diff
		resp.RowsWithoutLot = sess.RowsWithoutLot()
		resp.InvalidRows = sess.InvalidRows()
		resp.CommitReady = commitReady(sess)
	}
	return resp
}

// commitReady refleja el gating del botón de commit: planilla cargada, todo
// lote con ubicación y ningún back-to-back sin cliente.
func commitReady(sess *stockentry.Session) bool {
	if sess.State != stockentry.StateMapLots && sess.State != stockentry.StateReview {
		return false
	}
	if !sess.AllLotsLocated() {
		return false
	}
	for _, m := range sess.Mappings {
		if m.BackToBack && m.CustomerID == "" {
			return false
		}
	}
	return true
}
