package stockentry

import (
	"strings"
	"time"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
)

// State paso del wizard de entrada de estoque. Las transiciones son explícitas
// y con guardas; nunca se salta un paso por índice.
type State string

const (
	StateSelectSource State = "select_source" // elegir proveedor + invoice + fecha
	StateUploadSheet  State = "upload_sheet"  // subir la planilla
	StateMapLots      State = "map_lots"      // asignar ubicación / back-to-back por lote
	StateReview       State = "review"        // revisión del batimento
	StateCommitting   State = "committing"    // commit en curso
	StateDone         State = "done"
)

// LotMapping decisión del operador para un lote: ubicación obligatoria,
// reserva back-to-back opcional con cliente de destino.
type LotMapping struct {
	LocationID string
	BackToBack bool
	CustomerID string // obligatorio cuando BackToBack; vacío en caso contrario
}

// Session estado completo de un wizard en curso. Una sesión por operador;
// nada se escribe en la base hasta el commit final.
type Session struct {
	ID            string
	AgentID       string // proveedor
	InvoiceID     string
	InvoiceNumber string
	EntryDate     time.Time
	State         State
	FileName      string
	Lots          []string // orden de primera aparición en la planilla
	Mappings      map[string]*LotMapping
	Items         []entity.InvoiceItem
	Recon         *Reconciliation
	CreatedAt     time.Time
}

// NewSession crea la sesión ya con la selección de origen hecha (el paso
// SelectSource se resuelve al crear: proveedor, invoice y fecha son requisitos).
func NewSession(id, agentID, invoiceID, invoiceNumber string, entryDate time.Time) (*Session, error) {
	if agentID == "" || invoiceID == "" || entryDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}
	return &Session{
		ID:            id,
		AgentID:       agentID,
		InvoiceID:     invoiceID,
		InvoiceNumber: invoiceNumber,
		EntryDate:     entryDate,
		State:         StateUploadSheet,
		Mappings:      make(map[string]*LotMapping),
		CreatedAt:     time.Now(),
	}, nil
}

// AttachSheet incorpora el resultado del parseo y corre la conciliación contra
// las líneas de la invoice. Con lotes pasa a MapLots; sin lotes, directo a Review.
func (s *Session) AttachSheet(fileName string, parsed *ParseResult, items []entity.InvoiceItem) error {
	if s.State != StateUploadSheet && s.State != StateMapLots && s.State != StateReview {
		return domain.ErrInvalidTransition
	}
	s.FileName = fileName
	s.Lots = parsed.Lots
	s.Items = items
	s.Mappings = make(map[string]*LotMapping, len(parsed.Lots))
	for _, lot := range parsed.Lots {
		s.Mappings[lot] = &LotMapping{}
	}
	s.Recon = Reconcile(parsed.Rows, items)
	if len(parsed.Lots) > 0 {
		s.State = StateMapLots
	} else {
		s.State = StateReview
	}
	return nil
}

// MapLot registra la decisión del operador para un lote descubierto.
// Regla back-to-back: con el flag activo el cliente es obligatorio; al
// desactivarlo el cliente se limpia, nunca queda colgando.
func (s *Session) MapLot(lotID, locationID string, backToBack bool, customerID string) error {
	if s.State != StateMapLots && s.State != StateReview {
		return domain.ErrInvalidTransition
	}
	mapping, ok := s.Mappings[lotID]
	if !ok {
		return domain.ErrNotFound
	}
	if backToBack && customerID == "" {
		return domain.ErrMissingCustomer
	}
	if !backToBack {
		customerID = ""
	}
	mapping.LocationID = locationID
	mapping.BackToBack = backToBack
	mapping.CustomerID = customerID
	return nil
}

// AllLotsLocated gating del commit: todo lote descubierto necesita ubicación.
func (s *Session) AllLotsLocated() bool {
	for _, lot := range s.Lots {
		if m := s.Mappings[lot]; m == nil || m.LocationID == "" {
			return false
		}
	}
	return true
}

// ToReview avanza de MapLots a Review. Guarda: ningún lote sin ubicación y
// ningún back-to-back sin cliente.
func (s *Session) ToReview() error {
	if s.State == StateReview {
		return nil
	}
	if s.State != StateMapLots {
		return domain.ErrInvalidTransition
	}
	if !s.AllLotsLocated() {
		return domain.ErrLotUnmapped
	}
	for _, m := range s.Mappings {
		if m.BackToBack && m.CustomerID == "" {
			return domain.ErrMissingCustomer
		}
	}
	s.State = StateReview
	return nil
}

// BeginCommit marca la sesión como en commit. Revalida las guardas: el gating
// debe sostenerse aunque el operador haya vuelto atrás a remapear.
func (s *Session) BeginCommit() error {
	if s.State != StateReview {
		return domain.ErrInvalidTransition
	}
	if !s.AllLotsLocated() {
		return domain.ErrLotUnmapped
	}
	for _, m := range s.Mappings {
		if m.BackToBack && m.CustomerID == "" {
			return domain.ErrMissingCustomer
		}
	}
	s.State = StateCommitting
	return nil
}

// FinishCommit / FailCommit cierran o revierten el estado Committing. Tras un
// fallo la sesión vuelve a Review para que el operador corrija y reintente.
func (s *Session) FinishCommit() { s.State = StateDone }
func (s *Session) FailCommit()   { s.State = StateReview }

// MappingFor devuelve el mapeo del lote de la fila, si la fila tiene lote.
func (s *Session) MappingFor(row ParsedRow) *LotMapping {
	if row.LotID == "" {
		return nil
	}
	if m, ok := s.Mappings[row.LotID]; ok {
		return m
	}
	// Lotes difieren sólo en mayúsculas/espacios en planillas sucias.
	for lot, m := range s.Mappings {
		if strings.EqualFold(strings.TrimSpace(lot), strings.TrimSpace(row.LotID)) {
			return m
		}
	}
	return nil
}

// RowsWithoutLot cuenta filas sin lote: se commitean sin ubicación ni reserva,
// y el hueco se muestra explícitamente al operador en la revisión.
func (s *Session) RowsWithoutLot() int {
	if s.Recon == nil {
		return 0
	}
	n := 0
	for _, row := range s.Recon.Rows {
		if row.LotID == "" {
			n++
		}
	}
	return n
}

// InvalidRows filas retenidas pero excluidas del commit (sin modelo o sin
// IMEI/serial).
func (s *Session) InvalidRows() int {
	if s.Recon == nil {
		return 0
	}
	n := 0
	for _, row := range s.Recon.Rows {
		if !row.Valid {
			n++
		}
	}
	return n
}
