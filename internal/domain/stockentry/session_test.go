package stockentry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/estoque-pro/internal/domain"
	"github.com/tu-usuario/estoque-pro/internal/domain/entity"
	"github.com/tu-usuario/estoque-pro/internal/domain/stockentry"
)

func newTestSession(t *testing.T) *stockentry.Session {
	t.Helper()
	s, err := stockentry.NewSession("sess-1", "agent-1", "inv-1", "INV-001", time.Now())
	require.NoError(t, err)
	return s
}

func attachTwoLots(t *testing.T, s *stockentry.Session) {
	t.Helper()
	parsed := &stockentry.ParseResult{
		Rows: []stockentry.ParsedRow{
			row("iPhone 13", "128GB", "LOT-A", "90"),
			row("iPhone 14", "256GB", "LOT-B", "110"),
			row("iPhone 15", "256GB", "", "150"), // sin lote
		},
		Lots: []string{"LOT-A", "LOT-B"},
	}
	require.NoError(t, s.AttachSheet("estoque.xlsx", parsed, []entity.InvoiceItem{}))
}

func TestNewSession_RequiereSeleccion(t *testing.T) {
	_, err := stockentry.NewSession("s", "", "inv", "N", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = stockentry.NewSession("s", "agent", "", "N", time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = stockentry.NewSession("s", "agent", "inv", "N", time.Time{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAttachSheet_ConLotesVaAMapeo(t *testing.T) {
	s := newTestSession(t)
	attachTwoLots(t, s)
	assert.Equal(t, stockentry.StateMapLots, s.State)
	assert.Equal(t, 1, s.RowsWithoutLot(), "la fila sin lote debe reportarse explícitamente")
}

func TestAttachSheet_SinLotesDirectoARevision(t *testing.T) {
	s := newTestSession(t)
	parsed := &stockentry.ParseResult{Rows: []stockentry.ParsedRow{row("iPhone 13", "128GB", "", "90")}}
	require.NoError(t, s.AttachSheet("estoque.csv", parsed, nil))
	assert.Equal(t, stockentry.StateReview, s.State)
}

// Gating del commit: indisponible mientras falte una ubicación, disponible en
// el instante en que todos los lotes la tienen.
func TestCommitGating(t *testing.T) {
	s := newTestSession(t)
	attachTwoLots(t, s)

	assert.ErrorIs(t, s.ToReview(), domain.ErrLotUnmapped)

	require.NoError(t, s.MapLot("LOT-A", "loc-1", false, ""))
	assert.False(t, s.AllLotsLocated())
	assert.ErrorIs(t, s.ToReview(), domain.ErrLotUnmapped)

	require.NoError(t, s.MapLot("LOT-B", "loc-2", false, ""))
	assert.True(t, s.AllLotsLocated())
	require.NoError(t, s.ToReview())
	require.NoError(t, s.BeginCommit())
	assert.Equal(t, stockentry.StateCommitting, s.State)
}

func TestMapLot_BackToBackExigeCliente(t *testing.T) {
	s := newTestSession(t)
	attachTwoLots(t, s)

	assert.ErrorIs(t, s.MapLot("LOT-A", "loc-1", true, ""), domain.ErrMissingCustomer)
	require.NoError(t, s.MapLot("LOT-A", "loc-1", true, "cust-9"))

	// Al desactivar el flag, el cliente se limpia.
	require.NoError(t, s.MapLot("LOT-A", "loc-1", false, "cust-9"))
	assert.Empty(t, s.Mappings["LOT-A"].CustomerID)
}

func TestMapLot_LoteDesconocido(t *testing.T) {
	s := newTestSession(t)
	attachTwoLots(t, s)
	assert.ErrorIs(t, s.MapLot("LOT-X", "loc-1", false, ""), domain.ErrNotFound)
}

func TestTransicionesInvalidas(t *testing.T) {
	s := newTestSession(t)
	// Sin planilla no hay revisión ni commit.
	assert.ErrorIs(t, s.ToReview(), domain.ErrInvalidTransition)
	assert.ErrorIs(t, s.BeginCommit(), domain.ErrInvalidTransition)

	attachTwoLots(t, s)
	assert.ErrorIs(t, s.BeginCommit(), domain.ErrInvalidTransition,
		"no se puede commitear desde MapLots")
}

func TestFailCommit_VuelveARevision(t *testing.T) {
	s := newTestSession(t)
	attachTwoLots(t, s)
	require.NoError(t, s.MapLot("LOT-A", "loc-1", false, ""))
	require.NoError(t, s.MapLot("LOT-B", "loc-2", false, ""))
	require.NoError(t, s.ToReview())
	require.NoError(t, s.BeginCommit())

	s.FailCommit()
	assert.Equal(t, stockentry.StateReview, s.State, "tras un fallo el operador corrige y reintenta")
	require.NoError(t, s.BeginCommit())
	s.FinishCommit()
	assert.Equal(t, stockentry.StateDone, s.State)
}

func TestMappingFor_LoteInsensibleAMayusculas(t *testing.T) {
	s := newTestSession(t)
	attachTwoLots(t, s)
	require.NoError(t, s.MapLot("LOT-A", "loc-1", false, ""))

	m := s.MappingFor(row("iPhone 13", "128GB", " lot-a ", "90"))
	require.NotNil(t, m)
	assert.Equal(t, "loc-1", m.LocationID)

	assert.Nil(t, s.MappingFor(row("iPhone 15", "256GB", "", "150")))
}
