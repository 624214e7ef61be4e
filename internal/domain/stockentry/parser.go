package stockentry

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/estoque-pro/internal/domain"
)

// Origen del precio efectivo de una fila tras la conciliación.
const (
	PriceFromLot   = "lot"   // línea de invoice con el mismo lote
	PriceFromModel = "model" // línea de invoice con modelo+capacidad canónicos iguales
	PriceFromSheet = "sheet" // precio de la propia planilla
)

// ParsedRow una fila de la planilla del proveedor, ya tipada y normalizada.
// Inmutable después del parseo salvo ResolvedPrice/PriceSource, que fija la
// conciliación (§ Reconcile).
type ParsedRow struct {
	Model        string
	Capacity     string
	Color        string
	Grade        string
	Price        decimal.Decimal // precio de la planilla, normalizado de moneda
	IMEI         string          // sólo dígitos
	SerialNumber string
	LotID        string
	Valid        bool // modelo presente y al menos uno de IMEI/serial

	ResolvedPrice decimal.Decimal
	PriceSource   string
}

// ParseResult filas en orden de planilla más los lotes distintos en orden de
// primera aparición.
type ParseResult struct {
	Rows []ParsedRow
	Lots []string
}

// Sinónimos aceptados por campo lógico. El binding es por contains sobre el
// header normalizado (sin acentos ni puntuación); gana el primer header que
// satisface la lista. Cubre los exports en portugués, inglés y el formato de
// subasta T-Mobile ("Auction Model", "Lot ID").
var fieldSynonyms = map[string][]string{
	"model":        {"modelo", "model"},
	"auctionmodel": {"auction model", "auctionmodel"},
	"capacity":     {"capacidade", "capacity", "cap"},
	"color":        {"cor", "color"},
	"grade":        {"grade", "quality", "condicao"},
	"price":        {"preco", "price", "valor", "unitario", "unit price"},
	"imei":         {"imei"},
	"serial":       {"serial", "sn", "serie", "serial no"},
	"lot":          {"lot id", "lotid", "lote"},
}

var (
	digitsOnly   = regexp.MustCompile(`\D`)
	multiSpace   = regexp.MustCompile(`\s{2,}`)
	currencyFix  = strings.NewReplacer("$", "", "€", "", "R", "", "r", "", "US", "", "us", "", " ", "", " ", "")
	thousandsDot = regexp.MustCompile(`^\d{1,3}(\.\d{3})+$`)
)

// normalizeHeader reduce un header a minúsculas alfanuméricas sin acentos.
func normalizeHeader(s string) string {
	return nonAlnum.ReplaceAllString(foldText(s), "")
}

// bindColumns resuelve el índice de columna de cada campo lógico (-1 si no hay
// header que matchee).
func bindColumns(header []string) map[string]int {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = normalizeHeader(h)
	}
	bound := make(map[string]int, len(fieldSynonyms))
	for field, synonyms := range fieldSynonyms {
		bound[field] = -1
		for i, h := range normalized {
			if h == "" {
				continue
			}
			for _, syn := range synonyms {
				if strings.Contains(h, normalizeHeader(syn)) {
					bound[field] = i
					break
				}
			}
			if bound[field] >= 0 {
				break
			}
		}
	}
	return bound
}

// ParsePrice normaliza un precio con convenciones de locale mixtas:
// "1.234,56" -> 1234.56, "1234,56" -> 1234.56, "1.234" -> 1234,
// "$1,234.56" -> 1234.56. Cuando aparecen punto y coma a la vez, el separador
// que aparece último es el decimal. Un string imparseable vale cero.
func ParsePrice(raw string) decimal.Decimal {
	cleaned := currencyFix.Replace(strings.TrimSpace(raw))
	if cleaned == "" {
		return decimal.Zero
	}
	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastComma > lastDot {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case lastComma >= 0:
		if strings.Count(cleaned, ",") > 1 {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			cleaned = strings.Replace(cleaned, ",", ".", 1)
		}
	case strings.Count(cleaned, ".") > 1 || thousandsDot.MatchString(cleaned):
		// Puntos como separador de miles sin parte decimal.
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}
	price, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return price
}

// splitCapacity extrae un token "<n>GB|TB" embebido en el nombre del modelo.
// Si ya se conocía la capacidad por columna propia, sólo remueve la mención
// redundante del modelo.
func splitCapacity(model, capacity string) (string, string) {
	if capacity == "" {
		if m := capacityToken.FindStringSubmatch(model); m != nil {
			capacity = m[1] + strings.ToUpper(m[2])
			model = strings.Replace(model, m[0], " ", 1)
		}
	} else if m := capacityToken.FindStringSubmatch(capacity); m != nil {
		// Mención literal de la capacidad dentro del modelo ("IPHONE 13 128GB").
		embedded := regexp.MustCompile(`(?i)\s*` + m[1] + `\s*` + m[2])
		model = embedded.ReplaceAllString(model, " ")
	}
	model = strings.TrimSpace(multiSpace.ReplaceAllString(model, " "))
	return model, capacity
}

// ParseRows convierte la matriz cruda de la planilla (primera fila = header) en
// filas tipadas. Nunca falla por una celda malformada: los numéricos default a
// cero y los strings a vacío; la validez se juzga aparte con el flag Valid.
// Retorna domain.ErrEmptySheet si no se extrae ninguna fila.
func ParseRows(records [][]string) (*ParseResult, error) {
	if len(records) < 2 {
		return nil, domain.ErrEmptySheet
	}
	columns := bindColumns(records[0])
	cell := func(row []string, field string) string {
		idx := columns[field]
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	result := &ParseResult{}
	seenLots := make(map[string]bool)
	for _, record := range records[1:] {
		if emptyRecord(record) {
			continue
		}
		model := cell(record, "model")
		// El formato de subasta trae modelo+capacidad en "Auction Model".
		if auction := cell(record, "auctionmodel"); auction != "" {
			model = auction
		}
		model, capacity := splitCapacity(model, cell(record, "capacity"))

		row := ParsedRow{
			Model:        model,
			Capacity:     capacity,
			Color:        cell(record, "color"),
			Grade:        cell(record, "grade"),
			Price:        ParsePrice(cell(record, "price")),
			IMEI:         digitsOnly.ReplaceAllString(cell(record, "imei"), ""),
			SerialNumber: cell(record, "serial"),
			LotID:        cell(record, "lot"),
		}
		row.Valid = row.Model != "" && (row.IMEI != "" || row.SerialNumber != "")
		row.ResolvedPrice = row.Price
		row.PriceSource = PriceFromSheet

		if row.LotID != "" && !seenLots[strings.ToLower(row.LotID)] {
			seenLots[strings.ToLower(row.LotID)] = true
			result.Lots = append(result.Lots, row.LotID)
		}
		result.Rows = append(result.Rows, row)
	}
	if len(result.Rows) == 0 {
		return nil, domain.ErrEmptySheet
	}
	return result, nil
}

func emptyRecord(record []string) bool {
	for _, c := range record {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
