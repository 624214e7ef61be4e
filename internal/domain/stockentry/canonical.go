// Package stockentry implementa el núcleo de la entrada de estoque por planilla:
// parser de planillas del proveedor, canonicalización de nombres de modelo,
// conciliación contra la invoice de compra y la máquina de estados del wizard.
package stockentry

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// aliasRule reescritura conocida aplicada antes de comparar modelos. Las reglas
// operan sobre texto ya en minúsculas y sin acentos, y existen porque las
// planillas de subasta usan nombres de marketing comprimidos que el catálogo
// escribe por extenso (ej. "SE2" vs "SE (2ª geração)").
type aliasRule struct {
	pattern *regexp.Regexp
	replace string
}

// Tabla de aliases explícita y ordenada; agregar aquí, nunca en la comparación.
var aliasRules = []aliasRule{
	// Año entre paréntesis no distingue producto: "(2020)" se ignora.
	{regexp.MustCompile(`\(\s*(?:19|20)\d{2}\s*\)`), " "},
	// Ordinales de generación en cualquier idioma de las dos fuentes:
	// "2ª geração", "2a geracao", "2nd generation", "gen 2" -> "gen2".
	{regexp.MustCompile(`\b(\d+)\s*(?:st|nd|rd|th|a)?\s*(?:geracao|generacion|generation|gen)\b`), "gen$1"},
	{regexp.MustCompile(`\b(?:geracao|generacion|generation|gen)\s*(\d+)\b`), "gen$1"},
	// Abreviación de subasta "SE2" = catálogo "SE (2ª geração)".
	{regexp.MustCompile(`\bse(\d)\b`), "se gen$1"},
}

var (
	capacityToken = regexp.MustCompile(`(?i)(\d+)\s*(GB|TB)`)
	nonAlnum      = regexp.MustCompile(`[^a-z0-9]+`)
	// NFKD para que también se descompongan ª/º antes de remover marcas.
	deaccent = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// foldText pasa a minúsculas y elimina diacríticos.
func foldText(s string) string {
	folded, _, err := transform.String(deaccent, strings.ToLower(s))
	if err != nil {
		return strings.ToLower(s)
	}
	return folded
}

// ModelKey produce la clave canónica de un nombre de modelo: minúsculas, sin
// acentos, aliases aplicados y compactado a alfanumérico. Dos strings con la
// misma clave refieren al mismo producto físico.
func ModelKey(model string) string {
	s := foldText(model)
	for _, rule := range aliasRules {
		s = rule.pattern.ReplaceAllString(s, rule.replace)
	}
	return nonAlnum.ReplaceAllString(s, "")
}

// CapacityKey normaliza la capacidad a la forma "128GB"/"1TB" sin espacios.
// Si el string no contiene un token de capacidad, compacta lo que haya.
func CapacityKey(capacity string) string {
	if m := capacityToken.FindStringSubmatch(capacity); m != nil {
		return m[1] + strings.ToUpper(m[2])
	}
	return strings.ToUpper(nonAlnum.ReplaceAllString(foldText(capacity), ""))
}

// MatchModelCapacity decide si (modelo, capacidad) de la planilla y de la
// invoice/catálogo refieren al mismo producto. Simétrico por construcción:
// ambos lados pasan por la misma canonicalización. La capacidad sólo se
// compara cuando ambos lados la informan (accesorios no tienen capacidad).
func MatchModelCapacity(aModel, aCapacity, bModel, bCapacity string) bool {
	if ModelKey(aModel) != ModelKey(bModel) {
		return false
	}
	aCap := CapacityKey(aCapacity)
	bCap := CapacityKey(bCapacity)
	if aCap == "" || bCap == "" {
		return true
	}
	return aCap == bCap
}
