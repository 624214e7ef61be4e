package stockentry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/estoque-pro/internal/domain/stockentry"
)

// Pares que deben canonicalizar igual: nombre de subasta vs. nombre de catálogo.
func TestModelKey_Aliases(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"se2 vs geração por extenso", "IPHONE SE2", "iPhone SE (2ª geração)"},
		{"se2 vs generation en inglés", "IPHONE SE2", "iPhone SE 2nd Generation"},
		{"año entre paréntesis ignorado", "IPHONE SE2 (2020)", "iphone se2"},
		{"espacios y guiones irrelevantes", "IPHONE 16 PRO-MAX", "iPhone 16 Pro Max"},
		{"acentos irrelevantes", "iphone se 2a geracao", "iPhone SE (2ª Geração)"},
		{"gen como prefijo", "iPad Gen 9", "iPad 9th generation"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, stockentry.ModelKey(tc.a), stockentry.ModelKey(tc.b),
				"%q y %q deben producir la misma clave canónica", tc.a, tc.b)
		})
	}
}

func TestModelKey_Distintos(t *testing.T) {
	assert.NotEqual(t, stockentry.ModelKey("IPHONE SE2"), stockentry.ModelKey("IPHONE SE3"))
	assert.NotEqual(t, stockentry.ModelKey("IPHONE 15"), stockentry.ModelKey("IPHONE 15 PRO"))
}

func TestCapacityKey(t *testing.T) {
	assert.Equal(t, "128GB", stockentry.CapacityKey("128 gb"))
	assert.Equal(t, "128GB", stockentry.CapacityKey("128GB"))
	assert.Equal(t, "1TB", stockentry.CapacityKey("1 tb"))
	assert.Equal(t, "", stockentry.CapacityKey(""))
}

// Simetría: match(a,b) == match(b,a) para cualquier par.
func TestMatchModelCapacity_Simetria(t *testing.T) {
	pairs := [][4]string{
		{"IPHONE SE2", "64GB", "iPhone SE (2ª geração)", "64 GB"},
		{"IPHONE 13", "128GB", "iPhone 13", "256GB"},
		{"Galaxy S23", "", "GALAXY-S23", "128GB"},
		{"iPad Air", "64GB", "MacBook Pro", "512GB"},
	}
	for _, p := range pairs {
		ab := stockentry.MatchModelCapacity(p[0], p[1], p[2], p[3])
		ba := stockentry.MatchModelCapacity(p[2], p[3], p[0], p[1])
		assert.Equal(t, ab, ba, "el comparador debe ser simétrico para %v", p)
	}
}

// Reflexividad: todo par matchea consigo mismo.
func TestMatchModelCapacity_Reflexividad(t *testing.T) {
	for _, m := range []string{"IPHONE SE2 (2020)", "iphone 16 pro max", "Galaxy Z-Fold 5"} {
		assert.True(t, stockentry.MatchModelCapacity(m, "128GB", m, "128GB"))
	}
}

func TestMatchModelCapacity_CapacidadSoloSiAmbos(t *testing.T) {
	// Un lado sin capacidad (accesorio, o catálogo incompleto): matchea por modelo.
	assert.True(t, stockentry.MatchModelCapacity("AirPods Pro", "", "AIRPODS PRO", ""))
	assert.True(t, stockentry.MatchModelCapacity("iPhone 13", "", "IPHONE 13", "128GB"))
	// Ambos con capacidad distinta: no matchea.
	assert.False(t, stockentry.MatchModelCapacity("iPhone 13", "64GB", "IPHONE 13", "128GB"))
}
