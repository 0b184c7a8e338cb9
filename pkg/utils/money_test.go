package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCentsFromDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"Valor exato com duas casas", "113.10", 11310},
		{"Valor inteiro", "100", 10000},
		{"Arredondamento para cima", "37.705", 3771},
		{"Valor negativo", "-15.50", -1550},
		{"Zero", "0", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := decimal.RequireFromString(tt.input)
			assert.Equal(t, tt.expected, CentsFromDecimal(d))
		})
	}
}

func TestDecimalFromCents(t *testing.T) {
	assert.Equal(t, "37.70", DecimalFromCents(3770).StringFixed(2))
	assert.Equal(t, "-15.50", DecimalFromCents(-1550).StringFixed(2))
	assert.Equal(t, "0.00", DecimalFromCents(0).StringFixed(2))
}

func TestProRataCents(t *testing.T) {
	tests := []struct {
		name      string
		rateCents int64
		days      int
		expected  int64
	}{
		{
			name:      "Dez dias sobre tarifa de 113.10 rendem 37.70",
			rateCents: 11310,
			days:      10,
			expected:  3770,
		},
		{
			name:      "Mês completo rende a tarifa integral",
			rateCents: 11310,
			days:      30,
			expected:  11310,
		},
		{
			name:      "Zero dias rendem zero",
			rateCents: 11310,
			days:      0,
			expected:  0,
		},
		{
			name:      "Dias negativos rendem zero",
			rateCents: 11310,
			days:      -5,
			expected:  0,
		},
		{
			name:      "Arredondamento de meio centavo para longe de zero",
			rateCents: 10001, // 1 dia: 10001/30 = 333.366... -> 333
			days:      1,
			expected:  333,
		},
		{
			name:      "Um dia sobre tarifa que divide exato",
			rateCents: 9000,
			days:      1,
			expected:  300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ProRataCents(tt.rateCents, tt.days))
		})
	}
}

// A soma dos pró-ratas de dois trechos complementares nunca ultrapassa a
// tarifa integral em mais de um centavo de arredondamento.
func TestProRataCentsComplementarySegments(t *testing.T) {
	rateCents := int64(11310)

	for days := 0; days <= 30; days++ {
		a := ProRataCents(rateCents, days)
		b := ProRataCents(rateCents, 30-days)

		diff := a + b - rateCents
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, int64(1), "dias=%d", days)
	}
}
