package utils

import "github.com/shopspring/decimal"

// Valores monetários circulam pelo engine como centavos inteiros. Decimais
// entram e saem apenas nas bordas (banco, API), nunca acumulamos em float.

// CentsFromDecimal converte um valor decimal em centavos inteiros,
// arredondando para 2 casas decimais
func CentsFromDecimal(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}

// DecimalFromCents converte centavos inteiros de volta para decimal com 2 casas
func DecimalFromCents(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// ProRataCents calcula o valor de `days` dias de faturamento sobre uma tarifa
// mensal em centavos, na base fixa de 30 dias. O arredondamento é para o
// centavo, metade para longe de zero. Com days == 30 o resultado é a tarifa
// mensal integral.
func ProRataCents(monthlyRateCents int64, days int) int64 {
	if days <= 0 {
		return 0
	}

	return decimal.New(monthlyRateCents, 0).
		Mul(decimal.NewFromInt(int64(days))).
		Div(decimal.NewFromInt(BillableDaysPerMonth)).
		Round(0).
		IntPart()
}
