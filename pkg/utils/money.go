package utils

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// RoundWithTwoDecimalPlace converte um valor monetário para float com duas casas (arredondamento bancário)
func RoundWithTwoDecimalPlace(d decimal.Decimal) float64 {
	if d.IsZero() {
		return 0
	}

	return d.RoundBank(2).InexactFloat64()
}

// FormatCurrency formata no estilo $1,234.56
func FormatCurrency(d decimal.Decimal) string {
	rounded := d.RoundBank(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Shift(2).IntPart()

	return fmt.Sprintf("%s$%s.%02d", sign, humanize.Comma(whole.IntPart()), cents)
}

// FormatWholeCurrency formata sem centavos, no estilo $1,500
func FormatWholeCurrency(d decimal.Decimal) string {
	rounded := d.RoundBank(0)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	return fmt.Sprintf("%s$%s", sign, humanize.Comma(rounded.IntPart()))
}
