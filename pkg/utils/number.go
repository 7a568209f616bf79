package utils

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// RoundWithTwoDecimalPlace arredonda para 2 casas, metade para longe do zero
func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	if d.IsZero() {
		return decimal.Zero
	}

	return d.Round(2)
}

// Percentage retorna part/total × 100 com 2 casas, ou zero quando total é zero
func Percentage(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}

	return RoundWithTwoDecimalPlace(part.Mul(hundred).Div(total))
}

// Average retorna total/count com 2 casas, ou zero quando count é zero
func Average(total decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}

	return RoundWithTwoDecimalPlace(total.Div(decimal.NewFromInt(int64(count))))
}

// Ratio retorna part/total × 100 com 2 casas para contagens, ou zero quando total é zero
func Ratio(part, total int) decimal.Decimal {
	return Percentage(decimal.NewFromInt(int64(part)), decimal.NewFromInt(int64(total)))
}
