package domain

import "github.com/shopspring/decimal"

// Sale é uma transação válida acompanhada da receita já calculada.
// As funções de agregação recebem []Sale para não recalcular Quantity × UnitPrice.
type Sale struct {
	Transaction
	Revenue decimal.Decimal
}

func NewSales(transactions []Transaction) []Sale {
	sales := make([]Sale, 0, len(transactions))
	for _, t := range transactions {
		sales = append(sales, Sale{Transaction: t, Revenue: t.Amount()})
	}

	return sales
}
