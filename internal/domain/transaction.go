// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "github.com/shopspring/decimal"

// Transaction representa uma linha de venda já convertida para tipos
type Transaction struct {
	TransactionID string
	Date          string // formato ISO (yyyy-mm-dd), ordenável lexicamente
	ProductID     string
	ProductName   string
	Quantity      int
	UnitPrice     decimal.Decimal
	CustomerID    string
	Region        string
}

// Amount retorna Quantity × UnitPrice. O valor nunca é armazenado na transação.
func (t Transaction) Amount() decimal.Decimal {
	return decimal.NewFromInt(int64(t.Quantity)).Mul(t.UnitPrice)
}
