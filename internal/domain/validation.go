package domain

import "github.com/shopspring/decimal"

// AmountRange é o menor e o maior valor observado entre as transações com quantidade positiva.
// Empty indica que nenhuma transação entrou no cálculo.
type AmountRange struct {
	Min   decimal.Decimal
	Max   decimal.Decimal
	Empty bool
}

// ValidationSummary registra o resultado da validação de um lote
type ValidationSummary struct {
	TotalInput  int
	Invalid     int
	Filtered    int // descartadas pelos filtros opcionais, não contam como inválidas
	FinalCount  int
	Regions     []string // regiões distintas observadas, em ordem alfabética
	AmountRange AmountRange
}
