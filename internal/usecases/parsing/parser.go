// Package parsing converte as linhas brutas do arquivo de vendas em transações tipadas
package parsing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

const (
	fieldSeparator = "|"
	fieldCount     = 8
)

// Result é o resultado do parse de uma linha. Err é um *domain.RecordError quando a linha foi descartada.
type Result struct {
	Line        int
	Raw         string
	Transaction domain.Transaction
	Err         error
}

func (r Result) OK() bool {
	return r.Err == nil
}

// Parse converte as linhas em transações, descartando as malformadas e preservando a ordem
func Parse(rawLines []string) []domain.Transaction {
	transactions, _ := Split(ParseLines(rawLines))
	return transactions
}

// ParseLines retorna um Result por linha para que o chamador possa auditar os descartes
func ParseLines(rawLines []string) []Result {
	results := make([]Result, 0, len(rawLines))
	for i, raw := range rawLines {
		results = append(results, ParseLine(i+1, raw))
	}

	return results
}

// Split separa as transações aceitas dos resultados descartados
func Split(results []Result) ([]domain.Transaction, []Result) {
	transactions := make([]domain.Transaction, 0, len(results))
	var malformed []Result
	for _, r := range results {
		if !r.OK() {
			malformed = append(malformed, r)
			continue
		}
		transactions = append(transactions, r.Transaction)
	}

	return transactions, malformed
}

// ParseLine interpreta uma linha no formato
// TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region
func ParseLine(line int, raw string) Result {
	result := Result{Line: line, Raw: raw}

	parts := strings.Split(raw, fieldSeparator)
	if len(parts) != fieldCount {
		result.Err = domain.NewMalformedRecordError(
			domain.CodeFieldCount,
			line,
			fmt.Sprintf("expected %d fields, got %d", fieldCount, len(parts)),
		)
		return result
	}

	// Vírgulas são separadores de milhar nos campos numéricos e ruído no nome do produto
	productName := stripThousands(parts[3])
	quantityStr := strings.TrimSpace(stripThousands(parts[4]))
	priceStr := strings.TrimSpace(stripThousands(parts[5]))

	quantity, err := strconv.Atoi(quantityStr)
	if err != nil {
		result.Err = domain.NewMalformedRecordError(domain.CodeQuantity, line, fmt.Sprintf("quantity %q is not an integer", quantityStr))
		return result
	}

	unitPrice, err := decimal.NewFromString(priceStr)
	if err != nil {
		result.Err = domain.NewMalformedRecordError(domain.CodeUnitPrice, line, fmt.Sprintf("unit price %q is not a number", priceStr))
		return result
	}

	result.Transaction = domain.Transaction{
		TransactionID: parts[0],
		Date:          parts[1],
		ProductID:     parts[2],
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    parts[6],
		Region:        parts[7],
	}

	return result
}

func stripThousands(s string) string {
	return strings.ReplaceAll(s, ",", "")
}
