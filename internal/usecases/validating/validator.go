// Package validating aplica as regras estruturais e os filtros opcionais às transações
package validating

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

// Filters são os filtros opcionais de negócio. Valores vazios ou nil não filtram.
type Filters struct {
	Region    string
	MinAmount *decimal.Decimal
	MaxAmount *decimal.Decimal
}

// Allows informa se a transação passa pelos filtros. O valor considerado é Quantity × UnitPrice.
func (f Filters) Allows(t domain.Transaction) bool {
	if f.Region != "" && t.Region != f.Region {
		return false
	}

	amount := t.Amount()
	if f.MinAmount != nil && amount.LessThan(*f.MinAmount) {
		return false
	}
	if f.MaxAmount != nil && amount.GreaterThan(*f.MaxAmount) {
		return false
	}

	return true
}

// Rejection é uma transação descartada por violar as regras estruturais
type Rejection struct {
	Transaction domain.Transaction
	Err         error
}

// Outcome é o resultado completo da validação de um lote
type Outcome struct {
	Valid    []domain.Transaction
	Rejected []Rejection
	Filtered []domain.Transaction
	Summary  domain.ValidationSummary
}

// Check retorna um *domain.RecordError se a transação violar alguma regra estrutural
func Check(t domain.Transaction) error {
	switch {
	case t.Quantity <= 0:
		return domain.NewInvalidRecordError(domain.CodeNonPositiveQuantity, t.TransactionID, "quantity must be positive")
	case !t.UnitPrice.IsPositive():
		return domain.NewInvalidRecordError(domain.CodeNonPositivePrice, t.TransactionID, "unit price must be positive")
	case !strings.HasPrefix(t.TransactionID, "T"):
		return domain.NewInvalidRecordError(domain.CodeTransactionPrefix, t.TransactionID, "transaction ID must start with T")
	case !strings.HasPrefix(t.ProductID, "P"):
		return domain.NewInvalidRecordError(domain.CodeProductPrefix, t.TransactionID, "product ID must start with P")
	case !strings.HasPrefix(t.CustomerID, "C"):
		return domain.NewInvalidRecordError(domain.CodeCustomerPrefix, t.TransactionID, "customer ID must start with C")
	case t.Region == "":
		return domain.NewInvalidRecordError(domain.CodeEmptyRegion, t.TransactionID, "region is required")
	}

	return nil
}

// ValidateAndFilter descarta as transações inválidas (contadas) e as que não passam
// nos filtros (não contadas). Retorna as válidas, o total de inválidas e o resumo.
func ValidateAndFilter(transactions []domain.Transaction, filters Filters) ([]domain.Transaction, int, domain.ValidationSummary) {
	outcome := Validate(transactions, filters)
	return outcome.Valid, outcome.Summary.Invalid, outcome.Summary
}

// Validate é como ValidateAndFilter, mas mantém o motivo de cada descarte
func Validate(transactions []domain.Transaction, filters Filters) Outcome {
	regions, amountRange := Observe(transactions)

	logrus.WithFields(logrus.Fields{
		"regions":      strings.Join(regions, ", "),
		"amount_min":   amountRange.Min.String(),
		"amount_max":   amountRange.Max.String(),
		"amount_empty": amountRange.Empty,
	}).Debug("Faixa observada no lote de transações")

	outcome := Outcome{
		Valid: make([]domain.Transaction, 0, len(transactions)),
	}

	for _, t := range transactions {
		if err := Check(t); err != nil {
			outcome.Rejected = append(outcome.Rejected, Rejection{Transaction: t, Err: err})
			continue
		}

		if !filters.Allows(t) {
			outcome.Filtered = append(outcome.Filtered, t)
			continue
		}

		outcome.Valid = append(outcome.Valid, t)
	}

	outcome.Summary = domain.ValidationSummary{
		TotalInput:  len(transactions),
		Invalid:     len(outcome.Rejected),
		Filtered:    len(outcome.Filtered),
		FinalCount:  len(outcome.Valid),
		Regions:     regions,
		AmountRange: amountRange,
	}

	return outcome
}

// Observe lista as regiões distintas (não vazias, em ordem alfabética) e a faixa de valores
// das transações com quantidade positiva. Sem transações elegíveis a faixa volta com Empty = true.
func Observe(transactions []domain.Transaction) ([]string, domain.AmountRange) {
	seen := make(map[string]struct{})
	regions := make([]string, 0)
	amountRange := domain.AmountRange{Empty: true}

	for _, t := range transactions {
		if t.Region != "" {
			if _, ok := seen[t.Region]; !ok {
				seen[t.Region] = struct{}{}
				regions = append(regions, t.Region)
			}
		}

		if t.Quantity <= 0 {
			continue
		}

		amount := t.Amount()
		if amountRange.Empty {
			amountRange = domain.AmountRange{Min: amount, Max: amount}
			continue
		}
		if amount.LessThan(amountRange.Min) {
			amountRange.Min = amount
		}
		if amount.GreaterThan(amountRange.Max) {
			amountRange.Max = amount
		}
	}

	sort.Strings(regions)

	return regions, amountRange
}
