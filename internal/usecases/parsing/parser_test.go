package parsing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics/internal/domain"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		validate func(t *testing.T, r Result)
	}{
		{
			name: "Linha válida",
			raw:  "T1|2024-01-01|P001|Widget|5|10.00|C1|North",
			validate: func(t *testing.T, r Result) {
				require.True(t, r.OK())
				tx := r.Transaction
				assert.Equal(t, "T1", tx.TransactionID)
				assert.Equal(t, "2024-01-01", tx.Date)
				assert.Equal(t, "P001", tx.ProductID)
				assert.Equal(t, "Widget", tx.ProductName)
				assert.Equal(t, 5, tx.Quantity)
				assert.True(t, decimal.NewFromInt(10).Equal(tx.UnitPrice))
				assert.Equal(t, "C1", tx.CustomerID)
				assert.Equal(t, "North", tx.Region)
			},
		},
		{
			name: "Remove separadores de milhar do nome, quantidade e preço",
			raw:  "T2|2024-01-02|P010|Laptop, Pro|1,200|45,000.50|C2|South",
			validate: func(t *testing.T, r Result) {
				require.True(t, r.OK())
				assert.Equal(t, "Laptop Pro", r.Transaction.ProductName)
				assert.Equal(t, 1200, r.Transaction.Quantity)
				assert.Equal(t, "45000.5", r.Transaction.UnitPrice.String())
			},
		},
		{
			name: "Quantidade zero e região vazia ainda são legíveis",
			raw:  "T3|2024-01-02|P010|Mouse|0|5|C3|",
			validate: func(t *testing.T, r Result) {
				require.True(t, r.OK())
				assert.Equal(t, 0, r.Transaction.Quantity)
				assert.Equal(t, "", r.Transaction.Region)
			},
		},
		{
			name: "Campos a menos",
			raw:  "T4|2024-01-02|P010|Mouse|1|5|C3",
			validate: func(t *testing.T, r Result) {
				assert.False(t, r.OK())
				assertRecordError(t, r.Err, domain.CodeFieldCount)
			},
		},
		{
			name: "Campos a mais",
			raw:  "T4|2024-01-02|P010|Mouse|1|5|C3|North|extra",
			validate: func(t *testing.T, r Result) {
				assertRecordError(t, r.Err, domain.CodeFieldCount)
			},
		},
		{
			name: "Quantidade não numérica",
			raw:  "T5|2024-01-02|P010|Mouse|abc|5|C3|North",
			validate: func(t *testing.T, r Result) {
				assertRecordError(t, r.Err, domain.CodeQuantity)
			},
		},
		{
			name: "Quantidade decimal não é inteira",
			raw:  "T5|2024-01-02|P010|Mouse|1.5|5|C3|North",
			validate: func(t *testing.T, r Result) {
				assertRecordError(t, r.Err, domain.CodeQuantity)
			},
		},
		{
			name: "Preço não numérico",
			raw:  "T6|2024-01-02|P010|Mouse|2|five|C3|North",
			validate: func(t *testing.T, r Result) {
				assertRecordError(t, r.Err, domain.CodeUnitPrice)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ParseLine(1, tt.raw))
		})
	}
}

func TestParse_PreservesOrderAndDropsMalformed(t *testing.T) {
	lines := []string{
		"T1|2024-01-01|P001|Widget|5|10.00|C1|North",
		"broken line",
		"T2|2024-01-01|P002|Gadget|0|5.00|C2|South",
		"T3|2024-01-03|P003|Gizmo|x|5.00|C2|South",
		"T4|2024-01-04|P004|Doohickey|2|7.25|C3|East",
	}

	transactions := Parse(lines)

	require.Len(t, transactions, 3)
	assert.Equal(t, "T1", transactions[0].TransactionID)
	assert.Equal(t, "T2", transactions[1].TransactionID)
	assert.Equal(t, "T4", transactions[2].TransactionID)
}

func TestParseLines_ExposesDropReasons(t *testing.T) {
	lines := []string{
		"T1|2024-01-01|P001|Widget|5|10.00|C1|North",
		"broken line",
		"T3|2024-01-03|P003|Gizmo|x|5.00|C2|South",
	}

	results := ParseLines(lines)
	transactions, malformed := Split(results)

	assert.Len(t, results, 3)
	assert.Len(t, transactions, 1)
	require.Len(t, malformed, 2)
	assert.Equal(t, 2, malformed[0].Line)
	assert.Equal(t, "broken line", malformed[0].Raw)
	assert.Equal(t, 3, malformed[1].Line)
	assert.Contains(t, malformed[1].Err.Error(), "line 3")
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(nil))
	assert.Empty(t, Parse([]string{}))
}

func assertRecordError(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrMalformedRecord))

	var recErr *domain.RecordError
	require.True(t, errors.As(err, &recErr))
	assert.Equal(t, code, recErr.Code)
}
