package reporting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

var generatedAt = time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)

func tx(id, date, productName string, qty int, price, customerID, region string) domain.Transaction {
	return domain.Transaction{
		TransactionID: id,
		Date:          date,
		ProductID:     "P001",
		ProductName:   productName,
		Quantity:      qty,
		UnitPrice:     decimal.RequireFromString(price),
		CustomerID:    customerID,
		Region:        region,
	}
}

func enrich(transactions []domain.Transaction, matched ...bool) []domain.EnrichedTransaction {
	out := make([]domain.EnrichedTransaction, 0, len(transactions))
	for i, t := range transactions {
		out = append(out, domain.EnrichedTransaction{Transaction: t, APIMatch: i < len(matched) && matched[i]})
	}
	return out
}

func TestRender_SingleTransaction(t *testing.T) {
	valid := []domain.Transaction{tx("T1", "2024-01-01", "Widget", 5, "10.00", "C1", "North")}

	got := Render(valid, enrich(valid, true), DefaultOptions(), generatedAt)

	expected := `==================================================
SALES ANALYTICS REPORT
Generated: 2024-01-16 09:30:00
Records Processed: 1
==================================================

OVERALL SUMMARY
--------------------------------------------------
Total Revenue: ₹50.00
Total Transactions: 1
Average Order Value: ₹50.00
Date Range: 2024-01-01 to 2024-01-01

REGION-WISE PERFORMANCE
--------------------------------------------------
North | ₹50.00 | 100.00% | 1

TOP 5 PRODUCTS
--------------------------------------------------
1. Widget | Qty: 5 | Revenue: ₹50.00

TOP 5 CUSTOMERS
--------------------------------------------------
1. C1 | Spent: ₹50.00 | Orders: 1

DAILY SALES TREND
--------------------------------------------------
2024-01-01 | ₹50.00 | 1 | 1

PRODUCT PERFORMANCE ANALYSIS
--------------------------------------------------
Peak Sales Day: 2024-01-01 | ₹50.00 | 1 transactions
Low Performing Products:
- Widget | Qty: 5 | Revenue: ₹50.00

API ENRICHMENT SUMMARY
--------------------------------------------------
Total Enriched: 1/1
Success Rate: 100.00%
`

	assert.Equal(t, expected, got)
}

func TestRender_EmptyInput(t *testing.T) {
	got := Render(nil, nil, DefaultOptions(), generatedAt)

	assert.Contains(t, got, "Records Processed: 0\n")
	assert.Contains(t, got, "Total Revenue: ₹0.00\n")
	assert.Contains(t, got, "Average Order Value: ₹0.00\n")
	assert.Contains(t, got, "Date Range: N/A\n")
	assert.Contains(t, got, "REGION-WISE PERFORMANCE\n"+strings.Repeat("-", 50)+"\n\n")
	assert.Contains(t, got, "TOP 5 PRODUCTS\n"+strings.Repeat("-", 50)+"\n\n")
	assert.Contains(t, got, "TOP 5 CUSTOMERS\n"+strings.Repeat("-", 50)+"\n\n")
	assert.Contains(t, got, "Peak Sales Day: N/A\n")
	assert.Contains(t, got, "No low performing products\n")
	assert.Contains(t, got, "Total Enriched: 0/0\n")
	assert.Contains(t, got, "Success Rate: 0.00%\n")
}

func TestRender_SectionOrder(t *testing.T) {
	valid := []domain.Transaction{
		tx("T1", "2024-01-02", "Widget", 20, "1000.5", "C1", "North"),
		tx("T2", "2024-01-01", "Gadget", 12, "3", "C2", "South"),
	}
	got := Render(valid, enrich(valid, true, false), DefaultOptions(), generatedAt)

	sections := []string{
		"SALES ANALYTICS REPORT",
		"OVERALL SUMMARY",
		"REGION-WISE PERFORMANCE",
		"TOP 5 PRODUCTS",
		"TOP 5 CUSTOMERS",
		"DAILY SALES TREND",
		"PRODUCT PERFORMANCE ANALYSIS",
		"API ENRICHMENT SUMMARY",
	}
	last := -1
	for _, s := range sections {
		idx := strings.Index(got, s)
		require.NotEqual(t, -1, idx, s)
		assert.Greater(t, idx, last, s)
		last = idx
	}

	assert.Contains(t, got, "Total Revenue: ₹20,046.00\n")
	assert.Contains(t, got, "Date Range: 2024-01-01 to 2024-01-02\n")
	assert.Contains(t, got, "No low performing products\n")
	assert.Contains(t, got, "Total Enriched: 1/2\n")
	assert.Contains(t, got, "Success Rate: 50.00%\n")
}

func TestBuild_Overview(t *testing.T) {
	valid := []domain.Transaction{
		tx("T1", "2024-01-03", "Widget", 1, "10", "C1", "North"),
		tx("T2", "2024-01-01", "Widget", 1, "10", "C1", "North"),
		tx("T3", "2024-01-02", "Widget", 1, "13.33", "C1", "North"),
	}

	report := Build(valid, enrich(valid, true, true, false), DefaultOptions(), generatedAt)

	assert.Equal(t, 3, report.Overview.TransactionCount)
	assert.Equal(t, "33.33", report.Overview.TotalRevenue.String())
	assert.Equal(t, "11.11", report.Overview.AvgOrderValue.String())
	assert.Equal(t, "2024-01-01", report.Overview.FirstDate)
	assert.Equal(t, "2024-01-03", report.Overview.LastDate)
	assert.Equal(t, "66.67", report.Overview.SuccessRate.String())
}

func TestRender_IsDeterministic(t *testing.T) {
	valid := []domain.Transaction{
		tx("T1", "2024-01-02", "Widget", 2, "5", "C1", "North"),
		tx("T2", "2024-01-01", "Gadget", 2, "5", "C2", "South"),
	}

	assert.Equal(t,
		Render(valid, enrich(valid), DefaultOptions(), generatedAt),
		Render(valid, enrich(valid), DefaultOptions(), generatedAt),
	)
}

func TestService_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := mocks.NewMockWriter(ctrl)
	service := NewService(mockWriter, DefaultOptions()).WithClock(func() time.Time { return generatedAt })

	valid := []domain.Transaction{tx("T1", "2024-01-01", "Widget", 5, "10.00", "C1", "North")}

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, report Report, err error)
	}{
		{
			name: "Grava o relatório formatado",
			setup: func() {
				mockWriter.EXPECT().
					WriteReport(gomock.Any(), Render(valid, enrich(valid), DefaultOptions(), generatedAt)).
					Return(nil)
			},
			validate: func(t *testing.T, report Report, err error) {
				assert.NoError(t, err)
				assert.Equal(t, generatedAt, report.GeneratedAt)
				assert.Equal(t, "50", report.Overview.TotalRevenue.String())
			},
		},
		{
			name: "Erro de gravação é devolvido",
			setup: func() {
				mockWriter.EXPECT().
					WriteReport(gomock.Any(), gomock.Any()).
					Return(errors.New("permission denied"))
			},
			validate: func(t *testing.T, report Report, err error) {
				assert.EqualError(t, err, "permission denied")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			report, err := service.Generate(context.Background(), valid, enrich(valid))
			tt.validate(t, report, err)
		})
	}
}
