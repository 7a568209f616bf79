// Package reporting monta o relatório de vendas a partir das visões agregadas
package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/internal/usecases/analyzing"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

const (
	DefaultCurrencySymbol = "₹"

	timestampLayout = "2006-01-02 15:04:05"
	notAvailable    = "N/A"
	ruleWidth       = 50
)

// Options controla o tamanho dos rankings e a moeda exibida
type Options struct {
	TopN                  int
	LowPerformerThreshold int
	CurrencySymbol        string
}

func DefaultOptions() Options {
	return Options{
		TopN:                  analyzing.DefaultTopN,
		LowPerformerThreshold: analyzing.DefaultLowPerformerThreshold,
		CurrencySymbol:        DefaultCurrencySymbol,
	}
}

// Overview são os indicadores gerais e de enriquecimento do relatório
type Overview struct {
	RecordsProcessed int
	TotalRevenue     decimal.Decimal
	TransactionCount int
	AvgOrderValue    decimal.Decimal
	FirstDate        string // vazio quando não há transações
	LastDate         string
	EnrichedCount    int
	MatchedCount     int
	SuccessRate      decimal.Decimal // 2 casas
}

// Report é o conteúdo do relatório antes da formatação
type Report struct {
	GeneratedAt time.Time
	Overview    Overview
	Analytics   domain.Analytics
	Options     Options
}

// Build calcula o conteúdo do relatório
func Build(valid []domain.Transaction, enriched []domain.EnrichedTransaction, opts Options, generatedAt time.Time) Report {
	analytics := analyzing.Analyze(valid, analyzing.Options{
		TopN:                  opts.TopN,
		LowPerformerThreshold: opts.LowPerformerThreshold,
	})

	overview := Overview{
		RecordsProcessed: len(enriched),
		TotalRevenue:     analytics.TotalRevenue,
		TransactionCount: len(valid),
		AvgOrderValue:    utils.Average(analytics.TotalRevenue, len(valid)),
		EnrichedCount:    len(enriched),
		MatchedCount:     domain.CountMatches(enriched),
	}
	overview.SuccessRate = utils.Ratio(overview.MatchedCount, overview.EnrichedCount)
	overview.FirstDate, overview.LastDate = dateRange(valid)

	return Report{
		GeneratedAt: generatedAt,
		Overview:    overview,
		Analytics:   analytics,
		Options:     opts,
	}
}

// Render monta e formata o relatório em texto
func Render(valid []domain.Transaction, enriched []domain.EnrichedTransaction, opts Options, generatedAt time.Time) string {
	return Build(valid, enriched, opts, generatedAt).String()
}

// String formata o relatório com as seções em ordem fixa
func (r Report) String() string {
	var b strings.Builder
	money := func(d decimal.Decimal) string {
		return utils.FormatMoney(r.Options.CurrencySymbol, d)
	}
	section := func(title string) {
		b.WriteString(title + "\n")
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	}

	o := r.Overview
	a := r.Analytics

	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	b.WriteString("SALES ANALYTICS REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.Format(timestampLayout))
	fmt.Fprintf(&b, "Records Processed: %d\n", o.RecordsProcessed)
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")

	section("OVERALL SUMMARY")
	fmt.Fprintf(&b, "Total Revenue: %s\n", money(o.TotalRevenue))
	fmt.Fprintf(&b, "Total Transactions: %d\n", o.TransactionCount)
	fmt.Fprintf(&b, "Average Order Value: %s\n", money(o.AvgOrderValue))
	if o.FirstDate == "" {
		fmt.Fprintf(&b, "Date Range: %s\n\n", notAvailable)
	} else {
		fmt.Fprintf(&b, "Date Range: %s to %s\n\n", o.FirstDate, o.LastDate)
	}

	section("REGION-WISE PERFORMANCE")
	for _, region := range a.Regions {
		fmt.Fprintf(&b, "%s | %s | %s%% | %d\n",
			region.Region, money(region.TotalSales), region.Percentage.StringFixed(2), region.TransactionCount)
	}
	b.WriteString("\n")

	section(fmt.Sprintf("TOP %d PRODUCTS", r.Options.TopN))
	for i, p := range a.TopProducts {
		fmt.Fprintf(&b, "%d. %s | Qty: %d | Revenue: %s\n", i+1, p.ProductName, p.TotalQuantity, money(p.TotalRevenue))
	}
	b.WriteString("\n")

	section(fmt.Sprintf("TOP %d CUSTOMERS", r.Options.TopN))
	for i, c := range topCustomers(a.Customers, r.Options.TopN) {
		fmt.Fprintf(&b, "%d. %s | Spent: %s | Orders: %d\n", i+1, c.CustomerID, money(c.TotalSpent), c.PurchaseCount)
	}
	b.WriteString("\n")

	section("DAILY SALES TREND")
	for _, d := range a.DailyTrend {
		fmt.Fprintf(&b, "%s | %s | %d | %d\n", d.Date, money(d.Revenue), d.TransactionCount, d.DistinctCustomers())
	}
	b.WriteString("\n")

	section("PRODUCT PERFORMANCE ANALYSIS")
	if a.PeakDay != nil {
		fmt.Fprintf(&b, "Peak Sales Day: %s | %s | %d transactions\n",
			a.PeakDay.Date, money(a.PeakDay.Revenue), a.PeakDay.TransactionCount)
	} else {
		fmt.Fprintf(&b, "Peak Sales Day: %s\n", notAvailable)
	}
	if len(a.LowPerformers) > 0 {
		b.WriteString("Low Performing Products:\n")
		for _, p := range a.LowPerformers {
			fmt.Fprintf(&b, "- %s | Qty: %d | Revenue: %s\n", p.ProductName, p.TotalQuantity, money(p.TotalRevenue))
		}
	} else {
		b.WriteString("No low performing products\n")
	}
	b.WriteString("\n")

	section("API ENRICHMENT SUMMARY")
	fmt.Fprintf(&b, "Total Enriched: %d/%d\n", o.MatchedCount, o.EnrichedCount)
	fmt.Fprintf(&b, "Success Rate: %s%%\n", o.SuccessRate.StringFixed(2))

	return b.String()
}

func topCustomers(customers []domain.CustomerStat, n int) []domain.CustomerStat {
	if n <= 0 {
		return nil
	}
	if len(customers) > n {
		return customers[:n]
	}
	return customers
}

// dateRange retorna a menor e a maior data (comparação de texto); vazias sem transações
func dateRange(transactions []domain.Transaction) (string, string) {
	if len(transactions) == 0 {
		return "", ""
	}

	first, last := transactions[0].Date, transactions[0].Date
	for _, t := range transactions[1:] {
		if t.Date < first {
			first = t.Date
		}
		if t.Date > last {
			last = t.Date
		}
	}

	return first, last
}
