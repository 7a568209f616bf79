// Package analyzing calcula as visões agregadas sobre as transações válidas.
// Todas as funções são puras e recebem a receita já calculada em []domain.Sale.
// Empates de ordenação mantêm a ordem da primeira ocorrência.
package analyzing

import (
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics/internal/domain"
	"github.com/vfg2006/sales-analytics/pkg/utils"
)

const (
	DefaultTopN                  = 5
	DefaultLowPerformerThreshold = 10
)

// Options parametriza as visões que dependem de configuração
type Options struct {
	TopN                  int
	LowPerformerThreshold int
}

func DefaultOptions() Options {
	return Options{
		TopN:                  DefaultTopN,
		LowPerformerThreshold: DefaultLowPerformerThreshold,
	}
}

// Analyze calcula todas as visões de uma vez
func Analyze(transactions []domain.Transaction, opts Options) domain.Analytics {
	sales := domain.NewSales(transactions)
	trend := DailyTrend(sales)

	analytics := domain.Analytics{
		TotalRevenue:  TotalRevenue(sales),
		Regions:       RegionSummary(sales),
		TopProducts:   TopProducts(sales, opts.TopN),
		LowPerformers: LowPerformers(sales, opts.LowPerformerThreshold),
		Customers:     CustomerAnalysis(sales),
		DailyTrend:    trend,
	}

	if peak, ok := FindPeakDay(trend); ok {
		analytics.PeakDay = &peak
	}

	return analytics
}

// TotalRevenue soma a receita de todas as vendas; zero para lista vazia
func TotalRevenue(sales []domain.Sale) decimal.Decimal {
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Revenue)
	}

	return total
}

// RegionSummary agrupa por região, ordenado pela receita (maior primeiro)
func RegionSummary(sales []domain.Sale) []domain.RegionStat {
	grandTotal := TotalRevenue(sales)

	index := make(map[string]int)
	regions := make([]domain.RegionStat, 0)
	for _, s := range sales {
		i, ok := index[s.Region]
		if !ok {
			i = len(regions)
			index[s.Region] = i
			regions = append(regions, domain.RegionStat{Region: s.Region, TotalSales: decimal.Zero})
		}

		regions[i].TotalSales = regions[i].TotalSales.Add(s.Revenue)
		regions[i].TransactionCount++
	}

	for i := range regions {
		regions[i].Percentage = utils.Percentage(regions[i].TotalSales, grandTotal)
	}

	sort.SliceStable(regions, func(i, j int) bool {
		return regions[i].TotalSales.GreaterThan(regions[j].TotalSales)
	})

	return regions
}

// TopProducts retorna os n produtos com maior quantidade vendida
func TopProducts(sales []domain.Sale, n int) []domain.ProductStat {
	if n <= 0 {
		return []domain.ProductStat{}
	}

	products := productTotals(sales)
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].TotalQuantity > products[j].TotalQuantity
	})

	if len(products) > n {
		products = products[:n]
	}

	return products
}

// LowPerformers retorna os produtos com quantidade abaixo do limite, da menor receita para a maior
func LowPerformers(sales []domain.Sale, threshold int) []domain.ProductStat {
	low := make([]domain.ProductStat, 0)
	for _, p := range productTotals(sales) {
		if p.TotalQuantity < threshold {
			low = append(low, p)
		}
	}

	sort.SliceStable(low, func(i, j int) bool {
		return low[i].TotalRevenue.LessThan(low[j].TotalRevenue)
	})

	return low
}

// CustomerAnalysis agrupa por cliente, ordenado pelo total gasto (maior primeiro)
func CustomerAnalysis(sales []domain.Sale) []domain.CustomerStat {
	index := make(map[string]int)
	bought := make([]map[string]struct{}, 0)
	customers := make([]domain.CustomerStat, 0)

	for _, s := range sales {
		i, ok := index[s.CustomerID]
		if !ok {
			i = len(customers)
			index[s.CustomerID] = i
			customers = append(customers, domain.CustomerStat{CustomerID: s.CustomerID, TotalSpent: decimal.Zero})
			bought = append(bought, make(map[string]struct{}))
		}

		c := &customers[i]
		c.TotalSpent = c.TotalSpent.Add(s.Revenue)
		c.PurchaseCount++
		if _, seen := bought[i][s.ProductName]; !seen {
			bought[i][s.ProductName] = struct{}{}
			c.ProductsBought = append(c.ProductsBought, s.ProductName)
		}
	}

	for i := range customers {
		customers[i].AvgOrderValue = utils.Average(customers[i].TotalSpent, customers[i].PurchaseCount)
	}

	sort.SliceStable(customers, func(i, j int) bool {
		return customers[i].TotalSpent.GreaterThan(customers[j].TotalSpent)
	})

	return customers
}

// DailyTrend agrupa por data, em ordem crescente de data (comparação de texto)
func DailyTrend(sales []domain.Sale) []domain.DailyStat {
	index := make(map[string]int)
	seen := make([]map[string]struct{}, 0)
	days := make([]domain.DailyStat, 0)

	for _, s := range sales {
		i, ok := index[s.Date]
		if !ok {
			i = len(days)
			index[s.Date] = i
			days = append(days, domain.DailyStat{Date: s.Date, Revenue: decimal.Zero})
			seen = append(seen, make(map[string]struct{}))
		}

		d := &days[i]
		d.Revenue = d.Revenue.Add(s.Revenue)
		d.TransactionCount++
		if _, ok := seen[i][s.CustomerID]; !ok {
			seen[i][s.CustomerID] = struct{}{}
			d.Customers = append(d.Customers, s.CustomerID)
		}
	}

	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return days
}

// FindPeakDay retorna o dia de maior receita. Em empate vence o primeiro da lista,
// ou seja, a data mais antiga. ok é false quando não há dias.
func FindPeakDay(trend []domain.DailyStat) (domain.DailyStat, bool) {
	if len(trend) == 0 {
		return domain.DailyStat{}, false
	}

	peak := trend[0]
	for _, d := range trend[1:] {
		if d.Revenue.GreaterThan(peak.Revenue) {
			peak = d
		}
	}

	return peak, true
}

// productTotals agrupa por nome de produto na ordem da primeira ocorrência
func productTotals(sales []domain.Sale) []domain.ProductStat {
	index := make(map[string]int)
	products := make([]domain.ProductStat, 0)

	for _, s := range sales {
		i, ok := index[s.ProductName]
		if !ok {
			i = len(products)
			index[s.ProductName] = i
			products = append(products, domain.ProductStat{ProductName: s.ProductName, TotalRevenue: decimal.Zero})
		}

		products[i].TotalQuantity += s.Quantity
		products[i].TotalRevenue = products[i].TotalRevenue.Add(s.Revenue)
	}

	return products
}
