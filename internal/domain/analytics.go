package domain

import "github.com/shopspring/decimal"

// RegionStat resume as vendas de uma região
type RegionStat struct {
	Region           string
	TotalSales       decimal.Decimal
	TransactionCount int
	Percentage       decimal.Decimal // participação na receita total, 2 casas
}

// ProductStat resume as vendas de um produto (agrupado pelo nome)
type ProductStat struct {
	ProductName   string
	TotalQuantity int
	TotalRevenue  decimal.Decimal
}

// CustomerStat resume as compras de um cliente
type CustomerStat struct {
	CustomerID     string
	TotalSpent     decimal.Decimal
	PurchaseCount  int
	AvgOrderValue  decimal.Decimal // 2 casas
	ProductsBought []string        // produtos distintos, na ordem da primeira compra
}

func (c CustomerStat) DistinctProducts() int {
	return len(c.ProductsBought)
}

// DailyStat resume as vendas de um dia
type DailyStat struct {
	Date             string
	Revenue          decimal.Decimal
	TransactionCount int
	Customers        []string // clientes distintos, na ordem da primeira compra no dia
}

func (d DailyStat) DistinctCustomers() int {
	return len(d.Customers)
}

// Analytics agrupa todas as visões calculadas sobre as transações válidas
type Analytics struct {
	TotalRevenue  decimal.Decimal
	Regions       []RegionStat   // desc por TotalSales
	TopProducts   []ProductStat  // desc por TotalQuantity, limitado a N
	LowPerformers []ProductStat  // asc por TotalRevenue
	Customers     []CustomerStat // desc por TotalSpent
	DailyTrend    []DailyStat    // asc por Date
	PeakDay       *DailyStat     // nil quando não há vendas
}
