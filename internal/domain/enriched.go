package domain

// Nomes das colunas do arquivo de dados enriquecidos, na ordem em que são gravadas
var EnrichedFields = []string{
	"TransactionID",
	"Date",
	"ProductID",
	"ProductName",
	"Quantity",
	"UnitPrice",
	"CustomerID",
	"Region",
	"API_Category",
	"API_Brand",
	"API_Rating",
	"API_Match",
}

// EnrichedTransaction é uma transação válida com os dados do catálogo de produtos
type EnrichedTransaction struct {
	Transaction
	APICategory *string
	APIBrand    *string
	APIRating   *float64
	APIMatch    bool
}

// CountMatches retorna quantas transações encontraram o produto no catálogo
func CountMatches(enriched []EnrichedTransaction) int {
	matched := 0
	for _, e := range enriched {
		if e.APIMatch {
			matched++
		}
	}

	return matched
}
