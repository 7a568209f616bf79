package domain

// ProductMetadata representa os dados de um produto vindos do catálogo externo.
// Category, Brand e Rating podem estar ausentes na origem.
type ProductMetadata struct {
	ID       int      `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Category *string  `json:"category" yaml:"category"`
	Brand    *string  `json:"brand" yaml:"brand"`
	Rating   *float64 `json:"rating" yaml:"rating"`
}

// ProductMap indexa os metadados pelo ID numérico do produto
type ProductMap map[int]ProductMetadata

// CreateProductMapping monta o mapa id → metadados. Em caso de ID repetido, o último vence.
func CreateProductMapping(products []ProductMetadata) ProductMap {
	mapping := make(ProductMap, len(products))
	for _, p := range products {
		mapping[p.ID] = p
	}

	return mapping
}
