package insighting

import (
	"github.com/prajwalcordiero/online-hackathon-1/internal/domain"
)

// Insighter define a interface para derivar insights de varejo dos registros de vendas
type Insighter interface {
	// BuildRetailInsights deriva a previsão de demanda e a sugestão de preço
	// por combinação distinta de produto, loja e região
	BuildRetailInsights(records []domain.SalesRecord) []*domain.RetailInsight
}
