package domain

// Colunas obrigatórias do arquivo de vendas
const (
	ColumnProductID       = "Product_ID"
	ColumnStoreID         = "Store_ID"
	ColumnRegion          = "Region"
	ColumnDailySalesUnits = "Daily_Sales_Units"
	ColumnBasePrice       = "Base_Price"
	ColumnCompetitorPrice = "Competitor_Price"
)

// SalesRecord representa uma observação diária de vendas de um produto em uma loja
type SalesRecord struct {
	ProductID       string
	StoreID         string
	Region          string
	DailySalesUnits float64
	BasePrice       float64
	CompetitorPrice float64
}

// SalesTable é o conjunto de dados carregado do arquivo de vendas.
// Columns e Rows preservam o arquivo como lido (inclusive colunas extras,
// como marcadores de data); Records é a visão tipada das colunas obrigatórias.
type SalesTable struct {
	Columns []string
	Rows    [][]string
	Records []SalesRecord
}
