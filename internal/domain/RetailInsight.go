package domain

// Ações de precificação derivadas da previsão de demanda
const (
	PricingActionIncrease = "Increase Price (High Demand/Low Stock Risk)"
	PricingActionDecrease = "Decrease Price (Low Demand/Overstock Risk)"
	PricingActionHold     = "Hold Price (Stable Demand)"
)

// Colunas derivadas do relatório de insights
const (
	ColumnInventoryForecastUnits = "Inventory_Forecast_Units"
	ColumnSuggestedPrice         = "Suggested_Price"
	ColumnPricingAction          = "Pricing_Action"
)

// RetailInsight é o registro derivado por combinação de produto, loja e região:
// previsão de estoque (média das vendas diárias), preços do último registro
// observado e a sugestão de preço calculada pela regra de precificação.
// Os campos de preço são ponteiros porque uma previsão sem snapshot de preço
// correspondente permanece válida, apenas sem valores de preço.
type RetailInsight struct {
	ProductID              string   `json:"product_id"`
	StoreID                string   `json:"store_id"`
	Region                 string   `json:"region"`
	InventoryForecastUnits float64  `json:"inventory_forecast_units"`
	BasePrice              *float64 `json:"base_price"`
	CompetitorPrice        *float64 `json:"competitor_price"`
	SuggestedPrice         *float64 `json:"suggested_price"`
	PricingAction          string   `json:"pricing_action"`
}
