package view

import (
	"strings"
	"testing"

	"github.com/prajwalcordiero/online-hackathon-1/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestNewInsightsTable(t *testing.T) {
	tests := []struct {
		name     string
		insights []*domain.RetailInsight
		validate func(t *testing.T, table Table)
	}{
		{
			name: "Deve projetar os insights na ordem canônica das colunas",
			insights: []*domain.RetailInsight{
				{
					ProductID:              "P1",
					StoreID:                "S1",
					Region:                 "North",
					InventoryForecastUnits: 50,
					BasePrice:              floatPtr(100),
					CompetitorPrice:        floatPtr(95.5),
					SuggestedPrice:         floatPtr(100),
					PricingAction:          domain.PricingActionHold,
				},
			},
			validate: func(t *testing.T, table Table) {
				assert.Equal(t, []string{
					"Product_ID", "Store_ID", "Region", "Inventory_Forecast_Units",
					"Base_Price", "Competitor_Price", "Suggested_Price", "Pricing_Action",
				}, table.Columns)

				require.Len(t, table.Rows, 1)
				assert.Equal(t, []string{
					"P1", "S1", "North", "50", "100", "95.5", "100",
					domain.PricingActionHold,
				}, table.Rows[0])
			},
		},
		{
			name: "Deve deixar células vazias quando o insight não tem snapshot de preço",
			insights: []*domain.RetailInsight{
				{
					ProductID:              "P2",
					StoreID:                "S2",
					Region:                 "South",
					InventoryForecastUnits: 80.25,
					PricingAction:          domain.PricingActionIncrease,
				},
			},
			validate: func(t *testing.T, table Table) {
				require.Len(t, table.Rows, 1)
				assert.Equal(t, []string{
					"P2", "S2", "South", "80.25", "", "", "",
					domain.PricingActionIncrease,
				}, table.Rows[0])
			},
		},
		{
			name:     "Deve projetar tabela sem linhas para insights vazios",
			insights: []*domain.RetailInsight{},
			validate: func(t *testing.T, table Table) {
				assert.Len(t, table.Columns, 8)
				assert.Empty(t, table.Rows)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewInsightsTable(tt.insights)

			if tt.validate != nil {
				tt.validate(t, table)
			}
		})
	}
}

func TestNewSalesTable(t *testing.T) {
	sales := &domain.SalesTable{
		Columns: []string{"Date", "Product_ID", "Store_ID", "Region", "Daily_Sales_Units", "Base_Price", "Competitor_Price"},
		Rows: [][]string{
			{"2024-01-01", "P1", "S1", "North", "55", "100.00", "95.00"},
		},
	}

	table := NewSalesTable(sales)

	assert.Equal(t, sales.Columns, table.Columns)
	assert.Equal(t, sales.Rows, table.Rows)
}

func TestTable_HTML(t *testing.T) {
	tests := []struct {
		name     string
		table    Table
		classes  string
		validate func(t *testing.T, html string)
	}{
		{
			name: "Deve serializar cabeçalho e linhas com as classes informadas",
			table: Table{
				Columns: []string{"Product_ID", "Base_Price"},
				Rows: [][]string{
					{"P1", "100"},
					{"P2", "95.5"},
				},
			},
			classes: InsightsTableClasses,
			validate: func(t *testing.T, html string) {
				assert.Contains(t, html, `<table class="table table-bordered table-striped">`)
				assert.Contains(t, html, "<th>Product_ID</th><th>Base_Price</th>")
				assert.Contains(t, html, "<tr><td>P1</td><td>100</td></tr>")
				assert.Contains(t, html, "<tr><td>P2</td><td>95.5</td></tr>")
				assert.True(t, strings.HasSuffix(html, "</tbody>\n</table>"))
			},
		},
		{
			name: "Deve escapar o conteúdo das células e dos cabeçalhos",
			table: Table{
				Columns: []string{"<script>"},
				Rows: [][]string{
					{`<img src="x">`},
				},
			},
			classes: RawDataTableClasses,
			validate: func(t *testing.T, html string) {
				assert.NotContains(t, html, "<script>")
				assert.Contains(t, html, "&lt;script&gt;")
				assert.Contains(t, html, "&lt;img src=&#34;x&#34;&gt;")
			},
		},
		{
			name: "Deve serializar tabela sem linhas com o corpo vazio",
			table: Table{
				Columns: []string{"Product_ID"},
				Rows:    [][]string{},
			},
			classes: RawDataTableClasses,
			validate: func(t *testing.T, html string) {
				assert.Contains(t, html, "<th>Product_ID</th>")
				assert.Contains(t, html, "<tbody>\n</tbody>")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := string(tt.table.HTML(tt.classes))

			if tt.validate != nil {
				tt.validate(t, html)
			}
		})
	}
}
