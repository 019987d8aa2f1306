package view

import (
	"html/template"
	"strconv"
	"strings"

	"github.com/prajwalcordiero/online-hackathon-1/internal/domain"
)

// Classes CSS aplicadas às tabelas renderizadas nas páginas
const (
	InsightsTableClasses = "table table-bordered table-striped"
	RawDataTableClasses  = "table table-bordered table-sm"
)

// Table é a projeção tabular genérica consumida pelos serializadores de
// HTML e CSV. Colunas e linhas já chegam como texto, de forma que a
// serialização não depende da representação em memória do dataset.
type Table struct {
	Columns []string
	Rows    [][]string
}

// NewSalesTable projeta o dataset bruto de vendas preservando as colunas
// e os valores exatamente como lidos do arquivo.
func NewSalesTable(sales *domain.SalesTable) Table {
	return Table{
		Columns: sales.Columns,
		Rows:    sales.Rows,
	}
}

// NewInsightsTable projeta os insights de varejo na ordem canônica das
// colunas do relatório. Preços ausentes viram células vazias.
func NewInsightsTable(insights []*domain.RetailInsight) Table {
	table := Table{
		Columns: []string{
			domain.ColumnProductID,
			domain.ColumnStoreID,
			domain.ColumnRegion,
			domain.ColumnInventoryForecastUnits,
			domain.ColumnBasePrice,
			domain.ColumnCompetitorPrice,
			domain.ColumnSuggestedPrice,
			domain.ColumnPricingAction,
		},
		Rows: make([][]string, 0, len(insights)),
	}

	for _, insight := range insights {
		table.Rows = append(table.Rows, []string{
			insight.ProductID,
			insight.StoreID,
			insight.Region,
			formatFloat(insight.InventoryForecastUnits),
			formatPrice(insight.BasePrice),
			formatPrice(insight.CompetitorPrice),
			formatPrice(insight.SuggestedPrice),
			insight.PricingAction,
		})
	}

	return table
}

// HTML serializa a tabela como marcação de tabela HTML com as classes CSS
// informadas. Todo o conteúdo das células e cabeçalhos é escapado.
func (t Table) HTML(classes string) template.HTML {
	var b strings.Builder

	b.WriteString(`<table class="`)
	b.WriteString(template.HTMLEscapeString(classes))
	b.WriteString("\">\n<thead>\n<tr>")

	for _, column := range t.Columns {
		b.WriteString("<th>")
		b.WriteString(template.HTMLEscapeString(column))
		b.WriteString("</th>")
	}

	b.WriteString("</tr>\n</thead>\n<tbody>\n")

	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(template.HTMLEscapeString(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}

	b.WriteString("</tbody>\n</table>")

	return template.HTML(b.String())
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatPrice(value *float64) string {
	if value == nil {
		return ""
	}

	return formatFloat(*value)
}
