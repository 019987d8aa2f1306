package handler

import (
	"encoding/csv"
	"net/http"

	"github.com/prajwalcordiero/online-hackathon-1/internal/api/view"
	"github.com/prajwalcordiero/online-hackathon-1/internal/usecases/insighting"
	"github.com/prajwalcordiero/online-hackathon-1/internal/usecases/loading"
	"github.com/prajwalcordiero/online-hackathon-1/pkg/apiErrors"
	"github.com/prajwalcordiero/online-hackathon-1/pkg/log"
)

const insightsExportFilename = "retail_insights.csv"

// ExportInsightsCSV gera o relatório de insights como download CSV. Diferente
// das páginas, uma falha de carregamento aqui vira erro HTTP, porque não há
// página onde exibir a mensagem.
func ExportInsightsCSV(loader loading.Loader, service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("export: generating insights CSV")

		sales, err := loader.LoadSalesData()
		if err != nil {
			logger.WithField("error", err.Error()).Warn("export: failed to load sales data")
			apiErrors.WriteError(w, apiErrors.ErrDataUnavailable, loadFailureMessage(err), nil)
			return
		}

		insights := service.BuildRetailInsights(sales.Records)
		table := view.NewInsightsTable(insights)

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="`+insightsExportFilename+`"`)

		writer := csv.NewWriter(w)
		if err := writer.Write(table.Columns); err != nil {
			logger.WithField("error", err.Error()).Error("export: failed to write CSV header")
			return
		}

		if err := writer.WriteAll(table.Rows); err != nil {
			logger.WithField("error", err.Error()).Error("export: failed to write CSV rows")
			return
		}

		logger.WithField("insights", len(insights)).Info("export: insights CSV generated")
	})
}
