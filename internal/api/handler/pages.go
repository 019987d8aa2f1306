package handler

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prajwalcordiero/online-hackathon-1/internal/api/view"
	"github.com/prajwalcordiero/online-hackathon-1/internal/usecases/insighting"
	"github.com/prajwalcordiero/online-hackathon-1/internal/usecases/loading"
	"github.com/prajwalcordiero/online-hackathon-1/pkg/log"
)

// Mensagens de status exibidas nas páginas com dados
const (
	insightsSuccessMessage = "Data fetched and insights generated successfully."
	rawDataSuccessMessage  = "Raw data loaded from CSV."
)

// InsightsPage renderiza a página inicial com a tabela de insights. Uma falha
// de carregamento vira mensagem na própria página, nunca erro HTTP.
func InsightsPage(loader loading.Loader, service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("pages: rendering insights page")

		page := view.Page{
			Title:   "Home",
			Active:  "home",
			Message: insightsSuccessMessage,
		}

		sales, err := loader.LoadSalesData()
		if err != nil {
			logger.WithField("error", err.Error()).Warn("pages: failed to load sales data for insights page")
			page.Message = loadFailureMessage(err)
		} else {
			insights := service.BuildRetailInsights(sales.Records)
			page.Table = view.NewInsightsTable(insights).HTML(view.InsightsTableClasses)

			logger.WithFields(log.Fields{
				"rows":     len(sales.Records),
				"insights": len(insights),
			}).Info("pages: insights generated")
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := view.RenderInsights(w, page); err != nil {
			logger.WithField("error", err.Error()).Error("pages: failed to render insights page")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// RawDataPage renderiza o dataset bruto exatamente como lido do arquivo
func RawDataPage(loader loading.Loader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("pages: rendering raw data page")

		page := view.Page{
			Title:   "Raw Data",
			Active:  "raw-data",
			Message: rawDataSuccessMessage,
		}

		sales, err := loader.LoadSalesData()
		if err != nil {
			logger.WithField("error", err.Error()).Warn("pages: failed to load sales data for raw data page")
			page.Message = loadFailureMessage(err)
		} else {
			page.Table = view.NewSalesTable(sales).HTML(view.RawDataTableClasses)

			logger.WithField("rows", len(sales.Rows)).Info("pages: raw data loaded")
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := view.RenderRawData(w, page); err != nil {
			logger.WithField("error", err.Error()).Error("pages: failed to render raw data page")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// AboutPage renderiza a página estática sobre a aplicação
func AboutPage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := view.RenderAbout(w, view.Page{Title: "About", Active: "about"}); err != nil {
			logger.WithField("error", err.Error()).Error("pages: failed to render about page")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// ContactPage renderiza a página estática de contato
func ContactPage() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := view.RenderContact(w, view.Page{Title: "Contact", Active: "contact"}); err != nil {
			logger.WithField("error", err.Error()).Error("pages: failed to render contact page")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// loadFailureMessage converte falhas do carregamento na mensagem exibida ao
// usuário. Arquivo ausente tem mensagem própria com o caminho configurado;
// qualquer outra falha embute a descrição do erro original.
func loadFailureMessage(err error) string {
	var loadErr *loading.LoadError
	if errors.As(err, &loadErr) && errors.Is(err, loading.ErrDataFileNotFound) {
		return fmt.Sprintf("Error: Data file '%s' not found.", loadErr.Path)
	}

	return fmt.Sprintf("An unexpected error occurred: %v", err)
}
