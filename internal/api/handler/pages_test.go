package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prajwalcordiero/online-hackathon-1/internal/domain"
	insightingmocks "github.com/prajwalcordiero/online-hackathon-1/internal/usecases/insighting/mocks"
	"github.com/prajwalcordiero/online-hackathon-1/internal/usecases/loading"
	loadingmocks "github.com/prajwalcordiero/online-hackathon-1/internal/usecases/loading/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func salesTableFixture() *domain.SalesTable {
	return &domain.SalesTable{
		Columns: []string{"Product_ID", "Store_ID", "Region", "Daily_Sales_Units", "Base_Price", "Competitor_Price"},
		Rows: [][]string{
			{"P1", "S1", "North", "80", "50", "48"},
		},
		Records: []domain.SalesRecord{
			{ProductID: "P1", StoreID: "S1", Region: "North", DailySalesUnits: 80, BasePrice: 50, CompetitorPrice: 48},
		},
	}
}

func insightsFixture() []*domain.RetailInsight {
	suggested := 52.5
	basePrice := 50.0
	competitorPrice := 48.0

	return []*domain.RetailInsight{
		{
			ProductID:              "P1",
			StoreID:                "S1",
			Region:                 "North",
			InventoryForecastUnits: 80,
			BasePrice:              &basePrice,
			CompetitorPrice:        &competitorPrice,
			SuggestedPrice:         &suggested,
			PricingAction:          domain.PricingActionIncrease,
		},
	}
}

func TestInsightsPage(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(loader *loadingmocks.MockLoader, insighter *insightingmocks.MockInsighter)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Deve renderizar a tabela de insights com a mensagem de sucesso",
			setup: func(loader *loadingmocks.MockLoader, insighter *insightingmocks.MockInsighter) {
				sales := salesTableFixture()

				loader.EXPECT().LoadSalesData().Return(sales, nil)
				insighter.EXPECT().BuildRetailInsights(sales.Records).Return(insightsFixture())
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)
				assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

				body := rec.Body.String()
				assert.Contains(t, body, "Data fetched and insights generated successfully.")
				assert.Contains(t, body, `<table class="table table-bordered table-striped">`)
				assert.Contains(t, body, "<td>52.5</td>")
				assert.Contains(t, body, domain.PricingActionIncrease)
			},
		},
		{
			name: "Deve renderizar a página sem tabela quando o arquivo não existe",
			setup: func(loader *loadingmocks.MockLoader, insighter *insightingmocks.MockInsighter) {
				loader.EXPECT().
					LoadSalesData().
					Return(nil, loading.NewLoadError(loading.ErrDataFileNotFound, "retail_data.csv", ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				body := rec.Body.String()
				assert.Contains(t, body, "Error: Data file &#39;retail_data.csv&#39; not found.")
				assert.NotContains(t, body, "<table")
			},
		},
		{
			name: "Deve renderizar a página com a descrição do erro em falhas genéricas",
			setup: func(loader *loadingmocks.MockLoader, insighter *insightingmocks.MockInsighter) {
				loader.EXPECT().
					LoadSalesData().
					Return(nil, loading.NewLoadError(loading.ErrMalformedDataset, "retail_data.csv", "empty data file"))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				body := rec.Body.String()
				assert.Contains(t, body, "An unexpected error occurred:")
				assert.Contains(t, body, "empty data file")
				assert.NotContains(t, body, "<table")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLoader := loadingmocks.NewMockLoader(ctrl)
			mockInsighter := insightingmocks.NewMockInsighter(ctrl)

			tt.setup(mockLoader, mockInsighter)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			InsightsPage(mockLoader, mockInsighter).ServeHTTP(rec, req)

			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestRawDataPage(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(loader *loadingmocks.MockLoader)
		validate func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "Deve renderizar o dataset bruto com a mensagem de sucesso",
			setup: func(loader *loadingmocks.MockLoader) {
				loader.EXPECT().LoadSalesData().Return(salesTableFixture(), nil)
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				body := rec.Body.String()
				assert.Contains(t, body, "Raw data loaded from CSV.")
				assert.Contains(t, body, `<table class="table table-bordered table-sm">`)
				assert.Contains(t, body, "<td>P1</td>")
			},
		},
		{
			name: "Deve renderizar a página sem tabela quando o arquivo não existe",
			setup: func(loader *loadingmocks.MockLoader) {
				loader.EXPECT().
					LoadSalesData().
					Return(nil, loading.NewLoadError(loading.ErrDataFileNotFound, "data/retail_data.csv", ""))
			},
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				body := rec.Body.String()
				assert.Contains(t, body, "Error: Data file &#39;data/retail_data.csv&#39; not found.")
				assert.NotContains(t, body, "<table")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLoader := loadingmocks.NewMockLoader(ctrl)

			tt.setup(mockLoader)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/raw-data", nil)

			RawDataPage(mockLoader).ServeHTTP(rec, req)

			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestStaticPages(t *testing.T) {
	tests := []struct {
		name     string
		handler  http.Handler
		path     string
		contains string
	}{
		{
			name:     "Deve renderizar a página sobre",
			handler:  AboutPage(),
			path:     "/about",
			contains: "Retail Insights turns historical sales data into pricing recommendations.",
		},
		{
			name:     "Deve renderizar a página de contato",
			handler:  ContactPage(),
			path:     "/contact",
			contains: "retail-insights@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)

			tt.handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Contains(t, rec.Body.String(), tt.contains)
		})
	}
}

func TestLoadFailureMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Deve montar a mensagem de arquivo ausente com o caminho configurado",
			err:      loading.NewLoadError(loading.ErrDataFileNotFound, "retail_data.csv", ""),
			expected: "Error: Data file 'retail_data.csv' not found.",
		},
		{
			name:     "Deve embutir a descrição do erro original em falhas genéricas",
			err:      loading.NewLoadError(loading.ErrDataFileRead, "retail_data.csv", "permission denied"),
			expected: "An unexpected error occurred: error reading data file: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, loadFailureMessage(tt.err))
		})
	}
}
