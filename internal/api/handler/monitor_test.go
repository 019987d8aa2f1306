package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prajwalcordiero/online-hackathon-1/internal/config"
	"github.com/prajwalcordiero/online-hackathon-1/internal/domain"
	"github.com/prajwalcordiero/online-hackathon-1/internal/scheduler"
	insightingmocks "github.com/prajwalcordiero/online-hackathon-1/internal/usecases/insighting/mocks"
	loadingmocks "github.com/prajwalcordiero/online-hackathon-1/internal/usecases/loading/mocks"
	"github.com/prajwalcordiero/online-hackathon-1/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func monitorConfigFixture() *config.Config {
	return &config.Config{
		Data: config.Data{FilePath: "retail_data.csv"},
		DatasetMonitor: config.DatasetMonitor{
			CronSchedule: "0 6 * * *",
			Enabled:      false,
		},
	}
}

func TestRunDatasetCheck(t *testing.T) {
	t.Run("Deve responder com erro quando o serviço de monitoramento não está disponível", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/monitor/run", nil)

		RunDatasetCheck(nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var apiErr apiErrors.APIError
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
	})

	t.Run("Deve disparar a verificação e confirmar o início", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLoader := loadingmocks.NewMockLoader(ctrl)
		mockInsighter := insightingmocks.NewMockInsighter(ctrl)

		sales := salesTableFixture()
		mockLoader.EXPECT().LoadSalesData().Return(sales, nil).Times(1)
		mockInsighter.EXPECT().BuildRetailInsights(sales.Records).Return(insightsFixture()).Times(1)

		service := scheduler.NewDatasetMonitorService(mockLoader, mockInsighter, monitorConfigFixture())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/v1/monitor/run", nil)

		RunDatasetCheck(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var response map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, "Verificação do dataset iniciada com sucesso", response["message"])

		// A verificação roda em segundo plano; aguardar o snapshot garante que
		// os mocks foram consumidos antes do fim do teste
		assert.Eventually(t, func() bool {
			return service.LastSnapshot() != nil
		}, time.Second, 10*time.Millisecond)

		snapshot := service.LastSnapshot()
		assert.Equal(t, 1, snapshot.RowCount)
		assert.Equal(t, 1, snapshot.InsightCount)
		assert.Equal(t, map[string]int{domain.PricingActionIncrease: 1}, snapshot.PricingActions)
	})
}

func TestGetDatasetMonitorStatus(t *testing.T) {
	t.Run("Deve responder com erro quando o serviço de monitoramento não está disponível", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/monitor/status", nil)

		GetDatasetMonitorStatus(nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var apiErr apiErrors.APIError
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInternalServer, apiErr.Code)
	})

	t.Run("Deve retornar a configuração do monitor sem snapshot antes da primeira verificação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockLoader := loadingmocks.NewMockLoader(ctrl)
		mockInsighter := insightingmocks.NewMockInsighter(ctrl)

		service := scheduler.NewDatasetMonitorService(mockLoader, mockInsighter, monitorConfigFixture())

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/v1/monitor/status", nil)

		GetDatasetMonitorStatus(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var status map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))

		assert.Equal(t, false, status["check_enabled"])
		assert.Equal(t, "0 6 * * *", status["check_cron"])
		assert.Equal(t, "retail_data.csv", status["data_file"])
		assert.NotContains(t, status, "last_snapshot")
	})
}
