package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/prajwalcordiero/online-hackathon-1/internal/scheduler"
	"github.com/prajwalcordiero/online-hackathon-1/pkg/apiErrors"
	"github.com/prajwalcordiero/online-hackathon-1/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// RunDatasetCheck dispara manualmente uma verificação do dataset. A
// verificação roda em segundo plano; a resposta confirma apenas o disparo.
func RunDatasetCheck(service *scheduler.DatasetMonitorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("monitor: manual dataset check requested")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de monitoramento do dataset não disponível", nil)
			return
		}

		service.TriggerManualCheck()

		response := map[string]any{
			"message": "Verificação do dataset iniciada com sucesso",
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}

// GetDatasetMonitorStatus retorna o status do monitor e, quando existe, o
// snapshot da última verificação concluída
func GetDatasetMonitorStatus(service *scheduler.DatasetMonitorService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("monitor: status requested")

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de monitoramento do dataset não disponível", nil)
			return
		}

		status := service.GetStatus()
		if snapshot := service.LastSnapshot(); snapshot != nil {
			status["last_snapshot"] = snapshot
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
