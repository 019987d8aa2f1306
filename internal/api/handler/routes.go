package handler

import (
	"net/http"

	"github.com/prajwalcordiero/online-hackathon-1/internal/api/handler/router"
	"github.com/prajwalcordiero/online-hackathon-1/internal/scheduler"
	"github.com/prajwalcordiero/online-hackathon-1/internal/usecases/insighting"
	"github.com/prajwalcordiero/online-hackathon-1/internal/usecases/loading"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Pages retorna as rotas das páginas HTML da aplicação
func Pages(loader loading.Loader, insightService insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: InsightsPage(loader, insightService),
		},
		{
			Path:    "/raw-data",
			Method:  http.MethodGet,
			Handler: RawDataPage(loader),
		},
		{
			Path:    "/about",
			Method:  http.MethodGet,
			Handler: AboutPage(),
		},
		{
			Path:    "/contact",
			Method:  http.MethodGet,
			Handler: ContactPage(),
		},
	}
}

// Exports retorna as rotas de download de relatórios
func Exports(loader loading.Loader, insightService insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/export/insights.csv",
			Method:  http.MethodGet,
			Handler: ExportInsightsCSV(loader, insightService),
		},
	}
}

// DatasetMonitor retorna as rotas de operação do monitor do dataset
func DatasetMonitor(service *scheduler.DatasetMonitorService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/monitor/run",
			Method:  http.MethodPost,
			Handler: RunDatasetCheck(service),
		},
		{
			Path:    "/v1/monitor/status",
			Method:  http.MethodGet,
			Handler: GetDatasetMonitorStatus(service),
		},
	}
}
