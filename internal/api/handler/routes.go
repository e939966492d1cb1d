package handler

import (
	"net/http"

	"github.com/vfg2006/shophub-analytics/internal/api/handler/router"
	"github.com/vfg2006/shophub-analytics/internal/usecases/reporting"
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

func Analytics(service reporting.Analytics, defaultFormat string) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/dataset",
			Method:  http.MethodGet,
			Handler: GetDataset(service),
		},
		{
			Path:    "/v1/analytics/kpis",
			Method:  http.MethodGet,
			Handler: GetKPIs(service),
		},
		{
			Path:    "/v1/analytics/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
		{
			Path:    "/v1/analytics/export",
			Method:  http.MethodGet,
			Handler: ExportData(service, defaultFormat),
		},
		{
			Path:    "/v1/analytics/refresh",
			Method:  http.MethodPost,
			Handler: RefreshDataset(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
