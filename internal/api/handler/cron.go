package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shophub-analytics/internal/scheduler"
	"github.com/vfg2006/shophub-analytics/pkg/apiErrors"
	"github.com/vfg2006/shophub-analytics/pkg/log"
)

const (
	CronJobTypeDatasetRefresh = "dataset-refresh"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	DatasetRefreshService *scheduler.DatasetRefreshService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDatasetRefresh, CronJobTypeAll:
			if services.DatasetRefreshService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de atualização do dataset não disponível", nil)
				return
			}
			services.DatasetRefreshService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: dataset-refresh, all", nil)
			return
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.DatasetRefreshService != nil {
			status[CronJobTypeDatasetRefresh] = services.DatasetRefreshService.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, status)
	}
}
