package handler

import (
	"fmt"
	"net/http"
	"regexp"

	"github.com/vfg2006/shophub-analytics/internal/usecases/reporting"
	"github.com/vfg2006/shophub-analytics/pkg/apiErrors"
	"github.com/vfg2006/shophub-analytics/pkg/log"
)

var formatPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,16}$`)

// GetDataset retorna o dataset corrente com o ID do snapshot
func GetDataset(service reporting.Analytics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := service.Current()
		if err != nil {
			logger.WithError(err).Error("analytics-dataset: erro ao obter dataset")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, snapshot)
	})
}

// GetKPIs calcula os indicadores do dataset corrente
func GetKPIs(service reporting.Analytics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		kpis, err := service.KPIs()
		if err != nil {
			logger.WithError(err).Error("analytics-kpis: erro ao calcular KPIs")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, kpis)
	})
}

// GetInsights sorteia um novo conjunto de insights
func GetInsights(service reporting.Analytics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		insights, err := service.Insights()
		if err != nil {
			logger.WithError(err).Error("analytics-insights: erro ao sortear insights")
			writeServiceError(w, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, map[string]any{"insights": insights})
	})
}

// ExportData devolve o documento de exportação como anexo.
// O parâmetro format é apenas ecoado; o corpo é sempre JSON.
func ExportData(service reporting.Analytics, defaultFormat string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		format := r.URL.Query().Get("format")
		if format == "" {
			format = defaultFormat
		}

		if !formatPattern.MatchString(format) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Formato inválido", format)
			return
		}

		data, err := service.Export(format)
		if err != nil {
			logger.WithError(err).WithField("format", format).Error("analytics-export: erro ao exportar dados")
			writeServiceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"format": format,
			"bytes":  len(data),
		}).Info("analytics-export: exportação gerada com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="shophub-analytics.%s"`, format))
		if _, err := w.Write(data); err != nil {
			logger.WithError(err).Error("analytics-export: erro ao escrever resposta")
		}
	})
}

// RefreshDataset gera um novo dataset imediatamente
func RefreshDataset(service reporting.Analytics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := service.Refresh()
		if err != nil {
			logger.WithError(err).Error("analytics-refresh: erro ao gerar dataset")
			writeServiceError(w, err)
			return
		}

		logger.WithField("snapshot_id", snapshot.ID).Info("analytics-refresh: dataset regenerado")
		writeJSON(w, logger, http.StatusOK, snapshot)
	})
}
