package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/shophub-analytics/internal/usecases/calculating"
	"github.com/vfg2006/shophub-analytics/internal/usecases/insighting"
	"github.com/vfg2006/shophub-analytics/pkg/apiErrors"
	"github.com/vfg2006/shophub-analytics/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// writeJSON escreve body como JSON com o status informado
func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("erro ao codificar resposta")
	}
}

// writeServiceError traduz erros do pipeline para códigos da API
func writeServiceError(w http.ResponseWriter, err error) {
	var calcErr *calculating.CalculationError

	switch {
	case errors.As(err, &calcErr):
		apiErrors.WriteError(w, apiErrors.ErrZeroDenominator, err.Error(), map[string]string{
			"metric": calcErr.Metric,
			"month":  calcErr.Month,
		})
	case errors.Is(err, calculating.ErrInsufficientData):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientData, err.Error(), nil)
	case errors.Is(err, insighting.ErrSampleTooLarge), errors.Is(err, insighting.ErrInvalidInsightNo):
		apiErrors.WriteError(w, apiErrors.ErrInvalidSample, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
