package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/shophub-analytics/pkg/log"
)

type healthStatus struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// HealthcheckHandler responde 200 enquanto o processo estiver servindo requisições
func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, log.ForContext(r.Context()), http.StatusOK, healthStatus{
			Status:    "ok",
			Timestamp: time.Now().Format(time.RFC3339),
		})
	})
}
