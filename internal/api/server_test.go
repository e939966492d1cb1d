package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shophub-analytics/internal/api/handler"
	"github.com/vfg2006/shophub-analytics/internal/config"
	"github.com/vfg2006/shophub-analytics/internal/domain"
	"github.com/vfg2006/shophub-analytics/internal/scheduler"
	"github.com/vfg2006/shophub-analytics/internal/usecases/calculating"
	"github.com/vfg2006/shophub-analytics/internal/usecases/insighting"
	"github.com/vfg2006/shophub-analytics/internal/usecases/mocks"
	"github.com/vfg2006/shophub-analytics/pkg/apiErrors"
	"github.com/vfg2006/shophub-analytics/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestAnalyticsRoutes(t *testing.T) {
	log.SetupTestLogger()

	kpis := &domain.KPISet{TotalRevenue: "$10", TotalSales: "5"}
	snapshot := &domain.Snapshot{ID: "snap01", Dataset: &domain.Dataset{SalesData: make([]domain.MonthRecord, 12)}}

	tests := []struct {
		name           string
		method         string
		path           string
		setup          func(*mocks.MockAnalytics)
		expectedStatus int
		expectedCode   string
		validate       func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "KPIs do dataset corrente",
			method: http.MethodGet,
			path:   "/v1/analytics/kpis",
			setup: func(m *mocks.MockAnalytics) {
				m.EXPECT().KPIs().Return(kpis, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body domain.KPISet
				require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "$10", body.TotalRevenue)
			},
		},
		{
			name:   "Denominador zero vira 422",
			method: http.MethodGet,
			path:   "/v1/analytics/kpis",
			setup: func(m *mocks.MockAnalytics) {
				m.EXPECT().KPIs().Return(nil, calculating.NewCalculationError(calculating.ErrZeroDenominator, "sales_growth", "Nov"))
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedCode:   apiErrors.ErrZeroDenominator,
		},
		{
			name:   "Insights sorteados",
			method: http.MethodGet,
			path:   "/v1/analytics/insights",
			setup: func(m *mocks.MockAnalytics) {
				m.EXPECT().Insights().Return([]string{"a", "b", "c", "d"}, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var body map[string][]string
				require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
				assert.Len(t, body["insights"], 4)
			},
		},
		{
			name:   "Amostra inválida vira CALC_003",
			method: http.MethodGet,
			path:   "/v1/analytics/insights",
			setup: func(m *mocks.MockAnalytics) {
				m.EXPECT().Insights().Return(nil, insighting.ErrSampleTooLarge)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInvalidSample,
		},
		{
			name:   "Exportação usa o formato padrão",
			method: http.MethodGet,
			path:   "/v1/analytics/export",
			setup: func(m *mocks.MockAnalytics) {
				m.EXPECT().Export("json").Return([]byte(`{"format": "json"}`), nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, `{"format": "json"}`, rec.Body.String())
				assert.Contains(t, rec.Header().Get("Content-Disposition"), "shophub-analytics.json")
			},
		},
		{
			name:   "Exportação ecoa o formato pedido",
			method: http.MethodGet,
			path:   "/v1/analytics/export?format=csv",
			setup: func(m *mocks.MockAnalytics) {
				m.EXPECT().Export("csv").Return([]byte(`{"format": "csv"}`), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Formato inválido",
			method:         http.MethodGet,
			path:           "/v1/analytics/export?format=../etc",
			setup:          func(m *mocks.MockAnalytics) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:   "Dataset corrente",
			method: http.MethodGet,
			path:   "/v1/analytics/dataset",
			setup: func(m *mocks.MockAnalytics) {
				m.EXPECT().Current().Return(snapshot, nil)
			},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Contains(t, rec.Body.String(), `"id":"snap01"`)
			},
		},
		{
			name:   "Refresh com erro genérico",
			method: http.MethodPost,
			path:   "/v1/analytics/refresh",
			setup: func(m *mocks.MockAnalytics) {
				m.EXPECT().Refresh().Return(nil, errors.New("falhou"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
		{
			name:           "Rota inexistente",
			method:         http.MethodGet,
			path:           "/v1/nada",
			setup:          func(m *mocks.MockAnalytics) {},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrNotFound,
		},
		{
			name:           "Healthcheck",
			method:         http.MethodGet,
			path:           "/healthcheck",
			setup:          func(m *mocks.MockAnalytics) {},
			expectedStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

				var body map[string]string
				require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, "ok", body["status"])
				_, err := time.Parse(time.RFC3339, body["timestamp"])
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAnalytics := mocks.NewMockAnalytics(ctrl)
			tt.setup(mockAnalytics)

			h := NewHandler(mockAnalytics, domain.DefaultExportFormat, handler.CronJobServices{})

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedCode != "" {
				var apiErr apiErrors.APIError
				require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, tt.expectedCode, apiErr.Code)
			}

			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestCronRoutes(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	refreshed := make(chan struct{})
	var once sync.Once

	mockAnalytics := mocks.NewMockAnalytics(ctrl)
	mockAnalytics.EXPECT().Refresh().DoAndReturn(func() (*domain.Snapshot, error) {
		once.Do(func() { close(refreshed) })
		return &domain.Snapshot{ID: "x"}, nil
	}).AnyTimes()

	cfg := &config.Config{DatasetRefresh: config.DatasetRefresh{CronSchedule: "0 * * * *"}}
	refreshService := scheduler.NewDatasetRefreshService(mockAnalytics, cfg)
	h := NewHandler(mockAnalytics, "json", handler.CronJobServices{DatasetRefreshService: refreshService})

	t.Run("Tipo inválido", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/desconhecido/run", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Status do agendador", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"dataset-refresh"`)
		assert.Contains(t, rec.Body.String(), `"sync_cron":"0 * * * *"`)
	})

	t.Run("Execução manual é aceita", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/dataset-refresh/run", nil))
		assert.Equal(t, http.StatusAccepted, rec.Code)

		select {
		case <-refreshed:
		case <-time.After(2 * time.Second):
			t.Fatal("atualização manual não executada")
		}
	})
}
