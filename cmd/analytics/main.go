package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shophub-analytics/internal/api"
	"github.com/vfg2006/shophub-analytics/internal/config"
	"github.com/vfg2006/shophub-analytics/internal/scheduler"
	"github.com/vfg2006/shophub-analytics/internal/usecases/calculating"
	"github.com/vfg2006/shophub-analytics/internal/usecases/exporting"
	"github.com/vfg2006/shophub-analytics/internal/usecases/generating"
	"github.com/vfg2006/shophub-analytics/internal/usecases/insighting"
	"github.com/vfg2006/shophub-analytics/internal/usecases/reporting"
	"github.com/vfg2006/shophub-analytics/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel, os.Stderr)

	analyticsService, err := newAnalyticsService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao inicializar o pipeline de analytics")
	}

	if !cfg.Server.Enabled {
		summary, err := analyticsService.Run(os.Stdout, cfg.Export.Format)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao executar o pipeline de analytics")
		}

		logrus.WithFields(logrus.Fields{
			"status":      summary.Status,
			"data_points": summary.DataPoints,
			"insights":    len(summary.Insights),
		}).Info("Execução finalizada")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	datasetRefreshService := scheduler.NewDatasetRefreshService(analyticsService, cfg)
	if err := datasetRefreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dataset")
	}

	server, err := api.New(cfg, analyticsService, datasetRefreshService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// newAnalyticsService monta o pipeline com uma única fonte aleatória compartilhada
func newAnalyticsService(cfg *config.Config) (*reporting.Service, error) {
	seed := cfg.Generator.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logrus.WithField("seed", seed).Debug("Semente da fonte aleatória definida")

	rng := rand.New(rand.NewSource(seed))

	selector, err := insighting.NewService(rng, insighting.WithCount(cfg.Generator.InsightCount))
	if err != nil {
		return nil, err
	}

	generator := generating.NewService(rng, nil)
	calculator := calculating.NewService()
	exporter := exporting.NewService(calculator, selector, nil)

	return reporting.NewService(generator, calculator, selector, exporter), nil
}
