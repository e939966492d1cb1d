package generating

import (
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shophub-analytics/internal/domain"
	"github.com/vfg2006/shophub-analytics/pkg/utils"
)

// Parâmetros da série sintética
const (
	baseSales         = 3000
	seasonalAmplitude = 0.3
	seasonalStep      = 0.5
	monthlyGrowth     = 0.02
	customerRatio     = 0.15

	salesNoise    = 200
	customerNoise = 30
	revenueNoise  = 500.0

	minOrderValue = 35.0
	maxOrderValue = 65.0

	minConversionRate = 2.5
	maxConversionRate = 4.2
)

// Service gera datasets a partir de uma fonte aleatória injetada
type Service struct {
	rng *rand.Rand
	now func() time.Time
}

// NewService cria uma nova instância do gerador.
// Se now for nil, time.Now é usado.
func NewService(rng *rand.Rand, now func() time.Time) Generator {
	if now == nil {
		now = time.Now
	}

	return &Service{
		rng: rng,
		now: now,
	}
}

// Generate produz os 12 registros mensais e copia as tabelas estáticas
func (s *Service) Generate() *domain.Dataset {
	salesData := make([]domain.MonthRecord, 0, len(domain.Months))
	for i, month := range domain.Months {
		salesData = append(salesData, s.generateMonth(i, month))
	}

	dataset := &domain.Dataset{
		SalesData:        salesData,
		Categories:       domain.DefaultCategories(),
		CustomerSegments: domain.DefaultCustomerSegments(),
		GeneratedAt:      s.now(),
	}

	logrus.WithFields(logrus.Fields{
		"data_points":  len(dataset.SalesData),
		"generated_at": dataset.GeneratedAt,
	}).Debug("Dataset sintético gerado")

	return dataset
}

func (s *Service) generateMonth(index int, month string) domain.MonthRecord {
	i := float64(index)
	seasonalFactor := 1 + seasonalAmplitude*math.Sin(i*seasonalStep)
	growthFactor := 1 + i*monthlyGrowth

	// Clientes e receita partem da linha de base, antes do ruído de vendas
	baseline := utils.RoundToInt(baseSales * seasonalFactor * growthFactor)
	orderValue := s.uniform(minOrderValue, maxOrderValue)

	return domain.MonthRecord{
		Month:          month,
		Sales:          baseline + s.randInt(-salesNoise, salesNoise),
		Customers:      utils.RoundToInt(float64(baseline)*customerRatio) + s.randInt(-customerNoise, customerNoise),
		Revenue:        int64(math.Round(float64(baseline)*orderValue + s.uniform(-revenueNoise, revenueNoise))),
		ConversionRate: utils.RoundWithTwoDecimalPlace(s.uniform(minConversionRate, maxConversionRate)),
	}
}

// randInt sorteia um inteiro uniforme em [lo, hi], inclusive
func (s *Service) randInt(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

func (s *Service) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
