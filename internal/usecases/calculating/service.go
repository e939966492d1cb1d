package calculating

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shophub-analytics/internal/domain"
	"github.com/vfg2006/shophub-analytics/pkg/utils"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const currencySymbol = "$"

// Service calcula os KPIs; não mantém cache entre chamadas
type Service struct {
	printer *message.Printer
}

// NewService cria uma nova instância da calculadora de KPIs
func NewService() Calculator {
	return &Service{
		printer: message.NewPrinter(language.English),
	}
}

// Calculate calcula totais, médias e crescimento do último mês contra o penúltimo
func (s *Service) Calculate(dataset *domain.Dataset) (*domain.KPISet, error) {
	if dataset == nil || len(dataset.SalesData) < 2 {
		return nil, ErrInsufficientData
	}

	records := dataset.SalesData
	latest := records[len(records)-1]
	previous := records[len(records)-2]

	var (
		totalRevenue    int64
		totalSales      int64
		conversionTotal float64
	)
	for _, record := range records {
		totalRevenue += record.Revenue
		totalSales += int64(record.Sales)
		conversionTotal += record.ConversionRate
	}
	avgConversion := conversionTotal / float64(len(records))

	if previous.Revenue == 0 {
		return nil, NewCalculationError(ErrZeroDenominator, "revenue_growth", previous.Month)
	}
	revenueGrowth := utils.PercentChange(float64(latest.Revenue), float64(previous.Revenue))

	if previous.Sales == 0 {
		return nil, NewCalculationError(ErrZeroDenominator, "sales_growth", previous.Month)
	}
	salesGrowth := utils.PercentChange(float64(latest.Sales), float64(previous.Sales))

	kpis := &domain.KPISet{
		TotalRevenue:    s.formatCurrency(totalRevenue),
		RevenueGrowth:   FormatSignedPercent(revenueGrowth),
		TotalSales:      s.formatInt(totalSales),
		SalesGrowth:     FormatSignedPercent(salesGrowth),
		AvgConversion:   fmt.Sprintf("%.2f%%", avgConversion),
		ActiveCustomers: domain.ActiveCustomers,
		CustomerGrowth:  domain.CustomerGrowth,
	}

	logrus.WithFields(logrus.Fields{
		"total_revenue":  totalRevenue,
		"total_sales":    totalSales,
		"revenue_growth": revenueGrowth,
		"sales_growth":   salesGrowth,
	}).Debug("KPIs calculados")

	return kpis, nil
}

// FormatSignedPercent formata com sinal explícito e uma casa decimal, ex: +3.4%
func FormatSignedPercent(value float64) string {
	return fmt.Sprintf("%+.1f%%", value)
}

func (s *Service) formatCurrency(value int64) string {
	return currencySymbol + s.formatInt(value)
}

// formatInt agrupa milhares com vírgula, ex: 1,234,567
func (s *Service) formatInt(value int64) string {
	return s.printer.Sprintf("%d", value)
}
