package calculating

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shophub-analytics/internal/domain"
	"github.com/vfg2006/shophub-analytics/internal/usecases/generating"
)

// linearDataset monta 12 meses com receita 1000*(i+1) e vendas 100*(i+1)
func linearDataset() *domain.Dataset {
	records := make([]domain.MonthRecord, 0, len(domain.Months))
	for i, month := range domain.Months {
		records = append(records, domain.MonthRecord{
			Month:          month,
			Sales:          100 * (i + 1),
			Customers:      15 * (i + 1),
			Revenue:        int64(1000 * (i + 1)),
			ConversionRate: 3.0,
		})
	}

	return &domain.Dataset{
		SalesData:        records,
		Categories:       domain.DefaultCategories(),
		CustomerSegments: domain.DefaultCustomerSegments(),
	}
}

func TestService_Calculate(t *testing.T) {
	tests := []struct {
		name     string
		dataset  func() *domain.Dataset
		expected *domain.KPISet
	}{
		{
			name:    "Série linear com crescimento positivo",
			dataset: linearDataset,
			expected: &domain.KPISet{
				TotalRevenue:    "$78,000",
				RevenueGrowth:   "+9.1%",
				TotalSales:      "7,800",
				SalesGrowth:     "+9.1%",
				AvgConversion:   "3.00%",
				ActiveCustomers: "8,750",
				CustomerGrowth:  "+18.5%",
			},
		},
		{
			name: "Último mês em queda gera sinal negativo",
			dataset: func() *domain.Dataset {
				ds := linearDataset()
				ds.SalesData[11].Revenue = 10000
				ds.SalesData[11].Sales = 1000
				return ds
			},
			expected: &domain.KPISet{
				TotalRevenue:    "$76,000",
				RevenueGrowth:   "-9.1%",
				TotalSales:      "7,600",
				SalesGrowth:     "-9.1%",
				AvgConversion:   "3.00%",
				ActiveCustomers: "8,750",
				CustomerGrowth:  "+18.5%",
			},
		},
		{
			name: "Sem variação mantém sinal positivo",
			dataset: func() *domain.Dataset {
				ds := linearDataset()
				ds.SalesData[11].Revenue = 11000
				ds.SalesData[11].Sales = 1100
				ds.SalesData[0].ConversionRate = 4.2
				return ds
			},
			expected: &domain.KPISet{
				TotalRevenue:    "$77,000",
				RevenueGrowth:   "+0.0%",
				TotalSales:      "7,700",
				SalesGrowth:     "+0.0%",
				AvgConversion:   "3.10%",
				ActiveCustomers: "8,750",
				CustomerGrowth:  "+18.5%",
			},
		},
		{
			name: "Apenas dois meses",
			dataset: func() *domain.Dataset {
				return &domain.Dataset{SalesData: []domain.MonthRecord{
					{Month: "Nov", Sales: 2000, Revenue: 1234567, ConversionRate: 2.5},
					{Month: "Dec", Sales: 2500, Revenue: 1000000, ConversionRate: 3.5},
				}}
			},
			expected: &domain.KPISet{
				TotalRevenue:    "$2,234,567",
				RevenueGrowth:   "-19.0%",
				TotalSales:      "4,500",
				SalesGrowth:     "+25.0%",
				AvgConversion:   "3.00%",
				ActiveCustomers: "8,750",
				CustomerGrowth:  "+18.5%",
			},
		},
		{
			name: "Valores negativos não são truncados",
			dataset: func() *domain.Dataset {
				return &domain.Dataset{SalesData: []domain.MonthRecord{
					{Month: "Nov", Sales: 2000, Revenue: 100000, ConversionRate: 2.5},
					{Month: "Dec", Sales: -200, Revenue: -50000, ConversionRate: 3.5},
				}}
			},
			expected: &domain.KPISet{
				TotalRevenue:    "$50,000",
				RevenueGrowth:   "-150.0%",
				TotalSales:      "1,800",
				SalesGrowth:     "-110.0%",
				AvgConversion:   "3.00%",
				ActiveCustomers: "8,750",
				CustomerGrowth:  "+18.5%",
			},
		},
		{
			name: "Totais negativos mantêm o sinal",
			dataset: func() *domain.Dataset {
				return &domain.Dataset{SalesData: []domain.MonthRecord{
					{Month: "Nov", Sales: 300, Revenue: 1000, ConversionRate: 3.0},
					{Month: "Dec", Sales: -500, Revenue: -5000, ConversionRate: 3.0},
				}}
			},
			expected: &domain.KPISet{
				TotalRevenue:    "$-4,000",
				RevenueGrowth:   "-600.0%",
				TotalSales:      "-200",
				SalesGrowth:     "-266.7%",
				AvgConversion:   "3.00%",
				ActiveCustomers: "8,750",
				CustomerGrowth:  "+18.5%",
			},
		},
	}

	service := NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kpis, err := service.Calculate(tt.dataset())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kpis)
		})
	}
}

func TestService_Calculate_ZeroDenominator(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(ds *domain.Dataset)
		expectedMetric string
	}{
		{
			name:           "Receita do penúltimo mês igual a zero",
			mutate:         func(ds *domain.Dataset) { ds.SalesData[10].Revenue = 0 },
			expectedMetric: "revenue_growth",
		},
		{
			name:           "Vendas do penúltimo mês igual a zero",
			mutate:         func(ds *domain.Dataset) { ds.SalesData[10].Sales = 0 },
			expectedMetric: "sales_growth",
		},
	}

	service := NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := linearDataset()
			tt.mutate(ds)

			kpis, err := service.Calculate(ds)

			assert.Nil(t, kpis)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrZeroDenominator))

			var calcErr *CalculationError
			require.True(t, errors.As(err, &calcErr))
			assert.Equal(t, tt.expectedMetric, calcErr.Metric)
			assert.Equal(t, "Nov", calcErr.Month)
			assert.Contains(t, err.Error(), tt.expectedMetric)
		})
	}
}

func TestService_Calculate_InsufficientData(t *testing.T) {
	service := NewService()

	_, err := service.Calculate(nil)
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = service.Calculate(&domain.Dataset{SalesData: []domain.MonthRecord{{Month: "Jan", Sales: 1, Revenue: 1}}})
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestService_Calculate_SeededPipeline(t *testing.T) {
	now := func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	dataset := generating.NewService(rand.New(rand.NewSource(2024)), now).Generate()

	kpis, err := NewService().Calculate(dataset)
	require.NoError(t, err)

	var totalSales int
	for _, record := range dataset.SalesData {
		totalSales += record.Sales
	}
	assert.Equal(t, strings.ReplaceAll(kpis.TotalSales, ",", ""), strconv.Itoa(totalSales))

	last, previous := dataset.SalesData[11], dataset.SalesData[10]
	expectedGrowth := float64(last.Revenue-previous.Revenue) / float64(previous.Revenue) * 100
	assert.Equal(t, fmt.Sprintf("%+.1f%%", expectedGrowth), kpis.RevenueGrowth)
}

func TestService_Calculate_AvgConversionInRange(t *testing.T) {
	service := NewService()

	for seed := int64(1); seed <= 25; seed++ {
		dataset := generating.NewService(rand.New(rand.NewSource(seed)), nil).Generate()

		kpis, err := service.Calculate(dataset)
		require.NoError(t, err)

		avg, err := strconv.ParseFloat(strings.TrimSuffix(kpis.AvgConversion, "%"), 64)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, avg, 2.5)
		assert.LessOrEqual(t, avg, 4.2)
	}
}

func TestFormatSignedPercent(t *testing.T) {
	assert.Equal(t, "+12.3%", FormatSignedPercent(12.345))
	assert.Equal(t, "-0.5%", FormatSignedPercent(-0.45))
	assert.Equal(t, "+0.0%", FormatSignedPercent(0))
}
