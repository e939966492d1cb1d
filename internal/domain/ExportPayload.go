package domain

// DefaultExportFormat é o rótulo de formato usado quando nenhum é informado
const DefaultExportFormat = "json"

// ExportPayload é o documento entregue às ferramentas de BI
type ExportPayload struct {
	KPIs                *KPISet           `json:"kpis"`
	SalesTrends         []MonthRecord     `json:"sales_trends"`
	CategoryPerformance []CategoryRecord  `json:"category_performance"`
	CustomerAnalytics   []CustomerSegment `json:"customer_analytics"`
	BusinessInsights    []string          `json:"business_insights"`
	ExportTimestamp     string            `json:"export_timestamp"` // ISO-8601
	Format              string            `json:"format"`
}
