package domain

// StatusSuccess é o status de uma execução completa do pipeline
const StatusSuccess = "success"

// RunSummary é o resumo devolvido por uma execução do pipeline
type RunSummary struct {
	Status     string   `json:"status"`
	KPIs       *KPISet  `json:"kpis"`
	Insights   []string `json:"insights"`
	DataPoints int      `json:"data_points"`
}
