package domain

// Métricas fixas, não derivadas do dataset
const (
	ActiveCustomers = "8,750"
	CustomerGrowth  = "+18.5%"
)

// KPISet contém os indicadores já formatados para exibição
type KPISet struct {
	TotalRevenue    string `json:"total_revenue"`
	RevenueGrowth   string `json:"revenue_growth"`
	TotalSales      string `json:"total_sales"`
	SalesGrowth     string `json:"sales_growth"`
	AvgConversion   string `json:"avg_conversion"`
	ActiveCustomers string `json:"active_customers"`
	CustomerGrowth  string `json:"customer_growth"`
}

// KPIEntry é um par nome/valor de um indicador
type KPIEntry struct {
	Name  string
	Value string
}

// Entries retorna os indicadores na ordem de exibição
func (k *KPISet) Entries() []KPIEntry {
	return []KPIEntry{
		{Name: "total_revenue", Value: k.TotalRevenue},
		{Name: "revenue_growth", Value: k.RevenueGrowth},
		{Name: "total_sales", Value: k.TotalSales},
		{Name: "sales_growth", Value: k.SalesGrowth},
		{Name: "avg_conversion", Value: k.AvgConversion},
		{Name: "active_customers", Value: k.ActiveCustomers},
		{Name: "customer_growth", Value: k.CustomerGrowth},
	}
}
