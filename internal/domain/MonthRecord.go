package domain

// Months são os rótulos fixos do calendário, em ordem cronológica
var Months = [...]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthRecord representa as métricas sintéticas de um mês
type MonthRecord struct {
	Month          string  `json:"month"`
	Sales          int     `json:"sales"`
	Customers      int     `json:"customers"`
	Revenue        int64   `json:"revenue"`
	ConversionRate float64 `json:"conversion_rate"` // Percentual com duas casas decimais
}
