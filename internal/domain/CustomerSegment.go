package domain

// CustomerSegment representa um segmento de clientes com seu valor médio
type CustomerSegment struct {
	Segment string  `json:"segment"`
	Count   int     `json:"count"`
	Value   float64 `json:"value"`
}

var defaultCustomerSegments = []CustomerSegment{
	{Segment: "Premium", Count: 1250, Value: 450},
	{Segment: "Regular", Count: 3200, Value: 180},
	{Segment: "Occasional", Count: 2100, Value: 75},
}

// DefaultCustomerSegments retorna uma cópia da tabela fixa de segmentos
func DefaultCustomerSegments() []CustomerSegment {
	return append([]CustomerSegment(nil), defaultCustomerSegments...)
}
