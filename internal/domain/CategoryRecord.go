package domain

// CategoryRecord representa o desempenho de uma categoria de produtos
type CategoryRecord struct {
	Name   string  `json:"name"`
	Sales  int     `json:"sales"` // Participação percentual nas vendas
	Growth float64 `json:"growth"`
}

// Tabela estática, não derivada da série mensal
var defaultCategories = []CategoryRecord{
	{Name: "Electronics", Sales: 45, Growth: 12.5},
	{Name: "Fashion", Sales: 30, Growth: 8.3},
	{Name: "Home & Garden", Sales: 15, Growth: 15.7},
	{Name: "Sports", Sales: 10, Growth: 6.2},
}

// DefaultCategories retorna uma cópia da tabela fixa de categorias
func DefaultCategories() []CategoryRecord {
	return append([]CategoryRecord(nil), defaultCategories...)
}
