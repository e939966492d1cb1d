package domain

import (
	"time"
)

// Dataset agrega todos os dados sintéticos gerados em uma execução.
// Depois de criado é somente leitura.
type Dataset struct {
	SalesData        []MonthRecord     `json:"sales_data"`
	Categories       []CategoryRecord  `json:"categories"`
	CustomerSegments []CustomerSegment `json:"customer_segments"`
	GeneratedAt      time.Time         `json:"generated_at"`
}

// Snapshot é o dataset corrente do serviço junto com seus metadados
type Snapshot struct {
	ID      string   `json:"id"`
	Dataset *Dataset `json:"dataset"`
}

// Clone devolve uma cópia estrutural das tabelas do dataset
func (d *Dataset) Clone() *Dataset {
	if d == nil {
		return nil
	}

	return &Dataset{
		SalesData:        append([]MonthRecord(nil), d.SalesData...),
		Categories:       append([]CategoryRecord(nil), d.Categories...),
		CustomerSegments: append([]CustomerSegment(nil), d.CustomerSegments...),
		GeneratedAt:      d.GeneratedAt,
	}
}
