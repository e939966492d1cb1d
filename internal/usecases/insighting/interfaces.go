package insighting

//go:generate mockgen -source=interfaces.go -destination=../mocks/mock_insighting.go -package=mocks

// Selector define a interface para sortear os insights de negócio
type Selector interface {
	// GenerateInsights sorteia insights distintos do pool fixo
	GenerateInsights() ([]string, error)
}
