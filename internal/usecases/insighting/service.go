package insighting

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultInsightCount é a quantidade de insights sorteados por chamada
const DefaultInsightCount = 4

// Pool fixo de insights; o conteúdo não é derivado do dataset
var defaultPool = []string{
	"Electronics category shows strongest growth at 12.5% month-over-month",
	"Premium customer segment contributes 65% of total revenue despite being 18% of customer base",
	"Conversion rates peak during months 3, 6, and 11 indicating seasonal patterns",
	"Customer acquisition cost decreased by 15% while lifetime value increased by 22%",
	"Mobile traffic accounts for 68% of sessions but only 45% of conversions",
	"Cart abandonment rate improved from 72% to 68% after UX optimizations",
}

// DefaultPool retorna uma cópia do pool padrão de insights
func DefaultPool() []string {
	return append([]string(nil), defaultPool...)
}

// Service sorteia insights sem reposição a partir de uma fonte aleatória injetada
type Service struct {
	rng   *rand.Rand
	pool  []string
	count int
}

// Option configura o Service
type Option func(*Service)

// WithPool substitui o pool padrão de insights
func WithPool(pool []string) Option {
	return func(s *Service) {
		s.pool = append([]string(nil), pool...)
	}
}

// WithCount define quantos insights são sorteados por chamada
func WithCount(count int) Option {
	return func(s *Service) {
		s.count = count
	}
}

// NewService cria uma nova instância do seletor de insights.
// Retorna erro se a quantidade sorteada não couber no pool.
func NewService(rng *rand.Rand, opts ...Option) (Selector, error) {
	s := &Service{
		rng:   rng,
		pool:  DefaultPool(),
		count: DefaultInsightCount,
	}

	for _, opt := range opts {
		opt(s)
	}

	if err := s.validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// GenerateInsights sorteia count insights distintos, na ordem do sorteio
func (s *Service) GenerateInsights() ([]string, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}

	order := s.rng.Perm(len(s.pool))[:s.count]

	insights := make([]string, 0, s.count)
	for _, idx := range order {
		insights = append(insights, s.pool[idx])
	}

	logrus.WithField("insights", len(insights)).Debug("Insights sorteados")

	return insights, nil
}

func (s *Service) validate() error {
	if s.count <= 0 {
		return errors.Wrapf(ErrInvalidInsightNo, "count=%d", s.count)
	}
	if s.count > len(s.pool) {
		return errors.Wrapf(ErrSampleTooLarge, "count=%d pool=%d", s.count, len(s.pool))
	}
	return nil
}
