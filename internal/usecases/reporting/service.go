package reporting

import (
	"io"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shophub-analytics/internal/domain"
	"github.com/vfg2006/shophub-analytics/internal/usecases/calculating"
	"github.com/vfg2006/shophub-analytics/internal/usecases/exporting"
	"github.com/vfg2006/shophub-analytics/internal/usecases/generating"
	"github.com/vfg2006/shophub-analytics/internal/usecases/insighting"
	"github.com/vfg2006/shophub-analytics/pkg/utils"
)

// Service orquestra gerador, calculadora, seletor e exportador.
// O mutex serializa o acesso porque a fonte aleatória compartilhada não é thread-safe.
type Service struct {
	generator  generating.Generator
	calculator calculating.Calculator
	selector   insighting.Selector
	exporter   exporting.Exporter
	now        func() time.Time

	mu       sync.Mutex
	snapshot *domain.Snapshot
}

// NewService cria uma nova instância do pipeline de analytics
func NewService(
	generator generating.Generator,
	calculator calculating.Calculator,
	selector insighting.Selector,
	exporter exporting.Exporter,
) *Service {
	return &Service{
		generator:  generator,
		calculator: calculator,
		selector:   selector,
		exporter:   exporter,
		now:        time.Now,
	}
}

// WithClock substitui o relógio usado na linha de conclusão do relatório
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Run executa o pipeline completo: gera o dataset, calcula os KPIs, imprime o
// relatório em w, sorteia insights e monta a exportação.
func (s *Service) Run(w io.Writer, format string) (*domain.RunSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.refresh()
	if err != nil {
		return nil, err
	}
	dataset := snapshot.Dataset

	printHeader(w)

	kpis, err := s.calculator.Calculate(dataset)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao calcular KPIs")
	}
	printKPIs(w, kpis)

	insights, err := s.selector.GenerateInsights()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao sortear insights")
	}
	printInsights(w, insights)

	printFooter(w, s.now())

	exported, err := s.exporter.Export(dataset, format)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao exportar dados")
	}

	logrus.WithFields(logrus.Fields{
		"snapshot_id": snapshot.ID,
		"export_size": len(exported),
	}).Info("Pipeline de analytics concluído com sucesso")

	return &domain.RunSummary{
		Status:     domain.StatusSuccess,
		KPIs:       kpis,
		Insights:   insights,
		DataPoints: len(dataset.SalesData),
	}, nil
}

// Refresh gera um novo dataset e o torna corrente
func (s *Service) Refresh() (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.refresh()
}

// Current retorna o dataset corrente, gerando um se ainda não existir
func (s *Service) Current() (*domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current()
}

// KPIs calcula os indicadores sobre o dataset corrente
func (s *Service) KPIs() (*domain.KPISet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.current()
	if err != nil {
		return nil, err
	}

	return s.calculator.Calculate(snapshot.Dataset)
}

// Insights sorteia um novo conjunto de insights
func (s *Service) Insights() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.selector.GenerateInsights()
}

// Export serializa o dataset corrente para ferramentas de BI
func (s *Service) Export(format string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.current()
	if err != nil {
		return nil, err
	}

	return s.exporter.Export(snapshot.Dataset, format)
}

func (s *Service) current() (*domain.Snapshot, error) {
	if s.snapshot != nil {
		return s.snapshot, nil
	}
	return s.refresh()
}

func (s *Service) refresh() (*domain.Snapshot, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do snapshot")
	}

	s.snapshot = &domain.Snapshot{
		ID:      id,
		Dataset: s.generator.Generate(),
	}

	logrus.WithField("snapshot_id", id).Info("Novo dataset gerado")

	return s.snapshot, nil
}
