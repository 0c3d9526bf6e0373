package portfolio

import (
	"sort"
	"time"

	"github.com/pventures/revops-dashboard-api/infrastructure/datagen"
	"github.com/pventures/revops-dashboard-api/infrastructure/repository"
	"github.com/pventures/revops-dashboard-api/internal/domain"
	"github.com/pventures/revops-dashboard-api/pkg/log"
)

// PortfolioService administra o snapshot da sessão e as visões derivadas
// dele. O estado pertence ao repositório: os cálculos continuam puros e
// podem ser reexecutados livremente a cada renderização.
type PortfolioService interface {
	Current() domain.PortfolioData
	Replace(snapshot domain.PortfolioData)
	LoadDemo() domain.PortfolioData
	TrendSeries(from, to *time.Time) []domain.TrendPoint
	Deals(clientID string) []domain.Deal
	LastLoadedAt() time.Time
}

type Service struct {
	repo      repository.PortfolioRepository
	generator *datagen.Generator
}

func NewService(repo repository.PortfolioRepository, generator *datagen.Generator) PortfolioService {
	return &Service{
		repo:      repo,
		generator: generator,
	}
}

func (s *Service) Current() domain.PortfolioData {
	return s.repo.Get()
}

func (s *Service) Replace(snapshot domain.PortfolioData) {
	log.L.WithFields(log.Fields{
		"client_count": len(snapshot.Clients),
	}).Info("portfolio: snapshot substituído")

	s.repo.Replace(snapshot)
}

// LoadDemo regenera o portfólio de demonstração e o instala como snapshot
// atual
func (s *Service) LoadDemo() domain.PortfolioData {
	snapshot := s.generator.GeneratePortfolio()
	s.Replace(snapshot)
	return snapshot
}

func (s *Service) LastLoadedAt() time.Time {
	return s.repo.LastReplacedAt()
}

// TrendSeries pivota o histórico em um ponto por data com o MRR de cada
// cliente, em ordem cronológica: o formato que o gráfico de tendência
// consome. from e to, quando informados, limitam o período.
func (s *Service) TrendSeries(from, to *time.Time) []domain.TrendPoint {
	historical := s.repo.Get().Historical

	byDate := make(map[string]*domain.TrendPoint)
	for _, point := range historical {
		if from != nil && !from.IsZero() && point.Date.Before(*from) {
			continue
		}
		// O filtro "to" é inclusivo: aceita pontos até o fim do dia
		if to != nil && !to.IsZero() && !point.Date.Before(to.AddDate(0, 0, 1)) {
			continue
		}

		key := point.Date.Format(time.DateOnly)
		entry, ok := byDate[key]
		if !ok {
			entry = &domain.TrendPoint{
				Date: point.Date,
				MRR:  make(map[string]float64),
			}
			byDate[key] = entry
		}

		entry.MRR[point.ClientID] = point.MRR
	}

	series := make([]domain.TrendPoint, 0, len(byDate))
	for _, entry := range byDate {
		series = append(series, *entry)
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}

// Deals lista os negócios do snapshot, opcionalmente filtrados por cliente.
// Apenas exibição: nenhuma regra de insight consome negócios.
func (s *Service) Deals(clientID string) []domain.Deal {
	deals := s.repo.Get().Deals
	if clientID == "" {
		return deals
	}

	filtered := make([]domain.Deal, 0, len(deals))
	for _, deal := range deals {
		if deal.ClientID == clientID {
			filtered = append(filtered, deal)
		}
	}

	return filtered
}
