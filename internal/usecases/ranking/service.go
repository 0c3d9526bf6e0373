package ranking

import (
	"sort"

	"github.com/pventures/revops-dashboard-api/internal/domain"
	"github.com/pventures/revops-dashboard-api/pkg/utils"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// PortfolioRanker calcula os KPIs agregados e as visões ordenadas de
// clientes consumidas pelo dashboard. Funções puras de redução: o snapshot
// original nunca é modificado.
type PortfolioRanker interface {
	Summarize(clients []domain.ClientMetrics) domain.PortfolioSummary
	SortClients(clients []domain.ClientMetrics, mode domain.SortMode) []domain.ClientMetrics
	PerformanceScore(client domain.ClientMetrics) float64
}

type Service struct{}

func NewService() PortfolioRanker {
	return &Service{}
}

// Summarize calcula os KPIs do topo do dashboard. Portfólio vazio produz
// zeros, nunca divisão por zero.
func (s *Service) Summarize(clients []domain.ClientMetrics) domain.PortfolioSummary {
	summary := domain.PortfolioSummary{ClientCount: len(clients)}

	for _, client := range clients {
		summary.TotalMRR += client.MRR
		summary.TotalPipeline += client.PipelineValue
		summary.AvgConversionRate += client.ConversionRate

		if client.Status == domain.StatusCritical {
			summary.CriticalClients++
		}
	}

	if len(clients) > 0 {
		summary.AvgConversionRate = utils.RoundWithTwoDecimalPlace(summary.AvgConversionRate / float64(len(clients)))
	}

	return summary
}

// PerformanceScore combina crescimento, cobertura de pipeline e conversão em
// um único escore de ordenação. Sem razão de pipeline calculável o termo
// entra como zero (mesma política das regras de insight).
func (s *Service) PerformanceScore(client domain.ClientMetrics) float64 {
	ratio, _ := client.PipelineRatio()
	return client.GrowthRate + ratio*5 + client.ConversionRate
}

// SortClients retorna uma cópia ordenada da lista de clientes. Todas as
// ordenações são estáveis: empates preservam a ordem original do portfólio.
// Modos desconhecidos retornam a cópia na ordem original.
func (s *Service) SortClients(clients []domain.ClientMetrics, mode domain.SortMode) []domain.ClientMetrics {
	sorted := make([]domain.ClientMetrics, len(clients))
	copy(sorted, clients)

	switch mode {
	case domain.SortByPerformance:
		sort.SliceStable(sorted, func(i, j int) bool {
			return s.PerformanceScore(sorted[i]) > s.PerformanceScore(sorted[j])
		})
	case domain.SortByMRR:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MRR > sorted[j].MRR
		})
	case domain.SortByGrowth:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].GrowthRate > sorted[j].GrowthRate
		})
	case domain.SortByName:
		// Comparação de nomes sensível a localidade, como o seletor
		// "Name (A-Z)" do dashboard sempre ordenou. O Collator guarda
		// estado interno de iteração durante Compare, então cada
		// ordenação usa uma instância própria.
		collator := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(sorted, func(i, j int) bool {
			return collator.CompareString(sorted[i].ClientName, sorted[j].ClientName) < 0
		})
	}

	return sorted
}
