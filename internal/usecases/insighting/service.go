package insighting

import (
	"context"
	"sort"

	"github.com/pventures/revops-dashboard-api/infrastructure/integrator/gemini"
	"github.com/pventures/revops-dashboard-api/internal/config"
	"github.com/pventures/revops-dashboard-api/internal/domain"
	"github.com/pventures/revops-dashboard-api/pkg/log"
)

// defaultDisplayLimit é o orçamento de exibição do painel de insights
const defaultDisplayLimit = 7

// Service combina os insights determinísticos das regras com a fonte
// suplementar opcional (Gemini)
type Service struct {
	cfg          *config.Config
	supplemental gemini.SupplementalInsighter
}

// NewService cria o serviço de insights. supplemental pode ser nil: o
// dashboard funciona apenas com os insights baseados em regras.
func NewService(cfg *config.Config, supplemental gemini.SupplementalInsighter) Insighter {
	return &Service{
		cfg:          cfg,
		supplemental: supplemental,
	}
}

// GenerateInsights produz a lista final exibida: regras primeiro, depois a
// fonte suplementar com política de melhor esforço (qualquer falha vira
// lista vazia, registrada em log e nunca propagada), ordenação estável por
// severidade e truncamento ao orçamento de exibição.
func (s *Service) GenerateInsights(ctx context.Context, clients []domain.ClientMetrics, withSupplemental bool) []domain.Insight {
	ruleInsights := GenerateRuleBasedInsights(clients)

	var supplementalInsights []domain.Insight
	if withSupplemental && s.supplemental != nil {
		fetched, err := s.supplemental.FetchSupplementalInsights(ctx, clients)
		if err != nil {
			// Fonte não confiável: segue apenas com as regras
			log.ForContext(ctx).WithError(err).
				Warn("insights: falha na fonte suplementar, usando apenas insights de regras")
		} else {
			supplementalInsights = fetched
		}
	}

	return MergeInsights(ruleInsights, supplementalInsights, s.displayLimit())
}

// MergeInsights concatena os insights de regras com os suplementares,
// ordena por severidade preservando a ordem relativa de empates (a
// estabilidade é contrato: regras vêm antes de suplementos de mesma
// severidade) e trunca ao limite de exibição.
func MergeInsights(ruleInsights, supplementalInsights []domain.Insight, limit int) []domain.Insight {
	merged := make([]domain.Insight, 0, len(ruleInsights)+len(supplementalInsights))
	merged = append(merged, ruleInsights...)
	merged = append(merged, supplementalInsights...)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Severity.Rank() < merged[j].Severity.Rank()
	})

	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}

	return merged
}

func (s *Service) displayLimit() int {
	if s.cfg != nil && s.cfg.Insights.DisplayLimit > 0 {
		return s.cfg.Insights.DisplayLimit
	}
	return defaultDisplayLimit
}
