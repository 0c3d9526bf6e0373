package insighting

import (
	"fmt"
	"strconv"

	"github.com/pventures/revops-dashboard-api/internal/domain"
)

// Limiares das regras de negócio. Vêm da política de RevOps da casa e são
// fixos: o motor não faz modelagem estatística, apenas regras determinísticas.
const (
	criticalDeclineThreshold = -10.0 // growth_rate abaixo disso é queda crítica
	moderateDeclineThreshold = -5.0
	strongGrowthThreshold    = 10.0
	steadyGrowthThreshold    = 5.0
	lowPipelineRatio         = 2.0 // cobertura mínima saudável de pipeline
	healthyPipelineRatio     = 2.5
	poorConversionRate       = 3.0 // percentual mínimo de conversão de leads
)

// GenerateRuleBasedInsights aplica a bateria de regras por cliente, na ordem
// do portfólio, e por fim a regra de nível de portfólio. Função pura e
// determinística: sem I/O, sem aleatoriedade, nunca entra em pânico.
// A ordenação por severidade é responsabilidade do ranqueador, não daqui.
func GenerateRuleBasedInsights(clients []domain.ClientMetrics) []domain.Insight {
	insights := []domain.Insight{}

	for _, client := range clients {
		// Queda crítica de receita: estritamente abaixo de -10%.
		// Exatamente -10% cai na regra de queda moderada abaixo.
		if client.GrowthRate < criticalDeclineThreshold {
			insights = append(insights, domain.Insight{
				Severity:       domain.SeverityCritical,
				Client:         client.ClientName,
				Title:          "Significant Revenue Decline",
				Message:        fmt.Sprintf("%s MRR dropped %s%% this month", client.ClientName, formatRate(-client.GrowthRate)),
				Recommendation: "Schedule emergency leadership call to identify churn factors and retention strategy",
			})
		}

		// Regras de cobertura de pipeline só valem quando a razão é
		// calculável (MRR > 0, ver domain.ClientMetrics.PipelineRatio)
		ratio, hasRatio := client.PipelineRatio()

		if hasRatio && ratio < lowPipelineRatio {
			insights = append(insights, domain.Insight{
				Severity:       domain.SeverityWarning,
				Client:         client.ClientName,
				Title:          "Low Pipeline Coverage",
				Message:        fmt.Sprintf("%s pipeline only %.1fx of MRR", client.ClientName, ratio),
				Recommendation: "Increase prospecting efforts and accelerate deal velocity to maintain growth",
			})
		}

		if client.ConversionRate < poorConversionRate {
			insights = append(insights, domain.Insight{
				Severity:       domain.SeverityWarning,
				Client:         client.ClientName,
				Title:          "Poor Conversion Performance",
				Message:        fmt.Sprintf("Only %s%% of leads converting", formatRate(client.ConversionRate)),
				Recommendation: "Audit sales process and lead qualification criteria",
			})
		}

		// Queda moderada: [-10, -5). Mutuamente exclusiva com a queda
		// crítica pela construção dos intervalos.
		if client.GrowthRate < moderateDeclineThreshold && client.GrowthRate >= criticalDeclineThreshold {
			insights = append(insights, domain.Insight{
				Severity:       domain.SeverityWarning,
				Client:         client.ClientName,
				Title:          "Revenue Decline Detected",
				Message:        fmt.Sprintf("%s showing %s%% decline", client.ClientName, formatRate(-client.GrowthRate)),
				Recommendation: "Review customer satisfaction scores and competitive positioning",
			})
		}

		if client.GrowthRate > strongGrowthThreshold {
			insights = append(insights, domain.Insight{
				Severity:       domain.SeveritySuccess,
				Client:         client.ClientName,
				Title:          "Strong Performance",
				Message:        fmt.Sprintf("%s achieved %s%% growth", client.ClientName, formatRate(client.GrowthRate)),
				Recommendation: "Document successful strategies to replicate across portfolio",
			})
		}

		if client.GrowthRate > steadyGrowthThreshold && client.GrowthRate <= strongGrowthThreshold &&
			hasRatio && ratio >= healthyPipelineRatio {
			insights = append(insights, domain.Insight{
				Severity:       domain.SeveritySuccess,
				Client:         client.ClientName,
				Title:          "Healthy Growth Trajectory",
				Message:        fmt.Sprintf("%s showing steady growth with strong pipeline", client.ClientName),
				Recommendation: "Maintain current strategy and consider scaling successful initiatives",
			})
		}
	}

	if portfolioAlert, ok := portfolioHealthInsight(clients); ok {
		insights = append(insights, portfolioAlert)
	}

	return insights
}

// portfolioHealthInsight avalia a regra de nível de portfólio: alerta quando
// há pelo menos um cliente crítico ou mais de um em risco
func portfolioHealthInsight(clients []domain.ClientMetrics) (domain.Insight, bool) {
	criticalCount := 0
	atRiskCount := 0

	for _, client := range clients {
		switch client.Status {
		case domain.StatusCritical:
			criticalCount++
		case domain.StatusAtRisk:
			atRiskCount++
		}
	}

	if criticalCount == 0 && atRiskCount <= 1 {
		return domain.Insight{}, false
	}

	return domain.Insight{
		Severity:       domain.SeverityCritical,
		Client:         domain.PortfolioClient,
		Title:          "Portfolio Health Alert",
		Message:        fmt.Sprintf("%d of %d clients need immediate attention", criticalCount+atRiskCount, len(clients)),
		Recommendation: "Prioritize retention efforts and allocate resources to at-risk accounts",
	}, true
}

// formatRate imprime a taxa sem zeros à direita (24.7 → "24.7", 15 → "15"),
// como o dashboard sempre exibiu
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
