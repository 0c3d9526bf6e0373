package insighting

import (
	"context"

	"github.com/pventures/revops-dashboard-api/internal/domain"
)

// Insighter gera a lista final de insights exibida no dashboard
type Insighter interface {
	// GenerateInsights avalia as regras sobre o portfólio e, quando
	// solicitado, mescla os insights suplementares da fonte externa.
	// Nunca retorna erro: falhas da fonte externa degradam para a lista
	// apenas com os insights baseados em regras.
	GenerateInsights(ctx context.Context, clients []domain.ClientMetrics, withSupplemental bool) []domain.Insight
}
