package handler

import (
	"net/http"

	"github.com/pventures/revops-dashboard-api/internal/usecases/insighting"
	"github.com/pventures/revops-dashboard-api/internal/usecases/portfolio"
	"github.com/pventures/revops-dashboard-api/pkg/log"
)

// GetInsights retorna a lista ranqueada de insights do snapshot atual.
// Com supplemental=true a fonte externa é consultada de forma síncrona,
// com a política de melhor esforço: falhas degradam para a lista apenas
// com os insights de regras.
func GetInsights(portfolioService portfolio.PortfolioService, insightService insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		withSupplemental := r.URL.Query().Get("supplemental") == "true"
		clients := portfolioService.Current().Clients

		insights := insightService.GenerateInsights(r.Context(), clients, withSupplemental)

		logger.WithFields(log.Fields{
			"client_count":  len(clients),
			"insight_count": len(insights),
		}).Info("insights: generated insights for portfolio")

		writeJSON(w, r, http.StatusOK, insights)
	})
}
