package handler

import (
	"net/http"

	"github.com/pventures/revops-dashboard-api/internal/domain"
	"github.com/pventures/revops-dashboard-api/internal/usecases/portfolio"
	"github.com/pventures/revops-dashboard-api/internal/usecases/ranking"
	"github.com/pventures/revops-dashboard-api/pkg/apiErrors"
	"github.com/pventures/revops-dashboard-api/pkg/log"
)

// GetPortfolioSummary retorna os KPIs agregados do snapshot atual
func GetPortfolioSummary(portfolioService portfolio.PortfolioService, ranker ranking.PortfolioRanker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		summary := ranker.Summarize(portfolioService.Current().Clients)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"client_count":     summary.ClientCount,
			"critical_clients": summary.CriticalClients,
		}).Info("summary: portfolio KPIs computed")

		writeJSON(w, r, http.StatusOK, summary)
	})
}

// ListClients retorna os clientes do snapshot ordenados pelo critério
// informado em sort_by (performance, mrr, growth ou name)
func ListClients(portfolioService portfolio.PortfolioService, ranker ranking.PortfolioRanker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		mode := domain.SortMode(r.URL.Query().Get("sort_by"))
		if mode == "" {
			mode = domain.SortByPerformance
		}

		if !mode.IsValid() {
			logger.WithField("sort_by", string(mode)).Warn("clients: unknown sort mode")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "critério de ordenação desconhecido: "+string(mode), nil)
			return
		}

		clients := ranker.SortClients(portfolioService.Current().Clients, mode)

		logger.WithFields(log.Fields{
			"client_count": len(clients),
			"sort_by":      string(mode),
		}).Debug("clients: sorted client list computed")

		writeJSON(w, r, http.StatusOK, clients)
	})
}
