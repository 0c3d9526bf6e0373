package handler

import (
	"net/http"

	"github.com/pventures/revops-dashboard-api/internal/usecases/portfolio"
	"github.com/pventures/revops-dashboard-api/pkg/log"
)

// ListDeals retorna os negócios do snapshot, opcionalmente filtrados por
// client_id. Apenas exibição: o motor de insights não consome negócios.
func ListDeals(service portfolio.PortfolioService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := r.URL.Query().Get("client_id")

		deals := service.Deals(clientID)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"client_id":  clientID,
			"deal_count": len(deals),
		}).Debug("deals: deal list requested")

		writeJSON(w, r, http.StatusOK, deals)
	})
}
