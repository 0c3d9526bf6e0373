package handler

import (
	"net/http"

	"github.com/pventures/revops-dashboard-api/internal/usecases/portfolio"
	"github.com/pventures/revops-dashboard-api/pkg/apiErrors"
	"github.com/pventures/revops-dashboard-api/pkg/log"
	"github.com/pventures/revops-dashboard-api/pkg/utils"
)

// GetTrendSeries retorna a série do gráfico de tendência de MRR, com
// filtros opcionais start_date e end_date (YYYY-MM-DD)
func GetTrendSeries(service portfolio.PortfolioService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("trend: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"end_date": r.URL.Query().Get("end_date"),
				"error":    err.Error(),
			}).Warn("trend: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		series := service.TrendSeries(startDate, endDate)

		logger.WithField("points", len(series)).Debug("trend: MRR series computed")

		writeJSON(w, r, http.StatusOK, series)
	})
}
