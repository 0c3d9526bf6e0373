package handler

import (
	"net/http"

	"github.com/pventures/revops-dashboard-api/internal/scheduler"
	"github.com/pventures/revops-dashboard-api/pkg/log"
)

// CronJobServices agrupa os agendadores expostos nos endpoints administrativos
type CronJobServices struct {
	DemoRefreshService *scheduler.DemoRefreshService
}

// DemoRefreshStatus retorna o estado do agendador de demonstração
func DemoRefreshStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, services.DemoRefreshService.Status())
	})
}

// TriggerDemoRefresh dispara uma regeneração manual do snapshot de
// demonstração, fora do agendamento
func TriggerDemoRefresh(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("cron: manual demo refresh triggered")

		services.DemoRefreshService.RunNow()

		writeJSON(w, r, http.StatusAccepted, map[string]string{
			"status": "refresh agendado",
		})
	})
}
