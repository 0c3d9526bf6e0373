package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/pventures/revops-dashboard-api/infrastructure/importer"
	"github.com/pventures/revops-dashboard-api/internal/usecases/portfolio"
	"github.com/pventures/revops-dashboard-api/pkg/apiErrors"
	"github.com/pventures/revops-dashboard-api/pkg/log"
)

// GetPortfolio retorna o snapshot completo da sessão
func GetPortfolio(service portfolio.PortfolioService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := service.Current()

		log.ForContext(r.Context()).WithField("client_count", len(snapshot.Clients)).
			Info("portfolio: snapshot requested")

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

// ReplacePortfolio substitui o snapshot a partir de um payload JSON com as
// métricas atuais dos clientes
func ReplacePortfolio(service portfolio.PortfolioService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := importer.ParseJSON(r.Body)
		if err != nil {
			logger.WithError(err).Warn("portfolio: invalid JSON snapshot upload")
			writeImportError(w, err)
			return
		}

		service.Replace(snapshot)

		logger.WithField("client_count", len(snapshot.Clients)).
			Info("portfolio: snapshot replaced from JSON upload")

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

// ImportPortfolio substitui o snapshot a partir de uma planilha CSV enviada
// como multipart (campo "file") ou como corpo bruto
func ImportPortfolio(service portfolio.PortfolioService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		body := r.Body
		if file, _, err := r.FormFile("file"); err == nil {
			defer file.Close()
			body = file
		}

		snapshot, err := importer.ParseCSV(body)
		if err != nil {
			logger.WithError(err).Warn("portfolio: invalid CSV upload")
			writeImportError(w, err)
			return
		}

		service.Replace(snapshot)

		logger.WithField("client_count", len(snapshot.Clients)).
			Info("portfolio: snapshot replaced from CSV upload")

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

// LoadDemoPortfolio regenera o snapshot de demonstração
func LoadDemoPortfolio(service portfolio.PortfolioService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := service.LoadDemo()

		log.ForContext(r.Context()).WithField("client_count", len(snapshot.Clients)).
			Info("portfolio: demo snapshot generated")

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

func writeImportError(w http.ResponseWriter, err error) {
	if errors.Is(err, importer.ErrNoValidClients) {
		apiErrors.WriteError(w, apiErrors.ErrEmptyPortfolio, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
}
