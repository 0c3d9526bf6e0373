package importer

import (
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/pventures/revops-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// jsonPayload aceita tanto um snapshot completo ({"clients": [...]}) quanto
// uma lista simples de clientes
type jsonPayload struct {
	Clients []clientRow `json:"clients"`
}

// ParseJSON lê um snapshot de portfólio enviado como JSON. Histórico e
// negócios são sintetizados, como na importação de planilha: o payload
// carrega apenas as métricas atuais de cada cliente.
func ParseJSON(r io.Reader) (domain.PortfolioData, error) {
	return parseJSONAt(r, time.Now())
}

func parseJSONAt(r io.Reader, now time.Time) (domain.PortfolioData, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return domain.PortfolioData{}, errors.Wrap(err, "erro ao ler o corpo da requisição")
	}

	var rows []clientRow

	payload := jsonPayload{}
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Clients) > 0 {
		rows = payload.Clients
	} else if err := json.Unmarshal(body, &rows); err != nil {
		return domain.PortfolioData{}, errors.Wrap(err, "payload JSON inválido")
	}

	var clients []domain.ClientMetrics
	for i, row := range rows {
		if client, ok := coerceRow(row, i, now); ok {
			clients = append(clients, client)
		}
	}

	return buildPortfolio(clients, now)
}
