package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/pventures/revops-dashboard-api/internal/domain"
	"github.com/pventures/revops-dashboard-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetupTestLogger()
}

var testNow = time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		validate func(t *testing.T, data domain.PortfolioData, err error)
	}{
		{
			name: "Planilha no modelo esperado",
			csv: strings.Join([]string{
				"client_id,client_name,industry,mrr,pipeline_value,leads_count,conversions_count,conversion_rate,cac,growth_rate,status",
				"client_1,Acme Corp,SaaS,100000,400000,120,10,8.3,750,25,healthy",
				"client_2,Fading Inc,Retail,50000,60000,90,2,2.2,900,-15,critical",
			}, "\n"),
			validate: func(t *testing.T, data domain.PortfolioData, err error) {
				require.NoError(t, err)
				require.Len(t, data.Clients, 2)

				assert.Equal(t, domain.ClientMetrics{
					ClientID:         "client_1",
					ClientName:       "Acme Corp",
					Industry:         "SaaS",
					MRR:              100000,
					PipelineValue:    400000,
					LeadsCount:       120,
					ConversionsCount: 10,
					ConversionRate:   8.3,
					CAC:              750,
					GrowthRate:       25,
					Status:           domain.StatusHealthy,
					LastUpdated:      testNow,
				}, data.Clients[0])

				assert.Equal(t, domain.StatusCritical, data.Clients[1].Status)

				// Histórico e negócios sintetizados para cada cliente
				assert.Len(t, data.Historical, 2*12)
				assert.NotEmpty(t, data.Deals)
			},
		},
		{
			name: "Linhas sem campos obrigatórios são descartadas",
			csv: strings.Join([]string{
				"client_id,client_name,mrr,status",
				",Sem ID,1000,healthy",
				"client_3,,1000,healthy",
				"client_4,Valid Co,1000,healthy",
			}, "\n"),
			validate: func(t *testing.T, data domain.PortfolioData, err error) {
				require.NoError(t, err)
				require.Len(t, data.Clients, 1)
				assert.Equal(t, "client_4", data.Clients[0].ClientID)
			},
		},
		{
			name: "Status desconhecido e indústria ausente recebem defaults",
			csv: strings.Join([]string{
				"client_id,client_name,mrr,status",
				"client_5,Default Co,1000,EXPLODING",
			}, "\n"),
			validate: func(t *testing.T, data domain.PortfolioData, err error) {
				require.NoError(t, err)
				require.Len(t, data.Clients, 1)
				assert.Equal(t, domain.StatusHealthy, data.Clients[0].Status)
				assert.Equal(t, "Unknown", data.Clients[0].Industry)
			},
		},
		{
			name: "Valores numéricos inválidos viram zero",
			csv: strings.Join([]string{
				"client_id,client_name,mrr,growth_rate,leads_count",
				"client_6,Messy Co,not-a-number,n/a,many",
			}, "\n"),
			validate: func(t *testing.T, data domain.PortfolioData, err error) {
				require.NoError(t, err)
				require.Len(t, data.Clients, 1)
				assert.Zero(t, data.Clients[0].MRR)
				assert.Zero(t, data.Clients[0].GrowthRate)
				assert.Zero(t, data.Clients[0].LeadsCount)
			},
		},
		{
			name: "Colunas desconhecidas são ignoradas",
			csv: strings.Join([]string{
				"client_id,client_name,favorite_color,mrr",
				"client_7,Rainbow Co,blue,5000",
			}, "\n"),
			validate: func(t *testing.T, data domain.PortfolioData, err error) {
				require.NoError(t, err)
				require.Len(t, data.Clients, 1)
				assert.Equal(t, float64(5000), data.Clients[0].MRR)
			},
		},
		{
			name: "Cabeçalho sem client_id é rejeitado",
			csv:  "name,mrr\nAcme,1000",
			validate: func(t *testing.T, data domain.PortfolioData, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "client_id")
			},
		},
		{
			name: "Nenhuma linha válida",
			csv: strings.Join([]string{
				"client_id,client_name",
				",Sem ID",
			}, "\n"),
			validate: func(t *testing.T, data domain.PortfolioData, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNoValidClients)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := parseCSVAt(strings.NewReader(tt.csv), testNow)
			tt.validate(t, data, err)
		})
	}
}

func TestParseJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		validate func(t *testing.T, data domain.PortfolioData, err error)
	}{
		{
			name: "Snapshot completo com chave clients",
			payload: `{"clients": [
				{"client_id": "client_1", "client_name": "Acme Corp", "mrr": 100000, "pipeline_value": 400000, "growth_rate": 25, "status": "healthy"}
			]}`,
			validate: func(t *testing.T, data domain.PortfolioData, err error) {
				require.NoError(t, err)
				require.Len(t, data.Clients, 1)
				assert.Equal(t, "Acme Corp", data.Clients[0].ClientName)
				assert.Len(t, data.Historical, 12)
			},
		},
		{
			name: "Lista simples de clientes",
			payload: `[
				{"client_id": "client_1", "client_name": "Acme Corp", "mrr": 100000},
				{"client_id": "client_2", "client_name": "Beta LLC", "mrr": 50000, "status": "at-risk"}
			]`,
			validate: func(t *testing.T, data domain.PortfolioData, err error) {
				require.NoError(t, err)
				require.Len(t, data.Clients, 2)
				assert.Equal(t, domain.StatusAtRisk, data.Clients[1].Status)
			},
		},
		{
			name:    "JSON inválido",
			payload: `{"clients": [`,
			validate: func(t *testing.T, data domain.PortfolioData, err error) {
				assert.Error(t, err)
			},
		},
		{
			name:    "Lista vazia",
			payload: `[]`,
			validate: func(t *testing.T, data domain.PortfolioData, err error) {
				assert.ErrorIs(t, err, ErrNoValidClients)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := parseJSONAt(strings.NewReader(tt.payload), testNow)
			tt.validate(t, data, err)
		})
	}
}
