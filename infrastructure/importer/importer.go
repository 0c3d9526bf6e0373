// Package importer converte planilhas exportadas (CSV) e payloads JSON no
// snapshot de portfólio consumido pelo dashboard. A validação de forma
// acontece aqui, na borda: o núcleo de análise só recebe registros tipados.
package importer

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/pventures/revops-dashboard-api/internal/domain"
	"github.com/pventures/revops-dashboard-api/pkg/log"
	"github.com/pventures/revops-dashboard-api/pkg/utils"
)

// ErrNoValidClients indica que nenhuma linha da planilha tinha os campos
// obrigatórios (client_id e client_name)
var ErrNoValidClients = errors.New("nenhum cliente válido encontrado nos dados importados")

// clientRow é a forma bruta de uma linha importada, antes da coerção
type clientRow struct {
	ClientID         string  `json:"client_id"`
	ClientName       string  `json:"client_name"`
	Industry         string  `json:"industry"`
	MRR              float64 `json:"mrr"`
	PipelineValue    float64 `json:"pipeline_value"`
	LeadsCount       int     `json:"leads_count"`
	ConversionsCount int     `json:"conversions_count"`
	ConversionRate   float64 `json:"conversion_rate"`
	CAC              float64 `json:"cac"`
	GrowthRate       float64 `json:"growth_rate"`
	Status           string  `json:"status"`
}

// coerceRow aplica os defaults e a coerção de status de uma linha importada.
// Linhas sem client_id ou client_name são descartadas (retorna false).
func coerceRow(row clientRow, index int, now time.Time) (domain.ClientMetrics, bool) {
	if strings.TrimSpace(row.ClientID) == "" || strings.TrimSpace(row.ClientName) == "" {
		log.L.WithField("row", index+2).Warn("importer: linha sem client_id ou client_name ignorada")
		return domain.ClientMetrics{}, false
	}

	// Status fora do enum vira healthy, nunca um erro
	status := domain.ClientStatus(strings.ToLower(strings.TrimSpace(row.Status)))
	if !status.IsValid() {
		status = domain.StatusHealthy
	}

	industry := strings.TrimSpace(row.Industry)
	if industry == "" {
		industry = "Unknown"
	}

	return domain.ClientMetrics{
		ClientID:         strings.TrimSpace(row.ClientID),
		ClientName:       strings.TrimSpace(row.ClientName),
		Industry:         industry,
		MRR:              row.MRR,
		PipelineValue:    row.PipelineValue,
		LeadsCount:       row.LeadsCount,
		ConversionsCount: row.ConversionsCount,
		ConversionRate:   row.ConversionRate,
		CAC:              row.CAC,
		GrowthRate:       row.GrowthRate,
		Status:           status,
		LastUpdated:      now,
	}, true
}

// buildPortfolio monta o snapshot final a partir dos clientes coercidos,
// sintetizando histórico e negócios de exemplo para cada cliente importado
// (planilhas trazem apenas a linha de métricas atuais)
func buildPortfolio(clients []domain.ClientMetrics, now time.Time) (domain.PortfolioData, error) {
	if len(clients) == 0 {
		return domain.PortfolioData{}, ErrNoValidClients
	}

	rng := rand.New(rand.NewSource(now.UnixNano()))

	data := domain.PortfolioData{Clients: clients}
	for _, client := range clients {
		data.Historical = append(data.Historical, deriveHistory(client, now, rng)...)
		data.Deals = append(data.Deals, deriveDeals(client, now, rng)...)
	}

	return data, nil
}

// deriveHistory retrocede 12 semanas a partir das métricas atuais do cliente,
// aplicando a tendência implícita no growth_rate com ruído de ±3%
func deriveHistory(client domain.ClientMetrics, now time.Time, rng *rand.Rand) []domain.HistoricalDataPoint {
	points := make([]domain.HistoricalDataPoint, 0, 12)
	weeklyGrowth := client.GrowthRate / 100 / 4

	ratio, ok := client.PipelineRatio()
	if !ok {
		ratio = 2
	}

	for week := 11; week >= 0; week-- {
		date := now.AddDate(0, 0, -week*7)
		weeksAgo := float64(week)

		var trend float64
		if client.GrowthRate >= 0 {
			trend = 1 - weeksAgo*weeklyGrowth
		} else {
			trend = 1 + weeksAgo*(-weeklyGrowth)
		}

		noise := 1 + (rng.Float64()-0.5)*0.06
		mrr := float64(int(client.MRR * trend * noise))

		leads := rng.Intn(150) + 50
		if client.LeadsCount > 0 {
			leads = int(float64(client.LeadsCount) * (0.8 + rng.Float64()*0.4))
		}

		conversions := int(float64(leads) * 0.05)
		if client.ConversionsCount > 0 {
			conversions = int(float64(client.ConversionsCount) * (0.8 + rng.Float64()*0.4))
		}

		points = append(points, domain.HistoricalDataPoint{
			ClientID:      client.ClientID,
			Date:          date,
			MRR:           mrr,
			PipelineValue: float64(int(mrr * (ratio + (rng.Float64()-0.5)*0.5))),
			Leads:         leads,
			Conversions:   conversions,
			Activities:    rng.Intn(200) + 100,
		})
	}

	return points
}

var dealNames = []string{
	"Enterprise Co", "Startup Inc", "Tech Solutions", "Digital Ventures",
	"Innovation Labs", "Future Systems", "Growth Partners", "Scale Corp",
	"Nexus Group", "Quantum Enterprises", "Velocity Inc", "Apex Solutions",
}

var dealStages = []domain.DealStage{
	domain.StageLead,
	domain.StageQualified,
	domain.StageProposal,
	domain.StageNegotiation,
}

func deriveDeals(client domain.ClientMetrics, now time.Time, rng *rand.Rand) []domain.Deal {
	dealCount := rng.Intn(6) + 3

	deals := make([]domain.Deal, 0, dealCount)
	for i := 0; i < dealCount; i++ {
		stage := dealStages[rng.Intn(len(dealStages))]

		probability := 50
		switch stage {
		case domain.StageLead:
			probability = rng.Intn(20) + 20
		case domain.StageQualified:
			probability = rng.Intn(20) + 40
		case domain.StageProposal:
			probability = rng.Intn(20) + 60
		case domain.StageNegotiation:
			probability = rng.Intn(20) + 75
		}

		id, err := utils.GenerateID()
		if err != nil {
			id = fmt.Sprintf("%d", i+1)
		}

		deals = append(deals, domain.Deal{
			DealID:            fmt.Sprintf("%s_deal_%s", client.ClientID, id),
			ClientID:          client.ClientID,
			DealName:          dealNames[i%len(dealNames)],
			Value:             float64(rng.Intn(20000) + 5000),
			Stage:             stage,
			Probability:       probability,
			DaysInStage:       rng.Intn(30) + 1,
			ExpectedCloseDate: now.AddDate(0, 0, rng.Intn(60)+15),
		})
	}

	return deals
}
